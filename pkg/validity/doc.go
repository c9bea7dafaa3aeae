// Package validity attaches declarative validation to a form.
//
// Apply discovers the form's controls through a Discovery collaborator,
// builds one Field per control (or per radio/checkbox group), resolves each
// field's validators from a space separated attribute (data-validators by
// default) and returns a Context that reacts to input, blur and submit
// triggers:
//
//	ctx, err := validity.Apply(doc, validity.Collaborators{
//		Discovery: doc,
//		Layout:    doc,
//		Focuser:   doc,
//	}, validity.WithValidator("email", emailValidator))
//
//	ctx.Input(control) // debounced live validation
//	ctx.Blur(control)  // immediate validation
//	ctx.Submit(event)  // validates everything, gates submission
//
// The engine owns no DOM. Error classes and message text are pushed to the
// DisplayTarget and MessageTarget returned by the Layout collaborator, and
// focus moves through the Focuser. Validators are caller supplied; the
// engine only decides when they run and what happens with their verdicts.
//
// Every trigger on a Context is serialised by one mutex, so debounced runs
// firing on timer goroutines never overlap with input, blur or submit
// handling.
package validity
