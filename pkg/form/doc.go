// Package form is an in-memory form document. An Element tree stands in for
// the markup of one form element; Document wraps its root and serves as the
// Discovery, Layout and Focuser collaborators of a validity.Context, while
// Element itself is the Control, DisplayTarget and MessageTarget the engine
// talks to.
//
// Trees are built by hand with NewElement and NewText or parsed from HTML
// by the htmlform package.
package form
