package validity

// NoError is returned by ValidateAll when every field is valid.
const NoError = -1

// ValidateField runs f's validators against its extracted value and
// publishes the verdict to the field and its display targets. The first
// rejecting validator supplies the message; later validators do not run.
//
// A validator panic propagates to the caller before any state is written,
// so the field keeps its previous verdict.
func ValidateField(f *Field, cfg Config) (bool, string) {
	value := ExtractValue(f)

	message, rejected := runValidators(f, value)

	f.setVerdict(!rejected, message)

	if f.Display != nil {
		f.Display.SetErrorState(cfg.ErrorClass, rejected)
	}
	if f.Messages != nil {
		f.Messages.SetMessage(message)
	}
	return !rejected, message
}

func runValidators(f *Field, value string) (string, bool) {
	for _, validate := range f.Validators {
		if err := validate(value, f.Name, f.Control); err != nil {
			return err.Error(), true
		}
	}
	return "", false
}

// ValidateAll validates every field in order, then returns the index of the
// first invalid one or NoError. Every field is validated even after a
// failure so all displays reflect the current values. A validator panic
// aborts the pass and leaves the remaining fields untouched.
func ValidateAll(fields []*Field, cfg Config) int {
	for _, f := range fields {
		ValidateField(f, cfg)
	}
	for i, f := range fields {
		if !f.IsValid() {
			return i
		}
	}
	return NoError
}
