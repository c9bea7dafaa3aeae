package validity

import "strings"

// ResolveKeys lists the validator keys declared on control: "required" first
// when the control is required, then the whitespace separated entries of
// attributeName left to right.
func ResolveKeys(control Control, attributeName string) []string {
	raw, _ := control.Attr(attributeName)
	declared := strings.Fields(raw)
	if !control.Required() {
		return declared
	}
	keys := make([]string, 0, len(declared)+1)
	keys = append(keys, RequiredKey)
	return append(keys, declared...)
}

// ResolveValidators maps the control's keys through cfg.Validators. Keys
// without a registered validator are dropped.
func ResolveValidators(control Control, cfg Config) []Validator {
	keys := ResolveKeys(control, cfg.AttributeName)
	validators := make([]Validator, 0, len(keys))
	for _, key := range keys {
		fn, ok := cfg.Validators[key]
		if !ok || fn == nil {
			if cfg.Logger != nil {
				cfg.Logger.Debug("validity: unknown validator key ignored",
					"key", key,
					"control", control.ID(),
				)
			}
			continue
		}
		validators = append(validators, fn)
	}
	return validators
}
