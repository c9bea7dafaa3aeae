package validity

import "strings"

// ExtractValue derives the value validators see. Groups and radio/checkbox
// controls yield the value of the first checked member, or "" when nothing
// is checked. Every other control yields its value with surrounding
// whitespace removed.
func ExtractValue(f *Field) string {
	if isCheckable(f) {
		for _, member := range f.Members {
			if member.Checked() {
				return member.Value()
			}
		}
		return ""
	}
	return strings.TrimSpace(f.Control.Value())
}

func isCheckable(f *Field) bool {
	if len(f.Members) > 1 {
		return true
	}
	switch f.Control.Kind() {
	case KindRadio, KindCheckbox:
		return true
	}
	return false
}
