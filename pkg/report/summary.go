package report

import (
	"strings"

	"github.com/goliatone/go-validity/pkg/validity"
)

// FieldResult is the reported state of one field.
type FieldResult struct {
	Label   string
	Control string
	Valid   bool
	Message string
}

// Summary is the data handed to report templates.
type Summary struct {
	Form     string
	Valid    bool
	Total    int
	Invalid  int
	Fields   []FieldResult
	Messages []string
}

// Summarize captures the current state of fields. Messages lists the
// distinct rejection messages in field order.
func Summarize(formID string, fields []*validity.Field) Summary {
	s := Summary{
		Form:  formID,
		Valid: true,
		Total: len(fields),
	}
	var messages []string
	for _, f := range fields {
		if f == nil {
			continue
		}
		label := f.Name
		if label == "" && f.Control != nil {
			label = f.Control.ID()
		}
		control := ""
		if f.Control != nil {
			control = f.Control.ID()
		}
		result := FieldResult{
			Label:   label,
			Control: control,
			Valid:   f.IsValid(),
			Message: f.Message(),
		}
		if !result.Valid {
			s.Valid = false
			s.Invalid++
			messages = append(messages, result.Message)
		}
		s.Fields = append(s.Fields, result)
	}
	s.Messages = normalizeMessages(messages)
	return s
}

// FromEvent summarises the snapshot carried by an invalid notification.
func FromEvent(form validity.FormHandle, event validity.InvalidEvent) Summary {
	id := ""
	if form != nil {
		id = form.FormID()
	}
	return Summarize(id, event.Fields)
}

func normalizeMessages(messages []string) []string {
	if len(messages) == 0 {
		return nil
	}
	out := make([]string, 0, len(messages))
	seen := make(map[string]struct{}, len(messages))
	for _, message := range messages {
		trimmed := strings.TrimSpace(message)
		if trimmed == "" {
			continue
		}
		if _, exists := seen[trimmed]; exists {
			continue
		}
		seen[trimmed] = struct{}{}
		out = append(out, trimmed)
	}
	return out
}
