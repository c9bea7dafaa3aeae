package form

import (
	"strings"

	"github.com/goliatone/go-validity/pkg/validity"
)

// IsControl reports whether e is an input, select or textarea element.
func (e *Element) IsControl() bool {
	switch e.Tag {
	case "input", "select", "textarea":
		return true
	}
	return false
}

// ID returns the key the owning Document assigned to the control: the id
// attribute when unique, a synthetic key otherwise.
func (e *Element) ID() string {
	return e.key
}

// Name returns the name attribute.
func (e *Element) Name() string {
	v, _ := e.GetAttr("name")
	return v
}

// Kind maps the element onto a validity.ControlKind. Inputs without a type
// attribute are text inputs.
func (e *Element) Kind() validity.ControlKind {
	switch e.Tag {
	case "select":
		return validity.KindSelect
	case "textarea":
		return validity.KindTextarea
	}
	t, _ := e.GetAttr("type")
	t = strings.ToLower(strings.TrimSpace(t))
	if t == "" {
		return validity.KindText
	}
	return validity.ControlKind(t)
}

// Value returns the control's current value. Select elements report the
// selected option, falling back to the first option; textareas report their
// text content. Radios and checkboxes without a value attribute report "on".
func (e *Element) Value() string {
	switch e.Tag {
	case "select":
		options := e.options()
		for _, opt := range options {
			if _, ok := opt.GetAttr("selected"); ok {
				return optionValue(opt)
			}
		}
		if len(options) > 0 {
			return optionValue(options[0])
		}
		return ""
	case "textarea":
		return e.TextContent()
	}
	v, ok := e.GetAttr("value")
	if !ok {
		switch e.Kind() {
		case validity.KindRadio, validity.KindCheckbox:
			return "on"
		}
	}
	return v
}

// Checked reports whether the checked attribute is present.
func (e *Element) Checked() bool {
	_, ok := e.GetAttr("checked")
	return ok
}

// Required reports whether the required attribute is present.
func (e *Element) Required() bool {
	_, ok := e.GetAttr("required")
	return ok
}

// Attr satisfies validity.Control.
func (e *Element) Attr(name string) (string, bool) {
	return e.GetAttr(name)
}

// SetValue writes value into a text-like input, a textarea or a select.
// Selecting a value no option carries fails with ErrNoSuchOption.
func (e *Element) SetValue(value string) error {
	switch e.Tag {
	case "textarea":
		e.SetText(value)
		return nil
	case "select":
		options := e.options()
		var match *Element
		for _, opt := range options {
			if match == nil && optionValue(opt) == value {
				match = opt
			}
		}
		if match == nil {
			return ErrNoSuchOption
		}
		for _, opt := range options {
			opt.RemoveAttr("selected")
		}
		match.SetAttr("selected", "")
		return nil
	case "input":
		e.SetAttr("value", value)
		return nil
	}
	return ErrNotEditable
}

// SetChecked toggles the checked attribute.
func (e *Element) SetChecked(checked bool) {
	if checked {
		e.SetAttr("checked", "")
		return
	}
	e.RemoveAttr("checked")
}

// SetErrorState adds class to e when invalid and removes it otherwise.
func (e *Element) SetErrorState(class string, invalid bool) {
	if invalid {
		e.AddClass(class)
		return
	}
	e.RemoveClass(class)
}

// SetMessage replaces the element's content with text.
func (e *Element) SetMessage(text string) {
	e.SetText(text)
}

// Options returns the values of a select's options in document order.
func (e *Element) Options() []string {
	var out []string
	for _, opt := range e.options() {
		out = append(out, optionValue(opt))
	}
	return out
}

func (e *Element) options() []*Element {
	var out []*Element
	for _, child := range e.Children {
		child.Walk(func(n *Element) bool {
			if n.Tag == "option" {
				out = append(out, n)
			}
			return true
		})
	}
	return out
}

func optionValue(opt *Element) string {
	if v, ok := opt.GetAttr("value"); ok {
		return v
	}
	return strings.TrimSpace(opt.TextContent())
}
