package form

import (
	"fmt"
	"net/url"

	"github.com/goliatone/go-validity/pkg/validity"
)

// Document wraps the root element of one form.
type Document struct {
	root    *Element
	keys    map[string]*Element
	next    int
	focused *Element
}

// NewDocument binds root, normally a form element. Controls receive their
// keys immediately; controls appended later get theirs on the next
// discovery pass.
func NewDocument(root *Element) *Document {
	d := &Document{
		root: root,
		keys: make(map[string]*Element),
	}
	d.assignKeys()
	return d
}

// Root returns the form element.
func (d *Document) Root() *Element {
	return d.root
}

// FormID returns the form's id attribute, then its name, then "form".
func (d *Document) FormID() string {
	if d.root != nil {
		if id, ok := d.root.GetAttr("id"); ok && id != "" {
			return id
		}
		if name, ok := d.root.GetAttr("name"); ok && name != "" {
			return name
		}
	}
	return "form"
}

// Elements returns every control in document order.
func (d *Document) Elements() []*Element {
	d.assignKeys()
	var out []*Element
	if d.root == nil {
		return out
	}
	d.root.Walk(func(e *Element) bool {
		if e.IsControl() {
			out = append(out, e)
		}
		return true
	})
	return out
}

// Controls implements validity.Discovery.
func (d *Document) Controls(validity.FormHandle) []validity.Control {
	elements := d.Elements()
	out := make([]validity.Control, 0, len(elements))
	for _, e := range elements {
		out = append(out, e)
	}
	return out
}

// Group implements validity.Discovery.
func (d *Document) Group(_ validity.FormHandle, name string) []validity.Control {
	var out []validity.Control
	for _, e := range d.Named(name) {
		out = append(out, e)
	}
	return out
}

// Named returns the controls whose name attribute equals name.
func (d *Document) Named(name string) []*Element {
	var out []*Element
	for _, e := range d.Elements() {
		if e.Name() == name {
			out = append(out, e)
		}
	}
	return out
}

// Lookup returns the control with the given key.
func (d *Document) Lookup(key string) (*Element, bool) {
	d.assignKeys()
	e, ok := d.keys[key]
	return e, ok
}

// Focus implements validity.Focuser.
func (d *Document) Focus(control validity.Control) {
	if e := d.element(control); e != nil {
		d.focused = e
	}
}

// Focused returns the control that last received focus, or nil.
func (d *Document) Focused() *Element {
	return d.focused
}

// Fill writes values into the controls named name and returns the controls
// it touched. Radios check the member carrying values[0]; checkboxes check
// exactly the members whose value is listed; other controls take values[0].
// Calling Fill with no values clears the controls.
func (d *Document) Fill(name string, values ...string) ([]*Element, error) {
	controls := d.Named(name)
	if len(controls) == 0 {
		return nil, fmt.Errorf("%w: %q", ErrUnknownControl, name)
	}

	switch controls[0].Kind() {
	case validity.KindRadio:
		if len(values) > 1 {
			values = values[:1]
		}
		fallthrough
	case validity.KindCheckbox:
		want := make(map[string]bool, len(values))
		for _, v := range values {
			want[v] = false
		}
		for _, c := range controls {
			v := c.Value()
			_, listed := want[v]
			if listed {
				want[v] = true
			}
			c.SetChecked(listed)
		}
		for v, matched := range want {
			if !matched {
				return controls, fmt.Errorf("%w: %q has no option %q", ErrNoSuchOption, name, v)
			}
		}
		return controls, nil
	}

	value := ""
	if len(values) > 0 {
		value = values[0]
	}
	if err := controls[0].SetValue(value); err != nil {
		return nil, fmt.Errorf("%w: %q value %q", err, name, value)
	}
	return controls[:1], nil
}

// Values serialises the form the way a browser would submit it: named,
// enabled controls only, checked radios and checkboxes only, no buttons or
// file inputs.
func (d *Document) Values() url.Values {
	out := url.Values{}
	for _, e := range d.Elements() {
		name := e.Name()
		if name == "" {
			continue
		}
		if _, disabled := e.GetAttr("disabled"); disabled {
			continue
		}
		switch e.Kind() {
		case validity.KindSubmit, validity.KindFile, "button", "image", "reset":
			continue
		case validity.KindRadio, validity.KindCheckbox:
			if !e.Checked() {
				continue
			}
		}
		out.Add(name, e.Value())
	}
	return out
}

func (d *Document) element(control validity.Control) *Element {
	if control == nil {
		return nil
	}
	if e, ok := control.(*Element); ok {
		return e
	}
	e, _ := d.Lookup(control.ID())
	return e
}

func (d *Document) assignKeys() {
	if d.root == nil {
		return
	}
	d.root.Walk(func(e *Element) bool {
		if !e.IsControl() || e.key != "" {
			return true
		}
		if id, ok := e.GetAttr("id"); ok && id != "" {
			if _, taken := d.keys[id]; !taken {
				e.key = id
				d.keys[id] = e
				return true
			}
		}
		for {
			d.next++
			label := e.Name()
			if label == "" {
				label = e.Tag
			}
			key := fmt.Sprintf("%s#%d", label, d.next)
			if _, taken := d.keys[key]; !taken {
				e.key = key
				d.keys[key] = e
				return true
			}
		}
	})
}
