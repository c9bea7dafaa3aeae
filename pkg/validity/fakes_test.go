package validity

import "fmt"

type fakeControl struct {
	id       string
	name     string
	kind     ControlKind
	value    string
	checked  bool
	required bool
	attrs    map[string]string
}

func (c *fakeControl) ID() string        { return c.id }
func (c *fakeControl) Name() string      { return c.name }
func (c *fakeControl) Kind() ControlKind { return c.kind }
func (c *fakeControl) Value() string     { return c.value }
func (c *fakeControl) Checked() bool     { return c.checked }
func (c *fakeControl) Required() bool    { return c.required }

func (c *fakeControl) Attr(name string) (string, bool) {
	v, ok := c.attrs[name]
	return v, ok
}

type fakeTarget struct {
	class   string
	invalid bool
	calls   int
}

func (t *fakeTarget) SetErrorState(class string, invalid bool) {
	t.class = class
	t.invalid = invalid
	t.calls++
}

type fakeMessage struct {
	text  string
	calls int
}

func (m *fakeMessage) SetMessage(text string) {
	m.text = text
	m.calls++
}

type layoutCall struct {
	control  string
	grouped  bool
	selector string
}

type fakeForm struct {
	id       string
	controls []*fakeControl
	targets  map[string]*fakeTarget
	messages map[string]*fakeMessage
	layouts  []layoutCall
	focused  []string
	invalid  []InvalidEvent
}

func newFakeForm(controls ...*fakeControl) *fakeForm {
	return &fakeForm{
		id:       "form-1",
		controls: controls,
		targets:  make(map[string]*fakeTarget),
		messages: make(map[string]*fakeMessage),
	}
}

func (f *fakeForm) FormID() string { return f.id }

func (f *fakeForm) Controls(_ FormHandle) []Control {
	out := make([]Control, 0, len(f.controls))
	for _, c := range f.controls {
		out = append(out, c)
	}
	return out
}

func (f *fakeForm) Group(_ FormHandle, name string) []Control {
	var out []Control
	for _, c := range f.controls {
		if c.name == name {
			out = append(out, c)
		}
	}
	return out
}

func (f *fakeForm) Targets(_ FormHandle, control Control, grouped bool, selector string) (DisplayTarget, MessageTarget) {
	f.layouts = append(f.layouts, layoutCall{control: control.ID(), grouped: grouped, selector: selector})
	key := control.ID()
	if grouped {
		key = "group:" + control.Name()
	}
	t, ok := f.targets[key]
	if !ok {
		t = &fakeTarget{}
		f.targets[key] = t
	}
	m, ok := f.messages[key]
	if !ok {
		m = &fakeMessage{}
		f.messages[key] = m
	}
	return t, m
}

func (f *fakeForm) Focus(control Control) {
	f.focused = append(f.focused, control.ID())
}

func (f *fakeForm) Invalid(_ FormHandle, event InvalidEvent) {
	f.invalid = append(f.invalid, event)
}

func (f *fakeForm) collaborators() Collaborators {
	return Collaborators{
		Discovery: f,
		Layout:    f,
		Focuser:   f,
		Notifier:  f,
	}
}

func text(id string, value string, keys string) *fakeControl {
	c := &fakeControl{id: id, name: id, kind: KindText, value: value, attrs: map[string]string{}}
	if keys != "" {
		c.attrs[DefaultAttributeName] = keys
	}
	return c
}

func checkboxGroup(name string, values ...string) []*fakeControl {
	out := make([]*fakeControl, 0, len(values))
	for i, v := range values {
		out = append(out, &fakeControl{
			id:    fmt.Sprintf("%s-%d", name, i),
			name:  name,
			kind:  KindCheckbox,
			value: v,
			attrs: map[string]string{},
		})
	}
	return out
}

// counter returns a validator that records every value it sees and rejects
// values found in reject.
func counter(seen *[]string, reject map[string]string) Validator {
	return func(value, _ string, _ Control) error {
		*seen = append(*seen, value)
		if msg, ok := reject[value]; ok {
			return Reject(msg)
		}
		return nil
	}
}
