package validity

// ControlKind is the type of an underlying control, mirroring the HTML input
// type attribute plus the select and textarea elements.
type ControlKind string

const (
	KindText     ControlKind = "text"
	KindEmail    ControlKind = "email"
	KindPassword ControlKind = "password"
	KindNumber   ControlKind = "number"
	KindRadio    ControlKind = "radio"
	KindCheckbox ControlKind = "checkbox"
	KindFile     ControlKind = "file"
	KindHidden   ControlKind = "hidden"
	KindSubmit   ControlKind = "submit"
	KindSelect   ControlKind = "select"
	KindTextarea ControlKind = "textarea"
)

// Control is an opaque handle to one form control. ID must be stable for the
// lifetime of the form; it keys the Registry's control to field index.
type Control interface {
	ID() string
	Name() string
	Kind() ControlKind
	// Value is the control's raw value, untrimmed.
	Value() string
	Checked() bool
	Required() bool
	Attr(name string) (string, bool)
}

// FormHandle identifies the form a Context is bound to.
type FormHandle interface {
	FormID() string
}

// Discovery enumerates a form's controls.
type Discovery interface {
	// Controls returns input, select and textarea controls in document order.
	Controls(form FormHandle) []Control
	// Group returns the controls in form sharing name, in document order.
	Group(form FormHandle, name string) []Control
}

// Layout locates where a field's error state is displayed. Grouped fields
// use the closest container matching parentSelector; singleton fields use the
// control's parent and its adjacent error node. Either target may be nil.
type Layout interface {
	Targets(form FormHandle, control Control, grouped bool, parentSelector string) (DisplayTarget, MessageTarget)
}

// SelectorChecker is implemented by layouts that can reject a
// parentSelector they would never match. Apply consults it when present.
type SelectorChecker interface {
	CheckSelector(selector string) error
}

// DisplayTarget toggles the error class on a field's container.
type DisplayTarget interface {
	SetErrorState(class string, invalid bool)
}

// MessageTarget shows or clears a field's error message.
type MessageTarget interface {
	SetMessage(text string)
}

// Focuser moves input focus to a control.
type Focuser interface {
	Focus(control Control)
}

// Notifier receives form-level notifications.
type Notifier interface {
	Invalid(form FormHandle, event InvalidEvent)
}

// NotifierFunc adapts a function into a Notifier.
type NotifierFunc func(form FormHandle, event InvalidEvent)

// Invalid delegates to the underlying function.
func (fn NotifierFunc) Invalid(form FormHandle, event InvalidEvent) {
	fn(form, event)
}

// EventInvalid names the notification emitted when submit-time validation
// fails.
const EventInvalid = "validity.invalid"

// InvalidEvent is the payload of a failed submit. Fields is a shallow copy of
// the registry taken when the submit was rejected.
type InvalidEvent struct {
	Name   string
	Fields []*Field
}

// Collaborators bundles the external services a Context depends on.
// Discovery and Layout are required; Focuser and Notifier are optional.
type Collaborators struct {
	Discovery Discovery
	Layout    Layout
	Focuser   Focuser
	Notifier  Notifier
}
