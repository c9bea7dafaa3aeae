package form

import "github.com/goliatone/go-validity/pkg/validity"

// ErrorNodeClass marks the elements that receive a field's message text.
const ErrorNodeClass = "error"

// CheckSelector implements validity.SelectorChecker.
func (d *Document) CheckSelector(selector string) error {
	_, err := CompileSelector(selector)
	return err
}

// Targets implements validity.Layout. A grouped control reports the closest
// element matching parentSelector, starting from the control itself, and
// every descendant of it carrying ErrorNodeClass. A singleton control
// reports its parent, unless the parent is the form, and its next element
// sibling when that sibling carries ErrorNodeClass.
func (d *Document) Targets(_ validity.FormHandle, control validity.Control, grouped bool, parentSelector string) (validity.DisplayTarget, validity.MessageTarget) {
	e := d.element(control)
	if e == nil {
		return nil, nil
	}

	var display validity.DisplayTarget
	var messages validity.MessageTarget

	if grouped {
		container := Closest(e, parentSelector)
		if container == nil {
			return nil, nil
		}
		display = container
		var nodes messageNodes
		for _, child := range container.Children {
			child.Walk(func(n *Element) bool {
				if n.HasClass(ErrorNodeClass) {
					nodes = append(nodes, n)
				}
				return true
			})
		}
		if len(nodes) > 0 {
			messages = nodes
		}
		return display, messages
	}

	if parent := e.Parent; parent != nil && parent != d.root {
		display = parent
	}
	if next := e.NextElementSibling(); next != nil && next.HasClass(ErrorNodeClass) {
		messages = next
	}
	return display, messages
}

type messageNodes []*Element

func (m messageNodes) SetMessage(text string) {
	for _, n := range m {
		n.SetText(text)
	}
}
