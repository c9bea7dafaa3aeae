package form

import "strings"

// Attr is one element attribute.
type Attr struct {
	Key string
	Val string
}

// Element is a node of the form tree. An empty Tag marks a text node whose
// content is Text.
type Element struct {
	Tag      string
	Attrs    []Attr
	Text     string
	Parent   *Element
	Children []*Element

	key string
}

// NewElement returns an element named tag with the given attributes.
func NewElement(tag string, attrs ...Attr) *Element {
	e := &Element{Tag: strings.ToLower(tag)}
	for _, a := range attrs {
		e.SetAttr(a.Key, a.Val)
	}
	return e
}

// NewText returns a text node.
func NewText(text string) *Element {
	return &Element{Text: text}
}

// A is shorthand for an Attr literal.
func A(key, val string) Attr {
	return Attr{Key: key, Val: val}
}

// IsText reports whether e is a text node.
func (e *Element) IsText() bool {
	return e.Tag == ""
}

// Append adds children to e and returns e.
func (e *Element) Append(children ...*Element) *Element {
	for _, child := range children {
		if child == nil {
			continue
		}
		child.Parent = e
		e.Children = append(e.Children, child)
	}
	return e
}

// GetAttr returns the value of the attribute named key.
func (e *Element) GetAttr(key string) (string, bool) {
	key = strings.ToLower(key)
	for _, a := range e.Attrs {
		if a.Key == key {
			return a.Val, true
		}
	}
	return "", false
}

// SetAttr adds or replaces an attribute, keeping attribute order stable.
func (e *Element) SetAttr(key, val string) {
	key = strings.ToLower(key)
	for i, a := range e.Attrs {
		if a.Key == key {
			e.Attrs[i].Val = val
			return
		}
	}
	e.Attrs = append(e.Attrs, Attr{Key: key, Val: val})
}

// RemoveAttr deletes the attribute named key.
func (e *Element) RemoveAttr(key string) {
	key = strings.ToLower(key)
	out := e.Attrs[:0]
	for _, a := range e.Attrs {
		if a.Key != key {
			out = append(out, a)
		}
	}
	e.Attrs = out
}

// Classes returns the class tokens of e.
func (e *Element) Classes() []string {
	v, _ := e.GetAttr("class")
	return strings.Fields(v)
}

// HasClass reports whether e carries class.
func (e *Element) HasClass(class string) bool {
	for _, c := range e.Classes() {
		if c == class {
			return true
		}
	}
	return false
}

// AddClass adds class if missing.
func (e *Element) AddClass(class string) {
	if class == "" || e.HasClass(class) {
		return
	}
	e.SetAttr("class", strings.Join(append(e.Classes(), class), " "))
}

// RemoveClass drops every occurrence of class. The attribute is removed once
// no class remains.
func (e *Element) RemoveClass(class string) {
	if !e.HasClass(class) {
		return
	}
	var kept []string
	for _, c := range e.Classes() {
		if c != class {
			kept = append(kept, c)
		}
	}
	if len(kept) == 0 {
		e.RemoveAttr("class")
		return
	}
	e.SetAttr("class", strings.Join(kept, " "))
}

// TextContent concatenates the text of every descendant text node.
func (e *Element) TextContent() string {
	if e.IsText() {
		return e.Text
	}
	var b strings.Builder
	for _, child := range e.Children {
		b.WriteString(child.TextContent())
	}
	return b.String()
}

// SetText replaces the children of e with a single text node. An empty text
// leaves e without children.
func (e *Element) SetText(text string) {
	for _, child := range e.Children {
		child.Parent = nil
	}
	e.Children = nil
	if text != "" {
		e.Append(NewText(text))
	}
}

// Walk visits e and its descendants in document order until fn returns
// false.
func (e *Element) Walk(fn func(*Element) bool) bool {
	if !fn(e) {
		return false
	}
	for _, child := range e.Children {
		if !child.Walk(fn) {
			return false
		}
	}
	return true
}

// NextElementSibling returns the following sibling that is not a text node.
func (e *Element) NextElementSibling() *Element {
	if e.Parent == nil {
		return nil
	}
	siblings := e.Parent.Children
	for i, s := range siblings {
		if s != e {
			continue
		}
		for _, next := range siblings[i+1:] {
			if !next.IsText() {
				return next
			}
		}
		return nil
	}
	return nil
}
