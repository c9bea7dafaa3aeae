package htmlform

import (
	"fmt"
	"io"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/goliatone/go-validity/pkg/form"
)

// Option configures Parse.
type Option func(*parseOptions)

type parseOptions struct {
	formID string
	index  int
}

// WithFormID selects the form whose id attribute equals id. When no form
// carries that id, a form whose name attribute equals it is used.
func WithFormID(id string) Option {
	return func(o *parseOptions) {
		o.formID = id
	}
}

// WithIndex selects the n-th form in document order, zero based.
func WithIndex(n int) Option {
	return func(o *parseOptions) {
		if n >= 0 {
			o.index = n
		}
	}
}

// Parse reads an HTML document or fragment and returns the selected form.
// Without options the first form is used.
func Parse(r io.Reader, opts ...Option) (*form.Document, error) {
	cfg := parseOptions{}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	forms, err := findForms(r)
	if err != nil {
		return nil, err
	}

	if cfg.formID != "" {
		for _, key := range []string{"id", "name"} {
			for _, n := range forms {
				if attr(n, key) == cfg.formID {
					return form.NewDocument(convert(n)), nil
				}
			}
		}
		return nil, fmt.Errorf("%w: id or name %q", ErrNoForm, cfg.formID)
	}
	if cfg.index >= len(forms) {
		return nil, fmt.Errorf("%w: index %d of %d", ErrNoForm, cfg.index, len(forms))
	}
	return form.NewDocument(convert(forms[cfg.index])), nil
}

// ParseAll returns every form in the markup in document order.
func ParseAll(r io.Reader) ([]*form.Document, error) {
	forms, err := findForms(r)
	if err != nil {
		return nil, err
	}
	out := make([]*form.Document, 0, len(forms))
	for _, n := range forms {
		out = append(out, form.NewDocument(convert(n)))
	}
	return out, nil
}

func findForms(r io.Reader) ([]*html.Node, error) {
	root, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("htmlform: parse: %w", err)
	}
	var forms []*html.Node
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && n.DataAtom == atom.Form {
			forms = append(forms, n)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(root)
	if len(forms) == 0 {
		return nil, ErrNoForm
	}
	return forms, nil
}

// convert copies element and text nodes. Comments and doctypes are dropped.
func convert(n *html.Node) *form.Element {
	switch n.Type {
	case html.TextNode:
		return form.NewText(n.Data)
	case html.ElementNode:
	default:
		return nil
	}

	e := &form.Element{Tag: n.Data}
	for _, a := range n.Attr {
		if a.Namespace != "" {
			continue
		}
		e.SetAttr(a.Key, a.Val)
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if child := convert(c); child != nil {
			e.Append(child)
		}
	}
	return e
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}
