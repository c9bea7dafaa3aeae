package htmlform

import (
	"bytes"
	"fmt"
	"io"

	"golang.org/x/net/html"

	"github.com/goliatone/go-validity/pkg/form"
)

// Render writes the form element of doc, including current values, error
// classes and message text, as HTML.
func Render(w io.Writer, doc *form.Document) error {
	if doc == nil || doc.Root() == nil {
		return ErrNilDocument
	}
	root, _ := form.Mirror(doc.Root())
	if err := html.Render(w, root); err != nil {
		return fmt.Errorf("htmlform: render: %w", err)
	}
	return nil
}

// RenderString is Render into a string.
func RenderString(doc *form.Document) (string, error) {
	var buf bytes.Buffer
	if err := Render(&buf, doc); err != nil {
		return "", err
	}
	return buf.String(), nil
}
