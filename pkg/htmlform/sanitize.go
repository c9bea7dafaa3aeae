package htmlform

import (
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
	"golang.org/x/net/html"

	"github.com/goliatone/go-validity/pkg/form"
	"github.com/goliatone/go-validity/pkg/validity"
)

var (
	messagePolicyOnce sync.Once
	messagePolicy     *bluemonday.Policy
)

// SanitizeMessage strips markup from a validator message and returns plain
// text. Entities are decoded; escaping happens again when the document is
// rendered.
func SanitizeMessage(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return ""
	}
	cleaned := messageSanitizer().Sanitize(trimmed)
	return strings.TrimSpace(html.UnescapeString(cleaned))
}

func messageSanitizer() *bluemonday.Policy {
	messagePolicyOnce.Do(func() {
		messagePolicy = bluemonday.StrictPolicy()
	})
	return messagePolicy
}

// SanitizingLayout wraps layout so every MessageTarget it returns passes
// text through SanitizeMessage.
func SanitizingLayout(layout validity.Layout) validity.Layout {
	return sanitizingLayout{inner: layout}
}

type sanitizingLayout struct {
	inner validity.Layout
}

func (l sanitizingLayout) Targets(f validity.FormHandle, control validity.Control, grouped bool, parentSelector string) (validity.DisplayTarget, validity.MessageTarget) {
	display, messages := l.inner.Targets(f, control, grouped, parentSelector)
	if messages == nil {
		return display, nil
	}
	return display, sanitizedMessage{inner: messages}
}

func (l sanitizingLayout) CheckSelector(selector string) error {
	if checker, ok := l.inner.(validity.SelectorChecker); ok {
		return checker.CheckSelector(selector)
	}
	return nil
}

type sanitizedMessage struct {
	inner validity.MessageTarget
}

func (m sanitizedMessage) SetMessage(text string) {
	m.inner.SetMessage(SanitizeMessage(text))
}

// Collaborators returns the collaborator set for doc with sanitised message
// output. notifier may be nil.
func Collaborators(doc *form.Document, notifier validity.Notifier) validity.Collaborators {
	return validity.Collaborators{
		Discovery: doc,
		Layout:    SanitizingLayout(doc),
		Focuser:   doc,
		Notifier:  notifier,
	}
}
