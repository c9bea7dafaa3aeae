package terminal

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/url"
	"sort"
	"strings"

	"github.com/goliatone/go-validity/pkg/form"
	"github.com/goliatone/go-validity/pkg/validity"
)

// Session fills a form.Document from terminal prompts. Every answer is
// written into the document, the field is blurred and validated, and
// rejected answers are prompted again with the field's message. Once all
// fields are answered the form is submitted; if the submit is rejected the
// focused field is prompted again.
type Session struct {
	driver       PromptDriver
	outputFormat OutputFormat
	theme        Theme
	maxAttempts  int
	logger       *slog.Logger
}

// New constructs a session with defaults (survey driver, JSON output, five
// attempts per field).
func New(options ...Option) *Session {
	s := &Session{
		outputFormat: OutputFormatJSON,
		maxAttempts:  5,
		logger:       slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(s)
	}
	if s.driver == nil {
		s.driver = NewSurveyDriver(nil)
	}
	return s
}

// ContentType reports the serialization format used by Run.
func (s *Session) ContentType() string {
	switch s.outputFormat {
	case OutputFormatFormURLEncoded:
		return "application/x-www-form-urlencoded"
	case OutputFormatPrettyText:
		return "text/plain"
	default:
		return "application/json"
	}
}

// Run prompts for every field of vctx, which must be bound to doc, and
// returns the submitted values serialized in the configured format.
func (s *Session) Run(ctx context.Context, doc *form.Document, vctx *validity.Context) ([]byte, error) {
	if ctx == nil {
		return nil, errors.New("terminal: context is required")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if doc == nil || vctx == nil {
		return nil, ErrMissingForm
	}

	seen := make(map[string]struct{})
	for _, f := range vctx.Fields() {
		key := groupKey(f)
		if _, done := seen[key]; done {
			continue
		}
		seen[key] = struct{}{}
		if err := s.promptField(ctx, doc, vctx, f); err != nil {
			return nil, err
		}
	}

	for attempt := 1; ; attempt++ {
		vctx.Submit(validity.NewSubmitEvent())
		if vctx.Valid() {
			break
		}
		if s.maxAttempts > 0 && attempt >= s.maxAttempts {
			return nil, fmt.Errorf("%w: submit", ErrTooManyAttempts)
		}

		focused := doc.Focused()
		if focused == nil {
			return nil, errors.New("terminal: submit rejected without a focused field")
		}
		f, ok := vctx.Lookup(focused)
		if !ok {
			return nil, fmt.Errorf("terminal: focused control %q is not validated", focused.ID())
		}
		s.info(ctx, s.theme.ErrorPrefix+fieldLabel(f)+": "+f.Message())
		if err := s.promptField(ctx, doc, vctx, f); err != nil {
			return nil, err
		}
	}

	return s.serialize(doc.Values())
}

func (s *Session) promptField(ctx context.Context, doc *form.Document, vctx *validity.Context, f *validity.Field) error {
	label := fieldLabel(f)
	for attempt := 1; ; attempt++ {
		values, err := s.ask(ctx, doc, f)
		if err != nil {
			return err
		}

		if err := apply(doc, f, values); err != nil {
			s.info(ctx, s.theme.ErrorPrefix+fmt.Sprintf("Invalid %s: %v", label, err))
		} else {
			vctx.Blur(f.Control)
			message, ok := verdict(vctx, f)
			if ok {
				s.logger.Debug("terminal: field accepted", "field", label)
				return nil
			}
			s.info(ctx, s.theme.ErrorPrefix+fmt.Sprintf("Invalid %s: %s", label, message))
		}

		if s.maxAttempts > 0 && attempt >= s.maxAttempts {
			return fmt.Errorf("%w: %s", ErrTooManyAttempts, label)
		}
	}
}

func (s *Session) ask(ctx context.Context, doc *form.Document, f *validity.Field) ([]string, error) {
	p := promptFor(doc, f)

	switch {
	case p.Options == nil && isCheckable(p.Kind):
		yes, err := s.driver.Confirm(ctx, p)
		if err != nil || !yes {
			return nil, err
		}
		return []string{p.Default}, nil

	case p.Options != nil:
		chosen, err := s.driver.Choose(ctx, p)
		if err != nil {
			return nil, err
		}
		var out []string
		for _, i := range chosen {
			if i < 0 || i >= len(p.Options) {
				if p.Kind == validity.KindSelect {
					// an empty answer fails in Fill and is reported
					return []string{""}, nil
				}
				continue
			}
			out = append(out, p.Options[i])
		}
		return out, nil

	default:
		v, err := s.driver.Text(ctx, p)
		return []string{v}, err
	}
}

// promptFor describes f for the driver. Selects and groups get options;
// a lone radio or checkbox carries its value in Default.
func promptFor(doc *form.Document, f *validity.Field) Prompt {
	p := Prompt{
		Label:   fieldLabel(f),
		Kind:    f.Control.Kind(),
		Default: f.Control.Value(),
		Checked: f.Control.Checked(),
	}
	if v, ok := f.Control.Attr("title"); ok {
		p.Help = v
	}

	switch {
	case p.Kind == validity.KindSelect:
		p.Options = []string{}
		if el, ok := doc.Lookup(f.Control.ID()); ok {
			p.Options = el.Options()
		}
		for i, option := range p.Options {
			if option == p.Default {
				p.Selected = []int{i}
				break
			}
		}
	case isCheckable(p.Kind) && f.Grouped():
		p.Options = make([]string, 0, len(f.Members))
		for i, m := range f.Members {
			p.Options = append(p.Options, m.Value())
			if m.Checked() {
				p.Selected = append(p.Selected, i)
			}
		}
		p.Multi = p.Kind == validity.KindCheckbox
	}
	return p
}

func isCheckable(kind validity.ControlKind) bool {
	return kind == validity.KindRadio || kind == validity.KindCheckbox
}

func (s *Session) info(ctx context.Context, msg string) {
	if err := s.driver.Info(ctx, msg); err != nil {
		s.logger.Warn("terminal: info message dropped", "error", err)
	}
}

// apply writes values into the document. Named controls go through
// Document.Fill so groups stay consistent; unnamed ones are edited directly.
func apply(doc *form.Document, f *validity.Field, values []string) error {
	if f.Name != "" {
		_, err := doc.Fill(f.Name, values...)
		return err
	}
	el, ok := doc.Lookup(f.Control.ID())
	if !ok {
		return fmt.Errorf("%w: %q", form.ErrUnknownControl, f.Control.ID())
	}
	switch f.Control.Kind() {
	case validity.KindRadio, validity.KindCheckbox:
		el.SetChecked(len(values) > 0)
		return nil
	}
	v := ""
	if len(values) > 0 {
		v = values[0]
	}
	return el.SetValue(v)
}

// verdict validates f and, for groups, every field sharing its name.
func verdict(vctx *validity.Context, f *validity.Field) (string, bool) {
	targets := []*validity.Field{f}
	if f.Grouped() && f.Name != "" {
		targets = targets[:0]
		for _, other := range vctx.Fields() {
			if other.Name == f.Name {
				targets = append(targets, other)
			}
		}
	}
	for _, t := range targets {
		valid, message, ok := vctx.Validate(t.Control)
		if ok && !valid {
			return message, false
		}
	}
	return "", true
}

func groupKey(f *validity.Field) string {
	if f.Grouped() && f.Name != "" {
		return "name:" + f.Name
	}
	return "id:" + f.Control.ID()
}

func fieldLabel(f *validity.Field) string {
	if f.Name != "" {
		return f.Name
	}
	return f.Control.ID()
}

func (s *Session) serialize(values url.Values) ([]byte, error) {
	switch s.outputFormat {
	case OutputFormatFormURLEncoded:
		return []byte(values.Encode()), nil
	case OutputFormatPrettyText:
		return []byte(prettyPrint(values)), nil
	default:
		return jsonBytes(values)
	}
}

func prettyPrint(values url.Values) string {
	keys := make([]string, 0, len(values))
	for key := range values {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	var b strings.Builder
	for _, key := range keys {
		for _, v := range values[key] {
			fmt.Fprintf(&b, "%s=%s\n", key, v)
		}
	}
	return b.String()
}

func jsonBytes(values url.Values) ([]byte, error) {
	out := make(map[string]any, len(values))
	for key, v := range values {
		if len(v) == 1 {
			out[key] = v[0]
			continue
		}
		out[key] = v
	}
	return json.Marshal(out)
}
