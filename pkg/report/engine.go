package report

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"strings"
	"sync"

	"github.com/flosch/pongo2/v6"
)

//go:embed templates/*.tpl
var embedded embed.FS

// Formats shipped with the package.
const (
	FormatText = "text"
	FormatHTML = "html"
)

// ErrUnknownFormat is returned for a format with no template.
var ErrUnknownFormat = errors.New("report: unknown format")

// Option configures an Engine.
type Option func(*config)

type config struct {
	templates fs.FS
	globals   map[string]any
}

// WithFS replaces the embedded templates. Templates are looked up as
// <format>.tpl at the root of files.
func WithFS(files fs.FS) Option {
	return func(cfg *config) {
		cfg.templates = files
	}
}

// WithGlobalData seeds values available to every template.
func WithGlobalData(data map[string]any) Option {
	return func(cfg *config) {
		if len(data) == 0 {
			return
		}
		if cfg.globals == nil {
			cfg.globals = make(map[string]any, len(data))
		}
		for key, value := range data {
			cfg.globals[strings.TrimSpace(key)] = value
		}
	}
}

// Engine renders summaries through a pongo2 template set.
type Engine struct {
	mu        sync.RWMutex
	set       *pongo2.TemplateSet
	templates map[string]*pongo2.Template
}

// New builds an Engine over the embedded templates unless WithFS is given.
func New(options ...Option) (*Engine, error) {
	cfg := &config{}
	for _, opt := range options {
		if opt != nil {
			opt(cfg)
		}
	}
	if cfg.templates == nil {
		sub, err := fs.Sub(embedded, "templates")
		if err != nil {
			return nil, fmt.Errorf("report: embedded templates: %w", err)
		}
		cfg.templates = sub
	}

	registerFilters()

	set := pongo2.NewSet("validity-report", pongo2.NewFSLoader(cfg.templates))
	if len(cfg.globals) > 0 {
		if set.Globals == nil {
			set.Globals = make(pongo2.Context)
		}
		set.Globals.Update(pongo2.Context(cfg.globals))
	}
	return &Engine{
		set:       set,
		templates: make(map[string]*pongo2.Template),
	}, nil
}

// Render writes summary in format to w.
func (e *Engine) Render(w io.Writer, format string, summary Summary) error {
	tmpl, err := e.template(format)
	if err != nil {
		return err
	}
	var buf bytes.Buffer
	if err := tmpl.ExecuteWriter(pongo2.Context{"summary": summary}, &buf); err != nil {
		return fmt.Errorf("report: execute %q: %w", format, err)
	}
	_, err = w.Write(buf.Bytes())
	return err
}

// RenderString is Render into a string.
func (e *Engine) RenderString(format string, summary Summary) (string, error) {
	var buf bytes.Buffer
	if err := e.Render(&buf, format, summary); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func (e *Engine) template(format string) (*pongo2.Template, error) {
	format = strings.ToLower(strings.TrimSpace(format))
	if format == "" {
		format = FormatText
	}
	name := format + ".tpl"

	e.mu.RLock()
	tmpl, ok := e.templates[name]
	e.mu.RUnlock()
	if ok {
		return tmpl, nil
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	if tmpl, ok := e.templates[name]; ok {
		return tmpl, nil
	}
	tmpl, err := e.set.FromFile(name)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %v", ErrUnknownFormat, format, err)
	}
	e.templates[name] = tmpl
	return tmpl, nil
}

var filtersOnce sync.Once

func registerFilters() {
	filtersOnce.Do(func() {
		if !pongo2.FilterExists("fieldstatus") {
			_ = pongo2.RegisterFilter("fieldstatus", fieldStatusFilter)
		}
	})
}

func fieldStatusFilter(in *pongo2.Value, _ *pongo2.Value) (*pongo2.Value, *pongo2.Error) {
	if in.IsTrue() {
		return pongo2.AsValue("ok"), nil
	}
	return pongo2.AsValue("invalid"), nil
}
