package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"sort"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/goliatone/go-validity/pkg/config"
	"github.com/goliatone/go-validity/pkg/form"
	"github.com/goliatone/go-validity/pkg/htmlform"
	"github.com/goliatone/go-validity/pkg/report"
	"github.com/goliatone/go-validity/pkg/validity"
)

// rootOptions holds the persistent flags shared by every subcommand.
type rootOptions struct {
	configPath string
	envFile    string
	verbose    bool
	formID     string
	formIndex  int
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	cmd := &cobra.Command{
		Use:   "validity",
		Short: "Validate HTML forms with declarative validators",
		Long: `validity reads an HTML form, binds the validators declared on its
controls and runs the same checks a browser would run on submit.

Examples:
  validity check signup.html --set email=jane@example.com
  validity render signup.html --set plan=pro > annotated.html
  validity prompt signup.html --format json`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&opts.configPath, "config", "", "YAML settings file")
	flags.StringVar(&opts.envFile, "env-file", "", "dotenv file with VALIDITY_* overrides (default .env when present)")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "enable debug logging")
	flags.StringVar(&opts.formID, "form-id", "", "id or name of the form to use")
	flags.IntVar(&opts.formIndex, "index", 0, "position of the form in the document when --form-id is not set")

	cmd.AddCommand(newCheckCmd(opts))
	cmd.AddCommand(newRenderCmd(opts))
	cmd.AddCommand(newPromptCmd(opts))
	return cmd
}

// session is one loaded form with its bound validation context.
type session struct {
	doc       *form.Document
	vctx      *validity.Context
	collector *report.Collector
	logger    *slog.Logger
}

func (o *rootOptions) settings() (config.Settings, error) {
	var loadOpts []config.LoadOption
	if o.envFile != "" {
		loadOpts = append(loadOpts, config.WithEnvFile(o.envFile))
	}
	return config.Load(o.configPath, loadOpts...)
}

func (o *rootOptions) newLogger(w io.Writer, level string) (*slog.Logger, error) {
	lvl := log.WarnLevel
	if level != "" {
		parsed, err := log.ParseLevel(level)
		if err != nil {
			return nil, err
		}
		lvl = parsed
	}
	if o.verbose {
		lvl = log.DebugLevel
	}
	handler := log.NewWithOptions(w, log.Options{
		Level:           lvl,
		ReportTimestamp: o.verbose,
		Prefix:          "validity",
	})
	return slog.New(handler), nil
}

// open parses the form at path and applies the configured validators.
func (o *rootOptions) open(cmd *cobra.Command, path string, extra ...validity.Option) (*session, error) {
	s, err := o.settings()
	if err != nil {
		return nil, err
	}
	logger, err := o.newLogger(cmd.ErrOrStderr(), s.LogLevel)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var parseOpts []htmlform.Option
	if o.formID != "" {
		parseOpts = append(parseOpts, htmlform.WithFormID(o.formID))
	} else if o.formIndex > 0 {
		parseOpts = append(parseOpts, htmlform.WithIndex(o.formIndex))
	}
	doc, err := htmlform.Parse(f, parseOpts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	options, err := s.Options()
	if err != nil {
		return nil, err
	}
	options = append(options, validity.WithLogger(logger))
	options = append(options, extra...)

	collector := &report.Collector{}
	vctx, err := validity.Apply(doc, htmlform.Collaborators(doc, collector), options...)
	if err != nil {
		return nil, err
	}
	logger.Debug("form loaded", "path", path, "form", doc.FormID(), "fields", len(vctx.Fields()))

	return &session{doc: doc, vctx: vctx, collector: collector, logger: logger}, nil
}

// fill applies name=value pairs. Repeated names accumulate, which checks
// several boxes of one checkbox group.
func (s *session) fill(pairs []string) error {
	values := make(map[string][]string)
	for _, pair := range pairs {
		name, value, ok := strings.Cut(pair, "=")
		name = strings.TrimSpace(name)
		if !ok || name == "" {
			return fmt.Errorf("invalid --set %q: expected name=value", pair)
		}
		values[name] = append(values[name], value)
	}

	names := make([]string, 0, len(values))
	for name := range values {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		if _, err := s.doc.Fill(name, values[name]...); err != nil {
			return err
		}
		s.logger.Debug("filled control", "name", name, "values", values[name])
	}
	return nil
}

// submit validates the whole form and summarises the outcome.
func (s *session) submit() report.Summary {
	s.vctx.Submit(validity.NewSubmitEvent())
	if summary, ok := s.collector.Last(); ok && !s.vctx.Valid() {
		return summary
	}
	return report.Summarize(s.doc.FormID(), s.vctx.Fields())
}

func invalidExit(summary report.Summary) error {
	if summary.Valid {
		return nil
	}
	return &ExitError{Code: 1}
}
