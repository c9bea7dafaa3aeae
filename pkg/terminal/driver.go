package terminal

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/AlecAivazis/survey/v2"
	surveyterm "github.com/AlecAivazis/survey/v2/terminal"

	"github.com/goliatone/go-validity/pkg/validity"
)

// Prompt describes one question about a field.
type Prompt struct {
	// Label is the field's name, or its control ID when unnamed.
	Label string
	// Help comes from the control's title attribute.
	Help string
	// Kind is the kind of the field's control. Text prompts use it to pick
	// a masked or multi-line editor.
	Kind validity.ControlKind
	// Default is the current value of text-like controls.
	Default string
	// Options are the choices of a select or of a radio/checkbox group.
	Options []string
	// Selected indexes the options that are currently chosen.
	Selected []int
	// Multi allows more than one option to be chosen.
	Multi bool
	// Checked is the current state of a lone radio or checkbox.
	Checked bool
}

// PromptDriver asks questions on a terminal. Sessions only talk to the
// terminal through it, so tests can script the answers.
type PromptDriver interface {
	// Text asks for a free-form value.
	Text(ctx context.Context, p Prompt) (string, error)
	// Confirm asks a yes/no question for a lone radio or checkbox.
	Confirm(ctx context.Context, p Prompt) (bool, error)
	// Choose returns the indexes of the chosen options.
	Choose(ctx context.Context, p Prompt) ([]int, error)
	// Info shows a message without waiting for an answer.
	Info(ctx context.Context, msg string) error
}

type surveyDriver struct {
	out io.Writer
}

// NewSurveyDriver returns the interactive driver. Info messages go to out,
// or stdout when out is nil.
func NewSurveyDriver(out io.Writer) PromptDriver {
	if out == nil {
		out = os.Stdout
	}
	return &surveyDriver{out: out}
}

func (d *surveyDriver) Text(ctx context.Context, p Prompt) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	var q survey.Prompt
	switch p.Kind {
	case validity.KindPassword:
		q = &survey.Password{Message: p.Label, Help: p.Help}
	case validity.KindTextarea:
		q = &survey.Multiline{Message: p.Label, Help: p.Help, Default: p.Default}
	default:
		q = &survey.Input{Message: p.Label, Help: p.Help, Default: p.Default}
	}
	var out string
	if err := survey.AskOne(q, &out); err != nil {
		return "", translateSurveyErr(err)
	}
	return out, nil
}

func (d *surveyDriver) Confirm(ctx context.Context, p Prompt) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	var out bool
	q := &survey.Confirm{Message: p.Label, Help: p.Help, Default: p.Checked}
	if err := survey.AskOne(q, &out); err != nil {
		return false, translateSurveyErr(err)
	}
	return out, nil
}

func (d *surveyDriver) Choose(ctx context.Context, p Prompt) ([]int, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if len(p.Options) == 0 {
		return nil, fmt.Errorf("terminal: %s has no options", p.Label)
	}

	if p.Multi {
		q := &survey.MultiSelect{Message: p.Label, Options: p.Options, Help: p.Help}
		if chosen := pick(p.Options, p.Selected); len(chosen) > 0 {
			q.Default = chosen
		}
		var out []int
		if err := survey.AskOne(q, &out); err != nil {
			return nil, translateSurveyErr(err)
		}
		return out, nil
	}

	q := &survey.Select{Message: p.Label, Options: p.Options, Help: p.Help}
	if chosen := pick(p.Options, p.Selected); len(chosen) > 0 {
		q.Default = chosen[0]
	}
	var out int
	if err := survey.AskOne(q, &out); err != nil {
		return nil, translateSurveyErr(err)
	}
	return []int{out}, nil
}

func (d *surveyDriver) Info(ctx context.Context, msg string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	_, err := fmt.Fprintln(d.out, msg)
	return err
}

func translateSurveyErr(err error) error {
	if errors.Is(err, surveyterm.InterruptErr) {
		return ErrAborted
	}
	return err
}

// pick returns the options at the given indexes, skipping any out of range.
func pick(options []string, indexes []int) []string {
	var out []string
	for _, i := range indexes {
		if i >= 0 && i < len(options) {
			out = append(out, options[i])
		}
	}
	return out
}
