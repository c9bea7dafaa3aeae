package report

import (
	"errors"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-validity/pkg/form"
	"github.com/goliatone/go-validity/pkg/validity"
)

func rejectedForm(t *testing.T) (*form.Document, *Collector) {
	t.Helper()
	root := form.NewElement("form", form.A("id", "contact")).Append(
		form.NewElement("p").Append(
			form.NewElement("input", form.A("name", "name"), form.A("required", "")),
			form.NewElement("span", form.A("class", "error")),
		),
		form.NewElement("p").Append(
			form.NewElement("input", form.A("name", "email"), form.A("required", "")),
			form.NewElement("span", form.A("class", "error")),
		),
		form.NewElement("p").Append(
			form.NewElement("input", form.A("name", "topic"), form.A("value", "billing & <tax>"), form.A("data-validators", "topic")),
			form.NewElement("span", form.A("class", "error")),
		),
	)
	doc := form.NewDocument(root)
	collector := &Collector{}
	topic := func(value, _ string, _ validity.Control) error {
		return validity.Reject("Unknown topic: " + value)
	}

	ctx, err := validity.Apply(doc, validity.Collaborators{Discovery: doc, Layout: doc, Notifier: collector},
		validity.WithValidator("topic", topic),
	)
	if err != nil {
		t.Fatalf("apply: %v", err)
	}
	if ctx.Submit(nil) {
		t.Fatalf("form should be rejected")
	}
	return doc, collector
}

func TestCollector_Summary(t *testing.T) {
	_, collector := rejectedForm(t)
	if collector.Len() != 1 {
		t.Fatalf("expected one notification, got %d", collector.Len())
	}
	summary, ok := collector.Last()
	if !ok {
		t.Fatalf("missing summary")
	}

	want := Summary{
		Form:    "contact",
		Valid:   false,
		Total:   3,
		Invalid: 3,
		Fields: []FieldResult{
			{Label: "name", Control: "name#1", Message: validity.DefaultRequiredMessage},
			{Label: "email", Control: "email#2", Message: validity.DefaultRequiredMessage},
			{Label: "topic", Control: "topic#3", Message: "Unknown topic: billing & <tax>"},
		},
		Messages: []string{validity.DefaultRequiredMessage, "Unknown topic: billing & <tax>"},
	}
	if diff := cmp.Diff(want, summary); diff != "" {
		t.Fatalf("summary mismatch (-want +got):\n%s", diff)
	}
}

func TestSummarize_AllValid(t *testing.T) {
	s := Summarize("empty", nil)
	if !s.Valid || s.Total != 0 || s.Messages != nil {
		t.Fatalf("unexpected summary %+v", s)
	}
}

func TestEngine_Text(t *testing.T) {
	_, collector := rejectedForm(t)
	summary, _ := collector.Last()

	engine, err := New()
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	out, err := engine.RenderString(FormatText, summary)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	for _, want := range []string{
		"form contact: 3 of 3 fields invalid",
		"[invalid] name: This field is required",
		"[invalid] topic: Unknown topic: billing & <tax>",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("text report missing %q:\n%s", want, out)
		}
	}

	valid, err := engine.RenderString("", Summary{Form: "ok", Valid: true, Total: 1, Fields: []FieldResult{{Label: "a", Valid: true}}})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.Contains(valid, "form ok: valid") || !strings.Contains(valid, "[ok] a") {
		t.Fatalf("valid text report:\n%s", valid)
	}
}

func TestEngine_HTMLEscapes(t *testing.T) {
	_, collector := rejectedForm(t)
	summary, _ := collector.Last()

	engine, err := New()
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	out, err := engine.RenderString(FormatHTML, summary)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.Contains(out, `class="validity-report invalid"`) {
		t.Fatalf("missing invalid class:\n%s", out)
	}
	if !strings.Contains(out, "billing &amp; &lt;tax&gt;") {
		t.Fatalf("messages must be escaped:\n%s", out)
	}
	if strings.Contains(out, "<tax>") {
		t.Fatalf("raw markup leaked:\n%s", out)
	}
}

func TestEngine_CustomTemplatesAndUnknownFormat(t *testing.T) {
	files := fstest.MapFS{
		"short.tpl": {Data: []byte(`{{ brand }}:{{ summary.Invalid }}`)},
	}
	engine, err := New(WithFS(files), WithGlobalData(map[string]any{"brand": "acme"}))
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	out, err := engine.RenderString("short", Summary{Invalid: 2})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if out != "acme:2" {
		t.Fatalf("unexpected output %q", out)
	}

	if _, err := engine.RenderString("pdf", Summary{}); !errors.Is(err, ErrUnknownFormat) {
		t.Fatalf("expected ErrUnknownFormat, got %v", err)
	}
}
