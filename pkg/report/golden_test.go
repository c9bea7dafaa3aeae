package report

import (
	"path/filepath"
	"testing"

	"github.com/goliatone/go-validity/pkg/htmlform"
	"github.com/goliatone/go-validity/pkg/testsupport"
	"github.com/goliatone/go-validity/pkg/validators"
	"github.com/goliatone/go-validity/pkg/validity"
)

func TestEngine_TextGolden(t *testing.T) {
	doc := testsupport.LoadForm(t, filepath.Join("testdata", "contact.html"))
	collector := &Collector{}

	ctx, err := validity.Apply(doc, htmlform.Collaborators(doc, collector),
		validators.NewDefaultRegistry().Option(),
		validity.WithParentSelector("fieldset"),
		validity.WithGroupPolicy(validity.GroupDedupe),
	)
	if err != nil {
		t.Fatalf("apply: %v", err)
	}
	if ctx.Submit(nil) {
		t.Fatalf("form should be rejected")
	}
	summary, ok := collector.Last()
	if !ok {
		t.Fatalf("missing summary")
	}

	goldenSummary := filepath.Join("testdata", "contact.summary.json")
	testsupport.WriteGolden(t, goldenSummary, summary)
	var want Summary
	testsupport.MustLoadJSON(t, goldenSummary, &want)
	if diff := testsupport.CompareGolden(want, summary); diff != "" {
		t.Fatalf("summary mismatch (-want +got):\n%s", diff)
	}

	engine, err := New()
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	out, err := engine.RenderString(FormatText, summary)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	testsupport.AssertGoldenText(t, filepath.Join("testdata", "contact.golden.txt"), out)
}
