package validity

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestResolveKeys(t *testing.T) {
	tests := []struct {
		name     string
		attr     string
		required bool
		want     []string
	}{
		{name: "empty", attr: "", want: []string{}},
		{name: "whitespace only", attr: "   ", want: []string{}},
		{name: "declared order", attr: "email  domain\tlength", want: []string{"email", "domain", "length"}},
		{name: "required prepended", attr: "email", required: true, want: []string{"required", "email"}},
		{name: "required alone", required: true, want: []string{"required"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := text("f", "", tt.attr)
			c.required = tt.required
			got := ResolveKeys(c, DefaultAttributeName)
			if got == nil {
				got = []string{}
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Fatalf("keys mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestResolveValidators_DropsUnknownKeysAndKeepsOrder(t *testing.T) {
	var order []string
	mark := func(label string) Validator {
		return func(string, string, Control) error {
			order = append(order, label)
			return nil
		}
	}
	cfg := NewConfig(
		WithAttributeName("data-rules"),
		WithValidator("b", mark("b")),
		WithValidator("a", mark("a")),
		WithValidator(RequiredKey, mark("required")),
	)

	c := &fakeControl{id: "x", name: "x", kind: KindText, required: true, attrs: map[string]string{
		"data-rules": "a unknown b a",
	}}
	validators := ResolveValidators(c, cfg)
	if len(validators) != 4 {
		t.Fatalf("expected 4 validators, got %d", len(validators))
	}
	for _, v := range validators {
		_ = v("", "x", c)
	}
	if diff := cmp.Diff([]string{"required", "a", "b", "a"}, order); diff != "" {
		t.Fatalf("validator order (-want +got):\n%s", diff)
	}
}

func TestBuildRegistry_SkipsSubmitAndHidden(t *testing.T) {
	form := newFakeForm(
		text("title", "", ""),
		&fakeControl{id: "token", name: "token", kind: KindHidden},
		&fakeControl{id: "go", name: "go", kind: KindSubmit},
		&fakeControl{id: "img", name: "img", kind: ControlKind("image-submit")},
		&fakeControl{id: "body", name: "body", kind: KindTextarea},
	)
	reg := BuildRegistry(form, form.collaborators(), NewConfig(), nil)

	var ids []string
	for _, f := range reg.Fields() {
		ids = append(ids, f.Control.ID())
		if !f.IsValid() {
			t.Fatalf("fields start valid")
		}
	}
	if diff := cmp.Diff([]string{"title", "body"}, ids); diff != "" {
		t.Fatalf("field ids (-want +got):\n%s", diff)
	}
}

func TestBuildRegistry_GroupPerControl(t *testing.T) {
	group := checkboxGroup("size", "s", "m", "l")
	form := newFakeForm(group[0], group[1], group[2])
	cfg := NewConfig(WithParentSelector("fieldset"))

	reg := BuildRegistry(form, form.collaborators(), cfg, nil)
	if reg.Len() != 3 {
		t.Fatalf("expected one field per control, got %d", reg.Len())
	}
	for i, f := range reg.Fields() {
		if len(f.Members) != 3 || !f.Grouped() {
			t.Fatalf("field %d should share the full member set", i)
		}
		got, ok := reg.Lookup(group[i])
		if !ok || got != f {
			t.Fatalf("control %d should route to its own field", i)
		}
	}
	for _, call := range form.layouts {
		if !call.grouped || call.selector != "fieldset" {
			t.Fatalf("group layout lookups must be grouped with the parent selector: %+v", call)
		}
	}
}

func TestBuildRegistry_GroupDedupe(t *testing.T) {
	group := checkboxGroup("size", "s", "m", "l")
	form := newFakeForm(text("before", "", ""), group[0], group[1], group[2], text("after", "", ""))
	cfg := NewConfig(WithGroupPolicy(GroupDedupe))

	reg := BuildRegistry(form, form.collaborators(), cfg, nil)
	if reg.Len() != 3 {
		t.Fatalf("expected before, size, after; got %d fields", reg.Len())
	}
	groupField := reg.At(1)
	for _, member := range group {
		f, ok := reg.Lookup(member)
		if !ok || f != groupField {
			t.Fatalf("member %s should route to the shared group field", member.ID())
		}
	}
	if reg.At(2).Control.ID() != "after" {
		t.Fatalf("controls after the group keep document order")
	}
}

func TestBuildRegistry_RerunDoesNotDuplicate(t *testing.T) {
	form := newFakeForm(text("a", "", ""), text("b", "", ""))
	collab := form.collaborators()
	cfg := NewConfig()

	reg := BuildRegistry(form, collab, cfg, nil)
	BuildRegistry(form, collab, cfg, reg)
	if reg.Len() != 2 {
		t.Fatalf("rerun duplicated fields: %d", reg.Len())
	}

	form.controls = append(form.controls, text("c", "", ""))
	BuildRegistry(form, collab, cfg, reg)
	if reg.Len() != 3 || reg.At(2).Control.ID() != "c" {
		t.Fatalf("rerun should append only the new control")
	}
}

func TestBuildRegistry_SingletonLayout(t *testing.T) {
	lone := &fakeControl{id: "agree", name: "agree", kind: KindCheckbox}
	form := newFakeForm(lone)
	reg := BuildRegistry(form, form.collaborators(), NewConfig(), nil)

	if reg.Len() != 1 || reg.At(0).Grouped() {
		t.Fatalf("a lone checkbox is not a group")
	}
	if len(form.layouts) != 1 || form.layouts[0].grouped {
		t.Fatalf("lone checkbox should use singleton layout: %+v", form.layouts)
	}
}

func TestNewConfig_Defaults(t *testing.T) {
	cfg := NewConfig()
	if cfg.AttributeName != "data-validators" ||
		cfg.RequiredMessage != "This field is required" ||
		cfg.ParentSelector != "p" ||
		cfg.ErrorClass != "error" ||
		cfg.Timeout.Seconds() != 1 ||
		!cfg.ValidateOnBlur ||
		cfg.OnSubmit != nil ||
		cfg.GroupPolicy != GroupPerControl {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
	if !cfg.LiveValidation() {
		t.Fatalf("live validation is on by default")
	}

	required := cfg.Validators[RequiredKey]
	if required == nil {
		t.Fatalf("required validator should be synthesised")
	}
	if err := required("", "x", nil); err == nil || err.Error() != "This field is required" {
		t.Fatalf("synthesised required validator: %v", err)
	}
	if err := required("v", "x", nil); err != nil {
		t.Fatalf("non-empty value rejected: %v", err)
	}
}

func TestNewConfig_CallerRequiredWins(t *testing.T) {
	custom := func(string, string, Control) error { return Reject("custom") }
	cfg := NewConfig(WithValidator(RequiredKey, custom), WithRequiredMessage("ignored"))
	if err := cfg.Validators[RequiredKey]("", "", nil); err == nil || err.Error() != "custom" {
		t.Fatalf("caller supplied required validator replaced: %v", err)
	}
}

func TestNewConfig_DoesNotShareCallerMap(t *testing.T) {
	shared := map[string]Validator{}
	NewConfig(WithValidators(shared))
	if len(shared) != 0 {
		t.Fatalf("caller map mutated: %v", shared)
	}
}
