package form

import (
	"errors"
	"net/url"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-validity/pkg/validity"
)

func signupForm() *Document {
	root := NewElement("form", A("id", "signup")).Append(
		NewElement("p").Append(
			NewElement("label").Append(NewText("Email")),
			NewElement("input", A("id", "email"), A("name", "email"), A("type", "email"), A("required", ""), A("data-validators", "email")),
			NewElement("span", A("class", "error")),
		),
		NewElement("fieldset", A("class", "choices")).Append(
			NewElement("legend").Append(NewText("Size")),
			NewElement("p").Append(
				NewElement("input", A("name", "size"), A("type", "radio"), A("value", "s"), A("required", "")),
				NewElement("input", A("name", "size"), A("type", "radio"), A("value", "m")),
			),
			NewElement("span", A("class", "error hint")),
		),
		NewElement("input", A("name", "nickname")),
		NewElement("select", A("name", "color")).Append(
			NewElement("option", A("value", "")).Append(NewText("Pick one")),
			NewElement("optgroup").Append(
				NewElement("option").Append(NewText(" red ")),
				NewElement("option", A("value", "blue")).Append(NewText("Blue")),
			),
		),
		NewElement("textarea", A("name", "bio")).Append(NewText("hello")),
		NewElement("input", A("type", "checkbox"), A("name", "terms")),
		NewElement("input", A("type", "submit"), A("id", "email")),
	)
	return NewDocument(root)
}

func TestDocument_ControlsAndKeys(t *testing.T) {
	doc := signupForm()

	var keys []string
	var kinds []validity.ControlKind
	for _, c := range doc.Controls(doc) {
		keys = append(keys, c.ID())
		kinds = append(kinds, c.Kind())
	}

	wantKeys := []string{"email", "size#1", "size#2", "nickname#3", "color#4", "bio#5", "terms#6", "input#7"}
	if diff := cmp.Diff(wantKeys, keys); diff != "" {
		t.Fatalf("keys mismatch (-want +got):\n%s", diff)
	}
	wantKinds := []validity.ControlKind{
		validity.KindEmail, validity.KindRadio, validity.KindRadio, validity.KindText,
		validity.KindSelect, validity.KindTextarea, validity.KindCheckbox, validity.KindSubmit,
	}
	if diff := cmp.Diff(wantKinds, kinds); diff != "" {
		t.Fatalf("kinds mismatch (-want +got):\n%s", diff)
	}
	if doc.FormID() != "signup" {
		t.Fatalf("unexpected form id %q", doc.FormID())
	}
	if got := len(doc.Group(doc, "size")); got != 2 {
		t.Fatalf("expected two size members, got %d", got)
	}
}

func TestDocument_KeysForLateControls(t *testing.T) {
	doc := signupForm()
	before := len(doc.Elements())
	doc.Root().Append(NewElement("input", A("name", "late")))

	elements := doc.Elements()
	if len(elements) != before+1 {
		t.Fatalf("late control not discovered")
	}
	late := elements[len(elements)-1]
	if late.ID() != "late#8" {
		t.Fatalf("unexpected key %q", late.ID())
	}
	if got, ok := doc.Lookup("late#8"); !ok || got != late {
		t.Fatalf("lookup by key failed")
	}
}

func TestElement_Values(t *testing.T) {
	doc := signupForm()
	byName := func(name string) *Element { return doc.Named(name)[0] }

	if got := byName("color").Value(); got != "" {
		t.Fatalf("select without selection reports first option, got %q", got)
	}
	if diff := cmp.Diff([]string{"", "red", "blue"}, byName("color").Options()); diff != "" {
		t.Fatalf("options mismatch (-want +got):\n%s", diff)
	}
	if got := byName("bio").Value(); got != "hello" {
		t.Fatalf("textarea value %q", got)
	}
	if got := byName("terms").Value(); got != "on" {
		t.Fatalf("checkbox default value %q", got)
	}
	if !byName("email").Required() || byName("nickname").Required() {
		t.Fatalf("required attribute not reported")
	}
}

func TestDocument_Fill(t *testing.T) {
	doc := signupForm()

	if _, err := doc.Fill("email", "jane@example.com"); err != nil {
		t.Fatalf("fill email: %v", err)
	}
	if _, err := doc.Fill("color", "red"); err != nil {
		t.Fatalf("fill color: %v", err)
	}
	if _, err := doc.Fill("bio", "line one\nline two"); err != nil {
		t.Fatalf("fill bio: %v", err)
	}
	touched, err := doc.Fill("size", "m")
	if err != nil || len(touched) != 2 {
		t.Fatalf("fill size: %v (%d touched)", err, len(touched))
	}
	if _, err := doc.Fill("terms", "on"); err != nil {
		t.Fatalf("fill terms: %v", err)
	}

	want := url.Values{
		"email":    {"jane@example.com"},
		"size":     {"m"},
		"nickname": {""},
		"color":    {"red"},
		"bio":      {"line one\nline two"},
		"terms":    {"on"},
	}
	if diff := cmp.Diff(want, doc.Values()); diff != "" {
		t.Fatalf("values mismatch (-want +got):\n%s", diff)
	}

	if _, err := doc.Fill("size", "s"); err != nil {
		t.Fatalf("refill size: %v", err)
	}
	if got := doc.Values()["size"]; len(got) != 1 || got[0] != "s" {
		t.Fatalf("radio refill should leave one checked member, got %v", got)
	}
}

func TestDocument_FillErrors(t *testing.T) {
	doc := signupForm()
	if _, err := doc.Fill("missing", "x"); !errors.Is(err, ErrUnknownControl) {
		t.Fatalf("expected ErrUnknownControl, got %v", err)
	}
	if _, err := doc.Fill("color", "green"); !errors.Is(err, ErrNoSuchOption) {
		t.Fatalf("expected ErrNoSuchOption for select, got %v", err)
	}
	if _, err := doc.Fill("size", "xl"); !errors.Is(err, ErrNoSuchOption) {
		t.Fatalf("expected ErrNoSuchOption for radio, got %v", err)
	}
	if err := NewElement("div").SetValue("x"); !errors.Is(err, ErrNotEditable) {
		t.Fatalf("expected ErrNotEditable, got %v", err)
	}
}

func TestDocument_Focus(t *testing.T) {
	doc := signupForm()
	if doc.Focused() != nil {
		t.Fatalf("nothing focused initially")
	}
	bio := doc.Named("bio")[0]
	doc.Focus(bio)
	if doc.Focused() != bio {
		t.Fatalf("focus not recorded")
	}
}
