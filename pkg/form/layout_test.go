package form

import (
	"errors"
	"testing"

	"github.com/goliatone/go-validity/pkg/validity"
)

func TestMatches(t *testing.T) {
	e := NewElement("div", A("id", "main"), A("class", "row wide"))
	tests := []struct {
		selector string
		want     bool
	}{
		{"div", true},
		{"DIV", true},
		{"p", false},
		{".row", true},
		{".row.wide", true},
		{".row.narrow", false},
		{"div.row", true},
		{"p.row", false},
		{"#main", true},
		{"div#main.row", true},
		{"#other", false},
		{"p, .wide", true},
		{"div[id=main]", true},
		{"div[class~=wide]", true},
		{"div:not(.row)", false},
		{"*", true},
		{"", false},
		{".", false},
	}
	for _, tt := range tests {
		if got := Matches(e, tt.selector); got != tt.want {
			t.Fatalf("selector %q: expected %v, got %v", tt.selector, tt.want, got)
		}
	}
	if Matches(NewText("x"), "*") {
		t.Fatalf("text nodes never match")
	}
}

func TestClosest_FullSelectorSyntax(t *testing.T) {
	radio := NewElement("input", A("type", "radio"), A("name", "plan"))
	fieldset := NewElement("fieldset", A("data-group", "plan")).Append(
		NewElement("label").Append(radio),
	)
	NewElement("form", A("id", "signup")).Append(fieldset)

	for _, selector := range []string{
		"fieldset",
		"fieldset[data-group]",
		`fieldset[data-group="plan"]`,
		"form > fieldset",
		"#signup fieldset",
		"fieldset:not(.x)",
		"section, fieldset",
	} {
		if got := Closest(radio, selector); got != fieldset {
			t.Fatalf("selector %q should find the fieldset", selector)
		}
	}
	for _, selector := range []string{"section", "fieldset.x", "div > fieldset", "fieldset["} {
		if got := Closest(radio, selector); got != nil {
			t.Fatalf("selector %q should not match", selector)
		}
	}
}

func TestCompileSelector(t *testing.T) {
	if _, err := CompileSelector("form > fieldset:not(.muted)"); err != nil {
		t.Fatalf("valid selector rejected: %v", err)
	}
	for _, selector := range []string{"", "   ", "fieldset[", "p >"} {
		if _, err := CompileSelector(selector); !errors.Is(err, ErrInvalidSelector) {
			t.Fatalf("selector %q: expected ErrInvalidSelector, got %v", selector, err)
		}
	}

	doc := signupForm()
	if err := doc.CheckSelector("fieldset:has("); !errors.Is(err, ErrInvalidSelector) {
		t.Fatalf("document should reject unparsable selectors, got %v", err)
	}
}

func TestTargets_Singleton(t *testing.T) {
	doc := signupForm()
	email := doc.Named("email")[0]

	display, messages := doc.Targets(doc, email, false, "p")
	if display != validity.DisplayTarget(email.Parent) {
		t.Fatalf("display should be the parent paragraph")
	}
	if messages != validity.MessageTarget(email.NextElementSibling()) {
		t.Fatalf("message should be the adjacent error node")
	}

	nickname := doc.Named("nickname")[0]
	display, messages = doc.Targets(doc, nickname, false, "p")
	if display != nil || messages != nil {
		t.Fatalf("controls directly under the form have no targets: %v %v", display, messages)
	}
}

func TestTargets_Grouped(t *testing.T) {
	doc := signupForm()
	size := doc.Named("size")[0]

	display, messages := doc.Targets(doc, size, true, "fieldset")
	fieldset := size.Parent.Parent
	if display != validity.DisplayTarget(fieldset) {
		t.Fatalf("display should be the fieldset")
	}
	if messages == nil {
		t.Fatalf("error node inside the fieldset expected")
	}
	messages.SetMessage("Pick a size")
	hint := fieldset.Children[len(fieldset.Children)-1]
	if hint.TextContent() != "Pick a size" {
		t.Fatalf("message not written, got %q", hint.TextContent())
	}

	display, messages = doc.Targets(doc, size, true, "section")
	if display != nil || messages != nil {
		t.Fatalf("no matching container yields no targets")
	}
}

func TestElement_ErrorStateAndMessage(t *testing.T) {
	p := NewElement("p", A("class", "field"))
	p.SetErrorState("error", true)
	p.SetErrorState("error", true)
	if v, _ := p.GetAttr("class"); v != "field error" {
		t.Fatalf("class after invalid: %q", v)
	}
	p.SetErrorState("error", false)
	if v, _ := p.GetAttr("class"); v != "field" {
		t.Fatalf("class after valid: %q", v)
	}

	bare := NewElement("p")
	bare.SetErrorState("error", true)
	bare.SetErrorState("error", false)
	if _, ok := bare.GetAttr("class"); ok {
		t.Fatalf("empty class attribute should be removed")
	}

	span := NewElement("span").Append(NewText("old"))
	span.SetMessage("")
	if len(span.Children) != 0 {
		t.Fatalf("empty message clears content")
	}
	span.SetMessage("new")
	if span.TextContent() != "new" {
		t.Fatalf("message not set")
	}
}
