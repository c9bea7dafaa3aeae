package testsupport

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-validity/pkg/form"
	"github.com/goliatone/go-validity/pkg/htmlform"
)

// LoadForm reads an HTML fixture and returns the selected form. Testing
// helpers fail the test on error to keep table tests concise.
func LoadForm(t *testing.T, path string, opts ...htmlform.Option) *form.Document {
	t.Helper()

	doc, err := LoadFormFromPath(path, opts...)
	if err != nil {
		t.Fatalf("load form: %v", err)
	}
	return doc
}

// LoadFormFromPath returns a Document without requiring testing.T, allowing
// callers to wire fixtures in setup functions.
func LoadFormFromPath(path string, opts ...htmlform.Option) (*form.Document, error) {
	if path == "" {
		return nil, errors.New("testsupport: fixture path is required")
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("testsupport: open fixture: %w", err)
	}
	defer f.Close()

	doc, err := htmlform.Parse(f, opts...)
	if err != nil {
		return nil, fmt.Errorf("testsupport: parse fixture: %w", err)
	}
	return doc, nil
}

// WriteGolden writes value as indented JSON when UPDATE_GOLDENS is set.
func WriteGolden(t *testing.T, path string, value any) {
	t.Helper()

	if os.Getenv("UPDATE_GOLDENS") == "" {
		return
	}
	payload, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		t.Fatalf("marshal golden: %v", err)
	}
	WriteMaybeGolden(t, path, payload)
}

// MustLoadJSON decodes a JSON golden file into out.
func MustLoadJSON(t *testing.T, path string, out any) {
	t.Helper()

	data := MustReadGolden(t, path)
	if err := json.Unmarshal(data, out); err != nil {
		t.Fatalf("unmarshal golden: %v", err)
	}
}

// CompareGolden returns a diff string if the values differ.
func CompareGolden(want, got any) string {
	return cmp.Diff(want, got)
}

// MustReadGolden reads a golden file and returns its raw bytes.
func MustReadGolden(t *testing.T, path string) []byte {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read golden: %v", err)
	}
	return data
}

// MustReadGoldenString reads a golden file and returns its string content.
func MustReadGoldenString(t *testing.T, path string) string {
	t.Helper()
	return string(MustReadGolden(t, path))
}

// WriteMaybeGolden updates a golden file when UPDATE_GOLDENS is set. Returns
// true if the golden was written (test should exit early).
func WriteMaybeGolden(t *testing.T, path string, data []byte) bool {
	t.Helper()
	if os.Getenv("UPDATE_GOLDENS") == "" {
		return false
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir golden dir: %v", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write golden: %v", err)
	}
	return true
}

// AssertGoldenText compares got with the golden file at path, ignoring
// leading and trailing whitespace. With UPDATE_GOLDENS set the golden is
// rewritten instead.
func AssertGoldenText(t *testing.T, path string, got string) {
	t.Helper()
	if WriteMaybeGolden(t, path, []byte(got)) {
		return
	}
	want := MustReadGoldenString(t, path)
	if diff := CompareGolden(strings.TrimSpace(want), strings.TrimSpace(got)); diff != "" {
		t.Fatalf("output mismatch (-want +got):\n%s", diff)
	}
}

// Context returns a background context for tests.
func Context() context.Context {
	return context.Background()
}
