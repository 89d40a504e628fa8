package testsupport

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-fieldcontrols/pkg/schema"
)

// LoadDefinitions reads a schema fixture. Testing helpers fail the test on
// error to keep contract tests concise.
func LoadDefinitions(t *testing.T, path string) []schema.FieldDefinition {
	t.Helper()

	defs, err := LoadDefinitionsFromPath(path)
	if err != nil {
		t.Fatalf("load definitions: %v", err)
	}
	return defs
}

// LoadDefinitionsFromPath returns the definitions without requiring
// testing.T, for callers wiring fixtures in setup functions.
func LoadDefinitionsFromPath(path string) ([]schema.FieldDefinition, error) {
	if path == "" {
		return nil, errors.New("testsupport: schema path is required")
	}
	defs, err := schema.LoadFile(path)
	if err != nil {
		return nil, fmt.Errorf("testsupport: load schema: %w", err)
	}
	return defs, nil
}

// MustLoadContents loads a JSON golden of key to stored value.
func MustLoadContents(t *testing.T, path string) map[string]string {
	t.Helper()

	data := MustReadGolden(t, path)
	var out map[string]string
	if err := json.Unmarshal(data, &out); err != nil {
		t.Fatalf("unmarshal golden: %v", err)
	}
	return out
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
	writeFile(t, path, payload)
}

// WriteMaybeGolden updates a golden file when UPDATE_GOLDENS is set. Returns
// true if the golden was written (test should exit early).
func WriteMaybeGolden(t *testing.T, path string, data []byte) bool {
	t.Helper()
	if os.Getenv("UPDATE_GOLDENS") == "" {
		return false
	}
	writeFile(t, path, data)
	return true
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

// Context returns a background context for tests.
func Context() context.Context {
	return context.Background()
}

func writeFile(t *testing.T, path string, data []byte) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir golden dir: %v", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write golden: %v", err)
	}
}
