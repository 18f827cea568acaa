package tokens

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/danielmtz/paleta/internal/models"
)

// writeDataset writes a dataset file into a temp dir and returns its path.
func writeDataset(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "tokens.yaml")
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("writing dataset: %v", err)
	}
	return path
}

// TestFileSource_Load ensures a well-formed dataset file round-trips into
// tokens with their roles intact.
func TestFileSource_Load(t *testing.T) {
	path := writeDataset(t, `tokens:
  - name: blue-600
    hex: "#2563eb"
    role: primary
  - name: sky-500
    hex: "#0ea5e9"
    role: link
`)

	got, err := NewFileSource(path).Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("Load returned %d tokens, want 2", len(got))
	}
	if got[0].Name != "blue-600" || got[0].Role != models.RolePrimary {
		t.Errorf("first token = %+v, want blue-600/primary", got[0])
	}
	if got[1].Hex != "#0ea5e9" || got[1].Role != models.RoleLink {
		t.Errorf("second token = %+v, want #0ea5e9/link", got[1])
	}
}

// TestFileSource_MissingFile ensures a missing dataset surfaces as an error
// the caller can route to the error policy as DADS_LOAD_FAILED.
func TestFileSource_MissingFile(t *testing.T) {
	_, err := NewFileSource(filepath.Join(t.TempDir(), "nope.yaml")).Load()
	if err == nil {
		t.Fatal("Load of missing file returned nil error")
	}
}

// TestFileSource_UnknownRole ensures a dataset with a role outside the
// defined categories is rejected instead of passed through.
// Edge case: role dots could not annotate such a token.
func TestFileSource_UnknownRole(t *testing.T) {
	path := writeDataset(t, `tokens:
  - name: mystery
    hex: "#000000"
    role: tertiary
`)

	_, err := NewFileSource(path).Load()
	if !errors.Is(err, models.ErrUnknownCategory) {
		t.Errorf("Load error = %v, want ErrUnknownCategory", err)
	}
}

// TestFileSource_EmptyDataset ensures an empty token list is rejected.
func TestFileSource_EmptyDataset(t *testing.T) {
	path := writeDataset(t, "tokens: []\n")

	_, err := NewFileSource(path).Load()
	if !errors.Is(err, ErrEmptyDataset) {
		t.Errorf("Load error = %v, want ErrEmptyDataset", err)
	}
}

// TestSample_RolesValid ensures the bundled sample dataset never trips the
// role validation it ships alongside.
func TestSample_RolesValid(t *testing.T) {
	for _, token := range Sample() {
		if !token.Role.Valid() {
			t.Errorf("sample token %q has invalid role %q", token.Name, token.Role)
		}
	}
}
