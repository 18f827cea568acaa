// Package tokens supplies the design-token dataset the picker selects
// against. The dataset is external reference data; this package only loads
// it and reports failures, it does not interpret DADS semantics.
package tokens

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/danielmtz/paleta/internal/models"
)

// ErrEmptyDataset indicates the dataset file parsed but contains no tokens
var ErrEmptyDataset = errors.New("token dataset is empty")

// Source provides the token dataset to the UI.
type Source interface {
	// Load returns every token in the dataset.
	Load() ([]models.Token, error)
}

// FileSource loads tokens from a YAML file of {name, hex, role} entries.
type FileSource struct {
	path string
}

// NewFileSource creates a Source reading from the given path.
func NewFileSource(path string) *FileSource {
	return &FileSource{path: path}
}

// Load reads and parses the dataset file. Tokens carrying an unknown role
// category are rejected: a dataset the role dots cannot annotate would
// render a broken picker.
func (s *FileSource) Load() ([]models.Token, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("failed to read token dataset %s: %w", s.path, err)
	}

	var doc struct {
		Tokens []models.Token `yaml:"tokens"`
	}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse token dataset %s: %w", s.path, err)
	}

	if len(doc.Tokens) == 0 {
		return nil, fmt.Errorf("%s: %w", s.path, ErrEmptyDataset)
	}

	for _, token := range doc.Tokens {
		if !token.Role.Valid() {
			return nil, fmt.Errorf("token %q: %w: %q", token.Name, models.ErrUnknownCategory, token.Role)
		}
	}

	return doc.Tokens, nil
}

// StaticSource serves a fixed in-memory token list. Used by tests and as the
// fallback sample dataset on first run.
type StaticSource struct {
	tokens []models.Token
}

// NewStaticSource creates a Source serving the given tokens.
func NewStaticSource(tokens []models.Token) *StaticSource {
	return &StaticSource{tokens: tokens}
}

// Load returns the fixed token list.
func (s *StaticSource) Load() ([]models.Token, error) {
	if len(s.tokens) == 0 {
		return nil, ErrEmptyDataset
	}
	return s.tokens, nil
}

// Sample returns a small starter dataset used when no tokens file exists yet.
func Sample() []models.Token {
	return []models.Token{
		{Name: "blue-600", Hex: "#2563eb", Role: models.RolePrimary},
		{Name: "violet-500", Hex: "#8b5cf6", Role: models.RoleSecondary},
		{Name: "pink-500", Hex: "#ec4899", Role: models.RoleAccent},
		{Name: "emerald-500", Hex: "#10b981", Role: models.RoleSemantic},
		{Name: "sky-500", Hex: "#0ea5e9", Role: models.RoleLink},
	}
}
