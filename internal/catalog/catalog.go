// Package catalog loads and validates the portfolio content.
package catalog

import (
	"embed"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/folio-tui/folio/internal/models"
	"gopkg.in/yaml.v3"
)

//go:embed builtin/*.yaml
var builtinFS embed.FS

const builtinPath = "builtin/portfolio.yaml"

// SourceBuiltin marks a catalog compiled into the binary.
const SourceBuiltin = "builtin"

// Loaded is a validated catalog plus where it came from.
type Loaded struct {
	*models.Catalog
	Source string
}

// LoadBuiltin returns the catalog bundled with folio.
func LoadBuiltin() (*Loaded, error) {
	data, err := builtinFS.ReadFile(builtinPath)
	if err != nil {
		return nil, fmt.Errorf("read builtin catalog: %w", err)
	}
	cat, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse builtin catalog: %w", err)
	}
	return &Loaded{Catalog: cat, Source: SourceBuiltin}, nil
}

// LoadFile reads and validates a catalog from disk.
func LoadFile(path string) (*Loaded, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog %s: %w", path, err)
	}
	cat, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse catalog %s: %w", path, err)
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		abs = path
	}
	return &Loaded{Catalog: cat, Source: abs}, nil
}

// Resolve loads the catalog at path, or the builtin one when path is empty.
func Resolve(path string) (*Loaded, error) {
	if strings.TrimSpace(path) == "" {
		return LoadBuiltin()
	}
	return LoadFile(path)
}

// Parse decodes YAML and validates the result.
func Parse(data []byte) (*models.Catalog, error) {
	var cat models.Catalog
	if err := yaml.Unmarshal(data, &cat); err != nil {
		return nil, err
	}
	normalize(&cat)
	if err := Validate(&cat); err != nil {
		return nil, err
	}
	return &cat, nil
}

func normalize(cat *models.Catalog) {
	cat.Profile.About = strings.TrimSpace(cat.Profile.About)
	for i, w := range cat.CycleWords {
		cat.CycleWords[i] = strings.TrimSpace(w)
	}
}

// Builtin returns the raw bundled YAML.
func Builtin() []byte {
	data, _ := builtinFS.ReadFile(builtinPath)
	return data
}
