// Package render turns response payloads into bytes for the negotiated
// representation: plain text, HTML pages with $placeholder substitution, or JSON.
package render

import (
	"embed"
	"fmt"
	"io/fs"
	"strings"

	"github.com/tokoclient/backend/internal/jsonutil"
)

// Page template names
const (
	VersionPage  = "version.html"
	NotFoundPage = "404.html"
)

//go:embed templates/*.html
var embedded embed.FS

// Templates returns the page templates compiled into the binary.
func Templates() fs.FS {
	sub, err := fs.Sub(embedded, "templates")
	if err != nil {
		panic(err)
	}
	return sub
}

// Replacement is a literal placeholder substitution applied to a template
type Replacement struct {
	Placeholder string
	Value       string
}

// R is shorthand for building a Replacement.
func R(placeholder, value string) Replacement {
	return Replacement{Placeholder: placeholder, Value: value}
}

// Renderer renders pages from a template filesystem
type Renderer struct {
	templates fs.FS
}

// NewRenderer creates a renderer reading page templates from templates.
func NewRenderer(templates fs.FS) *Renderer {
	return &Renderer{templates: templates}
}

// HTML loads the named template and applies the replacements in order.
// Values are substituted verbatim, without HTML escaping.
func (r *Renderer) HTML(name string, replacements ...Replacement) ([]byte, error) {
	raw, err := fs.ReadFile(r.templates, name)
	if err != nil {
		return nil, fmt.Errorf("failed to load template %s: %w", name, err)
	}

	page := string(raw)
	for _, rep := range replacements {
		page = strings.ReplaceAll(page, rep.Placeholder, rep.Value)
	}

	return Text(page), nil
}

// Text returns s trimmed of surrounding whitespace.
func Text(s string) []byte {
	return []byte(strings.TrimSpace(s))
}

// JSON serializes v. Object keys follow struct field order.
func JSON(v any) ([]byte, error) {
	data, err := jsonutil.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("failed to encode response: %w", err)
	}
	return data, nil
}
