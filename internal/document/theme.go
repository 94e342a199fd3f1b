package document

import (
	"embed"
	"errors"
	"fmt"
	"html/template"
	"strings"
)

//go:embed templates/resume.html.tmpl themes/*.css
var assets embed.FS

// ErrUnknownTheme is returned by LoadTheme for names without a stylesheet.
var ErrUnknownTheme = errors.New("unknown theme")

const (
	ThemeModern  = "modern"
	ThemeClassic = "classic"
)

// Theme pairs an embedded stylesheet with the body layout it was written for.
type Theme struct {
	Name    string
	Columns int
	CSS     template.CSS
}

var themeColumns = map[string]int{
	ThemeModern:  2,
	ThemeClassic: 1,
}

// LoadTheme returns the named theme. An empty name selects ThemeModern.
func LoadTheme(name string) (Theme, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		name = ThemeModern
	}
	cols, ok := themeColumns[name]
	if !ok {
		return Theme{}, fmt.Errorf("%w: %q", ErrUnknownTheme, name)
	}
	css, err := assets.ReadFile("themes/" + name + ".css")
	if err != nil {
		return Theme{}, fmt.Errorf("read stylesheet for %q: %w", name, err)
	}
	return Theme{Name: name, Columns: cols, CSS: template.CSS(css)}, nil
}
