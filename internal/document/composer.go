package document

import (
	"bytes"
	"fmt"
	"html/template"

	"resume-pdf/internal/model"
)

// Composer turns records into complete HTML documents. It is safe for
// concurrent use once built.
type Composer struct {
	tpl    *template.Template
	theme  Theme
	labels Labels
	base   model.Record
}

// Option configures a Composer.
type Option func(*Composer) error

// WithTheme selects the stylesheet and layout by name.
func WithTheme(name string) Option {
	return func(c *Composer) error {
		t, err := LoadTheme(name)
		if err != nil {
			return err
		}
		c.theme = t
		return nil
	}
}

// WithLabels overrides section headings.
func WithLabels(overrides map[string]string) Option {
	return func(c *Composer) error {
		c.labels = c.labels.With(overrides)
		return nil
	}
}

// WithBase replaces the record that inputs are merged over. An empty record
// disables defaults entirely, leaving absent sections as placeholders.
func WithBase(base model.Record) Option {
	return func(c *Composer) error {
		c.base = base.Clone()
		return nil
	}
}

// NewComposer parses the embedded page template. Without options the modern
// theme is used and records are merged over model.Default().
func NewComposer(opts ...Option) (*Composer, error) {
	c := &Composer{
		labels: DefaultLabels(),
		base:   model.Default(),
	}
	theme, err := LoadTheme(ThemeModern)
	if err != nil {
		return nil, err
	}
	c.theme = theme

	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, err
		}
	}

	tpl, err := template.New("page").Funcs(c.funcs()).ParseFS(assets, "templates/resume.html.tmpl")
	if err != nil {
		return nil, fmt.Errorf("parse page template: %w", err)
	}
	c.tpl = tpl
	return c, nil
}

func (c *Composer) funcs() template.FuncMap {
	return template.FuncMap{
		"esc":            func(v any) template.HTML { return template.HTML(EscapeValue(v)) },
		"list":           listOrEmpty,
		"inline":         inlineList,
		"text":           textOrEmpty,
		"skills":         RenderSkills,
		"projects":       RenderProjects,
		"internships":    RenderInternships,
		"education":      RenderEducation,
		"certifications": RenderCertifications,
		"label":          func(key string) template.HTML { return template.HTML(Escape(c.labels.Get(key))) },
		"contact":        func(r model.Record) template.HTML { return renderContact(r, c.labels) },
	}
}

// Theme reports the theme the composer renders with.
func (c *Composer) Theme() Theme { return c.theme }

// Compose merges r over the composer's base record and renders the result.
// Neither r nor the base is modified.
func (c *Composer) Compose(r model.Record) (string, error) {
	data := struct {
		Record model.Record
		Theme  Theme
	}{
		Record: model.Merge(c.base, r),
		Theme:  c.theme,
	}

	var buf bytes.Buffer
	if err := c.tpl.ExecuteTemplate(&buf, "resume", data); err != nil {
		return "", fmt.Errorf("execute page template: %w", err)
	}
	return buf.String(), nil
}
