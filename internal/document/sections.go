package document

import (
	"html/template"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"resume-pdf/internal/model"
)

// EmptyState is shown in place of a section body that has no data.
const EmptyState template.HTML = `<div class="empty">—</div>`

// RenderList renders items as an unordered list in input order. It returns
// the empty string when there is nothing to list; callers decide whether to
// show EmptyState instead.
func RenderList(items []string) template.HTML {
	if len(items) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString("<ul>")
	for _, it := range items {
		b.WriteString("<li>")
		b.WriteString(Escape(it))
		b.WriteString("</li>")
	}
	b.WriteString("</ul>")
	return template.HTML(b.String())
}

func listOrEmpty(items []string) template.HTML {
	if h := RenderList(items); h != "" {
		return h
	}
	return EmptyState
}

// inlineList renders items as one comma separated line.
func inlineList(items []string) template.HTML {
	return template.HTML(Escape(strings.Join(items, ", ")))
}

func textOrEmpty(s string) template.HTML {
	if s == "" {
		return EmptyState
	}
	return template.HTML(Escape(s))
}

// RenderProjects renders one block per project. Description and tech stack
// lines are left out when absent.
func RenderProjects(projects []model.Project) template.HTML {
	if len(projects) == 0 {
		return EmptyState
	}
	var b strings.Builder
	for _, p := range projects {
		b.WriteString(`<div class="proj">`)
		div(&b, "proj-title", p.Title)
		if p.Description != "" {
			div(&b, "proj-desc", p.Description)
		}
		techLine(&b, p.TechStack)
		b.WriteString(`</div>`)
	}
	return template.HTML(b.String())
}

// RenderInternships mirrors RenderProjects, adding company and duration.
func RenderInternships(internships []model.Internship) template.HTML {
	if len(internships) == 0 {
		return EmptyState
	}
	var b strings.Builder
	for _, in := range internships {
		b.WriteString(`<div class="proj">`)
		b.WriteString(`<div class="proj-title">`)
		b.WriteString(Escape(in.Title))
		if in.Company != "" {
			b.WriteString(` — <span class="proj-company">`)
			b.WriteString(Escape(in.Company))
			b.WriteString(`</span>`)
		}
		b.WriteString(`</div>`)
		if in.Duration != "" {
			div(&b, "proj-meta", in.Duration)
		}
		if in.Description != "" {
			div(&b, "proj-desc", in.Description)
		}
		techLine(&b, in.TechStack)
		b.WriteString(`</div>`)
	}
	return template.HTML(b.String())
}

// RenderEducation renders one block per entry. Course and year range are
// always present (possibly empty); institute, board and score are optional.
func RenderEducation(entries []model.Education) template.HTML {
	if len(entries) == 0 {
		return EmptyState
	}
	var b strings.Builder
	for _, e := range entries {
		b.WriteString(`<div class="edu-item">`)
		div(&b, "edu-years", e.YearRange)
		b.WriteString(`<div class="edu-body">`)
		div(&b, "edu-course", e.Course)
		if e.Institute != "" {
			div(&b, "edu-inst", e.Institute)
		}
		if e.BoardOrUniversity != "" {
			div(&b, "edu-board", e.BoardOrUniversity)
		}
		if e.Score != "" {
			div(&b, "edu-score", e.Score)
		}
		b.WriteString(`</div></div>`)
	}
	return template.HTML(b.String())
}

// RenderCertifications lists certifications as "Title (Issuer)".
func RenderCertifications(certs []model.Certification) template.HTML {
	items := make([]string, 0, len(certs))
	for _, c := range certs {
		switch {
		case c.Title != "" && c.Issuer != "":
			items = append(items, c.Title+" ("+c.Issuer+")")
		case c.Title != "":
			items = append(items, c.Title)
		case c.Issuer != "":
			items = append(items, c.Issuer)
		}
	}
	return listOrEmpty(items)
}

// RenderSkills renders one labelled list per category in category order.
// Categories without items are skipped.
func RenderSkills(skills model.SkillSet) template.HTML {
	var b strings.Builder
	for _, c := range skills {
		list := RenderList(c.Items)
		if list == "" {
			continue
		}
		b.WriteString(`<div class="skill-group">`)
		div(&b, "skill-cat", Humanize(c.Name))
		b.WriteString(string(list))
		b.WriteString(`</div>`)
	}
	if b.Len() == 0 {
		return EmptyState
	}
	return template.HTML(b.String())
}

// Humanize turns a category key such as "codingTools" or "design_tools"
// into a heading ("Coding Tools", "Design Tools").
func Humanize(key string) string {
	var b strings.Builder
	var prev rune
	for _, r := range key {
		switch {
		case r == '_' || r == '-':
			r = ' '
		case unicode.IsUpper(r) && (unicode.IsLower(prev) || unicode.IsDigit(prev)):
			b.WriteRune(' ')
		}
		b.WriteRune(r)
		prev = r
	}
	// A Caser keeps state between calls, so each call gets its own.
	return cases.Title(language.English).String(strings.Join(strings.Fields(b.String()), " "))
}

func div(b *strings.Builder, class, text string) {
	b.WriteString(`<div class="`)
	b.WriteString(class)
	b.WriteString(`">`)
	b.WriteString(Escape(text))
	b.WriteString(`</div>`)
}

// techLine joins the stack before escaping; the separator is ours.
func techLine(b *strings.Builder, stack []string) {
	if len(stack) == 0 {
		return
	}
	div(b, "proj-tech", "Tech: "+strings.Join(stack, ", "))
}
