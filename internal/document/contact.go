package document

import (
	"html/template"
	"net/url"
	"strings"

	"golang.org/x/net/publicsuffix"

	"resume-pdf/internal/model"
)

// renderContact builds the header contact line. Each item appears only when
// its value is set; link values that are not http(s) URLs are printed as
// text rather than turned into anchors.
func renderContact(r model.Record, labels Labels) template.HTML {
	var b strings.Builder

	if r.Email != "" {
		anchor(&b, "mailto:"+r.Email, r.Email)
	}
	if r.Phone != "" {
		anchor(&b, "tel:"+strings.Join(strings.Fields(r.Phone), ""), r.Phone)
	}
	if r.Address != "" {
		b.WriteString("<div>")
		b.WriteString(Escape(r.Address))
		b.WriteString("</div>")
	}
	if r.Links != nil {
		link(&b, r.Links.LinkedIn, labels.Get("linkedin"))
		link(&b, r.Links.GitHub, labels.Get("github"))
		if r.Links.Portfolio != "" {
			link(&b, r.Links.Portfolio, portfolioLabel(r.Links.Portfolio, labels.Get("portfolio")))
		}
	}

	if b.Len() == 0 {
		return ""
	}
	return template.HTML(`<div class="contact">` + b.String() + `</div>`)
}

func anchor(b *strings.Builder, href, text string) {
	b.WriteString(`<div><a href="`)
	b.WriteString(Escape(href))
	b.WriteString(`">`)
	b.WriteString(Escape(text))
	b.WriteString(`</a></div>`)
}

func link(b *strings.Builder, raw, label string) {
	if raw == "" {
		return
	}
	if u := webURL(raw); u != "" {
		anchor(b, u, label)
		return
	}
	b.WriteString("<div>")
	b.WriteString(Escape(raw))
	b.WriteString("</div>")
}

// webURL returns raw as an absolute http(s) URL, adding https:// when no
// scheme is given, or "" when raw is not a web address.
func webURL(raw string) string {
	candidate := strings.TrimSpace(raw)
	if !strings.Contains(candidate, "://") && !strings.Contains(candidate, ":") {
		candidate = "https://" + candidate
	}
	u, err := url.Parse(candidate)
	if err != nil || u.Host == "" {
		return ""
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return ""
	}
	return candidate
}

// portfolioLabel prefers the registrable domain of the portfolio URL
// ("alexmorgan.dev", "jane.github.io") over the generic heading.
func portfolioLabel(raw, fallback string) string {
	u, err := url.Parse(webURL(raw))
	if err != nil || u.Hostname() == "" {
		return fallback
	}
	host := strings.TrimPrefix(u.Hostname(), "www.")
	if etld, err := publicsuffix.EffectiveTLDPlusOne(host); err == nil {
		return etld
	}
	return host
}
