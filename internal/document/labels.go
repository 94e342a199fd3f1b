package document

// Labels maps section keys to the headings printed in the document.
type Labels map[string]string

// DefaultLabels returns the English headings.
func DefaultLabels() Labels {
	return Labels{
		"resume":         "Resume",
		"summary":        "Summary",
		"skills":         "Skills",
		"certifications": "Certifications",
		"languages":      "Languages",
		"hobbies":        "Hobbies",
		"projects":       "Projects",
		"internships":    "Internships",
		"education":      "Education",
		"interests":      "Interests",
		"linkedin":       "LinkedIn",
		"github":         "GitHub",
		"portfolio":      "Portfolio",
	}
}

// With returns a copy of l with the non-empty overrides applied.
func (l Labels) With(overrides map[string]string) Labels {
	out := make(Labels, len(l)+len(overrides))
	for k, v := range l {
		out[k] = v
	}
	for k, v := range overrides {
		if v != "" {
			out[k] = v
		}
	}
	return out
}

// Get returns the heading for key, falling back to the English default and
// then to the key itself.
func (l Labels) Get(key string) string {
	if v := l[key]; v != "" {
		return v
	}
	if v := DefaultLabels()[key]; v != "" {
		return v
	}
	return key
}
