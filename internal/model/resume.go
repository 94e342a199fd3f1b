package model

// Record is one person's resume. Every field is optional: an empty string or a
// nil slice/pointer means the field was absent from the source document, while
// a non-nil empty slice means it was present but empty.
type Record struct {
	Name    string
	Title   string
	Phone   string
	Email   string
	Address string
	AboutMe string

	Links *Links

	Skills         SkillSet
	Projects       []Project
	Education      []Education
	Internships    []Internship
	Certifications []Certification
	Languages      []string
	Interests      []string
	Hobbies        []string
}

// Links groups the profile URLs. Stored documents carry them either nested
// under "links" or flattened at the top level; both decode into this value.
type Links struct {
	LinkedIn  string
	GitHub    string
	Portfolio string
}

func (l *Links) empty() bool {
	return l == nil || (l.LinkedIn == "" && l.GitHub == "" && l.Portfolio == "")
}

// SkillSet keeps skill categories in document order.
type SkillSet []SkillCategory

type SkillCategory struct {
	Name  string
	Items []string
}

type Project struct {
	Title       string
	Description string
	TechStack   []string
}

type Education struct {
	YearRange         string
	Course            string
	Institute         string
	BoardOrUniversity string
	Score             string
}

type Internship struct {
	Title       string
	Company     string
	Description string
	Duration    string
	TechStack   []string
}

// Certification is stored either as a plain string (the title) or as a
// {title, issuer} document.
type Certification struct {
	Title  string
	Issuer string
}

// Clone returns a deep copy of r. Nil slices stay nil so presence survives.
func (r Record) Clone() Record {
	out := r
	if r.Links != nil {
		l := *r.Links
		out.Links = &l
	}
	if r.Skills != nil {
		out.Skills = make(SkillSet, len(r.Skills))
		for i, c := range r.Skills {
			out.Skills[i] = SkillCategory{Name: c.Name, Items: cloneStrings(c.Items)}
		}
	}
	if r.Projects != nil {
		out.Projects = make([]Project, len(r.Projects))
		for i, p := range r.Projects {
			p.TechStack = cloneStrings(p.TechStack)
			out.Projects[i] = p
		}
	}
	if r.Education != nil {
		out.Education = append([]Education{}, r.Education...)
	}
	if r.Internships != nil {
		out.Internships = make([]Internship, len(r.Internships))
		for i, in := range r.Internships {
			in.TechStack = cloneStrings(in.TechStack)
			out.Internships[i] = in
		}
	}
	if r.Certifications != nil {
		out.Certifications = append([]Certification{}, r.Certifications...)
	}
	out.Languages = cloneStrings(r.Languages)
	out.Interests = cloneStrings(r.Interests)
	out.Hobbies = cloneStrings(r.Hobbies)
	return out
}

func cloneStrings(s []string) []string {
	if s == nil {
		return nil
	}
	return append([]string{}, s...)
}
