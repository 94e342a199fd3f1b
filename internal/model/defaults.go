package model

// defaultRecord is built once and only ever handed out as a clone.
var defaultRecord = Record{
	Name:    "Alex Morgan",
	Title:   "Web Developer | Frontend Developer",
	Phone:   "+1 555 010 4477",
	Email:   "alex.morgan@example.com",
	Address: "42 Harbour Street, Portsmouth, PO1 3AX",
	Links: &Links{
		LinkedIn:  "https://www.linkedin.com/in/alex-morgan-dev",
		GitHub:    "https://github.com/alexmorgan-dev",
		Portfolio: "https://alexmorgan.dev",
	},
	AboutMe: "Computer science student focused on frontend development. Comfortable with HTML, CSS, JavaScript and " +
		"modern UI patterns, building responsive interfaces with attention to accessibility and performance.",
	Skills: SkillSet{
		{Name: "programming", Items: []string{"HTML", "CSS", "JavaScript", "React.js", "Angular.js"}},
		{Name: "backend", Items: []string{"Node.js", "Go"}},
		{Name: "database", Items: []string{"MongoDB", "PostgreSQL"}},
		{Name: "cloud", Items: []string{"AWS"}},
		{Name: "tools", Items: []string{"VS Code", "GitHub", "Figma"}},
	},
	Projects: []Project{
		{
			Title:       "Personal Portfolio Website",
			Description: "Mobile-first portfolio showcasing projects, tuned for fast load times and an accessible UI.",
			TechStack:   []string{"HTML", "CSS", "JavaScript"},
		},
		{
			Title:       "E-Commerce Landing Page",
			Description: "Responsive product grid with clear calls to action and a short checkout funnel.",
			TechStack:   []string{"HTML", "CSS", "JavaScript"},
		},
		{
			Title:       "Login Page UI",
			Description: "Sign-in and registration screens with small CSS micro-interactions.",
			TechStack:   []string{"HTML", "CSS"},
		},
	},
	Education: []Education{
		{
			YearRange:         "2024 – 2028",
			Course:            "B.E. – Computer Science and Engineering",
			Institute:         "Riverside Institute of Technology",
			BoardOrUniversity: "Riverside University",
			Score:             "CGPA: 8.1",
		},
		{
			YearRange: "2022 – 2024",
			Course:    "Higher Secondary Certificate",
			Institute: "Northfield Secondary School",
			Score:     "84.6%",
		},
	},
	Internships: []Internship{
		{
			Title:       "Web Development Intern",
			Company:     "Brightline Studio",
			Description: "Four-week internship building reusable UI components and fixing layout bugs.",
			Duration:    "4 weeks",
		},
	},
	Certifications: []Certification{
		{Title: "Web Development – Course Completion", Issuer: "Brightline Studio"},
		{Title: "JavaScript Algorithms and Data Structures", Issuer: "freeCodeCamp"},
	},
	Languages: []string{"English", "Spanish"},
	Interests: []string{"Web Development", "UI Design", "Learning new technologies"},
	Hobbies:   []string{"Reading about new technologies", "Coding", "Chess"},
}

// Default returns the built-in sample resume. Each call returns an
// independent copy.
func Default() Record {
	return defaultRecord.Clone()
}

// Merge overlays every present top-level field of overlay onto a copy of
// base. A present field replaces the base value wholesale; nested values such
// as Links or Skills are not merged key by key. Neither argument is modified.
func Merge(base, overlay Record) Record {
	out := base.Clone()
	o := overlay.Clone()

	mergeText(&out.Name, o.Name)
	mergeText(&out.Title, o.Title)
	mergeText(&out.Phone, o.Phone)
	mergeText(&out.Email, o.Email)
	mergeText(&out.Address, o.Address)
	mergeText(&out.AboutMe, o.AboutMe)

	if o.Links != nil {
		out.Links = o.Links
	}
	if o.Skills != nil {
		out.Skills = o.Skills
	}
	if o.Projects != nil {
		out.Projects = o.Projects
	}
	if o.Education != nil {
		out.Education = o.Education
	}
	if o.Internships != nil {
		out.Internships = o.Internships
	}
	if o.Certifications != nil {
		out.Certifications = o.Certifications
	}
	if o.Languages != nil {
		out.Languages = o.Languages
	}
	if o.Interests != nil {
		out.Interests = o.Interests
	}
	if o.Hobbies != nil {
		out.Hobbies = o.Hobbies
	}
	return out
}

func mergeText(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}
