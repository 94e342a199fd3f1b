package model

import (
	"fmt"
	"sort"
	"strconv"

	"go.mongodb.org/mongo-driver/bson"
)

// FromJSON decodes a plain JSON object into a Record, keeping the key order
// of the skills object. Only invalid JSON is an error; malformed fields are
// tolerated as described on FromDocument.
func FromJSON(data []byte) (Record, error) {
	var doc bson.D
	if err := bson.UnmarshalExtJSON(data, false, &doc); err != nil {
		return Record{}, fmt.Errorf("decode resume json: %w", err)
	}
	return FromDocument(doc), nil
}

// FromDocument converts a stored resume document into a Record. It never
// fails: a field of the wrong type becomes absent (scalars) or present but
// empty (sequences), numbers and booleans are stringified, a single string
// where a list is expected becomes a one-element list, and null list entries
// are dropped. Links given nested under "links" and flattened at the top
// level are folded together, the nested value winning per field.
func FromDocument(doc bson.D) Record {
	var r Record
	var nested, flat Links

	for _, e := range doc {
		switch e.Key {
		case "name":
			r.Name = text(e.Value)
		case "title":
			r.Title = text(e.Value)
		case "phone":
			r.Phone = text(e.Value)
		case "email":
			r.Email = text(e.Value)
		case "address":
			r.Address = text(e.Value)
		case "aboutMe":
			r.AboutMe = text(e.Value)
		case "links":
			if f, ok := fieldsOf(e.Value); ok {
				nested = Links{
					LinkedIn:  text(f.get("linkedin")),
					GitHub:    text(f.get("github")),
					Portfolio: text(f.get("portfolio")),
				}
			}
		case "linkedin":
			flat.LinkedIn = text(e.Value)
		case "github":
			flat.GitHub = text(e.Value)
		case "portfolio":
			flat.Portfolio = text(e.Value)
		case "skills":
			r.Skills = skillSet(e.Value)
		case "projects":
			r.Projects = records(e.Value, project)
		case "education":
			r.Education = records(e.Value, education)
		case "internships":
			r.Internships = records(e.Value, internship)
		case "certifications":
			r.Certifications = records(e.Value, certification)
		case "languages":
			r.Languages = textList(e.Value)
		case "interests":
			r.Interests = textList(e.Value)
		case "hobbies":
			r.Hobbies = textList(e.Value)
		}
	}

	links := Links{
		LinkedIn:  firstNonEmpty(nested.LinkedIn, flat.LinkedIn),
		GitHub:    firstNonEmpty(nested.GitHub, flat.GitHub),
		Portfolio: firstNonEmpty(nested.Portfolio, flat.Portfolio),
	}
	if !links.empty() {
		r.Links = &links
	}
	return r
}

// ToDocument encodes the present fields of r as an ordered document, links
// nested, suitable for a $set upsert.
func (r Record) ToDocument() bson.D {
	doc := bson.D{}
	appendText := func(key, v string) {
		if v != "" {
			doc = append(doc, bson.E{Key: key, Value: v})
		}
	}

	appendText("name", r.Name)
	appendText("title", r.Title)
	appendText("phone", r.Phone)
	appendText("email", r.Email)
	appendText("address", r.Address)
	if !r.Links.empty() {
		links := bson.D{}
		for _, kv := range [][2]string{{"linkedin", r.Links.LinkedIn}, {"github", r.Links.GitHub}, {"portfolio", r.Links.Portfolio}} {
			if kv[1] != "" {
				links = append(links, bson.E{Key: kv[0], Value: kv[1]})
			}
		}
		doc = append(doc, bson.E{Key: "links", Value: links})
	}
	appendText("aboutMe", r.AboutMe)

	if r.Skills != nil {
		skills := bson.D{}
		for _, c := range r.Skills {
			skills = append(skills, bson.E{Key: c.Name, Value: stringArray(c.Items)})
		}
		doc = append(doc, bson.E{Key: "skills", Value: skills})
	}
	if r.Projects != nil {
		arr := bson.A{}
		for _, p := range r.Projects {
			d := bson.D{{Key: "title", Value: p.Title}}
			if p.Description != "" {
				d = append(d, bson.E{Key: "description", Value: p.Description})
			}
			if p.TechStack != nil {
				d = append(d, bson.E{Key: "techStack", Value: stringArray(p.TechStack)})
			}
			arr = append(arr, d)
		}
		doc = append(doc, bson.E{Key: "projects", Value: arr})
	}
	if r.Education != nil {
		arr := bson.A{}
		for _, ed := range r.Education {
			d := bson.D{{Key: "yearRange", Value: ed.YearRange}, {Key: "course", Value: ed.Course}}
			for _, kv := range [][2]string{{"institute", ed.Institute}, {"boardOrUniversity", ed.BoardOrUniversity}, {"score", ed.Score}} {
				if kv[1] != "" {
					d = append(d, bson.E{Key: kv[0], Value: kv[1]})
				}
			}
			arr = append(arr, d)
		}
		doc = append(doc, bson.E{Key: "education", Value: arr})
	}
	if r.Internships != nil {
		arr := bson.A{}
		for _, in := range r.Internships {
			d := bson.D{{Key: "title", Value: in.Title}}
			for _, kv := range [][2]string{{"company", in.Company}, {"description", in.Description}, {"duration", in.Duration}} {
				if kv[1] != "" {
					d = append(d, bson.E{Key: kv[0], Value: kv[1]})
				}
			}
			if in.TechStack != nil {
				d = append(d, bson.E{Key: "techStack", Value: stringArray(in.TechStack)})
			}
			arr = append(arr, d)
		}
		doc = append(doc, bson.E{Key: "internships", Value: arr})
	}
	if r.Certifications != nil {
		arr := bson.A{}
		for _, c := range r.Certifications {
			d := bson.D{{Key: "title", Value: c.Title}}
			if c.Issuer != "" {
				d = append(d, bson.E{Key: "issuer", Value: c.Issuer})
			}
			arr = append(arr, d)
		}
		doc = append(doc, bson.E{Key: "certifications", Value: arr})
	}
	if r.Languages != nil {
		doc = append(doc, bson.E{Key: "languages", Value: stringArray(r.Languages)})
	}
	if r.Interests != nil {
		doc = append(doc, bson.E{Key: "interests", Value: stringArray(r.Interests)})
	}
	if r.Hobbies != nil {
		doc = append(doc, bson.E{Key: "hobbies", Value: stringArray(r.Hobbies)})
	}
	return doc
}

// fields is an ordered view over a decoded sub-document.
type fields bson.D

func (f fields) get(key string) any {
	for _, e := range f {
		if e.Key == key {
			return e.Value
		}
	}
	return nil
}

func fieldsOf(v any) (fields, bool) {
	switch t := v.(type) {
	case bson.D:
		return fields(t), true
	case bson.M:
		return fieldsOf(map[string]interface{}(t))
	case map[string]interface{}:
		keys := make([]string, 0, len(t))
		for k := range t {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		out := make(fields, 0, len(t))
		for _, k := range keys {
			out = append(out, bson.E{Key: k, Value: t[k]})
		}
		return out, true
	}
	return nil, false
}

func elements(v any) ([]interface{}, bool) {
	switch t := v.(type) {
	case bson.A:
		return []interface{}(t), true
	case []interface{}:
		return t, true
	}
	return nil, false
}

func text(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case int32:
		return strconv.FormatInt(int64(t), 10)
	case int64:
		return strconv.FormatInt(t, 10)
	case int:
		return strconv.Itoa(t)
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(t)
	}
	return ""
}

// textList returns nil only for an absent (null) value.
func textList(v any) []string {
	if v == nil {
		return nil
	}
	items, ok := elements(v)
	if !ok {
		if s := text(v); s != "" {
			return []string{s}
		}
		return []string{}
	}
	out := make([]string, 0, len(items))
	for _, it := range items {
		if s := text(it); s != "" {
			out = append(out, s)
		}
	}
	return out
}

func skillSet(v any) SkillSet {
	if v == nil {
		return nil
	}
	f, ok := fieldsOf(v)
	if !ok {
		return SkillSet{}
	}
	out := make(SkillSet, 0, len(f))
	for _, e := range f {
		items := textList(e.Value)
		if items == nil {
			items = []string{}
		}
		out = append(out, SkillCategory{Name: e.Key, Items: items})
	}
	return out
}

// records decodes an array of sub-documents with conv. A bare string element
// is passed to conv as a document holding only its primary field.
func records[T any](v any, conv func(fields) T) []T {
	if v == nil {
		return nil
	}
	items, ok := elements(v)
	if !ok {
		return []T{}
	}
	out := make([]T, 0, len(items))
	for _, it := range items {
		if f, ok := fieldsOf(it); ok {
			out = append(out, conv(f))
			continue
		}
		if s := text(it); s != "" {
			out = append(out, conv(fields{{Key: "", Value: s}}))
		}
	}
	return out
}

// primary returns the named field, or the bare string a record was given as.
func (f fields) primary(key string) string {
	if s := text(f.get(key)); s != "" {
		return s
	}
	return text(f.get(""))
}

func project(f fields) Project {
	return Project{
		Title:       f.primary("title"),
		Description: text(f.get("description")),
		TechStack:   textList(f.get("techStack")),
	}
}

func education(f fields) Education {
	return Education{
		YearRange:         text(f.get("yearRange")),
		Course:            f.primary("course"),
		Institute:         text(f.get("institute")),
		BoardOrUniversity: text(f.get("boardOrUniversity")),
		Score:             text(f.get("score")),
	}
}

func internship(f fields) Internship {
	return Internship{
		Title:       f.primary("title"),
		Company:     text(f.get("company")),
		Description: text(f.get("description")),
		Duration:    text(f.get("duration")),
		TechStack:   textList(f.get("techStack")),
	}
}

func certification(f fields) Certification {
	return Certification{
		Title:  f.primary("title"),
		Issuer: text(f.get("issuer")),
	}
}

func stringArray(items []string) bson.A {
	arr := make(bson.A, 0, len(items))
	for _, s := range items {
		arr = append(arr, s)
	}
	return arr
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}
