package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

func TestDefaultReturnsIndependentCopies(t *testing.T) {
	a := Default()
	a.Name = "Changed"
	a.Skills[0].Items[0] = "COBOL"
	a.Links.GitHub = ""
	a.Projects = append(a.Projects, Project{Title: "extra"})

	b := Default()
	assert.Equal(t, "Alex Morgan", b.Name)
	assert.Equal(t, "HTML", b.Skills[0].Items[0])
	assert.NotEmpty(t, b.Links.GitHub)
	assert.Len(t, b.Projects, 3)
}

func TestMergeOverlaysPresentFields(t *testing.T) {
	base := Default()
	overlay := Record{
		Name:     "Jane Doe",
		Skills:   SkillSet{{Name: "programming", Items: []string{"Go", "Rust"}}},
		Projects: []Project{},
	}

	got := Merge(base, overlay)

	assert.Equal(t, "Jane Doe", got.Name)
	assert.Equal(t, base.Title, got.Title)
	assert.Equal(t, SkillSet{{Name: "programming", Items: []string{"Go", "Rust"}}}, got.Skills)
	assert.NotNil(t, got.Projects)
	assert.Empty(t, got.Projects, "present empty sequence replaces the default")
	assert.Equal(t, base.Education, got.Education)
}

func TestMergeIsShallowForNestedGroups(t *testing.T) {
	base := Record{Links: &Links{LinkedIn: "https://linkedin.com/in/base", GitHub: "https://github.com/base"}}
	overlay := Record{Links: &Links{Portfolio: "https://me.dev"}}

	got := Merge(base, overlay)

	assert.Equal(t, &Links{Portfolio: "https://me.dev"}, got.Links)
}

func TestMergeDoesNotMutateInputs(t *testing.T) {
	base := Default()
	overlay := Record{Languages: []string{"German"}}

	got := Merge(base, overlay)
	got.Languages[0] = "French"
	got.Hobbies[0] = "Skydiving"

	assert.Equal(t, []string{"German"}, overlay.Languages)
	assert.Equal(t, Default().Hobbies, base.Hobbies)
}

func TestMergeIdempotentOnCompleteRecord(t *testing.T) {
	complete := Default()
	complete.Name = "Sam Lee"
	complete.Skills = SkillSet{{Name: "tools", Items: []string{"Make"}}}

	assert.Equal(t, complete, Merge(Default(), complete))
	assert.Equal(t, complete, Merge(Record{}, complete))
}

func TestFromJSONAcceptsBothLinkShapes(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		want *Links
	}{
		{
			name: "nested",
			doc:  `{"name":"A","links":{"linkedin":"https://l","github":"https://g"}}`,
			want: &Links{LinkedIn: "https://l", GitHub: "https://g"},
		},
		{
			name: "flat",
			doc:  `{"name":"A","github":"https://g","portfolio":"https://p"}`,
			want: &Links{GitHub: "https://g", Portfolio: "https://p"},
		},
		{
			name: "nested wins per field",
			doc:  `{"name":"A","github":"https://flat","linkedin":"https://l","links":{"github":"https://nested"}}`,
			want: &Links{LinkedIn: "https://l", GitHub: "https://nested"},
		},
		{
			name: "absent",
			doc:  `{"name":"A","portfolio":""}`,
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := FromJSON([]byte(tt.doc))
			require.NoError(t, err)
			assert.Equal(t, tt.want, r.Links)
		})
	}
}

func TestFromJSONKeepsSkillCategoryOrder(t *testing.T) {
	r, err := FromJSON([]byte(`{"skills":{"tools":["VS Code"],"programming":["Go","Rust"],"cloud":[]}}`))
	require.NoError(t, err)

	require.Len(t, r.Skills, 3)
	assert.Equal(t, "tools", r.Skills[0].Name)
	assert.Equal(t, "programming", r.Skills[1].Name)
	assert.Equal(t, []string{"Go", "Rust"}, r.Skills[1].Items)
	assert.Equal(t, "cloud", r.Skills[2].Name)
	assert.Empty(t, r.Skills[2].Items)
}

func TestFromJSONCertificationShapes(t *testing.T) {
	r, err := FromJSON([]byte(`{"certifications":["CKA",{"title":"Go Basics","issuer":"GoBridge"},null,42]}`))
	require.NoError(t, err)

	assert.Equal(t, []Certification{
		{Title: "CKA"},
		{Title: "Go Basics", Issuer: "GoBridge"},
		{Title: "42"},
	}, r.Certifications)
}

func TestFromJSONToleratesMalformedFields(t *testing.T) {
	r, err := FromJSON([]byte(`{
		"name": {"first": "x"},
		"phone": 5550100,
		"languages": "English",
		"hobbies": {"a": 1},
		"projects": "not a list",
		"education": [{"course": "BSc", "yearRange": 2020}],
		"interests": null,
		"skills": ["Go"]
	}`))
	require.NoError(t, err)

	assert.Empty(t, r.Name)
	assert.Equal(t, "5550100", r.Phone)
	assert.Equal(t, []string{"English"}, r.Languages)
	assert.NotNil(t, r.Hobbies)
	assert.Empty(t, r.Hobbies)
	assert.NotNil(t, r.Projects)
	assert.Empty(t, r.Projects)
	assert.Equal(t, []Education{{Course: "BSc", YearRange: "2020"}}, r.Education)
	assert.Nil(t, r.Interests)
	assert.NotNil(t, r.Skills)
	assert.Empty(t, r.Skills)
}

func TestFromJSONRejectsInvalidJSON(t *testing.T) {
	_, err := FromJSON([]byte(`{"name":`))
	assert.Error(t, err)
}

func TestToDocumentRoundTrip(t *testing.T) {
	want := Default()

	raw, err := bson.Marshal(want.ToDocument())
	require.NoError(t, err)

	var doc bson.D
	require.NoError(t, bson.Unmarshal(raw, &doc))

	assert.Equal(t, want, FromDocument(doc))
}

func TestToDocumentOmitsAbsentFields(t *testing.T) {
	doc := Record{Name: "Jane Doe", Hobbies: []string{}}.ToDocument()

	assert.Equal(t, bson.D{
		{Key: "name", Value: "Jane Doe"},
		{Key: "hobbies", Value: bson.A{}},
	}, doc)
}
