package classify

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyTaxonomy(t *testing.T) {
	c := New(DefaultTaxonomy(), 0, nil)
	ctx := context.Background()

	tests := []struct {
		name    string
		title   string
		company string
		want    string
	}{
		{
			name:  "specific category wins over generic",
			title: "Software Engineer - AI/ML",
			want:  "AI Engineer",
		},
		{
			name:  "plain software engineer",
			title: "Software Engineer",
			want:  "Software Engineer",
		},
		{
			name:  "seniority and year noise stripped",
			title: "Senior Software Engineer (Sydney) 2025",
			want:  "Software Engineer",
		},
		{
			name:  "discipline beats graduate program",
			title: "Data Science Graduate Program",
			want:  "Data Scientist",
		},
		{
			name:  "generic graduate intake",
			title: "Graduate Program 2026",
			want:  GraduateProgram,
		},
		{
			name:  "grad development programme spelling",
			title: "Grad Development Programme",
			want:  GraduateProgram,
		},
		{
			name:  "machine learning before software engineer",
			title: "Machine Learning Engineer",
			want:  "Machine Learning Engineer",
		},
		{
			name:  "devops",
			title: "DevOps Engineer - Platform Team",
			want:  "DevOps Engineer",
		},
		{
			name:    "company name removed before matching",
			title:   "Developer at Canva",
			company: "Canva",
			want:    "Software Developer",
		},
		{
			name:  "unclassifiable without fallback",
			title: "Underwater Basket Weaver",
			want:  Unclassifiable,
		},
		{
			name:  "empty title",
			title: "",
			want:  Unclassifiable,
		},
		{
			name:  "title that strips to nothing",
			title: "Senior 2025",
			want:  Unclassifiable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, c.Classify(ctx, tt.title, tt.company))
		})
	}
}

// stubEmbedder returns fixed vectors per text, or a fixed error.
type stubEmbedder struct {
	vecs map[string][]float32
	err  error
}

func (s *stubEmbedder) Embed(_ context.Context, text string) ([]float32, error) {
	if s.err != nil {
		return nil, s.err
	}
	if v, ok := s.vecs[text]; ok {
		return v, nil
	}
	return []float32{0, 0, 1}, nil
}

func embedTaxonomy() []Category {
	return []Category{
		{"Software Engineer", []string{"software engineer"}},
		{"Data Scientist", []string{"data scientist"}},
	}
}

func TestClassifyEmbeddingFallback(t *testing.T) {
	stub := &stubEmbedder{vecs: map[string][]float32{
		"software engineer": {1, 0, 0},
		"data scientist":    {0, 1, 0},
		"coder":             {0.9, 0.1, 0},
	}}
	c := New(embedTaxonomy(), 0.5, func() (Embedder, error) { return stub, nil })

	assert.Equal(t, "Software Engineer", c.Classify(context.Background(), "Coder", ""))
}

func TestClassifyEmbeddingBelowThreshold(t *testing.T) {
	stub := &stubEmbedder{vecs: map[string][]float32{
		"software engineer": {1, 0, 0},
		"data scientist":    {0, 1, 0},
	}}
	c := New(embedTaxonomy(), 0.5, func() (Embedder, error) { return stub, nil })

	// Unknown titles embed orthogonally to every role vector.
	assert.Equal(t, Unclassifiable, c.Classify(context.Background(), "Mystery Role", ""))
}

func TestClassifyEmbeddingProviderErrors(t *testing.T) {
	stub := &stubEmbedder{err: errors.New("api down")}
	c := New(embedTaxonomy(), 0.5, func() (Embedder, error) { return stub, nil })

	assert.Equal(t, Unclassifiable, c.Classify(context.Background(), "Mystery Role", ""))

	// Constructor failure degrades the same way.
	c2 := New(embedTaxonomy(), 0.5, func() (Embedder, error) { return nil, errors.New("no key") })
	assert.Equal(t, Unclassifiable, c2.Classify(context.Background(), "Mystery Role", ""))
}

func TestClassifyKeywordPathSkipsEmbedder(t *testing.T) {
	called := false
	c := New(embedTaxonomy(), 0.5, func() (Embedder, error) {
		called = true
		return nil, errors.New("should not be constructed")
	})

	assert.Equal(t, "Software Engineer", c.Classify(context.Background(), "Software Engineer", ""))
	assert.False(t, called)
}

func TestCosine(t *testing.T) {
	assert.InDelta(t, 1.0, cosine([]float32{1, 2}, []float32{2, 4}), 1e-9)
	assert.InDelta(t, 0.0, cosine([]float32{1, 0}, []float32{0, 1}), 1e-9)
	assert.Equal(t, 0.0, cosine([]float32{1, 0}, []float32{1}))
	assert.Equal(t, 0.0, cosine(nil, nil))
}

func TestDetermineSeniority(t *testing.T) {
	tests := []struct {
		title string
		want  string
	}{
		{"Senior Software Engineer", "Senior"},
		{"Lead Data Engineer", "Senior"},
		{"Graduate Developer", "Junior"},
		{"Junior Analyst", "Junior"},
		{"Mid-Level Engineer", "Intermediate"},
		{"Intermediate Developer", "Intermediate"},
		{"Senior Graduate Program Manager", "Senior"},
		{"Software Engineer", "N/A"},
		{"", "N/A"},
	}

	for _, tt := range tests {
		t.Run(tt.title, func(t *testing.T) {
			assert.Equal(t, tt.want, DetermineSeniority(tt.title))
		})
	}
}
