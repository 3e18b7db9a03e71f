// Package classify maps free-text job titles onto a canonical role taxonomy.
// Classification is keyword-driven with an embedding-similarity fallback for
// titles no keyword covers.
package classify

import (
	"context"
	"math"
	"regexp"
	"sort"
	"strings"
	"sync"
)

// Unclassifiable is returned when a title matches nothing in the taxonomy
// and the semantic fallback is unavailable or unconvinced.
const Unclassifiable = "Specialized"

// GraduateProgram is the canonical role for generic graduate intakes with no
// discipline attached.
const GraduateProgram = "Graduate Program"

// DefaultThreshold is the minimum cosine similarity for the embedding
// fallback to accept a role.
const DefaultThreshold = 0.5

// Embedder turns text into a vector. Implementations call an external
// provider; errors must be tolerated by callers.
type Embedder interface {
	Embed(ctx context.Context, text string) ([]float32, error)
}

// Noise stripped from titles before keyword matching: seniority terms,
// program terms, scheduling terms, and bare years.
var stopWords = []string{
	"internship", "intern", "grad", "program", "graduate", "graduate program",
	"phd", "masters", "start", "2024", "2025", "2026", "2027",
	"full-time", "full time", "part-time", "part time", "remote",
	"on-site", "onsite", "temporary", "contract",
	"senior", "junior", "lead", "entry", "entry level", "level",
	"principal", "head", "staff", "trainee",
}

var (
	// Must run before stop-word stripping: "graduate"/"program" are noise
	// words, so a generic graduate-program title would otherwise be emptied
	// before it can be recognized.
	gradProgramRe = regexp.MustCompile(`(?i)\b(?:graduate|grad)\s+(?:development\s+)?programme?\b|\b(?:internship|intern)\s+programme?\b`)

	// A discipline word next to "graduate program" means the title is about
	// the discipline, not the program ("Data Science Graduate Program").
	disciplineRe = regexp.MustCompile(`(?i)\b(?:data|software|cyber|security|cloud|devops|engineer(?:ing)?|developer|analyst|scientist|architect|ai|ml|frontend|backend|full stack|mobile|web|ios|android|qa|test|automation|business|product|project|consulting)\b`)

	parensRe = regexp.MustCompile(`\([^)]*\)`)
	yearRe   = regexp.MustCompile(`\b20\d{2}(?:\s*[/-]\s*\d{2,4})?\b`)
	spaceRe  = regexp.MustCompile(`\s+`)

	stopWordRe = compileStopWords(stopWords)
)

// compileStopWords builds a single alternation, longest phrase first so
// "entry level" wins over "entry".
func compileStopWords(words []string) *regexp.Regexp {
	sorted := make([]string, len(words))
	copy(sorted, words)
	sort.Slice(sorted, func(i, j int) bool { return len(sorted[i]) > len(sorted[j]) })
	quoted := make([]string, len(sorted))
	for i, w := range sorted {
		quoted[i] = regexp.QuoteMeta(w)
	}
	return regexp.MustCompile(`(?i)\b(?:` + strings.Join(quoted, "|") + `)\b`)
}

// Classifier resolves job titles to canonical roles. The embedding provider
// behind the fallback is constructed lazily on first use; taxonomy matching
// never touches it.
type Classifier struct {
	taxonomy    []Category
	threshold   float64
	newEmbedder func() (Embedder, error)

	once     sync.Once
	embedder Embedder
	roleVecs [][]float32
	initErr  error
}

// New builds a Classifier. newEmbedder may be nil, in which case the
// fallback path degrades to Unclassifiable.
func New(taxonomy []Category, threshold float64, newEmbedder func() (Embedder, error)) *Classifier {
	if threshold <= 0 {
		threshold = DefaultThreshold
	}
	return &Classifier{taxonomy: taxonomy, threshold: threshold, newEmbedder: newEmbedder}
}

// Classify maps a raw job title (and optional company name, removed from the
// title before matching) to a canonical role. It never fails: anything
// unrecognizable, including embedding-provider errors, comes back as
// Unclassifiable.
func (c *Classifier) Classify(ctx context.Context, title, company string) string {
	if strings.TrimSpace(title) == "" {
		return Unclassifiable
	}

	lower := strings.ToLower(title)
	if gradProgramRe.MatchString(lower) && !disciplineRe.MatchString(lower) {
		return GraduateProgram
	}

	cleaned := cleanTitle(lower, company)
	if cleaned == "" {
		return Unclassifiable
	}

	// First category with any keyword hit wins; ordering is the tie-break.
	for _, cat := range c.taxonomy {
		for _, kw := range cat.Keywords {
			if strings.Contains(cleaned, kw) {
				return cat.Role
			}
		}
	}

	return c.classifyByEmbedding(ctx, cleaned)
}

func cleanTitle(lower, company string) string {
	if company != "" {
		companyRe, err := regexp.Compile(`(?i)\b` + regexp.QuoteMeta(strings.ToLower(company)) + `\b`)
		if err == nil {
			lower = companyRe.ReplaceAllString(lower, " ")
		}
	}
	lower = parensRe.ReplaceAllString(lower, " ")
	lower = yearRe.ReplaceAllString(lower, " ")
	lower = stopWordRe.ReplaceAllString(lower, " ")
	return strings.TrimSpace(spaceRe.ReplaceAllString(lower, " "))
}

// classifyByEmbedding compares the cleaned title against precomputed role
// name embeddings and accepts the best match above the threshold.
func (c *Classifier) classifyByEmbedding(ctx context.Context, cleaned string) string {
	c.once.Do(func() { c.initEmbeddings(ctx) })
	if c.initErr != nil || c.embedder == nil {
		return Unclassifiable
	}

	vec, err := c.embedder.Embed(ctx, cleaned)
	if err != nil {
		return Unclassifiable
	}

	best := -1.0
	bestRole := Unclassifiable
	for i, cat := range c.taxonomy {
		score := cosine(vec, c.roleVecs[i])
		if score > best {
			best = score
			bestRole = cat.Role
		}
	}
	if best < c.threshold {
		return Unclassifiable
	}
	return bestRole
}

func (c *Classifier) initEmbeddings(ctx context.Context) {
	if c.newEmbedder == nil {
		return
	}
	embedder, err := c.newEmbedder()
	if err != nil {
		c.initErr = err
		return
	}
	vecs := make([][]float32, len(c.taxonomy))
	for i, cat := range c.taxonomy {
		vec, err := embedder.Embed(ctx, strings.ToLower(cat.Role))
		if err != nil {
			c.initErr = err
			return
		}
		vecs[i] = vec
	}
	c.embedder = embedder
	c.roleVecs = vecs
}

func cosine(a, b []float32) float64 {
	if len(a) != len(b) || len(a) == 0 {
		return 0
	}
	var dot, na, nb float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		na += float64(a[i]) * float64(a[i])
		nb += float64(b[i]) * float64(b[i])
	}
	if na == 0 || nb == 0 {
		return 0
	}
	return dot / (math.Sqrt(na) * math.Sqrt(nb))
}
