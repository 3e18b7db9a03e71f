package fingerprint

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateStability(t *testing.T) {
	tests := []struct {
		name               string
		companyA, titleA   string
		companyB, titleB   string
	}{
		{
			name:     "legal suffix ignored",
			companyA: "Atlassian Pty Ltd", titleA: "Senior Software Engineer",
			companyB: "Atlassian", titleB: "Senior Software Engineer",
		},
		{
			name:     "case and whitespace ignored",
			companyA: "CANVA", titleA: "  Backend Engineer ",
			companyB: "canva", titleB: "Backend Engineer",
		},
		{
			name:     "punctuation ignored",
			companyA: "ACME Corp.", titleA: "Engineer - Data",
			companyB: "ACME", titleB: "Engineer Data",
		},
		{
			name:     "diacritics folded",
			companyA: "Café Analytics", titleA: "Data Analyst",
			companyB: "Cafe Analytics", titleB: "Data Analyst",
		},
		{
			name:     "limited suffix variant",
			companyA: "Telstra Limited", titleA: "Network Engineer",
			companyB: "Telstra", titleB: "Network Engineer",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := Generate(tt.companyA, tt.titleA)
			b := Generate(tt.companyB, tt.titleB)
			assert.Equal(t, a, b)
		})
	}
}

func TestGenerateDistinguishes(t *testing.T) {
	assert.NotEqual(t,
		Generate("Atlassian", "Software Engineer"),
		Generate("Atlassian", "Senior Software Engineer"),
		"different raw titles must not collide")

	assert.NotEqual(t,
		Generate("Atlassian", "Software Engineer"),
		Generate("Canva", "Software Engineer"),
		"different companies must not collide")
}

func TestGenerateFormat(t *testing.T) {
	fp := Generate("Canva", "Frontend Developer")
	assert.Equal(t, "canva|frontend developer", fp)
	assert.Equal(t, 2, len(strings.Split(fp, "|")))
}

func TestGenerateEmptyInputs(t *testing.T) {
	assert.Equal(t, "|", Generate("", ""))
	assert.Equal(t, "canva|", Generate("Canva", ""))
}
