// Package analyzer enriches stored jobs with structured facts pulled out of
// the free-text description by an LLM. Enrichment is best-effort: a failed
// call degrades to no analysis, it never fails the pipeline.
package analyzer

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"
)

const systemPrompt = `You are a job posting analyst. Given a job description, extract the following as a single JSON object:
{
  "technologies": [list of technologies, languages and frameworks mentioned],
  "required_experience_years": number or null,
  "visa_sponsorship": "yes" | "no" | "unknown",
  "citizenship_required": true | false,
  "security_clearance": true | false,
  "work_mode": "remote" | "hybrid" | "onsite" | "unknown",
  "summary": "one sentence summary of the role"
}
Return ONLY the raw JSON object. No markdown fences, no commentary.`

type Analyzer struct {
	llm *openai.LLM
}

// New creates an analyzer using the given OpenAI chat model.
func New(apiKey, model string) (*Analyzer, error) {
	llm, err := openai.New(
		openai.WithToken(apiKey),
		openai.WithModel(model),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create openai client: %w", err)
	}
	return &Analyzer{llm: llm}, nil
}

// Analyze extracts structured facts from a job description. Returns nil on
// any failure so callers can store the job without enrichment.
func (a *Analyzer) Analyze(ctx context.Context, title, description string) map[string]any {
	if strings.TrimSpace(description) == "" {
		return nil
	}

	prompt := fmt.Sprintf("%s\n\nJob Title: %s\n\nJob Description:\n%s", systemPrompt, title, description)

	completion, err := llms.GenerateFromSinglePrompt(ctx, a.llm, prompt,
		llms.WithTemperature(0.1),
	)
	if err != nil {
		log.Printf("⚠️  LLM analysis failed for %q: %v", title, err)
		return nil
	}

	var analysis map[string]any
	if err := json.Unmarshal([]byte(cleanMarkdownJSON(completion)), &analysis); err != nil {
		log.Printf("⚠️  LLM returned unparseable analysis for %q: %v", title, err)
		return nil
	}
	return analysis
}

// cleanMarkdownJSON strips backtick fences if the model tries to be helpful.
func cleanMarkdownJSON(content string) string {
	content = strings.TrimSpace(content)
	if strings.HasPrefix(content, "```json") {
		content = strings.TrimPrefix(content, "```json")
		content = strings.TrimSuffix(content, "```")
	} else if strings.HasPrefix(content, "```") {
		content = strings.TrimPrefix(content, "```")
		content = strings.TrimSuffix(content, "```")
	}
	return strings.TrimSpace(content)
}
