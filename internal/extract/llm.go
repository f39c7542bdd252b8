package extract

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"
	"time"

	"google.golang.org/genai"
)

const (
	maxLLMTextChars  = 3000
	maxLLMCandidates = 30
)

// LLMExtractor asks a hosted generative model for additional skills. It is
// best-effort: implementations return an empty slice on any transport, parse,
// or format failure and must never stall the pipeline past their timeout.
type LLMExtractor interface {
	ExtractSkills(ctx context.Context, text string, candidates []string) []string
}

type GeminiExtractor struct {
	client  *genai.Client
	model   string
	timeout time.Duration
	logger  *log.Logger
}

func NewGeminiExtractor(ctx context.Context, apiKey, model string, timeout time.Duration, logger *log.Logger) (*GeminiExtractor, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, fmt.Errorf("empty gemini api key")
	}
	if model == "" {
		model = "gemini-2.0-flash"
	}
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	if logger == nil {
		logger = log.Default()
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create genai client: %w", err)
	}

	return &GeminiExtractor{client: client, model: model, timeout: timeout, logger: logger}, nil
}

func (e *GeminiExtractor) ExtractSkills(ctx context.Context, text string, candidates []string) []string {
	if e == nil || e.client == nil {
		return nil
	}
	if len(candidates) == 0 {
		return nil
	}

	ctx, cancel := context.WithTimeout(ctx, e.timeout)
	defer cancel()

	prompt := buildExtractionPrompt(text, candidates)

	resp, err := e.client.Models.GenerateContent(ctx, e.model, genai.Text(prompt), nil)
	if err != nil {
		e.logger.Printf("llm extract | status=error err=%v", err)
		return nil
	}

	out := parseSkillArray(resp.Text())
	e.logger.Printf("llm extract | status=ok candidates=%d skills=%d", len(candidates), len(out))
	return out
}

func buildExtractionPrompt(text string, candidates []string) string {
	if len(text) > maxLLMTextChars {
		text = text[:maxLLMTextChars]
	}
	if len(candidates) > maxLLMCandidates {
		candidates = candidates[:maxLLMCandidates]
	}

	var b strings.Builder
	b.WriteString("Extract ONLY professional skills from this text. ")
	b.WriteString("Return a clean JSON array of skill strings. No explanations.\n\n")
	b.WriteString("Text: ")
	b.WriteString(text)
	b.WriteString("\n\nCandidate phrases to consider: ")
	b.WriteString(strings.Join(candidates, ", "))
	b.WriteString("\n\nJSON array:")
	return b.String()
}

// parseSkillArray parses the model output leniently: fenced code blocks are
// stripped first, anything that is not a JSON array of strings counts as zero
// extracted skills.
func parseSkillArray(raw string) []string {
	clean := stripCodeFences(raw)
	if clean == "" {
		return nil
	}

	var arr []any
	if err := json.Unmarshal([]byte(clean), &arr); err != nil {
		return nil
	}

	out := make([]string, 0, len(arr))
	for _, v := range arr {
		s, ok := v.(string)
		if !ok {
			continue
		}
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		out = append(out, s)
	}
	return out
}

func stripCodeFences(s string) string {
	clean := strings.TrimSpace(s)
	if strings.HasPrefix(clean, "```json") {
		clean = strings.TrimPrefix(clean, "```json")
	} else if strings.HasPrefix(clean, "```") {
		clean = strings.TrimPrefix(clean, "```")
	}
	clean = strings.TrimLeft(clean, "\r\n")
	clean = strings.TrimSuffix(clean, "```")
	return strings.TrimSpace(clean)
}
