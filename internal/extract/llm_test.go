package extract

import (
	"reflect"
	"strings"
	"testing"
)

func TestParseSkillArrayPlain(t *testing.T) {
	got := parseSkillArray(`["Python", "Docker", "Kubernetes"]`)
	want := []string{"Python", "Docker", "Kubernetes"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("parseSkillArray = %v", got)
	}
}

func TestParseSkillArrayFenced(t *testing.T) {
	raw := "```json\n[\"Go\", \"Redis\"]\n```"
	got := parseSkillArray(raw)
	want := []string{"Go", "Redis"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("parseSkillArray(fenced) = %v", got)
	}
}

func TestParseSkillArrayBareFence(t *testing.T) {
	raw := "```\n[\"SQL\"]\n```"
	got := parseSkillArray(raw)
	if len(got) != 1 || got[0] != "SQL" {
		t.Fatalf("parseSkillArray = %v", got)
	}
}

func TestParseSkillArrayGarbage(t *testing.T) {
	cases := []string{
		"",
		"no json here",
		`{"skills": ["Python"]}`,
		"```json\nnot an array\n```",
	}
	for _, c := range cases {
		if got := parseSkillArray(c); len(got) != 0 {
			t.Fatalf("parseSkillArray(%q) = %v, want none", c, got)
		}
	}
}

func TestParseSkillArraySkipsNonStrings(t *testing.T) {
	got := parseSkillArray(`["Python", 42, null, "  ", "Docker"]`)
	want := []string{"Python", "Docker"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("parseSkillArray = %v", got)
	}
}

func TestBuildExtractionPromptTruncates(t *testing.T) {
	text := strings.Repeat("a", maxLLMTextChars+500)
	candidates := make([]string, maxLLMCandidates+10)
	for i := range candidates {
		candidates[i] = "skill"
	}

	prompt := buildExtractionPrompt(text, candidates)
	if strings.Count(prompt, "a") > maxLLMTextChars {
		t.Fatalf("text not truncated")
	}
	if strings.Count(prompt, "skill") > maxLLMCandidates {
		t.Fatalf("candidates not truncated")
	}
	if !strings.Contains(prompt, "JSON array") {
		t.Fatalf("prompt missing format instruction")
	}
}

func TestNewGeminiExtractorRequiresKey(t *testing.T) {
	if _, err := NewGeminiExtractor(t.Context(), "", "gemini-2.0-flash", 0, nil); err == nil {
		t.Fatalf("expected error for empty API key")
	}
}
