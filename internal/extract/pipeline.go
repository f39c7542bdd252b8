package extract

import (
	"context"
	"strings"
	"sync"

	"skillcompass/internal/skills"
)

// Pipeline is the hybrid skill extractor: deterministic dictionary pass,
// statistical phrase pass, optional hosted-model pass, then normalization and
// near-duplicate removal. The dictionary and phrase extractor are built once
// on first use; concurrent first callers converge on the same instances.
type Pipeline struct {
	llm LLMExtractor

	initOnce sync.Once
	dict     *Dictionary
	phrases  PhraseExtractor
}

// NewPipeline builds a pipeline. llm may be nil, in which case the hosted
// model pass is disabled regardless of the useLLM flag.
func NewPipeline(llm LLMExtractor) *Pipeline {
	return &Pipeline{llm: llm}
}

func (p *Pipeline) init() {
	p.initOnce.Do(func() {
		p.dict = NewDictionary(skills.MasterVocabulary)
		p.phrases = NewHeuristicPhraseExtractor()
	})
}

// Extract returns normalized skills in discovery order, dictionary hits
// first, with no two entries more than 85% similar. Empty input yields an
// empty result, never an error; the hosted-model pass never fails past this
// boundary.
func (p *Pipeline) Extract(ctx context.Context, text string, useLLM bool) []string {
	if strings.TrimSpace(text) == "" {
		return []string{}
	}
	p.init()

	dictSkills := p.dict.Match(text)

	merged := make([]string, 0, len(dictSkills))
	seen := make(map[string]struct{})
	appendSkill := func(raw string) {
		normalized := skills.Normalize(raw)
		if normalized == "" {
			return
		}
		key := strings.ToLower(normalized)
		if _, ok := seen[key]; ok {
			return
		}
		seen[key] = struct{}{}
		merged = append(merged, normalized)
	}

	for _, s := range dictSkills {
		appendSkill(s)
	}

	phraseSkills := p.phrases.Phrases(text)
	unseen := make([]string, 0, len(phraseSkills))
	for _, s := range phraseSkills {
		key := strings.ToLower(skills.Normalize(s))
		if _, ok := seen[key]; !ok {
			unseen = append(unseen, s)
		}
		appendSkill(s)
	}

	if useLLM && p.llm != nil {
		for _, s := range p.llm.ExtractSkills(ctx, text, unseen) {
			appendSkill(s)
		}
	}

	return dedupeBySimilarity(merged, similarityThreshold)
}
