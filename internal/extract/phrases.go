package extract

import (
	"strings"
	"unicode"
)

// PhraseExtractor segments free text into candidate skill phrases. The
// contract is text -> candidate phrase set; implementations may be backed by
// any tagging model as long as output is stable for fixed weights.
type PhraseExtractor interface {
	Phrases(text string) []string
}

const (
	minPhraseLen = 3
	maxPhraseLen = 50
)

var functionWords = map[string]struct{}{
	"the": {}, "and": {}, "for": {}, "with": {}, "from": {}, "that": {},
	"this": {}, "have": {}, "has": {}, "are": {}, "was": {}, "were": {},
	"will": {}, "would": {}, "should": {}, "could": {}, "into": {}, "over": {},
	"about": {}, "their": {}, "them": {}, "they": {}, "you": {}, "your": {},
	"our": {}, "its": {}, "not": {}, "but": {}, "all": {}, "any": {},
	"who": {}, "what": {}, "when": {}, "where": {}, "which": {}, "while": {},
	"been": {}, "being": {}, "also": {}, "more": {}, "most": {}, "other": {},
	"such": {}, "than": {}, "then": {}, "these": {}, "those": {}, "using": {},
	"used": {}, "use": {}, "work": {}, "working": {}, "years": {}, "year": {},
	"experience": {}, "experienced": {}, "strong": {}, "good": {}, "team": {},
	"role": {}, "required": {}, "requirements": {}, "skills": {}, "including": {},
}

// HeuristicPhraseExtractor is the default statistical extractor: it collects
// capitalized noun-phrase runs and symbol-bearing technical tokens, filtered
// by the function-word list and the 3..50 char window.
type HeuristicPhraseExtractor struct{}

func NewHeuristicPhraseExtractor() *HeuristicPhraseExtractor {
	return &HeuristicPhraseExtractor{}
}

func (e *HeuristicPhraseExtractor) Phrases(text string) []string {
	if strings.TrimSpace(text) == "" {
		return nil
	}

	tokens := tokenize(text)
	seen := make(map[string]struct{})
	out := make([]string, 0)

	add := func(phrase string) {
		phrase = strings.TrimSpace(phrase)
		if len(phrase) < minPhraseLen || len(phrase) >= maxPhraseLen {
			return
		}
		if _, ok := functionWords[strings.ToLower(phrase)]; ok {
			return
		}
		key := strings.ToLower(phrase)
		if _, ok := seen[key]; ok {
			return
		}
		seen[key] = struct{}{}
		out = append(out, phrase)
	}

	run := make([]string, 0, 4)
	flushRun := func() {
		if len(run) > 0 {
			add(strings.Join(run, " "))
			run = run[:0]
		}
	}

	for _, tok := range tokens {
		if isCapitalized(tok) && !isFunctionWord(tok) {
			run = append(run, tok)
			continue
		}
		flushRun()

		// Symbol-bearing tokens (node.js, c++, ci/cd) are skill-like even
		// when lower-cased mid-sentence.
		if hasTechSymbol(tok) && !isFunctionWord(tok) {
			add(tok)
		}
	}
	flushRun()

	return out
}

func tokenize(text string) []string {
	return strings.FieldsFunc(text, func(r rune) bool {
		switch r {
		case ' ', '\t', '\n', '\r', ',', ';', ':', '(', ')', '[', ']', '{', '}', '"', '\'', '!', '?':
			return true
		}
		return false
	})
}

func isCapitalized(tok string) bool {
	runes := []rune(tok)
	if len(runes) == 0 {
		return false
	}
	return unicode.IsUpper(runes[0])
}

func isFunctionWord(tok string) bool {
	_, ok := functionWords[strings.ToLower(strings.Trim(tok, "."))]
	return ok
}

func hasTechSymbol(tok string) bool {
	trimmed := strings.Trim(tok, ".")
	if trimmed == "" {
		return false
	}
	return strings.ContainsAny(trimmed, "./+#-") && strings.IndexFunc(trimmed, unicode.IsLetter) >= 0
}
