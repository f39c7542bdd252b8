package ranking

import (
	"math"
	"strings"
	"unicode"
)

// LexicalSimilarity treats the user's concatenated skill names and the role's
// concatenated skill names as a two-document corpus, vectorizes both with
// TF-IDF, and returns their cosine similarity. Either side empty scores 0.
func LexicalSimilarity(userSkillNames, roleSkillNames []string) float64 {
	userText := strings.Join(userSkillNames, " ")
	roleText := strings.Join(roleSkillNames, " ")

	userTokens := tfTokens(userText)
	roleTokens := tfTokens(roleText)
	if len(userTokens) == 0 || len(roleTokens) == 0 {
		return 0
	}

	userTF := termCounts(userTokens)
	roleTF := termCounts(roleTokens)

	vocab := make(map[string]struct{}, len(userTF)+len(roleTF))
	for t := range userTF {
		vocab[t] = struct{}{}
	}
	for t := range roleTF {
		vocab[t] = struct{}{}
	}

	// Smoothed IDF over the two-document corpus: ln((1+n)/(1+df)) + 1.
	const docs = 2.0
	userVec := make(map[string]float64, len(userTF))
	roleVec := make(map[string]float64, len(roleTF))
	for t := range vocab {
		df := 0.0
		if userTF[t] > 0 {
			df++
		}
		if roleTF[t] > 0 {
			df++
		}
		idf := math.Log((1+docs)/(1+df)) + 1
		if userTF[t] > 0 {
			userVec[t] = float64(userTF[t]) * idf
		}
		if roleTF[t] > 0 {
			roleVec[t] = float64(roleTF[t]) * idf
		}
	}

	return cosineSparse(userVec, roleVec)
}

// tfTokens lower-cases and keeps runs of letters/digits at least two chars
// long, matching the conventional vectorizer token pattern.
func tfTokens(text string) []string {
	fields := strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
	out := make([]string, 0, len(fields))
	for _, f := range fields {
		if len(f) >= 2 {
			out = append(out, f)
		}
	}
	return out
}

func termCounts(tokens []string) map[string]int {
	counts := make(map[string]int, len(tokens))
	for _, t := range tokens {
		counts[t]++
	}
	return counts
}

func cosineSparse(a, b map[string]float64) float64 {
	var dot, normA, normB float64
	for t, va := range a {
		normA += va * va
		if vb, ok := b[t]; ok {
			dot += va * vb
		}
	}
	for _, vb := range b {
		normB += vb * vb
	}
	if normA == 0 || normB == 0 {
		return 0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}
