package extract

import "strings"

// similarityThreshold is the cutoff above which two normalized skills are
// considered cosmetic variants of each other.
const similarityThreshold = 0.85

// Ratio is a symmetric string similarity in [0,1]: twice the number of
// matching characters over the total length, with matches found by
// recursively taking the longest common substring (Ratcliff-Obershelp).
func Ratio(a, b string) float64 {
	a = strings.ToLower(a)
	b = strings.ToLower(b)
	total := len(a) + len(b)
	if total == 0 {
		return 1.0
	}
	return 2.0 * float64(matchingChars(a, b)) / float64(total)
}

func matchingChars(a, b string) int {
	if a == "" || b == "" {
		return 0
	}

	start1, start2, size := longestCommonSubstring(a, b)
	if size == 0 {
		return 0
	}

	matched := size
	matched += matchingChars(a[:start1], b[:start2])
	matched += matchingChars(a[start1+size:], b[start2+size:])
	return matched
}

func longestCommonSubstring(a, b string) (int, int, int) {
	bestA, bestB, bestLen := 0, 0, 0

	prev := make([]int, len(b)+1)
	cur := make([]int, len(b)+1)
	for i := 1; i <= len(a); i++ {
		for j := 1; j <= len(b); j++ {
			if a[i-1] == b[j-1] {
				cur[j] = prev[j-1] + 1
				if cur[j] > bestLen {
					bestLen = cur[j]
					bestA = i - bestLen
					bestB = j - bestLen
				}
			} else {
				cur[j] = 0
			}
		}
		prev, cur = cur, prev
	}

	return bestA, bestB, bestLen
}

// dedupeBySimilarity walks items in order and keeps an item only when it is
// not a near-duplicate of anything already kept.
func dedupeBySimilarity(items []string, threshold float64) []string {
	kept := make([]string, 0, len(items))
	for _, it := range items {
		if strings.TrimSpace(it) == "" {
			continue
		}
		dup := false
		for _, k := range kept {
			if Ratio(it, k) >= threshold {
				dup = true
				break
			}
		}
		if !dup {
			kept = append(kept, it)
		}
	}
	return kept
}
