package extract

import (
	"sort"
	"strings"

	"skillcompass/internal/skills"
)

// Dictionary is the deterministic extractor: exact, case-insensitive,
// longest-match-first occurrences of the master vocabulary. Identical input
// always yields identical output.
type Dictionary struct {
	entries []dictEntry
}

type dictEntry struct {
	lower string
	name  string
}

func NewDictionary(vocabulary []string) *Dictionary {
	entries := make([]dictEntry, 0, len(vocabulary))
	for _, v := range vocabulary {
		v = strings.TrimSpace(v)
		if v == "" {
			continue
		}
		entries = append(entries, dictEntry{lower: strings.ToLower(v), name: v})
	}

	// Longer phrases claim their span before their substrings can.
	sort.SliceStable(entries, func(i, j int) bool {
		if len(entries[i].lower) == len(entries[j].lower) {
			return entries[i].lower < entries[j].lower
		}
		return len(entries[i].lower) > len(entries[j].lower)
	})

	return &Dictionary{entries: entries}
}

// Match returns every vocabulary hit in the text, duplicates collapsed by
// normalized form, ordered by first occurrence position.
func (d *Dictionary) Match(text string) []string {
	if d == nil || strings.TrimSpace(text) == "" {
		return nil
	}

	lower := strings.ToLower(text)
	covered := make([]bool, len(lower))

	type hit struct {
		pos  int
		name string
	}
	hits := make([]hit, 0)

	for _, e := range d.entries {
		from := 0
		for {
			idx := strings.Index(lower[from:], e.lower)
			if idx < 0 {
				break
			}
			start := from + idx
			end := start + len(e.lower)
			from = start + 1

			if !boundaryAt(lower, start, end) {
				continue
			}
			if spanCovered(covered, start, end) {
				continue
			}
			for i := start; i < end; i++ {
				covered[i] = true
			}
			hits = append(hits, hit{pos: start, name: e.name})
		}
	}

	sort.SliceStable(hits, func(i, j int) bool { return hits[i].pos < hits[j].pos })

	seen := make(map[string]struct{}, len(hits))
	out := make([]string, 0, len(hits))
	for _, h := range hits {
		key := skills.NormalizedKey(h.name)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, skills.Normalize(h.name))
	}
	return out
}

func boundaryAt(lower string, start, end int) bool {
	if start > 0 && isWordByte(lower[start-1]) {
		return false
	}
	if end < len(lower) && isWordByte(lower[end]) {
		return false
	}
	return true
}

func spanCovered(covered []bool, start, end int) bool {
	for i := start; i < end; i++ {
		if covered[i] {
			return true
		}
	}
	return false
}

func isWordByte(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= '0' && b <= '9')
}
