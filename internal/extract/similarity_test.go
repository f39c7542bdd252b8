package extract

import (
	"math"
	"testing"
)

func TestRatioIdentical(t *testing.T) {
	if got := Ratio("python", "python"); got != 1.0 {
		t.Fatalf("Ratio(identical) = %v", got)
	}
	if got := Ratio("Python", "python"); got != 1.0 {
		t.Fatalf("Ratio should be case-insensitive, got %v", got)
	}
}

func TestRatioDisjoint(t *testing.T) {
	if got := Ratio("abc", "xyz"); got != 0 {
		t.Fatalf("Ratio(disjoint) = %v", got)
	}
}

func TestRatioEmpty(t *testing.T) {
	if got := Ratio("", ""); got != 1.0 {
		t.Fatalf("Ratio(empty, empty) = %v", got)
	}
	if got := Ratio("go", ""); got != 0 {
		t.Fatalf("Ratio(go, empty) = %v", got)
	}
}

func TestRatioKnownValue(t *testing.T) {
	// "react" vs "reacts": 2*5/(5+6).
	want := 2.0 * 5 / 11
	if got := Ratio("react", "reacts"); math.Abs(got-want) > 1e-9 {
		t.Fatalf("Ratio(react, reacts) = %v, want %v", got, want)
	}
}

func TestRatioSymmetric(t *testing.T) {
	pairs := [][2]string{
		{"javascript", "java"},
		{"postgresql", "postgres"},
		{"tensorflow", "tensor"},
	}
	for _, p := range pairs {
		if Ratio(p[0], p[1]) != Ratio(p[1], p[0]) {
			t.Fatalf("Ratio not symmetric for %q/%q", p[0], p[1])
		}
	}
}

func TestDedupeBySimilarityKeepsFirst(t *testing.T) {
	got := dedupeBySimilarity([]string{"PostgreSQL", "PostgreSQL.", "Docker"}, similarityThreshold)
	if len(got) != 2 {
		t.Fatalf("got %v", got)
	}
	if got[0] != "PostgreSQL" || got[1] != "Docker" {
		t.Fatalf("got %v", got)
	}
}

func TestDedupeBySimilarityDistinctSurvive(t *testing.T) {
	in := []string{"Python", "Docker", "Kubernetes"}
	got := dedupeBySimilarity(in, similarityThreshold)
	if len(got) != 3 {
		t.Fatalf("distinct skills were collapsed: %v", got)
	}
}

func TestDedupeBySimilaritySkipsBlank(t *testing.T) {
	got := dedupeBySimilarity([]string{"", "  ", "Go"}, similarityThreshold)
	if len(got) != 1 || got[0] != "Go" {
		t.Fatalf("got %v", got)
	}
}

func TestDedupeBySimilarityNoFalsePositivesBelowThreshold(t *testing.T) {
	// Property: every surviving pair is below the threshold.
	in := []string{"React", "Redux", "Rust", "REST", "Ruby"}
	got := dedupeBySimilarity(in, similarityThreshold)
	for i := 0; i < len(got); i++ {
		for j := i + 1; j < len(got); j++ {
			if Ratio(got[i], got[j]) >= similarityThreshold {
				t.Fatalf("near-duplicates survived: %q vs %q", got[i], got[j])
			}
		}
	}
}
