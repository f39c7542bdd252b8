package extract

import (
	"reflect"
	"testing"

	"skillcompass/internal/skills"
)

func TestDictionaryMatchBasic(t *testing.T) {
	d := NewDictionary(skills.MasterVocabulary)

	got := d.Match("Experienced with Python, Docker and PostgreSQL.")
	want := []string{"Python", "Docker", "PostgreSQL"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Match = %v, want %v", got, want)
	}
}

func TestDictionaryMatchCaseInsensitive(t *testing.T) {
	d := NewDictionary(skills.MasterVocabulary)

	got := d.Match("python PYTHON PyThOn")
	if len(got) != 1 || got[0] != "Python" {
		t.Fatalf("Match = %v", got)
	}
}

func TestDictionaryMatchWordBoundaries(t *testing.T) {
	d := NewDictionary([]string{"Go", "R"})

	if got := d.Match("Google rides are gone"); len(got) != 0 {
		t.Fatalf("substring matches leaked through: %v", got)
	}
	if got := d.Match("We write Go and R."); len(got) != 2 {
		t.Fatalf("standalone tokens missed: %v", got)
	}
}

func TestDictionaryMatchLongestFirst(t *testing.T) {
	d := NewDictionary([]string{"Machine Learning", "Learning"})

	got := d.Match("Deep background in machine learning systems")
	if len(got) != 1 || got[0] != "Machine Learning" {
		t.Fatalf("Match = %v, want only the longer phrase", got)
	}
}

func TestDictionaryMatchOrderByPosition(t *testing.T) {
	d := NewDictionary(skills.MasterVocabulary)

	got := d.Match("Kubernetes before Docker before Redis")
	want := []string{"Kubernetes", "Docker", "Redis"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Match = %v, want %v", got, want)
	}
}

func TestDictionaryMatchAliasVariantsCollapse(t *testing.T) {
	d := NewDictionary(skills.MasterVocabulary)

	got := d.Match("We use React.js and ReactJS and React")
	if len(got) != 1 || got[0] != "React" {
		t.Fatalf("Match = %v, want single React", got)
	}
}

func TestDictionaryMatchEmpty(t *testing.T) {
	d := NewDictionary(skills.MasterVocabulary)
	if got := d.Match("   "); got != nil {
		t.Fatalf("Match(blank) = %v", got)
	}
}
