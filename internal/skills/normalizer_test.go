package skills

import "testing"

func TestNormalizeAliases(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"ReactJS", "React"},
		{"react.js", "React"},
		{"React", "React"},
		{"node", "Node.js"},
		{"NodeJS", "Node.js"},
		{"k8s", "Kubernetes"},
		{"golang", "Go"},
		{"Postgres", "PostgreSQL"},
		{"  docker  ", "Docker"},
	}
	for _, c := range cases {
		if got := Normalize(c.in); got != c.want {
			t.Fatalf("Normalize(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestNormalizeUnknownKeepsOriginalCase(t *testing.T) {
	if got := Normalize("Erlang"); got != "Erlang" {
		t.Fatalf("Normalize(Erlang) = %q", got)
	}
	if got := Normalize("  ClickHouse  "); got != "ClickHouse" {
		t.Fatalf("unknown skill should be trimmed, got %q", got)
	}
}

func TestNormalizeEmpty(t *testing.T) {
	if got := Normalize("   "); got != "" {
		t.Fatalf("Normalize(blank) = %q, want empty", got)
	}
}

func TestNormalizedKeyCollapsesSpellings(t *testing.T) {
	variants := []string{"ReactJS", "react.js", "REACT", "react"}
	want := NormalizedKey("React")
	for _, v := range variants {
		if got := NormalizedKey(v); got != want {
			t.Fatalf("NormalizedKey(%q) = %q, want %q", v, got, want)
		}
	}
}

func TestMasterVocabularyNormalizes(t *testing.T) {
	for _, name := range MasterVocabulary {
		if Normalize(name) == "" {
			t.Fatalf("vocabulary entry %q normalizes to empty", name)
		}
	}
	// Spelling variants collapse onto one identity.
	if NormalizedKey("React.js") != NormalizedKey("ReactJS") {
		t.Fatalf("react spellings should share one key")
	}
}
