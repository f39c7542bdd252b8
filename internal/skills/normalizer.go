package skills

import "strings"

// aliasTable maps lower-cased raw spellings to their canonical display form.
// Read-only after init; Normalize is called on every extracted token.
var aliasTable = map[string]string{
	"react":            "React",
	"react.js":         "React",
	"reactjs":          "React",
	"node":             "Node.js",
	"node.js":          "Node.js",
	"nodejs":           "Node.js",
	"vue":              "Vue.js",
	"vue.js":           "Vue.js",
	"vuejs":            "Vue.js",
	"typescript":       "TypeScript",
	"javascript":       "JavaScript",
	"python":           "Python",
	"java":             "Java",
	"golang":           "Go",
	"go":               "Go",
	"rust":             "Rust",
	"c++":              "C++",
	"c#":               "C#",
	"php":              "PHP",
	"kotlin":           "Kotlin",
	"swift":            "Swift",
	"django":           "Django",
	"flask":            "Flask",
	"fastapi":          "FastAPI",
	"postgresql":       "PostgreSQL",
	"postgres":         "PostgreSQL",
	"mongodb":          "MongoDB",
	"mysql":            "MySQL",
	"redis":            "Redis",
	"docker":           "Docker",
	"kubernetes":       "Kubernetes",
	"k8s":              "Kubernetes",
	"aws":              "AWS",
	"azure":            "Azure",
	"gcp":              "GCP",
	"git":              "Git",
	"github":           "GitHub",
	"gitlab":           "GitLab",
	"rest api":         "REST API",
	"rest":             "REST",
	"graphql":          "GraphQL",
	"grpc":             "gRPC",
	"machine learning": "Machine Learning",
	"deep learning":    "Deep Learning",
	"tensorflow":       "TensorFlow",
	"pytorch":          "PyTorch",
	"scikit-learn":     "scikit-learn",
	"sklearn":          "scikit-learn",
	"nlp":              "NLP",
	"html":             "HTML",
	"css":              "CSS",
	"sass":             "SASS",
	"tailwind":         "Tailwind",
	"tailwind css":     "Tailwind CSS",
	"agile":            "Agile",
	"scrum":            "Scrum",
	"jira":             "Jira",
	"linux":            "Linux",
	"bash":             "Bash",
	"testing":          "Testing",
	"ci/cd":            "CI/CD",
	"terraform":        "Terraform",
	"sql":              "SQL",
}

// Normalize canonicalizes a raw skill token. Unknown tokens keep their
// trimmed original spelling, not the lower-cased one.
func Normalize(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return ""
	}
	if canonical, ok := aliasTable[strings.ToLower(trimmed)]; ok {
		return canonical
	}
	return trimmed
}

// NormalizedKey is the case-insensitive identity of a skill. Two raw strings
// with the same key must resolve to the same stored Skill row.
func NormalizedKey(raw string) string {
	return strings.ToLower(Normalize(raw))
}
