package skills

import (
	"strings"
)

// skillNormalizations maps common skill name variants to canonical names
var skillNormalizations = map[string]string{
	"golang":           "Go",
	"golanglang":       "Go",
	"go lang":          "Go",
	"javascript":       "JavaScript",
	"js":               "JavaScript",
	"typescript":       "TypeScript",
	"ts":               "TypeScript",
	"k8s":              "Kubernetes",
	"kubernetes":       "Kubernetes",
	"react.js":         "React",
	"reactjs":          "React",
	"vue.js":           "Vue",
	"vuejs":            "Vue",
	"node.js":          "Node.js",
	"nodejs":           "Node.js",
	"node":             "Node.js",
	"postgres":         "PostgreSQL",
	"postgresql":       "PostgreSQL",
	"mongo":            "MongoDB",
	"mongodb":          "MongoDB",
	"aws":              "AWS",
	"gcp":              "GCP",
	"sql":              "SQL",
	"html":             "HTML/CSS",
	"css":              "HTML/CSS",
	"html/css":         "HTML/CSS",
	"html & css":       "HTML/CSS",
	"rest":             "REST APIs",
	"rest api":         "REST APIs",
	"rest apis":        "REST APIs",
	"restful apis":     "REST APIs",
	"ci/cd":            "CI/CD",
	"cicd":             "CI/CD",
	"ml":               "Machine Learning",
	"machine learning": "Machine Learning",
	"dl":               "Deep Learning",
	"nlp":              "NLP",
	"tf":               "TensorFlow",
	"tensorflow":       "TensorFlow",
	"pytorch":          "PyTorch",
	"ui/ux":            "UI/UX Design",
	"graphql":          "GraphQL",
}

// NormalizeSkillName normalizes a skill name to its canonical form
func NormalizeSkillName(skillName string) string {
	if skillName == "" {
		return ""
	}

	normalized := strings.TrimSpace(skillName)

	lower := strings.ToLower(normalized)
	if canonical, ok := skillNormalizations[lower]; ok {
		return canonical
	}

	// All-caps single words that aren't known acronyms get a leading capital only
	if normalized == strings.ToUpper(normalized) && len(normalized) > 1 {
		if !strings.Contains(lower, " ") {
			return strings.ToUpper(normalized[:1]) + strings.ToLower(normalized[1:])
		}
	}

	// Mixed case is kept as written
	if normalized != strings.ToUpper(normalized) && normalized != strings.ToLower(normalized) {
		return normalized
	}

	if normalized == strings.ToLower(normalized) && !strings.Contains(normalized, " ") && len(normalized) > 0 {
		return strings.ToUpper(normalized[:1]) + normalized[1:]
	}

	return normalized
}

// LookupKey returns the case-folded canonical form of a skill name, suitable
// for keying metadata tables where "reactjs" and "React" must collide.
func LookupKey(skillName string) string {
	return strings.ToLower(NormalizeSkillName(skillName))
}
