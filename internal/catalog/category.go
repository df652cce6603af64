package catalog

import (
	"strings"
	"unicode"

	"github.com/jonathan/skillgap/internal/skills"
)

// categoryKeywords is checked in order; the first category with a matching keyword wins.
// Plain keywords match whole tokens so that "go" does not match "Django".
var categoryKeywords = []struct {
	category string
	keywords []string
}{
	{"Programming Languages", []string{"python", "javascript", "java", "c++", "c#", "go", "rust", "typescript", "kotlin", "swift", "scala", "ruby", "php"}},
	{"Frontend", []string{"react", "vue", "angular", "html", "html5", "css", "css3", "tailwind", "bootstrap", "next.js", "svelte"}},
	{"Backend", []string{"django", "flask", "fastapi", "spring", "node.js", "nodejs", "express", ".net", "graphql"}},
	{"DevOps", []string{"docker", "kubernetes", "terraform", "jenkins", "gitlab", "circleci", "ansible", "ci/cd"}},
	{"Cloud", []string{"aws", "azure", "gcp", "ec2", "s3", "lambda", "firestore", "serverless"}},
	{"Databases", []string{"sql", "mysql", "postgresql", "mongodb", "redis", "elasticsearch", "snowflake"}},
	{"Data", []string{"machine learning", "deep learning", "tensorflow", "pytorch", "data science", "pandas", "spark"}},
	{"Tools", []string{"git", "jira", "slack", "figma", "adobe"}},
}

// InferCategory guesses a category from well-known keywords in the skill name.
// Names matching nothing get skills.DefaultCategory.
func InferCategory(name string) string {
	lower := strings.ToLower(skills.NormalizeSkillName(name))
	if lower == "" {
		return skills.DefaultCategory
	}
	tokens := tokenize(lower)

	for _, group := range categoryKeywords {
		for _, kw := range group.keywords {
			if strings.ContainsAny(kw, " /") {
				if strings.Contains(lower, kw) {
					return group.category
				}
				continue
			}
			if tokens[kw] {
				return group.category
			}
		}
	}
	return skills.DefaultCategory
}

// tokenize splits on whitespace, slashes, commas and parentheses, keeping
// characters such as '.', '+' and '#' that appear inside names like "c++" or "node.js".
func tokenize(s string) map[string]bool {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return unicode.IsSpace(r) || r == '/' || r == ',' || r == '(' || r == ')'
	})
	out := make(map[string]bool, len(fields))
	for _, f := range fields {
		out[f] = true
	}
	return out
}
