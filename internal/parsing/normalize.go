package parsing

import (
	"strings"
)

// skillNormalizations maps common skill name variants to canonical names
var skillNormalizations = map[string]string{
	"golang":     "Go",
	"go lang":    "Go",
	"javascript": "JavaScript",
	"js":         "JavaScript",
	"typescript": "TypeScript",
	"ts":         "TypeScript",
	"k8s":        "Kubernetes",
	"kubernetes": "Kubernetes",
	"react.js":   "React",
	"reactjs":    "React",
	"vue.js":     "Vue",
	"vuejs":      "Vue",
	"node.js":    "Node.js",
	"nodejs":     "Node.js",
	"postgres":   "PostgreSQL",
	"postgresql": "PostgreSQL",
	"mongodb":    "MongoDB",
	"mysql":      "MySQL",
	"graphql":    "GraphQL",
	"grpc":       "gRPC",
	"ci/cd":      "CI/CD",
	"devops":     "DevOps",
	"c++":        "C++",
	"c#":         "C#",
}

// acronyms keep their upper-case spelling
var acronyms = map[string]bool{
	"aws":  true,
	"gcp":  true,
	"sql":  true,
	"rest": true,
	"html": true,
	"css":  true,
	"api":  true,
}

// NormalizeSkillName normalizes a skill name to its canonical form
func NormalizeSkillName(skillName string) string {
	normalized := strings.TrimSpace(skillName)
	if normalized == "" {
		return ""
	}

	lower := strings.ToLower(normalized)
	if canonical, ok := skillNormalizations[lower]; ok {
		return canonical
	}
	if acronyms[lower] {
		return strings.ToUpper(normalized)
	}

	// All-caps single words that aren't known acronyms: capitalize first letter only
	if normalized == strings.ToUpper(normalized) && len(normalized) > 1 && !strings.Contains(lower, " ") {
		return strings.ToUpper(normalized[:1]) + strings.ToLower(normalized[1:])
	}

	// Mixed case is kept as written
	if normalized != strings.ToLower(normalized) {
		return normalized
	}

	if !strings.Contains(normalized, " ") {
		return strings.ToUpper(normalized[:1]) + normalized[1:]
	}

	return normalized
}

// NormalizeSkills normalizes skill names and drops duplicates, keeping first-seen order
func NormalizeSkills(skills []string) []string {
	normalized := make([]string, 0, len(skills))
	seen := make(map[string]bool, len(skills))

	for _, skill := range skills {
		name := NormalizeSkillName(skill)
		if name == "" {
			continue
		}
		key := strings.ToLower(name)
		if seen[key] {
			continue
		}
		seen[key] = true
		normalized = append(normalized, name)
	}

	return normalized
}
