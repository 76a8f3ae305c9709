package services

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
)

type SkillExtractor interface {
	ExtractSkills(text string) map[string][]string
	MatchSkills(jobSkills, resumeSkills map[string][]string) map[string][]string
	SkillSummary(matches map[string][]string) string
	TopSkills(matches map[string][]string, topN int) []string
}

type skillExtractor struct {
	keywords      map[string]map[string]bool
	abbreviations map[string]string
	patterns      []*regexp.Regexp
}

var skillCategories = map[string][]string{
	"programming_languages": {
		"python", "javascript", "java", "c++", "c#", "php", "ruby", "go", "rust",
		"swift", "kotlin", "scala", "r", "sql", "html", "css", "typescript",
		"bash", "powershell",
	},
	"frameworks": {
		"react", "angular", "vue", "node.js", "express", "django", "flask",
		"spring", "laravel", "rails", "fastapi", "tensorflow", "pytorch",
		"scikit-learn", "pandas", "numpy", "graphql", "rest api", "docker",
		"kubernetes", "grpc",
	},
	"databases": {
		"mysql", "postgresql", "mongodb", "redis", "elasticsearch", "cassandra",
		"oracle", "sqlite", "dynamodb", "firebase", "mariadb",
	},
	"cloud_devops": {
		"aws", "azure", "gcp", "heroku", "jenkins", "gitlab", "github actions",
		"terraform", "ansible", "circleci",
	},
	"data_science": {
		"machine learning", "deep learning", "neural networks", "computer vision",
		"natural language processing", "nlp", "data analysis", "statistics",
		"regression", "classification", "clustering", "recommendation systems",
		"time series", "forecasting", "a/b testing",
	},
	"soft_skills": {
		"leadership", "communication", "teamwork", "problem solving",
		"project management", "agile", "scrum", "kanban", "mentoring",
	},
	"tools_platforms": {
		"git", "jira", "confluence", "figma", "excel", "tableau", "power bi",
		"snowflake", "databricks",
	},
}

var skillAbbreviations = map[string]string{
	"ml":  "machine learning",
	"nlp": "natural language processing",
	"pm":  "project management",
}

// Phrases like "experience with X" or "skills: a, b, c" frequently carry the
// skills a plain keyword scan over prose would miss.
var skillPatternSources = []string{
	`experience with ([\w][\w\s\-+.#]*)`,
	`proficient in ([\w][\w\s\-+.#]*)`,
	`expertise in ([\w][\w\s\-+.#]*)`,
	`knowledge of ([\w][\w\s\-+.#]*)`,
	`skilled in ([\w][\w\s\-+.#]*)`,
	`familiar with ([\w][\w\s\-+.#]*)`,
	`worked with ([\w][\w\s\-+.#]*)`,
	`technologies: ([\w][\w\s\-+.#,]*)`,
	`skills: ([\w][\w\s\-+.#,]*)`,
	`tools: ([\w][\w\s\-+.#,]*)`,
}

// NewSkillExtractor builds the keyword-based extractor. It is stateless after
// construction and safe for concurrent use.
func NewSkillExtractor() SkillExtractor {
	keywords := make(map[string]map[string]bool, len(skillCategories))
	for category, list := range skillCategories {
		set := make(map[string]bool, len(list))
		for _, kw := range list {
			set[kw] = true
		}
		keywords[category] = set
	}

	patterns := make([]*regexp.Regexp, 0, len(skillPatternSources))
	for _, src := range skillPatternSources {
		patterns = append(patterns, regexp.MustCompile(src))
	}

	return &skillExtractor{
		keywords:      keywords,
		abbreviations: skillAbbreviations,
		patterns:      patterns,
	}
}

// ExtractSkills implements SkillExtractor. It combines direct keyword
// matching, abbreviation expansion and phrase-pattern matching over the
// lowercased text. Results are sorted per category so output is stable.
func (s *skillExtractor) ExtractSkills(text string) map[string][]string {
	text = strings.ToLower(strings.TrimSpace(text))
	if text == "" {
		return map[string][]string{}
	}

	found := make(map[string]map[string]bool, len(s.keywords))
	for category := range s.keywords {
		found[category] = make(map[string]bool)
	}

	// Direct keyword matching.
	for category, keywords := range s.keywords {
		for kw := range keywords {
			if containsKeyword(text, kw) {
				found[category][kw] = true
			}
		}
	}

	// Abbreviation expansion.
	for abbrev, full := range s.abbreviations {
		if containsKeyword(text, abbrev) {
			for category, keywords := range s.keywords {
				if keywords[full] {
					found[category][full] = true
					break
				}
			}
		}
	}

	// Phrase patterns.
	for _, pattern := range s.patterns {
		for _, match := range pattern.FindAllStringSubmatch(text, -1) {
			for _, token := range strings.FieldsFunc(match[1], func(r rune) bool {
				return r == ',' || r == ' '
			}) {
				token = strings.TrimSpace(token)
				if len(token) <= 2 {
					continue
				}
				for category, keywords := range s.keywords {
					if keywords[token] {
						found[category][token] = true
					}
				}
			}
		}
	}

	result := make(map[string][]string)
	for category, set := range found {
		if len(set) == 0 {
			continue
		}
		skills := make([]string, 0, len(set))
		for kw := range set {
			skills = append(skills, kw)
		}
		sort.Strings(skills)
		result[category] = skills
	}

	return result
}

// MatchSkills implements SkillExtractor. Returns the skills required by the
// job that also appear in the resume, per category, including substring
// partial matches ("postgres" in "postgresql").
func (s *skillExtractor) MatchSkills(jobSkills, resumeSkills map[string][]string) map[string][]string {
	matches := make(map[string][]string)

	for category := range s.keywords {
		jobSet := jobSkills[category]
		resumeSet := resumeSkills[category]
		if len(jobSet) == 0 || len(resumeSet) == 0 {
			continue
		}

		matched := make(map[string]bool)
		for _, jobSkill := range jobSet {
			for _, resumeSkill := range resumeSet {
				if jobSkill == resumeSkill ||
					strings.Contains(resumeSkill, jobSkill) ||
					strings.Contains(jobSkill, resumeSkill) {
					matched[resumeSkill] = true
				}
			}
		}

		if len(matched) > 0 {
			skills := make([]string, 0, len(matched))
			for kw := range matched {
				skills = append(skills, kw)
			}
			sort.Strings(skills)
			matches[category] = skills
		}
	}

	return matches
}

// SkillSummary implements SkillExtractor. Produces the human-readable line
// that is injected into the AI summary prompt.
func (s *skillExtractor) SkillSummary(matches map[string][]string) string {
	if len(matches) == 0 {
		return "No specific skill matches found."
	}

	categories := make([]string, 0, len(matches))
	for category := range matches {
		categories = append(categories, category)
	}
	sort.Strings(categories)

	totalMatches := 0
	var parts []string
	for _, category := range categories {
		skills := matches[category]
		totalMatches += len(skills)

		categoryName := strings.Title(strings.ReplaceAll(category, "_", " "))
		if len(skills) == 1 {
			parts = append(parts, fmt.Sprintf("%s: %s", categoryName, skills[0]))
		} else {
			parts = append(parts, fmt.Sprintf("%s: %s and %s",
				categoryName, strings.Join(skills[:len(skills)-1], ", "), skills[len(skills)-1]))
		}
	}

	if totalMatches == 1 {
		return fmt.Sprintf("Found 1 matching skill: %s", parts[0])
	}

	return fmt.Sprintf("Found %d matching skills across %d categories: %s",
		totalMatches, len(matches), strings.Join(parts, "; "))
}

// TopSkills implements SkillExtractor.
func (s *skillExtractor) TopSkills(matches map[string][]string, topN int) []string {
	var all []string
	for _, skills := range matches {
		all = append(all, skills...)
	}
	sort.Strings(all)

	if len(all) > topN {
		all = all[:topN]
	}
	return all
}

// containsKeyword reports whether kw occurs in text on word boundaries, so
// "go" does not match inside "mongodb" or "django".
func containsKeyword(text, kw string) bool {
	idx := 0
	for {
		i := strings.Index(text[idx:], kw)
		if i < 0 {
			return false
		}
		start := idx + i
		end := start + len(kw)

		leftOK := start == 0 || !isWordChar(rune(text[start-1]))
		rightOK := end == len(text) || !isWordChar(rune(text[end]))
		if leftOK && rightOK {
			return true
		}

		idx = start + 1
	}
}

func isWordChar(r rune) bool {
	return r == '_' || ('a' <= r && r <= 'z') || ('0' <= r && r <= '9')
}
