package services

import "strings"

// NormalizeText trims the text and collapses runs of whitespace (including
// newlines) into single spaces so that formatting differences between uploads
// and manual entry do not shift embeddings.
func NormalizeText(text string) string {
	return strings.Join(strings.Fields(text), " ")
}

// CleanText trims each line and drops empty ones, preserving line structure.
// Used on extracted resume text before storage.
func CleanText(text string) string {
	lines := strings.Split(strings.TrimSpace(text), "\n")
	var cleanedLines []string

	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line != "" {
			cleanedLines = append(cleanedLines, line)
		}
	}

	return strings.Join(cleanedLines, "\n")
}

// TruncateText caps the text at maxChars runes. Truncation is deterministic
// and applied identically to job descriptions and resumes, so a text that is
// too long for the embedding model degrades consistently instead of erroring.
func TruncateText(text string, maxChars int) string {
	if maxChars <= 0 {
		return text
	}

	runes := []rune(text)
	if len(runes) <= maxChars {
		return text
	}

	return string(runes[:maxChars])
}
