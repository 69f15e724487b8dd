package utils

import "strings"

// SplitLines splits recognized text into trimmed lines, keeping empty lines
// so callers can reason about adjacency (e.g. "the line after the label").
func SplitLines(text string) []string {
	cleaned := strings.ReplaceAll(text, "\r", "")
	raw := strings.Split(cleaned, "\n")
	lines := make([]string, 0, len(raw))
	for _, l := range raw {
		lines = append(lines, strings.TrimSpace(l))
	}
	return lines
}

// NonEmptyLines splits recognized text into trimmed lines with empty and
// whitespace-only lines dropped.
func NonEmptyLines(text string) []string {
	var lines []string
	for _, l := range SplitLines(text) {
		if l != "" {
			lines = append(lines, l)
		}
	}
	return lines
}
