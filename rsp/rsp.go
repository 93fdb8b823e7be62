// Package rsp generates response files: text files holding an equivalent
// 'bundle' invocation that can be replayed later. Generation is a pure
// function over already-answered prompts; all prompting I/O lives in the
// command layer.
package rsp

import (
	"strings"
)

// Answers holds one full set of answered prompts for a response file.
type Answers struct {
	Languages        []string
	Output           string
	Sort             string
	IncludePathNote  bool
	RemoveEmptyLines bool
	Author           string
}

// Command builds the 'bundle' invocation string equivalent to the answers.
// The result is deterministic: identical answers always yield an identical
// command.
func Command(answers Answers) string {
	parts := []string{"bundle"}

	languages := make([]string, 0, len(answers.Languages))
	for _, token := range answers.Languages {
		token = strings.ToLower(strings.TrimSpace(token))
		if token != "" {
			languages = append(languages, token)
		}
	}
	if len(languages) > 0 {
		parts = append(parts, "--language", strings.Join(languages, ","))
	}

	if output := strings.TrimSpace(answers.Output); output != "" {
		parts = append(parts, "--output", quoteIfNeeded(output))
	}

	if sortMode := strings.ToLower(strings.TrimSpace(answers.Sort)); sortMode != "" {
		parts = append(parts, "--sort", sortMode)
	}

	if answers.IncludePathNote {
		parts = append(parts, "--note")
	}

	if answers.RemoveEmptyLines {
		parts = append(parts, "--remove-empty-lines")
	}

	if author := strings.TrimSpace(answers.Author); author != "" {
		parts = append(parts, "--author", quoteIfNeeded(author))
	}

	return strings.Join(parts, " ")
}

// quoteIfNeeded wraps values containing spaces in double quotes so the
// generated command stays a single replayable line.
func quoteIfNeeded(value string) string {
	if strings.ContainsAny(value, " \t") {
		return "\"" + value + "\""
	}
	return value
}
