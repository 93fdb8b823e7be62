package utils

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"codebundle/constants/lipgloss"
)

// InputPrompt asks one question and returns the trimmed answer.
func InputPrompt(question string, reader *bufio.Reader) (string, error) {
	fmt.Print(lipgloss.BlueSky.Render(question + " "))

	userInput, err := reader.ReadString('\n')
	if err != nil {
		if err == io.EOF {
			return strings.TrimSpace(userInput), nil
		}
		return "", fmt.Errorf("error reading input: %w", err)
	}

	return strings.TrimSpace(userInput), nil
}

// ConfirmPrompt asks a yes/no question and reports whether the user accepted.
// Anything other than y/yes declines.
func ConfirmPrompt(question string, reader *bufio.Reader) (bool, error) {
	fmt.Print(lipgloss.BlueSky.Render(question + " (y/N): "))

	response, err := reader.ReadString('\n')
	if err != nil && err != io.EOF {
		return false, fmt.Errorf("error reading input: %w", err)
	}

	response = strings.TrimSpace(strings.ToLower(response))
	return response == "y" || response == "yes", nil
}
