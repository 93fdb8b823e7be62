package rsp

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCommand_AllOptions(t *testing.T) {
	answers := Answers{
		Languages:        []string{"Go", "python"},
		Output:           "my_bundle.txt",
		Sort:             "type",
		IncludePathNote:  true,
		RemoveEmptyLines: true,
		Author:           "Jane",
	}

	command := Command(answers)

	assert.Equal(t, "bundle --language go,python --output my_bundle.txt --sort type --note --remove-empty-lines --author Jane", command)
}

func TestCommand_MinimalOptions(t *testing.T) {
	command := Command(Answers{Languages: []string{"all"}})

	assert.Equal(t, "bundle --language all", command)
}

// Values containing spaces are quoted so the line stays replayable
func TestCommand_QuotesValuesWithSpaces(t *testing.T) {
	command := Command(Answers{
		Languages: []string{"css"},
		Output:    "my bundle.txt",
		Author:    "Jane Doe",
	})

	assert.Equal(t, `bundle --language css --output "my bundle.txt" --author "Jane Doe"`, command)
}

// Generation is pure: identical answers always yield an identical command
func TestCommand_Deterministic(t *testing.T) {
	answers := Answers{
		Languages: []string{"java", "csharp"},
		Sort:      "name",
	}

	assert.Equal(t, Command(answers), Command(answers))
}

func TestCommand_SkipsBlankTokens(t *testing.T) {
	command := Command(Answers{
		Languages: []string{" go ", "", "ruby"},
		Author:    "   ",
	})

	assert.Equal(t, "bundle --language go,ruby", command)
}
