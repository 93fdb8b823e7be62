package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"codebundle/bundler"
	"codebundle/constants/lipgloss"
	"codebundle/rsp"
	"codebundle/utils"
)

const defaultRspFileName = "bundle.rsp"

// createRspCmd represents the create-rsp command
var createRspCmd = &cobra.Command{
	Use:   "create-rsp",
	Short: "Interactively create a response file holding an equivalent 'bundle' invocation.",
	Long: `The 'create-rsp' subcommand walks through the bundle options one question at
a time and writes the resulting 'bundle' command line into a response file,
so a bundling run can be repeated without retyping its flags.`,
	Run: func(cmd *cobra.Command, args []string) {
		handleCreateRspCommand()
	},
}

func init() {
	rootCmd.AddCommand(createRspCmd)
}

func handleCreateRspCommand() {
	reader := bufio.NewReader(os.Stdin)

	answers, err := collectRspAnswers(reader)
	if err != nil {
		fmt.Println(lipgloss.Red.Render(fmt.Sprintf("%v", err)))
		os.Exit(1)
	}

	command := rsp.Command(*answers)

	fmt.Println(lipgloss.BoxStyle.Render(command))

	rspPath, err := utils.InputPrompt(fmt.Sprintf("Response file path [%s]:", defaultRspFileName), reader)
	if err != nil {
		fmt.Println(lipgloss.Red.Render(fmt.Sprintf("%v", err)))
		os.Exit(1)
	}
	if rspPath == "" {
		rspPath = defaultRspFileName
	}

	// Same overwrite protocol as the bundle output itself.
	if _, err := os.Stat(rspPath); err == nil {
		accepted, err := utils.ConfirmPrompt(fmt.Sprintf("'%s' already exists. Overwrite?", rspPath), reader)
		if err != nil {
			fmt.Println(lipgloss.Red.Render(fmt.Sprintf("%v", err)))
			os.Exit(1)
		}
		if !accepted {
			fmt.Println(lipgloss.Yellow.Render("Response file not written: overwrite declined."))
			return
		}
	}

	if err := os.WriteFile(rspPath, []byte(command+"\n"), 0644); err != nil {
		fmt.Println(lipgloss.Red.Render(fmt.Sprintf("Error writing response file: %v", err)))
		os.Exit(1)
	}

	fmt.Println(lipgloss.Green.Render(fmt.Sprintf("✔️ Response file written to %s", rspPath)))
}

// collectRspAnswers gathers one full set of answers from the operator. The
// answers are handed to the pure rsp generator; no generation happens here.
func collectRspAnswers(reader *bufio.Reader) (*rsp.Answers, error) {
	languagesInput, err := utils.InputPrompt(fmt.Sprintf("Languages to bundle, comma-separated (all, %s):", strings.Join(bundler.KnownLanguages(), ", ")), reader)
	if err != nil {
		return nil, err
	}

	var languages []string
	for _, token := range strings.Split(languagesInput, ",") {
		token = strings.TrimSpace(token)
		if token == "" {
			continue
		}
		if !bundler.IsKnownLanguage(token) {
			return nil, fmt.Errorf("unknown language '%s'", token)
		}
		languages = append(languages, token)
	}
	if len(languages) == 0 {
		return nil, fmt.Errorf("at least one language is required")
	}

	output, err := utils.InputPrompt(fmt.Sprintf("Output path [%s]:", bundler.DefaultOutputFileName), reader)
	if err != nil {
		return nil, err
	}

	sortMode, err := utils.InputPrompt("Sort order, 'name' or 'type' [name]:", reader)
	if err != nil {
		return nil, err
	}
	if sortMode != "" && sortMode != "name" && sortMode != "type" {
		return nil, fmt.Errorf("unknown sort mode '%s'", sortMode)
	}

	includePathNote, err := utils.ConfirmPrompt("Include full file paths in headers?", reader)
	if err != nil {
		return nil, err
	}

	removeEmptyLines, err := utils.ConfirmPrompt("Remove empty lines?", reader)
	if err != nil {
		return nil, err
	}

	author, err := utils.InputPrompt("Author name (blank for none):", reader)
	if err != nil {
		return nil, err
	}

	return &rsp.Answers{
		Languages:        languages,
		Output:           output,
		Sort:             sortMode,
		IncludePathNote:  includePathNote,
		RemoveEmptyLines: removeEmptyLines,
		Author:           author,
	}, nil
}
