package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/chroma/v2/quick"
	"github.com/spf13/cobra"

	"codebundle/bundler"
	"codebundle/config"
	"codebundle/constants/lipgloss"
)

// listCmd represents the list command
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Show which files a bundle run would select, without writing anything.",
	Long: `The 'list' subcommand runs the same selection as 'bundle' and prints the
resulting files in bundle order. With --preview, the head of each file is
printed with syntax highlighting so the selection can be checked before
bundling.`,
	Run: func(cmd *cobra.Command, args []string) {
		preview, _ := cmd.Flags().GetBool("preview")
		previewLines, _ := cmd.Flags().GetInt("preview-lines")

		rootDependencies := handleRootCommand(cmd)
		if rootDependencies == nil {
			os.Exit(1)
		}
		handleListCommand(rootDependencies, preview, previewLines)
	},
}

func init() {
	listCmd.Flags().BoolP("preview", "p", false, "Show a highlighted preview of each selected file")
	listCmd.Flags().Int("preview-lines", 10, "Number of lines per file preview")

	rootCmd.AddCommand(listCmd)
}

func handleListCommand(rootDependencies *RootDependencies, preview bool, previewLines int) {
	if err := config.Validate(rootDependencies.Config); err != nil {
		fmt.Println(lipgloss.Red.Render(err.Error()))
		os.Exit(1)
	}

	bundleConfig := rootDependencies.Config.ToBundleConfig()

	listing, err := bundler.ScanDirectory(rootDependencies.Cwd, bundleConfig.OutputPath)
	if err != nil {
		fmt.Println(lipgloss.Red.Render(fmt.Sprintf("%v", err)))
		os.Exit(1)
	}

	selected := rootDependencies.Selector.Select(listing, bundleConfig)

	if len(selected) == 0 {
		fmt.Println(lipgloss.Yellow.Render("No files match the requested languages."))
		return
	}

	for _, path := range selected {
		language, _ := bundler.LanguageForExtension(filepath.Ext(path))
		if language == "" {
			language = "text"
		}
		fmt.Printf("%s  %s\n", lipgloss.Info.Render(fmt.Sprintf("%-10s", language)), path)

		if preview {
			if err := printPreview(path, language, previewLines, rootDependencies.Config.Theme); err != nil {
				fmt.Println(lipgloss.Yellow.Render(fmt.Sprintf("  (preview unavailable: %v)", err)))
			}
			fmt.Println()
		}
	}

	fmt.Println(lipgloss.Green.Render(fmt.Sprintf("%d files selected.", len(selected))))
}

// printPreview renders the head of the file with syntax highlighting.
func printPreview(path string, language string, maxLines int, theme string) error {
	content, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	lines := strings.Split(string(content), "\n")
	if len(lines) > maxLines {
		lines = lines[:maxLines]
	}

	return quick.Highlight(os.Stdout, strings.Join(lines, "\n")+"\n", language, "terminal256", theme)
}
