package cmd

import (
	"bufio"
	"fmt"
	"os"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"codebundle/bundler"
	"codebundle/config"
	"codebundle/constants/lipgloss"
	"codebundle/utils"
)

// BundleCmd: codebundle bundle
var bundleCmd = &cobra.Command{
	Use:   "bundle",
	Short: "Bundle matching source files of the current directory into one output file.",
	Long: `The 'bundle' subcommand scans the current working directory, selects every
file whose language is in the requested set (or all files when 'all' is
requested), and concatenates them into a single output file. Each file is
preceded by a header line, optionally by an author line, and may have its
empty lines removed.`,
	Run: func(cmd *cobra.Command, args []string) {
		rootDependencies := handleRootCommand(cmd)
		if rootDependencies == nil {
			os.Exit(1)
		}
		handleBundleCommand(rootDependencies)
	},
}

func init() {
	rootCmd.AddCommand(bundleCmd)
}

func handleBundleCommand(rootDependencies *RootDependencies) {

	// Invalid configuration aborts before any I/O
	if err := config.Validate(rootDependencies.Config); err != nil {
		fmt.Println(lipgloss.Red.Render(err.Error()))
		os.Exit(1)
	}

	bundleConfig := rootDependencies.Config.ToBundleConfig()

	// Overwrite protocol: a pure existence check followed by an explicit
	// decision from the operator. The engine itself never prompts.
	if _, err := os.Stat(bundleConfig.OutputPath); err == nil {
		reader := bufio.NewReader(os.Stdin)
		accepted, err := utils.ConfirmPrompt(fmt.Sprintf("'%s' already exists. Overwrite?", bundleConfig.OutputPath), reader)
		if err != nil {
			fmt.Println(lipgloss.Red.Render(fmt.Sprintf("%v", err)))
			os.Exit(1)
		}
		if !accepted {
			fmt.Println(lipgloss.Yellow.Render("Bundle cancelled: overwrite declined."))
			return
		}
	}

	spinner := pterm.DefaultSpinner.WithStyle(pterm.NewStyle(pterm.FgLightBlue)).WithSequence("⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏").WithDelay(100).WithRemoveWhenDone(true)

	spinnerScan, _ := spinner.Start("Scanning directory...")

	listing, err := bundler.ScanDirectory(rootDependencies.Cwd, bundleConfig.OutputPath)
	if err != nil {
		spinnerScan.Stop()
		fmt.Print("\r")
		fmt.Println(lipgloss.Red.Render(fmt.Sprintf("%v", err)))
		os.Exit(1)
	}

	selected := rootDependencies.Selector.Select(listing, bundleConfig)

	spinnerScan.Stop()
	fmt.Print("\r")

	rootDependencies.Stats.FilesScanned(len(listing))
	rootDependencies.Stats.FilesExcluded(len(listing) - len(selected))

	spinnerBundle, _ := spinner.Start("Writing bundle...")

	summary, err := rootDependencies.Bundler.Bundle(selected, bundleConfig)

	spinnerBundle.Stop()
	fmt.Print("\r")

	if err != nil {
		fmt.Println(lipgloss.Red.Render(fmt.Sprintf("%v", err)))
		os.Exit(1)
	}

	rootDependencies.Stats.FilesBundled(summary.FilesWritten, summary.LinesWritten, summary.LinesDropped)
	rootDependencies.Stats.BytesWritten(summary.BytesWritten)

	fmt.Println(lipgloss.Green.Render(fmt.Sprintf("✔️ Bundle written to %s (%d files, digest %016x)", summary.OutputPath, summary.FilesWritten, summary.Digest)))
	rootDependencies.Stats.DisplayStats(summary.OutputPath)
}
