package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/apex/log"
	"github.com/spf13/cobra"

	"codebundle/bundler"
	bundler_contracts "codebundle/bundler/contracts"
	"codebundle/config"
	"codebundle/constants/lipgloss"
	"codebundle/stats"
	stats_contracts "codebundle/stats/contracts"
)

const version = "1.0.0"

// RootDependencies holds the dependencies shared by all subcommands.
type RootDependencies struct {
	Config   *config.Config
	Cwd      string
	Selector bundler_contracts.ISelector
	Bundler  bundler_contracts.IBundler
	Stats    stats_contracts.IStatsTracker
}

var rootCmd = &cobra.Command{
	Use:   "codebundle",
	Short: "Bundle the source files of a directory into a single annotated file.",
	Long: `codebundle scans the current working directory, selects the files matching
a requested set of programming languages and concatenates them into one
output file in a deterministic order, with a header line per file. Build
directories like bin, debug, node_modules and properties are always skipped.`,
	Run: func(cmd *cobra.Command, args []string) {
		if showVersion, _ := cmd.Flags().GetBool("version"); showVersion {
			fmt.Println("codebundle version " + version)
			return
		}
		_ = cmd.Help()
	},
}

func init() {
	initLogger()
	config.InitFlags(rootCmd)
}

// handleRootCommand builds the dependencies every subcommand starts from.
func handleRootCommand(cmd *cobra.Command) *RootDependencies {
	cwd, err := os.Getwd()
	if err != nil {
		fmt.Println(lipgloss.Red.Render(fmt.Sprintf("Error getting current directory: %v", err)))
		return nil
	}

	cfg := config.LoadConfigs(rootCmd, cwd)

	return &RootDependencies{
		Config:   cfg,
		Cwd:      cwd,
		Selector: bundler.NewSelector(),
		Bundler:  bundler.NewBundler(),
		Stats:    stats.NewStatsTracker(),
	}
}

// initLogger sets up Apex with a custom handler and a log level from the
// CODEBUNDLE_LOG env variable. Selection diagnostics are info entries.
func initLogger() {
	level := strings.ToUpper(os.Getenv("CODEBUNDLE_LOG"))
	if level == "" {
		level = "INFO"
	}
	log.SetHandler(&diagnosticHandler{})
	log.SetLevelFromString(level)
}

// diagnosticHandler formats diagnostic entries and writes them to stderr so
// they never mix into the bundle status output.
type diagnosticHandler struct{}

// HandleLog implements the log.Handler interface
func (h *diagnosticHandler) HandleLog(e *log.Entry) error {
	var fields strings.Builder
	for _, name := range e.Fields.Names() {
		fields.WriteString(fmt.Sprintf(" %s=%v", name, e.Fields.Get(name)))
	}
	fmt.Fprintf(os.Stderr, "%.1s %s%s\n", strings.ToUpper(e.Level.String()), e.Message, fields.String())
	return nil
}

// Execute runs the root command. Any reported failure exits with code 1.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(lipgloss.Red.Render(fmt.Sprintf("%v", err)))
		os.Exit(1)
	}
}
