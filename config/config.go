package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"codebundle/bundler"
	"codebundle/bundler/models"
	"codebundle/constants/lipgloss"
)

// Config represents the structure of the configuration file
type Config struct {
	Languages        []string `mapstructure:"languages"`
	Output           string   `mapstructure:"output"`
	Sort             string   `mapstructure:"sort"`
	Note             bool     `mapstructure:"note"`
	RemoveEmptyLines bool     `mapstructure:"remove_empty_lines"`
	Author           string   `mapstructure:"author"`
	Theme            string   `mapstructure:"theme"`
}

// DefaultConfig values
var DefaultConfig = Config{
	Output: bundler.DefaultOutputFileName,
	Sort:   string(models.SortByName),
	Theme:  "dracula",
}

// cfgFile holds the path to the configuration file (set via CLI)
var cfgFile string

// LoadConfigs initializes the configuration from file, flags, and environment variables, and returns the final config.
func LoadConfigs(rootCmd *cobra.Command, cwd string) *Config {
	var config *Config

	// Load a .env file, if present, before env variables are read
	_ = godotenv.Load()

	// Set default values using Viper
	setDefaults()

	// Automatically read environment variables
	viper.AutomaticEnv()

	// Explicitly bind environment variables to config keys
	bindEnv()

	// Check if the user provided a config file
	if cfgFile != "" {
		// Use the config file from the flag
		viper.SetConfigFile(cfgFile)
		if err := viper.ReadInConfig(); err != nil {
			fmt.Println(lipgloss.Red.Render(fmt.Sprintf("Error reading config file: %v", err)))
			os.Exit(1)
		}
	} else {
		// Look for configuration files in the current directory
		viper.SetConfigName("codebundle-config") // Name of config file (without extension)
		viper.AddConfigPath(cwd)                 // Look in the current working directory

		// Support both YAML and JSON formats
		viper.SetConfigType("yaml") // Set default type
		if err := viper.ReadInConfig(); err != nil {
			// If YAML fails, try JSON; when both fail we continue with defaults
			viper.SetConfigType("json")
			_ = viper.ReadInConfig()
		}
	}

	// Bind CLI flags to override config values
	bindFlags(rootCmd)

	// Unmarshal the configuration into the Config struct
	if err := viper.Unmarshal(&config); err != nil {
		fmt.Println(lipgloss.Red.Render(fmt.Sprintf("Unable to decode into struct: %v", err)))
		os.Exit(1)
	}

	return config
}

// setDefaults sets all default configuration values
func setDefaults() {
	viper.SetDefault("output", DefaultConfig.Output)
	viper.SetDefault("sort", DefaultConfig.Sort)
	viper.SetDefault("note", DefaultConfig.Note)
	viper.SetDefault("remove_empty_lines", DefaultConfig.RemoveEmptyLines)
	viper.SetDefault("author", DefaultConfig.Author)
	viper.SetDefault("theme", DefaultConfig.Theme)
}

// bindEnv explicitly binds environment variables to configuration keys
func bindEnv() {
	_ = viper.BindEnv("output", "OUTPUT")
	_ = viper.BindEnv("sort", "SORT")
	_ = viper.BindEnv("note", "NOTE")
	_ = viper.BindEnv("remove_empty_lines", "REMOVE_EMPTY_LINES")
	_ = viper.BindEnv("author", "AUTHOR")
	_ = viper.BindEnv("theme", "THEME")
}

// bindFlags binds the CLI flags to configuration values.
func bindFlags(rootCmd *cobra.Command) {
	_ = viper.BindPFlag("languages", rootCmd.PersistentFlags().Lookup("language"))
	_ = viper.BindPFlag("output", rootCmd.PersistentFlags().Lookup("output"))
	_ = viper.BindPFlag("sort", rootCmd.PersistentFlags().Lookup("sort"))
	_ = viper.BindPFlag("note", rootCmd.PersistentFlags().Lookup("note"))
	_ = viper.BindPFlag("remove_empty_lines", rootCmd.PersistentFlags().Lookup("remove-empty-lines"))
	_ = viper.BindPFlag("author", rootCmd.PersistentFlags().Lookup("author"))
	_ = viper.BindPFlag("theme", rootCmd.PersistentFlags().Lookup("theme"))
}

// InitFlags initializes the flags for the root command.
func InitFlags(rootCmd *cobra.Command) {
	// Use PersistentFlags so that these flags are available in all subcommands
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "Specifies the path to a configuration file (JSON or YAML) that contains all the settings for the application.")

	rootCmd.PersistentFlags().StringSliceP("language", "l", nil, fmt.Sprintf("Languages to include in the bundle, repeatable or comma-separated (e.g., 'go,python'). One entry may be 'all'. Known languages: %s", strings.Join(bundler.KnownLanguages(), ", ")))
	rootCmd.PersistentFlags().StringP("output", "o", DefaultConfig.Output, "Path of the bundle output file.")
	rootCmd.PersistentFlags().StringP("sort", "s", DefaultConfig.Sort, "Ordering of files in the bundle: 'name' or 'type'.")
	rootCmd.PersistentFlags().BoolP("note", "n", false, "Include the full original path of each file in its header.")
	rootCmd.PersistentFlags().BoolP("remove-empty-lines", "r", false, "Drop empty and whitespace-only lines from bundled files.")
	rootCmd.PersistentFlags().StringP("author", "a", "", "Author name written before each bundled file.")
	rootCmd.PersistentFlags().String("theme", DefaultConfig.Theme, "Syntax highlighting theme for previews (e.g., 'dracula', 'light', 'dark').")

	// Version flag
	rootCmd.Flags().BoolP("version", "v", false, "Specifies the version of the application.")
}

// InvalidConfigError reports a configuration value rejected before any I/O.
type InvalidConfigError struct {
	Field   string
	Message string
}

func (e *InvalidConfigError) Error() string {
	return fmt.Sprintf("invalid config: %s: %s", e.Field, e.Message)
}

// Validate checks the configuration so the bundling engine only ever sees a
// valid BundleConfig. Validation failures abort before any I/O.
func Validate(config *Config) error {
	if len(config.Languages) == 0 {
		return &InvalidConfigError{Field: "language", Message: "at least one language is required"}
	}
	for _, token := range config.Languages {
		if !bundler.IsKnownLanguage(strings.TrimSpace(token)) {
			return &InvalidConfigError{
				Field:   "language",
				Message: fmt.Sprintf("unknown language '%s' (known: all, %s)", token, strings.Join(bundler.KnownLanguages(), ", ")),
			}
		}
	}

	sortMode := strings.ToLower(strings.TrimSpace(config.Sort))
	if sortMode != string(models.SortByName) && sortMode != string(models.SortByTypeThenName) {
		return &InvalidConfigError{Field: "sort", Message: fmt.Sprintf("unknown sort mode '%s' (use 'name' or 'type')", config.Sort)}
	}

	output := strings.TrimSpace(config.Output)
	if output == "" {
		return &InvalidConfigError{Field: "output", Message: "output path must not be blank"}
	}
	if strings.HasSuffix(output, "/") || strings.HasSuffix(output, "\\") {
		return &InvalidConfigError{Field: "output", Message: "output path must name a file, not a directory"}
	}

	return nil
}

// ToBundleConfig converts the validated configuration into the immutable
// value object consumed by the bundling engine.
func (config *Config) ToBundleConfig() *models.BundleConfig {
	languages := make([]string, 0, len(config.Languages))
	for _, token := range config.Languages {
		languages = append(languages, strings.ToLower(strings.TrimSpace(token)))
	}

	return &models.BundleConfig{
		Languages:        languages,
		SortMode:         models.SortMode(strings.ToLower(strings.TrimSpace(config.Sort))),
		RemoveEmptyLines: config.RemoveEmptyLines,
		IncludePathNote:  config.Note,
		Author:           config.Author,
		OutputPath:       strings.TrimSpace(config.Output),
	}
}
