package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"codebundle/bundler/models"
)

func validConfig() *Config {
	return &Config{
		Languages: []string{"go", "python"},
		Output:    "bundle_output.txt",
		Sort:      "name",
	}
}

func TestValidate_AcceptsValidConfig(t *testing.T) {
	assert.NoError(t, Validate(validConfig()))
}

func TestValidate_RequiresLanguages(t *testing.T) {
	config := validConfig()
	config.Languages = nil

	err := Validate(config)
	require.Error(t, err)

	invalidErr, ok := err.(*InvalidConfigError)
	require.True(t, ok)
	assert.Equal(t, "language", invalidErr.Field)
}

func TestValidate_RejectsUnknownLanguage(t *testing.T) {
	config := validConfig()
	config.Languages = []string{"go", "rust"}

	err := Validate(config)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "rust")
}

func TestValidate_AcceptsWildcard(t *testing.T) {
	config := validConfig()
	config.Languages = []string{"all"}

	assert.NoError(t, Validate(config))
}

func TestValidate_RejectsUnknownSortMode(t *testing.T) {
	config := validConfig()
	config.Sort = "size"

	err := Validate(config)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "sort")
}

func TestValidate_RejectsBadOutputShape(t *testing.T) {
	config := validConfig()
	config.Output = "   "
	assert.Error(t, Validate(config))

	config.Output = "some/dir/"
	assert.Error(t, Validate(config))
}

func TestToBundleConfig_NormalizesTokens(t *testing.T) {
	config := &Config{
		Languages:        []string{" Go ", "PYTHON"},
		Output:           " out.txt ",
		Sort:             " Type ",
		Note:             true,
		RemoveEmptyLines: true,
		Author:           "Jane",
	}

	bundleConfig := config.ToBundleConfig()

	assert.Equal(t, []string{"go", "python"}, bundleConfig.Languages)
	assert.Equal(t, models.SortByTypeThenName, bundleConfig.SortMode)
	assert.Equal(t, "out.txt", bundleConfig.OutputPath)
	assert.True(t, bundleConfig.IncludePathNote)
	assert.True(t, bundleConfig.RemoveEmptyLines)
	assert.Equal(t, "Jane", bundleConfig.Author)
}
