package bundler

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"codebundle/bundler/models"
)

func writeTestFile(t *testing.T, dir string, name string, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

// End-to-end: scan, select and bundle a small tree with languages=[python],
// sort=name, no note, no author
func TestBundle_EndToEnd(t *testing.T) {
	tempDir := t.TempDir()
	sep := lineSeparator()

	aPath := writeTestFile(t, tempDir, "a.py", "print('hi')"+sep)
	writeTestFile(t, tempDir, "b.cs", "class B {}"+sep)
	writeTestFile(t, tempDir, "c.txt", "plain text"+sep)
	writeTestFile(t, tempDir, filepath.Join("bin", "d.py"), "print('built')"+sep)

	outputPath := filepath.Join(tempDir, "bundle_output.txt")

	listing, err := ScanDirectory(tempDir, outputPath)
	require.NoError(t, err)
	assert.Len(t, listing, 4)

	config := &models.BundleConfig{
		Languages:  []string{"python"},
		SortMode:   models.SortByName,
		OutputPath: outputPath,
	}

	selected := NewSelector().Select(listing, config)
	require.Equal(t, []string{aPath}, selected)

	summary, err := NewBundler().Bundle(selected, config)
	require.NoError(t, err)
	assert.Equal(t, 1, summary.FilesWritten)
	assert.Equal(t, outputPath, summary.OutputPath)

	content, err := os.ReadFile(outputPath)
	require.NoError(t, err)
	assert.Equal(t, "// File: a.py"+sep+"print('hi')"+sep+sep, string(content))
}

// Empty-line removal drops blank and whitespace-only lines, preserving order
func TestBundle_RemoveEmptyLines(t *testing.T) {
	tempDir := t.TempDir()
	sep := lineSeparator()

	path := writeTestFile(t, tempDir, "f.go", "a\n\n  \nb\n")
	outputPath := filepath.Join(tempDir, "out.txt")

	config := &models.BundleConfig{
		Languages:        []string{"go"},
		SortMode:         models.SortByName,
		RemoveEmptyLines: true,
		OutputPath:       outputPath,
	}

	summary, err := NewBundler().Bundle([]string{path}, config)
	require.NoError(t, err)
	assert.Equal(t, 2, summary.LinesWritten)
	assert.Equal(t, 2, summary.LinesDropped)

	content, err := os.ReadFile(outputPath)
	require.NoError(t, err)
	assert.Equal(t, "// File: f.go"+sep+"a"+sep+"b"+sep+sep, string(content))
}

// With removal disabled all four lines survive
func TestBundle_KeepEmptyLines(t *testing.T) {
	tempDir := t.TempDir()
	sep := lineSeparator()

	path := writeTestFile(t, tempDir, "f.go", "a\n\n  \nb\n")
	outputPath := filepath.Join(tempDir, "out.txt")

	config := &models.BundleConfig{
		Languages:  []string{"go"},
		SortMode:   models.SortByName,
		OutputPath: outputPath,
	}

	summary, err := NewBundler().Bundle([]string{path}, config)
	require.NoError(t, err)
	assert.Equal(t, 4, summary.LinesWritten)
	assert.Equal(t, 0, summary.LinesDropped)

	content, err := os.ReadFile(outputPath)
	require.NoError(t, err)
	assert.Equal(t, "// File: f.go"+sep+"a"+sep+sep+"  "+sep+"b"+sep+sep, string(content))
}

// The author block repeats before every file header, not once globally
func TestBundle_AuthorBlockRepeatsPerFile(t *testing.T) {
	tempDir := t.TempDir()
	sep := lineSeparator()

	first := writeTestFile(t, tempDir, "a.py", "x = 1\n")
	second := writeTestFile(t, tempDir, "b.py", "y = 2\n")
	outputPath := filepath.Join(tempDir, "out.txt")

	config := &models.BundleConfig{
		Languages:  []string{"python"},
		SortMode:   models.SortByName,
		Author:     "Jane",
		OutputPath: outputPath,
	}

	summary, err := NewBundler().Bundle([]string{first, second}, config)
	require.NoError(t, err)
	assert.Equal(t, 2, summary.FilesWritten)

	content, err := os.ReadFile(outputPath)
	require.NoError(t, err)

	assert.Equal(t, 2, strings.Count(string(content), "// Author: Jane"))
	expected := "// Author: Jane" + sep + sep + "// File: a.py" + sep + "x = 1" + sep + sep +
		"// Author: Jane" + sep + sep + "// File: b.py" + sep + "y = 2" + sep + sep
	assert.Equal(t, expected, string(content))
}

// The path note appends the full original path to the header
func TestBundle_PathNoteHeader(t *testing.T) {
	tempDir := t.TempDir()
	sep := lineSeparator()

	path := writeTestFile(t, tempDir, "a.py", "x = 1\n")
	outputPath := filepath.Join(tempDir, "out.txt")

	config := &models.BundleConfig{
		Languages:       []string{"python"},
		SortMode:        models.SortByName,
		IncludePathNote: true,
		OutputPath:      outputPath,
	}

	_, err := NewBundler().Bundle([]string{path}, config)
	require.NoError(t, err)

	content, err := os.ReadFile(outputPath)
	require.NoError(t, err)

	fullPath, err := filepath.Abs(path)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(content), "// File: a.py - Path: "+fullPath+sep))
}

// An empty selection still produces an output file containing nothing
func TestBundle_EmptySelection(t *testing.T) {
	tempDir := t.TempDir()
	outputPath := filepath.Join(tempDir, "out.txt")

	config := &models.BundleConfig{
		Languages:  []string{"go"},
		SortMode:   models.SortByName,
		OutputPath: outputPath,
	}

	summary, err := NewBundler().Bundle(nil, config)
	require.NoError(t, err)
	assert.Equal(t, 0, summary.FilesWritten)

	content, err := os.ReadFile(outputPath)
	require.NoError(t, err)
	assert.Empty(t, content)
}

// A selected path that vanished before bundling is classified as not found
func TestBundle_MissingFileClassified(t *testing.T) {
	tempDir := t.TempDir()
	outputPath := filepath.Join(tempDir, "out.txt")

	config := &models.BundleConfig{
		Languages:  []string{"python"},
		SortMode:   models.SortByName,
		OutputPath: outputPath,
	}

	missing := filepath.Join(tempDir, "gone.py")
	_, err := NewBundler().Bundle([]string{missing}, config)
	require.Error(t, err)

	bundleErr, ok := err.(*BundleError)
	require.True(t, ok)
	assert.Equal(t, DirectoryNotFound, bundleErr.Kind)
	assert.Equal(t, missing, bundleErr.Path)
}

// Identical runs produce identical digests; different content differs
func TestBundle_Digest(t *testing.T) {
	tempDir := t.TempDir()

	path := writeTestFile(t, tempDir, "a.py", "x = 1\n")
	outputPath := filepath.Join(tempDir, "out.txt")

	config := &models.BundleConfig{
		Languages:  []string{"python"},
		SortMode:   models.SortByName,
		OutputPath: outputPath,
	}

	first, err := NewBundler().Bundle([]string{path}, config)
	require.NoError(t, err)
	second, err := NewBundler().Bundle([]string{path}, config)
	require.NoError(t, err)
	assert.Equal(t, first.Digest, second.Digest)
	assert.Equal(t, first.BytesWritten, second.BytesWritten)

	writeTestFile(t, tempDir, "a.py", "x = 2\n")
	third, err := NewBundler().Bundle([]string{path}, config)
	require.NoError(t, err)
	assert.NotEqual(t, first.Digest, third.Digest)
}

// The scanner never lists the bundle output file itself
func TestScanDirectory_SkipsOutputFile(t *testing.T) {
	tempDir := t.TempDir()

	writeTestFile(t, tempDir, "a.py", "x = 1\n")
	outputPath := writeTestFile(t, tempDir, "bundle_output.txt", "old bundle\n")

	listing, err := ScanDirectory(tempDir, outputPath)
	require.NoError(t, err)

	assert.Len(t, listing, 1)
	assert.NotContains(t, listing, outputPath)
}

func TestSplitLines(t *testing.T) {
	assert.Nil(t, splitLines(""))
	assert.Equal(t, []string{"a", "b"}, splitLines("a\nb\n"))
	assert.Equal(t, []string{"a", "b"}, splitLines("a\r\nb\r\n"))
	assert.Equal(t, []string{"a", "", "b"}, splitLines("a\n\nb"))
}
