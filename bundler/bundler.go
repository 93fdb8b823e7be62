package bundler

import (
	"bufio"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/zeebo/xxh3"

	"codebundle/bundler/contracts"
	"codebundle/bundler/models"
)

// DefaultOutputFileName is used when the config carries no output path.
const DefaultOutputFileName = "bundle_output.txt"

// bundlerImpl writes selected files into a single concatenated output file.
type bundlerImpl struct{}

// NewBundler creates the bundler.
func NewBundler() contracts.IBundler {
	return &bundlerImpl{}
}

// Bundle reads each path in order, transforms its lines per the config and
// writes the annotated result to the output file. The output is opened for
// truncating write without an existence check: the caller must have secured
// overwrite confirmation beforehand. A failure aborts the remaining work;
// no rollback of partially written output is performed.
func (b *bundlerImpl) Bundle(orderedPaths []string, config *models.BundleConfig) (*models.BundleSummary, error) {
	outputPath := config.OutputPath
	if outputPath == "" {
		outputPath = DefaultOutputFileName
	}

	out, err := os.Create(outputPath)
	if err != nil {
		return nil, classifyIOError(outputPath, err)
	}
	defer out.Close()

	hasher := xxh3.New()
	counter := &countingWriter{w: io.MultiWriter(out, hasher)}
	writer := bufio.NewWriter(counter)
	sep := lineSeparator()

	summary := &models.BundleSummary{OutputPath: outputPath}

	for _, path := range orderedPaths {
		content, err := os.ReadFile(path)
		if err != nil {
			_ = writer.Flush()
			return nil, classifyIOError(path, err)
		}

		lines := splitLines(string(content))
		if config.RemoveEmptyLines {
			original := len(lines)
			lines = dropBlankLines(lines)
			summary.LinesDropped += original - len(lines)
		}

		// The author block repeats before every file header, not once
		// globally.
		if strings.TrimSpace(config.Author) != "" {
			writeLine(writer, "// Author: "+config.Author, sep)
			writeLine(writer, "", sep)
		}

		writeLine(writer, fileHeader(path, config.IncludePathNote), sep)

		for _, line := range lines {
			writeLine(writer, line, sep)
		}
		writeLine(writer, "", sep)

		summary.FilesWritten++
		summary.LinesWritten += len(lines)
	}

	if err := writer.Flush(); err != nil {
		return nil, classifyIOError(outputPath, err)
	}

	summary.BytesWritten = counter.n
	summary.Digest = hasher.Sum64()
	return summary, nil
}

// fileHeader builds the per-file header line, with the full original path
// appended when the path note is requested.
func fileHeader(path string, includePathNote bool) string {
	header := "// File: " + filepath.Base(path)
	if includePathNote {
		fullPath, err := filepath.Abs(path)
		if err != nil {
			fullPath = path
		}
		header += " - Path: " + fullPath
	}
	return header
}

// splitLines breaks file content into lines, tolerating both Unix and
// Windows line endings. A trailing newline does not produce a final empty
// line; the lines are re-joined with the platform separator on write.
func splitLines(content string) []string {
	if content == "" {
		return nil
	}
	normalized := strings.ReplaceAll(content, "\r\n", "\n")
	lines := strings.Split(normalized, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

// dropBlankLines removes lines that are empty or whitespace-only,
// preserving the order of the rest.
func dropBlankLines(lines []string) []string {
	kept := make([]string, 0, len(lines))
	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		kept = append(kept, line)
	}
	return kept
}

func writeLine(w *bufio.Writer, line string, sep string) {
	_, _ = w.WriteString(line)
	_, _ = w.WriteString(sep)
}

// lineSeparator returns the platform's line separator.
func lineSeparator() string {
	if runtime.GOOS == "windows" {
		return "\r\n"
	}
	return "\n"
}

// countingWriter tracks the total bytes handed to the underlying writer.
type countingWriter struct {
	w io.Writer
	n int64
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += int64(n)
	return n, err
}
