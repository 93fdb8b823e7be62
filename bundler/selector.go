package bundler

import (
	"path/filepath"
	"sort"
	"strings"

	"github.com/apex/log"

	"codebundle/bundler/contracts"
	"codebundle/bundler/models"
)

// LanguageAll is the wildcard language token: every file is included
// regardless of extension, recognized or not.
const LanguageAll = "all"

// extensionLanguages maps a file extension (leading dot, lowercase) onto
// its language identifier. Extensions not present here are unrecognized and
// excluded unless LanguageAll is requested.
var extensionLanguages = map[string]string{
	".cs":   "csharp",
	".java": "java",
	".py":   "python",
	".js":   "javascript",
	".ts":   "typescript",
	".php":  "php",
	".cpp":  "cpp",
	".go":   "go",
	".rb":   "ruby",
	".html": "html",
	".css":  "css",
}

// excludedDirParts are substrings matched case-insensitively against a
// candidate file's containing directory. Any match excludes the file
// regardless of its language.
var excludedDirParts = []string{
	"bin",
	"debug",
	"node_modules",
	"properties",
}

// selector filters and orders candidate files per a BundleConfig.
type selector struct{}

// NewSelector creates the file selector.
func NewSelector() contracts.ISelector {
	return &selector{}
}

// Select filters the directory listing by exclusion rules and requested
// languages, then applies the configured sort order. The result is a
// total-ordered permutation of the matching subset, reproducible for
// identical inputs. An empty result is valid, not an error.
func (s *selector) Select(listing []string, config *models.BundleConfig) []string {
	requested := make(map[string]bool, len(config.Languages))
	for _, language := range config.Languages {
		requested[strings.ToLower(language)] = true
	}

	var entries []models.FileEntry
	for _, path := range listing {
		entry := newFileEntry(path)

		if part, excluded := excludedDirPart(entry.Dir); excluded {
			log.WithFields(log.Fields{
				"file":   entry.Path,
				"reason": "directory matches '" + part + "'",
			}).Info("excluded")
			continue
		}

		if !requested[LanguageAll] {
			language, known := extensionLanguages[entry.Ext]
			if !known {
				log.WithFields(log.Fields{
					"file":   entry.Path,
					"reason": "unrecognized extension",
				}).Info("excluded")
				continue
			}
			if !requested[language] {
				log.WithFields(log.Fields{
					"file":   entry.Path,
					"reason": "language '" + language + "' not requested",
				}).Info("excluded")
				continue
			}
		}

		entries = append(entries, entry)
	}

	sortEntries(entries, config.SortMode)

	ordered := make([]string, 0, len(entries))
	for _, entry := range entries {
		ordered = append(ordered, entry.Path)
	}
	return ordered
}

// newFileEntry derives the selection view of a candidate path.
func newFileEntry(path string) models.FileEntry {
	return models.FileEntry{
		Path: path,
		Name: filepath.Base(path),
		Ext:  strings.ToLower(filepath.Ext(path)),
		Dir:  strings.ToLower(filepath.Dir(path)),
	}
}

// excludedDirPart reports whether the lowercased containing directory
// matches any exclusion substring, and which one.
func excludedDirPart(dir string) (string, bool) {
	for _, part := range excludedDirParts {
		if strings.Contains(dir, part) {
			return part, true
		}
	}
	return "", false
}

// sortEntries applies the sort mode as a total order, ties broken by base
// name and then full path so the result is stable across platforms. An
// unrecognized mode falls back to name ordering.
func sortEntries(entries []models.FileEntry, mode models.SortMode) {
	switch mode {
	case models.SortByTypeThenName:
		sort.SliceStable(entries, func(i, j int) bool {
			if entries[i].Ext != entries[j].Ext {
				return entries[i].Ext < entries[j].Ext
			}
			if entries[i].Name != entries[j].Name {
				return entries[i].Name < entries[j].Name
			}
			return entries[i].Path < entries[j].Path
		})
	default:
		sort.SliceStable(entries, func(i, j int) bool {
			if entries[i].Name != entries[j].Name {
				return entries[i].Name < entries[j].Name
			}
			return entries[i].Path < entries[j].Path
		})
	}
}

// LanguageForExtension resolves a file extension (with leading dot, any
// case) to its language identifier.
func LanguageForExtension(ext string) (string, bool) {
	language, ok := extensionLanguages[strings.ToLower(ext)]
	return language, ok
}

// IsKnownLanguage reports whether the token belongs to the closed language
// vocabulary or is the wildcard.
func IsKnownLanguage(token string) bool {
	if strings.ToLower(token) == LanguageAll {
		return true
	}
	for _, language := range extensionLanguages {
		if language == strings.ToLower(token) {
			return true
		}
	}
	return false
}

// KnownLanguages returns the closed language vocabulary, sorted.
func KnownLanguages() []string {
	languages := make([]string, 0, len(extensionLanguages))
	for _, language := range extensionLanguages {
		languages = append(languages, language)
	}
	sort.Strings(languages)
	return languages
}
