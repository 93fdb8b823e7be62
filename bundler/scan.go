package bundler

import (
	"io/fs"
	"path/filepath"
)

// ScanDirectory collects the candidate file listing for a bundling run:
// every regular file under rootDir, never leaving rootDir. The bundle
// output file itself is skipped so a re-run does not bundle its own
// previous output. Filtering and ordering are the Selector's job; the
// scanner only produces the listing.
func ScanDirectory(rootDir string, outputPath string) ([]string, error) {
	cleanOutput := filepath.Clean(outputPath)
	if !filepath.IsAbs(cleanOutput) {
		cleanOutput = filepath.Join(rootDir, cleanOutput)
	}

	var listing []string
	err := filepath.WalkDir(rootDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if !d.Type().IsRegular() {
			return nil
		}
		if filepath.Clean(path) == cleanOutput {
			return nil
		}
		listing = append(listing, path)
		return nil
	})
	if err != nil {
		return nil, classifyIOError(rootDir, err)
	}

	return listing, nil
}
