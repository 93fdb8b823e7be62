package models

// SortMode controls the ordering of selected files in the bundle.
type SortMode string

const (
	// SortByName orders files ascending by base name.
	SortByName SortMode = "name"
	// SortByTypeThenName orders files ascending by extension, then by base name.
	SortByTypeThenName SortMode = "type"
)

// BundleConfig holds one fully-validated bundling run. It is constructed
// once per invocation and never mutated afterwards.
type BundleConfig struct {
	Languages        []string
	SortMode         SortMode
	RemoveEmptyLines bool
	IncludePathNote  bool
	Author           string
	OutputPath       string
}

// FileEntry is the derived view of a candidate file used during selection.
// Entries are recomputed from the path on every pass, never stored.
type FileEntry struct {
	Path string
	Name string
	Ext  string // lowercased, including the leading dot
	Dir  string // lowercased containing directory
}

// BundleSummary describes a completed bundling run.
type BundleSummary struct {
	OutputPath   string
	FilesWritten int
	LinesWritten int
	LinesDropped int
	BytesWritten int64
	Digest       uint64
}
