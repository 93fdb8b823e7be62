package bundler

import (
	"fmt"
	"os"
)

// BundleErrorKind classifies the failures that can abort a bundling pass.
type BundleErrorKind string

const (
	// DirectoryNotFound means the working directory or a selected path
	// vanished between selection and bundling.
	DirectoryNotFound BundleErrorKind = "directory_not_found"
	// AccessDenied means a read or write permission failure on a specific path.
	AccessDenied BundleErrorKind = "access_denied"
	// Unexpected covers any other I/O or runtime fault.
	Unexpected BundleErrorKind = "unexpected"
)

// BundleError wraps an I/O failure with its classification and the path it
// occurred on. A BundleError aborts the remaining work of the invocation;
// partially written output is left in place.
type BundleError struct {
	Kind BundleErrorKind
	Path string
	Err  error
}

func (e *BundleError) Error() string {
	switch e.Kind {
	case DirectoryNotFound:
		return fmt.Sprintf("directory or file not found: %s", e.Path)
	case AccessDenied:
		return fmt.Sprintf("access denied: %s", e.Path)
	default:
		return fmt.Sprintf("unexpected error on %s: %v", e.Path, e.Err)
	}
}

func (e *BundleError) Unwrap() error {
	return e.Err
}

// classifyIOError maps an underlying I/O error onto a BundleError kind.
func classifyIOError(path string, err error) *BundleError {
	switch {
	case os.IsNotExist(err):
		return &BundleError{Kind: DirectoryNotFound, Path: path, Err: err}
	case os.IsPermission(err):
		return &BundleError{Kind: AccessDenied, Path: path, Err: err}
	default:
		return &BundleError{Kind: Unexpected, Path: path, Err: err}
	}
}
