// Package association implements the file-backed mapping from file
// extensions to icon images: loading and saving the JSON store, validating
// new records, keeping icon copies in the managed icon directory, and
// resolving the icon for an extension.
package association

import (
	"errors"
	"fmt"
)

// Sentinel errors for association operations. The typed errors below
// unwrap to these so callers can use errors.Is.
var (
	// ErrValidation indicates a record was rejected before any mutation.
	ErrValidation = errors.New("association: validation failed")

	// ErrStoreCorrupt indicates the store file exists but is not a valid association list.
	ErrStoreCorrupt = errors.New("association: store is corrupt")

	// ErrIO indicates a filesystem operation on the store or an icon failed.
	ErrIO = errors.New("association: i/o failure")

	// ErrIndexOutOfRange indicates a row index outside the current list.
	ErrIndexOutOfRange = errors.New("association: row index out of range")
)

// Validation rule identifiers.
const (
	RuleBadExtension = "bad-extension"
	RuleBadIconType  = "bad-icon-type"
)

// ValidationError describes which rule a proposed association violated.
type ValidationError struct {
	Rule    string
	Field   string
	Value   string
	Message string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s (got %q)", e.Rule, e.Message, e.Value)
}

// Unwrap returns ErrValidation.
func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

// StoreCorruptError reports a store file that could not be decoded.
// Callers usually offer Store.Reset in response.
type StoreCorruptError struct {
	Path string
	Err  error
}

// Error implements the error interface.
func (e *StoreCorruptError) Error() string {
	return fmt.Sprintf("association: store %s is corrupt: %v", e.Path, e.Err)
}

// Unwrap returns both ErrStoreCorrupt and the decode error.
func (e *StoreCorruptError) Unwrap() []error {
	return []error{ErrStoreCorrupt, e.Err}
}

// IOError wraps a filesystem failure with the operation and path involved.
type IOError struct {
	Op   string
	Path string
	Err  error
}

// Error implements the error interface.
func (e *IOError) Error() string {
	return fmt.Sprintf("association: %s %s: %v", e.Op, e.Path, e.Err)
}

// Unwrap returns both ErrIO and the underlying error.
func (e *IOError) Unwrap() []error {
	return []error{ErrIO, e.Err}
}

// IndexError reports a remove request for a row that does not exist.
type IndexError struct {
	Index int
	Len   int
}

// Error implements the error interface.
func (e *IndexError) Error() string {
	return fmt.Sprintf("association: row %d out of range [0,%d)", e.Index, e.Len)
}

// Unwrap returns ErrIndexOutOfRange.
func (e *IndexError) Unwrap() error {
	return ErrIndexOutOfRange
}
