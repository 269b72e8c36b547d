package models

import (
	"fmt"
	"strings"
)

// ReadErrorKind identifies which step of reading a matched file failed.
type ReadErrorKind int

const (
	// ReadErrorOpen means the file could not be opened.
	ReadErrorOpen ReadErrorKind = iota
	// ReadErrorRead means reading the opened file failed.
	ReadErrorRead
	// ReadErrorDecode means the content is not valid UTF-8.
	ReadErrorDecode
	// ReadErrorLock means the shared read lock could not be taken.
	ReadErrorLock
)

// String returns the string representation of ReadErrorKind.
func (k ReadErrorKind) String() string {
	switch k {
	case ReadErrorOpen:
		return "open"
	case ReadErrorRead:
		return "read"
	case ReadErrorDecode:
		return "decode"
	case ReadErrorLock:
		return "lock"
	default:
		return "unknown"
	}
}

// ReadError is the typed failure of reading one matched file.
type ReadError struct {
	RelPath string
	Kind    ReadErrorKind
	Err     error
}

// Error implements the error interface for ReadError.
func (e *ReadError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s %s failed", e.Kind, e.RelPath)
	}
	return fmt.Sprintf("%s %s: %v", e.Kind, e.RelPath, e.Err)
}

// Unwrap returns the underlying error for error wrapping support.
func (e *ReadError) Unwrap() error {
	return e.Err
}

// WalkError means a directory in the tree could not be listed.
// It is always fatal to the run.
type WalkError struct {
	Path string
	Err  error
}

// Error implements the error interface for WalkError.
func (e *WalkError) Error() string {
	return fmt.Sprintf("walk %s: %v", e.Path, e.Err)
}

// Unwrap returns the underlying error for error wrapping support.
func (e *WalkError) Unwrap() error {
	return e.Err
}

// DumpError aggregates the per-file failures of a run that was told to
// keep going past unreadable files.
type DumpError struct {
	Failures []*ReadError
	Matched  int
}

// Error implements the error interface for DumpError.
func (e *DumpError) Error() string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%d of %d matched files could not be read", len(e.Failures), e.Matched))
	for _, f := range e.Failures {
		sb.WriteString("\n  - ")
		sb.WriteString(f.Error())
	}
	return sb.String()
}

// Unwrap exposes each failure to errors.Is and errors.As.
func (e *DumpError) Unwrap() []error {
	errs := make([]error, len(e.Failures))
	for i, f := range e.Failures {
		errs[i] = f
	}
	return errs
}
