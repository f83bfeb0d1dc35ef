package docsync

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingResource reports an input file that could not be read.
	ErrMissingResource = errors.New("missing resource")
	// ErrMissingAnchor reports an anchor line that is absent, duplicated,
	// or out of order.
	ErrMissingAnchor = errors.New("missing anchor")
	// ErrWrite reports an output file that could not be written.
	ErrWrite = errors.New("write failed")
)

// ResourceError describes a failed read of one of the three inputs.
type ResourceError struct {
	Role string
	Path string
	Err  error
}

func (e *ResourceError) Error() string {
	return fmt.Sprintf("read %s %s: %v", e.Role, e.Path, e.Err)
}

func (e *ResourceError) Unwrap() []error { return []error{ErrMissingResource, e.Err} }

// AnchorError describes an anchor that did not occur the way a splice
// requires. Count is the number of matching lines found; for an ordering
// problem it is the count of the anchor that came too early.
type AnchorError struct {
	Document string
	Anchor   string
	Count    int
	Reason   string
}

func (e *AnchorError) Error() string {
	return fmt.Sprintf("%s: anchor %q %s (found %d)", e.Document, e.Anchor, e.Reason, e.Count)
}

func (e *AnchorError) Unwrap() error { return ErrMissingAnchor }

// WriteError describes a failed write of one of the two outputs.
type WriteError struct {
	Path string
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("write %s: %v", e.Path, e.Err)
}

func (e *WriteError) Unwrap() []error { return []error{ErrWrite, e.Err} }
