// Package formaterr defines the error type shared by the icon codec and
// validation packages. Every malformed or non-conforming asset surfaces as
// an *Error carrying the offending path and a stable cause tag.
package formaterr

import (
	"errors"
	"fmt"
)

// Cause identifies which structural check or validation rule failed.
type Cause string

const (
	BadSignature           Cause = "bad-signature"
	UnsupportedBitDepth    Cause = "unsupported-bit-depth"
	UnsupportedColorKind   Cause = "unsupported-color-kind"
	UnsupportedEncoding    Cause = "unsupported-encoding-option"
	TruncatedChunkStream   Cause = "truncated-chunk-stream"
	SizeMismatch           Cause = "decompressed-size-mismatch"
	UnsupportedFilterType  Cause = "unsupported-filter-type"
	NonSquareEntry         Cause = "non-square-entry"
	OversizedEntry         Cause = "oversized-entry"
	InvalidHeader          Cause = "invalid-header"
	DirectoryTruncated     Cause = "directory-truncated"
	MissingAsset           Cause = "missing-required-asset"
	SizeSetMismatch        Cause = "size-set-mismatch"
	FullyTransparent       Cause = "fully-transparent-image"
	CoverageBelowThreshold Cause = "coverage-below-threshold"
)

// Error describes one malformed or non-conforming icon asset. Detail holds
// the human-readable message with expected-vs-actual context; Path may be
// empty for in-memory data.
type Error struct {
	Path   string
	Cause  Cause
	Detail string
}

func (e *Error) Error() string {
	if e.Path == "" {
		return e.Detail
	}
	return e.Path + ": " + e.Detail
}

// New builds an *Error with a formatted detail message.
func New(path string, cause Cause, format string, args ...any) *Error {
	return &Error{Path: path, Cause: cause, Detail: fmt.Sprintf(format, args...)}
}

// CauseOf returns the cause tag when err (or anything it wraps) is an *Error.
func CauseOf(err error) (Cause, bool) {
	var fe *Error
	if errors.As(err, &fe) {
		return fe.Cause, true
	}
	return "", false
}
