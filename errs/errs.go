// Package errs holds the sentinel error kinds returned by the numeric
// decoder core, mirroring the taxonomy in the spec's error handling
// section. Call sites wrap these with fmt.Errorf("...: %w", ...) to add
// context; callers should compare with errors.Is against the sentinels
// below, never against the wrapped string.
package errs

import "errors"

var (
	// ErrNullArgument indicates a required pointer/handle was absent.
	ErrNullArgument = errors.New("mdecode: null argument")

	// ErrRankOverflow indicates an N-D slab rank exceeded numeric.MaxRank.
	ErrRankOverflow = errors.New("mdecode: rank exceeds maximum supported rank")

	// ErrTruncated indicates the source ended before the requested
	// element or skip could be satisfied.
	ErrTruncated = errors.New("mdecode: source truncated")

	// ErrCorrupt indicates the inflate stream reported a format error.
	ErrCorrupt = errors.New("mdecode: corrupt compressed stream")

	// ErrSeekFailed indicates the underlying byte source refused a
	// seek/tell operation on the uncompressed path.
	ErrSeekFailed = errors.New("mdecode: seek failed")

	// ErrInvalidSlabDescriptor indicates a start/stride/edge/dims
	// combination that violates the slab invariants in the data model.
	ErrInvalidSlabDescriptor = errors.New("mdecode: invalid slab descriptor")
)
