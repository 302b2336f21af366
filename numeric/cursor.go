// Package numeric implements the typed element reader and the linear
// and N-D strided slab readers that materialise typed numeric arrays
// out of a MAT v5 byte stream (§4.3, §4.4, §4.5).
package numeric

import (
	"errors"
	"io"

	"github.com/go-mat/mdecode/errs"
	"github.com/go-mat/mdecode/inflate"
	"github.com/go-mat/mdecode/mattype"
)

// MaxRank is the maximum supported N-D slab rank (§3 invariant: R ≤ 10).
const MaxRank = 10

// Cursor is the minimal capability the typed element reader and the
// slab readers need from a byte source: pull raw bytes, or skip a
// logical run of elements without reading them.
type Cursor interface {
	// ReadInto fills dst with exactly len(dst) raw bytes, advancing the
	// cursor by that amount.
	ReadInto(dst []byte) error

	// Skip advances the cursor by count elements of type t, discarding
	// their bytes.
	Skip(t mattype.SrcType, count int) error
}

// Forkable is implemented by cursors that support a cheap, independent
// snapshot of their current position (§4.2's fork), needed by the
// compressed N-D slab reader so it never relies on random access.
type Forkable interface {
	Cursor
	Fork() Forkable
	Close() error
}

// FileCursor is the uncompressed, seekable Cursor backed by an
// io.ReadSeeker positioned at the first byte of a variable's payload.
type FileCursor struct {
	rs io.ReadSeeker
}

// NewFileCursor wraps a seekable byte source as a Cursor.
func NewFileCursor(rs io.ReadSeeker) *FileCursor {
	return &FileCursor{rs: rs}
}

var _ Cursor = (*FileCursor)(nil)

// ReadInto implements Cursor.
func (c *FileCursor) ReadInto(dst []byte) error {
	if len(dst) == 0 {
		return nil
	}

	_, err := io.ReadFull(c.rs, dst)
	if err != nil {
		if errors.Is(err, io.ErrUnexpectedEOF) || errors.Is(err, io.EOF) {
			return errs.ErrTruncated
		}

		return err
	}

	return nil
}

// Skip implements Cursor using a relative seek (SEEK_CUR).
func (c *FileCursor) Skip(t mattype.SrcType, count int) error {
	if count == 0 {
		return nil
	}

	n := int64(count) * int64(t.Size())
	if _, err := c.rs.Seek(n, io.SeekCurrent); err != nil {
		return errs.ErrSeekFailed
	}

	return nil
}

// InflateCursor is the compressed Cursor backed by an inflate.Stream.
type InflateCursor struct {
	s *inflate.Stream
}

// NewInflateCursor wraps an inflate stream as a Forkable Cursor.
func NewInflateCursor(s *inflate.Stream) *InflateCursor {
	return &InflateCursor{s: s}
}

var (
	_ Cursor   = (*InflateCursor)(nil)
	_ Forkable = (*InflateCursor)(nil)
)

// ReadInto implements Cursor.
func (c *InflateCursor) ReadInto(dst []byte) error {
	return c.s.Pull(dst)
}

// Skip implements Cursor.
func (c *InflateCursor) Skip(t mattype.SrcType, count int) error {
	return c.s.Skip(t, count)
}

// Fork implements Forkable.
func (c *InflateCursor) Fork() Forkable {
	return &InflateCursor{s: c.s.Fork()}
}

// Close implements Forkable.
func (c *InflateCursor) Close() error {
	return c.s.Close()
}
