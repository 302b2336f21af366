// Package inflate implements the forward-only byte source the numeric
// decoder core reads compressed MAT variables from (§4.2).
//
// MAT v5 stores a compressed variable as a single RFC 1950 zlib stream
// (miCOMPRESSED) wrapping one DEFLATE block. Per §9's design note,
// neither the standard library's compress/flate nor
// github.com/klauspost/compress/flate expose a way to clone a
// decompressor's internal state, so Fork cannot be a true decompressor
// clone. Instead, Open inflates the entire block once into memory and
// Stream layers a forward-only cursor on top of the shared buffer; Fork
// is then a cheap index copy rather than a decompressor clone. This
// keeps the pull/skip/fork contract identical to a true streaming
// implementation while trading memory (one full payload buffer) for
// simplicity, exactly the trade-off §9 calls out.
package inflate

import (
	"errors"
	"io"

	"github.com/klauspost/compress/zlib"

	"github.com/go-mat/mdecode/errs"
	"github.com/go-mat/mdecode/mattype"
)

// Stream is a forward-only cursor over a fully-inflated DEFLATE block.
//
// A Stream is owned by one logical read. Fork produces an independent
// Stream sharing the same backing buffer; advancing one does not
// perturb the other. Every Fork result must be released with Close on
// every exit path.
type Stream struct {
	buf []byte
	pos int
}

// Open inflates the zlib-wrapped DEFLATE block read from r in full and
// returns a Stream positioned at its first byte.
func Open(r io.Reader) (*Stream, error) {
	zr, err := zlib.NewReader(r)
	if err != nil {
		return nil, errs.ErrCorrupt
	}
	defer zr.Close()

	buf, err := io.ReadAll(zr)
	if err != nil {
		if errors.Is(err, io.ErrUnexpectedEOF) {
			return nil, errs.ErrTruncated
		}

		return nil, errs.ErrCorrupt
	}

	return &Stream{buf: buf}, nil
}

// Len returns the total number of decompressed bytes in the stream.
func (s *Stream) Len() int { return len(s.buf) }

// Pos returns the stream's current logical output position, in bytes.
func (s *Stream) Pos() int { return s.pos }

// Remaining returns the number of bytes left to read from the current position.
func (s *Stream) Remaining() int { return len(s.buf) - s.pos }

// Pull decompresses exactly len(dst) bytes into dst, advancing the
// stream. Returns errs.ErrTruncated if the stream ends early.
func (s *Stream) Pull(dst []byte) error {
	n := len(dst)
	if n == 0 {
		return nil
	}

	if s.pos+n > len(s.buf) {
		return errs.ErrTruncated
	}

	copy(dst, s.buf[s.pos:s.pos+n])
	s.pos += n

	return nil
}

// Skip advances the stream by exactly count*t.Size() bytes of output,
// discarding them. Returns errs.ErrTruncated if the stream ends early.
func (s *Stream) Skip(t mattype.SrcType, count int) error {
	if count <= 0 {
		return nil
	}

	n := count * t.Size()
	if s.pos+n > len(s.buf) {
		return errs.ErrTruncated
	}

	s.pos += n

	return nil
}

// Fork returns an independent Stream at the current output position.
// Advancing either the fork or the parent does not affect the other.
func (s *Stream) Fork() *Stream {
	return &Stream{buf: s.buf, pos: s.pos}
}

// Close releases the stream. Since Stream holds no resource beyond a
// shared in-memory buffer, Close is a no-op, but callers must still
// call it on every exit path: a future pooled-buffer backed
// implementation can hook reference counting in here without changing
// call sites.
func (s *Stream) Close() error { return nil }
