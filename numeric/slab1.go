package numeric

import (
	"github.com/go-mat/mdecode/byteswap"
	"github.com/go-mat/mdecode/mattype"
)

// readSlab1 implements the rank-1 strided slab read (§4.4) against any
// Cursor. Both ReadSlab1 and ReadCompressedSlab1 delegate here; the
// only difference between the uncompressed and compressed entry points
// is whether the cursor they hand in is the caller's own (file, free to
// seek and stay advanced) or a disposable fork (inflate stream, so the
// parent's position is untouched).
func readSlab1[D Numeric](cur Cursor, dst []D, src mattype.SrcType, bo byteswap.Flag, start, stride, edge int) (int, error) {
	if err := cur.Skip(src, start); err != nil {
		return 0, err
	}

	return readAxis0Run(cur, dst[:edge], src, bo, stride, edge)
}

// ReadSlab1 reads a rank-1 strided slab (start, stride, edge) from an
// uncompressed, seekable source. The file cursor is left advanced past
// the slab, as usual for a seekable source (§4.4).
func ReadSlab1[D Numeric](cur *FileCursor, dst []D, src mattype.SrcType, bo byteswap.Flag, start, stride, edge int) (int, error) {
	return readSlab1(cur, dst, src, bo, start, stride, edge)
}

// ReadCompressedSlab1 reads a rank-1 strided slab from a compressed
// source. The inflate stream is forked before the slab is read and the
// fork released afterward; the parent stream's position is left
// exactly where it was (§4.4: "the envelope parser continues from
// where it left off").
func ReadCompressedSlab1[D Numeric](cur *InflateCursor, dst []D, src mattype.SrcType, bo byteswap.Flag, start, stride, edge int) (int, error) {
	fork := cur.Fork()
	defer fork.Close()

	return readSlab1(fork, dst, src, bo, start, stride, edge)
}
