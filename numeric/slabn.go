package numeric

import (
	"github.com/go-mat/mdecode/byteswap"
	"github.com/go-mat/mdecode/errs"
	"github.com/go-mat/mdecode/mattype"
)

// SlabDescriptor describes a rank-R strided rectangular sub-slab of a
// column-major array (§3): for axis k, the selected element indices are
// start[k], start[k]+stride[k], …, start[k]+(edge[k]-1)*stride[k], which
// must satisfy start[k]+(edge[k]-1)*stride[k] < dims[k].
type SlabDescriptor struct {
	Dims   []int
	Start  []int
	Stride []int
	Edge   []int
}

// Rank returns the descriptor's rank (the number of axes).
func (d SlabDescriptor) Rank() int { return len(d.Dims) }

// NumElements returns ∏ edge[k], the total number of elements the slab selects.
func (d SlabDescriptor) NumElements() int {
	n := 1
	for _, e := range d.Edge {
		n *= e
	}

	return n
}

func (d SlabDescriptor) validate() error {
	r := d.Rank()
	if r == 0 || r > MaxRank {
		return errs.ErrRankOverflow
	}

	if len(d.Start) != r || len(d.Stride) != r || len(d.Edge) != r {
		return errs.ErrInvalidSlabDescriptor
	}

	for k := 0; k < r; k++ {
		if d.Dims[k] < 1 || d.Edge[k] < 1 || d.Stride[k] < 1 {
			return errs.ErrInvalidSlabDescriptor
		}

		if d.Start[k] < 0 || d.Start[k]+(d.Edge[k]-1)*d.Stride[k] >= d.Dims[k] {
			return errs.ErrInvalidSlabDescriptor
		}
	}

	return nil
}

// isFullRead reports whether the descriptor selects every element of
// the array in natural order (start==0, stride==1, edge==dims on every
// axis), the §8 "Rank-N with edge==dims, stride==1, start==0" identity.
func (d SlabDescriptor) isFullRead() bool {
	for k := 0; k < d.Rank(); k++ {
		if d.Start[k] != 0 || d.Stride[k] != 1 || d.Edge[k] != d.Dims[k] {
			return false
		}
	}

	return true
}

// readAxis0Run reads edge elements along axis 0 with the given stride,
// the innermost contiguous-or-strided run every N-D slab decomposes
// into. It performs no skip before the first element or after the last;
// callers position the cursor and handle the gaps between runs.
func readAxis0Run[D Numeric](cur Cursor, dst []D, src mattype.SrcType, bo byteswap.Flag, stride, edge int) (int, error) {
	if stride == 1 {
		return ReadData(cur, dst[:edge], src, bo)
	}

	consumed := 0

	for i := 0; i < edge; i++ {
		n, err := ReadData(cur, dst[i:i+1], src, bo)
		consumed += n
		if err != nil {
			return consumed, err
		}

		if i != edge-1 {
			if err := cur.Skip(src, stride-1); err != nil {
				return consumed, err
			}
		}
	}

	return consumed, nil
}

// readSlabN implements the general rank-R strided slab read (§4.5) as a
// single outer pass over contiguous-or-strided axis-0 runs, computing
// each run's absolute element origin directly from the column-major
// index formula rather than the incrementally-maintained carry state
// the original C uses. Per §9's design note ("the nested carry ... can
// be refactored into a SlabIndexIterator that yields (skip_bytes_before,
// run_length) pairs ... decouples slab geometry from I/O"), this is
// that refactor: every run's target position is computed fresh, the
// delta to it is always non-negative for a valid (§3-compliant)
// descriptor since runs are visited in increasing column-major order,
// so a single forward Skip always suffices — the same primitive the
// non-seekable compressed cursor already has.
func readSlabN[D Numeric](cur Cursor, dst []D, src mattype.SrcType, bo byteswap.Flag, desc SlabDescriptor) (int, error) {
	if err := desc.validate(); err != nil {
		return 0, err
	}

	rank := desc.Rank()
	n := desc.NumElements()

	if len(dst) < n {
		return 0, errs.ErrInvalidSlabDescriptor
	}

	if rank == 1 {
		return readSlab1(cur, dst, src, bo, desc.Start[0], desc.Stride[0], desc.Edge[0])
	}

	if desc.isFullRead() {
		return ReadData(cur, dst[:n], src, bo)
	}

	dimp := make([]int, rank)
	dimp[0] = desc.Dims[0]

	for k := 1; k < rank; k++ {
		dimp[k] = dimp[k-1] * desc.Dims[k]
	}

	outerRuns := n / desc.Edge[0]
	idx := make([]int, rank)

	curPos := 0
	consumed := 0
	outPos := 0

	for r := 0; r < outerRuns; r++ {
		base := 0
		for k := 1; k < rank; k++ {
			base += (desc.Start[k] + idx[k]*desc.Stride[k]) * dimp[k-1]
		}

		runStart := base + desc.Start[0]
		if skip := runStart - curPos; skip > 0 {
			if err := cur.Skip(src, skip); err != nil {
				return consumed, err
			}

			curPos += skip
		}

		runN, err := readAxis0Run(cur, dst[outPos:outPos+desc.Edge[0]], src, bo, desc.Stride[0], desc.Edge[0])
		consumed += runN
		outPos += desc.Edge[0]
		curPos = runStart + 1 + (desc.Edge[0]-1)*desc.Stride[0]

		if err != nil {
			return consumed, err
		}

		for k := 1; k < rank; k++ {
			idx[k]++
			if idx[k] < desc.Edge[k] {
				break
			}

			idx[k] = 0
		}
	}

	return consumed, nil
}

// ReadSlabN reads a rank-R strided slab from an uncompressed, seekable source.
func ReadSlabN[D Numeric](cur *FileCursor, dst []D, src mattype.SrcType, bo byteswap.Flag, desc SlabDescriptor) (int, error) {
	return readSlabN(cur, dst, src, bo, desc)
}

// ReadCompressedSlabN reads a rank-R strided slab from a compressed
// source. The inflate stream is forked before the slab is read and the
// fork released afterward; the parent stream's position is unaffected.
func ReadCompressedSlabN[D Numeric](cur *InflateCursor, dst []D, src mattype.SrcType, bo byteswap.Flag, desc SlabDescriptor) (int, error) {
	fork := cur.Fork()
	defer fork.Close()

	return readSlabN(fork, dst, src, bo, desc)
}
