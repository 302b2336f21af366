package numeric

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/go-mat/mdecode/errs"
	"github.com/go-mat/mdecode/mattype"
)

// column-major values 0..5 over dims [3,2]: (i0,i1) -> i0 + i1*3.
func rank2Fixture() []byte { return seqI8(6) }

func TestReadSlabN_RankOneDelegatesToSlab1(t *testing.T) {
	cur := NewFileCursor(bytes.NewReader(seqI8(10)))

	desc := SlabDescriptor{Dims: []int{10}, Start: []int{2}, Stride: []int{3}, Edge: []int{3}}
	dst := make([]int64, desc.NumElements())

	_, err := ReadSlabN(cur, dst, mattype.I8, false, desc)
	require.NoError(t, err)
	require.Equal(t, []int64{2, 5, 8}, dst)
}

func TestReadSlabN_Rank2ColumnMajorSubRectangle(t *testing.T) {
	cur := NewFileCursor(bytes.NewReader(rank2Fixture()))

	// dims [3,2]; select rows {1,2}, all columns -> (1,0)=1,(2,0)=2,(1,1)=4,(2,1)=5
	desc := SlabDescriptor{
		Dims:   []int{3, 2},
		Start:  []int{1, 0},
		Stride: []int{1, 1},
		Edge:   []int{2, 2},
	}
	dst := make([]int64, desc.NumElements())

	n, err := ReadSlabN(cur, dst, mattype.I8, false, desc)
	require.NoError(t, err)
	require.Equal(t, 4, n)
	require.Equal(t, []int64{1, 2, 4, 5}, dst)
}

func TestReadSlabN_FullArrayEqualsPlainRead(t *testing.T) {
	raw := rank2Fixture()

	desc := SlabDescriptor{
		Dims:   []int{3, 2},
		Start:  []int{0, 0},
		Stride: []int{1, 1},
		Edge:   []int{3, 2},
	}

	curSlab := NewFileCursor(bytes.NewReader(raw))
	dstSlab := make([]int64, desc.NumElements())
	_, err := ReadSlabN(curSlab, dstSlab, mattype.I8, false, desc)
	require.NoError(t, err)

	curPlain := NewFileCursor(bytes.NewReader(raw))
	dstPlain := make([]int64, 6)
	_, err = ReadData(curPlain, dstPlain, mattype.I8, false)
	require.NoError(t, err)

	require.Equal(t, dstPlain, dstSlab)
}

func TestReadSlabN_Rank3WithColumnStride(t *testing.T) {
	// dims [2,3,2], values 0..11 column-major.
	raw := seqI8(12)

	desc := SlabDescriptor{
		Dims:   []int{2, 3, 2},
		Start:  []int{0, 0, 0},
		Stride: []int{1, 2, 1},
		Edge:   []int{2, 2, 2},
	}
	// axis1 selected indices {0,2}; axis2 selected indices {0,1}.
	// linear(i0,i1,i2) = i0 + i1*2 + i2*6
	// expected column-major traversal over (i0 fastest, then i1, then i2):
	// (0,0,0)=0 (1,0,0)=1 (0,2,0)=4 (1,2,0)=5 (0,0,1)=6 (1,0,1)=7 (0,2,1)=10 (1,2,1)=11
	want := []int64{0, 1, 4, 5, 6, 7, 10, 11}

	cur := NewFileCursor(bytes.NewReader(raw))
	dst := make([]int64, desc.NumElements())
	_, err := ReadSlabN(cur, dst, mattype.I8, false, desc)
	require.NoError(t, err)
	require.Equal(t, want, dst)
}

func TestReadCompressedSlabN_MatchesUncompressed(t *testing.T) {
	raw := rank2Fixture()

	desc := SlabDescriptor{
		Dims:   []int{3, 2},
		Start:  []int{1, 0},
		Stride: []int{1, 1},
		Edge:   []int{2, 2},
	}

	fileCur := NewFileCursor(bytes.NewReader(raw))
	fileDst := make([]int64, desc.NumElements())
	_, err := ReadSlabN(fileCur, fileDst, mattype.I8, false, desc)
	require.NoError(t, err)

	stream := mustOpenStream(t, raw)
	inflCur := NewInflateCursor(stream)
	inflDst := make([]int64, desc.NumElements())
	_, err = ReadCompressedSlabN(inflCur, inflDst, mattype.I8, false, desc)
	require.NoError(t, err)

	require.Equal(t, fileDst, inflDst)
	require.Equal(t, 0, stream.Pos(), "parent stream position untouched by the forked slab read")
}

func TestReadSlabN_RankOverflowDoesNotTouchCursor(t *testing.T) {
	cur := NewFileCursor(bytes.NewReader(seqI8(4)))

	dims := make([]int, 11)
	start := make([]int, 11)
	stride := make([]int, 11)
	edge := make([]int, 11)
	for i := range dims {
		dims[i], stride[i], edge[i] = 1, 1, 1
	}

	desc := SlabDescriptor{Dims: dims, Start: start, Stride: stride, Edge: edge}

	_, err := ReadSlabN(cur, make([]int64, 1), mattype.I8, false, desc)
	require.ErrorIs(t, err, errs.ErrRankOverflow)

	// cursor untouched: a subsequent read still sees the first byte
	out := make([]byte, 1)
	require.NoError(t, cur.ReadInto(out))
	require.Equal(t, byte(0), out[0])
}

func TestReadSlabN_InvalidDescriptorOutOfBounds(t *testing.T) {
	cur := NewFileCursor(bytes.NewReader(seqI8(4)))

	desc := SlabDescriptor{Dims: []int{4}, Start: []int{2}, Stride: []int{1}, Edge: []int{5}}
	_, err := ReadSlabN(cur, make([]int64, 5), mattype.I8, false, desc)
	require.ErrorIs(t, err, errs.ErrInvalidSlabDescriptor)
}
