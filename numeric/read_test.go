package numeric

import (
	"bytes"
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/go-mat/mdecode/mattype"
)

func u8ToF64Fixture(values ...byte) *FileCursor {
	return NewFileCursor(bytes.NewReader(values))
}

func TestReadData_U8ToF64(t *testing.T) {
	cur := u8ToF64Fixture(1, 2, 3, 250)

	dst := make([]float64, 4)
	n, err := ReadData(cur, dst, mattype.U8, false)

	require.NoError(t, err)
	require.Equal(t, 4, n)
	require.Equal(t, []float64{1, 2, 3, 250}, dst)
}

func TestReadData_I32BigEndian(t *testing.T) {
	raw := make([]byte, 8)
	binary.BigEndian.PutUint32(raw[0:4], uint32(int32(-1)))
	binary.BigEndian.PutUint32(raw[4:8], uint32(int32(42)))

	// the decoder always reads little-endian then conditionally swaps;
	// big-endian bytes with swap=true yield the correct host values.
	cur := NewFileCursor(bytes.NewReader(raw))

	dst := make([]int32, 2)
	n, err := ReadData(cur, dst, mattype.I32, true)

	require.NoError(t, err)
	require.Equal(t, 8, n)
	require.Equal(t, []int32{-1, 42}, dst)
}

func TestReadData_BatchesAcrossMultipleScratchFills(t *testing.T) {
	// I8 batches at 1024 elements; exercise a read spanning three batches
	// (1024 + 1024 + 7).
	n := batchCap(mattype.I8)*2 + 7

	raw := make([]byte, n)
	for i := range raw {
		raw[i] = byte(i % 256)
	}

	cur := NewFileCursor(bytes.NewReader(raw))
	dst := make([]int64, n)

	consumed, err := ReadData(cur, dst, mattype.I8, false)
	require.NoError(t, err)
	require.Equal(t, n, consumed)

	for i := 0; i < n; i++ {
		require.Equal(t, int64(int8(byte(i%256))), dst[i], "index %d", i)
	}
}

func TestReadData_UnsupportedConversionReturnsZero(t *testing.T) {
	cur := u8ToF64Fixture(1, 2, 3, 4)

	dst := make([]float64, 4)
	n, err := ReadData(cur, dst, mattype.UTF8, false)
	require.NoError(t, err)
	require.Equal(t, 0, n)
}

func TestReadChar_OneByteSource(t *testing.T) {
	cur := NewFileCursor(bytes.NewReader([]byte("hi")))

	dst := make([]uint16, 2)
	n, err := ReadChar(cur, dst, mattype.UTF8, false)

	require.NoError(t, err)
	require.Equal(t, 2, n)
	require.Equal(t, []uint16{'h', 'i'}, dst)
}

func TestReadChar_TwoByteSource(t *testing.T) {
	raw := make([]byte, 4)
	binary.LittleEndian.PutUint16(raw[0:2], 'h')
	binary.LittleEndian.PutUint16(raw[2:4], 'i')

	cur := NewFileCursor(bytes.NewReader(raw))
	dst := make([]uint16, 2)

	n, err := ReadChar(cur, dst, mattype.UTF16, false)

	require.NoError(t, err)
	require.Equal(t, 4, n)
	require.Equal(t, []uint16{'h', 'i'}, dst)
}

func TestReadChar_UnsupportedSrcReturnsZero(t *testing.T) {
	cur := u8ToF64Fixture(1, 2, 3, 4)

	n, err := ReadChar(cur, make([]uint16, 1), mattype.F64, false)
	require.NoError(t, err)
	require.Equal(t, 0, n)
}
