package numeric

import (
	"github.com/go-mat/mdecode/byteswap"
	"github.com/go-mat/mdecode/mattype"
)

// ReadData reads len(dst) elements of src from cur into dst, converting
// each element per the (D, src) policy in §4.3, and returns the number
// of source bytes consumed.
//
// Conversion is performed in fixed-capacity batches of B(src) = 1024 /
// src.Size() elements (§4.3's batching requirement for the compressed
// path), read through a stack-local scratch buffer that never escapes
// to the heap beyond this call. This single code path serves both the
// uncompressed FileCursor and the compressed InflateCursor; §8's
// "identical uncompressed/compressed output" property follows directly
// from sharing this function rather than maintaining two decoders.
//
// If (D, src) is not in the supported conversion matrix, ReadData
// returns (0, nil): the caller is expected to treat this as "no data
// was expected to fit" per §4.3, optionally surfacing a Warning.
func ReadData[D Numeric](cur Cursor, dst []D, src mattype.SrcType, bo byteswap.Flag) (int, error) {
	if !mattype.Supported(DstClassOf[D](), src) {
		return 0, nil
	}

	n := len(dst)
	if n == 0 {
		return 0, nil
	}

	size := src.Size()
	batchSize := batchCap(src)

	var scratch [1024]byte

	consumed := 0
	for i := 0; i < n; i += batchSize {
		batch := batchSize
		if rem := n - i; rem < batch {
			batch = rem
		}

		buf := scratch[:batch*size]
		if err := cur.ReadInto(buf); err != nil {
			return consumed, err
		}

		for j := 0; j < batch; j++ {
			dst[i+j] = convertElement[D](buf[j*size:(j+1)*size], src, bo)
		}

		consumed += batch * size
	}

	return consumed, nil
}

// DstClassOf reports the mattype.DstClass corresponding to the
// instantiated Numeric type parameter D, used to validate (D, src)
// against the supported conversion matrix without per-call reflection
// at the hot loop.
func DstClassOf[D Numeric]() mattype.DstClass {
	switch any(*new(D)).(type) {
	case float64:
		return mattype.F64
	case float32:
		return mattype.F32
	case int64:
		return mattype.I64
	case uint64:
		return mattype.U64
	case int32:
		return mattype.I32
	case uint32:
		return mattype.U32
	case int16:
		return mattype.I16
	case uint16:
		return mattype.U16
	case int8:
		return mattype.I8
	case uint8:
		return mattype.U8
	default:
		return 0
	}
}

// ReadChar reads len(dst) character elements of src into dst. Per §3,
// Char accepts 1-byte sources (I8/U8/UTF8), whose value is widened into
// the uint16 cell unchanged, and 2-byte sources (I16/U16/UTF16), whose
// (optionally swapped) 16-bit code unit is stored whole.
// Keeping a 16-bit cell (rather than truncating to one byte) is the
// §4.3-sanctioned option; it loses nothing for the 1-byte case and
// avoids discarding the high byte of a UTF16 code unit for the 2-byte
// case.
//
// Unlike the original ReadCharData (§9), ReadChar returns len*src.Size()
// in both branches.
func ReadChar(cur Cursor, dst []uint16, src mattype.SrcType, bo byteswap.Flag) (int, error) {
	if !src.IsCharCompatible() {
		return 0, nil
	}

	n := len(dst)
	if n == 0 {
		return 0, nil
	}

	size := src.Size()
	batchSize := batchCap(src)

	var scratch [1024]byte

	consumed := 0
	for i := 0; i < n; i += batchSize {
		batch := batchSize
		if rem := n - i; rem < batch {
			batch = rem
		}

		buf := scratch[:batch*size]
		if err := cur.ReadInto(buf); err != nil {
			return consumed, err
		}

		for j := 0; j < batch; j++ {
			elem := buf[j*size : (j+1)*size]
			if size == 1 {
				dst[i+j] = uint16(elem[0])
			} else {
				dst[i+j] = uint16(decodeUnsigned(elem, src, bo))
			}
		}

		consumed += batch * size
	}

	return consumed, nil
}
