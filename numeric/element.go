package numeric

import (
	"encoding/binary"
	"math"

	"github.com/go-mat/mdecode/byteswap"
	"github.com/go-mat/mdecode/mattype"
)

// Numeric is the type set of supported in-memory numeric destination
// elements. Char is handled separately (see ReadChar) since it is not a
// plain widened/narrowed numeric value but a narrowed character code.
type Numeric interface {
	~float64 | ~float32 |
		~int64 | ~uint64 |
		~int32 | ~uint32 |
		~int16 | ~uint16 |
		~int8 | ~uint8
}

// batchCap returns B(S) = 1024 / size_of(S), the fixed batch capacity
// used by the compressed reader (§4.3).
func batchCap(s mattype.SrcType) int {
	return 1024 / s.Size()
}

// decodeSigned interprets raw (exactly s.Size() bytes, disk order) as a
// signed integer, applying a byte-swap first when bo is set.
func decodeSigned(raw []byte, s mattype.SrcType, bo byteswap.Flag) int64 {
	switch s {
	case mattype.I8:
		return int64(int8(raw[0]))
	case mattype.I16:
		v := binary.LittleEndian.Uint16(raw)
		if bo {
			v = byteswap.Swap16(v)
		}

		return int64(int16(v))
	case mattype.I32:
		v := binary.LittleEndian.Uint32(raw)
		if bo {
			v = byteswap.Swap32(v)
		}

		return int64(int32(v))
	case mattype.I64:
		v := binary.LittleEndian.Uint64(raw)
		if bo {
			v = byteswap.Swap64(v)
		}

		return int64(v)
	default:
		panic("numeric: decodeSigned called with non-signed SrcType")
	}
}

// decodeUnsigned interprets raw as an unsigned integer, swapping first
// when bo is set.
func decodeUnsigned(raw []byte, s mattype.SrcType, bo byteswap.Flag) uint64 {
	switch s {
	case mattype.U8, mattype.UTF8:
		return uint64(raw[0])
	case mattype.U16, mattype.UTF16:
		v := binary.LittleEndian.Uint16(raw)
		if bo {
			v = byteswap.Swap16(v)
		}

		return uint64(v)
	case mattype.U32:
		v := binary.LittleEndian.Uint32(raw)
		if bo {
			v = byteswap.Swap32(v)
		}

		return uint64(v)
	case mattype.U64:
		v := binary.LittleEndian.Uint64(raw)
		if bo {
			v = byteswap.Swap64(v)
		}

		return v
	default:
		panic("numeric: decodeUnsigned called with non-unsigned SrcType")
	}
}

// decodeFloat interprets raw as a float64 value, swapping the bit
// pattern first when bo is set. F32 sources widen by value (exact);
// F64 sources pass through.
func decodeFloat(raw []byte, s mattype.SrcType, bo byteswap.Flag) float64 {
	switch s {
	case mattype.F32:
		bits := binary.LittleEndian.Uint32(raw)
		if bo {
			bits = byteswap.Swap32(bits)
		}

		return float64(math.Float32frombits(bits))
	case mattype.F64:
		bits := binary.LittleEndian.Uint64(raw)
		if bo {
			bits = byteswap.Swap64(bits)
		}

		return math.Float64frombits(bits)
	default:
		panic("numeric: decodeFloat called with non-float SrcType")
	}
}

// convertElement converts one raw source element into D per the §4.3
// conversion policy: float<->float by value, int<->int by low-bit
// reinterpretation (Go's built-in numeric conversions implement exactly
// this for every pair in the supported matrix), and int<->float by
// value with IEEE-754 rounding on overflow.
func convertElement[D Numeric](raw []byte, s mattype.SrcType, bo byteswap.Flag) D {
	switch s {
	case mattype.I8, mattype.I16, mattype.I32, mattype.I64:
		return D(decodeSigned(raw, s, bo))
	case mattype.U8, mattype.U16, mattype.U32, mattype.U64, mattype.UTF8, mattype.UTF16:
		return D(decodeUnsigned(raw, s, bo))
	case mattype.F32, mattype.F64:
		return D(decodeFloat(raw, s, bo))
	default:
		return D(0)
	}
}
