// Package mattype defines the closed sets of on-disk element tags and
// in-memory destination classes used by the MAT v5 numeric-payload core,
// along with the size table that maps a tag to its on-disk byte width.
package mattype

import "fmt"

// SrcType identifies the on-disk element width and signedness of a
// stored numeric or character element, per the MAT v5 type tags.
type SrcType uint8

const (
	I8 SrcType = iota + 1
	U8
	I16
	U16
	I32
	U32
	I64
	U64
	F32
	F64
	UTF8
	UTF16
)

func (t SrcType) String() string {
	switch t {
	case I8:
		return "I8"
	case U8:
		return "U8"
	case I16:
		return "I16"
	case U16:
		return "U16"
	case I32:
		return "I32"
	case U32:
		return "U32"
	case I64:
		return "I64"
	case U64:
		return "U64"
	case F32:
		return "F32"
	case F64:
		return "F64"
	case UTF8:
		return "UTF8"
	case UTF16:
		return "UTF16"
	default:
		return "Unknown"
	}
}

// Size returns the on-disk byte width of the tag.
//
// Panics on an invalid tag; a bad SrcType value is a programming error at
// the call site (the envelope parser is expected to validate the tag it
// read from the file before dispatching into this core), not a condition
// this core's callers should be routing through an error return.
func (t SrcType) Size() int {
	switch t {
	case I8, U8, UTF8:
		return 1
	case I16, U16, UTF16:
		return 2
	case I32, U32, F32:
		return 4
	case I64, U64, F64:
		return 8
	default:
		panic(fmt.Sprintf("mattype: invalid SrcType %d", uint8(t)))
	}
}

// IsCharCompatible reports whether the tag carries character data
// (§3: Char accepts only I8/U8/UTF8, 1 byte, or I16/U16/UTF16, 2 bytes).
func (t SrcType) IsCharCompatible() bool {
	switch t {
	case I8, U8, UTF8, I16, U16, UTF16:
		return true
	default:
		return false
	}
}

// DstClass identifies the in-memory element type a decoded value is
// converted into.
type DstClass uint8

const (
	F64 DstClass = iota + 1
	F32
	I64
	U64
	I32
	U32
	I16
	U16
	I8
	U8
	Char
)

func (c DstClass) String() string {
	switch c {
	case F64:
		return "F64"
	case F32:
		return "F32"
	case I64:
		return "I64"
	case U64:
		return "U64"
	case I32:
		return "I32"
	case U32:
		return "U32"
	case I16:
		return "I16"
	case U16:
		return "U16"
	case I8:
		return "I8"
	case U8:
		return "U8"
	case Char:
		return "Char"
	default:
		return "Unknown"
	}
}

// Supported reports whether the (DstClass, SrcType) pair is in the
// supported conversion matrix (§4.3). Numeric destinations accept every
// numeric SrcType; Char accepts only character-bearing tags.
func Supported(d DstClass, s SrcType) bool {
	if d == Char {
		return s.IsCharCompatible()
	}

	switch s {
	case I8, U8, I16, U16, I32, U32, I64, U64, F32, F64:
		return true
	default:
		return false
	}
}
