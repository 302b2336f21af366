// Package byteswap provides the primitive byte-swap operations and the
// byte-order engine the numeric decoder core uses to honor a MAT file's
// byte-order flag (§4.1).
//
// This package extends Go's standard encoding/binary package the same
// way a host-order-aware binary codec usually does: combining
// ByteOrder and AppendByteOrder into one Engine interface, and adding
// the scalar swap primitives the decoder applies to each element between
// reading it and converting it, which plain
// encoding/binary has no use for since it always decodes into a
// specific order rather than swapping an already-native value.
package byteswap

import (
	"encoding/binary"
	"math"
	"unsafe"
)

// Engine combines ByteOrder and AppendByteOrder from encoding/binary
// into a single interface, satisfied by binary.LittleEndian and
// binary.BigEndian.
type Engine interface {
	binary.ByteOrder
	binary.AppendByteOrder
}

// LittleEndian returns the little-endian engine.
func LittleEndian() Engine { return binary.LittleEndian }

// BigEndian returns the big-endian engine.
func BigEndian() Engine { return binary.BigEndian }

// hostEndian determines the host's native byte order using a fixed
// integer value, without depending on GOARCH build tags.
func hostEndian() binary.ByteOrder {
	var i uint16 = 0x0100

	b := (*[2]byte)(unsafe.Pointer(&i))
	if b[0] == 0x01 {
		return binary.BigEndian
	}

	return binary.LittleEndian
}

// IsHostOrder reports whether engine matches the host's native byte order.
func IsHostOrder(engine Engine) bool {
	return engine == hostEndian()
}

// Flag is the decoder context's byte-order flag (§3: "a single boolean
// on the decoder context"): when true, every multi-byte scalar read is
// byte-swapped after being read but before conversion.
type Flag bool

// Swap16 reverses the byte order of a 16-bit unsigned scalar.
func Swap16(v uint16) uint16 {
	return v<<8 | v>>8
}

// Swap32 reverses the byte order of a 32-bit unsigned scalar.
func Swap32(v uint32) uint32 {
	return (v&0x000000FF)<<24 |
		(v&0x0000FF00)<<8 |
		(v&0x00FF0000)>>8 |
		(v&0xFF000000)>>24
}

// Swap64 reverses the byte order of a 64-bit unsigned scalar.
func Swap64(v uint64) uint64 {
	return (v&0x00000000000000FF)<<56 |
		(v&0x000000000000FF00)<<40 |
		(v&0x0000000000FF0000)<<24 |
		(v&0x00000000FF000000)<<8 |
		(v&0x000000FF00000000)>>8 |
		(v&0x0000FF0000000000)>>24 |
		(v&0x00FF000000000000)>>40 |
		(v&0xFF00000000000000)>>56
}

// Swap16s reverses the byte order of a 16-bit signed scalar.
func Swap16s(v int16) int16 { return int16(Swap16(uint16(v))) }

// Swap32s reverses the byte order of a 32-bit signed scalar.
func Swap32s(v int32) int32 { return int32(Swap32(uint32(v))) }

// Swap64s reverses the byte order of a 64-bit signed scalar.
func Swap64s(v int64) int64 { return int64(Swap64(uint64(v))) }

// SwapFloat32 reverses the byte order of a 32-bit float via its bit pattern.
func SwapFloat32(v float32) float32 {
	return math.Float32frombits(Swap32(math.Float32bits(v)))
}

// SwapFloat64 reverses the byte order of a 64-bit float via its bit pattern.
func SwapFloat64(v float64) float64 {
	return math.Float64frombits(Swap64(math.Float64bits(v)))
}
