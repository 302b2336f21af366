package byteswap

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSwap16(t *testing.T) {
	assert.Equal(t, uint16(0x3412), Swap16(0x1234))
	assert.Equal(t, uint16(0x1234), Swap16(Swap16(0x1234)), "swap is its own inverse")
}

func TestSwap32(t *testing.T) {
	assert.Equal(t, uint32(0x78563412), Swap32(0x12345678))
	assert.Equal(t, uint32(0x12345678), Swap32(Swap32(0x12345678)))
}

func TestSwap64(t *testing.T) {
	assert.Equal(t, uint64(0xefcdab8967452301), Swap64(0x0123456789abcdef))
	assert.Equal(t, uint64(0x0123456789abcdef), Swap64(Swap64(0x0123456789abcdef)))
}

func TestSwapSigned(t *testing.T) {
	assert.Equal(t, int16(-1), Swap16s(-1))
	assert.Equal(t, int32(Swap32(uint32(1))), Swap32s(1))
	assert.Equal(t, int64(Swap64(uint64(1))), Swap64s(1))
}

func TestSwapFloat32(t *testing.T) {
	v := float32(3.14159)
	swapped := SwapFloat32(v)
	back := SwapFloat32(swapped)

	assert.Equal(t, v, back)
	assert.NotEqual(t, math.Float32bits(v), math.Float32bits(swapped))
}

func TestSwapFloat64(t *testing.T) {
	v := 2.718281828
	swapped := SwapFloat64(v)
	back := SwapFloat64(swapped)

	assert.Equal(t, v, back)
	assert.NotEqual(t, math.Float64bits(v), math.Float64bits(swapped))
}

func TestIsHostOrder(t *testing.T) {
	le := IsHostOrder(LittleEndian())
	be := IsHostOrder(BigEndian())

	assert.NotEqual(t, le, be, "exactly one engine should match the host order")
}
