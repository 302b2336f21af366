package slabcache

import (
	"strconv"
	"strings"

	"github.com/go-mat/mdecode/internal/hash"
)

// Key identifies one cached slab read: the byte offset a variable's
// payload starts at, its on-disk element type, the in-memory class it
// was decoded into, and the slab geometry requested.
type Key struct {
	Offset int64
	SrcTag uint8
	DstTag uint8
	Start  []int
	Stride []int
	Edge   []int
}

// id deterministically serializes the key fields and hashes them with
// xxHash64, the same derivation style as a metric-name-to-id lookup.
func (k Key) id() uint64 {
	var b strings.Builder

	b.WriteString(strconv.FormatInt(k.Offset, 36))
	b.WriteByte(':')
	b.WriteString(strconv.FormatUint(uint64(k.SrcTag), 36))
	b.WriteByte(':')
	b.WriteString(strconv.FormatUint(uint64(k.DstTag), 36))

	for _, ints := range [][]int{k.Start, k.Stride, k.Edge} {
		b.WriteByte('|')

		for _, v := range ints {
			b.WriteString(strconv.Itoa(v))
			b.WriteByte(',')
		}
	}

	return hash.ID(b.String())
}
