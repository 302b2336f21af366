package numeric

import (
	"github.com/go-mat/mdecode/byteswap"
	"github.com/go-mat/mdecode/internal/options"
)

// Context is the decoder context threaded through every element and
// slab read (§3): the byte-order flag plus whatever optional behavior
// the caller has opted into via Option.
type Context struct {
	Swap      byteswap.Flag
	UseCache  bool
	CachePlan CompressionHint
}

// CompressionHint names the codec the slab cache should use to store a
// decoded slab, independent of the MAT file's own DEFLATE-only wire
// format (§6 "slab cache").
type CompressionHint uint8

const (
	// HintNone stores slab-cache entries uncompressed.
	HintNone CompressionHint = iota
	// HintLZ4 stores slab-cache entries with LZ4 block compression.
	HintLZ4
	// HintZstd stores slab-cache entries with zstd compression.
	HintZstd
)

// NewContext builds a Context from zero or more Option values, applying
// them in order (§3 lifecycle: "constructed once per open file").
func NewContext(opts ...Option) (*Context, error) {
	ctx := &Context{Swap: false, UseCache: false, CachePlan: HintNone}
	if err := options.Apply(ctx, opts...); err != nil {
		return nil, err
	}

	return ctx, nil
}

// Option configures a Context at construction time, adapted from the
// generic functional-options pattern.
type Option = options.Option[*Context]

// WithByteSwap sets the decoder context's byte-order flag (§4.1): when
// swap is true, every multi-byte scalar is byte-swapped after being
// read but before conversion.
func WithByteSwap(swap bool) Option {
	return options.NoError(func(c *Context) { c.Swap = byteswap.Flag(swap) })
}

// WithSlabCache enables the slab cache and selects the codec it stores
// entries with.
func WithSlabCache(hint CompressionHint) Option {
	return options.NoError(func(c *Context) {
		c.UseCache = true
		c.CachePlan = hint
	})
}
