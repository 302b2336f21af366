package slabcache

// ZstdCodec compresses slab-cache entries with Zstandard, favoring
// ratio over speed for slabs that will sit in the cache for a while.
// The actual implementation is build-tag selected: zstd_pure.go uses
// the pure-Go klauspost/compress/zstd decoder/encoder, zstd_cgo.go uses
// the cgo-backed valyala/gozstd bindings when cgo is available.
type ZstdCodec struct{}

var _ Codec = ZstdCodec{}

// NewZstdCodec returns a Zstandard-backed codec.
func NewZstdCodec() ZstdCodec { return ZstdCodec{} }
