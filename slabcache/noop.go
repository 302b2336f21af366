package slabcache

// NoOpCodec stores cache entries verbatim; useful as a baseline and for
// tests that want cache semantics without the compression cost.
type NoOpCodec struct{}

var _ Codec = NoOpCodec{}

// NewNoOpCodec returns a codec that performs no compression.
func NewNoOpCodec() NoOpCodec { return NoOpCodec{} }

// Compress returns data unchanged.
func (NoOpCodec) Compress(data []byte) ([]byte, error) { return data, nil }

// Decompress returns data unchanged.
func (NoOpCodec) Decompress(data []byte) ([]byte, error) { return data, nil }
