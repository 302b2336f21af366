package slabcache

import "github.com/klauspost/compress/s2"

// S2Codec compresses slab-cache entries with S2, a Snappy-compatible
// format tuned for very fast decompression.
type S2Codec struct{}

var _ Codec = S2Codec{}

// NewS2Codec returns an S2-backed codec.
func NewS2Codec() S2Codec { return S2Codec{} }

// Compress implements Compressor.
func (S2Codec) Compress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	return s2.Encode(nil, data), nil
}

// Decompress implements Decompressor.
func (S2Codec) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	return s2.Decode(nil, data)
}
