//go:build cgo

package slabcache

import "github.com/valyala/gozstd"

// Compress implements Compressor using the cgo-backed zstd bindings.
func (ZstdCodec) Compress(data []byte) ([]byte, error) {
	return gozstd.CompressLevel(nil, data, 3), nil
}

// Decompress implements Decompressor using the cgo-backed zstd bindings.
func (ZstdCodec) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	return gozstd.Decompress(nil, data)
}
