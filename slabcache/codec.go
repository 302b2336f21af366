// Package slabcache is a supplemental feature (not present in the
// original MAT reader): a process-local cache of already-decoded slabs,
// keyed on the source offset, element type, and slab geometry, storing
// entries compressed with a caller-selected codec. A MAT file's own
// wire format always uses DEFLATE for the one miCOMPRESSED case (see
// package inflate); the codecs here are a second, independent
// compression layer applied only to cached decode results, chosen
// to exercise the domain's broader compression ecosystem rather than
// the one codec MAT actually puts on disk.
package slabcache

import "fmt"

// Algorithm identifies a slab-cache compression codec.
type Algorithm uint8

const (
	// AlgorithmNone stores cache entries uncompressed.
	AlgorithmNone Algorithm = iota
	// AlgorithmLZ4 stores cache entries with LZ4 block compression.
	AlgorithmLZ4
	// AlgorithmS2 stores cache entries with S2 (Snappy-compatible) compression.
	AlgorithmS2
	// AlgorithmZstd stores cache entries with Zstandard compression.
	AlgorithmZstd
)

// String implements fmt.Stringer.
func (a Algorithm) String() string {
	switch a {
	case AlgorithmNone:
		return "none"
	case AlgorithmLZ4:
		return "lz4"
	case AlgorithmS2:
		return "s2"
	case AlgorithmZstd:
		return "zstd"
	default:
		return fmt.Sprintf("Algorithm(%d)", uint8(a))
	}
}

// Compressor compresses a byte slice.
type Compressor interface {
	Compress(data []byte) ([]byte, error)
}

// Decompressor decompresses a byte slice produced by the matching Compressor.
type Decompressor interface {
	Decompress(data []byte) ([]byte, error)
}

// Codec combines both compression directions.
type Codec interface {
	Compressor
	Decompressor
}

var builtinCodecs = map[Algorithm]Codec{
	AlgorithmNone: NewNoOpCodec(),
	AlgorithmLZ4:  NewLZ4Codec(),
	AlgorithmS2:   NewS2Codec(),
	AlgorithmZstd: NewZstdCodec(),
}

// GetCodec retrieves the built-in Codec for the given algorithm.
func GetCodec(alg Algorithm) (Codec, error) {
	if codec, ok := builtinCodecs[alg]; ok {
		return codec, nil
	}

	return nil, fmt.Errorf("slabcache: unsupported algorithm: %s", alg)
}
