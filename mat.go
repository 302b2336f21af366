// Package mdecode implements the MAT v5 binary numeric-payload decoder
// core: a primitive byte-swap codec, a DEFLATE inflate adapter, a typed
// element reader spanning every (on-disk type, in-memory class) pair,
// and linear and N-D strided slab readers built on top of it.
//
// The package does not parse the MAT container format itself (tags,
// array headers, variable names); it implements the numeric payload
// core an envelope parser hands typed byte ranges to, exactly the
// boundary the original specification draws.
package mdecode

import (
	"io"
	"unsafe"

	"github.com/go-mat/mdecode/errs"
	"github.com/go-mat/mdecode/inflate"
	"github.com/go-mat/mdecode/mattype"
	"github.com/go-mat/mdecode/numeric"
	"github.com/go-mat/mdecode/slabcache"
)

// Version reports the decoder core's semantic version.
const Version = "0.1.0"

// Reader decodes typed numeric elements and slabs out of one variable's
// payload, against either a seekable uncompressed source or an inflated
// compressed source, using a shared Context for byte-order and caching
// policy.
type Reader struct {
	ctx   *numeric.Context
	file  *numeric.FileCursor
	infl  *numeric.InflateCursor
	cache *slabcache.Cache
}

// NewReader wraps an uncompressed variable payload positioned at its first byte.
func NewReader(rs io.ReadSeeker, opts ...numeric.Option) (*Reader, error) {
	ctx, err := numeric.NewContext(opts...)
	if err != nil {
		return nil, err
	}

	r := &Reader{ctx: ctx, file: numeric.NewFileCursor(rs)}
	if err := r.initCache(); err != nil {
		return nil, err
	}

	return r, nil
}

// NewCompressedReader inflates the miCOMPRESSED block read from src in
// full and wraps it for typed reads (§4.2).
func NewCompressedReader(src io.Reader, opts ...numeric.Option) (*Reader, error) {
	ctx, err := numeric.NewContext(opts...)
	if err != nil {
		return nil, err
	}

	stream, err := inflate.Open(src)
	if err != nil {
		return nil, err
	}

	r := &Reader{ctx: ctx, infl: numeric.NewInflateCursor(stream)}
	if err := r.initCache(); err != nil {
		return nil, err
	}

	return r, nil
}

func (r *Reader) initCache() error {
	if !r.ctx.UseCache {
		return nil
	}

	cache, err := slabcache.NewCache(cacheAlgorithm(r.ctx.CachePlan))
	if err != nil {
		return err
	}

	r.cache = cache

	return nil
}

func cacheAlgorithm(hint numeric.CompressionHint) slabcache.Algorithm {
	switch hint {
	case numeric.HintLZ4:
		return slabcache.AlgorithmLZ4
	case numeric.HintZstd:
		return slabcache.AlgorithmZstd
	default:
		return slabcache.AlgorithmNone
	}
}

// compressed reports whether this Reader was opened over a compressed source.
func (r *Reader) compressed() bool { return r.infl != nil }

// ReadAll reads every element of a contiguous run of len(dst) values of
// src into dst, converting per the (D, src) policy (§4.3). A non-nil
// Warning means (D, src) fell outside the supported conversion matrix:
// n is 0, err is nil, and dst is untouched (§7's non-fatal contract).
func ReadAll[D numeric.Numeric](r *Reader, dst []D, src mattype.SrcType) (int, *numeric.Warning, error) {
	if w := numeric.CheckSupported[D](src); w != nil {
		return 0, w, nil
	}

	var (
		n   int
		err error
	)

	if r.compressed() {
		n, err = numeric.ReadData(r.infl, dst, src, r.ctx.Swap)
	} else {
		n, err = numeric.ReadData(r.file, dst, src, r.ctx.Swap)
	}

	return n, nil, err
}

// ReadSlab reads a rank-1 or rank-R strided slab (§4.4, §4.5) from
// whichever source this Reader was opened over, transparently serving a
// cached result when the Reader's Context enabled the slab cache (§6).
// A non-nil Warning means (D, src) fell outside the supported
// conversion matrix; dst and err are both nil in that case.
func ReadSlab[D numeric.Numeric](r *Reader, src mattype.SrcType, desc numeric.SlabDescriptor) ([]D, *numeric.Warning, error) {
	if desc.Rank() > numeric.MaxRank {
		return nil, nil, errs.ErrRankOverflow
	}

	if w := numeric.CheckSupported[D](src); w != nil {
		return nil, w, nil
	}

	key := slabKey(src, desc, numeric.DstClassOf[D]())

	if r.cache != nil {
		if raw, ok, err := r.cache.Get(key); err != nil {
			return nil, nil, err
		} else if ok {
			return decodeCachedSlab[D](raw), nil, nil
		}
	}

	dst := make([]D, desc.NumElements())

	var err error
	if r.compressed() {
		_, err = numeric.ReadCompressedSlabN(r.infl, dst, src, r.ctx.Swap, desc)
	} else {
		_, err = numeric.ReadSlabN(r.file, dst, src, r.ctx.Swap, desc)
	}

	if err != nil {
		return nil, nil, err
	}

	if r.cache != nil {
		_ = r.cache.Put(key, encodeCachedSlab(dst))
	}

	return dst, nil, nil
}

func slabKey(src mattype.SrcType, desc numeric.SlabDescriptor, dst mattype.DstClass) slabcache.Key {
	return slabcache.Key{
		SrcTag: uint8(src),
		DstTag: uint8(dst),
		Start:  desc.Start,
		Stride: desc.Stride,
		Edge:   desc.Edge,
	}
}

// encodeCachedSlab reinterprets a decoded slab's backing array as raw
// bytes for storage in the slab cache, the same fixed-width reinterpret
// cast byteswap.hostEndian uses to probe the host's byte order.
func encodeCachedSlab[D numeric.Numeric](data []D) []byte {
	if len(data) == 0 {
		return nil
	}

	sz := int(unsafe.Sizeof(data[0]))

	return unsafe.Slice((*byte)(unsafe.Pointer(&data[0])), sz*len(data))
}

// decodeCachedSlab is the inverse of encodeCachedSlab.
func decodeCachedSlab[D numeric.Numeric](raw []byte) []D {
	var zero D

	sz := int(unsafe.Sizeof(zero))
	if sz == 0 || len(raw) == 0 {
		return nil
	}

	n := len(raw) / sz
	out := make([]D, n)
	copy(unsafe.Slice((*byte)(unsafe.Pointer(&out[0])), sz*n), raw)

	return out
}
