package numeric

import (
	"github.com/go-mat/mdecode/byteswap"
	"github.com/go-mat/mdecode/mattype"
)

// ComplexSlab holds the real and imaginary planes of a complex-valued
// slab read (§6 Supplemented Features). MAT v5 stores complex arrays as
// two back-to-back real arrays of identical shape; the decoder core
// otherwise has no notion of a complex number, so this is a thin
// wrapper pairing two independent real-plane slab reads rather than a
// third numeric element kind.
type ComplexSlab[D Numeric] struct {
	Real []D
	Imag []D
}

// ReadComplexSlabN reads a rank-R strided slab twice, once against the
// real-plane cursor and once against the imaginary-plane cursor, and
// pairs the results. The two cursors are independent FileCursors, each
// seeked by the caller to its own plane offset; ReadCompressedComplexSlabN
// is the variant that takes two InflateCursors.
func ReadComplexSlabN[D Numeric](realCur, imagCur *FileCursor, src mattype.SrcType, bo byteswap.Flag, desc SlabDescriptor) (ComplexSlab[D], error) {
	n := desc.NumElements()
	out := ComplexSlab[D]{Real: make([]D, n), Imag: make([]D, n)}

	if _, err := ReadSlabN(realCur, out.Real, src, bo, desc); err != nil {
		return out, err
	}

	if _, err := ReadSlabN(imagCur, out.Imag, src, bo, desc); err != nil {
		return out, err
	}

	return out, nil
}

// ReadCompressedComplexSlabN is the compressed-source counterpart of
// ReadComplexSlabN.
func ReadCompressedComplexSlabN[D Numeric](realCur, imagCur *InflateCursor, src mattype.SrcType, bo byteswap.Flag, desc SlabDescriptor) (ComplexSlab[D], error) {
	n := desc.NumElements()
	out := ComplexSlab[D]{Real: make([]D, n), Imag: make([]D, n)}

	if _, err := ReadCompressedSlabN(realCur, out.Real, src, bo, desc); err != nil {
		return out, err
	}

	if _, err := ReadCompressedSlabN(imagCur, out.Imag, src, bo, desc); err != nil {
		return out, err
	}

	return out, nil
}
