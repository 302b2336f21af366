package numeric

import (
	"fmt"

	"github.com/go-mat/mdecode/mattype"
)

// WarningKind classifies a non-fatal decode condition (§7).
type WarningKind uint8

const (
	// WarnUnsupportedConversion reports that a (DstClass, SrcType) pair
	// fell outside the supported conversion matrix (§4.3); the caller
	// asked for a combination that silently yields zero elements instead
	// of failing the whole variable.
	WarnUnsupportedConversion WarningKind = iota + 1
)

// Warning is a non-fatal condition surfaced alongside a successful
// decode, as opposed to the sentinel errors in package errs which abort
// the read in progress.
type Warning struct {
	Kind    WarningKind
	Dst     DstClassName
	Src     SrcTypeName
	Context string
}

// DstClassName and SrcTypeName hold the human-readable String() form of
// a mattype.DstClass/mattype.SrcType, so a Warning's fields read
// directly in a log line without the caller calling String() itself.
type DstClassName string
type SrcTypeName string

// CheckSupported reports a non-fatal Warning when (D, src) falls
// outside the supported conversion matrix (§4.3): ReadData/ReadChar
// already return (0, nil) for this case so the cursor is left
// untouched, but §7 additionally wants the condition surfaced as a
// value the caller can route to its own warning sink rather than
// silently treating "zero bytes consumed" as ordinary success.
func CheckSupported[D Numeric](src mattype.SrcType) *Warning {
	dst := DstClassOf[D]()
	if mattype.Supported(dst, src) {
		return nil
	}

	return &Warning{
		Kind: WarnUnsupportedConversion,
		Dst:  DstClassName(dst.String()),
		Src:  SrcTypeName(src.String()),
	}
}

func (w Warning) Error() string {
	switch w.Kind {
	case WarnUnsupportedConversion:
		return fmt.Sprintf("mdecode: unsupported conversion %s <- %s (%s)", w.Dst, w.Src, w.Context)
	default:
		return fmt.Sprintf("mdecode: warning (%s)", w.Context)
	}
}
