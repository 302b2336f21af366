package numeric

import (
	"bytes"
	"testing"

	"github.com/klauspost/compress/zlib"
	"github.com/stretchr/testify/require"

	"github.com/go-mat/mdecode/inflate"
)

// mustOpenStream zlib-compresses data and inflates it back into a
// Stream, the round trip every compressed-path test in this package
// needs to get from a plain byte fixture to an inflate.Stream.
func mustOpenStream(t *testing.T, data []byte) *inflate.Stream {
	t.Helper()

	var buf bytes.Buffer

	w := zlib.NewWriter(&buf)
	_, err := w.Write(data)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	s, err := inflate.Open(&buf)
	require.NoError(t, err)

	return s
}
