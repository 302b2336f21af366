package numeric

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewContext_Defaults(t *testing.T) {
	ctx, err := NewContext()
	require.NoError(t, err)
	require.False(t, bool(ctx.Swap))
	require.False(t, ctx.UseCache)
}

func TestNewContext_WithByteSwap(t *testing.T) {
	ctx, err := NewContext(WithByteSwap(true))
	require.NoError(t, err)
	require.True(t, bool(ctx.Swap))
}

func TestNewContext_WithSlabCache(t *testing.T) {
	ctx, err := NewContext(WithSlabCache(HintZstd))
	require.NoError(t, err)
	require.True(t, ctx.UseCache)
	require.Equal(t, HintZstd, ctx.CachePlan)
}
