package slabcache

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCache_PutGetRoundTrip(t *testing.T) {
	for _, alg := range []Algorithm{AlgorithmNone, AlgorithmLZ4, AlgorithmS2, AlgorithmZstd} {
		t.Run(alg.String(), func(t *testing.T) {
			c, err := NewCache(alg)
			require.NoError(t, err)

			key := Key{Offset: 128, SrcTag: 5, DstTag: 1, Start: []int{0}, Stride: []int{1}, Edge: []int{10}}
			payload := []byte("decoded slab payload bytes, repeated repeated repeated")

			require.NoError(t, c.Put(key, payload))

			got, ok, err := c.Get(key)
			require.NoError(t, err)
			require.True(t, ok)
			require.Equal(t, payload, got)
		})
	}
}

func TestCache_GetMissReturnsFalse(t *testing.T) {
	c, err := NewCache(AlgorithmNone)
	require.NoError(t, err)

	_, ok, err := c.Get(Key{SrcTag: 1})
	require.NoError(t, err)
	require.False(t, ok)
}

func TestCache_DifferentKeysDoNotCollide(t *testing.T) {
	c, err := NewCache(AlgorithmLZ4)
	require.NoError(t, err)

	k1 := Key{SrcTag: 1, Start: []int{0}, Stride: []int{1}, Edge: []int{2}}
	k2 := Key{SrcTag: 2, Start: []int{0}, Stride: []int{1}, Edge: []int{2}}

	require.NoError(t, c.Put(k1, []byte("one")))
	require.NoError(t, c.Put(k2, []byte("two")))

	got1, ok, err := c.Get(k1)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, []byte("one"), got1)

	got2, ok, err := c.Get(k2)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, []byte("two"), got2)
}

func TestCache_Delete(t *testing.T) {
	c, err := NewCache(AlgorithmNone)
	require.NoError(t, err)

	key := Key{SrcTag: 9}
	require.NoError(t, c.Put(key, []byte("x")))
	require.Equal(t, 1, c.Len())

	c.Delete(key)
	require.Equal(t, 0, c.Len())

	_, ok, err := c.Get(key)
	require.NoError(t, err)
	require.False(t, ok)
}

func TestGetCodec_UnknownAlgorithm(t *testing.T) {
	_, err := GetCodec(Algorithm(99))
	require.Error(t, err)
}
