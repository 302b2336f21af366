package slabcache

import (
	"sync"

	"github.com/go-mat/mdecode/internal/pool"
)

// Cache is a process-local, in-memory cache of decoded slab payloads,
// keyed by Key and stored compressed with a single Codec chosen at
// construction. It has no relationship to the MAT file's own
// DEFLATE-compressed variables (package inflate); this is a decode
// result cache, sitting entirely downstream of the typed element reader
// and slab readers in package numeric.
type Cache struct {
	mu    sync.Mutex
	codec Codec
	data  map[uint64][]byte
}

// NewCache creates a Cache backed by the given compression algorithm.
func NewCache(alg Algorithm) (*Cache, error) {
	codec, err := GetCodec(alg)
	if err != nil {
		return nil, err
	}

	return &Cache{codec: codec, data: make(map[uint64][]byte)}, nil
}

// Get returns the decompressed payload previously stored under k, if present.
func (c *Cache) Get(k Key) ([]byte, bool, error) {
	id := k.id()

	c.mu.Lock()
	raw, ok := c.data[id]
	c.mu.Unlock()

	if !ok {
		return nil, false, nil
	}

	out, err := c.codec.Decompress(raw)
	if err != nil {
		return nil, false, err
	}

	return out, true, nil
}

// Put compresses payload and stores it under k, replacing any prior entry.
func (c *Cache) Put(k Key, payload []byte) error {
	buf := pool.GetSlabBuffer()
	defer pool.PutSlabBuffer(buf)

	buf.MustWrite(payload)

	compressed, err := c.codec.Compress(buf.Bytes())
	if err != nil {
		return err
	}

	stored := make([]byte, len(compressed))
	copy(stored, compressed)

	id := k.id()

	c.mu.Lock()
	c.data[id] = stored
	c.mu.Unlock()

	return nil
}

// Delete removes any entry stored under k.
func (c *Cache) Delete(k Key) {
	id := k.id()

	c.mu.Lock()
	delete(c.data, id)
	c.mu.Unlock()
}

// Len returns the number of entries currently cached.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return len(c.data)
}
