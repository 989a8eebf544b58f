// Package render turns component trees into bytes: an in-memory cache of
// rendered pages for the server and a static export for the CLI.
package render

import (
	"bytes"
	"fmt"

	lru "github.com/hashicorp/golang-lru/v2"
	g "maragu.dev/gomponents"

	"github.com/chiranperera/inner-most/internal/metrics"
)

// Cache keeps rendered pages keyed by a caller-chosen key (path plus any
// state that changes the markup). Content is immutable after load, so entries
// never go stale while the process runs.
type Cache struct {
	pages *lru.Cache[string, []byte]
}

// NewCache returns a cache holding at most size pages. A size of zero or less
// disables caching; every Render call renders.
func NewCache(size int) (*Cache, error) {
	if size <= 0 {
		return &Cache{}, nil
	}
	pages, err := lru.New[string, []byte](size)
	if err != nil {
		return nil, fmt.Errorf("create render cache: %w", err)
	}
	return &Cache{pages: pages}, nil
}

func (c *Cache) Enabled() bool {
	return c != nil && c.pages != nil
}

// Len is the number of cached pages.
func (c *Cache) Len() int {
	if !c.Enabled() {
		return 0
	}
	return c.pages.Len()
}

// Render returns the cached bytes for key, rendering node on a miss. The
// returned slice is shared; callers must not modify it.
func (c *Cache) Render(key string, node g.Node) ([]byte, error) {
	if c.Enabled() {
		if b, ok := c.pages.Get(key); ok {
			metrics.RenderCache.WithLabelValues("hit").Inc()
			return b, nil
		}
		metrics.RenderCache.WithLabelValues("miss").Inc()
	}

	var buf bytes.Buffer
	if err := node.Render(&buf); err != nil {
		return nil, fmt.Errorf("render %s: %w", key, err)
	}
	b := buf.Bytes()

	if c.Enabled() {
		c.pages.Add(key, b)
	}
	return b, nil
}

// Purge drops every cached page.
func (c *Cache) Purge() {
	if c.Enabled() {
		c.pages.Purge()
	}
}
