package ui

import (
	"hash/fnv"
	"sync"
)

// RenderCache memoizes markdown output by content hash. The results summary
// is re-rendered on every resize and after each restart, and glamour is slow
// enough for that to show.
type RenderCache struct {
	next    MarkdownRenderer
	maxSize int

	mu    sync.Mutex
	cache map[uint64]string
	order []uint64
}

// NewRenderCache wraps next. maxSize <= 0 means 32 entries.
func NewRenderCache(next MarkdownRenderer, maxSize int) *RenderCache {
	if maxSize <= 0 {
		maxSize = 32
	}
	return &RenderCache{
		next:    next,
		maxSize: maxSize,
		cache:   make(map[uint64]string, maxSize),
	}
}

// computeHash computes a FNV-1a hash for cache keys.
func computeHash(content string) uint64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(content))
	return h.Sum64()
}

// Render implements MarkdownRenderer. Errors are not cached. Without an
// underlying renderer the content is returned as is.
func (rc *RenderCache) Render(content string) (string, error) {
	key := computeHash(content)

	rc.mu.Lock()
	if out, ok := rc.cache[key]; ok {
		rc.mu.Unlock()
		return out, nil
	}
	next := rc.next
	rc.mu.Unlock()

	if next == nil {
		return content, nil
	}
	out, err := next.Render(content)
	if err != nil {
		return "", err
	}

	rc.mu.Lock()
	defer rc.mu.Unlock()
	if _, ok := rc.cache[key]; !ok {
		if len(rc.order) >= rc.maxSize {
			oldest := rc.order[0]
			rc.order = rc.order[1:]
			delete(rc.cache, oldest)
		}
		rc.order = append(rc.order, key)
	}
	rc.cache[key] = out
	return out, nil
}

// Len reports the number of cached entries.
func (rc *RenderCache) Len() int {
	rc.mu.Lock()
	defer rc.mu.Unlock()
	return len(rc.cache)
}

// Reset swaps the underlying renderer and drops everything rendered by the
// old one. Output depends on the word-wrap width, so a resize needs this.
func (rc *RenderCache) Reset(next MarkdownRenderer) {
	rc.mu.Lock()
	rc.next = next
	rc.mu.Unlock()
	rc.Clear()
}

// Clear empties the cache.
func (rc *RenderCache) Clear() {
	rc.mu.Lock()
	defer rc.mu.Unlock()
	rc.cache = make(map[uint64]string, rc.maxSize)
	rc.order = nil
}
