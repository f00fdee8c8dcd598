// ABOUTME: Selection cache holding the most recent trimmed terminal selection
// ABOUTME: Last write wins; read back when the platform clipboard is unreadable

package clipboard

import (
	"strings"
	"sync"
)

// Cache holds the last captured selection. The zero value is ready to use.
type Cache struct {
	mu   sync.RWMutex
	last string
}

// Capture trims surrounding whitespace from raw, stores it and returns it.
func (c *Cache) Capture(raw string) string {
	s := strings.TrimSpace(raw)
	c.mu.Lock()
	c.last = s
	c.mu.Unlock()
	return s
}

// Last returns the most recently captured selection, or "".
func (c *Cache) Last() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.last
}
