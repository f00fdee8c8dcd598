// ABOUTME: Clipboard bridge: ordered write strategies, read with selection-cache fallback
// ABOUTME: Every strategy reports an Outcome; failures fall through and are never surfaced

package clipboard

import (
	"context"
	"errors"
	"fmt"

	"github.com/mauromedda/lunaterm/internal/log"
)

// ErrUnavailable is reported for a strategy that cannot run in this environment.
var ErrUnavailable = errors.New("clipboard strategy unavailable")

// Writer is one way of putting text on the clipboard.
type Writer interface {
	Name() string
	Available() bool
	Write(ctx context.Context, text string) error
}

// Reader is one way of reading text from the clipboard.
type Reader interface {
	Name() string
	Available() bool
	Read(ctx context.Context) (string, error)
}

// Outcome records the result of one strategy attempt.
type Outcome struct {
	Strategy string
	OK       bool
	Err      error
}

// Bridge synchronizes the terminal selection with the clipboard.
type Bridge struct {
	writers []Writer
	readers []Reader
	cache   *Cache
	log     *log.Logger
}

// NewBridge returns a bridge that tries writers and readers in the given order.
// A nil cache gets a fresh one; a nil logger discards.
func NewBridge(cache *Cache, logger *log.Logger, writers []Writer, readers []Reader) *Bridge {
	if cache == nil {
		cache = &Cache{}
	}
	if logger == nil {
		logger = log.Nop()
	}
	return &Bridge{writers: writers, readers: readers, cache: cache, log: logger}
}

// Cache returns the bridge's selection cache.
func (b *Bridge) Cache() *Cache {
	return b.cache
}

// Strategies returns the writer names in the order Sync tries them.
func (b *Bridge) Strategies() []string {
	names := make([]string, len(b.writers))
	for i, w := range b.writers {
		names[i] = w.Name()
	}
	return names
}

// Capture stores the trimmed selection in the cache and returns it.
func (b *Bridge) Capture(raw string) string {
	return b.cache.Capture(raw)
}

// Sync writes text through the first strategy that succeeds.
// The returned Outcome names the winner, or the last failure when none succeeded.
func (b *Bridge) Sync(ctx context.Context, text string) Outcome {
	last := Outcome{Err: ErrUnavailable}
	for _, w := range b.writers {
		if !w.Available() {
			b.log.Debug("%s: unavailable, trying next", w.Name())
			continue
		}
		out := attempt(w.Name(), func() error { return w.Write(ctx, text) })
		if out.OK {
			return out
		}
		b.log.Debug("%s: %v", w.Name(), out.Err)
		last = out
	}
	return last
}

// CaptureAndSync caches the selection, then syncs the cached value.
func (b *Bridge) CaptureAndSync(ctx context.Context, raw string) Outcome {
	return b.Sync(ctx, b.Capture(raw))
}

// Read returns the clipboard contents. When no reader succeeds it returns the
// cached selection, which may be empty.
func (b *Bridge) Read(ctx context.Context) string {
	for _, r := range b.readers {
		if !r.Available() {
			continue
		}
		var text string
		out := attempt(r.Name(), func() error {
			var err error
			text, err = r.Read(ctx)
			return err
		})
		if out.OK {
			return text
		}
		b.log.Debug("%s read: %v", r.Name(), out.Err)
	}
	return b.cache.Last()
}

// attempt runs fn and converts an error or a panic into an Outcome.
func attempt(name string, fn func() error) (out Outcome) {
	out.Strategy = name
	defer func() {
		if r := recover(); r != nil {
			out.OK = false
			out.Err = fmt.Errorf("%s panicked: %v", name, r)
		}
	}()
	if err := fn(); err != nil {
		out.Err = err
		return out
	}
	out.OK = true
	return out
}
