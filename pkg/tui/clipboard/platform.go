//go:build !(js && wasm)

// ABOUTME: Platform clipboard strategy over github.com/atotto/clipboard, and the native default chain
// ABOUTME: Unavailable when the library reports no supported backend

package clipboard

import (
	"context"

	"github.com/atotto/clipboard"

	"github.com/mauromedda/lunaterm/internal/log"
)

// Default returns the native chain: platform clipboard, the user's copy
// command when set, the OS copy command, then the legacy copy over doc.
// Reads try the platform clipboard and then the OS paste command.
func Default(doc Document, copyCommand string, cache *Cache, logger *log.Logger) *Bridge {
	writers := []Writer{Platform{}}
	if user := ParseCommand(copyCommand); user.Path != "" {
		writers = append(writers, user)
	}
	writers = append(writers, DefaultCommand())
	if doc != nil {
		writers = append(writers, NewLegacy(doc, logger))
	}
	return NewBridge(cache, logger, writers, []Reader{Platform{}, DefaultPasteCommand()})
}

// Platform reads and writes the OS clipboard.
type Platform struct{}

func (Platform) Name() string { return "platform" }

func (Platform) Available() bool { return !clipboard.Unsupported }

func (Platform) Write(_ context.Context, text string) error {
	return clipboard.WriteAll(text)
}

func (Platform) Read(_ context.Context) (string, error) {
	return clipboard.ReadAll()
}
