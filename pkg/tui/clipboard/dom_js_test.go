//go:build js && wasm

// ABOUTME: Tests for the browser chain; compiled for js/wasm only
// ABOUTME: Runs the DOM copy when a document is present (browser test runners)

package clipboard

import (
	"context"
	"slices"
	"syscall/js"
	"testing"
)

var (
	_ Writer   = Navigator{}
	_ Reader   = Navigator{}
	_ Document = (*DOMDocument)(nil)
)

func TestDefault_BrowserChain(t *testing.T) {
	if js.Global().Get("document").IsUndefined() {
		t.Skip("no DOM document in this runtime")
	}
	br := Default(nil, "pbcopy", nil, nil)
	if got, want := br.Strategies(), []string{"navigator", "legacy"}; !slices.Equal(got, want) {
		t.Errorf("Strategies() = %v, want %v", got, want)
	}
	_ = br.Sync(context.Background(), "hello")
}
