// ABOUTME: Defines the Terminal and Surface interfaces a session mounts into.
// ABOUTME: Terminal covers raw mode, size and output; Surface adds mode toggles and input listeners.

package terminal

import "github.com/mauromedda/lunaterm/pkg/tui/key"

// Terminal abstracts low-level terminal operations: raw mode,
// size queries and output writing.
type Terminal interface {
	EnterRawMode() error
	ExitRawMode() error
	Size() (width, height int, err error)
	Write(p []byte) (n int, err error)
}

// Dimensions is the space a surface offers, in cells and, when the host
// reports them, pixels.
type Dimensions struct {
	Cols, Rows        int
	WidthPx, HeightPx int
}

// Surface is the host a session mounts into. Every On* call registers one
// listener and returns a disposer that removes it; disposers are idempotent.
type Surface interface {
	Terminal

	// Mount enters raw mode and enables mouse, focus and paste reporting.
	Mount() error
	// Unmount reverses Mount.
	Unmount() error
	Dimensions() Dimensions

	OnResize(fn func(Dimensions)) (dispose func())
	OnKey(fn func(key.Input)) (dispose func())
	OnMouse(fn func(key.MouseEvent)) (dispose func())
	OnContextMenu(fn func(key.MouseEvent)) (dispose func())
	OnFocus(fn func()) (dispose func())
	OnBlur(fn func()) (dispose func())
	OnPaste(fn func(text string)) (dispose func())
}

// Mount and Unmount sequences.
const (
	mountSeq   = key.EnableMouse + key.EnableFocusReport + key.EnableBracketedPaste
	unmountSeq = key.DisableBracketedPaste + key.DisableFocusReport + key.DisableMouse
)
