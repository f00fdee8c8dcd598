// ABOUTME: Emulator abstraction owned by a session: remote output in, selection and size out
// ABOUTME: Options mirror what a session configures at creation (font metrics, theme, scrollback)

package emulator

import (
	"github.com/mauromedda/lunaterm/pkg/tui/key"
	"github.com/mauromedda/lunaterm/pkg/tui/theme"
)

// FontFamily is the fixed monospace stack sessions are created with.
const FontFamily = `monaco, Consolas, "Lucida Console", monospace`

// DefaultScrollback is the scrollback capacity in lines.
const DefaultScrollback = 5000

// Options configures a new emulator.
type Options struct {
	Cols, Rows            int
	FontSize              int
	LineHeight            float64
	FontFamily            string
	RightClickSelectsWord bool
	Theme                 *theme.Theme
	Scrollback            int
}

// Position is a zero-based cell coordinate.
type Position struct {
	Row int
	Col int
}

// Emulator is the terminal state a session drives. Implementations must be
// safe for concurrent use: output arrives on the transport goroutine while
// input events arrive on the surface goroutine.
type Emulator interface {
	// Write feeds remote output into the emulator.
	Write(p []byte) (int, error)

	Resize(cols, rows int)
	Size() (cols, rows int)

	Focus()
	Blur()
	Focused() bool

	HasSelection() bool
	Selection() string
	Select(start, end Position)
	ClearSelection()
	// HandleMouse applies a selection gesture and reports whether the
	// selection changed.
	HandleMouse(ev key.MouseEvent) bool
	// OnSelectionChange registers fn and returns its disposer.
	OnSelectionChange(fn func()) (dispose func())

	SetTheme(th *theme.Theme)
	Theme() *theme.Theme
	Options() Options

	ScrollbackLen() int

	// Modes requested by the remote program.
	BracketedPaste() bool
	MouseReporting() bool
	FocusReporting() bool
}
