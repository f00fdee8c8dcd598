// ABOUTME: ProcessTerminal implements Surface over the process's own TTY using golang.org/x/term.
// ABOUTME: Manages raw mode, mode toggles and the stdin read loop; resize handling is platform-specific.

package terminal

import (
	"context"
	"fmt"
	"io"
	"os"
	"sync"

	"golang.org/x/term"

	"github.com/mauromedda/lunaterm/pkg/tui/input"
)

// ProcessTerminal is a real terminal backed by os.Stdin, os.Stdout and x/term.
type ProcessTerminal struct {
	Events

	in  *os.File
	out *os.File

	mu         sync.Mutex
	oldState   *term.State
	mounted    bool
	stopResize func()
}

// NewProcessTerminal returns a ProcessTerminal ready for use.
func NewProcessTerminal() *ProcessTerminal {
	return &ProcessTerminal{in: os.Stdin, out: os.Stdout}
}

// EnterRawMode switches stdin to raw mode, saving the previous state.
func (t *ProcessTerminal) EnterRawMode() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	state, err := term.MakeRaw(int(t.in.Fd()))
	if err != nil {
		return fmt.Errorf("entering raw mode: %w", err)
	}
	t.oldState = state
	return nil
}

// ExitRawMode restores the terminal to its previous state.
func (t *ProcessTerminal) ExitRawMode() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.oldState == nil {
		return nil
	}
	if err := term.Restore(int(t.in.Fd()), t.oldState); err != nil {
		return fmt.Errorf("exiting raw mode: %w", err)
	}
	t.oldState = nil
	return nil
}

// Size returns the current terminal dimensions.
func (t *ProcessTerminal) Size() (width, height int, err error) {
	w, h, err := term.GetSize(int(t.out.Fd()))
	if err != nil {
		return 0, 0, fmt.Errorf("getting terminal size: %w", err)
	}
	return w, h, nil
}

// Dimensions returns the cell size plus pixel size where the platform
// reports it. Errors yield the zero value.
func (t *ProcessTerminal) Dimensions() Dimensions {
	w, h, err := t.Size()
	if err != nil {
		return Dimensions{}
	}
	d := Dimensions{Cols: w, Rows: h}
	d.WidthPx, d.HeightPx = t.pixelSize()
	return d
}

// Write sends bytes to os.Stdout.
func (t *ProcessTerminal) Write(p []byte) (int, error) {
	n, err := t.out.Write(p)
	if err != nil {
		return n, fmt.Errorf("writing to stdout: %w", err)
	}
	return n, nil
}

// Mount enters raw mode, enables reporting and starts resize notifications.
// Mounting twice is a no-op.
func (t *ProcessTerminal) Mount() error {
	t.mu.Lock()
	mounted := t.mounted
	t.mu.Unlock()
	if mounted {
		return nil
	}

	if err := t.EnterRawMode(); err != nil {
		return err
	}
	if _, err := io.WriteString(t.out, mountSeq); err != nil {
		_ = t.ExitRawMode()
		return fmt.Errorf("enabling terminal reporting: %w", err)
	}

	stop := t.startResizeListener()
	t.mu.Lock()
	t.mounted = true
	t.stopResize = stop
	t.mu.Unlock()
	return nil
}

// Unmount disables reporting and restores the terminal.
func (t *ProcessTerminal) Unmount() error {
	t.mu.Lock()
	if !t.mounted {
		t.mu.Unlock()
		return nil
	}
	t.mounted = false
	stop := t.stopResize
	t.stopResize = nil
	t.mu.Unlock()

	if stop != nil {
		stop()
	}
	_, _ = io.WriteString(t.out, unmountSeq)
	return t.ExitRawMode()
}

// Run reads stdin and dispatches input until ctx is cancelled or stdin closes.
func (t *ProcessTerminal) Run(ctx context.Context) error {
	return input.NewStdinBuffer(t.in, t.Dispatch).Start(ctx)
}

var _ Surface = (*ProcessTerminal)(nil)
