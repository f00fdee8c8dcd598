// ABOUTME: Unix-specific SIGWINCH handling and pixel-size queries for ProcessTerminal.
// ABOUTME: Resize events re-read the window size and notify resize listeners.

//go:build unix

package terminal

import (
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sys/unix"
)

// startResizeListener sets up a SIGWINCH handler that emits the new
// dimensions. The returned func stops it.
func (t *ProcessTerminal) startResizeListener() func() {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGWINCH)
	done := make(chan struct{})

	go func() {
		for {
			select {
			case <-done:
				return
			case <-sigCh:
				d := t.Dimensions()
				if d.Cols == 0 {
					continue
				}
				t.EmitResize(d)
			}
		}
	}()

	return func() {
		signal.Stop(sigCh)
		close(done)
	}
}

func (t *ProcessTerminal) pixelSize() (int, int) {
	ws, err := unix.IoctlGetWinsize(int(t.out.Fd()), unix.TIOCGWINSZ)
	if err != nil {
		return 0, 0
	}
	return int(ws.Xpixel), int(ws.Ypixel)
}
