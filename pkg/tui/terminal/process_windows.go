// ABOUTME: Windows stubs for ProcessTerminal resize handling and pixel size.
// ABOUTME: Windows does not use SIGWINCH signals and reports no pixel size.

//go:build windows

package terminal

// startResizeListener is a no-op on Windows.
// Windows terminal resize detection requires SetConsoleMode and
// ReadConsoleInput, which is left for future implementation.
func (t *ProcessTerminal) startResizeListener() func() {
	return func() {}
}

func (t *ProcessTerminal) pixelSize() (int, int) {
	return 0, 0
}
