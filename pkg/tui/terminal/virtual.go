// ABOUTME: VirtualTerminal implements Surface for testing without a real TTY.
// ABOUTME: Captures output, tracks raw-mode and mount calls, and injects host input on demand.

package terminal

import (
	"bytes"
	"fmt"
	"sync"
)

// VirtualTerminal is a fake Surface for unit tests.
type VirtualTerminal struct {
	Events

	mu         sync.Mutex
	buf        bytes.Buffer
	dims       Dimensions
	rawMode    bool
	mounted    bool
	enterCount int
	exitCount  int
}

// NewVirtualTerminal returns a VirtualTerminal with the given dimensions.
func NewVirtualTerminal(width, height int) *VirtualTerminal {
	return &VirtualTerminal{dims: Dimensions{Cols: width, Rows: height}}
}

// EnterRawMode records a raw-mode entry.
func (v *VirtualTerminal) EnterRawMode() error {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.rawMode = true
	v.enterCount++
	return nil
}

// ExitRawMode records a raw-mode exit.
func (v *VirtualTerminal) ExitRawMode() error {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.rawMode = false
	v.exitCount++
	return nil
}

// Size returns the configured terminal dimensions.
func (v *VirtualTerminal) Size() (width, height int, err error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	return v.dims.Cols, v.dims.Rows, nil
}

func (v *VirtualTerminal) Dimensions() Dimensions {
	v.mu.Lock()
	defer v.mu.Unlock()

	return v.dims
}

// Write appends data to the internal buffer.
func (v *VirtualTerminal) Write(p []byte) (int, error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	n, err := v.buf.Write(p)
	if err != nil {
		return n, fmt.Errorf("writing to virtual buffer: %w", err)
	}
	return n, nil
}

// Mount enters raw mode and writes the reporting toggles.
func (v *VirtualTerminal) Mount() error {
	v.mu.Lock()
	if v.mounted {
		v.mu.Unlock()
		return nil
	}
	v.mounted = true
	v.mu.Unlock()

	if err := v.EnterRawMode(); err != nil {
		return err
	}
	_, err := v.Write([]byte(mountSeq))
	return err
}

// Unmount reverses Mount.
func (v *VirtualTerminal) Unmount() error {
	v.mu.Lock()
	if !v.mounted {
		v.mu.Unlock()
		return nil
	}
	v.mounted = false
	v.mu.Unlock()

	if _, err := v.Write([]byte(unmountSeq)); err != nil {
		return err
	}
	return v.ExitRawMode()
}

// --- Test helpers (not part of Surface) ---

// Inject dispatches data as if it had been read from the host.
func (v *VirtualTerminal) Inject(data string) {
	v.Dispatch(data)
}

// Output returns everything written so far.
func (v *VirtualTerminal) Output() string {
	v.mu.Lock()
	defer v.mu.Unlock()

	return v.buf.String()
}

// Reset clears the output buffer.
func (v *VirtualTerminal) Reset() {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.buf.Reset()
}

// IsRawMode reports whether raw mode is currently active.
func (v *VirtualTerminal) IsRawMode() bool {
	v.mu.Lock()
	defer v.mu.Unlock()

	return v.rawMode
}

// IsMounted reports whether Mount has been called without Unmount.
func (v *VirtualTerminal) IsMounted() bool {
	v.mu.Lock()
	defer v.mu.Unlock()

	return v.mounted
}

// EnterCount returns how many times EnterRawMode was called.
func (v *VirtualTerminal) EnterCount() int {
	v.mu.Lock()
	defer v.mu.Unlock()

	return v.enterCount
}

// ExitCount returns how many times ExitRawMode was called.
func (v *VirtualTerminal) ExitCount() int {
	v.mu.Lock()
	defer v.mu.Unlock()

	return v.exitCount
}

// SetSize updates the cell dimensions and notifies resize listeners.
func (v *VirtualTerminal) SetSize(width, height int) {
	v.SetDimensions(Dimensions{Cols: width, Rows: height})
}

// SetDimensions replaces all dimensions and notifies resize listeners.
func (v *VirtualTerminal) SetDimensions(d Dimensions) {
	v.mu.Lock()
	v.dims = d
	v.mu.Unlock()

	v.EmitResize(d)
}

var _ Surface = (*VirtualTerminal)(nil)
