// ABOUTME: SGR (1006) mouse report parsing plus focus-report and mode toggling sequences.
// ABOUTME: Right-click reports drive the context-menu path; focus-in reports stand in for pointer-enter.

package key

import (
	"strconv"
	"strings"
)

// Terminal mode toggles the surface writes when it mounts and unmounts.
const (
	EnableMouse           = "\x1b[?1002h\x1b[?1006h"
	DisableMouse          = "\x1b[?1006l\x1b[?1002l"
	EnableFocusReport     = "\x1b[?1004h"
	DisableFocusReport    = "\x1b[?1004l"
	EnableBracketedPaste  = "\x1b[?2004h"
	DisableBracketedPaste = "\x1b[?2004l"

	FocusIn  = "\x1b[I"
	FocusOut = "\x1b[O"

	PasteStart = "\x1b[200~"
	PasteEnd   = "\x1b[201~"
)

// MouseButton identifies the button in a mouse report.
type MouseButton int

const (
	MouseLeft MouseButton = iota
	MouseMiddle
	MouseRight
	MouseNone
	MouseWheelUp
	MouseWheelDown
)

// MouseAction distinguishes presses, releases and drag motion.
type MouseAction int

const (
	MousePress MouseAction = iota
	MouseRelease
	MouseMotion
)

// MouseEvent is a decoded SGR mouse report. Col and Row are zero-based cells.
type MouseEvent struct {
	Button MouseButton
	Action MouseAction
	Col    int
	Row    int
	Shift  bool
	Alt    bool
	Ctrl   bool
}

// SGR button-code bits.
const (
	sgrShift  = 4
	sgrAlt    = 8
	sgrCtrl   = 16
	sgrMotion = 32
	sgrWheel  = 64
)

// ParseMouse decodes "CSI < b ; x ; y M|m". Returns false for anything else.
func ParseMouse(data string) (MouseEvent, bool) {
	if len(data) < 9 || !strings.HasPrefix(data, "\x1b[<") {
		return MouseEvent{}, false
	}
	final := data[len(data)-1]
	if final != 'M' && final != 'm' {
		return MouseEvent{}, false
	}

	parts := strings.Split(data[3:len(data)-1], ";")
	if len(parts) != 3 {
		return MouseEvent{}, false
	}
	var nums [3]int
	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil || n < 0 {
			return MouseEvent{}, false
		}
		nums[i] = n
	}
	code, x, y := nums[0], nums[1], nums[2]
	if x < 1 || y < 1 {
		return MouseEvent{}, false
	}

	ev := MouseEvent{
		Col:   x - 1,
		Row:   y - 1,
		Shift: code&sgrShift != 0,
		Alt:   code&sgrAlt != 0,
		Ctrl:  code&sgrCtrl != 0,
	}

	low := code & 3
	switch {
	case code&sgrWheel != 0:
		ev.Button = MouseWheelUp
		if low == 1 {
			ev.Button = MouseWheelDown
		}
	case low == 3:
		ev.Button = MouseNone
	default:
		ev.Button = MouseButton(low)
	}

	switch {
	case code&sgrMotion != 0:
		ev.Action = MouseMotion
	case final == 'm':
		ev.Action = MouseRelease
	default:
		ev.Action = MousePress
	}
	return ev, true
}

// SGR encodes the event back into an SGR report.
func (m MouseEvent) SGR() string {
	var code int
	switch m.Button {
	case MouseWheelUp:
		code = sgrWheel
	case MouseWheelDown:
		code = sgrWheel | 1
	default:
		code = int(m.Button)
	}
	if m.Shift {
		code |= sgrShift
	}
	if m.Alt {
		code |= sgrAlt
	}
	if m.Ctrl {
		code |= sgrCtrl
	}
	if m.Action == MouseMotion {
		code |= sgrMotion
	}
	final := "M"
	if m.Action == MouseRelease {
		final = "m"
	}
	return "\x1b[<" + strconv.Itoa(code) + ";" + strconv.Itoa(m.Col+1) + ";" + strconv.Itoa(m.Row+1) + final
}

// IsContextMenu reports whether the event is a right-button press.
func (m MouseEvent) IsContextMenu() bool {
	return m.Button == MouseRight && m.Action == MousePress
}
