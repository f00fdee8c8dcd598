// ABOUTME: Defines the Key type and ParseKey for raw terminal keyboard input.
// ABOUTME: Handles printable runes, Ctrl+letter bytes, and delegates escape sequences to the CSI and legacy parsers.

package key

import (
	"fmt"
	"unicode/utf8"
)

// Control codes the input pipeline rewrites or inspects.
const (
	CodeInterrupt = 0x03 // ETX, sent by Ctrl+C
	CodeBackspace = 0x08 // BS, sent by Ctrl+H
	CodeSuspend   = 0x1a // SUB, sent by Ctrl+Z
	CodeDelete    = 0x7f // DEL, sent by the Backspace key on most terminals
)

// Key represents a parsed keyboard input event.
type Key struct {
	Type  KeyType
	Rune  rune // For KeyRune; lowercase letter for Ctrl+letter
	Alt   bool
	Ctrl  bool
	Shift bool
}

// KeyType enumerates the kinds of key events a terminal can send.
type KeyType int

const (
	KeyRune      KeyType = iota // Printable character or Ctrl+letter
	KeyEnter                    // Enter / Return
	KeyTab                      // Tab
	KeyBackTab                  // Shift+Tab
	KeyBackspace                // Backspace / DEL (0x7F)
	KeyDelete                   // Delete key
	KeyUp                       // Arrow up
	KeyDown                     // Arrow down
	KeyLeft                     // Arrow left
	KeyRight                    // Arrow right
	KeyHome                     // Home
	KeyEnd                      // End
	KeyPageUp                   // Page Up
	KeyPageDown                 // Page Down
	KeyEscape                   // Escape
	KeyUnknown                  // Unrecognized input
)

// ParseKey parses raw terminal input data into a Key.
// It handles single runes, control characters, and escape sequences.
func ParseKey(data string) Key {
	if len(data) == 0 {
		return Key{Type: KeyUnknown}
	}

	// Single-byte fast path
	if len(data) == 1 {
		return parseSingleByte(data[0])
	}

	// Escape sequence path
	if data[0] == 0x1b {
		return parseEscapeSequence(data)
	}

	// Multi-byte UTF-8 rune; anything longer is a paste, not a key.
	r, size := utf8.DecodeRuneInString(data)
	if r == utf8.RuneError || size != len(data) {
		return Key{Type: KeyUnknown}
	}
	return Key{Type: KeyRune, Rune: r}
}

// parseSingleByte handles a single-byte input (ASCII or control character).
func parseSingleByte(b byte) Key {
	switch {
	case b == 0x0d:
		return Key{Type: KeyEnter}
	case b == 0x09:
		return Key{Type: KeyTab}
	case b == CodeDelete:
		return Key{Type: KeyBackspace}
	case b == 0x1b:
		return Key{Type: KeyEscape}
	case b >= 0x20 && b <= 0x7e:
		return Key{Type: KeyRune, Rune: rune(b)}
	case b >= 0x01 && b <= 0x1a:
		// Ctrl+A..Ctrl+Z arrive as 0x01..0x1A.
		return Key{Type: KeyRune, Rune: rune('a' + b - 1), Ctrl: true}
	case b == 0x00:
		return Key{Type: KeyRune, Rune: '@', Ctrl: true}
	}
	return Key{Type: KeyUnknown}
}

// parseEscapeSequence delegates to the CSI and legacy parsers for ESC-prefixed data.
func parseEscapeSequence(data string) Key {
	if k, ok := ParseCSIKey(data); ok {
		return k
	}

	if k, ok := parseLegacy(data); ok {
		return k
	}

	// Alt+letter: ESC followed by a single printable byte (0x20..0x7e)
	if len(data) == 2 && data[1] >= 0x20 && data[1] <= 0x7e {
		return Key{Type: KeyRune, Rune: rune(data[1]), Alt: true}
	}

	// Alt+Backspace
	if data == "\x1b\x7f" {
		return Key{Type: KeyBackspace, Alt: true}
	}

	// ESC-prefixed sequence: rxvt-style Alt+<key>.
	if len(data) > 2 && data[1] == 0x1b {
		if k := parseEscapeSequence(data[1:]); k.Type != KeyUnknown {
			k.Alt = true
			return k
		}
	}

	return Key{Type: KeyUnknown}
}

// keyTypeNames provides human-readable labels for each KeyType.
var keyTypeNames = map[KeyType]string{
	KeyEnter:     "Enter",
	KeyTab:       "Tab",
	KeyBackTab:   "BackTab",
	KeyBackspace: "Backspace",
	KeyDelete:    "Delete",
	KeyUp:        "Up",
	KeyDown:      "Down",
	KeyLeft:      "Left",
	KeyRight:     "Right",
	KeyHome:      "Home",
	KeyEnd:       "End",
	KeyPageUp:    "PageUp",
	KeyPageDown:  "PageDown",
	KeyEscape:    "Escape",
	KeyUnknown:   "Unknown",
}

// String returns a human-readable representation of the Key for debug display.
func (k Key) String() string {
	if k.Type == KeyRune {
		return formatRuneKey(k)
	}
	name, ok := keyTypeNames[k.Type]
	if !ok {
		return "Unknown"
	}
	if k.Alt {
		name = "Alt+" + name
	}
	return name
}

// formatRuneKey builds a display string for rune keys with modifiers.
func formatRuneKey(k Key) string {
	s := string(k.Rune)
	if k.Ctrl {
		s = fmt.Sprintf("Ctrl+%s", s)
	}
	if k.Alt {
		s = fmt.Sprintf("Alt+%s", s)
	}
	return s
}
