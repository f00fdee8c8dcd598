// ABOUTME: Table-driven tests for Key parsing covering ASCII, control chars, and escape sequences.
// ABOUTME: Validates ParseKey against single runes, Ctrl+letter bytes, arrows, Alt prefixes, and unknown inputs.

package key

import "testing"

func TestParseKey(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		data string
		want Key
	}{
		// Single printable ASCII characters
		{name: "lowercase a", data: "a", want: Key{Type: KeyRune, Rune: 'a'}},
		{name: "lowercase z", data: "z", want: Key{Type: KeyRune, Rune: 'z'}},
		{name: "uppercase A", data: "A", want: Key{Type: KeyRune, Rune: 'A'}},
		{name: "digit 0", data: "0", want: Key{Type: KeyRune, Rune: '0'}},
		{name: "space", data: " ", want: Key{Type: KeyRune, Rune: ' '}},
		{name: "tilde", data: "~", want: Key{Type: KeyRune, Rune: '~'}},

		// Control characters
		{name: "ctrl+c", data: "\x03", want: Key{Type: KeyRune, Rune: 'c', Ctrl: true}},
		{name: "ctrl+v", data: "\x16", want: Key{Type: KeyRune, Rune: 'v', Ctrl: true}},
		{name: "ctrl+h", data: "\x08", want: Key{Type: KeyRune, Rune: 'h', Ctrl: true}},
		{name: "ctrl+z", data: "\x1a", want: Key{Type: KeyRune, Rune: 'z', Ctrl: true}},
		{name: "ctrl+@", data: "\x00", want: Key{Type: KeyRune, Rune: '@', Ctrl: true}},

		// Enter, Tab, Backspace
		{name: "enter", data: "\r", want: Key{Type: KeyEnter}},
		{name: "tab", data: "\t", want: Key{Type: KeyTab}},
		{name: "backspace", data: "\x7f", want: Key{Type: KeyBackspace}},

		// Escape alone
		{name: "escape", data: "\x1b", want: Key{Type: KeyEscape}},

		// CSI arrow keys
		{name: "arrow up", data: "\x1b[A", want: Key{Type: KeyUp}},
		{name: "arrow down", data: "\x1b[B", want: Key{Type: KeyDown}},
		{name: "arrow right", data: "\x1b[C", want: Key{Type: KeyRight}},
		{name: "arrow left", data: "\x1b[D", want: Key{Type: KeyLeft}},

		// Home, End
		{name: "home", data: "\x1b[H", want: Key{Type: KeyHome}},
		{name: "end", data: "\x1b[F", want: Key{Type: KeyEnd}},

		// Page Up, Page Down, Delete
		{name: "page up", data: "\x1b[5~", want: Key{Type: KeyPageUp}},
		{name: "page down", data: "\x1b[6~", want: Key{Type: KeyPageDown}},
		{name: "delete", data: "\x1b[3~", want: Key{Type: KeyDelete}},

		// BackTab (Shift+Tab)
		{name: "backtab", data: "\x1b[Z", want: Key{Type: KeyBackTab, Shift: true}},

		// SS3 arrow keys
		{name: "SS3 up", data: "\x1bOA", want: Key{Type: KeyUp}},
		{name: "SS3 down", data: "\x1bOB", want: Key{Type: KeyDown}},
		{name: "SS3 right", data: "\x1bOC", want: Key{Type: KeyRight}},
		{name: "SS3 left", data: "\x1bOD", want: Key{Type: KeyLeft}},
		{name: "SS3 home", data: "\x1bOH", want: Key{Type: KeyHome}},
		{name: "SS3 end", data: "\x1bOF", want: Key{Type: KeyEnd}},

		// vt220 tilde forms from the linux console and rxvt
		{name: "tilde home", data: "\x1b[1~", want: Key{Type: KeyHome}},
		{name: "tilde end", data: "\x1b[4~", want: Key{Type: KeyEnd}},
		{name: "rxvt home", data: "\x1b[7~", want: Key{Type: KeyHome}},
		{name: "rxvt end", data: "\x1b[8~", want: Key{Type: KeyEnd}},
		{name: "ss3 backtab is not a key", data: "\x1bOZ", want: Key{Type: KeyUnknown}},

		// Alt combinations
		{name: "alt+x", data: "\x1bx", want: Key{Type: KeyRune, Rune: 'x', Alt: true}},
		{name: "alt+backspace", data: "\x1b\x7f", want: Key{Type: KeyBackspace, Alt: true}},
		{name: "alt+right xterm", data: "\x1b[1;3C", want: Key{Type: KeyRight, Alt: true}},
		{name: "alt+left rxvt", data: "\x1b\x1b[D", want: Key{Type: KeyLeft, Alt: true}},

		// Multi-byte
		{name: "utf-8 rune", data: "é", want: Key{Type: KeyRune, Rune: 'é'}},
		{name: "pasted run", data: "abc", want: Key{Type: KeyUnknown}},
		{name: "empty", data: "", want: Key{Type: KeyUnknown}},

		// Unknown escape sequence
		{name: "unknown escape", data: "\x1b[99Z", want: Key{Type: KeyUnknown}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := ParseKey(tt.data)
			if got.Type != tt.want.Type {
				t.Errorf("ParseKey(%q).Type = %v, want %v", tt.data, got.Type, tt.want.Type)
			}
			if got.Rune != tt.want.Rune {
				t.Errorf("ParseKey(%q).Rune = %q, want %q", tt.data, got.Rune, tt.want.Rune)
			}
			if got.Ctrl != tt.want.Ctrl {
				t.Errorf("ParseKey(%q).Ctrl = %v, want %v", tt.data, got.Ctrl, tt.want.Ctrl)
			}
			if got.Alt != tt.want.Alt {
				t.Errorf("ParseKey(%q).Alt = %v, want %v", tt.data, got.Alt, tt.want.Alt)
			}
			if got.Shift != tt.want.Shift {
				t.Errorf("ParseKey(%q).Shift = %v, want %v", tt.data, got.Shift, tt.want.Shift)
			}
		})
	}
}

func TestKeyString(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		key  Key
		want string
	}{
		{name: "rune a", key: Key{Type: KeyRune, Rune: 'a'}, want: "a"},
		{name: "enter", key: Key{Type: KeyEnter}, want: "Enter"},
		{name: "ctrl+c", key: Key{Type: KeyRune, Rune: 'c', Ctrl: true}, want: "Ctrl+c"},
		{name: "alt+right", key: Key{Type: KeyRight, Alt: true}, want: "Alt+Right"},
		{name: "arrow up", key: Key{Type: KeyUp}, want: "Up"},
		{name: "unknown", key: Key{Type: KeyUnknown}, want: "Unknown"},
		{name: "alt rune", key: Key{Type: KeyRune, Rune: 'x', Alt: true}, want: "Alt+x"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := tt.key.String()
			if got != tt.want {
				t.Errorf("Key.String() = %q, want %q", got, tt.want)
			}
		})
	}
}
