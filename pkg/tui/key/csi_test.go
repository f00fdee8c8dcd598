// ABOUTME: Tests for modifier-carrying CSI key parsing.
// ABOUTME: Covers xterm "CSI 1;m X", tilde keys, kitty codepoints, release events, and mouse rejection.

package key

import "testing"

func TestParseCSIKey(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		data   string
		want   Key
		wantOK bool
	}{
		{name: "alt+right", data: "\x1b[1;3C", want: Key{Type: KeyRight, Alt: true}, wantOK: true},
		{name: "alt+left", data: "\x1b[1;3D", want: Key{Type: KeyLeft, Alt: true}, wantOK: true},
		{name: "ctrl+up", data: "\x1b[1;5A", want: Key{Type: KeyUp, Ctrl: true}, wantOK: true},
		{name: "shift+end", data: "\x1b[1;2F", want: Key{Type: KeyEnd, Shift: true}, wantOK: true},
		{name: "ctrl+alt+right", data: "\x1b[1;7C", want: Key{Type: KeyRight, Alt: true, Ctrl: true}, wantOK: true},
		{name: "delete", data: "\x1b[3~", want: Key{Type: KeyDelete}, wantOK: true},
		{name: "alt+pageup", data: "\x1b[5;3~", want: Key{Type: KeyPageUp, Alt: true}, wantOK: true},
		{name: "kitty ctrl+c", data: "\x1b[99;5u", want: Key{Type: KeyRune, Rune: 'c', Ctrl: true}, wantOK: true},
		{name: "kitty ctrl+shift+V folds", data: "\x1b[86;6u", want: Key{Type: KeyRune, Rune: 'v', Ctrl: true, Shift: true}, wantOK: true},
		{name: "kitty enter", data: "\x1b[13u", want: Key{Type: KeyEnter}, wantOK: true},
		{name: "kitty shift+tab", data: "\x1b[9;2u", want: Key{Type: KeyBackTab, Shift: true}, wantOK: true},
		{name: "kitty release ignored", data: "\x1b[99;5:3u", wantOK: false},
		{name: "plain arrow left to legacy", data: "\x1b[C", wantOK: false},
		{name: "unmodified letter", data: "\x1b[1C", wantOK: false},
		{name: "sgr mouse", data: "\x1b[<2;10;5M", wantOK: false},
		{name: "unknown tilde", data: "\x1b[42~", wantOK: false},
		{name: "bad modifier", data: "\x1b[1;xC", wantOK: false},
		{name: "not csi", data: "\x1bOA", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, ok := ParseCSIKey(tt.data)
			if ok != tt.wantOK {
				t.Fatalf("ParseCSIKey(%q) ok = %v, want %v", tt.data, ok, tt.wantOK)
			}
			if !ok {
				return
			}
			if got != tt.want {
				t.Errorf("ParseCSIKey(%q) = %+v, want %+v", tt.data, got, tt.want)
			}
		})
	}
}
