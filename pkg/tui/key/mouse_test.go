// ABOUTME: Tests for SGR mouse parsing and raw input splitting.
// ABOUTME: Checks right-click detection, modifiers, focus reports, and bracketed paste extraction.

package key

import "testing"

func TestParseMouse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		data   string
		want   MouseEvent
		wantOK bool
	}{
		{
			name:   "right press",
			data:   "\x1b[<2;10;5M",
			want:   MouseEvent{Button: MouseRight, Action: MousePress, Col: 9, Row: 4},
			wantOK: true,
		},
		{
			name:   "ctrl right press",
			data:   "\x1b[<18;1;1M",
			want:   MouseEvent{Button: MouseRight, Action: MousePress, Ctrl: true},
			wantOK: true,
		},
		{
			name:   "left release",
			data:   "\x1b[<0;3;4m",
			want:   MouseEvent{Button: MouseLeft, Action: MouseRelease, Col: 2, Row: 3},
			wantOK: true,
		},
		{
			name:   "left drag",
			data:   "\x1b[<32;7;2M",
			want:   MouseEvent{Button: MouseLeft, Action: MouseMotion, Col: 6, Row: 1},
			wantOK: true,
		},
		{
			name:   "wheel down",
			data:   "\x1b[<65;1;1M",
			want:   MouseEvent{Button: MouseWheelDown, Action: MousePress},
			wantOK: true,
		},
		{name: "zero coordinate", data: "\x1b[<0;0;1M", wantOK: false},
		{name: "missing field", data: "\x1b[<0;1M", wantOK: false},
		{name: "not mouse", data: "\x1b[1;3C", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, ok := ParseMouse(tt.data)
			if ok != tt.wantOK {
				t.Fatalf("ParseMouse(%q) ok = %v, want %v", tt.data, ok, tt.wantOK)
			}
			if ok && got != tt.want {
				t.Errorf("ParseMouse(%q) = %+v, want %+v", tt.data, got, tt.want)
			}
		})
	}
}

func TestMouseEvent_IsContextMenu(t *testing.T) {
	t.Parallel()

	press, _ := ParseMouse("\x1b[<2;1;1M")
	release, _ := ParseMouse("\x1b[<2;1;1m")
	left, _ := ParseMouse("\x1b[<0;1;1M")

	if !press.IsContextMenu() {
		t.Error("right press should open the context menu")
	}
	if release.IsContextMenu() {
		t.Error("right release should not open the context menu")
	}
	if left.IsContextMenu() {
		t.Error("left press should not open the context menu")
	}
}

func TestSplit(t *testing.T) {
	t.Parallel()

	data := "a\x1b[1;3C\x1b[<2;4;2M\x1b[I" + PasteStart + "line1\nline2" + PasteEnd + "\x7f\x1b[O"
	got := Split(data)

	wantKinds := []InputKind{InputKey, InputKey, InputMouse, InputFocus, InputPaste, InputKey, InputBlur}
	if len(got) != len(wantKinds) {
		t.Fatalf("Split returned %d inputs, want %d: %+v", len(got), len(wantKinds), got)
	}
	for i, k := range wantKinds {
		if got[i].Kind != k {
			t.Errorf("input %d kind = %v, want %v", i, got[i].Kind, k)
		}
	}

	if got[0].Key.Rune != 'a' {
		t.Errorf("first key = %+v, want 'a'", got[0].Key)
	}
	if got[1].Key.Type != KeyRight || !got[1].Key.Alt {
		t.Errorf("second key = %+v, want Alt+Right", got[1].Key)
	}
	if got[1].Raw != "\x1b[1;3C" {
		t.Errorf("second raw = %q", got[1].Raw)
	}
	if !got[2].Mouse.IsContextMenu() {
		t.Errorf("mouse = %+v, want right press", got[2].Mouse)
	}
	if got[4].Raw != "line1\nline2" {
		t.Errorf("paste = %q, want %q", got[4].Raw, "line1\nline2")
	}
	if got[5].Key.Type != KeyBackspace {
		t.Errorf("DEL = %+v, want Backspace", got[5].Key)
	}
}

func TestSplit_UnterminatedPaste(t *testing.T) {
	t.Parallel()

	got := Split(PasteStart + "partial")
	if len(got) != 1 || got[0].Kind != InputPaste || got[0].Raw != "partial" {
		t.Errorf("Split = %+v, want one paste %q", got, "partial")
	}
}

func TestSplit_AltPrefixedArrow(t *testing.T) {
	t.Parallel()

	got := Split("\x1b\x1b[Cx")
	if len(got) != 2 {
		t.Fatalf("Split returned %d inputs, want 2", len(got))
	}
	if got[0].Key.Type != KeyRight || !got[0].Key.Alt {
		t.Errorf("first = %+v, want Alt+Right", got[0].Key)
	}
	if got[1].Key.Rune != 'x' {
		t.Errorf("second = %+v, want 'x'", got[1].Key)
	}
}

func TestComplete(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		data string
		want int
	}{
		{name: "plain", data: "abc", want: 3},
		{name: "lone esc", data: "ab\x1b", want: 2},
		{name: "partial csi", data: "a\x1b[1;3", want: 1},
		{name: "whole csi", data: "\x1b[1;3C", want: 6},
		{name: "partial ss3", data: "\x1bO", want: 0},
		{name: "esc esc waits", data: "\x1b\x1b", want: 0},
		{name: "alt prefixed csi", data: "\x1b\x1b[C", want: 4},
		{name: "partial mouse", data: "\x1b[<2;10", want: 0},
		{name: "open paste", data: "x" + PasteStart + "abc", want: 1},
		{name: "closed paste", data: PasteStart + "abc" + PasteEnd, want: len(PasteStart) + 3 + len(PasteEnd)},
		{name: "paste marker prefix", data: "\x1b[20", want: 0},
		{name: "split rune", data: "a\xc3", want: 1},
		{name: "alt rune", data: "\x1bx", want: 2},
		{name: "empty", data: "", want: 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := Complete(tt.data); got != tt.want {
				t.Errorf("Complete(%q) = %d, want %d", tt.data, got, tt.want)
			}
		})
	}
}

func TestMouseEvent_SGR(t *testing.T) {
	t.Parallel()

	for _, raw := range []string{
		"\x1b[<2;10;5M",
		"\x1b[<18;1;1M",
		"\x1b[<0;3;4m",
		"\x1b[<32;7;2M",
		"\x1b[<65;1;1M",
		"\x1b[<64;2;2M",
		"\x1b[<3;5;5m",
	} {
		ev, ok := ParseMouse(raw)
		if !ok {
			t.Fatalf("ParseMouse(%q) failed", raw)
		}
		if got := ev.SGR(); got != raw {
			t.Errorf("ParseMouse(%q).SGR() = %q", raw, got)
		}
	}
}
