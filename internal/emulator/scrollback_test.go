// ABOUTME: Tests for the bounded scrollback ring
// ABOUTME: Checks ordering, eviction of the oldest lines and capacity changes

package emulator

import (
	"testing"

	headlessterm "github.com/danielgatis/go-headless-term"
)

func line(r rune) []headlessterm.Cell {
	return []headlessterm.Cell{{Char: r}}
}

func TestRing_PushEvictsOldest(t *testing.T) {
	t.Parallel()

	r := NewRing(3)
	for _, c := range "abcde" {
		r.Push(line(c))
	}

	if r.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", r.Len())
	}
	for i, want := range "cde" {
		if got := r.Line(i)[0].Char; got != want {
			t.Errorf("Line(%d) = %q, want %q", i, got, want)
		}
	}
	if r.Line(3) != nil || r.Line(-1) != nil {
		t.Error("out of range lines should be nil")
	}
}

func TestRing_PushCopies(t *testing.T) {
	t.Parallel()

	r := NewRing(2)
	l := line('x')
	r.Push(l)
	l[0].Char = 'y'

	if got := r.Line(0)[0].Char; got != 'x' {
		t.Errorf("stored line mutated to %q", got)
	}
}

func TestRing_SetMaxLinesKeepsNewest(t *testing.T) {
	t.Parallel()

	r := NewRing(5)
	for _, c := range "abcde" {
		r.Push(line(c))
	}
	r.SetMaxLines(2)

	if r.MaxLines() != 2 || r.Len() != 2 {
		t.Fatalf("MaxLines=%d Len=%d, want 2/2", r.MaxLines(), r.Len())
	}
	if r.Line(0)[0].Char != 'd' || r.Line(1)[0].Char != 'e' {
		t.Errorf("kept %q %q, want d e", r.Line(0)[0].Char, r.Line(1)[0].Char)
	}

	r.Push(line('f'))
	if r.Line(1)[0].Char != 'f' {
		t.Errorf("newest = %q, want f", r.Line(1)[0].Char)
	}
}

func TestRing_ClearAndZeroCapacity(t *testing.T) {
	t.Parallel()

	r := NewRing(2)
	r.Push(line('a'))
	r.Clear()
	if r.Len() != 0 {
		t.Errorf("Len after Clear = %d", r.Len())
	}

	z := NewRing(0)
	z.Push(line('a'))
	if z.Len() != 0 {
		t.Errorf("zero-capacity ring stored a line")
	}
}
