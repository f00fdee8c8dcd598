// ABOUTME: Cell column helpers: map grid columns to rune indexes and lay out fixed-width columns
// ABOUTME: Wide runes occupy two cells; zero-width runes share the cell of the rune before them

package width

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// ColumnToIndex returns the index of the rune covering cell col in line, or
// -1 when col is negative or past the last cell.
func ColumnToIndex(line string, col int) int {
	if col < 0 {
		return -1
	}
	cell := 0
	for i, r := range []rune(line) {
		w := runewidth.RuneWidth(r)
		if w == 0 {
			continue
		}
		if col < cell+w {
			return i
		}
		cell += w
	}
	return -1
}

// IndexToColumn returns the first cell of rune i in line and the number of
// cells it covers.
func IndexToColumn(line string, i int) (col, cells int) {
	for j, r := range []rune(line) {
		w := runewidth.RuneWidth(r)
		if j == i {
			return col, max(w, 1)
		}
		col += w
	}
	return col, 1
}

// PadRight pads s with spaces to w cells. Wider strings are truncated.
func PadRight(s string, w int) string {
	s = Truncate(s, w)
	if n := w - VisibleWidth(s); n > 0 {
		return s + strings.Repeat(" ", n)
	}
	return s
}

// Truncate shortens plain text to at most w cells, ending in an ellipsis
// when anything was cut.
func Truncate(s string, w int) string {
	if w <= 0 {
		return ""
	}
	if VisibleWidth(s) <= w {
		return s
	}
	return runewidth.Truncate(StripANSI(s), w, "…")
}
