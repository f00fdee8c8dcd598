// ABOUTME: Host recoloring: OSC 10/11/12 and OSC 4 sequences that paint the host terminal with a theme
// ABOUTME: Colors are normalized through go-colorful; Close writes the matching resets

package session

import (
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/mauromedda/lunaterm/pkg/tui/theme"
)

const hostColorsReset = "\x1b]104\x07\x1b]110\x07\x1b]111\x07\x1b]112\x07"

// hostColors returns the sequences that set the host palette, foreground,
// background and cursor to th. Unparseable colors are skipped.
func hostColors(th *theme.Theme) string {
	var b strings.Builder
	for i, c := range th.ANSI() {
		if hex, ok := normalize(c); ok {
			b.WriteString("\x1b]4;" + strconv.Itoa(i) + ";" + hex + "\x07")
		}
	}
	for _, oc := range []struct {
		code  string
		color string
	}{
		{"10", th.Foreground},
		{"11", th.Background},
		{"12", th.Cursor},
	} {
		if hex, ok := normalize(oc.color); ok {
			b.WriteString("\x1b]" + oc.code + ";" + hex + "\x07")
		}
	}
	return b.String()
}

func normalize(hex string) (string, bool) {
	if hex == "" {
		return "", false
	}
	c, err := colorful.Hex(hex)
	if err != nil {
		return "", false
	}
	return c.Hex(), true
}
