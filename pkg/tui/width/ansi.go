// ABOUTME: Escape sequence stripping ahead of width measurement
// ABOUTME: Delegates to the charmbracelet/x/ansi parser; plain strings skip it

package width

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// StripANSI removes escape sequences from s. Unterminated sequences at the
// end of s are dropped.
func StripANSI(s string) string {
	if !strings.ContainsRune(s, '\x1b') {
		return s
	}
	return ansi.Strip(s)
}
