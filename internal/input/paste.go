// ABOUTME: Paste preparation: line endings become carriage returns, text is NFC-normalized
// ABOUTME: Optionally wraps the text in bracketed-paste markers for the remote shell

package input

import (
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/mauromedda/lunaterm/pkg/tui/key"
)

var newlines = strings.NewReplacer("\r\n", "\r", "\n", "\r")

// PreparePaste converts clipboard text into the bytes a terminal sends for a
// paste: CRLF and LF become CR, and the text is NFC-normalized so composed
// characters reach the remote as single code points.
func PreparePaste(text string, bracketed bool) string {
	if text == "" {
		return ""
	}
	s := newlines.Replace(norm.NFC.String(text))
	if bracketed {
		// Strip any embedded end marker so pasted text cannot terminate the paste early.
		s = strings.ReplaceAll(s, key.PasteEnd, "")
		return key.PasteStart + s + key.PasteEnd
	}
	return s
}
