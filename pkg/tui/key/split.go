// ABOUTME: Splits a raw read from the host terminal into discrete inputs.
// ABOUTME: Separates keys, SGR mouse reports, focus reports and bracketed pastes.

package key

import (
	"strings"
	"unicode/utf8"
)

// InputKind classifies one decoded input.
type InputKind int

const (
	InputKey InputKind = iota
	InputMouse
	InputFocus
	InputBlur
	InputPaste
)

// Input is one unit of host input. Raw holds the exact bytes (for pastes, the
// pasted text without the bracket markers).
type Input struct {
	Kind  InputKind
	Raw   string
	Key   Key
	Mouse MouseEvent
}

// Split decodes data into inputs in arrival order. Bytes that cannot be
// classified are emitted as InputKey with a KeyUnknown key so the caller can
// still forward them.
func Split(data string) []Input {
	var out []Input
	for len(data) > 0 {
		n, in := next(data)
		out = append(out, in)
		data = data[n:]
	}
	return out
}

func next(data string) (int, Input) {
	if data[0] != 0x1b {
		_, size := utf8.DecodeRuneInString(data)
		raw := data[:size]
		return size, Input{Kind: InputKey, Raw: raw, Key: ParseKey(raw)}
	}

	if len(data) >= len(PasteStart) && data[:len(PasteStart)] == PasteStart {
		body := data[len(PasteStart):]
		for i := 0; i+len(PasteEnd) <= len(body); i++ {
			if body[i:i+len(PasteEnd)] == PasteEnd {
				return len(PasteStart) + i + len(PasteEnd), Input{Kind: InputPaste, Raw: body[:i]}
			}
		}
		// Unterminated: the rest of the read is the paste.
		return len(data), Input{Kind: InputPaste, Raw: body}
	}

	n := escapeLen(data)
	raw := data[:n]
	switch raw {
	case FocusIn:
		return n, Input{Kind: InputFocus, Raw: raw}
	case FocusOut:
		return n, Input{Kind: InputBlur, Raw: raw}
	}
	if m, ok := ParseMouse(raw); ok {
		return n, Input{Kind: InputMouse, Raw: raw, Mouse: m}
	}
	return n, Input{Kind: InputKey, Raw: raw, Key: ParseKey(raw)}
}

// escapeLen returns the length of the escape sequence at the start of data.
func escapeLen(data string) int {
	if len(data) == 1 {
		return 1
	}
	switch data[1] {
	case '[':
		return csiLen(data, 2)
	case 'O':
		if len(data) >= 3 {
			return 3
		}
		return 2
	case 0x1b:
		// ESC ESC [ ... : Alt-prefixed CSI.
		if len(data) > 2 && (data[2] == '[' || data[2] == 'O') {
			return 1 + escapeLen(data[1:])
		}
		return 1
	}
	_, size := utf8.DecodeRuneInString(data[1:])
	return 1 + size
}

// csiLen scans parameter and intermediate bytes up to the final byte.
func csiLen(data string, i int) int {
	for i < len(data) {
		b := data[i]
		i++
		if isFinal(b) {
			return i
		}
	}
	return len(data)
}

// Complete returns how many leading bytes of data form whole inputs. The
// remainder is an escape sequence, paste or rune that is still arriving.
func Complete(data string) int {
	i := 0
	for i < len(data) {
		n, ok := whole(data[i:])
		if !ok {
			return i
		}
		i += n
	}
	return i
}

func whole(data string) (int, bool) {
	if data[0] != 0x1b {
		if !utf8.FullRuneInString(data) {
			return 0, false
		}
		_, size := utf8.DecodeRuneInString(data)
		return size, true
	}

	if strings.HasPrefix(data, PasteStart) {
		end := strings.Index(data[len(PasteStart):], PasteEnd)
		if end < 0 {
			return 0, false
		}
		return len(PasteStart) + end + len(PasteEnd), true
	}
	if len(data) == 1 {
		return 0, false
	}

	switch data[1] {
	case '[':
		n := csiLen(data, 2)
		return n, isFinal(data[n-1]) && n > 2
	case 'O':
		return 3, len(data) >= 3
	case 0x1b:
		if len(data) == 2 {
			return 0, false
		}
		if data[2] == '[' || data[2] == 'O' {
			n, ok := whole(data[1:])
			return 1 + n, ok
		}
		return 1, true
	}
	if !utf8.FullRuneInString(data[1:]) {
		return 0, false
	}
	_, size := utf8.DecodeRuneInString(data[1:])
	return 1 + size, true
}

func isFinal(b byte) bool {
	return b >= 0x40 && b <= 0x7e
}
