// ABOUTME: Parser for modifier-carrying CSI key sequences (xterm "CSI 1;m X" and kitty "CSI cp;m u").
// ABOUTME: Decodes the modifier bitmask so Alt+Arrow and Ctrl+letter reach the interceptor intact.

package key

import (
	"strconv"
	"strings"
)

// Modifier bits as encoded on the wire (value-1).
const (
	modShift = 1 << iota
	modAlt
	modCtrl
	modSuper
)

// tildeKeys maps "CSI n ~" numbers to key types.
var tildeKeys = map[int]KeyType{
	1: KeyHome,
	3: KeyDelete,
	4: KeyEnd,
	5: KeyPageUp,
	6: KeyPageDown,
	7: KeyHome,
	8: KeyEnd,
}

// letterKeys maps "CSI 1;m X" final bytes to key types.
var letterKeys = map[byte]KeyType{
	'A': KeyUp,
	'B': KeyDown,
	'C': KeyRight,
	'D': KeyLeft,
	'H': KeyHome,
	'F': KeyEnd,
}

// ParseCSIKey parses a CSI key sequence that carries modifiers or a codepoint.
// Plain unmodified arrows are left to the legacy table.
// Returns false when data is not such a sequence.
func ParseCSIKey(data string) (Key, bool) {
	if len(data) < 4 || !strings.HasPrefix(data, "\x1b[") {
		return Key{}, false
	}

	body := data[2 : len(data)-1]
	final := data[len(data)-1]

	// SGR mouse reports share the CSI prefix.
	if strings.HasPrefix(body, "<") {
		return Key{}, false
	}

	first, rest, _ := strings.Cut(body, ";")
	mods, event, ok := parseModifierField(rest)
	if !ok || event == 3 {
		// Key release events are never forwarded.
		return Key{}, false
	}

	var k Key
	switch {
	case final == 'u':
		cpStr, _, _ := strings.Cut(first, ":")
		cp, err := strconv.Atoi(cpStr)
		if err != nil {
			return Key{}, false
		}
		k = codepointKey(rune(cp), mods)
	case final == '~':
		n, err := strconv.Atoi(first)
		if err != nil {
			return Key{}, false
		}
		kt, found := tildeKeys[n]
		if !found {
			return Key{}, false
		}
		k = Key{Type: kt}
	default:
		kt, found := letterKeys[final]
		if !found || rest == "" {
			return Key{}, false
		}
		k = Key{Type: kt}
	}

	k.Shift = k.Shift || mods&modShift != 0
	k.Alt = mods&modAlt != 0
	k.Ctrl = mods&modCtrl != 0
	return k, true
}

// parseModifierField decodes "<mods>[:<event>]"; empty means no modifiers.
func parseModifierField(s string) (mods, event int, ok bool) {
	if s == "" {
		return 0, 0, true
	}
	modStr, eventStr, _ := strings.Cut(s, ":")
	v, err := strconv.Atoi(modStr)
	if err != nil || v < 1 {
		return 0, 0, false
	}
	if eventStr != "" {
		event, err = strconv.Atoi(eventStr)
		if err != nil {
			return 0, 0, false
		}
	}
	return v - 1, event, true
}

// codepointKey maps a kitty codepoint to a base key.
func codepointKey(cp rune, mods int) Key {
	switch cp {
	case 13:
		return Key{Type: KeyEnter}
	case 9:
		if mods&modShift != 0 {
			return Key{Type: KeyBackTab, Shift: true}
		}
		return Key{Type: KeyTab}
	case 127:
		return Key{Type: KeyBackspace}
	case 27:
		return Key{Type: KeyEscape}
	}
	if mods&modCtrl != 0 && cp >= 'A' && cp <= 'Z' {
		cp += 'a' - 'A'
	}
	return Key{Type: KeyRune, Rune: cp}
}
