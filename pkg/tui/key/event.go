// ABOUTME: Keyboard event model shared by the interceptor and the host control channel.
// ABOUTME: Names keys the way DOM KeyboardEvent.key does ("ArrowRight", "c") and renders bindings like "alt+right".

package key

import "strings"

// Event is a keyboard event as seen by the interceptor.
// Key holds the KeyboardEvent-style name: a single character for printable
// keys, or a named key such as "ArrowRight", "Enter", "Backspace".
type Event struct {
	Key   string
	Ctrl  bool
	Alt   bool
	Shift bool
	Meta  bool
}

var eventNames = map[KeyType]string{
	KeyEnter:     "Enter",
	KeyTab:       "Tab",
	KeyBackTab:   "Tab",
	KeyBackspace: "Backspace",
	KeyDelete:    "Delete",
	KeyUp:        "ArrowUp",
	KeyDown:      "ArrowDown",
	KeyLeft:      "ArrowLeft",
	KeyRight:     "ArrowRight",
	KeyHome:      "Home",
	KeyEnd:       "End",
	KeyPageUp:    "PageUp",
	KeyPageDown:  "PageDown",
	KeyEscape:    "Escape",
}

// bindingNames is the inverse vocabulary used in keybinding files.
var bindingNames = map[string]string{
	"ArrowUp":    "up",
	"ArrowDown":  "down",
	"ArrowLeft":  "left",
	"ArrowRight": "right",
	"Enter":      "enter",
	"Tab":        "tab",
	"Backspace":  "backspace",
	"Delete":     "delete",
	"Home":       "home",
	"End":        "end",
	"PageUp":     "pageup",
	"PageDown":   "pagedown",
	"Escape":     "escape",
	" ":          "space",
}

// Event converts a parsed key into a keyboard event.
// Unknown keys produce an event with an empty Key.
func (k Key) Event() Event {
	ev := Event{Ctrl: k.Ctrl, Alt: k.Alt, Shift: k.Shift}
	if k.Type == KeyRune {
		ev.Key = string(k.Rune)
		return ev
	}
	ev.Key = eventNames[k.Type]
	if k.Type == KeyBackTab {
		ev.Shift = true
	}
	return ev
}

// Is reports whether the event is the printable key name with exactly the
// Ctrl modifier state given. Letters compare case-sensitively, so a shifted
// "C" does not match "c".
func (e Event) Is(name string, ctrl bool) bool {
	return e.Ctrl == ctrl && e.Key == name
}

// Binding renders the event in keybinding notation, e.g. "alt+right" or "ctrl+c".
// Modifiers are emitted in ctrl, alt, shift, meta order.
func (e Event) Binding() string {
	if e.Key == "" {
		return ""
	}
	var b strings.Builder
	if e.Ctrl {
		b.WriteString("ctrl+")
	}
	if e.Alt {
		b.WriteString("alt+")
	}
	if e.Shift && len([]rune(e.Key)) > 1 {
		// Shift on a printable key is already folded into the character.
		b.WriteString("shift+")
	}
	if e.Meta {
		b.WriteString("meta+")
	}
	if name, ok := bindingNames[e.Key]; ok {
		b.WriteString(name)
	} else {
		b.WriteString(strings.ToLower(e.Key))
	}
	return b.String()
}
