// ABOUTME: Keybindings manager with O(1) key-event-to-action lookup
// ABOUTME: Resolves host navigation shortcuts, detects conflicts, supports hot-reload

package keybindings

import (
	"fmt"
	"strings"
	"sync"

	"github.com/mauromedda/lunaterm/internal/config"
	"github.com/mauromedda/lunaterm/pkg/tui/key"
)

// ConflictInfo describes a binding conflict where multiple actions share a key.
type ConflictInfo struct {
	Key     string
	Actions []config.KeyAction
}

// Manager provides O(1) key-to-action lookup. Safe for concurrent use.
type Manager struct {
	mu       sync.RWMutex
	bindings *config.Keybindings
	lookup   map[string]config.KeyAction // "alt+right" → ActionNavigateNext
}

// New creates a Manager from the keybindings file at path.
// A missing or unreadable file leaves the defaults in place.
func New(path string) *Manager {
	m := &Manager{}
	m.Reload(path)
	return m
}

// NewFromBindings creates a Manager from an existing Keybindings instance.
func NewFromBindings(kb *config.Keybindings) *Manager {
	m := &Manager{}
	m.set(kb)
	return m
}

// ActionForEvent returns the action bound to ev, or "" if unbound.
func (m *Manager) ActionForEvent(ev key.Event) config.KeyAction {
	b := ev.Binding()
	if b == "" {
		return ""
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.lookup[b]
}

// Navigation reports the host notification for ev when it is bound to a
// navigation action.
func (m *Manager) Navigation(ev key.Event) (string, bool) {
	n := m.ActionForEvent(ev).Notification()
	return n, n != ""
}

// Conflicts detects keys bound to multiple actions.
func (m *Manager) Conflicts() []ConflictInfo {
	m.mu.RLock()
	defer m.mu.RUnlock()

	keyActions := make(map[string][]config.KeyAction)
	for _, action := range m.bindings.Actions() {
		for _, k := range m.bindings.Bindings[action] {
			nk := normalize(k)
			keyActions[nk] = append(keyActions[nk], action)
		}
	}

	var conflicts []ConflictInfo
	for k, actions := range keyActions {
		if len(actions) > 1 {
			conflicts = append(conflicts, ConflictInfo{Key: k, Actions: actions})
		}
	}
	return conflicts
}

// Reload re-reads the keybindings file and rebuilds the lookup table.
func (m *Manager) Reload(path string) {
	kb := config.NewKeybindings()
	if path != "" {
		if loaded, err := config.LoadKeybindings(path); err == nil {
			kb = loaded
		}
	}
	m.set(kb)
}

// FormatAll returns a formatted table of all keybindings.
func (m *Manager) FormatAll() string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var b strings.Builder
	b.WriteString("Keybindings:\n\n")
	for _, action := range m.bindings.Actions() {
		keys := m.bindings.GetBindings(action)
		if len(keys) == 0 {
			continue
		}
		fmt.Fprintf(&b, "  %-20s %s → %s\n", strings.Join(keys, ", "), action, action.Notification())
	}
	return b.String()
}

func (m *Manager) set(kb *config.Keybindings) {
	lookup := make(map[string]config.KeyAction, len(kb.Bindings)*2)
	for action, keys := range kb.Bindings {
		for _, k := range keys {
			lookup[normalize(k)] = action
		}
	}
	m.mu.Lock()
	m.bindings = kb
	m.lookup = lookup
	m.mu.Unlock()
}

// modifierOrder is the order key.Event.Binding emits modifiers in.
var modifierOrder = []string{"ctrl", "alt", "shift", "meta"}

// normalize lowercases a configured binding and reorders its modifiers so it
// compares equal to key.Event.Binding output ("Shift+Ctrl+X" → "ctrl+shift+x").
func normalize(s string) string {
	parts := strings.Split(strings.ToLower(strings.TrimSpace(s)), "+")
	if len(parts) == 0 {
		return ""
	}
	base := parts[len(parts)-1]
	mods := make(map[string]bool, len(parts)-1)
	for _, p := range parts[:len(parts)-1] {
		switch p {
		case "control":
			p = "ctrl"
		case "option":
			p = "alt"
		case "cmd", "super":
			p = "meta"
		}
		mods[p] = true
	}

	var out []string
	for _, mod := range modifierOrder {
		if mods[mod] {
			out = append(out, mod)
		}
	}
	switch base {
	case "arrowright":
		base = "right"
	case "arrowleft":
		base = "left"
	case "arrowup":
		base = "up"
	case "arrowdown":
		base = "down"
	case "pgup":
		base = "pageup"
	case "pgdown":
		base = "pagedown"
	}
	return strings.Join(append(out, base), "+")
}
