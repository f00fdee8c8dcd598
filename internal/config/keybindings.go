// ABOUTME: Navigation keybindings: which keys the host treats as session-switch shortcuts
// ABOUTME: Loaded from ~/.lunaterm/keybindings.json; unknown actions in the file are ignored

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
)

// KeyAction is a host navigation action that keys can be bound to.
type KeyAction string

const (
	ActionNavigateNext KeyAction = "navigateNext"
	ActionNavigatePrev KeyAction = "navigatePrev"
)

// Notification returns the value the host receives for the action.
func (a KeyAction) Notification() string {
	switch a {
	case ActionNavigateNext:
		return "alt+right"
	case ActionNavigatePrev:
		return "alt+left"
	}
	return ""
}

// Keybindings maps actions to key strings in binding notation ("alt+right").
type Keybindings struct {
	Bindings map[KeyAction][]string `json:"-"`
}

// RawKeybindings is the on-disk shape.
type RawKeybindings map[string][]string

// NewKeybindings returns the default bindings.
func NewKeybindings() *Keybindings {
	return &Keybindings{
		Bindings: map[KeyAction][]string{
			ActionNavigateNext: {"alt+right"},
			ActionNavigatePrev: {"alt+left"},
		},
	}
}

// LoadKeybindings reads path over the defaults.
func LoadKeybindings(path string) (*Keybindings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var raw RawKeybindings
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}

	kb := NewKeybindings()
	for actionName, keys := range raw {
		action := KeyAction(actionName)
		if _, ok := kb.Bindings[action]; ok {
			kb.Bindings[action] = keys
		}
	}
	return kb, nil
}

// SaveKeybindings writes the bindings to path.
func (kb *Keybindings) SaveKeybindings(path string) error {
	data, err := kb.marshal()
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// GetBindings returns the bindings for an action.
func (kb *Keybindings) GetBindings(action KeyAction) []string {
	if kb == nil {
		return nil
	}
	return kb.Bindings[action]
}

// Actions returns the bound actions in name order.
func (kb *Keybindings) Actions() []KeyAction {
	out := make([]KeyAction, 0, len(kb.Bindings))
	for a := range kb.Bindings {
		out = append(out, a)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// ExportTemplate returns the bindings as indented JSON.
func (kb *Keybindings) ExportTemplate() (string, error) {
	data, err := kb.marshal()
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func (kb *Keybindings) marshal() ([]byte, error) {
	raw := make(RawKeybindings, len(kb.Bindings))
	for action, keys := range kb.Bindings {
		raw[string(action)] = keys
	}
	return json.MarshalIndent(raw, "", "  ")
}
