// ABOUTME: Tests for navigation keybindings parsing and persistence

package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestKeybindings_Defaults(t *testing.T) {
	kb := NewKeybindings()

	if got := kb.GetBindings(ActionNavigateNext); len(got) != 1 || got[0] != "alt+right" {
		t.Errorf("navigateNext = %v; want [alt+right]", got)
	}
	if got := kb.GetBindings(ActionNavigatePrev); len(got) != 1 || got[0] != "alt+left" {
		t.Errorf("navigatePrev = %v; want [alt+left]", got)
	}
}

func TestKeyAction_Notification(t *testing.T) {
	tests := map[KeyAction]string{
		ActionNavigateNext: "alt+right",
		ActionNavigatePrev: "alt+left",
		KeyAction("other"): "",
	}
	for action, want := range tests {
		if got := action.Notification(); got != want {
			t.Errorf("%s.Notification() = %q; want %q", action, got, want)
		}
	}
}

func TestKeybindings_SaveLoad(t *testing.T) {
	kb := NewKeybindings()
	kb.Bindings[ActionNavigateNext] = []string{"alt+right", "ctrl+tab"}

	path := filepath.Join(t.TempDir(), "keybindings.json")
	if err := kb.SaveKeybindings(path); err != nil {
		t.Fatalf("SaveKeybindings failed: %v", err)
	}

	loaded, err := LoadKeybindings(path)
	if err != nil {
		t.Fatalf("LoadKeybindings failed: %v", err)
	}
	if len(loaded.Bindings[ActionNavigateNext]) != 2 {
		t.Errorf("Expected 2 navigateNext bindings, got %d", len(loaded.Bindings[ActionNavigateNext]))
	}
}

func TestKeybindings_UnknownActionIgnored(t *testing.T) {
	path := filepath.Join(t.TempDir(), "keybindings.json")
	if err := os.WriteFile(path, []byte(`{"launchRockets": ["ctrl+x"], "navigatePrev": ["ctrl+h"]}`), 0o600); err != nil {
		t.Fatal(err)
	}

	kb, err := LoadKeybindings(path)
	if err != nil {
		t.Fatalf("LoadKeybindings failed: %v", err)
	}
	if _, ok := kb.Bindings["launchRockets"]; ok {
		t.Error("unknown action should be ignored")
	}
	if got := kb.GetBindings(ActionNavigatePrev); len(got) != 1 || got[0] != "ctrl+h" {
		t.Errorf("navigatePrev = %v; want [ctrl+h]", got)
	}
}

func TestKeybindings_LoadNonExistent(t *testing.T) {
	if _, err := LoadKeybindings("/nonexistent/path/keybindings.json"); err == nil {
		t.Error("Expected error for non-existent file")
	}
}

func TestKeybindings_LoadInvalidJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "keybindings.json")
	if err := os.WriteFile(path, []byte("{"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadKeybindings(path); err == nil {
		t.Error("Expected error for invalid JSON")
	}
}

func TestKeybindings_NilGetBindings(t *testing.T) {
	var kb *Keybindings
	if kb.GetBindings(ActionNavigateNext) != nil {
		t.Error("nil Keybindings should have no bindings")
	}
}

func TestKeybindings_ActionsSorted(t *testing.T) {
	got := NewKeybindings().Actions()
	if len(got) != 2 || got[0] != ActionNavigateNext || got[1] != ActionNavigatePrev {
		t.Errorf("Actions() = %v", got)
	}
}
