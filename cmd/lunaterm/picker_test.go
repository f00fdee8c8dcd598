// ABOUTME: Tests for the interactive theme picker model
// ABOUTME: Verifies initial selection, navigation, fuzzy filtering, enter and esc

package main

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mauromedda/lunaterm/pkg/tui/theme"
)

var _ tea.Model = themePicker{}

func press(t *testing.T, m themePicker, msgs ...tea.KeyMsg) (themePicker, tea.Cmd) {
	t.Helper()
	var cmd tea.Cmd
	for _, msg := range msgs {
		var next tea.Model
		next, cmd = m.Update(msg)
		m = next.(themePicker)
	}
	return m, cmd
}

func TestThemePicker_StartsOnCurrent(t *testing.T) {
	t.Parallel()

	m := newThemePicker(theme.NewTable(), "Nord")
	if got := m.visible[m.selected]; got != "Nord" {
		t.Errorf("selected = %q, want Nord", got)
	}
	if cmd := m.Init(); cmd != nil {
		t.Error("Init() returned non-nil cmd")
	}
}

func TestThemePicker_Navigation(t *testing.T) {
	t.Parallel()

	m := newThemePicker(theme.NewTable(), "")
	names := m.visible

	tests := []struct {
		name string
		key  tea.KeyType
		want int
	}{
		{"up at top stays", tea.KeyUp, 0},
		{"down", tea.KeyDown, 1},
		{"down again", tea.KeyDown, 2},
		{"up", tea.KeyUp, 1},
	}
	for _, tt := range tests {
		m, _ = press(t, m, tea.KeyMsg{Type: tt.key})
		if m.selected != tt.want {
			t.Errorf("%s: selected = %d, want %d", tt.name, m.selected, tt.want)
		}
	}

	for range names {
		m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyDown})
	}
	if m.selected != len(names)-1 {
		t.Errorf("selected = %d, want clamp at %d", m.selected, len(names)-1)
	}
}

func TestThemePicker_FilterAndPick(t *testing.T) {
	t.Parallel()

	m := newThemePicker(theme.NewTable(), "")
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("sol")})
	if len(m.visible) != 2 {
		t.Fatalf("visible = %v, want the two Solarized themes", m.visible)
	}
	for _, n := range m.visible {
		if !strings.HasPrefix(n, "Solarized") {
			t.Errorf("unexpected match %q", n)
		}
	}

	m, cmd := press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("enter returned nil cmd, want tea.Quit")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Errorf("cmd() = %T, want tea.QuitMsg", cmd())
	}
	if m.chosen != m.visible[0] {
		t.Errorf("chosen = %q, want %q", m.chosen, m.visible[0])
	}
}

func TestThemePicker_BackspaceWidensFilter(t *testing.T) {
	t.Parallel()

	m := newThemePicker(theme.NewTable(), "")
	all := len(m.visible)
	m, _ = press(t, m,
		tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("x")},
		tea.KeyMsg{Type: tea.KeyBackspace},
	)
	if m.filter != "" || len(m.visible) != all {
		t.Errorf("filter = %q, visible = %d, want empty filter and %d themes", m.filter, len(m.visible), all)
	}
}

func TestThemePicker_NoMatchEnterIgnored(t *testing.T) {
	t.Parallel()

	m := newThemePicker(theme.NewTable(), "")
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("zzzz")})
	if !strings.Contains(m.View(), "No matching themes") {
		t.Errorf("View() = %q", m.View())
	}
	m, cmd := press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if cmd != nil || m.chosen != "" {
		t.Errorf("enter with no matches: cmd=%v chosen=%q", cmd, m.chosen)
	}
}

func TestThemePicker_EscCancels(t *testing.T) {
	t.Parallel()

	m := newThemePicker(theme.NewTable(), "Dracula")
	m, cmd := press(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if cmd == nil {
		t.Fatal("esc returned nil cmd")
	}
	if m.chosen != "" {
		t.Errorf("chosen = %q, want empty", m.chosen)
	}
}

func TestThemePicker_View(t *testing.T) {
	t.Parallel()

	m := newThemePicker(theme.NewTable(), "Monokai")
	v := m.View()
	for _, want := range []string{"Select Theme", "Monokai", "Dracula"} {
		if !strings.Contains(v, want) {
			t.Errorf("View() missing %q", want)
		}
	}
}
