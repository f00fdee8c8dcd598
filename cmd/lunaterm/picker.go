// ABOUTME: themePicker is a Bubble Tea list for choosing the persisted theme
// ABOUTME: Typing filters names fuzzily; enter picks, esc cancels

package main

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/mauromedda/lunaterm/pkg/tui/fuzzy"
	"github.com/mauromedda/lunaterm/pkg/tui/theme"
)

var (
	pickerTitle    = lipgloss.NewStyle().Bold(true)
	pickerMuted    = lipgloss.NewStyle().Faint(true)
	pickerSelected = lipgloss.NewStyle().Reverse(true)
)

// themePicker implements tea.Model with value semantics.
type themePicker struct {
	themes   *theme.Table
	names    []string
	filter   string
	visible  []string
	selected int
	chosen   string
}

func newThemePicker(themes *theme.Table, current string) themePicker {
	m := themePicker{themes: themes, names: themes.Names()}
	m.refilter()
	for i, n := range m.visible {
		if n == current {
			m.selected = i
		}
	}
	return m
}

func (m themePicker) Init() tea.Cmd { return nil }

func (m themePicker) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	km, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch km.Type {
	case tea.KeyUp:
		if m.selected > 0 {
			m.selected--
		}
	case tea.KeyDown:
		if m.selected < len(m.visible)-1 {
			m.selected++
		}
	case tea.KeyEnter:
		if len(m.visible) == 0 {
			return m, nil
		}
		m.chosen = m.visible[m.selected]
		return m, tea.Quit
	case tea.KeyEsc, tea.KeyCtrlC:
		return m, tea.Quit
	case tea.KeyBackspace:
		if r := []rune(m.filter); len(r) > 0 {
			m.filter = string(r[:len(r)-1])
			m.refilter()
		}
	case tea.KeyRunes, tea.KeySpace:
		m.filter += string(km.Runes)
		m.refilter()
	}
	return m, nil
}

func (m themePicker) View() string {
	var b strings.Builder
	b.WriteString(pickerTitle.Render("Select Theme"))
	b.WriteString(pickerMuted.Render("  filter: " + m.filter))
	b.WriteByte('\n')

	if len(m.visible) == 0 {
		b.WriteString(pickerMuted.Render("  No matching themes"))
		b.WriteByte('\n')
		return b.String()
	}
	for i, n := range m.visible {
		th, _ := m.themes.Lookup(n)
		line := "  " + n
		if i == m.selected {
			line = pickerSelected.Render("> " + n)
		}
		b.WriteString(swatch(th.Background) + " " + line + "\n")
	}
	return b.String()
}

func (m *themePicker) refilter() {
	if m.filter == "" {
		m.visible = m.names
	} else {
		m.visible = fuzzy.Suggest(m.filter, m.names, 0)
	}
	m.selected = 0
}
