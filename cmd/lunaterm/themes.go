// ABOUTME: themes command: lists built-in and custom themes with a background swatch
// ABOUTME: --preview adds the 16-color ANSI palette; --pick chooses and persists one interactively

package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/mauromedda/lunaterm/internal/config"
	ltlog "github.com/mauromedda/lunaterm/internal/log"
	"github.com/mauromedda/lunaterm/pkg/tui/theme"
	"github.com/mauromedda/lunaterm/pkg/tui/width"
)

func runThemes(w io.Writer, preview, pick bool) error {
	themes := loadThemes(config.ThemesDir(), ltlog.New("themes"))
	current, _ := config.Load(config.SettingsFile())
	if pick {
		return pickTheme(w, themes, current.ThemeName)
	}
	_, err := io.WriteString(w, formatThemes(themes, current.ThemeName, preview))
	return err
}

// pickTheme runs the picker on the controlling terminal and persists the
// choice. A running session picks it up through the settings watcher.
func pickTheme(w io.Writer, themes *theme.Table, current string) error {
	p := tea.NewProgram(newThemePicker(themes, current), tea.WithOutput(os.Stderr))
	final, err := p.Run()
	if err != nil {
		return fmt.Errorf("bubble tea: %w", err)
	}
	chosen := final.(themePicker).chosen
	if chosen == "" {
		return nil
	}
	if err := config.Set(config.SettingsFile(), config.KeyThemeName, strconv.Quote(chosen)); err != nil {
		return err
	}
	fmt.Fprintf(w, "theme set to %s\n", chosen)
	return nil
}

// formatThemes renders one line per theme, marking the active one with '*'.
func formatThemes(themes *theme.Table, active string, preview bool) string {
	names := themes.Names()
	col := 0
	for _, n := range names {
		col = max(col, width.VisibleWidth(n))
	}

	var b strings.Builder
	for _, n := range names {
		th, _ := themes.Lookup(n)
		mark := " "
		if n == active {
			mark = "*"
		}
		fmt.Fprintf(&b, "%s %s  %s %s", mark, width.PadRight(n, col), swatch(th.Background), th.Background)
		if preview {
			b.WriteString("  ")
			for _, c := range th.ANSI() {
				b.WriteString(swatch(c))
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}

func swatch(hex string) string {
	if hex == "" {
		return "  "
	}
	return lipgloss.NewStyle().Background(lipgloss.Color(hex)).Render("  ")
}
