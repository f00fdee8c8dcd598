// ABOUTME: Tests for the themes listing
// ABOUTME: Checks ordering, alignment, the active marker and custom theme inclusion

package main

import (
	"strings"
	"testing"

	"github.com/mauromedda/lunaterm/pkg/tui/theme"
	"github.com/mauromedda/lunaterm/pkg/tui/width"
)

func TestFormatThemes(t *testing.T) {
	t.Parallel()

	table := theme.NewTable()
	if err := table.Add(&theme.Theme{Name: "Zed", Background: "#101010"}); err != nil {
		t.Fatalf("Add: %v", err)
	}

	out := formatThemes(table, "Dracula", false)
	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	if len(lines) != len(table.Names()) {
		t.Fatalf("got %d lines, want %d", len(lines), len(table.Names()))
	}

	var active int
	for i, line := range lines {
		name := table.Names()[i]
		if !strings.Contains(line, name) {
			t.Errorf("line %d = %q, want name %q", i, line, name)
		}
		if strings.HasPrefix(line, "*") {
			active++
			if name != "Dracula" {
				t.Errorf("active marker on %q", name)
			}
		}
	}
	if active != 1 {
		t.Errorf("active markers = %d, want 1", active)
	}
	if !strings.Contains(lines[len(lines)-1], "#101010") {
		t.Errorf("custom theme line = %q", lines[len(lines)-1])
	}
}

func TestFormatThemes_Preview(t *testing.T) {
	t.Parallel()

	table := theme.NewTable()
	plain := formatThemes(table, "", false)
	preview := formatThemes(table, "", true)
	if width.VisibleWidth(preview) <= width.VisibleWidth(plain) {
		t.Error("preview should add palette swatches")
	}
}
