// ABOUTME: Theme table with a total name lookup: a miss resolves to the default theme
// ABOUTME: Holds built-ins plus custom themes and suggests close names for misses

package theme

import (
	"sort"
	"sync"

	"github.com/mauromedda/lunaterm/pkg/tui/fuzzy"
)

// Table maps theme names to themes. The zero value is not usable; use NewTable.
type Table struct {
	mu     sync.RWMutex
	themes map[string]*Theme
}

// NewTable returns a table seeded with the built-in themes.
func NewTable() *Table {
	t := &Table{themes: make(map[string]*Theme, len(builtins))}
	for name := range builtins {
		t.themes[name] = Builtin(name)
	}
	return t
}

// Add registers th under its name, replacing any existing entry.
// The default theme cannot be replaced.
func (t *Table) Add(th *Theme) error {
	if err := th.Validate(); err != nil {
		return err
	}
	if th.Name == DefaultName {
		return nil
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	t.themes[th.Name] = th.withDefaults(&defaultTheme)
	return nil
}

// Lookup returns the named theme. It never returns nil: an unknown name
// yields the default theme and found=false.
func (t *Table) Lookup(name string) (th *Theme, found bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	if th, ok := t.themes[name]; ok {
		c := *th
		return &c, true
	}
	return Default(), false
}

// Names returns all theme names, sorted.
func (t *Table) Names() []string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	names := make([]string, 0, len(t.themes))
	for n := range t.themes {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Suggest returns up to limit theme names that fuzzily match name.
func (t *Table) Suggest(name string, limit int) []string {
	return fuzzy.Suggest(name, t.Names(), limit)
}
