// ABOUTME: Bounded in-memory scrollback ring for the headless emulator
// ABOUTME: Oldest lines are dropped once the configured capacity is reached

package emulator

import (
	"sync"

	headlessterm "github.com/danielgatis/go-headless-term"
)

// Ring is a fixed-capacity scrollback store.
type Ring struct {
	mu    sync.Mutex
	lines [][]headlessterm.Cell
	start int
	n     int
	max   int
}

// NewRing returns a ring holding at most max lines.
func NewRing(max int) *Ring {
	r := &Ring{}
	r.SetMaxLines(max)
	return r
}

// Push appends a copy of line, evicting the oldest line when full.
func (r *Ring) Push(line []headlessterm.Cell) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.max == 0 {
		return
	}
	cp := make([]headlessterm.Cell, len(line))
	copy(cp, line)

	if r.n < r.max {
		r.lines[(r.start+r.n)%r.max] = cp
		r.n++
		return
	}
	r.lines[r.start] = cp
	r.start = (r.start + 1) % r.max
}

func (r *Ring) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.n
}

// Line returns the line at index, 0 being the oldest, or nil.
func (r *Ring) Line(index int) []headlessterm.Cell {
	r.mu.Lock()
	defer r.mu.Unlock()
	if index < 0 || index >= r.n {
		return nil
	}
	return r.lines[(r.start+index)%r.max]
}

func (r *Ring) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.lines = make([][]headlessterm.Cell, r.max)
	r.start, r.n = 0, 0
}

// SetMaxLines resizes the ring, keeping the newest lines.
func (r *Ring) SetMaxLines(max int) {
	if max < 0 {
		max = 0
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	keep := min(r.n, max)
	lines := make([][]headlessterm.Cell, max)
	for i := range keep {
		lines[i] = r.lines[(r.start+r.n-keep+i)%r.max]
	}
	r.lines, r.start, r.n, r.max = lines, 0, keep, max
}

func (r *Ring) MaxLines() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.max
}

var _ headlessterm.ScrollbackProvider = (*Ring)(nil)
