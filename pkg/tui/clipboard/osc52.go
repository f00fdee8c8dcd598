// ABOUTME: OSC 52 document: scratch buffers whose copy command emits an OSC 52 sequence
// ABOUTME: Lets the legacy copy path reach the user's clipboard through the host terminal

package clipboard

import (
	"io"
	"os"
	"strings"
	"sync"

	"github.com/aymanbagabas/go-osc52/v2"
)

// OSC52Document implements Document over a host terminal writer.
type OSC52Document struct {
	mu       sync.Mutex
	out      io.Writer
	mode     osc52.Mode
	attached map[*scratch]struct{}
	focused  *scratch
}

type scratch struct {
	doc      *OSC52Document
	value    string
	selected bool
	style    map[string]string
}

func (s *scratch) SetValue(text string) {
	s.doc.mu.Lock()
	s.value = text
	s.selected = false
	s.doc.mu.Unlock()
}

func (s *scratch) Focus() {
	s.doc.mu.Lock()
	if _, ok := s.doc.attached[s]; ok {
		s.doc.focused = s
	}
	s.doc.mu.Unlock()
}

func (s *scratch) Select() {
	s.doc.mu.Lock()
	s.selected = true
	s.doc.mu.Unlock()
}

// NewOSC52Document writes copy sequences to out using the given passthrough mode.
func NewOSC52Document(out io.Writer, mode osc52.Mode) *OSC52Document {
	return &OSC52Document{out: out, mode: mode, attached: make(map[*scratch]struct{})}
}

// DetectMode picks tmux or screen passthrough from the environment.
func DetectMode() osc52.Mode {
	if os.Getenv("TMUX") != "" {
		return osc52.TmuxMode
	}
	if strings.HasPrefix(os.Getenv("TERM"), "screen") {
		return osc52.ScreenMode
	}
	return osc52.DefaultMode
}

// CreateElement returns a detached scratch buffer.
func (d *OSC52Document) CreateElement(style map[string]string) Element {
	return &scratch{doc: d, style: style}
}

// Append attaches el to the document.
func (d *OSC52Document) Append(el Element) {
	s, ok := el.(*scratch)
	if !ok || s.doc != d {
		return
	}
	d.mu.Lock()
	d.attached[s] = struct{}{}
	d.mu.Unlock()
}

// Remove detaches el, dropping focus if it held it.
func (d *OSC52Document) Remove(el Element) {
	s, ok := el.(*scratch)
	if !ok {
		return
	}
	d.mu.Lock()
	delete(d.attached, s)
	if d.focused == s {
		d.focused = nil
	}
	d.mu.Unlock()
}

// ExecCopy emits the focused element's selected text as OSC 52.
// It fails when nothing attached is focused and selected.
func (d *OSC52Document) ExecCopy() bool {
	d.mu.Lock()
	s := d.focused
	if s == nil || !s.selected {
		d.mu.Unlock()
		return false
	}
	text := s.value
	d.mu.Unlock()

	_, err := osc52.New(text).Mode(d.mode).WriteTo(d.out)
	return err == nil
}

// Attached returns the number of scratch elements currently in the document.
func (d *OSC52Document) Attached() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.attached)
}
