// ABOUTME: Headless emulator backed by go-headless-term: VT state, scrollback and selection
// ABOUTME: Mouse gestures become selections; listeners hear about every selection change

package emulator

import (
	"io"
	"sync"
	"unicode"

	headlessterm "github.com/danielgatis/go-headless-term"

	"github.com/mauromedda/lunaterm/internal/log"
	"github.com/mauromedda/lunaterm/pkg/tui/key"
	"github.com/mauromedda/lunaterm/pkg/tui/theme"
	"github.com/mauromedda/lunaterm/pkg/tui/width"
)

// ClipboardSink receives clipboard writes requested by the remote program
// through OSC 52.
type ClipboardSink interface {
	Capture(text string) string
}

// Headless is the default Emulator.
type Headless struct {
	term   *headlessterm.Terminal
	logger *log.Logger

	mu        sync.Mutex
	opts      Options
	theme     *theme.Theme
	focused   bool
	dragging  bool
	anchor    Position
	listeners map[int]func()
	nextID    int
}

// HeadlessOption customises NewHeadless.
type HeadlessOption func(*headlessConfig)

type headlessConfig struct {
	responses io.Writer
	clipboard ClipboardSink
	logger    *log.Logger
}

// WithResponses routes emulator replies (cursor reports, DA) to w, usually
// the transport.
func WithResponses(w io.Writer) HeadlessOption {
	return func(c *headlessConfig) { c.responses = w }
}

// WithClipboardSink routes remote OSC 52 writes to sink.
func WithClipboardSink(sink ClipboardSink) HeadlessOption {
	return func(c *headlessConfig) { c.clipboard = sink }
}

// WithLogger sets the logger used for debug output.
func WithLogger(l *log.Logger) HeadlessOption {
	return func(c *headlessConfig) { c.logger = l }
}

// NewHeadless creates a headless emulator sized to opts.
func NewHeadless(opts Options, hopts ...HeadlessOption) *Headless {
	var cfg headlessConfig
	for _, o := range hopts {
		o(&cfg)
	}
	if cfg.logger == nil {
		cfg.logger = log.New("emulator")
	}
	opts = withDefaults(opts)

	termOpts := []headlessterm.Option{
		headlessterm.WithSize(opts.Rows, opts.Cols),
		headlessterm.WithScrollback(NewRing(opts.Scrollback)),
	}
	if cfg.responses != nil {
		termOpts = append(termOpts, headlessterm.WithResponse(cfg.responses))
	}
	if cfg.clipboard != nil {
		termOpts = append(termOpts, headlessterm.WithClipboard(&clipboardAdapter{sink: cfg.clipboard, logger: cfg.logger}))
	}

	return &Headless{
		term:      headlessterm.New(termOpts...),
		logger:    cfg.logger,
		opts:      opts,
		theme:     opts.Theme,
		listeners: make(map[int]func()),
	}
}

func withDefaults(o Options) Options {
	if o.Cols <= 0 {
		o.Cols = 80
	}
	if o.Rows <= 0 {
		o.Rows = 24
	}
	if o.FontFamily == "" {
		o.FontFamily = FontFamily
	}
	if o.Scrollback <= 0 {
		o.Scrollback = DefaultScrollback
	}
	if o.LineHeight <= 0 {
		o.LineHeight = 1
	}
	return o
}

func (h *Headless) Write(p []byte) (int, error) {
	return h.term.Write(p)
}

// Resize changes the grid. Sizes below 1 are ignored.
func (h *Headless) Resize(cols, rows int) {
	if cols < 1 || rows < 1 {
		return
	}
	h.term.Resize(rows, cols)
	h.logger.Debug("resized to %dx%d", cols, rows)
	h.mu.Lock()
	h.opts.Cols, h.opts.Rows = cols, rows
	h.mu.Unlock()
}

func (h *Headless) Size() (int, int) {
	return h.term.Cols(), h.term.Rows()
}

func (h *Headless) Focus() {
	h.mu.Lock()
	h.focused = true
	h.mu.Unlock()
}

func (h *Headless) Blur() {
	h.mu.Lock()
	h.focused = false
	h.mu.Unlock()
}

func (h *Headless) Focused() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.focused
}

func (h *Headless) HasSelection() bool {
	return h.term.HasSelection()
}

func (h *Headless) Selection() string {
	return h.term.GetSelectedText()
}

// Select sets the selection and notifies listeners.
func (h *Headless) Select(start, end Position) {
	h.term.SetSelection(toTerm(start), toTerm(end))
	h.notify()
}

// ClearSelection drops the selection, notifying only if one was active.
func (h *Headless) ClearSelection() {
	if !h.term.HasSelection() {
		return
	}
	h.term.ClearSelection()
	h.notify()
}

// HandleMouse turns left-button press/drag/release into a range selection
// and, when enabled, a right press into a word selection.
func (h *Headless) HandleMouse(ev key.MouseEvent) bool {
	pos := Position{Row: ev.Row, Col: ev.Col}

	switch {
	case ev.Button == key.MouseLeft && ev.Action == key.MousePress:
		h.mu.Lock()
		h.dragging, h.anchor = true, pos
		h.mu.Unlock()
		if h.term.HasSelection() {
			h.term.ClearSelection()
			h.notify()
			return true
		}
		return false

	case ev.Button == key.MouseLeft && (ev.Action == key.MouseMotion || ev.Action == key.MouseRelease):
		h.mu.Lock()
		dragging, anchor := h.dragging, h.anchor
		if ev.Action == key.MouseRelease {
			h.dragging = false
		}
		h.mu.Unlock()
		if !dragging || anchor == pos {
			return false
		}
		h.Select(anchor, pos)
		return true

	case ev.IsContextMenu():
		h.mu.Lock()
		word := h.opts.RightClickSelectsWord
		h.mu.Unlock()
		if !word {
			return false
		}
		start, end, ok := wordAt(h.term.LineContent(ev.Row), ev.Col)
		if !ok {
			return false
		}
		h.Select(Position{Row: ev.Row, Col: start}, Position{Row: ev.Row, Col: end})
		return true
	}
	return false
}

// wordAt returns the inclusive cell range of the word under col.
func wordAt(line string, col int) (int, int, bool) {
	runes := []rune(line)
	i := width.ColumnToIndex(line, col)
	if i < 0 || !isWordRune(runes[i]) {
		return 0, 0, false
	}
	start, end := i, i
	for start > 0 && isWordRune(runes[start-1]) {
		start--
	}
	for end+1 < len(runes) && isWordRune(runes[end+1]) {
		end++
	}
	first, _ := width.IndexToColumn(line, start)
	last, cells := width.IndexToColumn(line, end)
	return first, last + cells - 1, true
}

func isWordRune(r rune) bool {
	return !unicode.IsSpace(r) && r != 0
}

// OnSelectionChange registers fn. The returned disposer is idempotent.
func (h *Headless) OnSelectionChange(fn func()) func() {
	h.mu.Lock()
	id := h.nextID
	h.nextID++
	h.listeners[id] = fn
	h.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			h.mu.Lock()
			delete(h.listeners, id)
			h.mu.Unlock()
		})
	}
}

func (h *Headless) notify() {
	h.mu.Lock()
	fns := make([]func(), 0, len(h.listeners))
	for id := range h.nextID {
		if fn, ok := h.listeners[id]; ok {
			fns = append(fns, fn)
		}
	}
	h.mu.Unlock()

	for _, fn := range fns {
		fn()
	}
}

func (h *Headless) SetTheme(th *theme.Theme) {
	h.mu.Lock()
	h.theme = th
	h.opts.Theme = th
	h.mu.Unlock()
}

func (h *Headless) Theme() *theme.Theme {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.theme
}

func (h *Headless) Options() Options {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.opts
}

func (h *Headless) ScrollbackLen() int {
	return h.term.ScrollbackLen()
}

func (h *Headless) BracketedPaste() bool {
	return h.term.HasMode(headlessterm.ModeBracketedPaste)
}

// MouseReporting reports whether the remote asked for SGR mouse reports, the
// only encoding the surface receives.
func (h *Headless) MouseReporting() bool {
	const reporting = headlessterm.ModeReportMouseClicks | headlessterm.ModeReportCellMouseMotion | headlessterm.ModeReportAllMouseMotion
	return h.term.HasMode(reporting) && h.term.HasMode(headlessterm.ModeSGRMouse)
}

func (h *Headless) FocusReporting() bool {
	return h.term.HasMode(headlessterm.ModeReportFocusInOut)
}

// LineContent returns visible row text with trailing spaces trimmed.
func (h *Headless) LineContent(row int) string {
	return h.term.LineContent(row)
}

func toTerm(p Position) headlessterm.Position {
	return headlessterm.Position{Row: p.Row, Col: p.Col}
}

// clipboardAdapter accepts remote clipboard writes and refuses reads so a
// remote program cannot query the local clipboard.
type clipboardAdapter struct {
	sink   ClipboardSink
	logger *log.Logger
}

func (c *clipboardAdapter) Read(byte) string { return "" }

func (c *clipboardAdapter) Write(_ byte, data []byte) {
	c.logger.Debug("remote clipboard write, %d bytes", len(data))
	c.sink.Capture(string(data))
}

var (
	_ Emulator                       = (*Headless)(nil)
	_ headlessterm.ClipboardProvider = (*clipboardAdapter)(nil)
)
