// ABOUTME: Session wires one terminal instance: emulator, host surface, interceptor and transport
// ABOUTME: Create registers every listener once; Close disposes them and waits for clipboard work

package session

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/mauromedda/lunaterm/internal/config"
	"github.com/mauromedda/lunaterm/internal/emulator"
	"github.com/mauromedda/lunaterm/internal/eventbus"
	"github.com/mauromedda/lunaterm/internal/input"
	"github.com/mauromedda/lunaterm/internal/intercept"
	"github.com/mauromedda/lunaterm/internal/log"
	"github.com/mauromedda/lunaterm/pkg/tui/clipboard"
	"github.com/mauromedda/lunaterm/pkg/tui/key"
	"github.com/mauromedda/lunaterm/pkg/tui/terminal"
	"github.com/mauromedda/lunaterm/pkg/tui/theme"
)

var (
	// ErrNoTransport is returned by Create when Deps.Transport is nil.
	ErrNoTransport = errors.New("session: no transport")
	// ErrNoSurface is returned by Create when the surface is nil.
	ErrNoSurface = errors.New("session: no surface")
	// ErrClosed is returned by Input after Close.
	ErrClosed = errors.New("session: closed")
)

// Resizer propagates the fitted grid size to the remote end.
type Resizer interface {
	Resize(cols, rows int) error
}

// Deps are the collaborators a session needs. Only Transport is required.
type Deps struct {
	// Transport receives every byte the user types or pastes.
	Transport io.Writer
	// Resizer is told about grid changes after each fit.
	Resizer Resizer
	// Bridge is the clipboard bridge. Nil uses the default chain ending in
	// an OSC 52 copy through the surface.
	Bridge *clipboard.Bridge
	// Bus receives host notifications. Nil drops them.
	Bus *eventbus.HostBus
	// Themes resolves ApplyTheme names. Nil knows only the builtins.
	Themes *theme.Table
	// Navigation resolves navigation shortcuts. Nil uses alt+left/right.
	Navigation intercept.NavigationResolver
	// KeepWordOnRightClick stops a right press from selecting the word
	// under the pointer.
	KeepWordOnRightClick bool
	Logger               *log.Logger
}

// Session is one live terminal instance.
type Session struct {
	cfg     config.Terminal
	surface terminal.Surface
	emu     *emulator.Headless
	fit     *emulator.Fitter
	pre     *input.Preprocessor
	icpt    *intercept.Interceptor
	bridge  *clipboard.Bridge
	bus     *eventbus.HostBus
	themes  *theme.Table
	resizer Resizer
	log     *log.Logger

	ctx    context.Context
	cancel context.CancelFunc
	g      *errgroup.Group

	mu        sync.Mutex
	transport io.Writer
	stopping  bool
	closed    bool
	themed    bool
	disposers []func()
	closeOnce sync.Once
}

// Create builds a session over surface. It mounts the surface, fits the
// emulator to it and focuses the emulator. cfg is copied and normalized;
// later edits to the caller's value are not observed.
func Create(surface terminal.Surface, cfg config.Terminal, deps Deps) (*Session, error) {
	if deps.Transport == nil {
		return nil, ErrNoTransport
	}
	if surface == nil {
		return nil, ErrNoSurface
	}
	logger := deps.Logger
	if logger == nil {
		logger = log.New("session")
	}
	bridge := deps.Bridge
	if bridge == nil {
		doc := clipboard.NewOSC52Document(surface, clipboard.DetectMode())
		bridge = clipboard.Default(doc, cfg.CopyCommand, nil, logger.With("clipboard"))
	}
	logger.Debug("clipboard strategies: %v", bridge.Strategies())
	themes := deps.Themes
	if themes == nil {
		themes = theme.NewTable()
	}

	cfg = cfg.Normalize()
	ctx, cancel := context.WithCancel(context.Background())
	g, gctx := errgroup.WithContext(ctx)

	s := &Session{
		cfg:       cfg,
		surface:   surface,
		pre:       input.NewPreprocessor(cfg, logger),
		icpt:      intercept.New(bridge, deps.Bus, deps.Navigation, logger),
		bridge:    bridge,
		bus:       deps.Bus,
		themes:    themes,
		resizer:   deps.Resizer,
		log:       logger,
		ctx:       gctx,
		cancel:    cancel,
		g:         g,
		transport: deps.Transport,
	}

	s.emu = emulator.NewHeadless(emulator.Options{
		FontSize:              cfg.FontSize,
		LineHeight:            cfg.LineHeight,
		RightClickSelectsWord: !deps.KeepWordOnRightClick,
		Theme:                 &theme.Theme{Background: theme.DefaultBackground},
	},
		emulator.WithResponses(writerFunc(s.send)),
		emulator.WithClipboardSink(remoteClipboard{s}),
		emulator.WithLogger(logger.With("emulator")),
	)
	s.fit = emulator.NewFitter(s.emu)

	if err := surface.Mount(); err != nil {
		cancel()
		return nil, fmt.Errorf("mounting surface: %w", err)
	}
	s.listen()
	s.resize(surface.Dimensions())
	s.emu.Focus()
	return s, nil
}

// listen registers the session's handlers. It runs exactly once per session.
func (s *Session) listen() {
	s.disposers = append(s.disposers,
		s.surface.OnResize(s.resize),
		s.surface.OnFocus(s.focus),
		s.surface.OnBlur(s.blur),
		s.surface.OnMouse(s.mouse),
		s.surface.OnContextMenu(s.contextMenu),
		s.surface.OnKey(s.key),
		s.surface.OnPaste(s.paste),
		s.emu.OnSelectionChange(s.selectionChanged),
	)
}

func (s *Session) resize(d terminal.Dimensions) {
	cols, rows, changed := s.fit.Fit(emulator.Container{
		Cols:     d.Cols,
		Rows:     d.Rows,
		WidthPx:  d.WidthPx,
		HeightPx: d.HeightPx,
	})
	s.log.Debug("Windows resize event, %d, %d", cols, rows)
	if !changed || s.resizer == nil {
		return
	}
	if err := s.resizer.Resize(cols, rows); err != nil {
		s.log.Warn("propagating resize %dx%d: %v", cols, rows, err)
	}
}

func (s *Session) focus() {
	s.emu.Focus()
	if s.emu.FocusReporting() {
		s.forward(key.FocusIn)
	}
}

func (s *Session) blur() {
	s.emu.Blur()
	if s.emu.FocusReporting() {
		s.forward(key.FocusOut)
	}
}

// mouse sends reports to the remote when it asked for them and otherwise
// lets the emulator turn them into selections.
func (s *Session) mouse(ev key.MouseEvent) {
	if s.emu.MouseReporting() {
		s.forward(ev.SGR())
		return
	}
	s.emu.HandleMouse(ev)
}

func (s *Session) contextMenu(ev key.MouseEvent) {
	cfg := s.cfg
	s.spawn(func() {
		if text, handled := s.icpt.HandleContextMenu(s.ctx, ev, cfg); handled {
			s.paste(text)
		}
	})
}

func (s *Session) key(in key.Input) {
	ev := in.Key.Event()
	if s.icpt.HandleKey(ev, s.emu) {
		if err := s.Input(in.Raw); err != nil && !errors.Is(err, ErrClosed) {
			s.log.Warn("sending key: %v", err)
		}
		return
	}
	if ev.Is("v", true) {
		s.spawn(func() { s.paste(s.bridge.Read(s.ctx)) })
	}
}

func (s *Session) paste(text string) {
	if text == "" {
		return
	}
	if err := s.Input(input.PreparePaste(text, s.emu.BracketedPaste())); err != nil && !errors.Is(err, ErrClosed) {
		s.log.Warn("sending paste: %v", err)
	}
}

// selectionChanged captures synchronously so the cache follows event order
// and leaves the clipboard write to a goroutine.
func (s *Session) selectionChanged() {
	text := s.icpt.CaptureSelection(s.emu)
	s.spawn(func() { s.icpt.SyncSelection(s.ctx, text) })
}

// Input runs chunk through the input preprocessor and writes the result to
// the transport.
func (s *Session) Input(chunk string) error {
	out := s.pre.Process(chunk)
	if out == "" {
		return nil
	}
	_, err := s.send([]byte(out))
	return err
}

// forward writes raw bytes to the transport without preprocessing.
func (s *Session) forward(raw string) {
	if _, err := s.send([]byte(raw)); err != nil && !errors.Is(err, ErrClosed) {
		s.log.Warn("forwarding to remote: %v", err)
	}
}

func (s *Session) send(p []byte) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return 0, ErrClosed
	}
	return s.transport.Write(p)
}

// Output feeds remote output to the emulator and the host surface.
func (s *Session) Output(p []byte) (int, error) {
	if _, err := s.emu.Write(p); err != nil {
		return 0, fmt.Errorf("emulator write: %w", err)
	}
	if _, err := s.surface.Write(p); err != nil {
		return 0, fmt.Errorf("surface write: %w", err)
	}
	return len(p), nil
}

// OutputWriter returns Output as an io.Writer for io.Copy from the remote.
func (s *Session) OutputWriter() io.Writer {
	return writerFunc(s.Output)
}

// ApplyTheme resolves name, applies it to the emulator and the host
// colors, then reports the new background through notify and the bus.
// Unknown names fall back to the default theme.
func (s *Session) ApplyTheme(name string, notify func(background string)) *theme.Theme {
	th, found := s.themes.Lookup(name)
	s.log.Debug("Theme: %s", name)
	if !found {
		if alts := s.themes.Suggest(name, 3); len(alts) > 0 {
			s.log.Debug("unknown theme %q, did you mean %v", name, alts)
		}
	}

	s.emu.SetTheme(th)
	if _, err := io.WriteString(s.surface, hostColors(th)); err != nil {
		s.log.Warn("recoloring host: %v", err)
	} else {
		s.mu.Lock()
		s.themed = true
		s.mu.Unlock()
	}

	if notify != nil {
		notify(th.Background)
	}
	s.bus.Publish(eventbus.HostEvent{Name: eventbus.EventBackgroundColor, Value: th.Background})
	return th
}

// Paste sends text as if the user pasted it.
func (s *Session) Paste(text string) {
	s.paste(text)
}

// Config returns the session's configuration snapshot.
func (s *Session) Config() config.Terminal {
	return s.cfg
}

// Emulator exposes the session's emulator.
func (s *Session) Emulator() emulator.Emulator {
	return s.emu
}

// Close disposes every listener, waits for pending clipboard work and
// unmounts the surface. Calls after the first return nil.
func (s *Session) Close() error {
	var err error
	s.closeOnce.Do(func() { err = s.close() })
	return err
}

func (s *Session) close() error {
	for _, dispose := range s.disposers {
		dispose()
	}
	s.disposers = nil

	s.mu.Lock()
	s.stopping = true
	s.mu.Unlock()
	_ = s.g.Wait()
	s.cancel()

	s.mu.Lock()
	s.closed = true
	themed := s.themed
	s.mu.Unlock()

	var errs []error
	if themed {
		if _, err := io.WriteString(s.surface, hostColorsReset); err != nil {
			errs = append(errs, fmt.Errorf("resetting host colors: %w", err))
		}
	}
	if err := s.surface.Unmount(); err != nil {
		errs = append(errs, fmt.Errorf("unmounting surface: %w", err))
	}
	return errors.Join(errs...)
}

// spawn runs fn in the session's group unless Close has begun.
func (s *Session) spawn(fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.stopping {
		return
	}
	s.g.Go(func() error {
		fn()
		return nil
	})
}

// remoteClipboard stores OSC 52 writes from the remote and syncs them to
// the local clipboard in the background.
type remoteClipboard struct{ s *Session }

func (r remoteClipboard) Capture(text string) string {
	text = r.s.bridge.Capture(text)
	if text != "" {
		r.s.spawn(func() { r.s.bridge.Sync(r.s.ctx, text) })
	}
	return text
}

type writerFunc func([]byte) (int, error)

func (f writerFunc) Write(p []byte) (int, error) { return f(p) }
