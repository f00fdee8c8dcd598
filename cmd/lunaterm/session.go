// ABOUTME: shell and connect commands: a session over the process TTY bridged to a PTY or websocket
// ABOUTME: Wires settings, themes, keybindings, the control channel, file transfer and hot reload

package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"github.com/mauromedda/lunaterm/internal/config"
	"github.com/mauromedda/lunaterm/internal/eventbus"
	"github.com/mauromedda/lunaterm/internal/keybindings"
	ltlog "github.com/mauromedda/lunaterm/internal/log"
	"github.com/mauromedda/lunaterm/internal/mode/rpc"
	"github.com/mauromedda/lunaterm/internal/session"
	"github.com/mauromedda/lunaterm/internal/transfer"
	"github.com/mauromedda/lunaterm/internal/transport"
	"github.com/mauromedda/lunaterm/pkg/tui/terminal"
	"github.com/mauromedda/lunaterm/pkg/tui/theme"
)

// resizer fans a fitted size out to the remote and the transfer sentry.
type resizer struct {
	remote transport.Channel
	sentry atomic.Pointer[transfer.Sentry]
}

func (r *resizer) Resize(cols, rows int) error {
	if s := r.sentry.Load(); s != nil {
		s.SetColumns(cols)
	}
	return r.remote.Resize(cols, rows)
}

func runSession(ctx context.Context, args cliArgs) error {
	logger := ltlog.New("lunaterm")

	cfg, err := config.Load(config.SettingsFile())
	if err != nil {
		logger.Error("settings: %v", err)
		return fmt.Errorf("loading settings: %w", err)
	}
	themes := loadThemes(config.ThemesDir(), logger)
	nav := keybindings.New(config.KeybindingsFile())
	bus := eventbus.NewHostBus()

	surface := terminal.NewProcessTerminal()
	defer terminal.RestoreOnPanic(surface)

	dims := surface.Dimensions()
	rem, exited, err := openRemote(ctx, args, dims, logger)
	if err != nil {
		return err
	}
	defer rem.Close()

	// With file transfer enabled the session writes into a pipe the sentry
	// reads; otherwise keystrokes go straight to the remote.
	var (
		out      io.Writer = rem
		clientIn *io.PipeReader
	)
	if args.trzsz {
		var w *io.PipeWriter
		clientIn, w = io.Pipe()
		out = w
		defer w.Close()
	}

	rz := &resizer{remote: rem}
	s, err := session.Create(surface, cfg, session.Deps{
		Transport:            out,
		Resizer:              rz,
		Bus:                  bus,
		Themes:               themes,
		Navigation:           nav,
		KeepWordOnRightClick: !args.words,
		Logger:               logger.With("session"),
	})
	if err != nil {
		return fmt.Errorf("starting session: %w", err)
	}
	defer func() {
		if err := s.Close(); err != nil {
			logger.Warn("closing session: %v", err)
		}
	}()

	if cfg.ThemeName != "" {
		s.ApplyTheme(cfg.ThemeName, nil)
	}

	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()
	g, gctx := errgroup.WithContext(runCtx)

	var sentry *transfer.Sentry
	if args.trzsz {
		sentry, err = transfer.NewSentry(transfer.SentryConfig{
			ClientIn:       clientIn,
			ClientOut:      nopCloser{s.OutputWriter()},
			ServerIn:       rem,
			ServerOut:      rem,
			Columns:        dims.Cols,
			DetectDragFile: true,
			EnableZmodem:   args.zmodem,
			EnableOSC52:    true,
			DownloadPath:   args.download,
			Logger:         logger.With("transfer"),
		})
		if err != nil {
			return err
		}
		rz.sentry.Store(sentry)
		defer stopTransfer(sentry, logger)
		g.Go(func() error {
			select {
			case <-exited:
			case <-gctx.Done():
			}
			cancel()
			return nil
		})
	} else {
		g.Go(func() error {
			_, err := io.Copy(s.OutputWriter(), rem)
			cancel()
			if err != nil {
				// A PTY whose child exited reports EIO rather than EOF.
				logger.Debug("remote closed: %v", err)
			}
			return nil
		})
	}

	g.Go(func() error {
		err := surface.Run(gctx)
		cancel()
		if errors.Is(err, context.Canceled) {
			return nil
		}
		return err
	})

	if args.control {
		socket := args.socket
		if socket == "" {
			socket = config.SocketFile()
		}
		router := rpc.NewRouter()
		rpc.RegisterHandlers(router, controlDeps(s, themes, sentry))
		g.Go(func() error {
			return rpc.Listen(gctx, socket, router, bus, logger.With("rpc"))
		})
	}

	w := config.NewWatcher([]string{config.SettingsFile(), config.KeybindingsFile()}, func(changed []string) {
		reload(s, nav, changed, logger)
	})
	w.Start(gctx)
	defer w.Stop()

	return g.Wait()
}

// openRemote starts the PTY for shell or dials the server for connect. The
// returned channel closes when a local child exits; it is nil for websocket
// remotes, which end with EOF instead.
func openRemote(ctx context.Context, args cliArgs, d terminal.Dimensions, logger *ltlog.Logger) (transport.Channel, <-chan struct{}, error) {
	if args.command == "connect" {
		header := http.Header{}
		for _, h := range args.header {
			name, value, _ := strings.Cut(h, ":")
			header.Add(strings.TrimSpace(name), strings.TrimSpace(value))
		}
		c, err := transport.Dial(ctx, args.url, transport.DialOptions{
			Header: header,
			Cols:   d.Cols,
			Rows:   d.Rows,
			Logger: logger.With("ws"),
		})
		if err != nil {
			return nil, nil, err
		}
		return c, nil, nil
	}

	opts := transport.PTYOptions{Command: args.shell, Cols: d.Cols, Rows: d.Rows}
	if len(args.args) > 0 {
		opts.Command, opts.Args = args.args[0], args.args[1:]
	}
	if opts.Command == "" {
		opts.Command = os.Getenv("SHELL")
	}
	p, err := transport.StartPTY(opts)
	if err != nil {
		return nil, nil, err
	}
	return p, p.Done(), nil
}

// reload reacts to edits of the settings or keybindings files.
func reload(s *session.Session, nav *keybindings.Manager, changed []string, logger *ltlog.Logger) {
	for _, path := range changed {
		switch path {
		case config.KeybindingsFile():
			nav.Reload(path)
			logger.Debug("keybindings reloaded")
		case config.SettingsFile():
			next, err := config.Load(path)
			if err != nil {
				logger.Warn("reloading settings: %v", err)
				continue
			}
			if next.ThemeName != "" && next.ThemeName != s.Emulator().Theme().Name {
				s.ApplyTheme(next.ThemeName, nil)
			}
		}
	}
}

// loadThemes builds the table from the built-ins plus custom theme files.
func loadThemes(dir string, logger *ltlog.Logger) *theme.Table {
	table := theme.NewTable()
	custom, err := theme.LoadDir(dir)
	if err != nil {
		logger.Warn("loading themes: %v", err)
	}
	for _, th := range custom {
		if err := table.Add(th); err != nil {
			logger.Warn("theme %s: %v", th.Name, err)
		}
	}
	return table
}

// stopTransfer aborts a transfer still running when the session ends,
// keeping what was received.
func stopTransfer(sentry *transfer.Sentry, logger *ltlog.Logger) {
	if sentry.Transferring() {
		logger.Warn("session ended during a file transfer")
	}
	sentry.Stop()
}

// controlDeps exposes session operations to the control channel. A nil
// sentry leaves upload unavailable.
func controlDeps(s *session.Session, themes *theme.Table, sentry *transfer.Sentry) *rpc.Deps {
	d := &rpc.Deps{
		ApplyTheme: func(name string) rpc.ThemeResult {
			_, found := themes.Lookup(name)
			th := s.ApplyTheme(name, nil)
			return rpc.ThemeResult{Name: th.Name, Background: th.Background, Found: found}
		},
		ListThemes: themes.Names,
		Paste: func(text string) bool {
			if text == "" {
				return false
			}
			s.Paste(text)
			return true
		},
		Config:    s.Config,
		Selection: s.Emulator().Selection,
	}
	if sentry != nil {
		d.Upload = sentry.Upload
	}
	return d
}

type nopCloser struct{ io.Writer }

func (nopCloser) Close() error { return nil }
