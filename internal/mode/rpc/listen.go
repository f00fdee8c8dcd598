// ABOUTME: Unix socket listener for the control channel
// ABOUTME: Every connection gets its own Server and a subscription to host events

package rpc

import (
	"context"
	"errors"
	"fmt"
	"net"
	"os"

	"golang.org/x/sync/errgroup"

	"github.com/mauromedda/lunaterm/internal/eventbus"
	"github.com/mauromedda/lunaterm/internal/log"
)

// Listen serves the control channel on a unix socket at path until ctx is
// cancelled. A stale socket file is replaced.
func Listen(ctx context.Context, path string, router *Router, bus *eventbus.HostBus, logger *log.Logger) error {
	if logger == nil {
		logger = log.Nop()
	}
	if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("removing stale socket: %w", err)
	}

	var lc net.ListenConfig
	ln, err := lc.Listen(ctx, "unix", path)
	if err != nil {
		return fmt.Errorf("listening on %s: %w", path, err)
	}
	logger.Info("control channel on %s", path)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		<-gctx.Done()
		return ln.Close()
	})
	g.Go(func() error {
		for {
			conn, err := ln.Accept()
			if err != nil {
				if gctx.Err() != nil {
					return nil
				}
				return fmt.Errorf("accepting control connection: %w", err)
			}
			g.Go(func() error {
				ServeConn(gctx, conn, router, bus, logger)
				return nil
			})
		}
	})

	err = g.Wait()
	_ = os.Remove(path)
	return err
}

// ServeConn serves one connection and closes it when the client leaves or
// ctx is cancelled.
func ServeConn(ctx context.Context, conn net.Conn, router *Router, bus *eventbus.HostBus, logger *log.Logger) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	srv := NewServer(conn, conn, router.Handle)
	if bus != nil {
		unsubscribe := bus.Subscribe(func(ev eventbus.HostEvent) {
			if err := srv.Notify(ev); err != nil {
				logger.Debug("dropping %s notification: %v", ev.Name, err)
			}
		})
		defer unsubscribe()
	}

	go func() {
		<-ctx.Done()
		_ = conn.Close()
	}()

	if err := srv.Run(ctx); err != nil && !errors.Is(err, net.ErrClosed) && !errors.Is(err, context.Canceled) {
		logger.Warn("control connection: %v", err)
	}
}
