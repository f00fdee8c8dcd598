// ABOUTME: serve command: exposes local shells to websocket clients over HTTP
// ABOUTME: One PTY per connection, optionally capped; shuts down gracefully on interrupt

package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"time"

	"golang.org/x/net/netutil"

	ltlog "github.com/mauromedda/lunaterm/internal/log"
	"github.com/mauromedda/lunaterm/internal/transport"
)

const shutdownTimeout = 5 * time.Second

func runServe(ctx context.Context, args cliArgs) error {
	logger := ltlog.New("serve")

	shell := args.shell
	if shell == "" {
		shell = os.Getenv("SHELL")
	}
	opts := transport.ServerOptions{
		PTY:    transport.PTYOptions{Command: shell, Args: args.args},
		Logger: logger.With("ws"),
	}
	if args.anyOrigin {
		opts.CheckOrigin = func(*http.Request) bool { return true }
	}

	mux := http.NewServeMux()
	mux.Handle("/ws", transport.NewServer(opts))
	srv := &http.Server{
		Addr:              args.addr,
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ln, err := listen(ctx, args.addr, args.maxClients)
	if err != nil {
		return err
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("listening on %s", ln.Addr())
		errCh <- srv.Serve(ln)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serving %s: %w", args.addr, err)
	case <-ctx.Done():
	}

	shutCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutCtx); err != nil {
		return fmt.Errorf("shutting down: %w", err)
	}
	logger.Info("stopped")
	return nil
}

// listen binds addr; a positive limit caps concurrent connections, further
// clients wait in the accept backlog.
func listen(ctx context.Context, addr string, limit int) (net.Listener, error) {
	var lc net.ListenConfig
	ln, err := lc.Listen(ctx, "tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("listening on %s: %w", addr, err)
	}
	if limit > 0 {
		ln = netutil.LimitListener(ln, limit)
	}
	return ln, nil
}
