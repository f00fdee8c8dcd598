// ABOUTME: Websocket HTTP handler serving one PTY per connection
// ABOUTME: Waits for TERMINAL_INIT, then pumps PTY output and client frames until either side ends

package transport

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"sync"
	"sync/atomic"
	"time"
	"unicode/utf8"

	"github.com/gorilla/websocket"
	"golang.org/x/sync/errgroup"

	"github.com/mauromedda/lunaterm/internal/log"
)

const initTimeout = 10 * time.Second

// ServerOptions configures the handler.
type ServerOptions struct {
	PTY PTYOptions
	// CheckOrigin overrides the same-origin check; nil keeps gorilla's default.
	CheckOrigin func(r *http.Request) bool
	Logger      *log.Logger
}

// Server is an http.Handler bridging websocket clients to local PTYs.
type Server struct {
	opts     ServerOptions
	upgrader websocket.Upgrader
	log      *log.Logger
	active   atomic.Int64
}

// NewServer returns a handler for opts.
func NewServer(opts ServerOptions) *Server {
	logger := opts.Logger
	if logger == nil {
		logger = log.New("transport-server")
	}
	return &Server{
		opts: opts,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  4096,
			WriteBufferSize: 4096,
			CheckOrigin:     opts.CheckOrigin,
		},
		log: logger,
	}
}

// Active returns the number of live sessions.
func (s *Server) Active() int {
	return int(s.active.Load())
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.log.Warn("upgrade failed: %v", err)
		return
	}
	defer conn.Close()

	s.active.Add(1)
	defer s.active.Add(-1)

	if err := s.serve(r.Context(), conn); err != nil {
		s.log.Warn("session ended: %v", err)
	}
}

func (s *Server) serve(ctx context.Context, conn *websocket.Conn) error {
	init, err := readInit(conn)
	if err != nil {
		return err
	}
	size, err := init.WindowSize()
	if err != nil {
		return err
	}

	opts := s.opts.PTY
	opts.Cols, opts.Rows = size.Cols, size.Rows
	p, err := StartPTY(opts)
	if err != nil {
		return err
	}
	defer p.Close()

	id := init.ID
	if id == "" {
		id = p.ID()
	}
	s.log.Info("session %s started %dx%d", id, size.Cols, size.Rows)

	var writeMu sync.Mutex
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		defer func() {
			_ = writeMessage(conn, &writeMu, Message{ID: id, Type: TypeClose})
			_ = conn.Close()
		}()
		return pumpOutput(p, func(data string) error {
			return writeMessage(conn, &writeMu, Message{ID: id, Type: TypeData, Data: data})
		})
	})

	g.Go(func() error {
		defer p.Close()
		return s.pumpInput(ctx, conn, &writeMu, p, id)
	})

	err = g.Wait()
	s.log.Info("session %s closed", id)
	return err
}

func readInit(conn *websocket.Conn) (Message, error) {
	_ = conn.SetReadDeadline(time.Now().Add(initTimeout))
	defer conn.SetReadDeadline(time.Time{})

	_, raw, err := conn.ReadMessage()
	if err != nil {
		return Message{}, fmt.Errorf("reading init frame: %w", err)
	}
	msg, err := DecodeMessage(raw)
	if err != nil {
		return Message{}, err
	}
	if msg.Type != TypeInit {
		return Message{}, fmt.Errorf("first frame is %s, want %s", msg.Type, TypeInit)
	}
	return msg, nil
}

// pumpOutput forwards PTY output, holding back an incomplete trailing rune
// so every frame is valid UTF-8.
func pumpOutput(r io.Reader, send func(string) error) error {
	buf := make([]byte, 32*1024)
	var carry []byte
	for {
		n, err := r.Read(buf)
		if n > 0 {
			data := append(carry, buf[:n]...)
			cut := completeRunes(data)
			if cut > 0 {
				if serr := send(string(data[:cut])); serr != nil {
					return serr
				}
			}
			carry = append([]byte(nil), data[cut:]...)
		}
		if err != nil {
			if len(carry) > 0 {
				_ = send(string(carry))
			}
			// The PTY master reports EIO once the process exits.
			return nil
		}
	}
}

// completeRunes returns the length of data without a truncated final rune.
func completeRunes(data []byte) int {
	for i := len(data) - 1; i >= 0 && i >= len(data)-utf8.UTFMax; i-- {
		if utf8.RuneStart(data[i]) {
			if !utf8.FullRune(data[i:]) {
				return i
			}
			break
		}
	}
	return len(data)
}

func (s *Server) pumpInput(ctx context.Context, conn *websocket.Conn, writeMu *sync.Mutex, p *PTY, id string) error {
	for {
		if ctx.Err() != nil {
			return nil
		}
		_, raw, err := conn.ReadMessage()
		if err != nil {
			var ce *websocket.CloseError
			if errors.As(err, &ce) || errors.Is(err, net.ErrClosed) {
				return nil
			}
			return fmt.Errorf("reading frame: %w", err)
		}
		msg, err := DecodeMessage(raw)
		if err != nil {
			s.log.Warn("session %s: dropping frame: %v", id, err)
			continue
		}

		switch msg.Type {
		case TypeData:
			if _, err := io.WriteString(p, msg.Data); err != nil {
				return fmt.Errorf("writing to pty: %w", err)
			}
		case TypeResize:
			size, err := msg.WindowSize()
			if err != nil {
				s.log.Warn("session %s: %v", id, err)
				continue
			}
			if err := p.Resize(size.Cols, size.Rows); err != nil {
				s.log.Warn("session %s: %v", id, err)
			}
		case TypePing:
			if err := writeMessage(conn, writeMu, Message{ID: id, Type: TypePing}); err != nil {
				return err
			}
		case TypeClose:
			return nil
		}
	}
}
