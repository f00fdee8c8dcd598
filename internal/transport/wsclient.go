// ABOUTME: Websocket client channel speaking the TERMINAL_* message protocol
// ABOUTME: Data frames feed Read; PING is answered; TERMINAL_CLOSE ends the stream with io.EOF

package transport

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/mauromedda/lunaterm/internal/log"
)

const writeWait = 10 * time.Second

// DialOptions configures Dial.
type DialOptions struct {
	Header     http.Header
	Cols, Rows int
	Logger     *log.Logger
}

// WSClient is a Channel over a websocket connection.
type WSClient struct {
	id   string
	conn *websocket.Conn
	log  *log.Logger

	writeMu sync.Mutex

	readMu  sync.Mutex
	pending []byte
	eof     bool

	closeOnce sync.Once
}

// Dial connects to url and sends TERMINAL_INIT with the initial size.
func Dial(ctx context.Context, url string, opts DialOptions) (*WSClient, error) {
	conn, resp, err := websocket.DefaultDialer.DialContext(ctx, url, opts.Header)
	if err != nil {
		if resp != nil {
			return nil, fmt.Errorf("dialing %s: %s: %w", url, resp.Status, err)
		}
		return nil, fmt.Errorf("dialing %s: %w", url, err)
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New("transport")
	}

	c := &WSClient{id: uuid.NewString(), conn: conn, log: logger}
	cols, rows := opts.Cols, opts.Rows
	if cols <= 0 || rows <= 0 {
		cols, rows = 80, 24
	}
	init, err := SizeMessage(c.id, TypeInit, cols, rows)
	if err == nil {
		err = c.send(init)
	}
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("initializing terminal: %w", err)
	}
	return c, nil
}

func (c *WSClient) ID() string { return c.id }

// Read returns remote output. Control frames are handled inline.
func (c *WSClient) Read(p []byte) (int, error) {
	c.readMu.Lock()
	defer c.readMu.Unlock()

	for len(c.pending) == 0 {
		if c.eof {
			return 0, io.EOF
		}
		_, raw, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				c.eof = true
				continue
			}
			return 0, fmt.Errorf("reading frame: %w", err)
		}
		msg, err := DecodeMessage(raw)
		if err != nil {
			c.log.Warn("dropping frame: %v", err)
			continue
		}
		switch msg.Type {
		case TypeData:
			c.pending = append(c.pending, msg.Data...)
		case TypePing:
			if err := c.send(Message{ID: c.id, Type: TypePing}); err != nil {
				return 0, err
			}
		case TypeClose:
			c.eof = true
		}
	}

	n := copy(p, c.pending)
	c.pending = c.pending[n:]
	return n, nil
}

// Write sends p as one TERMINAL_DATA frame.
func (c *WSClient) Write(p []byte) (int, error) {
	if err := c.send(Message{ID: c.id, Type: TypeData, Data: string(p)}); err != nil {
		return 0, err
	}
	return len(p), nil
}

func (c *WSClient) Resize(cols, rows int) error {
	msg, err := SizeMessage(c.id, TypeResize, cols, rows)
	if err != nil {
		return err
	}
	return c.send(msg)
}

// Close sends TERMINAL_CLOSE and a close frame, then closes the connection.
func (c *WSClient) Close() error {
	var err error
	c.closeOnce.Do(func() {
		_ = c.send(Message{ID: c.id, Type: TypeClose})
		c.writeMu.Lock()
		_ = c.conn.WriteControl(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""), time.Now().Add(writeWait))
		c.writeMu.Unlock()
		err = c.conn.Close()
	})
	return err
}

func (c *WSClient) send(m Message) error {
	return writeMessage(c.conn, &c.writeMu, m)
}

func writeMessage(conn *websocket.Conn, mu *sync.Mutex, m Message) error {
	data, err := EncodeMessage(m)
	if err != nil {
		return err
	}
	mu.Lock()
	defer mu.Unlock()
	_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
	if err := conn.WriteMessage(websocket.TextMessage, data); err != nil {
		return fmt.Errorf("writing %s frame: %w", m.Type, err)
	}
	return nil
}

var _ Channel = (*WSClient)(nil)
