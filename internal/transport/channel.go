// ABOUTME: Channel is the byte transport a session writes keystrokes to and reads remote output from
// ABOUTME: Implemented by a local PTY and by the websocket client; the server bridges one to the other

package transport

import (
	"errors"
	"io"
)

// ErrClosed is returned by operations on a closed channel.
var ErrClosed = errors.New("channel closed")

// Channel carries raw terminal bytes to and from one remote process.
type Channel interface {
	io.ReadWriteCloser
	// ID identifies the channel in wire messages and logs.
	ID() string
	// Resize reports the new grid to the remote side.
	Resize(cols, rows int) error
}
