// ABOUTME: StdinBuffer reads raw bytes from an io.Reader and dispatches whole input chunks.
// ABOUTME: Holds back split escape sequences, pastes and runes; flushes a stalled tail after ~50ms.

package input

import (
	"context"
	"io"
	"sync"
	"time"

	"github.com/mauromedda/lunaterm/pkg/tui/key"
)

const (
	readBufSize = 4096
	escTimeout  = 50 * time.Millisecond
)

// StdinBuffer reads from a reader and calls onData with chunks that never
// end in the middle of an input sequence.
type StdinBuffer struct {
	reader io.Reader
	onData func(string)
	buf    []byte
	mu     sync.Mutex
}

// NewStdinBuffer creates a StdinBuffer that reads from r.
func NewStdinBuffer(r io.Reader, onData func(string)) *StdinBuffer {
	return &StdinBuffer{
		reader: r,
		onData: onData,
		buf:    make([]byte, 0, readBufSize),
	}
}

// Start reads until ctx is cancelled or the reader returns an error.
// It blocks until completion; call it in a goroutine if non-blocking behavior is needed.
func (b *StdinBuffer) Start(ctx context.Context) error {
	readCh := make(chan readResult)
	done := make(chan struct{})

	go b.readLoop(readCh, done)
	defer close(done)

	var timer *time.Timer
	var timeout <-chan time.Time
	stopTimer := func() {
		if timer != nil {
			timer.Stop()
			timer, timeout = nil, nil
		}
	}
	defer stopTimer()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-timeout:
			timer, timeout = nil, nil
			b.flush()
		case result, ok := <-readCh:
			if !ok || result.err != nil {
				b.flush()
				if ok && result.err != io.EOF {
					return result.err
				}
				return nil
			}
			stopTimer()
			if b.process(result.data) {
				timer = time.NewTimer(escTimeout)
				timeout = timer.C
			}
		}
	}
}

// readResult holds the outcome of a single Read call.
type readResult struct {
	data []byte
	err  error
}

// readLoop continuously reads from the reader and sends data on ch.
// It stops when done is closed, preventing goroutine leaks on context cancellation.
func (b *StdinBuffer) readLoop(ch chan<- readResult, done <-chan struct{}) {
	defer close(ch)
	tmp := make([]byte, readBufSize)
	for {
		n, err := b.reader.Read(tmp)
		if n > 0 {
			data := make([]byte, n)
			copy(data, tmp[:n])
			select {
			case ch <- readResult{data: data}:
			case <-done:
				return
			}
		}
		if err != nil {
			select {
			case ch <- readResult{err: err}:
			case <-done:
			}
			return
		}
	}
}

// process appends data, dispatches the complete prefix and reports whether
// an incomplete tail is being held.
func (b *StdinBuffer) process(data []byte) bool {
	b.mu.Lock()
	b.buf = append(b.buf, data...)
	n := key.Complete(string(b.buf))
	chunk := string(b.buf[:n])
	b.buf = append(b.buf[:0], b.buf[n:]...)
	pending := len(b.buf) > 0
	b.mu.Unlock()

	if chunk != "" {
		b.onData(chunk)
	}
	return pending
}

// flush dispatches whatever is buffered, complete or not.
func (b *StdinBuffer) flush() {
	b.mu.Lock()
	chunk := string(b.buf)
	b.buf = b.buf[:0]
	b.mu.Unlock()

	if chunk != "" {
		b.onData(chunk)
	}
}
