// ABOUTME: Local PTY channel: runs a command on a pseudo terminal via creack/pty
// ABOUTME: Reads and writes go straight to the PTY master; Resize sets the window size

package transport

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"sync"

	"github.com/creack/pty"
	"github.com/google/uuid"
)

// DefaultShell is used when PTYOptions.Command is empty and $SHELL is unset.
const DefaultShell = "/bin/sh"

// PTYOptions configures the process started by StartPTY.
type PTYOptions struct {
	Command string
	Args    []string
	// Env is appended to the current environment.
	Env        []string
	Dir        string
	Cols, Rows int
}

// PTY is a Channel backed by a local process.
type PTY struct {
	id   string
	cmd  *exec.Cmd
	f    *os.File
	done chan struct{}
	err  error

	closeOnce sync.Once
}

// StartPTY starts the configured command on a new pseudo terminal.
func StartPTY(opts PTYOptions) (*PTY, error) {
	command := opts.Command
	if command == "" {
		command = os.Getenv("SHELL")
	}
	if command == "" {
		command = DefaultShell
	}

	cmd := exec.Command(command, opts.Args...)
	cmd.Dir = opts.Dir
	cmd.Env = append(append(os.Environ(), "TERM=xterm-256color"), opts.Env...)

	size := &pty.Winsize{Cols: 80, Rows: 24}
	if opts.Cols > 0 && opts.Rows > 0 {
		size = &pty.Winsize{Cols: uint16(opts.Cols), Rows: uint16(opts.Rows)}
	}

	f, err := pty.StartWithSize(cmd, size)
	if err != nil {
		return nil, fmt.Errorf("starting %s on a pty: %w", command, err)
	}

	p := &PTY{id: uuid.NewString(), cmd: cmd, f: f, done: make(chan struct{})}
	go func() {
		p.err = cmd.Wait()
		close(p.done)
	}()
	return p, nil
}

func (p *PTY) ID() string { return p.id }

func (p *PTY) Read(b []byte) (int, error) {
	return p.f.Read(b)
}

func (p *PTY) Write(b []byte) (int, error) {
	return p.f.Write(b)
}

// Resize sets the PTY window size; the kernel delivers SIGWINCH to the process.
func (p *PTY) Resize(cols, rows int) error {
	if cols <= 0 || rows <= 0 {
		return fmt.Errorf("invalid size %dx%d", cols, rows)
	}
	if err := pty.Setsize(p.f, &pty.Winsize{Cols: uint16(cols), Rows: uint16(rows)}); err != nil {
		return fmt.Errorf("resizing pty: %w", err)
	}
	return nil
}

// Done is closed when the process exits.
func (p *PTY) Done() <-chan struct{} {
	return p.done
}

// Wait blocks until the process exits and returns its exit error.
func (p *PTY) Wait() error {
	<-p.done
	return p.err
}

// Close closes the PTY master and kills the process if it is still running.
func (p *PTY) Close() error {
	var err error
	p.closeOnce.Do(func() {
		err = p.f.Close()
		select {
		case <-p.done:
		default:
			if p.cmd.Process != nil {
				if kerr := p.cmd.Process.Kill(); kerr != nil && !errors.Is(kerr, os.ErrProcessDone) {
					err = errors.Join(err, kerr)
				}
			}
			<-p.done
		}
	})
	return err
}

var _ Channel = (*PTY)(nil)
