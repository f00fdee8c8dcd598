// ABOUTME: End-to-end tests for the websocket server and client channel over httptest
// ABOUTME: Runs a real shell on a PTY; skipped where /bin/sh is unavailable

package transport

import (
	"context"
	"io"
	"net/http/httptest"
	"os/exec"
	"strings"
	"testing"
	"time"

	"github.com/mauromedda/lunaterm/internal/log"
)

func requireShell(t *testing.T) {
	t.Helper()
	if _, err := exec.LookPath("/bin/sh"); err != nil {
		t.Skip("no /bin/sh")
	}
}

// readUntil reads from r until the accumulated output contains want.
func readUntil(t *testing.T, r io.Reader, want string) string {
	t.Helper()
	got := make(chan string, 1)
	go func() {
		var sb strings.Builder
		buf := make([]byte, 1024)
		for {
			n, err := r.Read(buf)
			sb.Write(buf[:n])
			if strings.Contains(sb.String(), want) || err != nil {
				got <- sb.String()
				return
			}
		}
	}()
	select {
	case s := <-got:
		if !strings.Contains(s, want) {
			t.Fatalf("output %q does not contain %q", s, want)
		}
		return s
	case <-time.After(5 * time.Second):
		t.Fatalf("timed out waiting for %q", want)
		return ""
	}
}

func TestPTY_EchoAndResize(t *testing.T) {
	t.Parallel()
	requireShell(t)

	p, err := StartPTY(PTYOptions{Command: "/bin/sh", Cols: 100, Rows: 30})
	if err != nil {
		t.Fatalf("StartPTY() error: %v", err)
	}
	defer p.Close()

	if p.ID() == "" {
		t.Error("ID() is empty")
	}
	if _, err := io.WriteString(p, "stty size\n"); err != nil {
		t.Fatalf("write: %v", err)
	}
	readUntil(t, p, "30 100")

	if err := p.Resize(120, 40); err != nil {
		t.Fatalf("Resize() error: %v", err)
	}
	if _, err := io.WriteString(p, "stty size\n"); err != nil {
		t.Fatalf("write: %v", err)
	}
	readUntil(t, p, "40 120")

	if err := p.Resize(0, 1); err == nil {
		t.Error("Resize(0, 1) should fail")
	}
}

func TestPTY_CloseKillsProcess(t *testing.T) {
	t.Parallel()
	requireShell(t)

	p, err := StartPTY(PTYOptions{Command: "/bin/sh"})
	if err != nil {
		t.Fatalf("StartPTY() error: %v", err)
	}
	_ = p.Close()
	_ = p.Close()

	select {
	case <-p.Done():
	case <-time.After(5 * time.Second):
		t.Fatal("process still running after Close")
	}
}

func TestServer_ClientRoundTrip(t *testing.T) {
	t.Parallel()
	requireShell(t)

	srv := NewServer(ServerOptions{
		PTY:    PTYOptions{Command: "/bin/sh"},
		Logger: log.Nop(),
	})
	ts := httptest.NewServer(srv)
	defer ts.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	url := "ws" + strings.TrimPrefix(ts.URL, "http")
	c, err := Dial(ctx, url, DialOptions{Cols: 90, Rows: 20, Logger: log.Nop()})
	if err != nil {
		t.Fatalf("Dial() error: %v", err)
	}
	defer c.Close()

	if _, err := c.Write([]byte("stty size\n")); err != nil {
		t.Fatalf("Write() error: %v", err)
	}
	readUntil(t, c, "20 90")

	if err := c.Resize(100, 25); err != nil {
		t.Fatalf("Resize() error: %v", err)
	}
	if _, err := c.Write([]byte("stty size\n")); err != nil {
		t.Fatalf("Write() error: %v", err)
	}
	readUntil(t, c, "25 100")

	if _, err := c.Write([]byte("exit\n")); err != nil {
		t.Fatalf("Write() error: %v", err)
	}
	deadline := time.Now().Add(5 * time.Second)
	buf := make([]byte, 256)
	for time.Now().Before(deadline) {
		if _, err := c.Read(buf); err == io.EOF {
			return
		} else if err != nil {
			t.Fatalf("Read() error = %v, want io.EOF", err)
		}
	}
	t.Fatal("no EOF after the shell exited")
}

func TestServer_RejectsMissingInit(t *testing.T) {
	t.Parallel()

	srv := NewServer(ServerOptions{Logger: log.Nop()})
	conn := newRawConn(t, srv)
	defer conn.Close()

	data, _ := EncodeMessage(Message{Type: TypeData, Data: "ls"})
	if err := conn.WriteMessage(1, data); err != nil {
		t.Fatalf("write: %v", err)
	}
	_ = conn.SetReadDeadline(time.Now().Add(5 * time.Second))
	if _, _, err := conn.ReadMessage(); err == nil {
		t.Error("server kept the connection open without TERMINAL_INIT")
	}
}
