// ABOUTME: Tests for the serve command's listener and shutdown path
// ABOUTME: Binds ephemeral ports on loopback only

package main

import (
	"context"
	"net"
	"testing"
	"time"
)

func TestListen_LimitCapsConnections(t *testing.T) {
	t.Parallel()

	ln, err := listen(context.Background(), "127.0.0.1:0", 1)
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	defer ln.Close()

	accepted := make(chan net.Conn, 2)
	go func() {
		for {
			c, err := ln.Accept()
			if err != nil {
				return
			}
			accepted <- c
		}
	}()

	for range 2 {
		c, err := net.Dial("tcp", ln.Addr().String())
		if err != nil {
			t.Fatalf("dial: %v", err)
		}
		defer c.Close()
	}

	first := <-accepted
	select {
	case <-accepted:
		t.Fatal("second connection accepted while the first is open")
	case <-time.After(100 * time.Millisecond):
	}

	first.Close()
	select {
	case c := <-accepted:
		c.Close()
	case <-time.After(2 * time.Second):
		t.Fatal("second connection not accepted after the first closed")
	}
}

func TestListen_BadAddress(t *testing.T) {
	t.Parallel()

	if _, err := listen(context.Background(), "256.0.0.1:bad", 0); err == nil {
		t.Error("expected error for invalid address")
	}
}

func TestRunServe_StopsOnCancel(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- runServe(ctx, cliArgs{addr: "127.0.0.1:0", shell: "/bin/sh"})
	}()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		if err != nil {
			t.Errorf("runServe: %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("runServe did not stop")
	}
}
