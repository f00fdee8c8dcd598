// ABOUTME: Control channel server for the embedding host
// ABOUTME: JSONL requests in, JSONL responses and event notifications out

package rpc

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"sync"

	"github.com/mauromedda/lunaterm/internal/eventbus"
)

const (
	initialLineBuffer = 64 * 1024
	maxLineBuffer     = 10 * 1024 * 1024
)

// Server handles requests from one host connection.
type Server struct {
	reader  *bufio.Scanner
	handler func(Request) Response

	mu     sync.Mutex
	writer io.Writer
}

// NewServer creates a server reading requests from r and writing to w.
func NewServer(r io.Reader, w io.Writer, handler func(Request) Response) *Server {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, initialLineBuffer), maxLineBuffer)
	return &Server{
		reader:  scanner,
		writer:  w,
		handler: handler,
	}
}

// Run serves requests until the reader ends or ctx is cancelled. Cancellation
// is observed between lines; close the reader to interrupt a blocked read.
func (s *Server) Run(ctx context.Context) error {
	for s.reader.Scan() {
		if err := ctx.Err(); err != nil {
			return err
		}
		var req Request
		if err := json.Unmarshal(s.reader.Bytes(), &req); err != nil {
			s.sendError("", ErrCodeParse, fmt.Sprintf("parse error: %v", err))
			continue
		}

		resp := s.handler(req)
		resp.ID = req.ID

		data, err := json.Marshal(resp)
		if err != nil {
			s.sendError(req.ID, ErrCodeInternal, fmt.Sprintf("internal error: %v", err))
			continue
		}
		if err := s.writeLine(data); err != nil {
			return fmt.Errorf("writing response: %w", err)
		}
	}

	return s.reader.Err()
}

// Notify pushes a host event to the client.
func (s *Server) Notify(ev eventbus.HostEvent) error {
	data, err := json.Marshal(Notification{Method: MethodEvent, Params: ev})
	if err != nil {
		return fmt.Errorf("encoding notification: %w", err)
	}
	return s.writeLine(data)
}

func (s *Server) writeLine(data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, err := s.writer.Write(append(data, '\n'))
	return err
}

func (s *Server) sendError(id string, code int, message string) {
	resp := Response{
		ID:    id,
		Error: &Error{Code: code, Message: message},
	}
	data, _ := json.Marshal(resp)
	_ = s.writeLine(data)
}
