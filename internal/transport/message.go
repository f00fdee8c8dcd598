// ABOUTME: Wire message for websocket channels: {"id","type","data"} JSON frames
// ABOUTME: Resize and init frames carry a WindowSize encoded as JSON inside data

//go:generate easyjson -all message.go

package transport

import (
	"errors"
	"fmt"

	"github.com/mailru/easyjson"
)

// Message types.
const (
	TypeInit   = "TERMINAL_INIT"
	TypeData   = "TERMINAL_DATA"
	TypeResize = "TERMINAL_RESIZE"
	TypeClose  = "TERMINAL_CLOSE"
	TypePing   = "PING"
)

// ErrUnknownType is returned when decoding a frame with an unrecognized type.
var ErrUnknownType = errors.New("unknown message type")

// Message is one websocket frame.
type Message struct {
	ID   string `json:"id"`
	Type string `json:"type"`
	Data string `json:"data"`
}

// WindowSize is the payload of init and resize frames.
type WindowSize struct {
	Cols int `json:"cols"`
	Rows int `json:"rows"`
}

// EncodeMessage serializes m.
func EncodeMessage(m Message) ([]byte, error) {
	data, err := easyjson.Marshal(m)
	if err != nil {
		return nil, fmt.Errorf("encoding %s message: %w", m.Type, err)
	}
	return data, nil
}

// DecodeMessage parses one frame and checks its type.
func DecodeMessage(data []byte) (Message, error) {
	var m Message
	if err := easyjson.Unmarshal(data, &m); err != nil {
		return Message{}, fmt.Errorf("decoding message: %w", err)
	}
	switch m.Type {
	case TypeInit, TypeData, TypeResize, TypeClose, TypePing:
		return m, nil
	}
	return Message{}, fmt.Errorf("%w: %q", ErrUnknownType, m.Type)
}

// SizeMessage builds an init or resize frame.
func SizeMessage(id, typ string, cols, rows int) (Message, error) {
	data, err := easyjson.Marshal(WindowSize{Cols: cols, Rows: rows})
	if err != nil {
		return Message{}, fmt.Errorf("encoding window size: %w", err)
	}
	return Message{ID: id, Type: typ, Data: string(data)}, nil
}

// WindowSize decodes the size carried by an init or resize frame.
func (m Message) WindowSize() (WindowSize, error) {
	var ws WindowSize
	if err := easyjson.Unmarshal([]byte(m.Data), &ws); err != nil {
		return WindowSize{}, fmt.Errorf("decoding window size: %w", err)
	}
	if ws.Cols <= 0 || ws.Rows <= 0 {
		return WindowSize{}, fmt.Errorf("invalid window size %dx%d", ws.Cols, ws.Rows)
	}
	return ws, nil
}
