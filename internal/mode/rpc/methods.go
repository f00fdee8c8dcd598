// ABOUTME: Handler implementations for control methods (themes, paste, config, selection, upload)
// ABOUTME: Dispatches requests to registered handlers with parameter validation

package rpc

import (
	"encoding/json"
	"fmt"

	"github.com/mauromedda/lunaterm/internal/config"
)

// HandlerFunc processes a request's params and returns a Response.
type HandlerFunc func(params json.RawMessage) Response

// Router dispatches requests to registered handlers by method name.
type Router struct {
	handlers map[string]HandlerFunc
}

// NewRouter creates a Router with an empty handler registry.
func NewRouter() *Router {
	return &Router{handlers: make(map[string]HandlerFunc)}
}

// Register associates a method name with a handler function.
func (r *Router) Register(method string, handler HandlerFunc) {
	r.handlers[method] = handler
}

// Handle dispatches a request to the registered handler, or returns
// a method-not-found error if no handler is registered.
func (r *Router) Handle(req Request) Response {
	if req.Method == "" {
		return Response{ID: req.ID, Error: NewInvalidRequestError("missing method")}
	}
	h, ok := r.handlers[req.Method]
	if !ok {
		return Response{
			ID:    req.ID,
			Error: NewMethodNotFoundError(req.Method),
		}
	}

	raw, err := marshalParams(req.Params)
	if err != nil {
		return Response{
			ID:    req.ID,
			Error: NewInvalidParamsError(err.Error()),
		}
	}

	resp := h(raw)
	resp.ID = req.ID
	return resp
}

// marshalParams converts the generic Params field into json.RawMessage
// so handlers can decode it themselves.
func marshalParams(params any) (json.RawMessage, error) {
	if params == nil {
		return nil, nil
	}
	if raw, ok := params.(json.RawMessage); ok {
		return raw, nil
	}
	return json.Marshal(params)
}

// Deps holds the session operations handlers call into. A nil field makes
// its method answer with a no-session error.
type Deps struct {
	ApplyTheme func(name string) ThemeResult
	ListThemes func() []string
	Paste      func(text string) bool
	Config     func() config.Terminal
	Selection  func() string
	// Upload queues files on the transfer sentry; nil when transfer is off.
	Upload func(paths []string) error
}

// RegisterHandlers wires every control method into the given router.
func RegisterHandlers(r *Router, d *Deps) {
	r.Register(MethodSetTheme, handleSetTheme(d))
	r.Register(MethodListThemes, handleListThemes(d))
	r.Register(MethodPaste, handlePaste(d))
	r.Register(MethodGetConfig, handleGetConfig(d))
	r.Register(MethodGetSelection, handleGetSelection(d))
	r.Register(MethodUpload, handleUpload(d))
}

func decode(params json.RawMessage, v any) *Error {
	if len(params) == 0 {
		return NewInvalidParamsError("missing params")
	}
	if err := json.Unmarshal(params, v); err != nil {
		return NewInvalidParamsError(fmt.Sprintf("decoding params: %v", err))
	}
	return nil
}

func handleSetTheme(d *Deps) HandlerFunc {
	return func(params json.RawMessage) Response {
		if d.ApplyTheme == nil {
			return Response{Error: NewNoSessionError()}
		}
		var p SetThemeParams
		if err := decode(params, &p); err != nil {
			return Response{Error: err}
		}
		if p.Name == "" {
			return Response{Error: NewInvalidParamsError("name is required")}
		}
		return Response{Result: d.ApplyTheme(p.Name)}
	}
}

func handleListThemes(d *Deps) HandlerFunc {
	return func(_ json.RawMessage) Response {
		var names []string
		if d.ListThemes != nil {
			names = d.ListThemes()
		}
		if names == nil {
			names = []string{}
		}
		return Response{Result: ThemeListResult{Themes: names}}
	}
}

func handlePaste(d *Deps) HandlerFunc {
	return func(params json.RawMessage) Response {
		if d.Paste == nil {
			return Response{Error: NewNoSessionError()}
		}
		var p PasteParams
		if err := decode(params, &p); err != nil {
			return Response{Error: err}
		}
		return Response{Result: PasteResult{Sent: d.Paste(p.Text)}}
	}
}

func handleGetConfig(d *Deps) HandlerFunc {
	return func(_ json.RawMessage) Response {
		if d.Config == nil {
			return Response{Error: NewNoSessionError()}
		}
		return Response{Result: d.Config()}
	}
}

func handleGetSelection(d *Deps) HandlerFunc {
	return func(_ json.RawMessage) Response {
		if d.Selection == nil {
			return Response{Error: NewNoSessionError()}
		}
		return Response{Result: SelectionResult{Text: d.Selection()}}
	}
}

func handleUpload(d *Deps) HandlerFunc {
	return func(params json.RawMessage) Response {
		if d.Upload == nil {
			return Response{Error: NewNoTransferError()}
		}
		var p UploadParams
		if err := decode(params, &p); err != nil {
			return Response{Error: err}
		}
		if len(p.Paths) == 0 {
			return Response{Error: NewInvalidParamsError("paths is required")}
		}
		if err := d.Upload(p.Paths); err != nil {
			return Response{Error: NewInternalError(err.Error())}
		}
		return Response{Result: UploadResult{Queued: len(p.Paths)}}
	}
}
