// ABOUTME: Control channel request, response and notification types
// ABOUTME: One JSON object per line; notifications carry host events and have no id

package rpc

import "github.com/mauromedda/lunaterm/internal/eventbus"

// Request is a call from the embedding host.
type Request struct {
	ID     string `json:"id"`
	Method string `json:"method"`
	Params any    `json:"params,omitempty"`
}

// Response answers one Request.
type Response struct {
	ID     string `json:"id"`
	Result any    `json:"result,omitempty"`
	Error  *Error `json:"error,omitempty"`
}

// Error is a failed Response.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// Notification is an unsolicited message pushed to the host.
type Notification struct {
	Method string             `json:"method"`
	Params eventbus.HostEvent `json:"params"`
}

// MethodEvent names the notification carrying host events.
const MethodEvent = "event"

// Methods
const (
	MethodSetTheme     = "set_theme"
	MethodListThemes   = "list_themes"
	MethodPaste        = "paste"
	MethodGetConfig    = "get_config"
	MethodGetSelection = "get_selection"
	MethodUpload       = "upload"
)

// SetThemeParams selects a theme by name.
type SetThemeParams struct {
	Name string `json:"name"`
}

// ThemeResult reports the applied theme.
type ThemeResult struct {
	Name       string `json:"name"`
	Background string `json:"background"`
	Found      bool   `json:"found"`
}

// ThemeListResult lists the known theme names.
type ThemeListResult struct {
	Themes []string `json:"themes"`
}

// PasteParams is text to paste into the session.
type PasteParams struct {
	Text string `json:"text"`
}

// PasteResult reports whether anything was sent.
type PasteResult struct {
	Sent bool `json:"sent"`
}

// SelectionResult is the current selection.
type SelectionResult struct {
	Text string `json:"text"`
}

// UploadParams lists local files to send to a remote waiting in trz.
type UploadParams struct {
	Paths []string `json:"paths"`
}

// UploadResult reports how many files were queued.
type UploadResult struct {
	Queued int `json:"queued"`
}
