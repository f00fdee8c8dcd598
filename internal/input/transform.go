// ABOUTME: Outbound byte transform: rewrites the first character of an input chunk per user flags
// ABOUTME: DEL→BS when backspaceAsCtrlH is on, ETX→SUB when ctrlCAsCtrlZ is on

package input

import (
	"github.com/mauromedda/lunaterm/internal/config"
	"github.com/mauromedda/lunaterm/internal/log"
	"github.com/mauromedda/lunaterm/pkg/tui/key"
)

// Transform rewrites chunk according to cfg. Only the first byte is
// inspected; the rest of the chunk is returned unchanged.
func Transform(chunk string, cfg config.Terminal) string {
	out, _, _ := transform(chunk, cfg)
	return out
}

// transform also reports which substitutions fired.
func transform(chunk string, cfg config.Terminal) (out string, bs, sub bool) {
	if chunk == "" {
		return chunk, false, false
	}
	if cfg.BackspaceAsCtrlH.Enabled() && chunk[0] == key.CodeDelete {
		chunk = string(rune(key.CodeBackspace)) + chunk[1:]
		bs = true
	}
	if cfg.CtrlCAsCtrlZ.Enabled() && chunk[0] == key.CodeInterrupt {
		chunk = string(rune(key.CodeSuspend)) + chunk[1:]
		sub = true
	}
	return chunk, bs, sub
}

// Preprocessor applies Transform for one session and logs each substitution.
type Preprocessor struct {
	cfg config.Terminal
	log *log.Logger
}

// NewPreprocessor returns a preprocessor bound to cfg.
func NewPreprocessor(cfg config.Terminal, logger *log.Logger) *Preprocessor {
	if logger == nil {
		logger = log.Nop()
	}
	return &Preprocessor{cfg: cfg, log: logger}
}

// Process transforms one outgoing chunk.
func (p *Preprocessor) Process(chunk string) string {
	out, bs, sub := transform(chunk, p.cfg)
	if bs {
		p.log.Debug("backspaceAsCtrlH enabled")
	}
	if sub {
		p.log.Debug("ctrlCAsCtrlZ enabled")
	}
	return out
}
