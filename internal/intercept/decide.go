// ABOUTME: Pure interception decisions for key and context-menu events
// ABOUTME: No side effects; the Interceptor executes whatever these functions decide

package intercept

import (
	"github.com/mauromedda/lunaterm/internal/config"
	"github.com/mauromedda/lunaterm/pkg/tui/key"
)

// NavigationResolver maps a key event to a host navigation notification.
type NavigationResolver interface {
	Navigation(ev key.Event) (string, bool)
}

// KeyDecision is the verdict for one key event. Allow false suppresses the
// emulator's default handling; Notify, when set, names a host navigation
// shortcut to report.
type KeyDecision struct {
	Allow  bool
	Notify string
}

// DecideKey decides how a key event is handled. A nil nav falls back to the
// built-in alt+right and alt+left shortcuts.
func DecideKey(ev key.Event, hasSelection bool, nav NavigationResolver) KeyDecision {
	var d KeyDecision
	if nav != nil {
		if n, ok := nav.Navigation(ev); ok {
			d.Notify = n
		}
	} else {
		d.Notify = defaultNavigation(ev)
	}

	switch {
	case ev.Is("c", true) && hasSelection:
		d.Allow = false
	case ev.Is("v", true):
		d.Allow = false
	default:
		d.Allow = true
	}
	return d
}

func defaultNavigation(ev key.Event) string {
	if !ev.Alt {
		return ""
	}
	switch ev.Key {
	case "ArrowRight":
		return config.ActionNavigateNext.Notification()
	case "ArrowLeft":
		return config.ActionNavigatePrev.Notification()
	}
	return ""
}

// DecideContextMenu reports whether a right-click should paste instead of
// leaving the native menu alone.
func DecideContextMenu(ev key.MouseEvent, cfg config.Terminal) bool {
	return !ev.Ctrl && cfg.QuickPaste.Enabled()
}
