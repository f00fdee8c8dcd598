// ABOUTME: Interceptor executes interception decisions: host notifications and clipboard I/O
// ABOUTME: Key events publish KEYEVENT; selection changes capture and sync; right-clicks read the clipboard

package intercept

import (
	"context"

	"github.com/mauromedda/lunaterm/internal/config"
	"github.com/mauromedda/lunaterm/internal/eventbus"
	"github.com/mauromedda/lunaterm/internal/log"
	"github.com/mauromedda/lunaterm/pkg/tui/clipboard"
	"github.com/mauromedda/lunaterm/pkg/tui/key"
)

// Selection is the part of the emulator the interceptor reads.
type Selection interface {
	HasSelection() bool
	Selection() string
}

// Interceptor applies the decisions of DecideKey and DecideContextMenu.
type Interceptor struct {
	bridge *clipboard.Bridge
	bus    *eventbus.HostBus
	nav    NavigationResolver
	log    *log.Logger
}

// New returns an Interceptor. bus and nav may be nil; a nil logger discards.
func New(bridge *clipboard.Bridge, bus *eventbus.HostBus, nav NavigationResolver, logger *log.Logger) *Interceptor {
	if logger == nil {
		logger = log.Nop()
	}
	return &Interceptor{bridge: bridge, bus: bus, nav: nav, log: logger}
}

// HandleKey decides ev against sel, publishes any navigation notification
// and returns whether the emulator should handle the key.
func (i *Interceptor) HandleKey(ev key.Event, sel Selection) bool {
	d := DecideKey(ev, sel != nil && sel.HasSelection(), i.nav)
	if d.Notify != "" {
		i.log.Debug("navigation %s", d.Notify)
		i.bus.Publish(eventbus.HostEvent{Name: eventbus.EventKey, Value: d.Notify})
	}
	return d.Allow
}

// HandleContextMenu returns the text to paste for a right-click, or
// handled false when the native menu should be left alone.
func (i *Interceptor) HandleContextMenu(ctx context.Context, ev key.MouseEvent, cfg config.Terminal) (text string, handled bool) {
	if !DecideContextMenu(ev, cfg) {
		return "", false
	}
	return i.bridge.Read(ctx), true
}

// HandleSelectionChange captures the current selection and syncs it to the
// clipboard.
func (i *Interceptor) HandleSelectionChange(ctx context.Context, sel Selection) clipboard.Outcome {
	return i.SyncSelection(ctx, i.CaptureSelection(sel))
}

// CaptureSelection stores the trimmed selection in the cache and returns it.
// Callers that sync asynchronously capture first so the cache follows event
// order.
func (i *Interceptor) CaptureSelection(sel Selection) string {
	i.log.Debug("Select Change")
	return i.bridge.Capture(sel.Selection())
}

// SyncSelection writes captured text through the clipboard strategies.
func (i *Interceptor) SyncSelection(ctx context.Context, text string) clipboard.Outcome {
	out := i.bridge.Sync(ctx, text)
	if !out.OK {
		i.log.Debug("selection not copied: %v", out.Err)
	}
	return out
}
