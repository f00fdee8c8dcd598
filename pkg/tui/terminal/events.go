// ABOUTME: Listener registry shared by surface implementations.
// ABOUTME: Dispatch splits a raw host read and fans each input out in registration order.

package terminal

import (
	"sync"

	"github.com/mauromedda/lunaterm/pkg/tui/key"
)

type listeners[F any] struct {
	next int
	ids  []int
	fns  map[int]F
}

func (l *listeners[F]) add(mu *sync.Mutex, fn F) func() {
	mu.Lock()
	if l.fns == nil {
		l.fns = make(map[int]F)
	}
	id := l.next
	l.next++
	l.ids = append(l.ids, id)
	l.fns[id] = fn
	mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			mu.Lock()
			defer mu.Unlock()
			delete(l.fns, id)
			for i, v := range l.ids {
				if v == id {
					l.ids = append(l.ids[:i], l.ids[i+1:]...)
					break
				}
			}
		})
	}
}

// snapshot must be called with the owning mutex held.
func (l *listeners[F]) snapshot() []F {
	out := make([]F, 0, len(l.ids))
	for _, id := range l.ids {
		out = append(out, l.fns[id])
	}
	return out
}

// Events implements the listener half of Surface. The zero value is ready.
type Events struct {
	mu          sync.Mutex
	resize      listeners[func(Dimensions)]
	keys        listeners[func(key.Input)]
	mouse       listeners[func(key.MouseEvent)]
	contextMenu listeners[func(key.MouseEvent)]
	focus       listeners[func()]
	blur        listeners[func()]
	paste       listeners[func(string)]
}

func (e *Events) OnResize(fn func(Dimensions)) func() { return e.resize.add(&e.mu, fn) }
func (e *Events) OnKey(fn func(key.Input)) func()     { return e.keys.add(&e.mu, fn) }
func (e *Events) OnMouse(fn func(key.MouseEvent)) func() {
	return e.mouse.add(&e.mu, fn)
}
func (e *Events) OnContextMenu(fn func(key.MouseEvent)) func() {
	return e.contextMenu.add(&e.mu, fn)
}
func (e *Events) OnFocus(fn func()) func()       { return e.focus.add(&e.mu, fn) }
func (e *Events) OnBlur(fn func()) func()        { return e.blur.add(&e.mu, fn) }
func (e *Events) OnPaste(fn func(string)) func() { return e.paste.add(&e.mu, fn) }

// Count returns the number of registered listeners across all kinds.
func (e *Events) Count() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return len(e.resize.ids) + len(e.keys.ids) + len(e.mouse.ids) +
		len(e.contextMenu.ids) + len(e.focus.ids) + len(e.blur.ids) + len(e.paste.ids)
}

// Dispatch delivers every input in data. A right-button press reaches mouse
// listeners before context-menu listeners.
func (e *Events) Dispatch(data string) {
	for _, in := range key.Split(data) {
		e.dispatch(in)
	}
}

func (e *Events) dispatch(in key.Input) {
	e.mu.Lock()
	var (
		keys   []func(key.Input)
		mouse  []func(key.MouseEvent)
		menu   []func(key.MouseEvent)
		signal []func()
		paste  []func(string)
	)
	switch in.Kind {
	case key.InputKey:
		keys = e.keys.snapshot()
	case key.InputMouse:
		mouse = e.mouse.snapshot()
		if in.Mouse.IsContextMenu() {
			menu = e.contextMenu.snapshot()
		}
	case key.InputFocus:
		signal = e.focus.snapshot()
	case key.InputBlur:
		signal = e.blur.snapshot()
	case key.InputPaste:
		paste = e.paste.snapshot()
	}
	e.mu.Unlock()

	for _, fn := range keys {
		fn(in)
	}
	for _, fn := range mouse {
		fn(in.Mouse)
	}
	for _, fn := range menu {
		fn(in.Mouse)
	}
	for _, fn := range signal {
		fn()
	}
	for _, fn := range paste {
		fn(in.Raw)
	}
}

// EmitResize notifies resize listeners.
func (e *Events) EmitResize(d Dimensions) {
	e.mu.Lock()
	fns := e.resize.snapshot()
	e.mu.Unlock()
	for _, fn := range fns {
		fn(d)
	}
}
