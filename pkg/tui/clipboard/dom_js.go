//go:build js && wasm

// ABOUTME: Browser DOM document and navigator.clipboard strategy for js/wasm builds
// ABOUTME: The legacy path appends a textarea, selects it and calls document.execCommand('copy')

package clipboard

import (
	"context"
	"errors"
	"fmt"
	"syscall/js"

	"github.com/mauromedda/lunaterm/internal/log"
)

// DOMDocument is the browser document.
type DOMDocument struct {
	doc js.Value
}

// NewDOMDocument returns the global document.
func NewDOMDocument() *DOMDocument {
	return &DOMDocument{doc: js.Global().Get("document")}
}

type textarea struct {
	v js.Value
}

func (t textarea) SetValue(text string) { t.v.Set("value", text) }
func (t textarea) Focus()               { t.v.Call("focus") }
func (t textarea) Select()              { t.v.Call("select") }

func (d *DOMDocument) CreateElement(style map[string]string) Element {
	el := d.doc.Call("createElement", "textarea")
	st := el.Get("style")
	for k, v := range style {
		st.Set(k, v)
	}
	return textarea{v: el}
}

func (d *DOMDocument) Append(el Element) {
	if t, ok := el.(textarea); ok {
		d.doc.Get("body").Call("appendChild", t.v)
	}
}

func (d *DOMDocument) Remove(el Element) {
	if t, ok := el.(textarea); ok && !t.v.Get("parentNode").IsNull() {
		t.v.Get("parentNode").Call("removeChild", t.v)
	}
}

// ExecCopy runs document.execCommand('copy'); a thrown exception counts as failure.
func (d *DOMDocument) ExecCopy() (ok bool) {
	defer func() {
		if recover() != nil {
			ok = false
		}
	}()
	return d.doc.Call("execCommand", "copy").Truthy()
}

// Navigator is the async navigator.clipboard API.
type Navigator struct{}

func (Navigator) Name() string { return "navigator" }

func (Navigator) Available() bool {
	c := js.Global().Get("navigator").Get("clipboard")
	return !c.IsUndefined() && !c.IsNull()
}

func (Navigator) Write(ctx context.Context, text string) error {
	_, err := await(ctx, js.Global().Get("navigator").Get("clipboard").Call("writeText", text))
	return err
}

func (Navigator) Read(ctx context.Context) (string, error) {
	v, err := await(ctx, js.Global().Get("navigator").Get("clipboard").Call("readText"))
	if err != nil {
		return "", err
	}
	return v.String(), nil
}

// await blocks until the promise settles or ctx is done.
// It must not be called from a js callback goroutine.
func await(ctx context.Context, promise js.Value) (js.Value, error) {
	type result struct {
		v   js.Value
		err error
	}
	ch := make(chan result, 1)

	onOK := js.FuncOf(func(_ js.Value, args []js.Value) any {
		var v js.Value
		if len(args) > 0 {
			v = args[0]
		}
		ch <- result{v: v}
		return nil
	})
	onErr := js.FuncOf(func(_ js.Value, args []js.Value) any {
		msg := "rejected"
		if len(args) > 0 {
			msg = args[0].Call("toString").String()
		}
		ch <- result{err: fmt.Errorf("navigator.clipboard: %s", msg)}
		return nil
	})
	defer onOK.Release()
	defer onErr.Release()

	promise.Call("then", onOK, onErr)

	select {
	case r := <-ch:
		return r.v, r.err
	case <-ctx.Done():
		return js.Undefined(), errors.Join(ErrUnavailable, ctx.Err())
	}
}

// Default returns the browser chain: navigator.clipboard, then the legacy
// copy over doc. A nil doc uses the page document. Browsers cannot run a
// copy command, so copyCommand is ignored.
func Default(doc Document, copyCommand string, cache *Cache, logger *log.Logger) *Bridge {
	if doc == nil {
		doc = NewDOMDocument()
	}
	if copyCommand != "" && logger != nil {
		logger.Debug("copy command %q ignored in the browser", copyCommand)
	}
	return NewBridge(cache, logger, []Writer{Navigator{}, NewLegacy(doc, logger)}, []Reader{Navigator{}})
}
