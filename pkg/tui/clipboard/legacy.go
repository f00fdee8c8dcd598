// ABOUTME: Legacy copy strategy: scratch editable element, select all, document copy command
// ABOUTME: The scratch element is always removed, on success, failure, or panic

package clipboard

import (
	"context"
	"errors"

	"github.com/mauromedda/lunaterm/internal/log"
)

// ErrCopyFailed is returned when the document's copy command reports failure.
var ErrCopyFailed = errors.New("copy command unsuccessful")

// ScratchStyle keeps the scratch element invisible and stops the document
// from scrolling to it.
var ScratchStyle = map[string]string{
	"position":   "fixed",
	"top":        "0",
	"left":       "0",
	"width":      "2em",
	"height":     "2em",
	"padding":    "0",
	"border":     "none",
	"outline":    "none",
	"boxShadow":  "none",
	"background": "transparent",
}

// Element is an editable scratch element inside a Document.
type Element interface {
	SetValue(text string)
	Focus()
	Select()
}

// Document hosts scratch elements and runs the legacy copy command on the
// focused, selected one.
type Document interface {
	CreateElement(style map[string]string) Element
	Append(el Element)
	Remove(el Element)
	ExecCopy() bool
}

// Legacy copies through a Document.
type Legacy struct {
	doc Document
	log *log.Logger
}

// NewLegacy returns the legacy strategy over doc.
func NewLegacy(doc Document, logger *log.Logger) *Legacy {
	if logger == nil {
		logger = log.Nop()
	}
	return &Legacy{doc: doc, log: logger}
}

func (l *Legacy) Name() string { return "legacy" }

func (l *Legacy) Available() bool { return l.doc != nil }

// Write places text in a scratch element, selects it and copies.
func (l *Legacy) Write(_ context.Context, text string) error {
	el := l.doc.CreateElement(ScratchStyle)
	el.SetValue(text)

	l.doc.Append(el)
	defer l.doc.Remove(el)

	el.Focus()
	el.Select()

	ok := l.doc.ExecCopy()
	msg := "unsuccessful"
	if ok {
		msg = "successful"
	}
	l.log.Debug("Fallback: Copying text command was %s", msg)

	if !ok {
		return ErrCopyFailed
	}
	return nil
}
