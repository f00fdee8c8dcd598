// ABOUTME: Terminal color theme: background, foreground, cursor, selection and the 16 ANSI colors
// ABOUTME: Field names follow the xterm ITheme shape so theme files port across emulators

package theme

import (
	"errors"
	"fmt"
	"reflect"

	"github.com/lucasb-eyer/go-colorful"
)

// ErrInvalidColor reports a theme field that is not a hex color.
var ErrInvalidColor = errors.New("invalid color")

// Theme holds a named set of emulator colors. Every color is a hex string
// ("#rrggbb" or "#rgb"); an empty field inherits from the default theme.
type Theme struct {
	Name string `json:"name" yaml:"name"`

	Background          string `json:"background" yaml:"background"`
	Foreground          string `json:"foreground" yaml:"foreground"`
	Cursor              string `json:"cursor" yaml:"cursor"`
	CursorAccent        string `json:"cursorAccent" yaml:"cursorAccent"`
	SelectionBackground string `json:"selectionBackground" yaml:"selectionBackground"`

	Black   string `json:"black" yaml:"black"`
	Red     string `json:"red" yaml:"red"`
	Green   string `json:"green" yaml:"green"`
	Yellow  string `json:"yellow" yaml:"yellow"`
	Blue    string `json:"blue" yaml:"blue"`
	Magenta string `json:"magenta" yaml:"magenta"`
	Cyan    string `json:"cyan" yaml:"cyan"`
	White   string `json:"white" yaml:"white"`

	BrightBlack   string `json:"brightBlack" yaml:"brightBlack"`
	BrightRed     string `json:"brightRed" yaml:"brightRed"`
	BrightGreen   string `json:"brightGreen" yaml:"brightGreen"`
	BrightYellow  string `json:"brightYellow" yaml:"brightYellow"`
	BrightBlue    string `json:"brightBlue" yaml:"brightBlue"`
	BrightMagenta string `json:"brightMagenta" yaml:"brightMagenta"`
	BrightCyan    string `json:"brightCyan" yaml:"brightCyan"`
	BrightWhite   string `json:"brightWhite" yaml:"brightWhite"`
}

// ANSI returns the 16 ANSI colors in palette order (black..brightWhite).
func (t *Theme) ANSI() [16]string {
	return [16]string{
		t.Black, t.Red, t.Green, t.Yellow, t.Blue, t.Magenta, t.Cyan, t.White,
		t.BrightBlack, t.BrightRed, t.BrightGreen, t.BrightYellow,
		t.BrightBlue, t.BrightMagenta, t.BrightCyan, t.BrightWhite,
	}
}

// Validate checks that every non-empty color field parses as hex.
func (t *Theme) Validate() error {
	var errs []error
	eachColor(t, func(field string, v *string) {
		if *v == "" {
			return
		}
		if _, err := colorful.Hex(*v); err != nil {
			errs = append(errs, fmt.Errorf("%s %q: %w", field, *v, ErrInvalidColor))
		}
	})
	return errors.Join(errs...)
}

// IsDark reports whether the background is dark (CIE L* below 0.5).
// An unparsable background counts as dark.
func (t *Theme) IsDark() bool {
	c, err := colorful.Hex(t.Background)
	if err != nil {
		return true
	}
	l, _, _ := c.Lab()
	return l < 0.5
}

// withDefaults returns a copy with empty colors taken from base.
func (t *Theme) withDefaults(base *Theme) *Theme {
	out := *t
	bv := reflect.ValueOf(base).Elem()
	eachColor(&out, func(field string, v *string) {
		if *v == "" {
			*v = bv.FieldByName(field).String()
		}
	})
	return &out
}

// eachColor visits every color field of t.
func eachColor(t *Theme, fn func(field string, v *string)) {
	v := reflect.ValueOf(t).Elem()
	typ := v.Type()
	for i := range typ.NumField() {
		f := typ.Field(i)
		if f.Name == "Name" {
			continue
		}
		fn(f.Name, v.Field(i).Addr().Interface().(*string))
	}
}
