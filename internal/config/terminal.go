// ABOUTME: The per-session terminal Configuration record and its "0"/"1" feature flags
// ABOUTME: Defaults are applied here so every consumer sees in-range values

package config

// Flag is a persisted on/off option. Only "1" enables; anything else,
// including the empty string, is disabled.
type Flag string

const (
	Off Flag = "0"
	On  Flag = "1"
)

// Enabled reports whether the flag is on.
func (f Flag) Enabled() bool { return f == On }

// FlagOf converts a bool.
func FlagOf(b bool) Flag {
	if b {
		return On
	}
	return Off
}

// Font size bounds and defaults.
const (
	MinFontSize       = 5
	MaxFontSize       = 50
	DefaultFontSize   = 13
	DefaultLineHeight = 1.0
)

// Terminal is the resolved configuration for one session. It is a value:
// sessions copy it and never observe later edits.
type Terminal struct {
	FontSize         int     `json:"fontSize"`
	LineHeight       float64 `json:"lineHeight"`
	QuickPaste       Flag    `json:"quickPaste"`
	BackspaceAsCtrlH Flag    `json:"backspaceAsCtrlH"`
	CtrlCAsCtrlZ     Flag    `json:"ctrlCAsCtrlZ"`
	ThemeName        string  `json:"themeName,omitempty"`
	// CopyCommand is a program line such as "wl-copy -n" tried after the
	// platform clipboard.
	CopyCommand string `json:"copyCommand,omitempty"`
}

// Defaults returns the configuration used when nothing is persisted.
func Defaults() Terminal {
	return Terminal{
		FontSize:         DefaultFontSize,
		LineHeight:       DefaultLineHeight,
		QuickPaste:       Off,
		BackspaceAsCtrlH: Off,
		CtrlCAsCtrlZ:     Off,
	}
}

// Normalize clamps out-of-range numbers to their defaults and maps
// unrecognized flag values to Off.
func (t Terminal) Normalize() Terminal {
	if t.FontSize < MinFontSize || t.FontSize > MaxFontSize {
		t.FontSize = DefaultFontSize
	}
	if t.LineHeight <= 0 {
		t.LineHeight = DefaultLineHeight
	}
	t.QuickPaste = FlagOf(t.QuickPaste.Enabled())
	t.BackspaceAsCtrlH = FlagOf(t.BackspaceAsCtrlH.Enabled())
	t.CtrlCAsCtrlZ = FlagOf(t.CtrlCAsCtrlZ.Enabled())
	return t
}
