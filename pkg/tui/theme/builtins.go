// ABOUTME: Built-in themes and the guaranteed default theme
// ABOUTME: Provides Default(), Builtin(name) lookup and BuiltinNames() enumeration

package theme

import "sort"

// DefaultName is the name of the fallback theme.
const DefaultName = "Default"

// DefaultBackground is the background applied when a session is created,
// before any named theme resolves.
const DefaultBackground = "#1E1E1E"

var defaultTheme = Theme{
	Name:                DefaultName,
	Background:          DefaultBackground,
	Foreground:          "#D4D4D4",
	Cursor:              "#FFFFFF",
	CursorAccent:        "#1E1E1E",
	SelectionBackground: "#264F78",

	Black:   "#000000",
	Red:     "#CD3131",
	Green:   "#0DBC79",
	Yellow:  "#E5E510",
	Blue:    "#2472C8",
	Magenta: "#BC3FBC",
	Cyan:    "#11A8CD",
	White:   "#E5E5E5",

	BrightBlack:   "#666666",
	BrightRed:     "#F14C4C",
	BrightGreen:   "#23D18B",
	BrightYellow:  "#F5F543",
	BrightBlue:    "#3B8EEA",
	BrightMagenta: "#D670D6",
	BrightCyan:    "#29B8DB",
	BrightWhite:   "#E5E5E5",
}

var builtins = map[string]Theme{
	DefaultName: defaultTheme,
	"Dracula": {
		Name:                "Dracula",
		Background:          "#282A36",
		Foreground:          "#F8F8F2",
		Cursor:              "#F8F8F2",
		CursorAccent:        "#282A36",
		SelectionBackground: "#44475A",
		Black:               "#21222C",
		Red:                 "#FF5555",
		Green:               "#50FA7B",
		Yellow:              "#F1FA8C",
		Blue:                "#BD93F9",
		Magenta:             "#FF79C6",
		Cyan:                "#8BE9FD",
		White:               "#F8F8F2",
		BrightBlack:         "#6272A4",
		BrightRed:           "#FF6E6E",
		BrightGreen:         "#69FF94",
		BrightYellow:        "#FFFFA5",
		BrightBlue:          "#D6ACFF",
		BrightMagenta:       "#FF92DF",
		BrightCyan:          "#A4FFFF",
		BrightWhite:         "#FFFFFF",
	},
	"Monokai": {
		Name:                "Monokai",
		Background:          "#272822",
		Foreground:          "#F8F8F2",
		Cursor:              "#F8F8F0",
		CursorAccent:        "#272822",
		SelectionBackground: "#49483E",
		Black:               "#272822",
		Red:                 "#F92672",
		Green:               "#A6E22E",
		Yellow:              "#F4BF75",
		Blue:                "#66D9EF",
		Magenta:             "#AE81FF",
		Cyan:                "#A1EFE4",
		White:               "#F8F8F2",
		BrightBlack:         "#75715E",
		BrightRed:           "#F92672",
		BrightGreen:         "#A6E22E",
		BrightYellow:        "#F4BF75",
		BrightBlue:          "#66D9EF",
		BrightMagenta:       "#AE81FF",
		BrightCyan:          "#A1EFE4",
		BrightWhite:         "#F9F8F5",
	},
	"Nord": {
		Name:                "Nord",
		Background:          "#2E3440",
		Foreground:          "#D8DEE9",
		Cursor:              "#D8DEE9",
		CursorAccent:        "#2E3440",
		SelectionBackground: "#434C5E",
		Black:               "#3B4252",
		Red:                 "#BF616A",
		Green:               "#A3BE8C",
		Yellow:              "#EBCB8B",
		Blue:                "#81A1C1",
		Magenta:             "#B48EAD",
		Cyan:                "#88C0D0",
		White:               "#E5E9F0",
		BrightBlack:         "#4C566A",
		BrightRed:           "#BF616A",
		BrightGreen:         "#A3BE8C",
		BrightYellow:        "#EBCB8B",
		BrightBlue:          "#81A1C1",
		BrightMagenta:       "#B48EAD",
		BrightCyan:          "#8FBCBB",
		BrightWhite:         "#ECEFF4",
	},
	"Solarized Dark": {
		Name:                "Solarized Dark",
		Background:          "#002B36",
		Foreground:          "#839496",
		Cursor:              "#93A1A1",
		CursorAccent:        "#002B36",
		SelectionBackground: "#073642",
		Black:               "#073642",
		Red:                 "#DC322F",
		Green:               "#859900",
		Yellow:              "#B58900",
		Blue:                "#268BD2",
		Magenta:             "#D33682",
		Cyan:                "#2AA198",
		White:               "#EEE8D5",
		BrightBlack:         "#002B36",
		BrightRed:           "#CB4B16",
		BrightGreen:         "#586E75",
		BrightYellow:        "#657B83",
		BrightBlue:          "#839496",
		BrightMagenta:       "#6C71C4",
		BrightCyan:          "#93A1A1",
		BrightWhite:         "#FDF6E3",
	},
	"Solarized Light": {
		Name:                "Solarized Light",
		Background:          "#FDF6E3",
		Foreground:          "#657B83",
		Cursor:              "#586E75",
		CursorAccent:        "#FDF6E3",
		SelectionBackground: "#EEE8D5",
		Black:               "#073642",
		Red:                 "#DC322F",
		Green:               "#859900",
		Yellow:              "#B58900",
		Blue:                "#268BD2",
		Magenta:             "#D33682",
		Cyan:                "#2AA198",
		White:               "#EEE8D5",
		BrightBlack:         "#002B36",
		BrightRed:           "#CB4B16",
		BrightGreen:         "#586E75",
		BrightYellow:        "#657B83",
		BrightBlue:          "#839496",
		BrightMagenta:       "#6C71C4",
		BrightCyan:          "#93A1A1",
		BrightWhite:         "#FDF6E3",
	},
}

// Default returns a copy of the fallback theme.
func Default() *Theme {
	t := defaultTheme
	return &t
}

// Builtin returns a copy of the named built-in theme, or nil if unknown.
func Builtin(name string) *Theme {
	t, ok := builtins[name]
	if !ok {
		return nil
	}
	return &t
}

// BuiltinNames returns the built-in theme names, sorted.
func BuiltinNames() []string {
	names := make([]string, 0, len(builtins))
	for n := range builtins {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
