// ABOUTME: Tests for settings resolution into the Terminal record and sjson key edits
// ABOUTME: Covers font-size clamping, flag mapping, CtrlCAsCtrlZ pinning, and file round trips

package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestResolve(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		doc  string
		want Terminal
	}{
		{
			name: "empty document",
			doc:  "",
			want: Defaults(),
		},
		{
			name: "all keys",
			doc: `{"command_line": {
				"character_terminal_font_size": 16,
				"is_right_click_quickly_paste": true,
				"is_backspace_as_ctrl_h": true,
				"terminal_theme_name": "Dracula"
			}}`,
			want: Terminal{FontSize: 16, LineHeight: 1, QuickPaste: On, BackspaceAsCtrlH: On, CtrlCAsCtrlZ: Off, ThemeName: "Dracula"},
		},
		{
			name: "font size too large",
			doc:  `{"command_line": {"character_terminal_font_size": 999}}`,
			want: Defaults(),
		},
		{
			name: "font size too small",
			doc:  `{"command_line": {"character_terminal_font_size": 4}}`,
			want: Defaults(),
		},
		{
			name: "font size bounds inclusive",
			doc:  `{"command_line": {"character_terminal_font_size": 50}}`,
			want: Terminal{FontSize: 50, LineHeight: 1, QuickPaste: Off, BackspaceAsCtrlH: Off, CtrlCAsCtrlZ: Off},
		},
		{
			name: "falsey flags",
			doc:  `{"command_line": {"is_right_click_quickly_paste": false, "is_backspace_as_ctrl_h": 0}}`,
			want: Defaults(),
		},
		{
			name: "copy command trimmed",
			doc:  `{"command_line": {"copy_command": "  wl-copy -n "}}`,
			want: Terminal{FontSize: 13, LineHeight: 1, QuickPaste: Off, BackspaceAsCtrlH: Off, CtrlCAsCtrlZ: Off, CopyCommand: "wl-copy -n"},
		},
		{
			name: "no command_line section",
			doc:  `{"other": {"x": 1}}`,
			want: Defaults(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := Resolve([]byte(tt.doc))
			if err != nil {
				t.Fatalf("Resolve() error: %v", err)
			}
			if got != tt.want {
				t.Errorf("Resolve() = %+v; want %+v", got, tt.want)
			}
		})
	}
}

func TestResolve_CtrlCAsCtrlZAlwaysOff(t *testing.T) {
	t.Parallel()

	got, err := Resolve([]byte(`{"command_line": {"is_ctrl_c_as_ctrl_z": true}}`))
	if err != nil {
		t.Fatal(err)
	}
	if got.CtrlCAsCtrlZ != Off {
		t.Errorf("CtrlCAsCtrlZ = %q; want %q", got.CtrlCAsCtrlZ, Off)
	}
}

func TestResolve_InvalidJSON(t *testing.T) {
	t.Parallel()

	got, err := Resolve([]byte("{nope"))
	if !errors.Is(err, ErrInvalidSettings) {
		t.Errorf("Resolve() error = %v; want ErrInvalidSettings", err)
	}
	if got != Defaults() {
		t.Errorf("Resolve() = %+v; want defaults on error", got)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	t.Parallel()

	got, err := Load(filepath.Join(t.TempDir(), "settings.json"))
	if err != nil || got != Defaults() {
		t.Errorf("Load(missing) = %+v, %v; want defaults", got, err)
	}
}

func TestSetGet_RoundTrip(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "nested", "settings.json")

	if err := Set(path, KeyFontSize, "18"); err != nil {
		t.Fatalf("Set() error: %v", err)
	}
	if err := Set(path, KeyQuickPaste, "true"); err != nil {
		t.Fatalf("Set() error: %v", err)
	}
	if err := Set(path, KeyThemeName, "Solarized Dark"); err != nil {
		t.Fatalf("Set() error: %v", err)
	}

	if raw, _ := Get(path, KeyFontSize); raw != "18" {
		t.Errorf("Get(font size) = %q; want %q", raw, "18")
	}
	if raw, _ := Get(path, KeyThemeName); raw != `"Solarized Dark"` {
		t.Errorf("Get(theme) = %q", raw)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.FontSize != 18 || !cfg.QuickPaste.Enabled() || cfg.ThemeName != "Solarized Dark" {
		t.Errorf("Load() = %+v", cfg)
	}
}

func TestSet_PreservesUnknownKeys(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "settings.json")
	if err := os.WriteFile(path, []byte(`{"basic": {"lang": "en"}}`), 0o600); err != nil {
		t.Fatal(err)
	}
	if err := Set(path, KeyBackspaceAsCtrlH, "true"); err != nil {
		t.Fatal(err)
	}
	if raw, _ := Get(path, "basic.lang"); raw != `"en"` {
		t.Errorf("unknown key lost: %q", raw)
	}
}

func TestTerminal_Normalize(t *testing.T) {
	t.Parallel()

	got := Terminal{FontSize: 0, LineHeight: -1, QuickPaste: "yes", BackspaceAsCtrlH: On}.Normalize()
	want := Terminal{FontSize: 13, LineHeight: 1, QuickPaste: Off, BackspaceAsCtrlH: On, CtrlCAsCtrlZ: Off}
	if got != want {
		t.Errorf("Normalize() = %+v; want %+v", got, want)
	}
}

func TestFlag(t *testing.T) {
	t.Parallel()

	if !On.Enabled() || Off.Enabled() || Flag("").Enabled() || Flag("true").Enabled() {
		t.Error("only \"1\" should be enabled")
	}
	if FlagOf(true) != On || FlagOf(false) != Off {
		t.Error("FlagOf mismatch")
	}
}
