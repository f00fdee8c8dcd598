// ABOUTME: Persisted settings: resolves the JSON settings document into a Terminal record
// ABOUTME: Reads with gjson, edits keys in place with sjson so unknown keys survive

package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
)

// Recognized settings keys (gjson paths).
const (
	KeyFontSize         = "command_line.character_terminal_font_size"
	KeyQuickPaste       = "command_line.is_right_click_quickly_paste"
	KeyBackspaceAsCtrlH = "command_line.is_backspace_as_ctrl_h"
	KeyThemeName        = "command_line.terminal_theme_name"
	KeyCopyCommand      = "command_line.copy_command"
)

// ErrInvalidSettings is returned for a settings document that is not JSON.
var ErrInvalidSettings = errors.New("invalid settings document")

// Resolve turns a settings document into a Terminal record.
// Font size outside [5,50] or absent becomes 13. Boolean options absent
// resolve to Off. CtrlCAsCtrlZ is always Off: no persisted key controls it.
func Resolve(data []byte) (Terminal, error) {
	cfg := Defaults()
	if len(data) == 0 {
		return cfg, nil
	}
	if !gjson.ValidBytes(data) {
		return cfg, ErrInvalidSettings
	}

	if v := gjson.GetBytes(data, KeyFontSize); v.Exists() {
		cfg.FontSize = int(v.Int())
	}
	cfg.QuickPaste = FlagOf(gjson.GetBytes(data, KeyQuickPaste).Bool())
	cfg.BackspaceAsCtrlH = FlagOf(gjson.GetBytes(data, KeyBackspaceAsCtrlH).Bool())
	cfg.ThemeName = gjson.GetBytes(data, KeyThemeName).String()
	cfg.CopyCommand = strings.TrimSpace(gjson.GetBytes(data, KeyCopyCommand).String())
	cfg.CtrlCAsCtrlZ = Off

	return cfg.Normalize(), nil
}

// Load reads and resolves the settings file at path. A missing file
// resolves to Defaults.
func Load(path string) (Terminal, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return Defaults(), nil
	}
	if err != nil {
		return Defaults(), fmt.Errorf("reading settings: %w", err)
	}
	cfg, err := Resolve(data)
	if err != nil {
		return cfg, fmt.Errorf("parsing %s: %w", path, err)
	}
	return cfg, nil
}

// Get returns the raw JSON value at key, or "" if unset.
func Get(path, key string) (string, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("reading settings: %w", err)
	}
	return gjson.GetBytes(data, key).Raw, nil
}

// Set writes value at key, creating the file and parent directory if needed.
// value is stored as JSON when it parses as a JSON scalar (true, 14, "x"),
// otherwise as a string.
func Set(path, key, value string) error {
	data, err := os.ReadFile(path)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("reading settings: %w", err)
	}
	if len(data) == 0 {
		data = []byte("{}")
	}

	if gjson.Valid(value) {
		data, err = sjson.SetRawBytes(data, key, []byte(value))
	} else {
		data, err = sjson.SetBytes(data, key, value)
	}
	if err != nil {
		return fmt.Errorf("setting %s: %w", key, err)
	}

	if err := EnsureDir(filepath.Dir(path)); err != nil {
		return fmt.Errorf("creating settings dir: %w", err)
	}
	return os.WriteFile(path, data, 0o600)
}
