// ABOUTME: Tests for config path resolution and the LUNATERM_HOME override

package config

import (
	"path/filepath"
	"testing"
)

func TestPaths_HomeOverride(t *testing.T) {
	dir := t.TempDir()
	t.Setenv(HomeEnv, dir)

	if GlobalDir() != dir {
		t.Errorf("GlobalDir() = %q; want %q", GlobalDir(), dir)
	}
	if SettingsFile() != filepath.Join(dir, "settings.json") {
		t.Errorf("SettingsFile() = %q", SettingsFile())
	}
	if ThemesDir() != filepath.Join(dir, "themes") {
		t.Errorf("ThemesDir() = %q", ThemesDir())
	}
	if KeybindingsFile() != filepath.Join(dir, "keybindings.json") {
		t.Errorf("KeybindingsFile() = %q", KeybindingsFile())
	}
	if SocketFile() != filepath.Join(dir, "host.sock") {
		t.Errorf("SocketFile() = %q", SocketFile())
	}
	if LogFile() != filepath.Join(dir, "lunaterm.log") {
		t.Errorf("LogFile() = %q", LogFile())
	}
}

func TestPaths_DefaultUnderHome(t *testing.T) {
	t.Setenv(HomeEnv, "")
	if filepath.Base(GlobalDir()) != ".lunaterm" {
		t.Errorf("GlobalDir() = %q; want .lunaterm suffix", GlobalDir())
	}
}
