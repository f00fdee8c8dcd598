// ABOUTME: Standard filesystem paths for lunaterm configuration and runtime files
// ABOUTME: Resolves ~/.lunaterm/ (or $LUNATERM_HOME) for settings, themes, keybindings and the host socket

package config

import (
	"os"
	"path/filepath"
)

const globalDirName = ".lunaterm"

// HomeEnv overrides the global directory when set.
const HomeEnv = "LUNATERM_HOME"

// GlobalDir returns the user-global config directory (~/.lunaterm/).
func GlobalDir() string {
	if dir := os.Getenv(HomeEnv); dir != "" {
		return dir
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", globalDirName)
	}
	return filepath.Join(home, globalDirName)
}

// SettingsFile returns the path to the persisted settings file.
func SettingsFile() string {
	return filepath.Join(GlobalDir(), "settings.json")
}

// ThemesDir returns the directory holding custom theme files.
func ThemesDir() string {
	return filepath.Join(GlobalDir(), "themes")
}

// KeybindingsFile returns the path to the navigation keybindings file.
func KeybindingsFile() string {
	return filepath.Join(GlobalDir(), "keybindings.json")
}

// SocketFile returns the default path of the host control socket.
func SocketFile() string {
	return filepath.Join(GlobalDir(), "host.sock")
}

// LogFile returns the log destination used while a session owns the TTY.
func LogFile() string {
	return filepath.Join(GlobalDir(), "lunaterm.log")
}

// EnsureDir creates a directory and all parents if they don't exist.
func EnsureDir(path string) error {
	return os.MkdirAll(path, 0o700)
}
