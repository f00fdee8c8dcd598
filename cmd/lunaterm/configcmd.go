// ABOUTME: config command: reads and writes persisted terminal settings
// ABOUTME: Accepts short key aliases; unknown keys pass through as raw gjson paths

package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/mauromedda/lunaterm/internal/config"
)

var errConfigUsage = errors.New("usage: lunaterm config path | get <key> | set <key> <value>")

var keyAliases = map[string]string{
	"fontSize":         config.KeyFontSize,
	"quickPaste":       config.KeyQuickPaste,
	"backspaceAsCtrlH": config.KeyBackspaceAsCtrlH,
	"theme":            config.KeyThemeName,
	"copyCommand":      config.KeyCopyCommand,
}

func resolveKey(k string) string {
	if full, ok := keyAliases[k]; ok {
		return full
	}
	return k
}

func runConfig(w io.Writer, path string, args []string) error {
	if len(args) == 0 {
		return errConfigUsage
	}
	switch args[0] {
	case "path":
		if len(args) != 1 {
			return errConfigUsage
		}
		fmt.Fprintln(w, path)
	case "get":
		if len(args) != 2 {
			return errConfigUsage
		}
		v, err := config.Get(path, resolveKey(args[1]))
		if err != nil {
			return err
		}
		fmt.Fprintln(w, v)
	case "set":
		if len(args) != 3 {
			return errConfigUsage
		}
		if err := config.Set(path, resolveKey(args[1]), args[2]); err != nil {
			return err
		}
	default:
		return errConfigUsage
	}
	return nil
}
