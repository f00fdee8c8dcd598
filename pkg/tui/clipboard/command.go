// ABOUTME: Copy/paste via an external command: pbcopy/pbpaste on macOS, xclip on Linux
// ABOUTME: Text is piped on stdin for copy and read from stdout for paste

package clipboard

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"runtime"
	"strings"
)

// Command runs an external program as a clipboard strategy.
type Command struct {
	Path string
	Args []string
}

// DefaultCommand returns the copy command for the current OS.
// The zero Command is returned on platforms without one.
func DefaultCommand() Command {
	path, args := clipboardCmd(runtime.GOOS)
	return Command{Path: path, Args: args}
}

// DefaultPasteCommand returns the paste command for the current OS.
func DefaultPasteCommand() Command {
	path, args := pasteCmd(runtime.GOOS)
	return Command{Path: path, Args: args}
}

// ParseCommand splits a user-configured command line such as "wl-copy -n".
func ParseCommand(line string) Command {
	f := strings.Fields(line)
	if len(f) == 0 {
		return Command{}
	}
	return Command{Path: f[0], Args: f[1:]}
}

func (c Command) Name() string {
	if c.Path == "" {
		return "command"
	}
	return "command:" + c.Path
}

// Available reports whether the program is on PATH.
func (c Command) Available() bool {
	if c.Path == "" {
		return false
	}
	_, err := exec.LookPath(c.Path)
	return err == nil
}

// Write pipes text to the command's stdin.
func (c Command) Write(ctx context.Context, text string) error {
	if c.Path == "" {
		return fmt.Errorf("clipboard not supported on %s: %w", runtime.GOOS, ErrUnavailable)
	}
	cmd := exec.CommandContext(ctx, c.Path, c.Args...)
	cmd.Stdin = strings.NewReader(text)
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("running %s: %w", c.Path, err)
	}
	return nil
}

// Read returns the command's stdout.
func (c Command) Read(ctx context.Context) (string, error) {
	if c.Path == "" {
		return "", fmt.Errorf("clipboard not supported on %s: %w", runtime.GOOS, ErrUnavailable)
	}
	var out bytes.Buffer
	cmd := exec.CommandContext(ctx, c.Path, c.Args...)
	cmd.Stdout = &out
	if err := cmd.Run(); err != nil {
		return "", fmt.Errorf("running %s: %w", c.Path, err)
	}
	return out.String(), nil
}

// clipboardCmd returns the copy command and arguments for goos.
func clipboardCmd(goos string) (string, []string) {
	switch goos {
	case "darwin":
		return "pbcopy", nil
	case "linux":
		return "xclip", []string{"-selection", "clipboard"}
	default:
		return "", nil
	}
}

// pasteCmd returns the paste command and arguments for goos.
func pasteCmd(goos string) (string, []string) {
	switch goos {
	case "darwin":
		return "pbpaste", nil
	case "linux":
		return "xclip", []string{"-selection", "clipboard", "-o"}
	default:
		return "", nil
	}
}
