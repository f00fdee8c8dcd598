//go:build !(js && wasm)

// ABOUTME: Tests for the native default strategy chain
// ABOUTME: Checks ordering of platform, user command, OS command and legacy copy

package clipboard

import (
	"bytes"
	"slices"
	"testing"

	"github.com/aymanbagabas/go-osc52/v2"
)

func TestDefault_Order(t *testing.T) {
	t.Parallel()

	doc := NewOSC52Document(&bytes.Buffer{}, osc52.DefaultMode)
	osName := DefaultCommand().Name()

	tests := []struct {
		name    string
		doc     Document
		command string
		want    []string
	}{
		{name: "legacy last", doc: doc, want: []string{"platform", osName, "legacy"}},
		{name: "user command before os command", doc: doc, command: "wl-copy -n", want: []string{"platform", "command:wl-copy", osName, "legacy"}},
		{name: "blank command ignored", doc: doc, command: "   ", want: []string{"platform", osName, "legacy"}},
		{name: "no document", command: "", want: []string{"platform", osName}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := Default(tt.doc, tt.command, nil, nil).Strategies()
			if !slices.Equal(got, tt.want) {
				t.Errorf("Strategies() = %v, want %v", got, tt.want)
			}
		})
	}
}
