// ABOUTME: Tests for theme colors: hex validation, darkness detection, default inheritance
// ABOUTME: Verifies ErrInvalidColor wrapping and ANSI ordering

package theme

import (
	"errors"
	"testing"
)

func TestTheme_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		theme   Theme
		wantErr bool
	}{
		{name: "empty fields ok", theme: Theme{Name: "x"}},
		{name: "long hex", theme: Theme{Background: "#1e1e1e"}},
		{name: "short hex", theme: Theme{Foreground: "#fff"}},
		{name: "named color rejected", theme: Theme{Red: "red"}, wantErr: true},
		{name: "missing hash rejected", theme: Theme{Blue: "0000ff"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := tt.theme.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() = %v; wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, ErrInvalidColor) {
				t.Errorf("Validate() error %v does not wrap ErrInvalidColor", err)
			}
		})
	}
}

func TestTheme_IsDark(t *testing.T) {
	t.Parallel()

	if !Builtin("Dracula").IsDark() {
		t.Error("Dracula should be dark")
	}
	if Builtin("Solarized Light").IsDark() {
		t.Error("Solarized Light should be light")
	}
	if !(&Theme{Background: "bogus"}).IsDark() {
		t.Error("unparsable background should count as dark")
	}
}

func TestTheme_WithDefaults(t *testing.T) {
	t.Parallel()

	th := (&Theme{Name: "partial", Red: "#FF0000"}).withDefaults(Default())
	if th.Red != "#FF0000" {
		t.Errorf("Red = %q; want explicit value kept", th.Red)
	}
	if th.Background != DefaultBackground {
		t.Errorf("Background = %q; want default %q", th.Background, DefaultBackground)
	}
	if th.Name != "partial" {
		t.Errorf("Name = %q; want %q", th.Name, "partial")
	}
}

func TestTheme_ANSI(t *testing.T) {
	t.Parallel()

	a := Builtin("Nord").ANSI()
	if a[0] != "#3B4252" || a[15] != "#ECEFF4" {
		t.Errorf("ANSI() endpoints = %q, %q", a[0], a[15])
	}
}
