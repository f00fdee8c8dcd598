// ABOUTME: Tests for built-in themes and the default theme
// ABOUTME: Verifies names, full color population, and valid hex values

package theme

import (
	"reflect"
	"testing"
)

func TestBuiltinThemes_AllExist(t *testing.T) {
	t.Parallel()
	names := []string{"Default", "Dracula", "Monokai", "Nord", "Solarized Dark", "Solarized Light"}
	for _, name := range names {
		th := Builtin(name)
		if th == nil {
			t.Errorf("Builtin(%q) returned nil", name)
			continue
		}
		if th.Name != name {
			t.Errorf("Builtin(%q).Name = %q", name, th.Name)
		}
	}
}

func TestBuiltinThemes_UnknownReturnsNil(t *testing.T) {
	t.Parallel()
	if th := Builtin("nonexistent"); th != nil {
		t.Errorf("Builtin(nonexistent) should return nil, got %v", th)
	}
}

func TestBuiltinThemes_AllColorsPopulatedAndValid(t *testing.T) {
	t.Parallel()
	for _, name := range BuiltinNames() {
		th := Builtin(name)
		v := reflect.ValueOf(th).Elem()
		for i := range v.NumField() {
			if v.Type().Field(i).Name == "Name" {
				continue
			}
			if v.Field(i).String() == "" {
				t.Errorf("Builtin(%q).%s is empty", name, v.Type().Field(i).Name)
			}
		}
		if err := th.Validate(); err != nil {
			t.Errorf("Builtin(%q).Validate() = %v", name, err)
		}
	}
}

func TestDefault_Background(t *testing.T) {
	t.Parallel()
	if got := Default().Background; got != DefaultBackground {
		t.Errorf("Default().Background = %q; want %q", got, DefaultBackground)
	}
}

func TestBuiltin_ReturnsCopy(t *testing.T) {
	t.Parallel()
	a := Builtin("Dracula")
	a.Background = "#000000"
	if b := Builtin("Dracula"); b.Background == "#000000" {
		t.Error("Builtin returned shared state")
	}
}
