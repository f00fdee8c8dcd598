// ABOUTME: Theme file loading (JSON or YAML) with hex validation and default fallback
// ABOUTME: Unset color fields inherit from the default theme to ensure completeness

package theme

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// LoadFile reads a theme file and returns a Theme.
// Files ending in .yaml or .yml are parsed as YAML, anything else as JSON.
// A missing name falls back to the file name without extension; missing
// colors fall back to the default theme.
func LoadFile(path string) (*Theme, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading theme file: %w", err)
	}

	var th Theme
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &th)
	default:
		err = json.Unmarshal(data, &th)
	}
	if err != nil {
		return nil, fmt.Errorf("parsing theme file %s: %w", path, err)
	}

	if err := th.Validate(); err != nil {
		return nil, fmt.Errorf("validating theme file %s: %w", path, err)
	}

	if th.Name == "" {
		th.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	return th.withDefaults(&defaultTheme), nil
}

// LoadDir loads every *.json, *.yaml and *.yml file in dir.
// A missing directory yields no themes and no error. Files that fail to load
// are skipped and reported together in the returned error.
func LoadDir(dir string) ([]*Theme, error) {
	entries, err := os.ReadDir(dir)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading theme dir: %w", err)
	}

	var (
		themes []*Theme
		errs   []error
	)
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		switch strings.ToLower(filepath.Ext(e.Name())) {
		case ".json", ".yaml", ".yml":
		default:
			continue
		}
		th, err := LoadFile(filepath.Join(dir, e.Name()))
		if err != nil {
			errs = append(errs, err)
			continue
		}
		themes = append(themes, th)
	}
	return themes, errors.Join(errs...)
}
