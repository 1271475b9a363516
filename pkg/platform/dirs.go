// SPDX-License-Identifier: MPL-2.0

package platform

import (
	"errors"
	"fmt"
	"path/filepath"
)

// GOOS values that need their own directory layout.
const (
	Windows = "windows"
	Darwin  = "darwin"
)

// ErrNoConfigBase is returned when neither the environment nor the home
// directory yields a usable base directory.
var ErrNoConfigBase = errors.New("cannot determine user config directory")

// Env supplies the lookups ConfigBase needs. Tests substitute fixed values.
type Env struct {
	Getenv  func(string) string
	HomeDir func() (string, error)
}

// ConfigBase returns the per-user configuration root for goos:
// %APPDATA% on Windows, ~/Library/Application Support on macOS, and
// $XDG_CONFIG_HOME (or ~/.config) elsewhere.
func ConfigBase(goos string, env Env) (string, error) {
	switch goos {
	case Windows:
		if dir := env.Getenv("APPDATA"); dir != "" {
			return dir, nil
		}
		if profile := env.Getenv("USERPROFILE"); profile != "" {
			return filepath.Join(profile, "AppData", "Roaming"), nil
		}
		return "", fmt.Errorf("%w: APPDATA and USERPROFILE are unset", ErrNoConfigBase)
	case Darwin:
		home, err := home(env)
		if err != nil {
			return "", err
		}
		return filepath.Join(home, "Library", "Application Support"), nil
	default:
		if dir := env.Getenv("XDG_CONFIG_HOME"); dir != "" {
			return dir, nil
		}
		home, err := home(env)
		if err != nil {
			return "", err
		}
		return filepath.Join(home, ".config"), nil
	}
}

func home(env Env) (string, error) {
	dir, err := env.HomeDir()
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrNoConfigBase, err)
	}
	if dir == "" {
		return "", fmt.Errorf("%w: empty home directory", ErrNoConfigBase)
	}
	return dir, nil
}
