// Package config loads tunable crossover points for the multiplication
// stack, and default float precisions, from an optional TOML file, using a tagged-struct
// plus Defaults/Load/LoadFrom pattern. Most programs embedding this
// library never touch it: the package-level defaults in the dashu
// package are already sane, and Defaults exists for the rare caller
// tuning for a specific host's word-multiply cost.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/BurntSushi/toml"
)

// Defaults holds the crossover word-lengths for the multiplication
// stack's three-tier dispatch (schoolbook/Karatsuba/Toom-3) and the
// default precision used when a caller doesn't specify one. These are
// design constants; implementers may tune them for their host.
type Defaults struct {
	Multiplication struct {
		KaratsubaThreshold int `toml:"karatsuba_threshold"`
		Toom3Threshold     int `toml:"toom3_threshold"`
	} `toml:"multiplication"`

	Float struct {
		DefaultPrecisionBase10 uint `toml:"default_precision_base10"`
		DefaultPrecisionBase2  uint `toml:"default_precision_base2"`
	} `toml:"float"`
}

// DefaultDefaults returns the built-in crossover values, matching
// mul.go's package-level karatsubaThreshold/toom3Threshold.
func DefaultDefaults() *Defaults {
	d := &Defaults{}
	d.Multiplication.KaratsubaThreshold = 24
	d.Multiplication.Toom3Threshold = 192
	d.Float.DefaultPrecisionBase10 = 34
	d.Float.DefaultPrecisionBase2 = 113
	return d
}

// GetConfigPath returns the platform-specific config file path.
func GetConfigPath() string {
	var configDir string
	switch runtime.GOOS {
	case "windows":
		configDir = os.Getenv("APPDATA")
		if configDir == "" {
			configDir = filepath.Join(os.Getenv("USERPROFILE"), "AppData", "Roaming")
		}
		configDir = filepath.Join(configDir, "dashu-go")
	case "darwin", "linux":
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "dashu.toml"
		}
		configDir = filepath.Join(homeDir, ".config", "dashu-go")
	default:
		return "dashu.toml"
	}
	if err := os.MkdirAll(configDir, 0750); err != nil {
		return "dashu.toml"
	}
	return filepath.Join(configDir, "dashu.toml")
}

// Load loads tunables from the default config file, falling back to
// DefaultDefaults when no file is present.
func Load() (*Defaults, error) {
	return LoadFrom(GetConfigPath())
}

// LoadFrom loads tunables from the given TOML file.
func LoadFrom(path string) (*Defaults, error) {
	d := DefaultDefaults()
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return d, nil
	}
	if _, err := toml.DecodeFile(path, d); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	return d, nil
}

// SaveTo writes d to path as TOML, creating any missing parent
// directories.
func (d *Defaults) SaveTo(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0750); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	f, err := os.Create(path) // #nosec G304 -- user config file path
	if err != nil {
		return fmt.Errorf("failed to create config file: %w", err)
	}
	defer f.Close()
	if err := toml.NewEncoder(f).Encode(d); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	return nil
}
