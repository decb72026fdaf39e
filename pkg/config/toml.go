// Package config provides configuration helpers and TOML parsing.
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
)

// FileConfig represents the TOML configuration file.
type FileConfig struct {
	Game   GameConfig   `toml:"game"`
	Scores ScoresConfig `toml:"scores"`
}

// GameConfig maps gameplay tuning. Unset values keep their defaults.
type GameConfig struct {
	PlayerSpeed   *float64 `toml:"player-speed"`
	CurveSpeed    *float64 `toml:"curve-speed"`
	ScrollSpeed   *float64 `toml:"scroll-speed"`
	SegmentWidth  *int     `toml:"segment-width"`
	SegmentHeight *int     `toml:"segment-height"`
	Seed          *int64   `toml:"seed"`
	TPS           *int     `toml:"tps"`
}

// ScoresConfig maps score board settings.
type ScoresConfig struct {
	DB     *string `toml:"db"`
	Memory *bool   `toml:"memory"`
}

// LoadConfig reads a TOML config from the given path. Missing file is not an error.
func LoadConfig(path string) (FileConfig, error) {
	if path == "" {
		return FileConfig{}, errors.New("config path is empty")
	}
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return FileConfig{}, nil
		}
		return FileConfig{}, errors.Wrap(err, "failed to stat config")
	}
	var cfg FileConfig
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return FileConfig{}, errors.Wrap(err, "failed to decode config")
	}
	return cfg, nil
}

// Template returns the commented config file written by `racer config`.
func Template(dbPath string) string {
	return fmt.Sprintf(`# racer configuration
# Uncomment a value to enable it. CLI flags override config values.

[game]
# player-speed = 5.0
# curve-speed = 5.0
# scroll-speed = 2.0
# segment-width = 160
# segment-height = 10
# seed = 0
# tps = 60

[scores]
# db = %q
# memory = false
`, dbPath)
}

// WriteTemplate creates the config file at path unless one already exists.
// It reports whether a new file was written.
func WriteTemplate(path string) (bool, error) {
	if err := os.MkdirAll(Dir(path), 0o755); err != nil {
		return false, errors.Wrap(err, "failed to create config directory")
	}
	if _, err := os.Stat(path); err == nil {
		return false, nil
	} else if !os.IsNotExist(err) {
		return false, errors.Wrap(err, "failed to stat config")
	}
	if err := os.WriteFile(path, []byte(Template(DefaultDBPath())), 0o644); err != nil {
		return false, errors.Wrap(err, "failed to write config")
	}
	return true, nil
}
