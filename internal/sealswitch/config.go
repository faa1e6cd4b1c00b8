// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package sealswitch

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// Config is the optional TOML configuration of the analyzer.
//
//	[settings]
//	default_exhaustive = false
//
//	[[sealed]]
//	name = "example.com/shapes.Shape"
//	marker = "isShape"
type Config struct {
	Settings Settings       `toml:"settings"`
	Sealed   []SealedConfig `toml:"sealed"`
}

// Settings holds analyzer-wide switches.
type Settings struct {
	// DefaultExhaustive treats a switch with a default clause as complete.
	DefaultExhaustive bool `toml:"default_exhaustive"`
}

// SealedConfig declares a sealed interface without a //defunc:sealed directive.
type SealedConfig struct {
	// Name is the qualified interface name, "import/path.Name".
	Name string `toml:"name"`
	// Marker is the unexported method that identifies variants.
	// Empty selects the first unexported method of the interface.
	Marker string `toml:"marker"`
}

// loadConfig reads the TOML config at path.
// An empty path or a missing file yields the empty config.
func loadConfig(path string) (*Config, error) {
	if path == "" {
		return &Config{}, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}

	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config TOML: %w", err)
	}
	for i, s := range cfg.Sealed {
		if s.Name == "" {
			return nil, fmt.Errorf("parsing config TOML: sealed[%d]: empty name", i)
		}
	}
	return &cfg, nil
}

// sealedMarker returns the configured marker for the interface qualified as
// name, and whether the interface is listed at all.
func (c *Config) sealedMarker(name string) (string, bool) {
	for _, s := range c.Sealed {
		if s.Name == name {
			return s.Marker, true
		}
	}
	return "", false
}
