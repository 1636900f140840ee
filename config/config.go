// Package config bootstraps composed values from declarative TOML files.
// Each configured modifier becomes a cached constant factor; live modifiers
// are registered by code afterwards, on the same registry.
package config

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"

	composed "github.com/composed-fn/composed-go"
)

// ValueConfig declares the constant modifiers of one composed value.
type ValueConfig struct {
	Modifiers map[string]float64 `toml:"modifiers"`
}

// Config maps composed-value keys to their declared modifiers.
//
//	[values."iron.production".modifiers]
//	base = 10.0
//	boost = 2.0
type Config struct {
	Values map[string]ValueConfig `toml:"values"`
}

// Load reads a TOML config file.
func Load(path string) (Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Config{}, fmt.Errorf("load composed value config: %w", err)
	}
	return cfg, nil
}

// Parse decodes TOML config data.
func Parse(data string) (Config, error) {
	var cfg Config
	if _, err := toml.Decode(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse composed value config: %w", err)
	}
	return cfg, nil
}

// Apply registers every declared modifier as a cached constant on the named
// value in reg, constructing values as needed.
func (c Config) Apply(reg *composed.Registry) error {
	for key, vc := range c.Values {
		key = strings.TrimSpace(key)
		if key == "" {
			return fmt.Errorf("composed value config: empty value key")
		}

		v := reg.Lookup(key)
		for modifierKey, factor := range vc.Modifiers {
			modifierKey = strings.TrimSpace(modifierKey)
			if modifierKey == "" {
				return fmt.Errorf("composed value config: empty modifier key for value %q", key)
			}
			v.AddModifier(modifierKey, func() float64 { return factor })
		}
	}
	return nil
}
