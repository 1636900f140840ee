package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	composed "github.com/composed-fn/composed-go"
)

const sampleConfig = `
[values."iron.production".modifiers]
base = 10.0
boost = 2.0

[values."energy.output".modifiers]
base = 100.0
`

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "values.toml")
	require.NoError(t, os.WriteFile(path, []byte(sampleConfig), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	require.Len(t, cfg.Values, 2)
	assert.Equal(t, 10.0, cfg.Values["iron.production"].Modifiers["base"])
	assert.Equal(t, 2.0, cfg.Values["iron.production"].Modifiers["boost"])
	assert.Equal(t, 100.0, cfg.Values["energy.output"].Modifiers["base"])
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "load composed value config")
}

func TestParseInvalid(t *testing.T) {
	_, err := Parse("values = not toml")
	require.Error(t, err)
}

func TestApply(t *testing.T) {
	cfg, err := Parse(sampleConfig)
	require.NoError(t, err)

	reg := composed.NewRegistry()
	require.NoError(t, cfg.Apply(reg))

	assert.Equal(t, 20.0, reg.Lookup("iron.production").Value())
	assert.Equal(t, 100.0, reg.Lookup("energy.output").Value())
	assert.Equal(t, []string{"energy.output", "iron.production"}, reg.Keys())
}

func TestApplyEmptyModifierKey(t *testing.T) {
	cfg := Config{Values: map[string]ValueConfig{
		"rate": {Modifiers: map[string]float64{" ": 2}},
	}}

	err := cfg.Apply(composed.NewRegistry())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "empty modifier key")
}
