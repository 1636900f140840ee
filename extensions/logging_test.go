package extensions

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	composed "github.com/composed-fn/composed-go"
)

func TestLoggingExtensionOperations(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf)

	v := composed.NewValue("rate").UseExtension(NewLoggingExtension(logger))
	v.AddModifier("base", func() float64 { return 10 })
	v.TriggerModifierChange("base")
	v.RemoveModifier("base")

	out := buf.String()
	require.NotEmpty(t, out)
	assert.Contains(t, out, `"op":"add-modifier"`)
	assert.Contains(t, out, `"op":"trigger-modifier-change"`)
	assert.Contains(t, out, `"op":"remove-modifier"`)
	assert.Contains(t, out, `"modifier":"base"`)
	assert.Contains(t, out, `"value":"rate"`)
}

func TestLoggingExtensionReads(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf)

	v := composed.NewValue("rate").UseExtension(NewLoggingExtension(logger))
	v.AddModifier("base", func() float64 { return 10 })
	v.Value()

	assert.Contains(t, buf.String(), `"result":10`)
	assert.Contains(t, buf.String(), "composed value read")
}
