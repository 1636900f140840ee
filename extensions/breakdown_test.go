package extensions

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	composed "github.com/composed-fn/composed-go"
)

func TestBreakdown(t *testing.T) {
	v := composed.NewValue("iron.production")
	v.AddModifier("base", func() float64 { return 10 }).
		AddModifier("boost", func() float64 { return 2 }).
		AddModifier("weather", func() float64 { return 0.5 }, composed.Uncached())

	out := Breakdown(v)
	require.NotEmpty(t, out)

	assert.Contains(t, out, "iron.production = 10")
	assert.Contains(t, out, "cached base = 10")
	assert.Contains(t, out, "cached boost = 2")
	assert.Contains(t, out, "uncached weather = 0.5")
}

func TestBreakdownEmptyValue(t *testing.T) {
	v := composed.NewValue("empty")

	assert.Contains(t, Breakdown(v), "empty = 1")
}
