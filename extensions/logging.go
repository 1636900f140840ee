package extensions

import (
	"github.com/rs/zerolog"

	composed "github.com/composed-fn/composed-go"
)

// LoggingExtension logs all operations and reads on a composed value.
type LoggingExtension struct {
	composed.BaseExtension
	logger zerolog.Logger
}

// NewLoggingExtension creates a new logging extension
func NewLoggingExtension(logger zerolog.Logger) *LoggingExtension {
	return &LoggingExtension{
		BaseExtension: composed.NewBaseExtension("logging"),
		logger:        logger,
	}
}

func (e *LoggingExtension) OnOperation(v *composed.Value, kind composed.OperationKind, modifierKey string) {
	evt := e.logger.Debug().
		Str("extension", e.Name()).
		Str("value", v.Key()).
		Str("op", string(kind))
	if modifierKey != "" {
		evt = evt.Str("modifier", modifierKey)
	}
	evt.Msg("composed value operation")
}

func (e *LoggingExtension) OnValue(v *composed.Value, value float64) {
	e.logger.Debug().
		Str("extension", e.Name()).
		Str("value", v.Key()).
		Float64("result", value).
		Msg("composed value read")
}
