package composed

import "fmt"

// InvalidModifierError reports a modifier registration whose callback is not
// a usable function. Delivered by panic from AddModifier, since mutators
// return the receiver for chaining.
type InvalidModifierError struct {
	ValueKey    string
	ModifierKey string
	Received    string
}

func (e *InvalidModifierError) Error() string {
	return fmt.Sprintf("composed value %q: modifier %q must be a func() float64, got %s",
		e.ValueKey, e.ModifierKey, e.Received)
}

// InvalidListenerError reports a listener registration whose callback is not
// a usable function. Delivered by panic from OnValueChange.
type InvalidListenerError struct {
	ValueKey string
	Received string
}

func (e *InvalidListenerError) Error() string {
	return fmt.Sprintf("composed value %q: listener must be a func(float64), got %s",
		e.ValueKey, e.Received)
}
