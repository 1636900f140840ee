// Package composed provides a decoupled, incrementally-cached composite-value
// engine: named numeric quantities whose magnitude is the product of
// independently registered modifier functions.
//
// # Overview
//
// Composed organizes code around two concepts:
//
//  1. Values: named quantities owning modifier registrations, a two-level
//     cache, and change listeners
//  2. Registries: keyed lookups that lazily construct values so mutually
//     unaware producers and consumers share state without coordination
//
// # Basic Usage
//
// Obtain a value from a registry and register modifiers:
//
//	reg := composed.NewRegistry()
//
//	rate := reg.Lookup("iron.production")
//	rate.AddModifier("base", func() float64 { return 10 }).
//		AddModifier("boost", func() float64 { return 2 })
//
//	rate.Value() // 20
//
// A value with zero modifiers evaluates to 1 (empty product), not 0.
//
// # Modifier Tiers
//
// Modifiers are cached by default: evaluated once, memoized until
// invalidated. Uncached modifiers re-evaluate on every read:
//
//	rate.AddModifier("daylight", func() float64 {
//		return clock.DaylightFactor()
//	}, composed.Uncached())
//
// # Invalidation
//
// When a cached modifier's underlying data changes, signal it:
//
//	rate.TriggerModifierChange("boost") // re-invokes only "boost"
//	rate.Recalculate()                  // re-invokes every cached modifier
//
// Registering a modifier under an existing key replaces the prior callback
// and drops its memoized result. RemoveModifier removes a key from both
// tiers and never fails.
//
// # Listeners
//
// Listeners fire once per distinct value transition, in registration order,
// during reads:
//
//	rate.OnValueChange(func(v float64) {
//		fmt.Println("rate is now", v)
//	})
//
// Consecutive reads producing the same value do not re-notify.
//
// # Exclusion Queries
//
// ValueExcluding answers "what would the value be without these modifiers":
//
//	rate.ValueExcluding("boost") // 10, with the boost filtered out
//
// It performs a normal read first, so caches populate and listeners fire
// exactly as Value would.
//
// # Numeric Saturation
//
// Non-finite results (NaN, +Inf, -Inf) saturate to math.MaxFloat64 instead
// of propagating, so runaway multiplier chains stay representable.
//
// # Extensions
//
// Extensions observe operations for cross-cutting concerns:
//
//	type AuditExtension struct {
//	    composed.BaseExtension
//	}
//
//	func (e *AuditExtension) OnOperation(v *composed.Value, kind composed.OperationKind, key string) {
//	    log.Printf("%s on %s (%s)", kind, v.Key(), key)
//	}
//
//	rate.UseExtension(&AuditExtension{
//	    BaseExtension: composed.NewBaseExtension("audit"),
//	})
//
// # Thread Safety
//
// Each value guards its state with a mutex, so operations from multiple
// goroutines will not corrupt it. The engine is still designed for one
// logical thread of control per value: modifier callbacks run under the
// value's lock and must not call back into the same value, while listeners
// run after the lock is released and may.
package composed
