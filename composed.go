package composed

import (
	"math"
	"sort"
	"sync"

	"github.com/rs/zerolog"
)

// Modifier is a zero-argument callback contributing multiplicatively to a
// composed value.
type Modifier func() float64

// Listener receives the new value after a composed value changes.
type Listener func(float64)

// Value represents a named numeric quantity computed as the product of
// independently registered modifiers. Modifiers live in one of two tiers:
// cached modifiers are evaluated once per invalidation cycle and their
// results memoized, uncached modifiers are re-evaluated on every read.
//
// All mutating operations return the receiver so calls can be chained.
// Public operations are guarded by an internal mutex; modifier callbacks
// run while that lock is held and must not call back into the same Value.
// Listeners are invoked after the lock is released and may re-enter.
type Value struct {
	mu  sync.Mutex
	key string

	cachedModifiers   map[string]Modifier
	uncachedModifiers map[string]Modifier

	// modifierValueCache holds the last-computed result per cached
	// modifier; a key is present only if it has been evaluated since its
	// last invalidation. Always a subset of cachedModifiers' keys.
	modifierValueCache map[string]float64

	// aggregate is valid only while every cached modifier has an entry in
	// modifierValueCache. The flag makes "absent vs. computed" explicit.
	aggregate      float64
	aggregateValid bool

	lastEmitted float64
	emitted     bool

	listeners  []Listener
	extensions []Extension

	logger zerolog.Logger
}

// ValueOption configures a Value at construction time.
type ValueOption func(*Value)

// WithValueLogger sets the logger used by Debug.
func WithValueLogger(logger zerolog.Logger) ValueOption {
	return func(v *Value) {
		v.logger = logger
	}
}

// NewValue creates an empty composed value: no modifiers, no listeners,
// invalid aggregate, no last-emitted value.
func NewValue(key string, opts ...ValueOption) *Value {
	v := &Value{
		key:                key,
		cachedModifiers:    make(map[string]Modifier),
		uncachedModifiers:  make(map[string]Modifier),
		modifierValueCache: make(map[string]float64),
		logger:             zerolog.Nop(),
	}

	for _, opt := range opts {
		opt(v)
	}

	return v
}

// Key returns the value's identity, used only for diagnostics.
func (v *Value) Key() string {
	return v.key
}

type modifierConfig struct {
	cached bool
}

// ModifierOption configures how a modifier is registered.
type ModifierOption func(*modifierConfig)

// Uncached registers the modifier in the uncached tier, re-evaluated on
// every read instead of memoized.
func Uncached() ModifierOption {
	return func(c *modifierConfig) {
		c.cached = false
	}
}

// AddModifier registers fn under modifierKey, in the cached tier unless
// Uncached is given. Registering the same key twice in the same tier
// silently replaces the prior callback. On the cached path any stale
// memoized result for the key is dropped and the aggregate invalidated.
//
// Panics with *InvalidModifierError if fn is nil.
func (v *Value) AddModifier(modifierKey string, fn Modifier, opts ...ModifierOption) *Value {
	if fn == nil {
		panic(&InvalidModifierError{
			ValueKey:    v.key,
			ModifierKey: modifierKey,
			Received:    "nil",
		})
	}

	cfg := modifierConfig{cached: true}
	for _, opt := range opts {
		opt(&cfg)
	}

	v.mu.Lock()
	if cfg.cached {
		v.cachedModifiers[modifierKey] = fn
		delete(v.modifierValueCache, modifierKey)
		v.aggregateValid = false
	} else {
		v.uncachedModifiers[modifierKey] = fn
	}
	exts := v.snapshotExtensionsLocked()
	v.mu.Unlock()

	for _, ext := range exts {
		ext.OnOperation(v, OpAddModifier, modifierKey)
	}

	return v
}

// RemoveModifier removes modifierKey from both tiers and from the memoized
// results, and invalidates the aggregate. Always succeeds; unknown keys are
// no-ops.
func (v *Value) RemoveModifier(modifierKey string) *Value {
	v.mu.Lock()
	delete(v.cachedModifiers, modifierKey)
	delete(v.uncachedModifiers, modifierKey)
	delete(v.modifierValueCache, modifierKey)
	v.aggregateValid = false
	exts := v.snapshotExtensionsLocked()
	v.mu.Unlock()

	for _, ext := range exts {
		ext.OnOperation(v, OpRemoveModifier, modifierKey)
	}

	return v
}

// TriggerModifierChange signals that a cached modifier's underlying data
// changed externally and its memoized result is stale. The next read
// re-invokes exactly that callback. Uncached modifiers are unaffected.
func (v *Value) TriggerModifierChange(modifierKey string) *Value {
	v.mu.Lock()
	delete(v.modifierValueCache, modifierKey)
	v.aggregateValid = false
	exts := v.snapshotExtensionsLocked()
	v.mu.Unlock()

	for _, ext := range exts {
		ext.OnOperation(v, OpTrigger, modifierKey)
	}

	return v
}

// Recalculate invalidates the entire cache. Equivalent to calling
// TriggerModifierChange for every cached modifier at once.
func (v *Value) Recalculate() *Value {
	v.mu.Lock()
	clear(v.modifierValueCache)
	v.aggregateValid = false
	exts := v.snapshotExtensionsLocked()
	v.mu.Unlock()

	for _, ext := range exts {
		ext.OnOperation(v, OpRecalculate, "")
	}

	return v
}

// Value computes the current value: the memoized product of all cached
// modifiers times a fresh evaluation of every uncached modifier, clamped to
// a finite number. Only cached modifiers missing a memoized result are
// re-invoked. When the result differs from the last emitted value, every
// listener is invoked in registration order with the new value.
func (v *Value) Value() float64 {
	v.mu.Lock()

	if !v.aggregateValid {
		for key, fn := range v.cachedModifiers {
			if _, ok := v.modifierValueCache[key]; !ok {
				v.modifierValueCache[key] = fn()
			}
		}
		agg := 1.0
		for _, val := range v.modifierValueCache {
			agg *= val
		}
		v.aggregate = agg
		v.aggregateValid = true
	}

	uncached := 1.0
	for _, fn := range v.uncachedModifiers {
		uncached *= fn()
	}

	result := finiteClamp(v.aggregate * uncached)

	var toNotify []Listener
	if !v.emitted || result != v.lastEmitted {
		v.lastEmitted = result
		v.emitted = true
		toNotify = append([]Listener(nil), v.listeners...)
	}
	exts := v.snapshotExtensionsLocked()
	v.mu.Unlock()

	for _, listener := range toNotify {
		listener(result)
	}
	for _, ext := range exts {
		ext.OnValue(v, result)
	}

	return result
}

// ValueExcluding returns the current value with the named modifiers'
// contributions filtered out. It first calls Value, so caches populate and
// listeners fire exactly as a plain read would; the filtered product itself
// does not touch listener state.
func (v *Value) ValueExcluding(excludeKeys ...string) float64 {
	v.Value()

	exclude := make(map[string]struct{}, len(excludeKeys))
	for _, key := range excludeKeys {
		exclude[key] = struct{}{}
	}

	v.mu.Lock()
	fns := make([]Modifier, 0, len(v.uncachedModifiers))
	for key, fn := range v.uncachedModifiers {
		if _, skip := exclude[key]; !skip {
			fns = append(fns, fn)
		}
	}
	product := 1.0
	for key, val := range v.modifierValueCache {
		if _, skip := exclude[key]; !skip {
			product *= val
		}
	}
	v.mu.Unlock()

	for _, fn := range fns {
		product *= fn()
	}

	return finiteClamp(product)
}

// OnValueChange appends fn to the listener list. Listeners are invoked in
// registration order, once per distinct value transition; there is no
// de-duplication and no removal, a listener registered twice runs twice.
//
// Panics with *InvalidListenerError if fn is nil.
func (v *Value) OnValueChange(fn Listener) *Value {
	if fn == nil {
		panic(&InvalidListenerError{
			ValueKey: v.key,
			Received: "nil",
		})
	}

	v.mu.Lock()
	v.listeners = append(v.listeners, fn)
	v.mu.Unlock()

	return v
}

// ModifierSample pairs a modifier key with its current contribution.
type ModifierSample struct {
	Key   string
	Value float64
}

// Snapshot captures a value's current state for diagnostics: the computed
// value, the memoized cached-tier entries, and a fresh evaluation of every
// uncached modifier. Entries are sorted by key. Taking a snapshot reads the
// value, so it carries the same side effects as Value.
type Snapshot struct {
	Key      string
	Value    float64
	Cached   []ModifierSample
	Uncached []ModifierSample
}

// Snapshot returns a diagnostic view of the value's modifier contributions.
func (v *Value) Snapshot() Snapshot {
	current := v.Value()

	v.mu.Lock()
	cached := make([]ModifierSample, 0, len(v.modifierValueCache))
	for key, val := range v.modifierValueCache {
		cached = append(cached, ModifierSample{Key: key, Value: val})
	}
	uncachedFns := make([]ModifierSample, 0, len(v.uncachedModifiers))
	fns := make([]Modifier, 0, len(v.uncachedModifiers))
	for key := range v.uncachedModifiers {
		uncachedFns = append(uncachedFns, ModifierSample{Key: key})
		fns = append(fns, v.uncachedModifiers[key])
	}
	v.mu.Unlock()

	for i, fn := range fns {
		uncachedFns[i].Value = fn()
	}

	sort.Slice(cached, func(i, j int) bool { return cached[i].Key < cached[j].Key })
	sort.Slice(uncachedFns, func(i, j int) bool { return uncachedFns[i].Key < uncachedFns[j].Key })

	return Snapshot{
		Key:      v.key,
		Value:    current,
		Cached:   cached,
		Uncached: uncachedFns,
	}
}

// Debug logs the current value and the per-modifier contributions of both
// tiers through the configured logger. Diagnostic convenience only.
func (v *Value) Debug() *Value {
	snap := v.Snapshot()

	cached := zerolog.Dict()
	for _, m := range snap.Cached {
		cached = cached.Float64(m.Key, m.Value)
	}
	uncached := zerolog.Dict()
	for _, m := range snap.Uncached {
		uncached = uncached.Float64(m.Key, m.Value)
	}

	v.logger.Debug().
		Str("key", snap.Key).
		Float64("value", snap.Value).
		Dict("cached", cached).
		Dict("uncached", uncached).
		Msg("composed value state")

	return v
}

// finiteClamp saturates non-finite results to the largest finite float64.
// NaN and both infinities map to math.MaxFloat64; sign information of a
// negative overflow is discarded, matching the engine's saturation policy.
func finiteClamp(x float64) float64 {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return math.MaxFloat64
	}
	return x
}
