package composed

// OperationKind represents the type of operation performed on a value.
type OperationKind string

const (
	// OpAddModifier indicates a modifier registration.
	OpAddModifier OperationKind = "add-modifier"
	// OpRemoveModifier indicates a modifier removal.
	OpRemoveModifier OperationKind = "remove-modifier"
	// OpTrigger indicates a single-modifier cache invalidation.
	OpTrigger OperationKind = "trigger-modifier-change"
	// OpRecalculate indicates a full cache invalidation.
	OpRecalculate OperationKind = "recalculate"
)

// Extension observes operations on a composed value. Hooks run synchronously
// after the operation has mutated state, outside the value's lock.
type Extension interface {
	// Name returns the extension's name
	Name() string

	// OnOperation is called after each mutating operation. modifierKey is
	// empty for operations with no single-modifier target.
	OnOperation(v *Value, kind OperationKind, modifierKey string)

	// OnValue is called after every read with the computed result,
	// regardless of whether listeners fired.
	OnValue(v *Value, value float64)
}

// BaseExtension provides default implementations for Extension methods
type BaseExtension struct {
	name string
}

// NewBaseExtension creates a new base extension with the given name
func NewBaseExtension(name string) BaseExtension {
	return BaseExtension{name: name}
}

func (e *BaseExtension) Name() string {
	return e.name
}

func (e *BaseExtension) OnOperation(v *Value, kind OperationKind, modifierKey string) {
}

func (e *BaseExtension) OnValue(v *Value, value float64) {
}

// UseExtension registers an extension on the value.
func (v *Value) UseExtension(ext Extension) *Value {
	v.mu.Lock()
	v.extensions = append(v.extensions, ext)
	v.mu.Unlock()

	return v
}

func (v *Value) snapshotExtensionsLocked() []Extension {
	if len(v.extensions) == 0 {
		return nil
	}
	exts := make([]Extension, len(v.extensions))
	copy(exts, v.extensions)
	return exts
}
