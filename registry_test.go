package composed

import "testing"

func TestLookupConstructsLazily(t *testing.T) {
	reg := NewRegistry()

	v := reg.Lookup("iron.production")
	if v == nil {
		t.Fatal("expected a value")
	}
	if got := v.Value(); got != 1 {
		t.Errorf("expected fresh value to evaluate to 1, got %v", got)
	}
}

func TestLookupReturnsIdenticalInstance(t *testing.T) {
	reg := NewRegistry()

	first := reg.Lookup("iron.production")
	first.AddModifier("base", func() float64 { return 10 })

	second := reg.Lookup("iron.production")
	if first != second {
		t.Fatal("expected repeated lookups to return the identical instance")
	}
	if got := second.Value(); got != 10 {
		t.Errorf("expected shared state across lookups, got %v", got)
	}
}

func TestLookupDistinctKeys(t *testing.T) {
	reg := NewRegistry()

	if reg.Lookup("a") == reg.Lookup("b") {
		t.Error("expected distinct instances for distinct keys")
	}
}

func TestRegistryKeys(t *testing.T) {
	reg := NewRegistry()
	reg.Lookup("b")
	reg.Lookup("a")

	keys := reg.Keys()
	if len(keys) != 2 || keys[0] != "a" || keys[1] != "b" {
		t.Errorf("expected sorted keys [a b], got %v", keys)
	}
}
