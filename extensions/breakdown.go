package extensions

import (
	"fmt"

	"github.com/m1gwings/treedrawer/tree"

	composed "github.com/composed-fn/composed-go"
)

// Breakdown renders a composed value's per-modifier contributions as a
// drawn tree, rooted at the value's current result. Cached entries show
// their memoized results, uncached entries a fresh evaluation. Taking the
// breakdown reads the value, with the usual read side effects.
func Breakdown(v *composed.Value) string {
	snap := v.Snapshot()

	t := tree.NewTree(tree.NodeString(fmt.Sprintf("%s = %g", snap.Key, snap.Value)))
	for _, m := range snap.Cached {
		t.AddChild(tree.NodeString(fmt.Sprintf("cached %s = %g", m.Key, m.Value)))
	}
	for _, m := range snap.Uncached {
		t.AddChild(tree.NodeString(fmt.Sprintf("uncached %s = %g", m.Key, m.Value)))
	}

	return t.String()
}
