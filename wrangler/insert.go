package wrangler

import (
	"errors"
	"fmt"

	"github.com/tanant/knobwrangler/knob"
)

// ErrDuplicateKnobs reports the same knob identity appearing twice in a
// single batch. Name collisions are auto-resolved by mangling; identity
// collisions are the caller's bug and never are.
var ErrDuplicateKnobs = errors.New("duplicate knobs in batch")

// Anchor names the knob a batch is placed against, either directly or
// by name. The zero Anchor means "no preference": knobs land at the
// very front or very back of the user region.
type Anchor struct {
	knob knob.Knob
	name string
}

// ByKnob anchors on a knob identity. The knob must currently be a user
// knob on the target node.
func ByKnob(k knob.Knob) Anchor { return Anchor{knob: k} }

// ByName anchors on the first user knob with the given name.
func ByName(name string) Anchor { return Anchor{name: name} }

func (a Anchor) resolve(n Node) (knob.Knob, error) {
	if a.knob != nil {
		return a.knob, nil
	}

	if a.name == "" {
		return nil, nil
	}

	k, ok := UserKnobByName(n, a.name)
	if !ok {
		return nil, fmt.Errorf("%w: no user knob named %q", ErrInvalidInsertionPoint, a.name)
	}

	return k, nil
}

// Insert places knobs on n at the position described by at and before.
//
// In english: insert (these knobs) onto (the node) at (the anchor), and
// by the way do it (before). With the zero Anchor the batch lands at
// the very front when before is true, otherwise at the very back.
//
// Knobs whose names are already in use on the node are renamed in place
// to a mangled unique name before attachment; two knobs sharing a name
// within the batch resolve against each other as well. The same knob
// identity twice in one batch fails with ErrDuplicateKnobs, and an
// anchor that is not a current user knob fails with
// ErrInvalidInsertionPoint; both checks run before the node is touched.
//
// Returns the knobs that became visible as user knobs because of this
// call, which includes any structural tab the host fabricated along the
// way. A host failure during reconciliation is returned as-is and may
// leave the node partially rebuilt.
func Insert(n Node, knobs []knob.Knob, at Anchor, before bool) ([]knob.Knob, error) {
	seen := make(map[knob.Knob]struct{}, len(knobs))
	for _, k := range knobs {
		if _, dup := seen[k]; dup {
			return nil, fmt.Errorf("%w: knob %q supplied twice", ErrDuplicateKnobs, k.Name())
		}

		seen[k] = struct{}{}
	}

	anchor, err := at.resolve(n)
	if err != nil {
		return nil, err
	}

	current := n.AllKnobs()
	userKnobs := userKnobsOf(n, current)

	point, err := insertionPoint(userKnobs, anchor, before)
	if err != nil {
		return nil, err
	}

	// Renaming has to account for names claimed earlier in the same
	// batch, so the pool grows as we walk. A tab the host fabricates
	// later during reconcile does not exist yet and is invisible here:
	// a new knob named "User" can still end up colliding with it.
	taken := n.Names()
	for _, k := range knobs {
		if _, inUse := taken[k.Name()]; inUse {
			k.SetName(mangleName(k.Name(), taken))
		}

		taken[k.Name()] = struct{}{}
	}

	fixed := len(current) - len(userKnobs)

	proposed := make([]knob.Knob, 0, len(current)+len(knobs))
	proposed = append(proposed, current[:fixed+point]...)
	proposed = append(proposed, knobs...)
	proposed = append(proposed, current[fixed+point:]...)

	if err := reconcile(n, current, proposed); err != nil {
		return nil, err
	}

	prior := make(map[knob.Knob]struct{}, len(userKnobs))
	for _, k := range userKnobs {
		prior[k] = struct{}{}
	}

	var added []knob.Knob

	for _, k := range UserKnobs(n) {
		if _, ok := prior[k]; !ok {
			added = append(added, k)
		}
	}

	return added, nil
}

// AddKnobs appends knobs at the end of the user region, mirroring the
// host's own single-knob add but in bulk. See Insert for the full
// contract.
func AddKnobs(n Node, knobs ...knob.Knob) ([]knob.Knob, error) {
	return Insert(n, knobs, Anchor{}, false)
}

// PopUserKnobs detaches every user knob and returns them in their
// original order, so callers can keep or drop them as they like.
func PopUserKnobs(n Node) ([]knob.Knob, error) {
	popped := UserKnobs(n)

	for i := len(popped) - 1; i >= 0; i-- {
		if err := n.RemoveKnob(popped[i]); err != nil {
			return nil, err
		}
	}

	return popped, nil
}
