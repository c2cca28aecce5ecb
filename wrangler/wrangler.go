// Package wrangler rearranges the user knobs on a host node.
//
// The host exposes only two mutations on its knob list, append-at-end
// and remove-by-identity, yet callers want positional control:
// insert-before, insert-after, bulk insertion and collision-free
// renaming. The wrangler compiles "I want this exact ordered list" into
// the minimal remove/append sequence against those two primitives.
//
// All operations are synchronous and assume exclusive access to the
// node for the duration of a call; concurrent calls against the same
// node must be serialized by the caller.
package wrangler

import "github.com/tanant/knobwrangler/knob"

// Node is the narrow host surface the wrangler drives. The host owns
// the knob list; knob order can only change through AddKnob and
// RemoveKnob, which is exactly why the reconciler in this package
// exists.
type Node interface {
	// Class returns the node's classification, which selects the
	// boundary between fixed and user knobs.
	Class() string

	// AllKnobs returns a snapshot of every knob, fixed and user, in
	// positional order. The snapshot stays stable while the node
	// mutates.
	AllKnobs() []knob.Knob

	// AddKnob appends a knob at the logical end of the knob list. The
	// host may fabricate structural knobs of its own (the "User" tab)
	// as a side effect.
	AddKnob(k knob.Knob)

	// RemoveKnob detaches a knob by identity. It fails when the knob is
	// not attached.
	RemoveKnob(k knob.Knob) error

	// Names returns every knob name currently in use on the node,
	// system and user alike. The returned set is the caller's to
	// mutate.
	Names() map[string]struct{}
}
