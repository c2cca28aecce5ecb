package wrangler

import (
	"fmt"

	"github.com/tanant/knobwrangler/knob"
)

// lastFixedKnob maps a node class to the name of its final fixed knob.
// Everything after that knob is user territory. Classes not listed here
// fall back to defaultLastFixed.
var lastFixedKnob = map[string]string{
	"Group":      "window",
	"StickyNote": "bookmark",
	"NoOp":       "hide_input",
	"Dot":        "hide_input",
}

const defaultLastFixed = "useLifetime"

// UserKnobs returns the knobs a user could have added to the node:
// everything after the class-specific last fixed knob, in positional
// order. A node missing its marker knob is malformed beyond recovery,
// so that case panics instead of returning an error.
func UserKnobs(n Node) []knob.Knob {
	return userKnobsOf(n, n.AllKnobs())
}

// userKnobsOf is UserKnobs over an already-captured snapshot, so one
// call can keep working against a single consistent knob list.
func userKnobsOf(n Node, all []knob.Knob) []knob.Knob {
	marker, ok := lastFixedKnob[n.Class()]
	if !ok {
		marker = defaultLastFixed
	}

	for i, k := range all {
		if k.Name() == marker {
			return all[i+1:]
		}
	}

	panic(fmt.Sprintf("wrangler: node class %q has no %q knob, node is malformed", n.Class(), marker))
}

// UserKnobByName returns the first user knob with the given name. The
// host tolerates duplicate names in memory and leaves by-name access
// undefined in that case; first-in-positional-order is the defined
// winner here. The second return is false when nothing matches.
func UserKnobByName(n Node, name string) (knob.Knob, bool) {
	for _, k := range UserKnobs(n) {
		if k.Name() == name {
			return k, true
		}
	}

	return nil, false
}
