// Package node provides an in-memory stand-in for a host application
// node. It keeps the two host quirks the wrangler is built around: the
// knob list mutates only through append and remove, and appending the
// first user knob fabricates a "User" tab to hold it.
package node

import (
	"errors"
	"fmt"

	"github.com/tanant/knobwrangler/knob"
)

// ErrKnobNotAttached reports a removal target that is not on the node.
var ErrKnobNotAttached = errors.New("knob not attached")

// ErrFixedKnob reports an attempt to remove one of the node's own base
// knobs. Only knobs in the user region are removable.
var ErrFixedKnob = errors.New("fixed knob is not removable")

type Node struct {
	class string
	fixed int // count of base knobs, never removable
	knobs []knob.Knob
}

// New builds a node of the given class with that class's base knob
// layout from the embedded catalog. Unknown classes get the default
// layout.
func New(class string) *Node {
	base := baseKnobs(class)

	return &Node{
		class: class,
		fixed: len(base),
		knobs: base,
	}
}

func (n *Node) Class() string { return n.class }

// AllKnobs returns a snapshot of every knob in positional order.
func (n *Node) AllKnobs() []knob.Knob {
	out := make([]knob.Knob, len(n.knobs))
	copy(out, n.knobs)

	return out
}

// Knob returns the first knob with the given name, fixed or user, or
// nil when no knob carries it.
func (n *Node) Knob(name string) knob.Knob {
	for _, k := range n.knobs {
		if k.Name() == name {
			return k
		}
	}

	return nil
}

// Names returns the set of every knob name on the node. The returned
// set is a fresh copy the caller may mutate.
func (n *Node) Names() map[string]struct{} {
	out := make(map[string]struct{}, len(n.knobs))
	for _, k := range n.knobs {
		out[k.Name()] = struct{}{}
	}

	return out
}

// AddKnob appends k at the end of the knob list. Appending a non-tab
// knob while the user region holds no tab first fabricates a plain tab
// named "User". The fabricated tab keeps that name even when "User" is
// already taken; duplicate names are tolerated in memory.
func (n *Node) AddKnob(k knob.Knob) {
	if k.Kind() != knob.KindTab && !n.userTabPresent() {
		n.knobs = append(n.knobs, knob.NewTab("User", "User"))
	}

	n.knobs = append(n.knobs, k)
}

func (n *Node) userTabPresent() bool {
	for _, k := range n.knobs[n.fixed:] {
		if k.Kind() == knob.KindTab {
			return true
		}
	}

	return false
}

// RemoveKnob detaches k by identity. Base knobs are not removable.
func (n *Node) RemoveKnob(k knob.Knob) error {
	for i, attached := range n.knobs {
		if attached != k {
			continue
		}

		if i < n.fixed {
			return fmt.Errorf("%w: %q", ErrFixedKnob, k.Name())
		}

		n.knobs = append(n.knobs[:i], n.knobs[i+1:]...)

		return nil
	}

	return fmt.Errorf("%w: %q", ErrKnobNotAttached, k.Name())
}
