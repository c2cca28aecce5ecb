package wrangler

import "github.com/tanant/knobwrangler/knob"

// reconcile drives the node from the current knob order to the proposed
// one using only the host primitives. The two lists are scanned in lock
// step for the first identity divergence; everything from there on is
// removed and the proposed tail re-appended. Identical lists perform no
// host calls at all.
//
// Removal runs back to front so earlier knobs stay addressable while
// the host shuffles its internal list, and so the host's own structural
// bookkeeping never sees a hole in the middle of the user region.
//
// A host failure partway through leaves the node in a mixed state;
// there is no rollback.
func reconcile(n Node, current, proposed []knob.Knob) error {
	split := 0
	for split < len(current) && split < len(proposed) && current[split] == proposed[split] {
		split++
	}

	for i := len(current) - 1; i >= split; i-- {
		if err := n.RemoveKnob(current[i]); err != nil {
			return err
		}
	}

	for _, k := range proposed[split:] {
		n.AddKnob(k)
	}

	return nil
}
