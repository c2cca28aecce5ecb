package wrangler

import (
	"errors"
	"fmt"

	"github.com/tanant/knobwrangler/knob"
)

// ErrInvalidInsertionPoint reports an anchor that is not currently a
// user knob on the target node. Fixed knobs are never valid anchors.
var ErrInvalidInsertionPoint = errors.New("invalid insertion point")

// insertionPoint turns an optional anchor plus a before/after flag into
// a gap index over userKnobs: 0 sits before the first knob and
// len(userKnobs) after the last. A nil anchor means "don't care", which
// resolves to the very front or the very back depending on before.
func insertionPoint(userKnobs []knob.Knob, anchor knob.Knob, before bool) (int, error) {
	if anchor == nil {
		if before {
			return 0, nil
		}

		return len(userKnobs), nil
	}

	for i, k := range userKnobs {
		if k != anchor {
			continue
		}

		if before {
			return i, nil
		}

		return i + 1, nil
	}

	return 0, fmt.Errorf("%w: knob %q is not a user knob", ErrInvalidInsertionPoint, anchor.Name())
}
