package wrangler

import (
	"errors"
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tanant/knobwrangler/knob"
)

// spyNode is a bare-bones Node that records every primitive call, so
// tests can assert on exactly which host operations ran and in what
// order. Unlike the real host it fabricates nothing.
type spyNode struct {
	class      string
	knobs      []knob.Knob
	ops        []string
	failRemove string // name of a knob whose removal the host rejects
}

func newSpyNode(class string, knobs ...knob.Knob) *spyNode {
	return &spyNode{class: class, knobs: knobs}
}

func (s *spyNode) Class() string { return s.class }

func (s *spyNode) AllKnobs() []knob.Knob {
	out := make([]knob.Knob, len(s.knobs))
	copy(out, s.knobs)

	return out
}

func (s *spyNode) AddKnob(k knob.Knob) {
	s.ops = append(s.ops, "add "+k.Name())
	s.knobs = append(s.knobs, k)
}

func (s *spyNode) RemoveKnob(k knob.Knob) error {
	if k.Name() == s.failRemove {
		return errors.New("host rejected remove")
	}

	for i, attached := range s.knobs {
		if attached == k {
			s.ops = append(s.ops, "remove "+k.Name())
			s.knobs = append(s.knobs[:i], s.knobs[i+1:]...)

			return nil
		}
	}

	return fmt.Errorf("knob %q not attached", k.Name())
}

func (s *spyNode) Names() map[string]struct{} {
	out := make(map[string]struct{}, len(s.knobs))
	for _, k := range s.knobs {
		out[k.Name()] = struct{}{}
	}

	return out
}

func (s *spyNode) names() []string {
	out := make([]string, 0, len(s.knobs))
	for _, k := range s.knobs {
		out = append(out, k.Name())
	}

	return out
}

func intKnobs(names ...string) []knob.Knob {
	out := make([]knob.Knob, 0, len(names))
	for _, n := range names {
		out = append(out, knob.NewInt(n, n))
	}

	return out
}

func TestReconcile(t *testing.T) {
	t.Parallel()

	t.Run("identical lists touch nothing", func(t *testing.T) {
		t.Parallel()

		n := newSpyNode("Grade", intKnobs("a", "b", "c")...)
		require.NoError(t, reconcile(n, n.AllKnobs(), n.AllKnobs()))
		assert.Empty(t, n.ops)
	})

	t.Run("rebuilds from the divergence point only", func(t *testing.T) {
		t.Parallel()

		n := newSpyNode("Grade", intKnobs("a", "b", "c", "d")...)
		current := n.AllKnobs()

		x := knob.NewInt("x", "x")
		proposed := []knob.Knob{current[0], current[1], x, current[2], current[3]}

		require.NoError(t, reconcile(n, current, proposed))

		// tail torn down in reverse, then rebuilt in order
		want := []string{"remove d", "remove c", "add x", "add c", "add d"}
		assert.Equal(t, want, n.ops)

		if diff := cmp.Diff([]string{"a", "b", "x", "c", "d"}, n.names()); diff != "" {
			t.Errorf("knob order mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("pure append removes nothing", func(t *testing.T) {
		t.Parallel()

		n := newSpyNode("Grade", intKnobs("a", "b")...)
		current := n.AllKnobs()
		proposed := append(n.AllKnobs(), knob.NewInt("x", "x"))

		require.NoError(t, reconcile(n, current, proposed))
		assert.Equal(t, []string{"add x"}, n.ops)
	})

	t.Run("truncation removes in reverse", func(t *testing.T) {
		t.Parallel()

		n := newSpyNode("Grade", intKnobs("a", "b", "c")...)
		current := n.AllKnobs()

		require.NoError(t, reconcile(n, current, current[:1]))
		assert.Equal(t, []string{"remove c", "remove b"}, n.ops)
		assert.Equal(t, []string{"a"}, n.names())
	})

	t.Run("host remove failure propagates", func(t *testing.T) {
		t.Parallel()

		n := newSpyNode("Grade", intKnobs("a", "b")...)
		n.failRemove = "b"

		err := reconcile(n, n.AllKnobs(), nil)
		require.Error(t, err)
		assert.Empty(t, n.ops, "host state touched before the failing remove")
	})
}

// A host without structural side effects adds exactly what it is told:
// one knob inserted on an empty user region lands alone and last.
func TestInsertOnPlainHost(t *testing.T) {
	t.Parallel()

	n := newSpyNode("Grade",
		knob.NewString("name", "name"),
		knob.NewBool("useLifetime", "useLifetime"),
	)
	k := knob.NewInt("solo", "solo")

	added, err := Insert(n, []knob.Knob{k}, Anchor{}, false)
	require.NoError(t, err)
	require.Len(t, added, 1)
	assert.Same(t, k, added[0])

	all := n.AllKnobs()
	assert.Same(t, k, all[len(all)-1])
	assert.Equal(t, []string{"add solo"}, n.ops)
}
