package knob_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tanant/knobwrangler/knob"
)

func TestGroupSetMarkers(t *testing.T) {
	t.Parallel()

	set := knob.GroupSet("render", "Render", nil, true)
	require.Len(t, set, 2)

	begin, ok := set[0].(*knob.Simple)
	require.True(t, ok)
	assert.Equal(t, knob.GroupBeginClosed, begin.Group())

	end, ok := set[1].(*knob.Simple)
	require.True(t, ok)
	assert.Equal(t, knob.GroupEnd, end.Group())
	assert.Equal(t, "render_end", end.Name())
	assert.Empty(t, end.Label())
}
