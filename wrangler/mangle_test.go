package wrangler

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func names(in ...string) map[string]struct{} {
	out := make(map[string]struct{}, len(in))
	for _, n := range in {
		out[n] = struct{}{}
	}

	return out
}

func TestMangleName(t *testing.T) {
	t.Parallel()

	t.Run("fresh target starts at 1", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "hello_1", mangleName("hello", names("hello", "other")))
	})

	t.Run("fills gaps before extending", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "hello_2", mangleName("hello", names("hello_1", "hello_3")))
	})

	t.Run("missing first index is filled first", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "hello_1", mangleName("hello", names("hello_2", "hello_3")))
	})

	t.Run("extends a dense run", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "hello_4", mangleName("hello", names("hello_1", "hello_2", "hello_3")))
	})

	t.Run("ignores lookalike suffixes", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "hello_1", mangleName("hello", names("hello_1_1", "hello_x", "hello1")))
	})

	t.Run("escapes regexp metacharacters in the target", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "a+b_1", mangleName("a+b", names("a+b", "axb_1")))
	})

	t.Run("deterministic and collision free", func(t *testing.T) {
		t.Parallel()

		pool := names("v", "v_1", "v_2", "v_4", "v_9")
		first := mangleName("v", pool)

		assert.Equal(t, first, mangleName("v", pool))
		assert.NotContains(t, pool, first)
		assert.Equal(t, "v_3", first)
	})
}
