package suggest

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResultCache(t *testing.T) {
	t.Parallel()

	t.Run("miss then hit", func(t *testing.T) {
		t.Parallel()

		c := newResultCache(2)
		_, ok := c.get("q")
		assert.False(t, ok)

		c.put("q", []Match{{Text: "x", Distance: 1}})
		got, ok := c.get("q")
		require.True(t, ok)
		assert.Equal(t, []Match{{Text: "x", Distance: 1}}, got)
	})

	t.Run("evicts least recently used", func(t *testing.T) {
		t.Parallel()

		c := newResultCache(2)
		c.put("a", nil)
		c.put("b", nil)

		// Touch "a" so "b" becomes the eviction candidate.
		_, ok := c.get("a")
		require.True(t, ok)

		c.put("c", nil)
		assert.Equal(t, 2, c.len())

		_, ok = c.get("b")
		assert.False(t, ok)
		_, ok = c.get("a")
		assert.True(t, ok)
		_, ok = c.get("c")
		assert.True(t, ok)
	})

	t.Run("put updates existing entry", func(t *testing.T) {
		t.Parallel()

		c := newResultCache(2)
		c.put("q", []Match{{Text: "old"}})
		c.put("q", []Match{{Text: "new"}})
		assert.Equal(t, 1, c.len())

		got, ok := c.get("q")
		require.True(t, ok)
		assert.Equal(t, "new", got[0].Text)
	})

	t.Run("stays within capacity", func(t *testing.T) {
		t.Parallel()

		c := newResultCache(4)
		for i := range 100 {
			c.put(fmt.Sprintf("q%d", i), nil)
		}
		assert.Equal(t, 4, c.len())
	})

	t.Run("non-positive capacity panics", func(t *testing.T) {
		t.Parallel()

		assert.Panics(t, func() { newResultCache(0) })
		assert.Panics(t, func() { newResultCache(-1) })
	})
}
