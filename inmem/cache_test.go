package inmem_test

import (
	"strconv"
	"sync"
	"testing"

	"github.com/fwojciec/fesoddoc/inmem"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCache(t *testing.T) {
	t.Parallel()

	t.Run("missing key is not an error", func(t *testing.T) {
		t.Parallel()

		c := inmem.NewCache()

		assert.False(t, c.Has("enfesod_fill"))
		v, ok := c.Get("enfesod_fill")
		assert.False(t, ok)
		assert.Nil(t, v)
	})

	t.Run("returns stored value", func(t *testing.T) {
		t.Parallel()

		c := inmem.NewCache()
		c.Set("enfesod_fill", "Fill docs")

		assert.True(t, c.Has("enfesod_fill"))
		v, ok := c.Get("enfesod_fill")
		require.True(t, ok)
		assert.Equal(t, "Fill docs", v)
		assert.Equal(t, 1, c.Len())
	})

	t.Run("returns the stored reference", func(t *testing.T) {
		t.Parallel()

		c := inmem.NewCache()
		entries := []string{"Fill", "Read"}
		c.Set("fesod_api_list", entries)

		v, ok := c.Get("fesod_api_list")
		require.True(t, ok)
		got := v.([]string)
		assert.Same(t, &entries[0], &got[0])
	})

	t.Run("last write wins", func(t *testing.T) {
		t.Parallel()

		c := inmem.NewCache()
		c.Set("k", 1)
		c.Set("k", 2)

		v, _ := c.Get("k")
		assert.Equal(t, 2, v)
		assert.Equal(t, 1, c.Len())
	})

	t.Run("is safe for concurrent use", func(t *testing.T) {
		t.Parallel()

		c := inmem.NewCache()
		var wg sync.WaitGroup
		for i := range 50 {
			wg.Add(1)
			go func() {
				defer wg.Done()
				key := "k" + strconv.Itoa(i%5)
				c.Set(key, i)
				_ = c.Has(key)
				_, _ = c.Get(key)
			}()
		}
		wg.Wait()

		assert.Equal(t, 5, c.Len())
	})
}
