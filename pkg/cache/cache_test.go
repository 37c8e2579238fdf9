package cache

import (
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type scan struct {
	Root  string
	Files []string
}

func TestCache_SetGetDelete(t *testing.T) {
	c := New[string, scan]()
	assert.Equal(t, 0, c.Size())

	_, ok := c.Get("/media/tv")
	assert.False(t, ok)

	c.Set("/media/tv", scan{Root: "/media/tv", Files: []string{"Lost - S01E01.mkv"}})
	c.Set("/media/movies", scan{Root: "/media/movies"})
	assert.Equal(t, 2, c.Size())

	got, ok := c.Get("/media/tv")
	require.True(t, ok)
	assert.Equal(t, []string{"Lost - S01E01.mkv"}, got.Files)

	c.Set("/media/tv", scan{Root: "/media/tv"})
	assert.Equal(t, 2, c.Size(), "overwrite should not grow the cache")
	got, _ = c.Get("/media/tv")
	assert.Empty(t, got.Files)

	c.Delete("/media/tv")
	c.Delete("/media/none")
	_, ok = c.Get("/media/tv")
	assert.False(t, ok)
	assert.ElementsMatch(t, []string{"/media/movies"}, c.Keys())
}

func TestCache_StoredAt(t *testing.T) {
	c := New[string, int]()
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	c.now = func() time.Time { return now }

	_, ok := c.StoredAt("/media")
	assert.False(t, ok)

	c.Set("/media", 3)
	at, ok := c.StoredAt("/media")
	require.True(t, ok)
	assert.Equal(t, now, at)
}

func TestCache_Load(t *testing.T) {
	t.Run("miss then hit", func(t *testing.T) {
		c := New[string, int]()
		calls := 0
		load := func() (int, error) {
			calls++
			return 42, nil
		}

		v, cached, err := c.Load("/media", load)
		require.NoError(t, err)
		assert.False(t, cached)
		assert.Equal(t, 42, v)

		v, cached, err = c.Load("/media", load)
		require.NoError(t, err)
		assert.True(t, cached)
		assert.Equal(t, 42, v)
		assert.Equal(t, 1, calls)
	})

	t.Run("errors are not cached", func(t *testing.T) {
		c := New[string, int]()
		wantErr := errors.New("expected testing error")

		_, _, err := c.Load("/media", func() (int, error) { return 0, wantErr })
		assert.ErrorIs(t, err, wantErr)
		assert.Equal(t, 0, c.Size())

		v, cached, err := c.Load("/media", func() (int, error) { return 7, nil })
		require.NoError(t, err)
		assert.False(t, cached)
		assert.Equal(t, 7, v)
	})

	t.Run("concurrent misses load once", func(t *testing.T) {
		c := New[string, int]()
		var calls atomic.Int32
		var wg sync.WaitGroup

		for n := 0; n < 50; n++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				v, _, err := c.Load("/media", func() (int, error) {
					calls.Add(1)
					return 1, nil
				})
				assert.NoError(t, err)
				assert.Equal(t, 1, v)
			}()
		}
		wg.Wait()

		assert.Equal(t, int32(1), calls.Load())
	})
}

func TestCache_ConcurrentAccess(t *testing.T) {
	c := New[int, int]()
	var wg sync.WaitGroup
	numGoroutines := 50
	numOperations := 200

	for i := 0; i < numGoroutines; i++ {
		wg.Add(2)
		go func(id int) {
			defer wg.Done()
			for j := 0; j < numOperations; j++ {
				key := id*numOperations + j
				c.Set(key, key)
			}
		}(i)
		go func() {
			defer wg.Done()
			for n := 0; n < numOperations; n++ {
				c.Keys()
				c.Size()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, numGoroutines*numOperations, c.Size())

	for i := 0; i < numGoroutines; i++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			for j := 0; j < numOperations; j++ {
				c.Delete(id*numOperations + j)
			}
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 0, c.Size())
}
