package cache

import (
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/suryansh-23/secretsieve/internal/matcher"
)

func buildCounter(calls *atomic.Int32) func() *matcher.Matcher {
	return func() *matcher.Matcher {
		calls.Add(1)
		return matcher.Build(nil)
	}
}

func TestGetOrBuildCachesByKey(t *testing.T) {
	c := New(4, "*")
	var calls atomic.Int32

	first := c.GetOrBuild("aws_access_key", buildCounter(&calls))
	second := c.GetOrBuild("aws_access_key", buildCounter(&calls))
	require.Same(t, first, second)
	assert.EqualValues(t, 1, calls.Load())

	c.GetOrBuild("slack_token", buildCounter(&calls))
	assert.EqualValues(t, 2, calls.Load())
	assert.Equal(t, 2, c.Len())
}

func TestGetOrBuildConcurrentSingleBuild(t *testing.T) {
	c := New(4, "*")
	var calls atomic.Int32
	release := make(chan struct{})
	build := func() *matcher.Matcher {
		calls.Add(1)
		<-release
		return matcher.Build(nil)
	}

	const workers = 16
	results := make([]*matcher.Matcher, workers)
	var started, done sync.WaitGroup
	started.Add(workers)
	done.Add(workers)
	for i := 0; i < workers; i++ {
		go func(i int) {
			defer done.Done()
			started.Done()
			results[i] = c.GetOrBuild("stripe", build)
		}(i)
	}
	started.Wait()
	time.Sleep(20 * time.Millisecond)
	close(release)
	done.Wait()

	assert.EqualValues(t, 1, calls.Load())
	for _, m := range results {
		require.Same(t, results[0], m)
	}
}

func TestLRUEviction(t *testing.T) {
	c := New(1, "*")
	var calls atomic.Int32

	c.GetOrBuild("a", buildCounter(&calls))
	c.GetOrBuild("b", buildCounter(&calls))
	c.GetOrBuild("a", buildCounter(&calls))
	assert.EqualValues(t, 3, calls.Load(), "a should have been evicted by b")
}

func TestPinnedKeySurvivesEviction(t *testing.T) {
	c := New(1, "*")
	var calls atomic.Int32

	full := c.GetOrBuild("*", buildCounter(&calls))
	c.GetOrBuild("a", buildCounter(&calls))
	c.GetOrBuild("b", buildCounter(&calls))
	again := c.GetOrBuild("*", buildCounter(&calls))

	require.Same(t, full, again)
	assert.EqualValues(t, 3, calls.Load())
	assert.Equal(t, 2, c.Len())
}

func TestDefaultCapacity(t *testing.T) {
	c := New(0, "*")
	var calls atomic.Int32
	for _, key := range []string{"a", "b", "c"} {
		c.GetOrBuild(key, buildCounter(&calls))
	}
	assert.Equal(t, 3, c.Len())
}
