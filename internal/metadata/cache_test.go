package metadata

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type countingProvider struct {
	calls     atomic.Int32
	started   chan struct{}
	release   chan struct{}
	cancelled atomic.Bool
}

func (p *countingProvider) GetLatestVersion(ctx context.Context, _, name string) (string, bool) {
	p.calls.Add(1)
	if p.started != nil {
		close(p.started)
	}
	if p.release != nil {
		<-p.release
	}
	p.cancelled.Store(ctx.Err() != nil)
	if name == "unknown" {
		return "", false
	}
	return "1.2.3", true
}

func TestCachedProvider_CachesHitsAndMisses(t *testing.T) {
	next := &countingProvider{}
	cache := NewCachedProvider(next, 16, time.Minute, time.Second)

	for i := 0; i < 3; i++ {
		version, ok := cache.GetLatestVersion(context.Background(), "npm", "left-pad")
		assert.True(t, ok)
		assert.Equal(t, "1.2.3", version)

		_, ok = cache.GetLatestVersion(context.Background(), "npm", "unknown")
		assert.False(t, ok)
	}

	assert.Equal(t, int32(2), next.calls.Load())
}

func TestCachedProvider_SharesConcurrentLookups(t *testing.T) {
	next := &countingProvider{release: make(chan struct{})}
	cache := NewCachedProvider(next, 16, time.Minute, time.Second)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			version, ok := cache.GetLatestVersion(context.Background(), "npm", "react")
			assert.True(t, ok)
			assert.Equal(t, "1.2.3", version)
		}()
	}

	// let the goroutines pile up behind the first upstream call
	time.Sleep(50 * time.Millisecond)
	close(next.release)
	wg.Wait()

	assert.Equal(t, int32(1), next.calls.Load())
	version, ok := cache.GetLatestVersion(context.Background(), "npm", "react")
	assert.True(t, ok)
	assert.Equal(t, "1.2.3", version)
}

func TestCachedProvider_CallerCancellationDoesNotBlankOthers(t *testing.T) {
	next := &countingProvider{started: make(chan struct{}), release: make(chan struct{})}
	cache := NewCachedProvider(next, 16, time.Minute, time.Second)

	ctx, cancel := context.WithCancel(context.Background())
	first := make(chan bool)
	go func() {
		_, ok := cache.GetLatestVersion(ctx, "npm", "react")
		first <- ok
	}()
	<-next.started

	type result struct {
		version string
		ok      bool
	}
	second := make(chan result)
	go func() {
		version, ok := cache.GetLatestVersion(context.Background(), "npm", "react")
		second <- result{version, ok}
	}()

	cancel()
	assert.False(t, <-first)

	close(next.release)
	got := <-second
	assert.True(t, got.ok)
	assert.Equal(t, "1.2.3", got.version)
	assert.False(t, next.cancelled.Load())
	assert.Equal(t, int32(1), next.calls.Load())

	version, ok := cache.GetLatestVersion(context.Background(), "npm", "react")
	assert.True(t, ok)
	assert.Equal(t, "1.2.3", version)
	assert.Equal(t, int32(1), next.calls.Load())
}

func TestCachedProvider_KeysIncludePackageManager(t *testing.T) {
	next := &countingProvider{}
	cache := NewCachedProvider(next, 16, time.Minute, time.Second)

	cache.GetLatestVersion(context.Background(), "npm", "six")
	cache.GetLatestVersion(context.Background(), "pip", "six")

	assert.Equal(t, int32(2), next.calls.Load())
}

func TestNoopProvider(t *testing.T) {
	_, ok := NoopProvider{}.GetLatestVersion(context.Background(), "npm", "anything")
	assert.False(t, ok)
}
