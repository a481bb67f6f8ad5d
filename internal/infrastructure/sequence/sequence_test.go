package sequence

import (
	"context"
	"os"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemorySequencer_StrictlyIncreasing(t *testing.T) {
	s := NewMemorySequencer()
	ctx := context.Background()

	var (
		mu   sync.Mutex
		seen = map[int64]bool{}
		wg   sync.WaitGroup
	)
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			n, err := s.Next(ctx)
			require.NoError(t, err)
			mu.Lock()
			seen[n] = true
			mu.Unlock()
		}()
	}
	wg.Wait()
	assert.Len(t, seen, 50)

	a, _ := s.Next(ctx)
	b, _ := s.Next(ctx)
	assert.Greater(t, b, a)
}

func TestMemorySequencer_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := NewMemorySequencer().Next(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestNewRedisSequencerFromURL_InvalidURL(t *testing.T) {
	_, err := NewRedisSequencerFromURL("not a url", "")
	assert.Error(t, err)
}

func TestRedisSequencer_Next(t *testing.T) {
	url := os.Getenv("TEST_REDIS_URL")
	if url == "" {
		t.Skip("TEST_REDIS_URL not set")
	}
	s, err := NewRedisSequencerFromURL(url, "guytogo:test_decision_seq")
	require.NoError(t, err)

	a, err := s.Next(context.Background())
	require.NoError(t, err)
	b, err := s.Next(context.Background())
	require.NoError(t, err)
	assert.Greater(t, b, a)
}

func TestNewRedisSequencer_DefaultKey(t *testing.T) {
	s := NewRedisSequencer(nil, "")
	assert.Equal(t, DefaultDecisionKey, s.key)
}
