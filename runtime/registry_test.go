package runtime

import (
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestRegistry_GetOrCreateIsIdempotent(t *testing.T) {
	req := require.New(t)
	registry := NewRegistry(DefaultCapacity)
	userID := uuid.New()

	first := registry.GetOrCreate(userID)
	second := registry.GetOrCreate(userID)

	req.Same(first, second)
	req.Equal(1, registry.Len())
}

func TestRegistry_ConcurrentFirstConnectionsConverge(t *testing.T) {
	req := require.New(t)
	registry := NewRegistry(DefaultCapacity)
	userID := uuid.New()

	// Given many goroutines racing to create the same user's channel
	const goroutines = 64
	channels := make([]*Channel, goroutines)
	var wg sync.WaitGroup
	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			channels[i] = registry.GetOrCreate(userID)
		}(i)
	}
	wg.Wait()

	// Then every goroutine got the same channel
	for i := 1; i < goroutines; i++ {
		req.Same(channels[0], channels[i])
	}
	req.Equal(1, registry.Len())
}

func TestRegistry_LookupWithoutCreate(t *testing.T) {
	req := require.New(t)
	registry := NewRegistry(DefaultCapacity)

	_, ok := registry.Lookup(uuid.New())
	req.False(ok)

	userID := uuid.New()
	created := registry.GetOrCreate(userID)
	found, ok := registry.Lookup(userID)
	req.True(ok)
	req.Same(created, found)
}

func TestRegistry_ChannelSurvivesDisconnect(t *testing.T) {
	req := require.New(t)
	registry := NewRegistry(DefaultCapacity)
	userID := uuid.New()

	ch := registry.GetOrCreate(userID)
	sub := ch.Subscribe()
	sub.Close()

	// The channel stays registered after the last subscriber leaves
	again, ok := registry.Lookup(userID)
	req.True(ok)
	req.Same(ch, again)
}
