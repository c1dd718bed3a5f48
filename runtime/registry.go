// Package runtime owns the in-memory distribution machinery: the registry of
// per-user channels and the broadcaster that fans events out to them.
// It carries no business rules; recipient sets are computed by the services.
package runtime

import (
	"encoding/binary"
	"sync"

	"github.com/google/uuid"
)

const shardCount = 32

// Registry maps a user identity to its live outbound Channel. It is the only
// mutable structure shared by every request-handling goroutine, so it is
// sharded: traffic for unrelated users never contends on the same lock.
//
// Entries are created lazily on first connection and never evicted on
// disconnect. Growth is bounded by the user population and recreating
// channels on reconnect would change drop semantics mid-stream.
type Registry struct {
	shards   [shardCount]shard
	capacity int
}

type shard struct {
	mu       sync.RWMutex
	channels map[uuid.UUID]*Channel
}

// NewRegistry builds an empty registry whose channels buffer `capacity`
// events per subscriber. It is constructed once at process start and handed
// to every component that needs it.
func NewRegistry(capacity int) *Registry {
	r := &Registry{capacity: capacity}
	for i := range r.shards {
		r.shards[i].channels = make(map[uuid.UUID]*Channel)
	}
	return r
}

func (r *Registry) shardFor(id uuid.UUID) *shard {
	// UUIDs are uniformly random; the first four bytes are as good a hash
	// as any.
	return &r.shards[binary.BigEndian.Uint32(id[:4])%shardCount]
}

// GetOrCreate returns the channel for id, creating it on first use.
// Concurrent first connections for the same identity converge on a single
// channel: the losing goroutine adopts the winner's entry.
func (r *Registry) GetOrCreate(id uuid.UUID) *Channel {
	s := r.shardFor(id)

	s.mu.RLock()
	ch, ok := s.channels[id]
	s.mu.RUnlock()
	if ok {
		return ch
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if ch, ok := s.channels[id]; ok {
		return ch
	}
	ch = newChannel(r.capacity)
	s.channels[id] = ch
	return ch
}

// Lookup returns the channel for id if one was ever created. It takes only a
// read lock on a single shard and never blocks behind network I/O.
func (r *Registry) Lookup(id uuid.UUID) (*Channel, bool) {
	s := r.shardFor(id)
	s.mu.RLock()
	defer s.mu.RUnlock()
	ch, ok := s.channels[id]
	return ch, ok
}

// Len counts registered channels across all shards, for observability.
func (r *Registry) Len() int {
	n := 0
	for i := range r.shards {
		r.shards[i].mu.RLock()
		n += len(r.shards[i].channels)
		r.shards[i].mu.RUnlock()
	}
	return n
}
