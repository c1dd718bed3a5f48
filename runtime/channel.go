package runtime

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"

	"switchboard/domain/event"
)

// DefaultCapacity is the per-subscriber buffer size. A subscriber that falls
// further behind starts losing its oldest unread events.
const DefaultCapacity = 64

// LagError is the gap marker handed to a lagging subscriber. It is not fatal:
// the subscription keeps delivering whatever is still buffered and whatever
// comes next.
type LagError struct {
	Dropped uint64
}

func (e *LagError) Error() string {
	return fmt.Sprintf("subscriber lagged, %d events dropped", e.Dropped)
}

// Channel is the outbound broadcast endpoint of one identity. Every
// subscription gets an independent buffered view, so two browser tabs of the
// same user both receive every event.
//
// Channel is safe for concurrent use. Sends never block: delivery is
// best-effort by design, durable state lives in storage.
type Channel struct {
	mu       sync.Mutex
	subs     map[uint64]*Subscription
	nextID   uint64
	capacity int
}

func newChannel(capacity int) *Channel {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Channel{subs: make(map[uint64]*Subscription), capacity: capacity}
}

// Subscribe creates an independent receiving view over this channel.
// The caller must Close it when done; closing the last subscription does not
// remove the channel from the registry.
func (c *Channel) Subscribe() *Subscription {
	c.mu.Lock()
	defer c.mu.Unlock()

	s := &Subscription{
		id:      c.nextID,
		ch:      make(chan event.Event, c.capacity),
		channel: c,
	}
	c.nextID++
	c.subs[s.id] = s
	return s
}

// send delivers the event to every live subscription without ever blocking.
// With no subscribers it is a no-op, not an error.
func (c *Channel) send(e event.Event) {
	c.mu.Lock()
	subs := make([]*Subscription, 0, len(c.subs))
	for _, s := range c.subs {
		subs = append(subs, s)
	}
	c.mu.Unlock()

	for _, s := range subs {
		s.push(e)
	}
}

func (c *Channel) unsubscribe(id uint64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.subs, id)
}

// Subscribers returns the number of live subscriptions, for observability.
func (c *Channel) Subscribers() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.subs)
}

// Subscription is the read side of a Channel held by one streaming connection.
type Subscription struct {
	id      uint64
	ch      chan event.Event
	dropped atomic.Uint64
	channel *Channel
}

// push enqueues the event, evicting this subscriber's oldest unread event
// when its buffer is full. Only the slow subscriber pays for its lag.
func (s *Subscription) push(e event.Event) {
	for {
		select {
		case s.ch <- e:
			return
		default:
		}
		select {
		case <-s.ch:
			s.dropped.Add(1)
		default:
			// Consumer drained concurrently; retry the send.
		}
	}
}

// Next blocks until an event arrives or ctx is done. If events were dropped
// since the previous read, Next first returns a *LagError gap marker; the
// following call resumes normal delivery.
func (s *Subscription) Next(ctx context.Context) (event.Event, error) {
	if n := s.dropped.Swap(0); n > 0 {
		return nil, &LagError{Dropped: n}
	}
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case e := <-s.ch:
		return e, nil
	}
}

// Events exposes the receive buffer for callers that need to select over it
// together with other channels (timeouts, connection teardown). Callers using
// Events directly should check Lagged before handling each event.
func (s *Subscription) Events() <-chan event.Event {
	return s.ch
}

// Lagged returns the number of events dropped since the last call and resets
// the counter. Zero means no gap.
func (s *Subscription) Lagged() uint64 {
	return s.dropped.Swap(0)
}

// Close detaches the subscription from its channel. Pending buffered events
// are discarded; the channel itself stays registered for reconnects.
func (s *Subscription) Close() {
	s.channel.unsubscribe(s.id)
}
