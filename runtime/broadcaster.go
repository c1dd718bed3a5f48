package runtime

import (
	"log/slog"

	"github.com/google/uuid"

	"switchboard/domain/event"
)

// Broadcaster pushes domain events to every affected connected client.
//
// It provides best-effort fan-out with no guarantees regarding delivery,
// durability, or retries. A recipient with no registered channel is skipped,
// a lagging subscriber loses its oldest buffered events, and neither outcome
// is ever reported to the mutating request that triggered the publish.
type Broadcaster struct {
	registry *Registry
	log      *slog.Logger
}

func NewBroadcaster(registry *Registry, log *slog.Logger) *Broadcaster {
	return &Broadcaster{registry: registry, log: log}
}

// Publish fans the event out to each recipient's channel, if present.
// It never blocks on I/O and never fails: fan-out is a side channel layered
// on top of durable persistence, not the source of truth.
func (b *Broadcaster) Publish(recipients []uuid.UUID, e event.Event) {
	delivered := 0
	for _, id := range recipients {
		ch, ok := b.registry.Lookup(id)
		if !ok {
			continue
		}
		ch.send(e)
		delivered++
	}
	b.log.Debug("event published",
		"type", string(e.Type()),
		"recipients", len(recipients),
		"connected", delivered,
	)
}
