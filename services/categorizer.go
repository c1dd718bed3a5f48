package services

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sourcegraph/conc/pool"

	"switchboard/contract"
	"switchboard/domain"
	"switchboard/domain/event"
	"switchboard/storage"
)

// Categorizer runs the background classification pipeline: one independent
// unit of work per (message, recipient) pair, fully decoupled from the
// request that created the message.
//
// Failures are contained per recipient and swallowed; the only externally
// visible effect of a failure is a missing MessageCategorized event.
type Categorizer struct {
	classifier  contract.Classifier
	metadata    storage.IMetadataRepository
	publisher   contract.Publisher
	log         *slog.Logger
	maxParallel int
	timeout     time.Duration
	wg          sync.WaitGroup
}

func NewCategorizer(classifier contract.Classifier, metadata storage.IMetadataRepository,
	publisher contract.Publisher, maxParallel int, timeout time.Duration, log *slog.Logger) *Categorizer {
	if maxParallel <= 0 {
		maxParallel = 32
	}
	return &Categorizer{
		classifier:  classifier,
		metadata:    metadata,
		publisher:   publisher,
		log:         log,
		maxParallel: maxParallel,
		timeout:     timeout,
	}
}

// Dispatch spawns a classification task for every recipient except the
// sender and returns immediately. Tasks run on a bounded pool so a message
// burst cannot create an unbounded number of in-flight classifier calls.
//
// There is deliberately no cancellation path: deleting the message later may
// still yield a stale classification.
func (c *Categorizer) Dispatch(message domain.ChatMessage, history []domain.ChatMessage, recipients []uuid.UUID) {
	c.wg.Add(1)
	go func() {
		defer c.wg.Done()
		p := pool.New().WithMaxGoroutines(c.maxParallel)
		for _, recipientID := range recipients {
			if recipientID == message.SenderID {
				continue
			}
			id := recipientID
			p.Go(func() {
				c.categorizeFor(id, message, history)
			})
		}
		p.Wait()
	}()
}

func (c *Categorizer) categorizeFor(recipientID uuid.UUID, message domain.ChatMessage, history []domain.ChatMessage) {
	ctx, cancel := context.WithTimeout(context.Background(), c.timeout)
	defer cancel()

	result, err := c.classifier.Categorize(ctx, message, history)
	if err != nil {
		c.log.Warn("classification failed",
			"message_id", message.ID, "recipient_id", recipientID, "err", err)
		return
	}

	if err := c.metadata.UpsertCategorization(recipientID, message.ID, result); err != nil {
		c.log.Warn("failed to persist categorization",
			"message_id", message.ID, "recipient_id", recipientID, "err", err)
		return
	}

	c.publisher.Publish([]uuid.UUID{recipientID}, event.MessageCategorized{
		MessageID: message.ID,
		Category:  result.Category,
		Reasoning: result.Reasoning,
	})
}

// Drain waits for every dispatched task to finish. Used on shutdown and in
// tests; regular request handling never waits.
func (c *Categorizer) Drain() {
	c.wg.Wait()
}
