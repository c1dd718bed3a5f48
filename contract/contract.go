//go:generate go run go.uber.org/mock/mockgen -source=contract.go -destination=../mocks/mock_contract.go -package=mocks
package contract

import (
	"context"
	"reflect"

	"github.com/google/uuid"

	"switchboard/domain"
	"switchboard/domain/event"
)

type ISupervisor interface {
	Add(worker ...Worker) ISupervisor
	Run(ctx context.Context)
	Start(ctx context.Context, worker Worker)
	Stop()
}

// Worker doesn't protect itself: the supervisor handles panics and restarts.
type Worker interface {
	Run(ctx context.Context) error
}

// GetWorkerName uses reflection to retrieve the type name of the worker,
// avoiding the need for manual naming in the Worker interface.
func GetWorkerName(w Worker) string {
	if w == nil {
		return "NilWorker"
	}
	t := reflect.TypeOf(w)
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return t.Name()
}

// Publisher fans one event out to a set of recipients, best-effort.
type Publisher interface {
	Publish(recipients []uuid.UUID, e event.Event)
}

// Classifier is the external categorization service, treated as an opaque
// function. History is the full prior conversation in chronological order.
type Classifier interface {
	Categorize(ctx context.Context, message domain.ChatMessage, history []domain.ChatMessage) (domain.Categorization, error)
}
