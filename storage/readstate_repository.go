package storage

import (
	stderrors "errors"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
)

// ReadStateRepository tracks the per-user last-read timestamp of each
// conversation (optional read-tracking extension).
type ReadStateRepository struct {
	db *badger.DB
}

func NewReadStateRepository(db *badger.DB) *ReadStateRepository {
	return &ReadStateRepository{db: db}
}

func (r *ReadStateRepository) MarkRead(userID, conversationID uuid.UUID, at time.Time) error {
	return r.db.Update(func(txn *badger.Txn) error {
		return setEncoded(txn, readKey(userID, conversationID), at)
	})
}

func (r *ReadStateRepository) LastRead(userID, conversationID uuid.UUID) (time.Time, bool, error) {
	var at time.Time
	err := r.db.View(func(txn *badger.Txn) error {
		return getDecoded(txn, readKey(userID, conversationID), &at)
	})
	if stderrors.Is(err, badger.ErrKeyNotFound) {
		return time.Time{}, false, nil
	}
	if err != nil {
		return time.Time{}, false, err
	}
	return at, true, nil
}
