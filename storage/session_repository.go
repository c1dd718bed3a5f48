package storage

import (
	stderrors "errors"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"

	"switchboard/domain"
)

type SessionRepository struct {
	db *badger.DB
}

func NewSessionRepository(db *badger.DB) *SessionRepository {
	return &SessionRepository{db: db}
}

func (r *SessionRepository) CreateSession(session domain.Session) error {
	return r.db.Update(func(txn *badger.Txn) error {
		return setEncoded(txn, sessionKey(session.ID), session)
	})
}

func (r *SessionRepository) GetSession(id uuid.UUID) (domain.Session, bool, error) {
	var session domain.Session
	err := r.db.View(func(txn *badger.Txn) error {
		return getDecoded(txn, sessionKey(id), &session)
	})
	if stderrors.Is(err, badger.ErrKeyNotFound) {
		return domain.Session{}, false, nil
	}
	if err != nil {
		return domain.Session{}, false, err
	}
	return session, true, nil
}

func (r *SessionRepository) DeleteSession(id uuid.UUID) error {
	return r.db.Update(func(txn *badger.Txn) error {
		return txn.Delete(sessionKey(id))
	})
}
