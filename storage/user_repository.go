package storage

import (
	stderrors "errors"
	"log/slog"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"

	"switchboard/domain"
	"switchboard/errors"
)

type UserRepository struct {
	db  *badger.DB
	log *slog.Logger
}

func NewUserRepository(db *badger.DB, log *slog.Logger) *UserRepository {
	return &UserRepository{db: db, log: log}
}

// CreateUser stores the user and claims its username. A taken username is a
// conflict, not a silent overwrite.
func (r *UserRepository) CreateUser(user domain.User) error {
	return r.db.Update(func(txn *badger.Txn) error {
		_, err := txn.Get(usernameKey(user.Username))
		if err == nil {
			return errors.ErrUsernameTaken
		}
		if !stderrors.Is(err, badger.ErrKeyNotFound) {
			return err
		}
		if err := setEncoded(txn, userKey(user.ID), user); err != nil {
			return err
		}
		return txn.Set(usernameKey(user.Username), []byte(user.ID.String()))
	})
}

func (r *UserRepository) GetUserByID(id uuid.UUID) (domain.User, error) {
	var user domain.User
	err := r.db.View(func(txn *badger.Txn) error {
		return getDecoded(txn, userKey(id), &user)
	})
	if stderrors.Is(err, badger.ErrKeyNotFound) {
		return domain.User{}, errors.ErrUserNotFound
	}
	return user, err
}

func (r *UserRepository) GetUserByUsername(username string) (domain.User, error) {
	var user domain.User
	err := r.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(usernameKey(username))
		if err != nil {
			return err
		}
		var id uuid.UUID
		if err := item.Value(func(val []byte) error {
			id, err = uuid.Parse(string(val))
			return err
		}); err != nil {
			return err
		}
		return getDecoded(txn, userKey(id), &user)
	})
	if stderrors.Is(err, badger.ErrKeyNotFound) {
		return domain.User{}, errors.ErrUserNotFound
	}
	return user, err
}
