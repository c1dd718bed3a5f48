package storage

import (
	stderrors "errors"
	"log/slog"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"

	"switchboard/domain"
	"switchboard/errors"
)

type ConversationRepository struct {
	db  *badger.DB
	log *slog.Logger
}

func NewConversationRepository(db *badger.DB, log *slog.Logger) *ConversationRepository {
	return &ConversationRepository{db: db, log: log}
}

// CreateConversation stores the conversation and its initial membership in a
// single transaction. Membership is written twice: once per conversation for
// recipient-set computation, once per user for listing.
func (r *ConversationRepository) CreateConversation(conv domain.Conversation, memberIDs []uuid.UUID) error {
	return r.db.Update(func(txn *badger.Txn) error {
		if err := setEncoded(txn, convKey(conv.ID), conv); err != nil {
			return err
		}
		for _, userID := range memberIDs {
			if err := txn.Set(memberKey(conv.ID, userID), nil); err != nil {
				return err
			}
			if err := txn.Set(userConvKey(userID, conv.ID), nil); err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *ConversationRepository) GetConversation(id uuid.UUID) (domain.Conversation, error) {
	var conv domain.Conversation
	err := r.db.View(func(txn *badger.Txn) error {
		return getDecoded(txn, convKey(id), &conv)
	})
	if stderrors.Is(err, badger.ErrKeyNotFound) {
		return domain.Conversation{}, errors.ErrConversationNotFound
	}
	return conv, err
}

func (r *ConversationRepository) UpdateConversation(conv domain.Conversation) error {
	return r.db.Update(func(txn *badger.Txn) error {
		if _, err := txn.Get(convKey(conv.ID)); err != nil {
			if stderrors.Is(err, badger.ErrKeyNotFound) {
				return errors.ErrConversationNotFound
			}
			return err
		}
		return setEncoded(txn, convKey(conv.ID), conv)
	})
}

// AddMembers is idempotent: re-adding an existing member overwrites the same
// membership keys.
func (r *ConversationRepository) AddMembers(conversationID uuid.UUID, userIDs []uuid.UUID) error {
	return r.db.Update(func(txn *badger.Txn) error {
		for _, userID := range userIDs {
			if err := txn.Set(memberKey(conversationID, userID), nil); err != nil {
				return err
			}
			if err := txn.Set(userConvKey(userID, conversationID), nil); err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *ConversationRepository) Participants(conversationID uuid.UUID) ([]uuid.UUID, error) {
	prefix := []byte("member:" + conversationID.String() + ":")
	var ids []uuid.UUID
	err := r.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = false
		opts.Prefix = prefix
		it := txn.NewIterator(opts)
		defer it.Close()
		for it.Rewind(); it.ValidForPrefix(prefix); it.Next() {
			id, err := suffixUUID(it.Item().Key())
			if err != nil {
				return err
			}
			ids = append(ids, id)
		}
		return nil
	})
	return ids, err
}

func (r *ConversationRepository) IsMember(userID, conversationID uuid.UUID) (bool, error) {
	err := r.db.View(func(txn *badger.Txn) error {
		_, err := txn.Get(memberKey(conversationID, userID))
		return err
	})
	if stderrors.Is(err, badger.ErrKeyNotFound) {
		return false, nil
	}
	return err == nil, err
}

func (r *ConversationRepository) UserConversations(userID uuid.UUID) ([]domain.Conversation, error) {
	prefix := []byte("userconv:" + userID.String() + ":")
	var convs []domain.Conversation
	err := r.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = false
		opts.Prefix = prefix
		it := txn.NewIterator(opts)
		defer it.Close()
		for it.Rewind(); it.ValidForPrefix(prefix); it.Next() {
			id, err := suffixUUID(it.Item().Key())
			if err != nil {
				return err
			}
			var conv domain.Conversation
			if err := getDecoded(txn, convKey(id), &conv); err != nil {
				return err
			}
			convs = append(convs, conv)
		}
		return nil
	})
	return convs, err
}
