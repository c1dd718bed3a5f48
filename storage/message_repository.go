package storage

import (
	"context"
	stderrors "errors"
	"log/slog"

	"github.com/blugelabs/bluge"
	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"

	"switchboard/domain"
	"switchboard/errors"
)

// MessageRepository persists messages in Badger and mirrors their content
// into a Bluge index so conversations are searchable by text.
type MessageRepository struct {
	db     *badger.DB
	writer *bluge.Writer
	log    *slog.Logger
}

func NewMessageRepository(db *badger.DB, writer *bluge.Writer, log *slog.Logger) *MessageRepository {
	return &MessageRepository{db: db, writer: writer, log: log}
}

func (r *MessageRepository) StoreMessage(msg domain.ChatMessage) error {
	primary := messageKey(msg.ConversationID, msg.CreatedAt, msg.ID)
	err := r.db.Update(func(txn *badger.Txn) error {
		if err := setEncoded(txn, primary, msg); err != nil {
			return err
		}
		return txn.Set(messageRefKey(msg.ID), primary)
	})
	if err != nil {
		return err
	}

	doc := bluge.NewDocument(msg.ID.String()).
		AddField(bluge.NewTextField("content", msg.Content)).
		AddField(bluge.NewKeywordField("conversation", msg.ConversationID.String()))
	if err := r.writer.Update(doc.ID(), doc); err != nil {
		// The message is durably stored; a missing index entry only makes
		// it unsearchable.
		r.log.Warn("failed to index message content", "message_id", msg.ID, "err", err)
	}
	return nil
}

func (r *MessageRepository) GetMessage(id uuid.UUID) (domain.ChatMessage, error) {
	var msg domain.ChatMessage
	err := r.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(messageRefKey(id))
		if err != nil {
			return err
		}
		var primary []byte
		if err := item.Value(func(val []byte) error {
			primary = append([]byte(nil), val...)
			return nil
		}); err != nil {
			return err
		}
		return getDecoded(txn, primary, &msg)
	})
	if stderrors.Is(err, badger.ErrKeyNotFound) {
		return domain.ChatMessage{}, errors.ErrMessageNotFound
	}
	return msg, err
}

// ConversationMessages iterates the conversation prefix; keys embed the
// creation time, so iteration order is already chronological.
func (r *MessageRepository) ConversationMessages(conversationID uuid.UUID) ([]domain.ChatMessage, error) {
	prefix := []byte("msg:" + conversationID.String() + ":")
	var msgs []domain.ChatMessage
	err := r.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = prefix
		it := txn.NewIterator(opts)
		defer it.Close()
		for it.Rewind(); it.ValidForPrefix(prefix); it.Next() {
			var msg domain.ChatMessage
			if err := it.Item().Value(func(val []byte) error {
				return decode(val, &msg)
			}); err != nil {
				return err
			}
			msgs = append(msgs, msg)
		}
		return nil
	})
	return msgs, err
}

// SearchMessages runs a full-text match over the conversation's content.
func (r *MessageRepository) SearchMessages(conversationID uuid.UUID, query string, limit int) ([]domain.ChatMessage, error) {
	reader, err := r.writer.Reader()
	if err != nil {
		return nil, err
	}
	defer func() { _ = reader.Close() }()

	q := bluge.NewBooleanQuery().
		AddMust(bluge.NewMatchQuery(query).SetField("content")).
		AddMust(bluge.NewTermQuery(conversationID.String()).SetField("conversation"))

	it, err := reader.Search(context.Background(), bluge.NewTopNSearch(limit, q))
	if err != nil {
		return nil, err
	}

	var msgs []domain.ChatMessage
	for match, err := it.Next(); match != nil; match, err = it.Next() {
		if err != nil {
			return nil, err
		}
		var id uuid.UUID
		visitErr := match.VisitStoredFields(func(field string, value []byte) bool {
			if field == "_id" {
				id, err = uuid.Parse(string(value))
			}
			return true
		})
		if visitErr != nil {
			return nil, visitErr
		}
		if err != nil {
			return nil, err
		}
		msg, err := r.GetMessage(id)
		if err != nil {
			// The index can briefly reference a message not yet visible
			// in Badger; skip instead of failing the whole search.
			r.log.Debug("indexed message missing from store", "message_id", id)
			continue
		}
		msgs = append(msgs, msg)
	}
	return msgs, nil
}
