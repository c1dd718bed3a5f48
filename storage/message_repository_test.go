package storage

import (
	"log/slog"
	"testing"
	"time"

	"github.com/blugelabs/bluge"
	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"switchboard/domain"
	"switchboard/errors"
)

func newMessageRepo(t *testing.T) *MessageRepository {
	t.Helper()
	db, err := badger.Open(badger.DefaultOptions(t.TempDir()).
		WithLoggingLevel(badger.ERROR))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	blugeWriter, err := bluge.OpenWriter(bluge.DefaultConfig(t.TempDir()))
	require.NoError(t, err)
	t.Cleanup(func() { _ = blugeWriter.Close() })

	return NewMessageRepository(db, blugeWriter, slog.Default())
}

func storeMessage(t *testing.T, repo *MessageRepository, conversationID uuid.UUID, content string, at time.Time) domain.ChatMessage {
	t.Helper()
	msg := domain.ChatMessage{
		ID:             uuid.New(),
		ConversationID: conversationID,
		SenderID:       uuid.New(),
		Content:        content,
		CreatedAt:      at,
		UpdatedAt:      at,
	}
	require.NoError(t, repo.StoreMessage(msg))
	return msg
}

func TestMessageRepository_ChronologicalOrder(t *testing.T) {
	req := require.New(t)
	repo := newMessageRepo(t)
	conversationID := uuid.New()
	base := time.Now().UTC()

	// Stored out of order on purpose
	storeMessage(t, repo, conversationID, "third", base.Add(2*time.Second))
	storeMessage(t, repo, conversationID, "first", base)
	storeMessage(t, repo, conversationID, "second", base.Add(time.Second))

	msgs, err := repo.ConversationMessages(conversationID)
	req.NoError(err)
	req.Len(msgs, 3)
	req.Equal("first", msgs[0].Content)
	req.Equal("second", msgs[1].Content)
	req.Equal("third", msgs[2].Content)
}

func TestMessageRepository_GetByID(t *testing.T) {
	req := require.New(t)
	repo := newMessageRepo(t)

	msg := storeMessage(t, repo, uuid.New(), "find me", time.Now().UTC())

	got, err := repo.GetMessage(msg.ID)
	req.NoError(err)
	req.Equal(msg.Content, got.Content)

	_, err = repo.GetMessage(uuid.New())
	req.ErrorIs(err, errors.ErrMessageNotFound)
}

func TestMessageRepository_SearchScopedToConversation(t *testing.T) {
	req := require.New(t)
	repo := newMessageRepo(t)
	conversationID := uuid.New()
	otherID := uuid.New()
	now := time.Now().UTC()

	storeMessage(t, repo, conversationID, "quarterly budget review", now)
	storeMessage(t, repo, conversationID, "lunch plans", now.Add(time.Second))
	storeMessage(t, repo, otherID, "budget for the offsite", now)

	found, err := repo.SearchMessages(conversationID, "budget", 10)
	req.NoError(err)
	req.Len(found, 1)
	req.Equal("quarterly budget review", found[0].Content)

	none, err := repo.SearchMessages(conversationID, "vacation", 10)
	req.NoError(err)
	req.Empty(none)
}
