package event

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"switchboard/domain"
)

func decodeEnvelope(t *testing.T, raw []byte) (string, map[string]any) {
	t.Helper()
	var env struct {
		Type string         `json:"type"`
		Data map[string]any `json:"data"`
	}
	require.NoError(t, json.Unmarshal(raw, &env))
	return env.Type, env.Data
}

func TestEncode_NewMessageEnvelope(t *testing.T) {
	req := require.New(t)
	msg := domain.ChatMessage{
		ID:             uuid.New(),
		ConversationID: uuid.New(),
		SenderID:       uuid.New(),
		Content:        "hello there",
		CreatedAt:      time.Now().UTC(),
	}

	raw, err := Encode(NewMessage{Message: msg})
	req.NoError(err)

	typ, data := decodeEnvelope(t, raw)
	req.Equal("newMessage", typ)
	req.Equal(msg.ID.String(), data["id"])
	req.Equal(msg.ConversationID.String(), data["conversationId"])
	req.Equal("hello there", data["content"])
}

func TestEncode_UsersAddedEnvelope(t *testing.T) {
	req := require.New(t)
	conv := domain.Conversation{ID: uuid.New()}
	added := []uuid.UUID{uuid.New(), uuid.New()}

	raw, err := Encode(UsersAddedToConversation{Conversation: conv, NewUserIDs: added})
	req.NoError(err)

	typ, data := decodeEnvelope(t, raw)
	req.Equal("usersAddedToConversation", typ)

	conversation, ok := data["conversation"].(map[string]any)
	req.True(ok)
	req.Equal(conv.ID.String(), conversation["id"])

	// Payload fields of struct variants stay snake_case on the wire
	ids, ok := data["new_user_ids"].([]any)
	req.True(ok)
	req.Len(ids, 2)
	req.Equal(added[0].String(), ids[0])
	req.NotContains(data, "newUserIds")
}

func TestEncode_MessageCategorizedEnvelope(t *testing.T) {
	req := require.New(t)
	messageID := uuid.New()

	raw, err := Encode(MessageCategorized{
		MessageID: messageID,
		Category:  domain.CategorySpam,
		Reasoning: "unsolicited promotion",
	})
	req.NoError(err)

	typ, data := decodeEnvelope(t, raw)
	req.Equal("messageCategorized", typ)
	req.Equal(messageID.String(), data["message_id"])
	req.Equal("spam", data["category"])
	req.Equal("unsolicited promotion", data["reasoning"])
	req.NotContains(data, "messageId")
}

func TestEncode_NewPostEnvelope(t *testing.T) {
	req := require.New(t)
	post := domain.Post{
		ID:        uuid.New(),
		UserID:    uuid.New(),
		CreatedBy: uuid.New(),
		Content:   "shipping next week",
	}

	raw, err := Encode(NewPost{Post: post})
	req.NoError(err)

	typ, data := decodeEnvelope(t, raw)
	req.Equal("newPost", typ)
	req.Equal(post.UserID.String(), data["userId"])
	req.Equal(post.CreatedBy.String(), data["createdBy"])
}

func TestEncode_ConversationVariantsShareShape(t *testing.T) {
	req := require.New(t)
	title := "project sync"
	conv := domain.Conversation{ID: uuid.New(), Title: &title}

	for _, tc := range []struct {
		evt      Event
		wantType string
	}{
		{NewConversation{Conversation: conv}, "newConversation"},
		{EditConversation{Conversation: conv}, "editConversation"},
	} {
		raw, err := Encode(tc.evt)
		req.NoError(err)

		typ, data := decodeEnvelope(t, raw)
		req.Equal(tc.wantType, typ)
		req.Equal(conv.ID.String(), data["id"])
		req.Equal(title, data["title"])
	}
}
