// Package event defines the closed set of domain events pushed to connected
// clients, plus the JSON envelope they travel in.
package event

import (
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"switchboard/domain"
)

// Type is the wire discriminant of an event variant.
type Type string

const (
	TypeNewMessage               Type = "newMessage"
	TypeNewConversation          Type = "newConversation"
	TypeEditConversation         Type = "editConversation"
	TypeUsersAddedToConversation Type = "usersAddedToConversation"
	TypeMessageCategorized       Type = "messageCategorized"
	TypeNewPost                  Type = "newPost"
)

// Event is a closed sum: only the six variants below implement it.
// Events are fanned out by value and must never be mutated after construction.
type Event interface {
	Type() Type
}

// NewMessage: a message was sent in a conversation the recipient belongs to.
type NewMessage struct {
	Message domain.ChatMessage
}

func (NewMessage) Type() Type { return TypeNewMessage }

// NewConversation: a conversation including the recipient was created.
type NewConversation struct {
	Conversation domain.Conversation
}

func (NewConversation) Type() Type { return TypeNewConversation }

// EditConversation: conversation details (title) were changed.
type EditConversation struct {
	Conversation domain.Conversation
}

func (EditConversation) Type() Type { return TypeEditConversation }

// UsersAddedToConversation: membership grew; sent to old and new members alike.
type UsersAddedToConversation struct {
	Conversation domain.Conversation
	NewUserIDs   []uuid.UUID
}

func (UsersAddedToConversation) Type() Type { return TypeUsersAddedToConversation }

// MessageCategorized: the classifier produced a category for one recipient.
// This variant is always addressed to a single user.
type MessageCategorized struct {
	MessageID uuid.UUID
	Category  domain.MessageCategory
	Reasoning string
}

func (MessageCategorized) Type() Type { return TypeMessageCategorized }

// NewPost: a post was created, possibly by a delegate acting as the owner.
type NewPost struct {
	Post domain.Post
}

func (NewPost) Type() Type { return TypeNewPost }

type envelope struct {
	Type Type `json:"type"`
	Data any  `json:"data"`
}

// Variant tags are camelCase but the struct-variant payload fields stay
// snake_case on the wire.
type usersAddedPayload struct {
	Conversation domain.Conversation `json:"conversation"`
	NewUserIDs   []uuid.UUID         `json:"new_user_ids"`
}

type categorizedPayload struct {
	MessageID uuid.UUID              `json:"message_id"`
	Category  domain.MessageCategory `json:"category"`
	Reasoning string                 `json:"reasoning"`
}

// Encode serializes an event into its wire envelope:
//
//	{"type": "newMessage", "data": {...}}
//
// The switch is exhaustive over the closed sum; an unknown variant is a
// programming error and is reported as one.
func Encode(e Event) ([]byte, error) {
	var data any
	switch evt := e.(type) {
	case NewMessage:
		data = evt.Message
	case NewConversation:
		data = evt.Conversation
	case EditConversation:
		data = evt.Conversation
	case UsersAddedToConversation:
		data = usersAddedPayload{Conversation: evt.Conversation, NewUserIDs: evt.NewUserIDs}
	case MessageCategorized:
		data = categorizedPayload{MessageID: evt.MessageID, Category: evt.Category, Reasoning: evt.Reasoning}
	case NewPost:
		data = evt.Post
	default:
		return nil, fmt.Errorf("unknown event variant %T", e)
	}
	return json.Marshal(envelope{Type: e.Type(), Data: data})
}
