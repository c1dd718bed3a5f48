//go:generate go run go.uber.org/mock/mockgen -source=repository.go -destination=../mocks/mock_repository.go -package=mocks

// Package storage persists the domain over BadgerDB with simple keyed
// queries. Values are msgpack-encoded; message content is additionally
// indexed into Bluge for full-text search.
package storage

import (
	"time"

	"github.com/google/uuid"

	"switchboard/domain"
)

type IUserRepository interface {
	CreateUser(user domain.User) error
	GetUserByID(id uuid.UUID) (domain.User, error)
	GetUserByUsername(username string) (domain.User, error)
}

type ISessionRepository interface {
	CreateSession(session domain.Session) error
	// GetSession returns ok=false for a token that matches no stored record.
	// Expiry is the caller's concern: the raw record is returned as stored.
	GetSession(id uuid.UUID) (domain.Session, bool, error)
	DeleteSession(id uuid.UUID) error
}

type IConversationRepository interface {
	CreateConversation(conv domain.Conversation, memberIDs []uuid.UUID) error
	GetConversation(id uuid.UUID) (domain.Conversation, error)
	UpdateConversation(conv domain.Conversation) error
	AddMembers(conversationID uuid.UUID, userIDs []uuid.UUID) error
	Participants(conversationID uuid.UUID) ([]uuid.UUID, error)
	IsMember(userID, conversationID uuid.UUID) (bool, error)
	UserConversations(userID uuid.UUID) ([]domain.Conversation, error)
}

type IMessageRepository interface {
	StoreMessage(msg domain.ChatMessage) error
	GetMessage(id uuid.UUID) (domain.ChatMessage, error)
	// ConversationMessages returns the full history in chronological order.
	ConversationMessages(conversationID uuid.UUID) ([]domain.ChatMessage, error)
	SearchMessages(conversationID uuid.UUID, query string, limit int) ([]domain.ChatMessage, error)
}

type IMetadataRepository interface {
	// UpsertCategorization overwrites any earlier result for the same
	// (user, message) pair.
	UpsertCategorization(userID, messageID uuid.UUID, c domain.Categorization) error
	Categorization(userID, messageID uuid.UUID) (domain.Categorization, bool, error)
}

type IPostRepository interface {
	CreatePost(post domain.Post) error
	GetPost(id uuid.UUID) (domain.Post, error)
	DeletePost(id uuid.UUID) error
	// UserPosts returns the user's posts, newest first.
	UserPosts(userID uuid.UUID) ([]domain.Post, error)
}

type IDelegationRepository interface {
	Upsert(d domain.Delegation) error
	Get(ownerID, delegateID uuid.UUID) (domain.Delegation, bool, error)
	Delete(ownerID, delegateID uuid.UUID) error
	// ByOwner lists grants the owner handed out; ByDelegate lists grants
	// the delegate received.
	ByOwner(ownerID uuid.UUID) ([]domain.Delegation, error)
	ByDelegate(delegateID uuid.UUID) ([]domain.Delegation, error)
}

type IReadStateRepository interface {
	MarkRead(userID, conversationID uuid.UUID, at time.Time) error
	LastRead(userID, conversationID uuid.UUID) (time.Time, bool, error)
}
