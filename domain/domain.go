// Package domain holds the entities shared across the application.
// It contains data and small pure helpers only, no I/O.
package domain

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID           uuid.UUID `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// Session is an opaque server-side credential. The ID itself is the token
// carried by the client; there is nothing to verify beyond the stored record.
type Session struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"userId"`
	Expires   time.Time `json:"expires"`
	CreatedAt time.Time `json:"createdAt"`
}

// Fresh reports whether the session is still usable at the given instant.
func (s Session) Fresh(now time.Time) bool {
	return s.Expires.After(now)
}

type Conversation struct {
	ID            uuid.UUID  `json:"id"`
	Title         *string    `json:"title"`
	LastMessageID *uuid.UUID `json:"lastMessageId"`
	CreatedAt     time.Time  `json:"createdAt"`
	UpdatedAt     time.Time  `json:"updatedAt"`
}

type ConversationWithParticipants struct {
	Conversation
	Participants []User `json:"participants"`
}

type ChatMessage struct {
	ID             uuid.UUID `json:"id"`
	ConversationID uuid.UUID `json:"conversationId"`
	SenderID       uuid.UUID `json:"senderId"`
	Content        string    `json:"content"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

// MessageCategory is the label assigned by the external classifier.
type MessageCategory string

const (
	CategoryImportant      MessageCategory = "important"
	CategorySponsorship    MessageCategory = "sponsorship"
	CategoryNetworking     MessageCategory = "networking"
	CategoryGeneralInquiry MessageCategory = "generalInquiry"
	CategorySpam           MessageCategory = "spam"
	CategoryUrgent         MessageCategory = "urgent"
)

// Valid reports whether the category is one the classifier may return.
func (c MessageCategory) Valid() bool {
	switch c {
	case CategoryImportant, CategorySponsorship, CategoryNetworking,
		CategoryGeneralInquiry, CategorySpam, CategoryUrgent:
		return true
	}
	return false
}

// Categorization is the successful result of one classifier call.
type Categorization struct {
	Category  MessageCategory `json:"category"`
	Reasoning string          `json:"reasoning"`
}

// ChatMessageWithMetadata is a message enriched with the per-recipient
// categorization, when one has been produced.
type ChatMessageWithMetadata struct {
	ChatMessage
	Category  *MessageCategory `json:"category"`
	Reasoning *string          `json:"reasoning"`
}

type Post struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"userId"`
	CreatedBy uuid.UUID `json:"createdBy"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type MessageWithReadStatus struct {
	ChatMessage
	IsRead bool `json:"isRead"`
}
