// Package services wires authorization, persistence, and fan-out into the
// operations exposed over HTTP. Every mutation follows the same shape:
// authorize, persist, then publish to the affected recipients — a failed
// publish can never fail the mutation.
package services

import (
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/samber/lo"

	"switchboard/contract"
	"switchboard/delegation"
	"switchboard/domain"
	"switchboard/domain/event"
	"switchboard/errors"
	"switchboard/storage"
)

type MessagingService struct {
	conversations storage.IConversationRepository
	messages      storage.IMessageRepository
	metadata      storage.IMetadataRepository
	readState     storage.IReadStateRepository
	users         storage.IUserRepository
	engine        *delegation.Engine
	publisher     contract.Publisher
	categorizer   *Categorizer
	log           *slog.Logger
}

func NewMessagingService(
	conversations storage.IConversationRepository,
	messages storage.IMessageRepository,
	metadata storage.IMetadataRepository,
	readState storage.IReadStateRepository,
	users storage.IUserRepository,
	engine *delegation.Engine,
	publisher contract.Publisher,
	categorizer *Categorizer,
	log *slog.Logger,
) *MessagingService {
	return &MessagingService{
		conversations: conversations,
		messages:      messages,
		metadata:      metadata,
		readState:     readState,
		users:         users,
		engine:        engine,
		publisher:     publisher,
		categorizer:   categorizer,
		log:           log,
	}
}

// CreateConversation creates a conversation whose member set always includes
// the creator, then notifies every initial member.
func (s *MessagingService) CreateConversation(creatorID uuid.UUID, userIDs []uuid.UUID) (domain.Conversation, error) {
	memberIDs := lo.Uniq(append(append([]uuid.UUID{}, userIDs...), creatorID))

	now := time.Now().UTC()
	conv := domain.Conversation{ID: uuid.New(), CreatedAt: now, UpdatedAt: now}
	if err := s.conversations.CreateConversation(conv, memberIDs); err != nil {
		return domain.Conversation{}, err
	}

	s.publisher.Publish(memberIDs, event.NewConversation{Conversation: conv})
	return conv, nil
}

// SendMessage persists a message and broadcasts NewMessage to every member.
// With actAs set, the message is attributed to that identity, provided the
// actor holds the message capability and the acted-as identity is a member.
//
// Classification tasks are dispatched strictly after the NewMessage publish,
// so each recipient sees MessageCategorized only after the message itself.
func (s *MessagingService) SendMessage(actorID uuid.UUID, actAs *uuid.UUID, conversationID uuid.UUID, content string) (domain.ChatMessage, error) {
	senderID := actorID
	if actAs != nil {
		senderID = *actAs
	}

	if _, err := s.conversations.GetConversation(conversationID); err != nil {
		return domain.ChatMessage{}, err
	}
	if err := s.engine.AuthorizeMessageSend(senderID, actorID, conversationID); err != nil {
		return domain.ChatMessage{}, err
	}

	// Prior history, fetched before the insert: classifier context is
	// everything the conversation contained when this message arrived.
	history, err := s.messages.ConversationMessages(conversationID)
	if err != nil {
		return domain.ChatMessage{}, err
	}

	now := time.Now().UTC()
	msg := domain.ChatMessage{
		ID:             uuid.New(),
		ConversationID: conversationID,
		SenderID:       senderID,
		Content:        content,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := s.messages.StoreMessage(msg); err != nil {
		return domain.ChatMessage{}, err
	}
	if err := s.touchConversation(conversationID, &msg.ID, now); err != nil {
		s.log.Warn("failed to update conversation head", "conversation_id", conversationID, "err", err)
	}

	participants, err := s.conversations.Participants(conversationID)
	if err != nil {
		// The message is stored; losing the fan-out degrades to a missed
		// notification, never to a failed send.
		s.log.Warn("failed to resolve recipients", "conversation_id", conversationID, "err", err)
		return msg, nil
	}

	s.publisher.Publish(participants, event.NewMessage{Message: msg})
	s.categorizer.Dispatch(msg, history, participants)
	return msg, nil
}

// EditConversationTitle renames a conversation and notifies all members.
func (s *MessagingService) EditConversationTitle(actorID, conversationID uuid.UUID, title string) (domain.Conversation, error) {
	if err := s.requireMember(actorID, conversationID); err != nil {
		return domain.Conversation{}, err
	}

	conv, err := s.conversations.GetConversation(conversationID)
	if err != nil {
		return domain.Conversation{}, err
	}
	conv.Title = &title
	conv.UpdatedAt = time.Now().UTC()
	if err := s.conversations.UpdateConversation(conv); err != nil {
		return domain.Conversation{}, err
	}

	participants, err := s.conversations.Participants(conversationID)
	if err == nil {
		s.publisher.Publish(participants, event.EditConversation{Conversation: conv})
	}
	return conv, nil
}

// AddUsers grows a conversation's membership and notifies the union of old
// and new members, each with an identical payload.
func (s *MessagingService) AddUsers(actorID, conversationID uuid.UUID, userIDs []uuid.UUID) (domain.Conversation, error) {
	if err := s.requireMember(actorID, conversationID); err != nil {
		return domain.Conversation{}, err
	}

	if err := s.conversations.AddMembers(conversationID, userIDs); err != nil {
		return domain.Conversation{}, err
	}
	conv, err := s.conversations.GetConversation(conversationID)
	if err != nil {
		return domain.Conversation{}, err
	}

	// Participants now already include the newly added members.
	participants, err := s.conversations.Participants(conversationID)
	if err == nil {
		s.publisher.Publish(participants, event.UsersAddedToConversation{
			Conversation: conv,
			NewUserIDs:   userIDs,
		})
	}
	return conv, nil
}

func (s *MessagingService) Conversation(actorID, conversationID uuid.UUID) (domain.ConversationWithParticipants, error) {
	if err := s.requireMember(actorID, conversationID); err != nil {
		return domain.ConversationWithParticipants{}, err
	}

	conv, err := s.conversations.GetConversation(conversationID)
	if err != nil {
		return domain.ConversationWithParticipants{}, err
	}
	ids, err := s.conversations.Participants(conversationID)
	if err != nil {
		return domain.ConversationWithParticipants{}, err
	}

	participants := make([]domain.User, 0, len(ids))
	for _, id := range ids {
		user, err := s.users.GetUserByID(id)
		if err != nil {
			return domain.ConversationWithParticipants{}, err
		}
		participants = append(participants, user)
	}
	return domain.ConversationWithParticipants{Conversation: conv, Participants: participants}, nil
}

// Conversations lists the conversations of actorID, or of filterUserID when
// the actor holds a message delegation from that user.
func (s *MessagingService) Conversations(actorID uuid.UUID, filterUserID *uuid.UUID) ([]domain.Conversation, error) {
	userID := actorID
	if filterUserID != nil {
		if err := s.engine.Authorize(*filterUserID, actorID, domain.CapMessage); err != nil {
			return nil, err
		}
		userID = *filterUserID
	}
	return s.conversations.UserConversations(userID)
}

func (s *MessagingService) Messages(actorID, conversationID uuid.UUID) ([]domain.ChatMessage, error) {
	if err := s.requireMember(actorID, conversationID); err != nil {
		return nil, err
	}
	return s.messages.ConversationMessages(conversationID)
}

// CategorizedMessages joins the history with the actor's own categorization
// metadata; messages the pipeline has not (yet) classified carry nil fields.
func (s *MessagingService) CategorizedMessages(actorID, conversationID uuid.UUID) ([]domain.ChatMessageWithMetadata, error) {
	msgs, err := s.Messages(actorID, conversationID)
	if err != nil {
		return nil, err
	}

	out := make([]domain.ChatMessageWithMetadata, 0, len(msgs))
	for _, msg := range msgs {
		enriched := domain.ChatMessageWithMetadata{ChatMessage: msg}
		c, ok, err := s.metadata.Categorization(actorID, msg.ID)
		if err != nil {
			return nil, err
		}
		if ok {
			enriched.Category = &c.Category
			enriched.Reasoning = &c.Reasoning
		}
		out = append(out, enriched)
	}
	return out, nil
}

func (s *MessagingService) SearchMessages(actorID, conversationID uuid.UUID, query string, limit int) ([]domain.ChatMessage, error) {
	if err := s.requireMember(actorID, conversationID); err != nil {
		return nil, err
	}
	return s.messages.SearchMessages(conversationID, query, limit)
}

func (s *MessagingService) MarkRead(actorID, conversationID uuid.UUID) error {
	if err := s.requireMember(actorID, conversationID); err != nil {
		return err
	}
	return s.readState.MarkRead(actorID, conversationID, time.Now().UTC())
}

// UnreadMessages collects, across all of the actor's conversations, messages
// from others newer than the conversation's last-read mark.
func (s *MessagingService) UnreadMessages(actorID uuid.UUID) ([]domain.ChatMessage, error) {
	convs, err := s.conversations.UserConversations(actorID)
	if err != nil {
		return nil, err
	}

	var unread []domain.ChatMessage
	for _, conv := range convs {
		lastRead, marked, err := s.readState.LastRead(actorID, conv.ID)
		if err != nil {
			return nil, err
		}
		msgs, err := s.messages.ConversationMessages(conv.ID)
		if err != nil {
			return nil, err
		}
		for _, msg := range msgs {
			if msg.SenderID == actorID {
				continue
			}
			if !marked || msg.CreatedAt.After(lastRead) {
				unread = append(unread, msg)
			}
		}
	}
	return unread, nil
}

func (s *MessagingService) MessagesWithStatus(actorID, conversationID uuid.UUID) ([]domain.MessageWithReadStatus, error) {
	msgs, err := s.Messages(actorID, conversationID)
	if err != nil {
		return nil, err
	}
	lastRead, marked, err := s.readState.LastRead(actorID, conversationID)
	if err != nil {
		return nil, err
	}

	return lo.Map(msgs, func(msg domain.ChatMessage, _ int) domain.MessageWithReadStatus {
		// Own messages are always read.
		isRead := msg.SenderID == actorID || (marked && !msg.CreatedAt.After(lastRead))
		return domain.MessageWithReadStatus{ChatMessage: msg, IsRead: isRead}
	}), nil
}

func (s *MessagingService) requireMember(userID, conversationID uuid.UUID) error {
	member, err := s.conversations.IsMember(userID, conversationID)
	if err != nil {
		return err
	}
	if !member {
		return errors.ErrNotMember
	}
	return nil
}

func (s *MessagingService) touchConversation(conversationID uuid.UUID, lastMessageID *uuid.UUID, at time.Time) error {
	conv, err := s.conversations.GetConversation(conversationID)
	if err != nil {
		return err
	}
	conv.LastMessageID = lastMessageID
	conv.UpdatedAt = at
	return s.conversations.UpdateConversation(conv)
}
