// Package delegation decides which identity a mutating request acts as, and
// whether the actor is allowed to do so. It is pure decision logic over the
// stored delegation relation; it mutates nothing.
package delegation

import (
	"github.com/google/uuid"

	"switchboard/domain"
	"switchboard/errors"
	"switchboard/storage"
)

type Engine struct {
	delegations   storage.IDelegationRepository
	conversations storage.IConversationRepository
}

func NewEngine(delegations storage.IDelegationRepository, conversations storage.IConversationRepository) *Engine {
	return &Engine{delegations: delegations, conversations: conversations}
}

// Authorize answers whether actor may act as owner for the given capability.
//
// Self-action needs no grant. Otherwise exactly the (owner, actor) row is
// consulted: delegation is never transitive. Absence of a row and an
// ungranted flag are distinct failures so callers can report accurately.
func (e *Engine) Authorize(owner, actor uuid.UUID, cap domain.Capability) error {
	if actor == owner {
		return nil
	}
	d, ok, err := e.delegations.Get(owner, actor)
	if err != nil {
		return err
	}
	if !ok {
		return errors.ErrNotDelegated
	}
	if !d.Grants(cap) {
		return errors.ErrCapabilityDenied
	}
	return nil
}

// AuthorizeMessageSend layers the membership rule on top of the capability
// check for message sending: the identity being acted as must itself belong
// to the conversation. The capability check runs first and short-circuits,
// so a caller missing the grant sees a permission error, not a membership one.
func (e *Engine) AuthorizeMessageSend(owner, actor, conversationID uuid.UUID) error {
	if err := e.Authorize(owner, actor, domain.CapMessage); err != nil {
		return err
	}
	member, err := e.conversations.IsMember(owner, conversationID)
	if err != nil {
		return err
	}
	if !member {
		return errors.ErrNotMember
	}
	return nil
}
