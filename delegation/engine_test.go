package delegation

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"switchboard/domain"
	"switchboard/errors"
	"switchboard/mocks"
)

func TestEngine_Authorize(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockDelegations := mocks.NewMockIDelegationRepository(ctrl)
	mockConversations := mocks.NewMockIConversationRepository(ctrl)
	engine := NewEngine(mockDelegations, mockConversations)

	owner := uuid.New()
	actor := uuid.New()

	t.Run("should allow acting as oneself without any delegation row", func(t *testing.T) {
		req := require.New(t)

		// Repository should NEVER be consulted
		mockDelegations.EXPECT().Get(gomock.Any(), gomock.Any()).Times(0)

		req.NoError(engine.Authorize(owner, owner, domain.CapPost))
	})

	t.Run("should deny when no delegation row exists", func(t *testing.T) {
		req := require.New(t)

		mockDelegations.EXPECT().
			Get(owner, actor).
			Return(domain.Delegation{}, false, nil).
			Times(1)

		err := engine.Authorize(owner, actor, domain.CapPost)

		req.ErrorIs(err, errors.ErrNotDelegated)
	})

	t.Run("should deny when the row exists but the flag is not granted", func(t *testing.T) {
		req := require.New(t)

		d := domain.Delegation{OwnerID: owner, DelegateID: actor, CanPost: true}
		mockDelegations.EXPECT().
			Get(owner, actor).
			Return(d, true, nil).
			Times(1)

		err := engine.Authorize(owner, actor, domain.CapDeletePosts)

		req.ErrorIs(err, errors.ErrCapabilityDenied)
	})

	t.Run("should allow when the row grants the capability", func(t *testing.T) {
		req := require.New(t)

		d := domain.Delegation{OwnerID: owner, DelegateID: actor, CanPost: true}
		mockDelegations.EXPECT().
			Get(owner, actor).
			Return(d, true, nil).
			Times(1)

		req.NoError(engine.Authorize(owner, actor, domain.CapPost))
	})

	t.Run("should never treat the reverse row as a grant", func(t *testing.T) {
		req := require.New(t)

		// Only the (owner, actor) row is consulted; a grant in the other
		// direction does not exist from the engine's point of view.
		mockDelegations.EXPECT().
			Get(actor, owner).
			Return(domain.Delegation{}, false, nil).
			Times(1)

		err := engine.Authorize(actor, owner, domain.CapMessage)

		req.ErrorIs(err, errors.ErrNotDelegated)
	})
}

func TestEngine_AuthorizeMessageSend(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockDelegations := mocks.NewMockIDelegationRepository(ctrl)
	mockConversations := mocks.NewMockIConversationRepository(ctrl)
	engine := NewEngine(mockDelegations, mockConversations)

	owner := uuid.New()
	actor := uuid.New()
	conversationID := uuid.New()

	t.Run("should check the capability before membership", func(t *testing.T) {
		req := require.New(t)

		// Given no delegation, membership must not even be looked up
		mockDelegations.EXPECT().
			Get(owner, actor).
			Return(domain.Delegation{}, false, nil).
			Times(1)
		mockConversations.EXPECT().IsMember(gomock.Any(), gomock.Any()).Times(0)

		err := engine.AuthorizeMessageSend(owner, actor, conversationID)

		req.ErrorIs(err, errors.ErrNotDelegated)
	})

	t.Run("should deny when the acted-as identity is not a member", func(t *testing.T) {
		req := require.New(t)

		d := domain.Delegation{OwnerID: owner, DelegateID: actor, CanMessage: true}
		mockDelegations.EXPECT().Get(owner, actor).Return(d, true, nil).Times(1)
		// Membership is checked for the owner, not the actor
		mockConversations.EXPECT().IsMember(owner, conversationID).Return(false, nil).Times(1)

		err := engine.AuthorizeMessageSend(owner, actor, conversationID)

		req.ErrorIs(err, errors.ErrNotMember)
	})

	t.Run("should allow a delegated send into the owner's conversation", func(t *testing.T) {
		req := require.New(t)

		d := domain.Delegation{OwnerID: owner, DelegateID: actor, CanMessage: true}
		mockDelegations.EXPECT().Get(owner, actor).Return(d, true, nil).Times(1)
		mockConversations.EXPECT().IsMember(owner, conversationID).Return(true, nil).Times(1)

		req.NoError(engine.AuthorizeMessageSend(owner, actor, conversationID))
	})

	t.Run("should require membership even when sending as oneself", func(t *testing.T) {
		req := require.New(t)

		mockConversations.EXPECT().IsMember(owner, conversationID).Return(false, nil).Times(1)

		err := engine.AuthorizeMessageSend(owner, owner, conversationID)

		req.ErrorIs(err, errors.ErrNotMember)
	})
}
