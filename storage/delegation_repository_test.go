package storage

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"switchboard/domain"
	"switchboard/errors"
)

func TestDelegationRepository_UpsertOverwritesFlags(t *testing.T) {
	req := require.New(t)
	repo := NewDelegationRepository(openTestDB(t))

	owner, delegate := uuid.New(), uuid.New()

	req.NoError(repo.Upsert(domain.Delegation{
		OwnerID: owner, DelegateID: delegate, CanPost: true,
	}))
	req.NoError(repo.Upsert(domain.Delegation{
		OwnerID: owner, DelegateID: delegate, CanMessage: true,
	}))

	d, ok, err := repo.Get(owner, delegate)
	req.NoError(err)
	req.True(ok)
	// The second grant fully replaced the first
	req.False(d.CanPost)
	req.True(d.CanMessage)
}

func TestDelegationRepository_BothDirections(t *testing.T) {
	req := require.New(t)
	repo := NewDelegationRepository(openTestDB(t))

	owner, delegate, other := uuid.New(), uuid.New(), uuid.New()
	req.NoError(repo.Upsert(domain.Delegation{OwnerID: owner, DelegateID: delegate, CanPost: true}))
	req.NoError(repo.Upsert(domain.Delegation{OwnerID: owner, DelegateID: other, CanMessage: true}))
	req.NoError(repo.Upsert(domain.Delegation{OwnerID: other, DelegateID: delegate, CanPost: true}))

	granted, err := repo.ByOwner(owner)
	req.NoError(err)
	req.Len(granted, 2)

	received, err := repo.ByDelegate(delegate)
	req.NoError(err)
	req.Len(received, 2)
	for _, d := range received {
		req.Equal(delegate, d.DelegateID)
	}
}

func TestDelegationRepository_DirectionMatters(t *testing.T) {
	req := require.New(t)
	repo := NewDelegationRepository(openTestDB(t))

	owner, delegate := uuid.New(), uuid.New()
	req.NoError(repo.Upsert(domain.Delegation{OwnerID: owner, DelegateID: delegate, CanPost: true, CreatedAt: time.Now().UTC()}))

	// The reverse pair is a different relation and must not exist
	_, ok, err := repo.Get(delegate, owner)
	req.NoError(err)
	req.False(ok)
}

func TestDelegationRepository_Delete(t *testing.T) {
	req := require.New(t)
	repo := NewDelegationRepository(openTestDB(t))

	owner, delegate := uuid.New(), uuid.New()
	req.NoError(repo.Upsert(domain.Delegation{OwnerID: owner, DelegateID: delegate, CanPost: true}))

	req.NoError(repo.Delete(owner, delegate))

	_, ok, err := repo.Get(owner, delegate)
	req.NoError(err)
	req.False(ok)

	// Both indexes are gone
	received, err := repo.ByDelegate(delegate)
	req.NoError(err)
	req.Empty(received)

	req.ErrorIs(repo.Delete(owner, delegate), errors.ErrDelegationNotFound)
}
