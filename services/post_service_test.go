package services

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"switchboard/domain/event"
	"switchboard/errors"
)

func TestPostService_CreatePost(t *testing.T) {
	f := newFixture(t, nil)

	owner := f.newUser(t, "owner")
	delegate := f.newUser(t, "delegate")
	otherDelegate := f.newUser(t, "assistant")
	stranger := f.newUser(t, "stranger")

	f.grant(t, owner, delegate, true, false, false)
	f.grant(t, owner, otherDelegate, false, true, false)

	subOwner := f.subscribe(t, owner)
	subDelegate := f.subscribe(t, delegate)
	subOtherDelegate := f.subscribe(t, otherDelegate)
	subStranger := f.subscribe(t, stranger)

	t.Run("should attribute a delegated post to the owner and keep the author", func(t *testing.T) {
		req := require.New(t)

		post, err := f.posts.CreatePost(delegate.ID, &owner.ID, "announcement")
		req.NoError(err)
		req.Equal(owner.ID, post.UserID)
		req.Equal(delegate.ID, post.CreatedBy)

		// Owner, creator, and every delegate of the owner are notified
		evt := nextEvent(t, subOwner)
		created, ok := evt.(event.NewPost)
		req.True(ok)
		req.Equal(post.ID, created.Post.ID)

		evt = nextEvent(t, subDelegate)
		_, ok = evt.(event.NewPost)
		req.True(ok)

		evt = nextEvent(t, subOtherDelegate)
		_, ok = evt.(event.NewPost)
		req.True(ok)

		// Unrelated users hear nothing
		requireNoEvent(t, subStranger)
	})

	t.Run("should deny posting as an owner who granted nothing", func(t *testing.T) {
		_, err := f.posts.CreatePost(stranger.ID, &owner.ID, "spam")
		require.ErrorIs(t, err, errors.ErrNotDelegated)
	})

	t.Run("should deny posting without the post capability", func(t *testing.T) {
		_, err := f.posts.CreatePost(otherDelegate.ID, &owner.ID, "not allowed")
		require.ErrorIs(t, err, errors.ErrCapabilityDenied)
	})

	t.Run("should let anyone post as themselves", func(t *testing.T) {
		req := require.New(t)
		post, err := f.posts.CreatePost(stranger.ID, nil, "my own post")
		req.NoError(err)
		req.Equal(stranger.ID, post.UserID)
		req.Equal(stranger.ID, post.CreatedBy)
	})
}

func TestPostService_DeletePost(t *testing.T) {
	req := require.New(t)
	f := newFixture(t, nil)

	owner := f.newUser(t, "owner")
	moderator := f.newUser(t, "moderator")
	other := f.newUser(t, "other")

	post, err := f.posts.CreatePost(owner.ID, nil, "to be removed")
	req.NoError(err)

	t.Run("should deny deletion without the delete capability", func(t *testing.T) {
		require.ErrorIs(t, f.posts.DeletePost(other.ID, post.ID), errors.ErrNotDelegated)

		f.grant(t, owner, other, true, true, false)
		require.ErrorIs(t, f.posts.DeletePost(other.ID, post.ID), errors.ErrCapabilityDenied)
	})

	t.Run("should let a delegate with the capability delete the owner's post", func(t *testing.T) {
		req := require.New(t)
		f.grant(t, owner, moderator, false, false, true)

		req.NoError(f.posts.DeletePost(moderator.ID, post.ID))

		_, err := f.posts.UserPosts(owner.ID)
		req.NoError(err)
		req.ErrorIs(f.posts.DeletePost(moderator.ID, post.ID), errors.ErrPostNotFound)
	})

	t.Run("should let the owner delete their own post", func(t *testing.T) {
		req := require.New(t)
		own, err := f.posts.CreatePost(owner.ID, nil, "short lived")
		req.NoError(err)
		req.NoError(f.posts.DeletePost(owner.ID, own.ID))
	})
}

func TestPostService_UserFeed(t *testing.T) {
	req := require.New(t)
	f := newFixture(t, nil)

	owner := f.newUser(t, "owner")
	delegate := f.newUser(t, "delegate")
	unrelated := f.newUser(t, "unrelated")

	f.grant(t, owner, delegate, true, false, false)

	_, err := f.posts.CreatePost(owner.ID, nil, "owner news")
	req.NoError(err)
	_, err = f.posts.CreatePost(delegate.ID, nil, "personal update")
	req.NoError(err)
	_, err = f.posts.CreatePost(unrelated.ID, nil, "noise")
	req.NoError(err)

	// The delegate's feed holds their posts plus the granting owner's posts
	feed, err := f.posts.UserFeed(delegate.ID)
	req.NoError(err)
	req.Len(feed.Posts, 2)
	req.ElementsMatch([]uuid.UUID{delegate.ID, owner.ID}, feed.FromUsers)

	// Newest first
	req.Equal("personal update", feed.Posts[0].Content)
	req.Equal("owner news", feed.Posts[1].Content)

	// A message-only delegation does not pull posts into the feed
	f.grant(t, unrelated, delegate, false, true, false)
	feed, err = f.posts.UserFeed(delegate.ID)
	req.NoError(err)
	req.Len(feed.Posts, 2)
}

func TestPostService_DelegationLifecycle(t *testing.T) {
	req := require.New(t)
	f := newFixture(t, nil)

	owner := f.newUser(t, "owner")
	delegate := f.newUser(t, "delegate")

	// Granting, re-granting, listing from both sides, then revoking
	d, err := f.posts.CreateDelegation(owner.ID, delegate.ID, true, false, false)
	req.NoError(err)
	req.True(d.CanPost)

	d, err = f.posts.CreateDelegation(owner.ID, delegate.ID, true, true, false)
	req.NoError(err)
	req.True(d.CanMessage)

	granted, err := f.posts.Delegations(owner.ID)
	req.NoError(err)
	req.Len(granted, 1)
	req.True(granted[0].CanMessage)

	received, err := f.posts.ReceivedDelegations(delegate.ID)
	req.NoError(err)
	req.Len(received, 1)
	req.Equal(owner.ID, received[0].OwnerID)

	req.NoError(f.posts.RevokeDelegation(owner.ID, delegate.ID))

	received, err = f.posts.ReceivedDelegations(delegate.ID)
	req.NoError(err)
	req.Empty(received)

	// Acting on the revoked grant fails again
	_, err = f.posts.CreatePost(delegate.ID, &owner.ID, "too late")
	req.ErrorIs(err, errors.ErrNotDelegated)
}
