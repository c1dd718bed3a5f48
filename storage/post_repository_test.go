package storage

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"switchboard/domain"
	"switchboard/errors"
)

func TestPostRepository_UserPostsNewestFirst(t *testing.T) {
	req := require.New(t)
	repo := NewPostRepository(openTestDB(t))
	userID := uuid.New()
	base := time.Now().UTC()

	for i, content := range []string{"oldest", "middle", "newest"} {
		req.NoError(repo.CreatePost(domain.Post{
			ID:        uuid.New(),
			UserID:    userID,
			CreatedBy: userID,
			Content:   content,
			CreatedAt: base.Add(time.Duration(i) * time.Second),
		}))
	}
	// Another user's post stays out of the listing
	req.NoError(repo.CreatePost(domain.Post{
		ID: uuid.New(), UserID: uuid.New(), Content: "other", CreatedAt: base,
	}))

	posts, err := repo.UserPosts(userID)
	req.NoError(err)
	req.Len(posts, 3)
	req.Equal("newest", posts[0].Content)
	req.Equal("middle", posts[1].Content)
	req.Equal("oldest", posts[2].Content)
}

func TestPostRepository_DeleteRemovesBothKeys(t *testing.T) {
	req := require.New(t)
	repo := NewPostRepository(openTestDB(t))
	userID := uuid.New()

	post := domain.Post{ID: uuid.New(), UserID: userID, Content: "bye", CreatedAt: time.Now().UTC()}
	req.NoError(repo.CreatePost(post))

	req.NoError(repo.DeletePost(post.ID))

	_, err := repo.GetPost(post.ID)
	req.ErrorIs(err, errors.ErrPostNotFound)

	posts, err := repo.UserPosts(userID)
	req.NoError(err)
	req.Empty(posts)

	req.ErrorIs(repo.DeletePost(post.ID), errors.ErrPostNotFound)
}
