package services

import (
	"log/slog"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/samber/lo"

	"switchboard/contract"
	"switchboard/delegation"
	"switchboard/domain"
	"switchboard/domain/event"
	"switchboard/storage"
)

type PostService struct {
	posts       storage.IPostRepository
	delegations storage.IDelegationRepository
	engine      *delegation.Engine
	publisher   contract.Publisher
	log         *slog.Logger
}

func NewPostService(posts storage.IPostRepository, delegations storage.IDelegationRepository,
	engine *delegation.Engine, publisher contract.Publisher, log *slog.Logger) *PostService {
	return &PostService{
		posts:       posts,
		delegations: delegations,
		engine:      engine,
		publisher:   publisher,
		log:         log,
	}
}

// Feed is a user's timeline: their own posts plus the posts of every owner
// who granted them the post capability.
type Feed struct {
	Posts     []domain.Post `json:"posts"`
	FromUsers []uuid.UUID   `json:"fromUsers"`
}

// CreatePost creates a post attributed to ownerID (the acted-as identity
// when actAs is set) while recording the actual author in CreatedBy.
//
// NewPost goes to the owner, the creator when they differ, and every
// delegate of the owner — the set of identities managing that presence.
func (s *PostService) CreatePost(actorID uuid.UUID, actAs *uuid.UUID, content string) (domain.Post, error) {
	ownerID := actorID
	if actAs != nil {
		ownerID = *actAs
	}
	if err := s.engine.Authorize(ownerID, actorID, domain.CapPost); err != nil {
		return domain.Post{}, err
	}

	now := time.Now().UTC()
	post := domain.Post{
		ID:        uuid.New(),
		UserID:    ownerID,
		CreatedBy: actorID,
		Content:   content,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.posts.CreatePost(post); err != nil {
		return domain.Post{}, err
	}

	recipients := []uuid.UUID{ownerID}
	if ownerID != actorID {
		recipients = append(recipients, actorID)
	}
	if grants, err := s.delegations.ByOwner(ownerID); err == nil {
		for _, d := range grants {
			recipients = append(recipients, d.DelegateID)
		}
	} else {
		s.log.Warn("failed to resolve delegate recipients", "owner_id", ownerID, "err", err)
	}

	s.publisher.Publish(lo.Uniq(recipients), event.NewPost{Post: post})
	return post, nil
}

// DeletePost removes a post when the actor owns it or holds the
// delete-posts capability from the owner.
func (s *PostService) DeletePost(actorID, postID uuid.UUID) error {
	post, err := s.posts.GetPost(postID)
	if err != nil {
		return err
	}
	if err := s.engine.Authorize(post.UserID, actorID, domain.CapDeletePosts); err != nil {
		return err
	}
	return s.posts.DeletePost(postID)
}

func (s *PostService) UserPosts(userID uuid.UUID) ([]domain.Post, error) {
	return s.posts.UserPosts(userID)
}

func (s *PostService) UserFeed(actorID uuid.UUID) (Feed, error) {
	posts, err := s.posts.UserPosts(actorID)
	if err != nil {
		return Feed{}, err
	}
	fromUsers := []uuid.UUID{actorID}

	received, err := s.delegations.ByDelegate(actorID)
	if err != nil {
		return Feed{}, err
	}
	for _, d := range received {
		if !d.CanPost {
			continue
		}
		ownerPosts, err := s.posts.UserPosts(d.OwnerID)
		if err != nil {
			return Feed{}, err
		}
		posts = append(posts, ownerPosts...)
		fromUsers = append(fromUsers, d.OwnerID)
	}

	sort.Slice(posts, func(i, j int) bool {
		return posts[i].CreatedAt.After(posts[j].CreatedAt)
	})
	return Feed{Posts: posts, FromUsers: fromUsers}, nil
}

// CreateDelegation grants (or re-grants, overwriting flags) a delegation
// from the acting owner to delegateID.
func (s *PostService) CreateDelegation(ownerID, delegateID uuid.UUID, canPost, canMessage, canDeletePosts bool) (domain.Delegation, error) {
	d := domain.Delegation{
		OwnerID:        ownerID,
		DelegateID:     delegateID,
		CanPost:        canPost,
		CanMessage:     canMessage,
		CanDeletePosts: canDeletePosts,
		CreatedAt:      time.Now().UTC(),
	}
	if err := s.delegations.Upsert(d); err != nil {
		return domain.Delegation{}, err
	}
	return d, nil
}

func (s *PostService) Delegations(ownerID uuid.UUID) ([]domain.Delegation, error) {
	return s.delegations.ByOwner(ownerID)
}

func (s *PostService) ReceivedDelegations(delegateID uuid.UUID) ([]domain.Delegation, error) {
	return s.delegations.ByDelegate(delegateID)
}

func (s *PostService) RevokeDelegation(ownerID, delegateID uuid.UUID) error {
	return s.delegations.Delete(ownerID, delegateID)
}
