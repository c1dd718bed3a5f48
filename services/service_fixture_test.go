package services

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/blugelabs/bluge"
	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"switchboard/contract"
	"switchboard/delegation"
	"switchboard/domain"
	"switchboard/domain/event"
	"switchboard/runtime"
	"switchboard/storage"
)

// classifierFunc adapts a function to the Classifier contract, so each test
// can hand the pipeline exactly the behavior it needs.
type classifierFunc func(ctx context.Context, message domain.ChatMessage, history []domain.ChatMessage) (domain.Categorization, error)

func (f classifierFunc) Categorize(ctx context.Context, message domain.ChatMessage, history []domain.ChatMessage) (domain.Categorization, error) {
	return f(ctx, message, history)
}

func staticClassifier(c domain.Categorization) classifierFunc {
	return func(context.Context, domain.ChatMessage, []domain.ChatMessage) (domain.Categorization, error) {
		return c, nil
	}
}

// fixture wires the full service stack over real stores in temp dirs.
type fixture struct {
	registry      *runtime.Registry
	messaging     *MessagingService
	posts         *PostService
	auth          *AuthService
	categorizer   *Categorizer
	users         storage.IUserRepository
	conversations storage.IConversationRepository
	delegations   storage.IDelegationRepository
	metadata      storage.IMetadataRepository
}

func newFixture(t *testing.T, classifier contract.Classifier) *fixture {
	t.Helper()
	req := require.New(t)
	log := slog.Default()

	db, err := badger.Open(badger.DefaultOptions(t.TempDir()).WithLogger(nil))
	req.NoError(err)
	t.Cleanup(func() { _ = db.Close() })

	blugeWriter, err := bluge.OpenWriter(bluge.DefaultConfig(t.TempDir()))
	req.NoError(err)
	t.Cleanup(func() { _ = blugeWriter.Close() })

	users := storage.NewUserRepository(db, log)
	sessions := storage.NewSessionRepository(db)
	conversations := storage.NewConversationRepository(db, log)
	messages := storage.NewMessageRepository(db, blugeWriter, log)
	metadata := storage.NewMetadataRepository(db)
	readState := storage.NewReadStateRepository(db)
	posts := storage.NewPostRepository(db)
	delegations := storage.NewDelegationRepository(db)

	registry := runtime.NewRegistry(runtime.DefaultCapacity)
	broadcaster := runtime.NewBroadcaster(registry, log)
	engine := delegation.NewEngine(delegations, conversations)

	if classifier == nil {
		classifier = staticClassifier(domain.Categorization{
			Category:  domain.CategoryGeneralInquiry,
			Reasoning: "default",
		})
	}
	categorizer := NewCategorizer(classifier, metadata, broadcaster, 4, time.Second, log)

	return &fixture{
		registry:    registry,
		categorizer: categorizer,
		messaging: NewMessagingService(conversations, messages, metadata,
			readState, users, engine, broadcaster, categorizer, log),
		posts:         NewPostService(posts, delegations, engine, broadcaster, log),
		auth:          NewAuthService(users, sessions),
		users:         users,
		conversations: conversations,
		delegations:   delegations,
		metadata:      metadata,
	}
}

func (f *fixture) newUser(t *testing.T, username string) domain.User {
	t.Helper()
	now := time.Now().UTC()
	user := domain.User{ID: uuid.New(), Username: username, CreatedAt: now, UpdatedAt: now}
	require.NoError(t, f.users.CreateUser(user))
	return user
}

func (f *fixture) grant(t *testing.T, owner, delegate domain.User, canPost, canMessage, canDeletePosts bool) {
	t.Helper()
	require.NoError(t, f.delegations.Upsert(domain.Delegation{
		OwnerID:        owner.ID,
		DelegateID:     delegate.ID,
		CanPost:        canPost,
		CanMessage:     canMessage,
		CanDeletePosts: canDeletePosts,
		CreatedAt:      time.Now().UTC(),
	}))
}

// subscribe opens a live subscription for the user, as a connected client would.
func (f *fixture) subscribe(t *testing.T, user domain.User) *runtime.Subscription {
	t.Helper()
	sub := f.registry.GetOrCreate(user.ID).Subscribe()
	t.Cleanup(sub.Close)
	return sub
}

func nextEvent(t *testing.T, sub *runtime.Subscription) event.Event {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	e, err := sub.Next(ctx)
	require.NoError(t, err)
	return e
}

func requireNoEvent(t *testing.T, sub *runtime.Subscription) {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()
	e, err := sub.Next(ctx)
	require.ErrorIs(t, err, context.DeadlineExceeded, "unexpected event %v", e)
}
