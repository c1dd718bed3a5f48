package storage

import (
	stderrors "errors"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"

	"switchboard/domain"
	"switchboard/errors"
)

type PostRepository struct {
	db *badger.DB
}

func NewPostRepository(db *badger.DB) *PostRepository {
	return &PostRepository{db: db}
}

func (r *PostRepository) CreatePost(post domain.Post) error {
	return r.db.Update(func(txn *badger.Txn) error {
		if err := setEncoded(txn, postKey(post.ID), post); err != nil {
			return err
		}
		// Secondary index for per-user listing, newest first on reverse scan.
		return txn.Set(userPostKey(post.UserID, post.CreatedAt, post.ID), nil)
	})
}

func (r *PostRepository) GetPost(id uuid.UUID) (domain.Post, error) {
	var post domain.Post
	err := r.db.View(func(txn *badger.Txn) error {
		return getDecoded(txn, postKey(id), &post)
	})
	if stderrors.Is(err, badger.ErrKeyNotFound) {
		return domain.Post{}, errors.ErrPostNotFound
	}
	return post, err
}

func (r *PostRepository) DeletePost(id uuid.UUID) error {
	return r.db.Update(func(txn *badger.Txn) error {
		var post domain.Post
		if err := getDecoded(txn, postKey(id), &post); err != nil {
			if stderrors.Is(err, badger.ErrKeyNotFound) {
				return errors.ErrPostNotFound
			}
			return err
		}
		if err := txn.Delete(userPostKey(post.UserID, post.CreatedAt, post.ID)); err != nil {
			return err
		}
		return txn.Delete(postKey(id))
	})
}

func (r *PostRepository) UserPosts(userID uuid.UUID) ([]domain.Post, error) {
	prefix := []byte("userpost:" + userID.String() + ":")
	var posts []domain.Post
	err := r.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = false
		opts.Prefix = prefix
		opts.Reverse = true
		it := txn.NewIterator(opts)
		defer it.Close()
		// A reverse iterator must seek past the end of the prefix range.
		seek := append(append([]byte(nil), prefix...), 0xff)
		for it.Seek(seek); it.ValidForPrefix(prefix); it.Next() {
			id, err := suffixUUID(it.Item().Key())
			if err != nil {
				return err
			}
			var post domain.Post
			if err := getDecoded(txn, postKey(id), &post); err != nil {
				return err
			}
			posts = append(posts, post)
		}
		return nil
	})
	return posts, err
}
