package storage

import (
	stderrors "errors"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"

	"switchboard/domain"
)

// MetadataRepository stores the per-(recipient, message) categorization
// produced by the classifier pipeline.
type MetadataRepository struct {
	db *badger.DB
}

func NewMetadataRepository(db *badger.DB) *MetadataRepository {
	return &MetadataRepository{db: db}
}

// UpsertCategorization overwrites any earlier result for the pair: a later
// classification always wins.
func (r *MetadataRepository) UpsertCategorization(userID, messageID uuid.UUID, c domain.Categorization) error {
	return r.db.Update(func(txn *badger.Txn) error {
		return setEncoded(txn, metadataKey(userID, messageID), c)
	})
}

func (r *MetadataRepository) Categorization(userID, messageID uuid.UUID) (domain.Categorization, bool, error) {
	var c domain.Categorization
	err := r.db.View(func(txn *badger.Txn) error {
		return getDecoded(txn, metadataKey(userID, messageID), &c)
	})
	if stderrors.Is(err, badger.ErrKeyNotFound) {
		return domain.Categorization{}, false, nil
	}
	if err != nil {
		return domain.Categorization{}, false, err
	}
	return c, true, nil
}
