package storage

import (
	stderrors "errors"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"

	"switchboard/domain"
	"switchboard/errors"
)

// DelegationRepository stores at most one delegation per ordered
// (owner, delegate) pair, plus a reverse index for "delegations received".
type DelegationRepository struct {
	db *badger.DB
}

func NewDelegationRepository(db *badger.DB) *DelegationRepository {
	return &DelegationRepository{db: db}
}

// Upsert creates or replaces the grant for the pair. Re-granting with new
// flags is how capabilities are adjusted.
func (r *DelegationRepository) Upsert(d domain.Delegation) error {
	return r.db.Update(func(txn *badger.Txn) error {
		if err := setEncoded(txn, delegationKey(d.OwnerID, d.DelegateID), d); err != nil {
			return err
		}
		return txn.Set(delegateIndexKey(d.DelegateID, d.OwnerID), nil)
	})
}

func (r *DelegationRepository) Get(ownerID, delegateID uuid.UUID) (domain.Delegation, bool, error) {
	var d domain.Delegation
	err := r.db.View(func(txn *badger.Txn) error {
		return getDecoded(txn, delegationKey(ownerID, delegateID), &d)
	})
	if stderrors.Is(err, badger.ErrKeyNotFound) {
		return domain.Delegation{}, false, nil
	}
	if err != nil {
		return domain.Delegation{}, false, err
	}
	return d, true, nil
}

func (r *DelegationRepository) Delete(ownerID, delegateID uuid.UUID) error {
	return r.db.Update(func(txn *badger.Txn) error {
		if _, err := txn.Get(delegationKey(ownerID, delegateID)); err != nil {
			if stderrors.Is(err, badger.ErrKeyNotFound) {
				return errors.ErrDelegationNotFound
			}
			return err
		}
		if err := txn.Delete(delegateIndexKey(delegateID, ownerID)); err != nil {
			return err
		}
		return txn.Delete(delegationKey(ownerID, delegateID))
	})
}

func (r *DelegationRepository) ByOwner(ownerID uuid.UUID) ([]domain.Delegation, error) {
	prefix := []byte("delegation:" + ownerID.String() + ":")
	var out []domain.Delegation
	err := r.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = prefix
		it := txn.NewIterator(opts)
		defer it.Close()
		for it.Rewind(); it.ValidForPrefix(prefix); it.Next() {
			var d domain.Delegation
			if err := it.Item().Value(func(val []byte) error {
				return decode(val, &d)
			}); err != nil {
				return err
			}
			out = append(out, d)
		}
		return nil
	})
	return out, err
}

func (r *DelegationRepository) ByDelegate(delegateID uuid.UUID) ([]domain.Delegation, error) {
	prefix := []byte("delegate:" + delegateID.String() + ":")
	var out []domain.Delegation
	err := r.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = false
		opts.Prefix = prefix
		it := txn.NewIterator(opts)
		defer it.Close()
		for it.Rewind(); it.ValidForPrefix(prefix); it.Next() {
			ownerID, err := suffixUUID(it.Item().Key())
			if err != nil {
				return err
			}
			var d domain.Delegation
			if err := getDecoded(txn, delegationKey(ownerID, delegateID), &d); err != nil {
				return err
			}
			out = append(out, d)
		}
		return nil
	})
	return out, err
}
