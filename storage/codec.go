package storage

import (
	"fmt"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
	"github.com/vmihailenco/msgpack/v5"
)

// Key layout. Every entity lives under its own prefix; composite keys embed
// a zero-padded UnixNano so lexicographic iteration is chronological.
func userKey(id uuid.UUID) []byte        { return []byte("user:" + id.String()) }
func usernameKey(username string) []byte { return []byte("username:" + username) }
func sessionKey(id uuid.UUID) []byte     { return []byte("session:" + id.String()) }
func convKey(id uuid.UUID) []byte        { return []byte("conv:" + id.String()) }
func postKey(id uuid.UUID) []byte        { return []byte("post:" + id.String()) }

func memberKey(conversationID, userID uuid.UUID) []byte {
	return []byte("member:" + conversationID.String() + ":" + userID.String())
}

func userConvKey(userID, conversationID uuid.UUID) []byte {
	return []byte("userconv:" + userID.String() + ":" + conversationID.String())
}

func messageKey(conversationID uuid.UUID, at time.Time, id uuid.UUID) []byte {
	return []byte(fmt.Sprintf("msg:%s:%020d:%s", conversationID, at.UnixNano(), id))
}

func messageRefKey(id uuid.UUID) []byte { return []byte("msgid:" + id.String()) }

func metadataKey(userID, messageID uuid.UUID) []byte {
	return []byte("msgmeta:" + userID.String() + ":" + messageID.String())
}

func userPostKey(userID uuid.UUID, at time.Time, id uuid.UUID) []byte {
	return []byte(fmt.Sprintf("userpost:%s:%020d:%s", userID, at.UnixNano(), id))
}

func delegationKey(ownerID, delegateID uuid.UUID) []byte {
	return []byte("delegation:" + ownerID.String() + ":" + delegateID.String())
}

func delegateIndexKey(delegateID, ownerID uuid.UUID) []byte {
	return []byte("delegate:" + delegateID.String() + ":" + ownerID.String())
}

func readKey(userID, conversationID uuid.UUID) []byte {
	return []byte("read:" + userID.String() + ":" + conversationID.String())
}

func encode(v any) ([]byte, error) {
	return msgpack.Marshal(v)
}

func decode(data []byte, v any) error {
	return msgpack.Unmarshal(data, v)
}

// getDecoded fetches and decodes a single value inside an open transaction.
// Returns badger.ErrKeyNotFound untouched so callers can map it themselves.
func getDecoded(txn *badger.Txn, key []byte, v any) error {
	item, err := txn.Get(key)
	if err != nil {
		return err
	}
	return item.Value(func(val []byte) error {
		return decode(val, v)
	})
}

// setEncoded encodes and stores a single value inside an open transaction.
func setEncoded(txn *badger.Txn, key []byte, v any) error {
	data, err := encode(v)
	if err != nil {
		return err
	}
	return txn.Set(key, data)
}

// suffixUUID extracts the trailing UUID of a composite key.
func suffixUUID(key []byte) (uuid.UUID, error) {
	s := string(key)
	if len(s) < 36 {
		return uuid.Nil, fmt.Errorf("key too short for uuid suffix: %q", s)
	}
	return uuid.Parse(s[len(s)-36:])
}
