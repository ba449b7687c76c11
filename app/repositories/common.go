package repositories

import (
	"encoding/binary"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/dgraph-io/badger/v4"
)

const (
	// Key prefixes for different entity types
	BloggerKeyPrefix = "blogger:"
	PostKeyPrefix    = "post:"

	// Sequence keys for auto-incrementing IDs
	BloggerSeqKey = "seq:blogger"
	PostSeqKey    = "seq:post"

	maxTxnRetries = 3
)

var (
	ErrNotFound        = errors.New("record not found")
	ErrBloggerNotFound = errors.New("blogger not found")
)

// entityKey builds the key of an entity. The id is big-endian encoded so
// that prefix iteration yields entities in id order.
func entityKey(prefix string, id int) []byte {
	key := make([]byte, len(prefix)+8)
	copy(key, prefix)
	binary.BigEndian.PutUint64(key[len(prefix):], uint64(id))
	return key
}

// getNextID gets the next available ID for a given sequence key
func getNextID(txn *badger.Txn, seqKey string) (int, error) {
	current, err := currentID(txn, seqKey)
	if err != nil {
		return 0, err
	}
	id := current + 1
	if err := setSequence(txn, seqKey, id); err != nil {
		return 0, err
	}
	return id, nil
}

// currentID returns the last ID handed out by a sequence, 0 if unused.
func currentID(txn *badger.Txn, seqKey string) (int, error) {
	item, err := txn.Get([]byte(seqKey))
	if errors.Is(err, badger.ErrKeyNotFound) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("failed to get sequence %s: %w", seqKey, err)
	}

	var id int
	err = item.Value(func(val []byte) error {
		if len(val) != 8 {
			return fmt.Errorf("corrupt sequence %s: %d bytes", seqKey, len(val))
		}
		id = int(binary.BigEndian.Uint64(val))
		return nil
	})
	return id, err
}

// setSequence stores id as the last ID of a sequence.
func setSequence(txn *badger.Txn, seqKey string, id int) error {
	val := make([]byte, 8)
	binary.BigEndian.PutUint64(val, uint64(id))
	if err := txn.Set([]byte(seqKey), val); err != nil {
		return fmt.Errorf("failed to update sequence %s: %w", seqKey, err)
	}
	return nil
}

// getEntity loads the value stored at key into entity.
func getEntity(txn *badger.Txn, key []byte, entity interface{}) error {
	item, err := txn.Get(key)
	if errors.Is(err, badger.ErrKeyNotFound) {
		return ErrNotFound
	}
	if err != nil {
		return err
	}
	return item.Value(func(val []byte) error {
		return unmarshalEntity(val, entity)
	})
}

// setEntity stores entity at key.
func setEntity(txn *badger.Txn, key []byte, entity interface{}) error {
	data, err := marshalEntity(entity)
	if err != nil {
		return err
	}
	return txn.Set(key, data)
}

// marshalEntity marshals an entity to JSON
func marshalEntity(entity interface{}) ([]byte, error) {
	data, err := json.Marshal(entity)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal entity: %w", err)
	}
	return data, nil
}

// unmarshalEntity unmarshals JSON data into an entity
func unmarshalEntity(data []byte, entity interface{}) error {
	if err := json.Unmarshal(data, entity); err != nil {
		return fmt.Errorf("failed to unmarshal entity: %w", err)
	}
	return nil
}

// deleteEntity removes key, reporting ErrNotFound when it does not exist.
func deleteEntity(txn *badger.Txn, key []byte) error {
	if _, err := txn.Get(key); err != nil {
		if errors.Is(err, badger.ErrKeyNotFound) {
			return ErrNotFound
		}
		return err
	}
	return txn.Delete(key)
}

// update runs fn in a read-write transaction while holding mu, so writers
// never race each other on the sequence or entity keys. A commit that still
// loses a conflict is retried.
func update(db *badger.DB, mu *sync.Mutex, fn func(txn *badger.Txn) error) error {
	mu.Lock()
	defer mu.Unlock()

	var err error
	for i := 0; i < maxTxnRetries; i++ {
		err = db.Update(fn)
		if !errors.Is(err, badger.ErrConflict) {
			return err
		}
	}
	return err
}

// iteratePrefix calls fn with the value of every key under prefix, in key order.
func iteratePrefix(txn *badger.Txn, prefix string, fn func(key, val []byte) error) error {
	opts := badger.DefaultIteratorOptions
	opts.Prefix = []byte(prefix)
	it := txn.NewIterator(opts)
	defer it.Close()

	for it.Seek(opts.Prefix); it.ValidForPrefix(opts.Prefix); it.Next() {
		item := it.Item()
		key := item.KeyCopy(nil)
		err := item.Value(func(val []byte) error {
			return fn(key, val)
		})
		if err != nil {
			return err
		}
	}
	return nil
}
