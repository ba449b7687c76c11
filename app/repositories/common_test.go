package repositories

import (
	"bytes"
	"testing"

	"bloggers/app/models"

	"github.com/dgraph-io/badger/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRepository(t *testing.T) *Repository {
	t.Helper()
	repo, err := NewRepository()
	require.NoError(t, err)
	t.Cleanup(func() {
		repo.Close()
	})
	return repo
}

func TestGetNextID(t *testing.T) {
	repo := newTestRepository(t)
	db := repo.db

	t.Run("first ID", func(t *testing.T) {
		err := db.Update(func(txn *badger.Txn) error {
			id, err := getNextID(txn, PostSeqKey)
			assert.NoError(t, err)
			assert.Equal(t, 1, id)
			return nil
		})
		assert.NoError(t, err)
	})

	t.Run("sequential IDs", func(t *testing.T) {
		err := db.Update(func(txn *badger.Txn) error {
			for i := 2; i <= 5; i++ {
				id, err := getNextID(txn, PostSeqKey)
				assert.NoError(t, err)
				assert.Equal(t, i, id)
			}
			return nil
		})
		assert.NoError(t, err)
	})

	t.Run("different sequence keys", func(t *testing.T) {
		err := db.Update(func(txn *badger.Txn) error {
			_, err := getNextID(txn, PostSeqKey)
			assert.NoError(t, err)

			bloggerID, err := getNextID(txn, BloggerSeqKey)
			assert.NoError(t, err)
			assert.Equal(t, 1, bloggerID, "Blogger sequence should start from 1")

			return nil
		})
		assert.NoError(t, err)
	})

	t.Run("persistence", func(t *testing.T) {
		err := db.Update(func(txn *badger.Txn) error {
			id, err := getNextID(txn, "test:seq")
			assert.NoError(t, err)
			assert.Equal(t, 1, id)
			return nil
		})
		assert.NoError(t, err)

		// Second transaction should continue from last ID
		err = db.Update(func(txn *badger.Txn) error {
			id, err := getNextID(txn, "test:seq")
			assert.NoError(t, err)
			assert.Equal(t, 2, id)
			return nil
		})
		assert.NoError(t, err)
	})
}

func TestEntityKeyOrdering(t *testing.T) {
	k2 := entityKey(PostKeyPrefix, 2)
	k10 := entityKey(PostKeyPrefix, 10)
	k300 := entityKey(PostKeyPrefix, 300)

	assert.True(t, bytes.HasPrefix(k2, []byte(PostKeyPrefix)))
	assert.Equal(t, -1, bytes.Compare(k2, k10))
	assert.Equal(t, -1, bytes.Compare(k10, k300))
	assert.NotEqual(t, entityKey(BloggerKeyPrefix, 2), k2)
}

func TestMarshalEntity(t *testing.T) {
	t.Run("marshal post", func(t *testing.T) {
		post := &models.Post{
			ID:          1,
			Title:       "Test Post",
			Content:     "Test Content",
			BloggerID:   2,
			BloggerName: "Sara",
		}

		data, err := marshalEntity(post)
		assert.NoError(t, err)
		assert.Contains(t, string(data), `"bloggerName":"Sara"`)

		var unmarshaled models.Post
		err = unmarshalEntity(data, &unmarshaled)
		assert.NoError(t, err)
		assert.Equal(t, *post, unmarshaled)
	})

	t.Run("marshal invalid entity", func(t *testing.T) {
		invalidEntity := struct {
			Ch chan int
		}{
			Ch: make(chan int),
		}

		_, err := marshalEntity(invalidEntity)
		assert.Error(t, err)
	})

	t.Run("unmarshal invalid JSON", func(t *testing.T) {
		var blogger models.Blogger
		err := unmarshalEntity([]byte(`{"id":1,invalid json}`), &blogger)
		assert.Error(t, err)
	})
}

func TestDeleteEntity(t *testing.T) {
	repo := newTestRepository(t)
	key := entityKey(BloggerKeyPrefix, 7)

	err := update(repo.db, &repo.writeMu, func(txn *badger.Txn) error {
		return deleteEntity(txn, key)
	})
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, update(repo.db, &repo.writeMu, func(txn *badger.Txn) error {
		return setEntity(txn, key, &models.Blogger{ID: 7, Name: "Temp"})
	}))
	require.NoError(t, update(repo.db, &repo.writeMu, func(txn *badger.Txn) error {
		return deleteEntity(txn, key)
	}))

	err = repo.db.View(func(txn *badger.Txn) error {
		var b models.Blogger
		return getEntity(txn, key, &b)
	})
	assert.ErrorIs(t, err, ErrNotFound)
}
