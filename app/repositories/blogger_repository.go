package repositories

import (
	"fmt"
	"sync"

	"bloggers/app/models"

	"github.com/dgraph-io/badger/v4"
)

// BadgerBloggerRepository implements BloggerRepository using BadgerDB
type BadgerBloggerRepository struct {
	db      *badger.DB
	writeMu *sync.Mutex
}

// NewBadgerBloggerRepository creates a new BadgerBloggerRepository
func NewBadgerBloggerRepository(db *badger.DB, writeMu *sync.Mutex) *BadgerBloggerRepository {
	return &BadgerBloggerRepository{db: db, writeMu: writeMu}
}

// Create assigns the next blogger ID and stores the blogger
func (r *BadgerBloggerRepository) Create(blogger *models.Blogger) error {
	return update(r.db, r.writeMu, func(txn *badger.Txn) error {
		id, err := getNextID(txn, BloggerSeqKey)
		if err != nil {
			return err
		}
		blogger.ID = id

		return setEntity(txn, entityKey(BloggerKeyPrefix, blogger.ID), blogger)
	})
}

// GetByID retrieves a blogger by ID
func (r *BadgerBloggerRepository) GetByID(id int) (*models.Blogger, error) {
	var blogger models.Blogger
	err := r.db.View(func(txn *badger.Txn) error {
		return getEntity(txn, entityKey(BloggerKeyPrefix, id), &blogger)
	})
	if err != nil {
		return nil, err
	}
	return &blogger, nil
}

// List retrieves all bloggers in creation order
func (r *BadgerBloggerRepository) List() ([]*models.Blogger, error) {
	bloggers := []*models.Blogger{}
	err := r.db.View(func(txn *badger.Txn) error {
		return iteratePrefix(txn, BloggerKeyPrefix, func(_, val []byte) error {
			var blogger models.Blogger
			if err := unmarshalEntity(val, &blogger); err != nil {
				return err
			}
			bloggers = append(bloggers, &blogger)
			return nil
		})
	})
	if err != nil {
		return nil, err
	}
	return bloggers, nil
}

// Update overwrites an existing blogger and refreshes the blogger name
// copied into its posts, all in one transaction
func (r *BadgerBloggerRepository) Update(blogger *models.Blogger) error {
	return update(r.db, r.writeMu, func(txn *badger.Txn) error {
		key := entityKey(BloggerKeyPrefix, blogger.ID)

		var existing models.Blogger
		if err := getEntity(txn, key, &existing); err != nil {
			return err
		}
		if err := setEntity(txn, key, blogger); err != nil {
			return err
		}
		if existing.Name == blogger.Name {
			return nil
		}

		// Collect first: writes are not allowed while the iterator is open.
		var stale []*models.Post
		err := iteratePrefix(txn, PostKeyPrefix, func(_, val []byte) error {
			var post models.Post
			if err := unmarshalEntity(val, &post); err != nil {
				return err
			}
			if post.BloggerID == blogger.ID {
				stale = append(stale, &post)
			}
			return nil
		})
		if err != nil {
			return fmt.Errorf("failed to scan posts of blogger %d: %w", blogger.ID, err)
		}

		for _, post := range stale {
			post.BloggerName = blogger.Name
			if err := setEntity(txn, entityKey(PostKeyPrefix, post.ID), post); err != nil {
				return err
			}
		}
		return nil
	})
}

// Delete deletes a blogger by ID. Posts referencing the blogger are kept.
func (r *BadgerBloggerRepository) Delete(id int) error {
	return update(r.db, r.writeMu, func(txn *badger.Txn) error {
		return deleteEntity(txn, entityKey(BloggerKeyPrefix, id))
	})
}
