package repositories

import (
	"errors"
	"sync"

	"bloggers/app/models"

	"github.com/dgraph-io/badger/v4"
)

// BadgerPostRepository implements PostRepository using BadgerDB
type BadgerPostRepository struct {
	db      *badger.DB
	writeMu *sync.Mutex
}

// NewBadgerPostRepository creates a new BadgerPostRepository
func NewBadgerPostRepository(db *badger.DB, writeMu *sync.Mutex) *BadgerPostRepository {
	return &BadgerPostRepository{db: db, writeMu: writeMu}
}

// Create creates a new post
func (r *BadgerPostRepository) Create(post *models.Post) error {
	return update(r.db, r.writeMu, func(txn *badger.Txn) error {
		if err := linkBlogger(txn, post); err != nil {
			return err
		}

		id, err := getNextID(txn, PostSeqKey)
		if err != nil {
			return err
		}
		post.ID = id

		return setEntity(txn, entityKey(PostKeyPrefix, post.ID), post)
	})
}

// GetByID retrieves a post by ID
func (r *BadgerPostRepository) GetByID(id int) (*models.Post, error) {
	var post models.Post
	err := r.db.View(func(txn *badger.Txn) error {
		return getEntity(txn, entityKey(PostKeyPrefix, id), &post)
	})
	if err != nil {
		return nil, err
	}
	return &post, nil
}

// List retrieves all posts in creation order
func (r *BadgerPostRepository) List() ([]*models.Post, error) {
	posts := []*models.Post{}
	err := r.db.View(func(txn *badger.Txn) error {
		return iteratePrefix(txn, PostKeyPrefix, func(_, val []byte) error {
			var post models.Post
			if err := unmarshalEntity(val, &post); err != nil {
				return err
			}
			posts = append(posts, &post)
			return nil
		})
	})
	if err != nil {
		return nil, err
	}
	return posts, nil
}

// Update updates an existing post
func (r *BadgerPostRepository) Update(post *models.Post) error {
	return update(r.db, r.writeMu, func(txn *badger.Txn) error {
		key := entityKey(PostKeyPrefix, post.ID)

		// Verify post exists
		_, err := txn.Get(key)
		if errors.Is(err, badger.ErrKeyNotFound) {
			return ErrNotFound
		}
		if err != nil {
			return err
		}

		if err := linkBlogger(txn, post); err != nil {
			return err
		}
		return setEntity(txn, key, post)
	})
}

// Delete deletes a post by ID
func (r *BadgerPostRepository) Delete(id int) error {
	return update(r.db, r.writeMu, func(txn *badger.Txn) error {
		return deleteEntity(txn, entityKey(PostKeyPrefix, id))
	})
}

// linkBlogger loads the blogger referenced by post and copies its name.
func linkBlogger(txn *badger.Txn, post *models.Post) error {
	var blogger models.Blogger
	err := getEntity(txn, entityKey(BloggerKeyPrefix, post.BloggerID), &blogger)
	if errors.Is(err, ErrNotFound) {
		return ErrBloggerNotFound
	}
	if err != nil {
		return err
	}
	return post.SetBlogger(&blogger)
}
