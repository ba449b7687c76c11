package repositories

import (
	"fmt"
	"sync"

	"bloggers/app/models"

	"github.com/dgraph-io/badger/v4"
)

// Repository owns the in-memory Badger instance shared by the blogger and
// post repositories. All write transactions go through writeMu.
type Repository struct {
	db       *badger.DB
	writeMu  sync.Mutex
	Bloggers *BadgerBloggerRepository
	Posts    *BadgerPostRepository
}

// NewRepository opens an in-memory store. Nothing is written to disk and
// all data is lost on Close.
func NewRepository() (*Repository, error) {
	opts := badger.DefaultOptions("").
		WithInMemory(true).
		WithLogger(nil).
		WithNumVersionsToKeep(1).
		WithNumGoroutines(1)
	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("failed to open in-memory store: %w", err)
	}
	r := &Repository{db: db}
	r.Bloggers = NewBadgerBloggerRepository(db, &r.writeMu)
	r.Posts = NewBadgerPostRepository(db, &r.writeMu)
	return r, nil
}

func (r *Repository) Close() error {
	return r.db.Close()
}

// Seed stores the given bloggers and posts with their IDs as provided and
// advances both sequences past the highest seeded ID. Post blogger names
// are taken from the referenced seeded blogger.
func (r *Repository) Seed(bloggers []*models.Blogger, posts []*models.Post) error {
	byID := make(map[int]*models.Blogger, len(bloggers))
	for _, b := range bloggers {
		if b.ID <= 0 {
			return fmt.Errorf("seed blogger %q: id must be positive", b.Name)
		}
		if err := b.Validate(); err != nil {
			return fmt.Errorf("seed blogger %d: %w", b.ID, err)
		}
		byID[b.ID] = b
	}
	for _, p := range posts {
		if p.ID <= 0 {
			return fmt.Errorf("seed post %q: id must be positive", p.Title)
		}
		if err := p.SetBlogger(byID[p.BloggerID]); err != nil {
			return fmt.Errorf("seed post %d: %w", p.ID, ErrBloggerNotFound)
		}
	}

	return update(r.db, &r.writeMu, func(txn *badger.Txn) error {
		for _, b := range bloggers {
			if err := setEntity(txn, entityKey(BloggerKeyPrefix, b.ID), b); err != nil {
				return err
			}
			if err := raiseSequence(txn, BloggerSeqKey, b.ID); err != nil {
				return err
			}
		}
		for _, p := range posts {
			if err := setEntity(txn, entityKey(PostKeyPrefix, p.ID), p); err != nil {
				return err
			}
			if err := raiseSequence(txn, PostSeqKey, p.ID); err != nil {
				return err
			}
		}
		return nil
	})
}

// Clear removes every entity and resets both sequences. Tests use it to
// start from an empty store without reopening Badger.
func (r *Repository) Clear() error {
	r.writeMu.Lock()
	defer r.writeMu.Unlock()
	return r.db.DropAll()
}

func raiseSequence(txn *badger.Txn, seqKey string, id int) error {
	current, err := currentID(txn, seqKey)
	if err != nil {
		return err
	}
	if id <= current {
		return nil
	}
	return setSequence(txn, seqKey, id)
}
