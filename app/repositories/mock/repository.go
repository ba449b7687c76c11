package mock

import (
	"sort"
	"sync"

	"bloggers/app/models"
	"bloggers/app/repositories"
)

// store holds the maps shared by the mock repositories so that posts can
// resolve and follow their bloggers like the Badger implementation does.
type store struct {
	bloggers      map[int]*models.Blogger
	posts         map[int]*models.Post
	nextBloggerID int
	nextPostID    int
	mutex         sync.RWMutex
}

type BloggerRepository struct {
	*store
}

type PostRepository struct {
	*store
}

// NewRepositories returns blogger and post repositories backed by the same maps.
func NewRepositories() (*BloggerRepository, *PostRepository) {
	s := &store{}
	s.reset()
	return &BloggerRepository{s}, &PostRepository{s}
}

func (s *store) reset() {
	s.bloggers = make(map[int]*models.Blogger)
	s.posts = make(map[int]*models.Post)
	s.nextBloggerID = 1
	s.nextPostID = 1
}

// BloggerRepository implementation
func (m *BloggerRepository) Create(blogger *models.Blogger) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	blogger.ID = m.nextBloggerID
	m.nextBloggerID++
	stored := *blogger
	m.bloggers[blogger.ID] = &stored
	return nil
}

func (m *BloggerRepository) GetByID(id int) (*models.Blogger, error) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	blogger, exists := m.bloggers[id]
	if !exists {
		return nil, repositories.ErrNotFound
	}
	out := *blogger
	return &out, nil
}

func (m *BloggerRepository) List() ([]*models.Blogger, error) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	bloggers := make([]*models.Blogger, 0, len(m.bloggers))
	for _, blogger := range m.bloggers {
		out := *blogger
		bloggers = append(bloggers, &out)
	}
	sort.Slice(bloggers, func(i, j int) bool {
		return bloggers[i].ID < bloggers[j].ID
	})
	return bloggers, nil
}

func (m *BloggerRepository) Update(blogger *models.Blogger) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	if _, exists := m.bloggers[blogger.ID]; !exists {
		return repositories.ErrNotFound
	}
	stored := *blogger
	m.bloggers[blogger.ID] = &stored
	for _, post := range m.posts {
		if post.BloggerID == blogger.ID {
			post.BloggerName = blogger.Name
		}
	}
	return nil
}

func (m *BloggerRepository) Delete(id int) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	if _, exists := m.bloggers[id]; !exists {
		return repositories.ErrNotFound
	}
	delete(m.bloggers, id)
	return nil
}

// PostRepository implementation
func (m *PostRepository) Create(post *models.Post) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	blogger, exists := m.bloggers[post.BloggerID]
	if !exists {
		return repositories.ErrBloggerNotFound
	}
	if err := post.SetBlogger(blogger); err != nil {
		return err
	}

	post.ID = m.nextPostID
	m.nextPostID++
	stored := *post
	m.posts[post.ID] = &stored
	return nil
}

func (m *PostRepository) GetByID(id int) (*models.Post, error) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	post, exists := m.posts[id]
	if !exists {
		return nil, repositories.ErrNotFound
	}
	out := *post
	return &out, nil
}

func (m *PostRepository) List() ([]*models.Post, error) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	posts := make([]*models.Post, 0, len(m.posts))
	for _, post := range m.posts {
		out := *post
		posts = append(posts, &out)
	}
	sort.Slice(posts, func(i, j int) bool {
		return posts[i].ID < posts[j].ID
	})
	return posts, nil
}

func (m *PostRepository) Update(post *models.Post) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	if _, exists := m.posts[post.ID]; !exists {
		return repositories.ErrNotFound
	}
	blogger, exists := m.bloggers[post.BloggerID]
	if !exists {
		return repositories.ErrBloggerNotFound
	}
	if err := post.SetBlogger(blogger); err != nil {
		return err
	}
	stored := *post
	m.posts[post.ID] = &stored
	return nil
}

func (m *PostRepository) Delete(id int) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	if _, exists := m.posts[id]; !exists {
		return repositories.ErrNotFound
	}
	delete(m.posts, id)
	return nil
}

var (
	_ repositories.BloggerRepository = (*BloggerRepository)(nil)
	_ repositories.PostRepository    = (*PostRepository)(nil)
)
