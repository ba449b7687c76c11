package repositories

import "bloggers/app/models"

// BloggerRepository defines the interface for blogger data access
type BloggerRepository interface {
	Create(blogger *models.Blogger) error
	GetByID(id int) (*models.Blogger, error)
	List() ([]*models.Blogger, error)
	Update(blogger *models.Blogger) error
	Delete(id int) error
}

// PostRepository defines the interface for post data access.
// Create and Update resolve BloggerName from BloggerID and fail with
// ErrBloggerNotFound when the blogger does not exist.
type PostRepository interface {
	Create(post *models.Post) error
	GetByID(id int) (*models.Post, error)
	List() ([]*models.Post, error)
	Update(post *models.Post) error
	Delete(id int) error
}

var (
	_ BloggerRepository = (*BadgerBloggerRepository)(nil)
	_ PostRepository    = (*BadgerPostRepository)(nil)
)
