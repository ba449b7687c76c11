package services

import (
	"bloggers/app/models"
	"bloggers/app/repositories"

	log "github.com/sirupsen/logrus"
)

// BloggerService handles business logic for bloggers
type BloggerService struct {
	bloggerRepo repositories.BloggerRepository
}

// NewBloggerService creates a new BloggerService
func NewBloggerService(bloggerRepo repositories.BloggerRepository) *BloggerService {
	return &BloggerService{bloggerRepo: bloggerRepo}
}

// ListBloggers returns every blogger
func (s *BloggerService) ListBloggers() ([]*models.Blogger, error) {
	return s.bloggerRepo.List()
}

// GetBlogger retrieves a blogger by ID
func (s *BloggerService) GetBlogger(id int) (*models.Blogger, error) {
	return s.bloggerRepo.GetByID(id)
}

// CreateBlogger validates the input and stores a new blogger
func (s *BloggerService) CreateBlogger(input *models.BloggerInput) (*models.Blogger, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	var blogger models.Blogger
	input.Apply(&blogger)
	if err := s.bloggerRepo.Create(&blogger); err != nil {
		return nil, err
	}

	log.Debugf("[BloggerService] created blogger %d", blogger.ID)
	return &blogger, nil
}

// UpdateBlogger validates the input and overwrites the blogger's name and URL
func (s *BloggerService) UpdateBlogger(id int, input *models.BloggerInput) (*models.Blogger, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	blogger := models.Blogger{ID: id}
	input.Apply(&blogger)
	if err := s.bloggerRepo.Update(&blogger); err != nil {
		return nil, err
	}

	log.Debugf("[BloggerService] updated blogger %d", id)
	return &blogger, nil
}

// DeleteBlogger deletes a blogger. Its posts are left in place.
func (s *BloggerService) DeleteBlogger(id int) error {
	if err := s.bloggerRepo.Delete(id); err != nil {
		return err
	}

	log.Debugf("[BloggerService] deleted blogger %d", id)
	return nil
}
