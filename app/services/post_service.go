package services

import (
	"errors"

	"bloggers/app/models"
	"bloggers/app/repositories"

	log "github.com/sirupsen/logrus"
)

// MsgBloggerNotFound is reported when a post references an unknown blogger.
const MsgBloggerNotFound = "Blogger doesn't exist"

// PostService handles business logic for blog posts
type PostService struct {
	postRepo repositories.PostRepository
}

// NewPostService creates a new PostService
func NewPostService(postRepo repositories.PostRepository) *PostService {
	return &PostService{postRepo: postRepo}
}

// ListPosts returns every post with its blogger name
func (s *PostService) ListPosts() ([]*models.Post, error) {
	return s.postRepo.List()
}

// GetPost retrieves a post by ID
func (s *PostService) GetPost(id int) (*models.Post, error) {
	return s.postRepo.GetByID(id)
}

// CreatePost validates the input and stores a new post linked to its blogger
func (s *PostService) CreatePost(input *models.PostInput) (*models.Post, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	var post models.Post
	input.Apply(&post)
	if err := s.postRepo.Create(&post); err != nil {
		return nil, bloggerFieldError(err)
	}

	log.Debugf("[PostService] created post %d for blogger %d", post.ID, post.BloggerID)
	return &post, nil
}

// UpdatePost validates the input and overwrites every mutable field of the post
func (s *PostService) UpdatePost(id int, input *models.PostInput) (*models.Post, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	post := models.Post{ID: id}
	input.Apply(&post)
	if err := s.postRepo.Update(&post); err != nil {
		return nil, bloggerFieldError(err)
	}

	log.Debugf("[PostService] updated post %d", id)
	return &post, nil
}

// DeletePost deletes a post
func (s *PostService) DeletePost(id int) error {
	if err := s.postRepo.Delete(id); err != nil {
		return err
	}

	log.Debugf("[PostService] deleted post %d", id)
	return nil
}

// bloggerFieldError reports a reference to a missing blogger as a bloggerId
// input error.
func bloggerFieldError(err error) error {
	if errors.Is(err, repositories.ErrBloggerNotFound) {
		return models.NewFieldError("bloggerId", MsgBloggerNotFound)
	}
	return err
}
