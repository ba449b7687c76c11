package controllers

import (
	"net/http"

	"bloggers/app/models"
	"bloggers/app/services"

	log "github.com/sirupsen/logrus"
)

// PostController handles HTTP requests for blog posts
type PostController struct {
	postService *services.PostService
}

// NewPostController creates a new PostController
func NewPostController(postService *services.PostService) *PostController {
	return &PostController{postService: postService}
}

// Index handles listing all posts
func (pc *PostController) Index(w http.ResponseWriter, r *http.Request) {
	posts, err := pc.postService.ListPosts()
	if err != nil {
		sendServiceError(w, "PostController", err)
		return
	}
	sendJSON(w, http.StatusOK, posts)
}

// Show handles displaying a single post
func (pc *PostController) Show(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r)
	if !ok {
		sendInvalidID(w)
		return
	}

	post, err := pc.postService.GetPost(id)
	if err != nil {
		sendServiceError(w, "PostController", err)
		return
	}
	sendJSON(w, http.StatusOK, post)
}

// Create handles creating a new post
func (pc *PostController) Create(w http.ResponseWriter, r *http.Request) {
	var input models.PostInput
	if fe := decodeBody(r, &input); fe != nil {
		sendError(w, http.StatusBadRequest, fe)
		return
	}

	post, err := pc.postService.CreatePost(&input)
	if err != nil {
		sendServiceError(w, "PostController", err)
		return
	}

	log.Infof("[PostController] created post %d", post.ID)
	sendJSON(w, http.StatusCreated, post)
}

// Edit handles editing an existing post
func (pc *PostController) Edit(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r)
	if !ok {
		sendInvalidID(w)
		return
	}

	var input models.PostInput
	if fe := decodeBody(r, &input); fe != nil {
		sendError(w, http.StatusBadRequest, fe)
		return
	}

	post, err := pc.postService.UpdatePost(id, &input)
	if err != nil {
		sendServiceError(w, "PostController", err)
		return
	}
	sendJSON(w, http.StatusOK, post)
}

// Delete handles deleting a post
func (pc *PostController) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r)
	if !ok {
		sendInvalidID(w)
		return
	}

	if err := pc.postService.DeletePost(id); err != nil {
		sendServiceError(w, "PostController", err)
		return
	}

	log.Infof("[PostController] deleted post %d", id)
	w.WriteHeader(http.StatusNoContent)
}
