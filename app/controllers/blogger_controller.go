package controllers

import (
	"net/http"

	"bloggers/app/models"
	"bloggers/app/services"

	log "github.com/sirupsen/logrus"
)

// BloggerController handles HTTP requests for bloggers
type BloggerController struct {
	bloggerService *services.BloggerService
}

// NewBloggerController creates a new BloggerController
func NewBloggerController(bloggerService *services.BloggerService) *BloggerController {
	return &BloggerController{bloggerService: bloggerService}
}

// Index handles listing all bloggers
func (bc *BloggerController) Index(w http.ResponseWriter, r *http.Request) {
	bloggers, err := bc.bloggerService.ListBloggers()
	if err != nil {
		sendServiceError(w, "BloggerController", err)
		return
	}
	sendJSON(w, http.StatusOK, bloggers)
}

// Show handles displaying a single blogger
func (bc *BloggerController) Show(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r)
	if !ok {
		sendInvalidID(w)
		return
	}

	blogger, err := bc.bloggerService.GetBlogger(id)
	if err != nil {
		sendServiceError(w, "BloggerController", err)
		return
	}
	sendJSON(w, http.StatusOK, blogger)
}

// Create handles creating a new blogger
func (bc *BloggerController) Create(w http.ResponseWriter, r *http.Request) {
	var input models.BloggerInput
	if fe := decodeBody(r, &input); fe != nil {
		sendError(w, http.StatusBadRequest, fe)
		return
	}

	blogger, err := bc.bloggerService.CreateBlogger(&input)
	if err != nil {
		sendServiceError(w, "BloggerController", err)
		return
	}

	log.Infof("[BloggerController] created blogger %d", blogger.ID)
	sendJSON(w, http.StatusOK, blogger)
}

// Edit handles replacing the fields of an existing blogger
func (bc *BloggerController) Edit(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r)
	if !ok {
		sendInvalidID(w)
		return
	}

	var input models.BloggerInput
	if fe := decodeBody(r, &input); fe != nil {
		sendError(w, http.StatusBadRequest, fe)
		return
	}

	blogger, err := bc.bloggerService.UpdateBlogger(id, &input)
	if err != nil {
		sendServiceError(w, "BloggerController", err)
		return
	}
	sendJSON(w, http.StatusOK, blogger)
}

// Delete handles deleting a blogger
func (bc *BloggerController) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r)
	if !ok {
		sendInvalidID(w)
		return
	}

	if err := bc.bloggerService.DeleteBlogger(id); err != nil {
		sendServiceError(w, "BloggerController", err)
		return
	}

	log.Infof("[BloggerController] deleted blogger %d", id)
	w.WriteHeader(http.StatusNoContent)
}
