package routes

import (
	"encoding/json"
	"net/http"

	"bloggers/app/controllers"
	"bloggers/app/middleware"
	"bloggers/app/models"
	"bloggers/app/repositories"
	"bloggers/app/services"

	"github.com/gorilla/mux"
)

// Options controls the optional parts of the handler chain.
type Options struct {
	// ServiceName is recorded in access log entries.
	ServiceName string
	// AccessLog receives one message per request when set.
	AccessLog middleware.MessageWriter
}

// SetupRoutes defines the application's routes and returns a router.
func SetupRoutes(bloggerRepo repositories.BloggerRepository, postRepo repositories.PostRepository) *mux.Router {
	router := mux.NewRouter()
	router.NotFoundHandler = jsonError(http.StatusNotFound, "Not found")
	router.MethodNotAllowedHandler = jsonError(http.StatusMethodNotAllowed, "Method not allowed")

	router.Use(middleware.Recoverer)

	bloggerController := controllers.NewBloggerController(services.NewBloggerService(bloggerRepo))
	postController := controllers.NewPostController(services.NewPostService(postRepo))

	// API routes
	api := router.PathPrefix("/api").Subrouter()
	api.Use(middleware.ContentTypeJSON)

	// Bloggers API endpoints
	bloggers := api.PathPrefix("/bloggers").Subrouter()
	bloggers.HandleFunc("", bloggerController.Index).Methods("GET")
	bloggers.HandleFunc("", bloggerController.Create).Methods("POST")
	bloggers.HandleFunc("/{id}", bloggerController.Show).Methods("GET")
	bloggers.HandleFunc("/{id}", bloggerController.Edit).Methods("PUT")
	bloggers.HandleFunc("/{id}", bloggerController.Delete).Methods("DELETE")

	// Posts API endpoints
	posts := api.PathPrefix("/posts").Subrouter()
	posts.HandleFunc("", postController.Index).Methods("GET")
	posts.HandleFunc("", postController.Create).Methods("POST")
	posts.HandleFunc("/{id}", postController.Show).Methods("GET")
	posts.HandleFunc("/{id}", postController.Edit).Methods("PUT")
	posts.HandleFunc("/{id}", postController.Delete).Methods("DELETE")

	return router
}

// Handler wraps router with the middleware that must also see unmatched
// requests: CORS preflight, request ids and request logging.
func Handler(router *mux.Router, opts Options) http.Handler {
	var h http.Handler = router
	if opts.AccessLog != nil {
		h = middleware.AccessLog(opts.AccessLog, opts.ServiceName)(h)
	}
	h = middleware.Logger(h)
	h = middleware.RequestID(h)
	return middleware.CORS(h)
}

func jsonError(status int, message string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_ = json.NewEncoder(w).Encode(models.NewFieldError("", message))
	})
}
