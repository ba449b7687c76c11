package routes

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"bloggers/app/repositories"

	"github.com/stretchr/testify/require"
)

// setupTestRepository opens an in-memory store holding the default seed data.
func setupTestRepository(t *testing.T) *repositories.Repository {
	t.Helper()
	repo, err := repositories.NewRepository()
	require.NoError(t, err)
	t.Cleanup(func() { repo.Close() })
	require.NoError(t, repo.SeedDefaults())
	return repo
}

func setupTestHandler(t *testing.T, opts Options) (http.Handler, *repositories.Repository) {
	t.Helper()
	repo := setupTestRepository(t)
	router := SetupRoutes(repo.Bloggers, repo.Posts)
	return Handler(router, opts), repo
}

func serve(handler http.Handler, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)
	return w
}
