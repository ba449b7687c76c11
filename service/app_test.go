package service

import (
	"context"
	"encoding/json"
	"fmt"
	"net"
	"net/http"
	"testing"
	"time"

	"bloggers/app/config"
	"bloggers/app/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func startTestServer(t *testing.T, cfg *config.Config) (string, context.CancelFunc, <-chan error) {
	t.Helper()
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- serve(ctx, cfg, ln)
	}()
	return fmt.Sprintf("http://%s", ln.Addr()), cancel, done
}

func waitShutdown(t *testing.T, cancel context.CancelFunc, done <-chan error) {
	t.Helper()
	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down")
	}
}

func TestServeSeeded(t *testing.T) {
	baseURL, cancel, done := startTestServer(t, config.Default())

	resp, err := http.Get(baseURL + "/api/bloggers/1")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/json", resp.Header.Get("Content-Type"))
	assert.NotEmpty(t, resp.Header.Get("X-Request-Id"))

	var blogger models.Blogger
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&blogger))
	assert.Equal(t, "Mike", blogger.Name)

	waitShutdown(t, cancel, done)
}

func TestServeWithoutSeed(t *testing.T) {
	cfg := config.Default()
	cfg.Seed = false
	baseURL, cancel, done := startTestServer(t, cfg)

	resp, err := http.Get(baseURL + "/api/posts")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var posts []models.Post
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&posts))
	assert.Empty(t, posts)

	waitShutdown(t, cancel, done)
}
