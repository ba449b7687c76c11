package repositories

import (
	"sync"
	"testing"

	"bloggers/app/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPostRepository(t *testing.T) {
	repo := newTestRepository(t)
	posts := repo.Posts

	mike := &models.Blogger{Name: "Mike", YoutubeURL: "https://youtube.com/mike"}
	sara := &models.Blogger{Name: "Sara", YoutubeURL: "https://youtube.com/sara"}
	require.NoError(t, repo.Bloggers.Create(mike))
	require.NoError(t, repo.Bloggers.Create(sara))

	t.Run("create and get post", func(t *testing.T) {
		post := &models.Post{
			Title:            "Test Post",
			ShortDescription: "Short",
			Content:          "This is a test post content",
			BloggerID:        mike.ID,
		}

		err := posts.Create(post)
		require.NoError(t, err)
		assert.Greater(t, post.ID, 0)
		assert.Equal(t, "Mike", post.BloggerName)

		retrieved, err := posts.GetByID(post.ID)
		require.NoError(t, err)
		assert.Equal(t, post, retrieved)
	})

	t.Run("create post for missing blogger", func(t *testing.T) {
		before, err := posts.List()
		require.NoError(t, err)

		err = posts.Create(&models.Post{Title: "Orphan", BloggerID: 999})
		assert.ErrorIs(t, err, ErrBloggerNotFound)

		after, err := posts.List()
		require.NoError(t, err)
		assert.Len(t, after, len(before))
	})

	t.Run("update post", func(t *testing.T) {
		post := &models.Post{Title: "Original Title", Content: "Original content", BloggerID: mike.ID}
		require.NoError(t, posts.Create(post))

		post.Title = "Updated Title"
		post.Content = "Updated content"
		post.BloggerID = sara.ID
		require.NoError(t, posts.Update(post))
		assert.Equal(t, "Sara", post.BloggerName)

		updated, err := posts.GetByID(post.ID)
		require.NoError(t, err)
		assert.Equal(t, "Updated Title", updated.Title)
		assert.Equal(t, "Updated content", updated.Content)
		assert.Equal(t, sara.ID, updated.BloggerID)
		assert.Equal(t, "Sara", updated.BloggerName)
	})

	t.Run("update missing post", func(t *testing.T) {
		err := posts.Update(&models.Post{ID: 999, Title: "Ghost", BloggerID: mike.ID})
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("update post to missing blogger", func(t *testing.T) {
		post := &models.Post{Title: "Stable", BloggerID: mike.ID}
		require.NoError(t, posts.Create(post))

		changed := *post
		changed.Title = "Changed"
		changed.BloggerID = 999
		err := posts.Update(&changed)
		assert.ErrorIs(t, err, ErrBloggerNotFound)

		stored, err := posts.GetByID(post.ID)
		require.NoError(t, err)
		assert.Equal(t, "Stable", stored.Title)
		assert.Equal(t, mike.ID, stored.BloggerID)
	})

	t.Run("delete post", func(t *testing.T) {
		post := &models.Post{Title: "Post to Delete", BloggerID: mike.ID}
		require.NoError(t, posts.Create(post))

		before, err := posts.List()
		require.NoError(t, err)

		require.NoError(t, posts.Delete(post.ID))

		after, err := posts.List()
		require.NoError(t, err)
		assert.Len(t, after, len(before)-1)
		for _, p := range after {
			assert.NotEqual(t, post.ID, p.ID)
		}
	})

	t.Run("delete missing post", func(t *testing.T) {
		err := posts.Delete(999)
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("list posts", func(t *testing.T) {
		list, err := posts.List()
		require.NoError(t, err)
		for i := 1; i < len(list); i++ {
			assert.Less(t, list[i-1].ID, list[i].ID)
		}
	})
}

func TestRepositorySeed(t *testing.T) {
	repo := newTestRepository(t)
	require.NoError(t, repo.SeedDefaults())

	bloggers, err := repo.Bloggers.List()
	require.NoError(t, err)
	require.Len(t, bloggers, 2)
	assert.Equal(t, "Mike", bloggers[0].Name)
	assert.Equal(t, 1, bloggers[0].ID)

	posts, err := repo.Posts.List()
	require.NoError(t, err)
	require.Len(t, posts, 3)
	assert.Equal(t, "Mike", posts[0].BloggerName)
	assert.Equal(t, "Mike", posts[1].BloggerName)
	assert.Equal(t, "Sara", posts[2].BloggerName)

	t.Run("sequences continue after seeded ids", func(t *testing.T) {
		blogger := &models.Blogger{Name: "New", YoutubeURL: "https://youtube.com/new"}
		require.NoError(t, repo.Bloggers.Create(blogger))
		assert.Equal(t, 3, blogger.ID)

		post := &models.Post{Title: "T", BloggerID: 1}
		require.NoError(t, repo.Posts.Create(post))
		assert.Equal(t, 4, post.ID)
		assert.Equal(t, "Mike", post.BloggerName)
	})

	t.Run("clear drops everything", func(t *testing.T) {
		require.NoError(t, repo.Clear())

		bloggers, err := repo.Bloggers.List()
		require.NoError(t, err)
		assert.Empty(t, bloggers)

		blogger := &models.Blogger{Name: "Fresh", YoutubeURL: "https://youtube.com"}
		require.NoError(t, repo.Bloggers.Create(blogger))
		assert.Equal(t, 1, blogger.ID)
	})
}

func TestRepositorySeedRejectsInvalidData(t *testing.T) {
	repo := newTestRepository(t)

	t.Run("post with unknown blogger", func(t *testing.T) {
		err := repo.Seed(DefaultBloggers(), []*models.Post{{ID: 1, Title: "T", BloggerID: 42}})
		assert.ErrorIs(t, err, ErrBloggerNotFound)
	})

	t.Run("blogger with bad url", func(t *testing.T) {
		err := repo.Seed([]*models.Blogger{{ID: 1, Name: "Bad", YoutubeURL: "nope"}}, nil)
		assert.Error(t, err)
	})

	t.Run("blogger without id", func(t *testing.T) {
		err := repo.Seed([]*models.Blogger{{Name: "NoID", YoutubeURL: "https://youtube.com"}}, nil)
		assert.Error(t, err)
	})

	bloggers, err := repo.Bloggers.List()
	require.NoError(t, err)
	assert.Empty(t, bloggers)
}

func TestPostRepositoryConcurrentWrites(t *testing.T) {
	repo := newTestRepository(t)

	mike := &models.Blogger{Name: "Mike", YoutubeURL: "https://youtube.com/mike"}
	require.NoError(t, repo.Bloggers.Create(mike))

	first := &models.Post{Title: "First", BloggerID: mike.ID}
	require.NoError(t, repo.Posts.Create(first))

	const n = 32
	var wg sync.WaitGroup
	errs := make(chan error, 2*n)
	for i := 0; i < n; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			errs <- repo.Posts.Create(&models.Post{Title: "New", BloggerID: mike.ID})
		}()
		go func() {
			defer wg.Done()
			errs <- repo.Posts.Update(&models.Post{ID: first.ID, Title: "Edited", BloggerID: mike.ID})
		}()
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		assert.NoError(t, err)
	}

	posts, err := repo.Posts.List()
	require.NoError(t, err)
	require.Len(t, posts, n+1)
	assert.Equal(t, "Edited", posts[0].Title)
	for i, p := range posts {
		assert.Equal(t, i+1, p.ID)
	}
}
