package repositories

import "bloggers/app/models"

// DefaultBloggers returns the sample bloggers loaded at startup.
func DefaultBloggers() []*models.Blogger {
	return []*models.Blogger{
		{
			ID:         1,
			Name:       "Mike",
			YoutubeURL: "https://www.youtube.com/watch?v=WhcbmFplnQA",
		},
		{
			ID:         2,
			Name:       "Sara",
			YoutubeURL: "https://www.youtube.com/watch?v=WhcbmF",
		},
	}
}

// DefaultPosts returns the sample posts loaded at startup.
func DefaultPosts() []*models.Post {
	return []*models.Post{
		{
			ID:               1,
			Title:            "Portrait of Dr Ferdinand Mainzer. Lovis Corinth",
			BloggerID:        1,
			Content:          "Ferdinand Mainzer was one of the most fascinating cultural figures in Berlin circa 1900.",
			ShortDescription: "Lovis Corinth (1858–1925), was a key figure of German modernist art",
		},
		{
			ID:               2,
			Title:            "Late Afternoon in our Meadow",
			BloggerID:        1,
			Content:          "He painted a number of views of this meadow which is planted with small trees",
			ShortDescription: "In 1884 Pissarro settled with his family in the village of Eragny.",
		},
		{
			ID:               3,
			Title:            "The Drunkard, Zarauz (El Borracho, Zarauz).",
			BloggerID:        2,
			Content:          "Sorolla depicted peasants in the sometimes harsh reality of their lives. ",
			ShortDescription: "Five drinkers gather in a tavern in Zarauz,",
		},
	}
}

// SeedDefaults loads the sample data.
func (r *Repository) SeedDefaults() error {
	return r.Seed(DefaultBloggers(), DefaultPosts())
}
