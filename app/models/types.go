package models

// Blogger represents an author with a video channel.
type Blogger struct {
	ID         int    `json:"id"`
	Name       string `json:"name"`
	YoutubeURL string `json:"youtubeUrl"`
}

// Post represents an article written by a blogger. BloggerName is a copy of
// the referenced blogger's name.
type Post struct {
	ID               int    `json:"id"`
	Title            string `json:"title"`
	ShortDescription string `json:"shortDescription"`
	Content          string `json:"content"`
	BloggerID        int    `json:"bloggerId"`
	BloggerName      string `json:"bloggerName"`
}

// BloggerInput is the request body of blogger create and update.
type BloggerInput struct {
	Name       string `json:"name" validate:"required"`
	YoutubeURL string `json:"youtubeUrl" validate:"required,youtubeurl"`
}

// PostInput is the request body of post create and update. Pointer fields
// distinguish a missing value from an empty one.
type PostInput struct {
	Title            string  `json:"title" validate:"required"`
	BloggerID        *int    `json:"bloggerId" validate:"required"`
	Content          *string `json:"content" validate:"required"`
	ShortDescription *string `json:"shortDescription" validate:"required"`
}
