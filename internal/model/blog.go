package model

import (
	"time"
)

// Blog is the stored form of a blog post. Version is bumped on every
// replace and, like the timestamps, never leaves the storage boundary.
type Blog struct {
	ID        string    `db:"id"`
	Title     string    `db:"title"`
	Author    string    `db:"author"`
	URL       string    `db:"url"`
	Likes     int       `db:"likes"`
	Version   int       `db:"version"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

// BlogResponse is the public representation returned to clients.
type BlogResponse struct {
	ID     string `json:"id"`
	Title  string `json:"title"`
	Author string `json:"author"`
	URL    string `json:"url"`
	Likes  int    `json:"likes"`
}

// BlogInput is a create or full-replace request body.
// Likes is optional and defaults to 0.
type BlogInput struct {
	Title  string `json:"title"`
	Author string `json:"author"`
	URL    string `json:"url"`
	Likes  *int   `json:"likes"`
}

func NewBlogResponse(b *Blog) BlogResponse {
	return BlogResponse{
		ID:     b.ID,
		Title:  b.Title,
		Author: b.Author,
		URL:    b.URL,
		Likes:  b.Likes,
	}
}

func NewBlogResponses(blogs []*Blog) []BlogResponse {
	responses := make([]BlogResponse, 0, len(blogs))
	for _, b := range blogs {
		responses = append(responses, NewBlogResponse(b))
	}
	return responses
}

// LikesOrDefault returns the submitted likes, or 0 when omitted.
func (in BlogInput) LikesOrDefault() int {
	if in.Likes == nil {
		return 0
	}
	return *in.Likes
}
