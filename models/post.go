package models

import (
	"slices"
	"time"
)

type Post struct {
	ID          string    `json:"id"`
	Description string    `json:"description"`
	Images      []string  `json:"images"`
	Owner       string    `json:"owner"`
	Likes       []string  `json:"likes"`
	Dislikes    []string  `json:"dislikes"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// PostDetail is a post enriched with the ids of its first comments.
type PostDetail struct {
	Post
	Comments []string `json:"comments"`
}

func (p Post) Clone() Post {
	p.Images = cloneIDs(p.Images)
	p.Likes = cloneIDs(p.Likes)
	p.Dislikes = cloneIDs(p.Dislikes)
	return p
}

// cloneIDs copies s and never returns nil, so empty lists encode as [].
func cloneIDs(s []string) []string {
	if s == nil {
		return []string{}
	}
	return slices.Clone(s)
}
