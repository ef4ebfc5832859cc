package models

import "time"

type Comment struct {
	ID        string    `json:"id"`
	Content   string    `json:"content"`
	Post      string    `json:"post"`
	Owner     string    `json:"owner"`
	Likes     []string  `json:"likes"`
	Dislikes  []string  `json:"dislikes"`
	Replies   []string  `json:"replies"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (c Comment) Clone() Comment {
	c.Likes = cloneIDs(c.Likes)
	c.Dislikes = cloneIDs(c.Dislikes)
	c.Replies = cloneIDs(c.Replies)
	return c
}
