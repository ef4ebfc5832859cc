package models

import (
	"slices"
	"time"
)

type Friendship struct {
	ID           string    `json:"id"`
	FriendsSince time.Time `json:"friendsSince"`
}

type FriendshipDetail struct {
	User         UserResponse `json:"user"`
	FriendsSince time.Time    `json:"friendsSince"`
}

// FriendsList belongs to exactly one user. Entries are unique by friend id
// and never contain the owner.
type FriendsList struct {
	UserID    string       `json:"userId"`
	List      []Friendship `json:"list"`
	CreatedAt time.Time    `json:"createdAt"`
	UpdatedAt time.Time    `json:"updatedAt"`
}

type FriendsListDetail struct {
	UserID    string             `json:"userId"`
	List      []FriendshipDetail `json:"list"`
	CreatedAt time.Time          `json:"createdAt"`
	UpdatedAt time.Time          `json:"updatedAt"`
}

func (f FriendsList) Clone() FriendsList {
	if f.List == nil {
		f.List = []Friendship{}
	} else {
		f.List = slices.Clone(f.List)
	}
	return f
}

func (f *FriendsList) HasFriend(id string) bool {
	return slices.ContainsFunc(f.List, func(friend Friendship) bool {
		return friend.ID == id
	})
}
