// Package store holds the in-memory snapshot of every entity collection.
//
// A snapshot is never mutated once installed. Writers go through SetState,
// which hands the updater a private deep copy and installs the result with a
// single assignment, so readers see either the old or the new snapshot.
package store

import (
	"sync"

	"mocksocial/models"
)

type State struct {
	Users        []models.User
	Posts        []models.Post
	Comments     []models.Comment
	FriendsLists []models.FriendsList
}

// Clone returns a deep copy of s.
func (s State) Clone() State {
	next := State{
		Users:        make([]models.User, len(s.Users)),
		Posts:        make([]models.Post, len(s.Posts)),
		Comments:     make([]models.Comment, len(s.Comments)),
		FriendsLists: make([]models.FriendsList, len(s.FriendsLists)),
	}

	copy(next.Users, s.Users)
	for i, post := range s.Posts {
		next.Posts[i] = post.Clone()
	}
	for i, comment := range s.Comments {
		next.Comments[i] = comment.Clone()
	}
	for i, list := range s.FriendsLists {
		next.FriendsLists[i] = list.Clone()
	}

	return next
}

type DataStore struct {
	mu    sync.RWMutex
	state State
}

func New() *DataStore {
	ds := &DataStore{}
	ds.ResetStore()
	return ds
}

// GetState returns the current snapshot. Callers must not modify it.
func (ds *DataStore) GetState() State {
	ds.mu.RLock()
	defer ds.mu.RUnlock()
	return ds.state
}

// SetState replaces the snapshot with updater applied to a deep copy of it.
// Writers are serialized; if updater panics the previous snapshot stays.
func (ds *DataStore) SetState(updater func(State) State) {
	ds.mu.Lock()
	defer ds.mu.Unlock()

	next := updater(ds.state.Clone())
	ds.state = next
}

func (ds *DataStore) ResetStore() {
	ds.mu.Lock()
	defer ds.mu.Unlock()

	ds.state = State{
		Users:        []models.User{},
		Posts:        []models.Post{},
		Comments:     []models.Comment{},
		FriendsLists: []models.FriendsList{},
	}
}
