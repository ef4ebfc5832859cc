// Package repositories implements per-entity CRUD over the data store.
//
// Every operation is a single GetState read or a single SetState write.
// Misses are reported with comma-ok values and boolean flags; turning them
// into user-facing errors is the services' job.
package repositories

import (
	"slices"
	"strings"
	"time"

	"mocksocial/models"
	"mocksocial/store"
)

type UserRepository struct {
	store *store.DataStore
}

func NewUserRepository(ds *store.DataStore) *UserRepository {
	return &UserRepository{store: ds}
}

// AddUser prepends user unless its username or email is already taken.
func (r *UserRepository) AddUser(user models.User) bool {
	return addUser(r.store, user)
}

func addUser(ds *store.DataStore, user models.User) bool {
	isAdded := false

	ds.SetState(func(state store.State) store.State {
		if isTaken(state.Users, user.Username, user.Email, "") {
			return state
		}

		isAdded = true
		state.Users = slices.Insert(state.Users, 0, user)
		return state
	})

	return isAdded
}

// GetUsers returns every user, filtered by a case-insensitive keyword on
// username or email when keyword is not empty.
func (r *UserRepository) GetUsers(keyword string) []models.UserResponse {
	users := r.store.GetState().Users
	keyword = strings.ToLower(strings.TrimSpace(keyword))

	results := make([]models.UserResponse, 0, len(users))
	for _, user := range users {
		if keyword != "" &&
			!strings.Contains(strings.ToLower(user.Username), keyword) &&
			!strings.Contains(strings.ToLower(user.Email), keyword) {
			continue
		}
		results = append(results, *user.ToResponse())
	}

	return results
}

func (r *UserRepository) GetUserByID(id string) (models.UserResponse, bool) {
	user, ok := findUser(r.store.GetState().Users, func(u models.User) bool { return u.ID == id })
	if !ok {
		return models.UserResponse{}, false
	}
	return *user.ToResponse(), true
}

func (r *UserRepository) GetUserByUsername(username string) (models.UserResponse, bool) {
	user, ok := findUser(r.store.GetState().Users, func(u models.User) bool { return u.Username == username })
	if !ok {
		return models.UserResponse{}, false
	}
	return *user.ToResponse(), true
}

// GetUserWithPassword is the only read that exposes the password hash.
func (r *UserRepository) GetUserWithPassword(id string) (models.User, bool) {
	return findUser(r.store.GetState().Users, func(u models.User) bool { return u.ID == id })
}

// UpdateUser replaces the public fields of an existing user. isConflict is
// set when another user already owns the new username or email.
func (r *UserRepository) UpdateUser(updated models.UserResponse) (isUpdated, isConflict bool) {
	r.store.SetState(func(state store.State) store.State {
		idx := slices.IndexFunc(state.Users, func(u models.User) bool { return u.ID == updated.ID })
		if idx < 0 {
			return state
		}
		if isTaken(state.Users, updated.Username, updated.Email, updated.ID) {
			isConflict = true
			return state
		}

		isUpdated = true
		user := &state.Users[idx]
		user.Username = updated.Username
		user.Email = updated.Email
		user.ProfilePicture = updated.ProfilePicture
		user.CreatedAt = updated.CreatedAt
		user.UpdatedAt = updated.UpdatedAt
		return state
	})

	return isUpdated, isConflict
}

func (r *UserRepository) UpdateUserPassword(id, hashedPassword string) bool {
	isUpdated := false

	r.store.SetState(func(state store.State) store.State {
		idx := slices.IndexFunc(state.Users, func(u models.User) bool { return u.ID == id })
		if idx < 0 {
			return state
		}

		isUpdated = true
		state.Users[idx].Password = hashedPassword
		state.Users[idx].UpdatedAt = time.Now().UTC()
		return state
	})

	return isUpdated
}

// DeleteUser removes the user and cascades: its friends list goes, it is
// dropped from every other friends list, and its posts and comments are
// removed. Ids of those posts and comments left in like, dislike and reply
// lists of other entities are not cleaned up.
func (r *UserRepository) DeleteUser(id string) bool {
	isDeleted := false

	r.store.SetState(func(state store.State) store.State {
		users := state.Users[:0]
		for _, user := range state.Users {
			if user.ID == id {
				isDeleted = true
				continue
			}
			users = append(users, user)
		}
		state.Users = users

		if !isDeleted {
			return state
		}

		now := time.Now().UTC()
		friendsLists := state.FriendsLists[:0]
		for _, entry := range state.FriendsLists {
			if entry.UserID == id {
				continue
			}
			if entry.HasFriend(id) {
				entry.List = slices.DeleteFunc(entry.List, func(f models.Friendship) bool { return f.ID == id })
				entry.UpdatedAt = now
			}
			friendsLists = append(friendsLists, entry)
		}
		state.FriendsLists = friendsLists

		state.Comments = slices.DeleteFunc(state.Comments, func(c models.Comment) bool { return c.Owner == id })
		state.Posts = slices.DeleteFunc(state.Posts, func(p models.Post) bool { return p.Owner == id })
		return state
	})

	return isDeleted
}

func findUser(users []models.User, match func(models.User) bool) (models.User, bool) {
	idx := slices.IndexFunc(users, match)
	if idx < 0 {
		return models.User{}, false
	}
	return users[idx], true
}

// isTaken reports whether a user other than exceptID owns username or email.
func isTaken(users []models.User, username, email, exceptID string) bool {
	return slices.ContainsFunc(users, func(u models.User) bool {
		return u.ID != exceptID && (u.Username == username || u.Email == email)
	})
}
