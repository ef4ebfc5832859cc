package repositories

import (
	"errors"
	"slices"
	"time"

	"mocksocial/models"
	"mocksocial/store"
)

var (
	ErrFriendsListNotFound = errors.New("friends list not found")
	ErrSelfFriend          = errors.New("user cannot befriend itself")
	ErrAlreadyFriend       = errors.New("already a friend")
	ErrNotFriend           = errors.New("not a friend")
)

type FriendRepository struct {
	store *store.DataStore
}

func NewFriendRepository(ds *store.DataStore) *FriendRepository {
	return &FriendRepository{store: ds}
}

// CreateFriendsList gives user an empty friends list dated at its creation.
func (r *FriendRepository) CreateFriendsList(user models.UserResponse) {
	r.store.SetState(func(state store.State) store.State {
		state.FriendsLists = slices.Insert(state.FriendsLists, 0, models.FriendsList{
			UserID:    user.ID,
			List:      []models.Friendship{},
			CreatedAt: user.CreatedAt,
			UpdatedAt: user.CreatedAt,
		})
		return state
	})
}

// AddFriend prepends friendID to the list of userID. The check and the
// insert run in one update, so of two identical adds exactly one succeeds.
func (r *FriendRepository) AddFriend(userID, friendID string) error {
	var err error

	r.store.SetState(func(state store.State) store.State {
		idx := slices.IndexFunc(state.FriendsLists, func(l models.FriendsList) bool { return l.UserID == userID })
		switch {
		case idx < 0:
			err = ErrFriendsListNotFound
			return state
		case userID == friendID:
			err = ErrSelfFriend
			return state
		}

		entry := &state.FriendsLists[idx]
		if entry.HasFriend(friendID) {
			err = ErrAlreadyFriend
			return state
		}

		now := time.Now().UTC()
		entry.List = slices.Insert(entry.List, 0, models.Friendship{ID: friendID, FriendsSince: now})
		entry.UpdatedAt = now
		return state
	})

	return err
}

func (r *FriendRepository) RemoveFriend(userID, friendID string) error {
	var err error

	r.store.SetState(func(state store.State) store.State {
		idx := slices.IndexFunc(state.FriendsLists, func(l models.FriendsList) bool { return l.UserID == userID })
		if idx < 0 {
			err = ErrFriendsListNotFound
			return state
		}

		entry := &state.FriendsLists[idx]
		if !entry.HasFriend(friendID) {
			err = ErrNotFriend
			return state
		}

		entry.List = slices.DeleteFunc(entry.List, func(f models.Friendship) bool { return f.ID == friendID })
		entry.UpdatedAt = time.Now().UTC()
		return state
	})

	return err
}

func (r *FriendRepository) GetFriends(userID string) (models.FriendsList, bool) {
	lists := r.store.GetState().FriendsLists

	idx := slices.IndexFunc(lists, func(l models.FriendsList) bool { return l.UserID == userID })
	if idx < 0 {
		return models.FriendsList{}, false
	}
	return lists[idx], true
}

// PopulateFriendsWithUserData resolves every entry of list to its public
// user. It reports false if any friend no longer exists.
func (r *FriendRepository) PopulateFriendsWithUserData(list models.FriendsList) (models.FriendsListDetail, bool) {
	users := r.store.GetState().Users

	detail := models.FriendsListDetail{
		UserID:    list.UserID,
		List:      make([]models.FriendshipDetail, 0, len(list.List)),
		CreatedAt: list.CreatedAt,
		UpdatedAt: list.UpdatedAt,
	}

	for _, friend := range list.List {
		user, ok := findUser(users, func(u models.User) bool { return u.ID == friend.ID })
		if !ok {
			return models.FriendsListDetail{}, false
		}
		detail.List = append(detail.List, models.FriendshipDetail{
			User:         *user.ToResponse(),
			FriendsSince: friend.FriendsSince,
		})
	}

	return detail, true
}
