package services

import (
	"errors"

	"mocksocial/apperror"
	"mocksocial/events"
	"mocksocial/models"
	"mocksocial/repositories"
)

type FriendService struct {
	friends  *repositories.FriendRepository
	users    *repositories.UserRepository
	notifier events.Notifier
}

// FriendsPage is one page of a friends list. FriendsList holds either a
// models.FriendsList or a models.FriendsListDetail.
type FriendsPage struct {
	FriendsList any
	Metadata    models.Metadata
}

func (s *FriendService) AddFriend(userID, friendID string) error {
	if _, ok := s.friends.GetFriends(userID); !ok {
		return apperror.NotFound("Cannot find friends list from the given user!")
	}
	if _, ok := s.users.GetUserByID(friendID); !ok {
		return apperror.NotFound("User that is to be a new friend cannot be found!")
	}

	if err := s.friends.AddFriend(userID, friendID); err != nil {
		switch {
		case errors.Is(err, repositories.ErrSelfFriend):
			return apperror.BadRequest("Cannot add yourself as a friend!")
		case errors.Is(err, repositories.ErrAlreadyFriend):
			return apperror.Conflict("This user is already a friend!")
		case errors.Is(err, repositories.ErrFriendsListNotFound):
			return apperror.NotFound("Cannot find friends list from the given user!")
		default:
			return apperror.Internal("Fail to add friend!", err)
		}
	}

	s.notifier.Notify(events.FriendAdded, events.Friendship{UserID: userID, FriendID: friendID})
	return nil
}

func (s *FriendService) RemoveFriend(userID, friendID string) error {
	if _, ok := s.friends.GetFriends(userID); !ok {
		return apperror.NotFound("Cannot find friends list from the given user!")
	}
	if _, ok := s.users.GetUserByID(friendID); !ok {
		return apperror.NotFound("User that is to be unfriended cannot be found!")
	}

	if err := s.friends.RemoveFriend(userID, friendID); err != nil {
		switch {
		case errors.Is(err, repositories.ErrNotFriend):
			return apperror.Conflict("This user is already not your friend!")
		case errors.Is(err, repositories.ErrFriendsListNotFound):
			return apperror.NotFound("Cannot find friends list from the given user!")
		default:
			return apperror.Internal("Fail to remove friend!", err)
		}
	}

	s.notifier.Notify(events.FriendRemoved, events.Friendship{UserID: userID, FriendID: friendID})
	return nil
}

// GetFriends pages through the friends of userID, resolving each entry to
// its user when withUserData is set.
func (s *FriendService) GetFriends(userID string, limit, page int, withUserData bool) (FriendsPage, error) {
	list, ok := s.friends.GetFriends(userID)
	if !ok {
		return FriendsPage{}, apperror.NotFound("Cannot find friends list from the given user!")
	}

	if !withUserData {
		p := Paginate(list.List, limit, page)
		list.List = p.Data
		return FriendsPage{FriendsList: list, Metadata: p.Metadata}, nil
	}

	detail, ok := s.friends.PopulateFriendsWithUserData(list)
	if !ok {
		return FriendsPage{}, apperror.Internal("Fail to populate friends with user data!", nil)
	}

	p := Paginate(detail.List, limit, page)
	detail.List = p.Data
	return FriendsPage{FriendsList: detail, Metadata: p.Metadata}, nil
}
