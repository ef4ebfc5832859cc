// Package services applies the business rules on top of the repositories and
// is the only layer that raises user-facing errors.
package services

import (
	"mocksocial/events"
	"mocksocial/repositories"
	"mocksocial/store"
	"mocksocial/utils"
)

type Services struct {
	Auth    *AuthService
	User    *UserService
	Post    *PostService
	Comment *CommentService
	Friend  *FriendService
}

// New wires every service to repositories over ds.
func New(ds *store.DataStore, tokens *utils.TokenManager, bcryptCost int, notifier events.Notifier) *Services {
	notifier = events.OrNop(notifier)

	var (
		authRepo    = repositories.NewAuthRepository(ds)
		userRepo    = repositories.NewUserRepository(ds)
		postRepo    = repositories.NewPostRepository(ds)
		commentRepo = repositories.NewCommentRepository(ds)
		friendRepo  = repositories.NewFriendRepository(ds)
	)

	return &Services{
		Auth: &AuthService{
			auth:       authRepo,
			friends:    friendRepo,
			tokens:     tokens,
			bcryptCost: bcryptCost,
		},
		User: &UserService{
			users:      userRepo,
			friends:    friendRepo,
			bcryptCost: bcryptCost,
			notifier:   notifier,
		},
		Post: &PostService{
			posts:    postRepo,
			users:    userRepo,
			notifier: notifier,
		},
		Comment: &CommentService{
			comments: commentRepo,
			posts:    postRepo,
			users:    userRepo,
			notifier: notifier,
		},
		Friend: &FriendService{
			friends:  friendRepo,
			users:    userRepo,
			notifier: notifier,
		},
	}
}

// validateUserIDs returns false if any id does not belong to a user.
func validateUserIDs(users *repositories.UserRepository, ids []string) bool {
	for _, id := range ids {
		if _, ok := users.GetUserByID(id); !ok {
			return false
		}
	}
	return true
}
