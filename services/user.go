package services

import (
	"time"

	"mocksocial/apperror"
	"mocksocial/events"
	"mocksocial/models"
	"mocksocial/repositories"
	"mocksocial/utils"
)

type UserService struct {
	users      *repositories.UserRepository
	friends    *repositories.FriendRepository
	bcryptCost int
	notifier   events.Notifier
}

type UserCreate struct {
	Username       string
	Email          string
	Password       string
	ProfilePicture string
}

// UserEdit holds the profile fields a user may change. Empty fields are
// left as they are.
type UserEdit struct {
	Username       string
	Email          string
	ProfilePicture string
}

func (s *UserService) AddUser(data UserCreate) (models.UserResponse, error) {
	hashed, err := utils.HashPassword(data.Password, s.bcryptCost)
	if err != nil {
		return models.UserResponse{}, apperror.Internal("Fail to hash password!", err)
	}

	if data.ProfilePicture == "" {
		data.ProfilePicture = utils.DefaultAvatarURL(data.Username)
	}

	now := time.Now().UTC()
	user := models.User{
		ID:             utils.GenerateUUID(),
		Username:       data.Username,
		Email:          data.Email,
		Password:       hashed,
		ProfilePicture: data.ProfilePicture,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if !s.users.AddUser(user) {
		return models.UserResponse{}, apperror.Conflict("The username or email of this user already exists!")
	}

	resp := *user.ToResponse()
	s.friends.CreateFriendsList(resp)

	return resp, nil
}

// GetUsers pages through the users whose username or email contains
// keyword, ignoring case.
func (s *UserService) GetUsers(keyword string, limit, page int) Page[models.UserResponse] {
	return Paginate(s.users.GetUsers(keyword), limit, page)
}

func (s *UserService) GetUserByID(id string) (models.UserResponse, error) {
	user, ok := s.users.GetUserByID(id)
	if !ok {
		return models.UserResponse{}, apperror.NotFound("User not found!")
	}
	return user, nil
}

func (s *UserService) GetUserByUsername(username string) (models.UserResponse, error) {
	user, ok := s.users.GetUserByUsername(username)
	if !ok {
		return models.UserResponse{}, apperror.NotFound("User not found!")
	}
	return user, nil
}

func (s *UserService) UpdateUser(id string, data UserEdit) (models.UserResponse, error) {
	user, err := s.GetUserByID(id)
	if err != nil {
		return models.UserResponse{}, err
	}

	if data.Username != "" {
		user.Username = data.Username
	}
	if data.Email != "" {
		user.Email = data.Email
	}
	if data.ProfilePicture != "" {
		user.ProfilePicture = data.ProfilePicture
	}
	user.UpdatedAt = time.Now().UTC()

	isUpdated, isConflict := s.users.UpdateUser(user)
	if isConflict {
		return models.UserResponse{}, apperror.Conflict("The username or email of this user already exists!")
	}
	if !isUpdated {
		return models.UserResponse{}, apperror.NotFound("User not found!")
	}

	return user, nil
}

func (s *UserService) UpdateUserPassword(id, oldPassword, newPassword string) error {
	user, ok := s.users.GetUserWithPassword(id)
	if !ok {
		return apperror.NotFound("User not found!")
	}

	if !utils.CheckPassword(user.Password, oldPassword) {
		return apperror.Unauthorized("Current password is incorrect!")
	}
	if oldPassword == newPassword {
		return apperror.BadRequest("The new password must be different from the old password!")
	}

	hashed, err := utils.HashPassword(newPassword, s.bcryptCost)
	if err != nil {
		return apperror.Internal("Fail to hash password!", err)
	}

	if !s.users.UpdateUserPassword(id, hashed) {
		return apperror.NotFound("User not found!")
	}

	return nil
}

// DeleteUser removes the user with its friends list, posts and comments.
func (s *UserService) DeleteUser(id string) error {
	if !s.users.DeleteUser(id) {
		return apperror.NotFound("User not found!")
	}

	s.notifier.Notify(events.UserDeleted, map[string]string{"userId": id})
	return nil
}
