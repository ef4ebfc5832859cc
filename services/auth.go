package services

import (
	"errors"
	"time"

	"mocksocial/apperror"
	"mocksocial/models"
	"mocksocial/repositories"
	"mocksocial/utils"
)

type AuthService struct {
	auth       *repositories.AuthRepository
	friends    *repositories.FriendRepository
	tokens     *utils.TokenManager
	bcryptCost int
}

type Tokens struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

type RegisterData struct {
	Username        string
	Email           string
	Password        string
	ConfirmPassword string
}

// Login does not tell a wrong email apart from a wrong password.
func (s *AuthService) Login(email, password string) (Tokens, error) {
	user, ok := s.auth.Login(email, password)
	if !ok {
		return Tokens{}, apperror.Unauthorized("Invalid email or password")
	}

	accessToken, err := s.tokens.CreateAccessToken(user.ID)
	if err != nil {
		return Tokens{}, apperror.Internal("Fail to create access token!", err)
	}

	refreshToken, err := s.tokens.CreateRefreshToken(user.ID)
	if err != nil {
		return Tokens{}, apperror.Internal("Fail to create refresh token!", err)
	}

	return Tokens{AccessToken: accessToken, RefreshToken: refreshToken}, nil
}

// Register creates the user together with its empty friends list.
func (s *AuthService) Register(data RegisterData) (models.UserResponse, error) {
	if data.Password != data.ConfirmPassword {
		return models.UserResponse{}, apperror.BadRequest("Password and confirm password do not match")
	}

	hashed, err := utils.HashPassword(data.Password, s.bcryptCost)
	if err != nil {
		return models.UserResponse{}, apperror.Internal("Fail to hash password!", err)
	}

	now := time.Now().UTC()
	user := models.User{
		ID:             utils.GenerateUUID(),
		Username:       data.Username,
		Email:          data.Email,
		Password:       hashed,
		ProfilePicture: utils.DefaultAvatarURL(data.Username),
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if !s.auth.Register(user) {
		return models.UserResponse{}, apperror.Conflict("User already exists")
	}

	resp := *user.ToResponse()
	s.friends.CreateFriendsList(resp)

	return resp, nil
}

// RefreshToken mints a new access token from a refresh token sent either in
// the payload or in a cookie, never both.
func (s *AuthService) RefreshToken(payloadToken, cookieToken string) (string, error) {
	if payloadToken == "" && cookieToken == "" {
		return "", apperror.BadRequest("Refresh token must be sent either via cookie or payload!")
	}
	if payloadToken != "" && cookieToken != "" {
		return "", apperror.Forbidden("Cannot send both payload and cookie refresh token")
	}

	refreshToken := payloadToken
	if refreshToken == "" {
		refreshToken = cookieToken
	}

	claims, err := s.tokens.ParseRefreshToken(refreshToken)
	if err != nil {
		if errors.Is(err, utils.ErrTokenExpired) {
			return "", &apperror.Error{Kind: apperror.KindUnauthorized, Message: "Refresh token expired", Err: err}
		}
		return "", &apperror.Error{Kind: apperror.KindUnauthorized, Message: "Invalid refresh token", Err: err}
	}

	accessToken, err := s.tokens.CreateAccessToken(claims.UserID())
	if err != nil {
		return "", apperror.Internal("Fail to create access token!", err)
	}

	return accessToken, nil
}

func (s *AuthService) Me(id string) (models.UserResponse, error) {
	if id == "" {
		return models.UserResponse{}, apperror.BadRequest("User ID is required")
	}

	user, ok := s.auth.Me(id)
	if !ok {
		return models.UserResponse{}, apperror.NotFound("User not found")
	}

	return user, nil
}
