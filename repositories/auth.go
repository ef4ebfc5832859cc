package repositories

import (
	"mocksocial/models"
	"mocksocial/store"
	"mocksocial/utils"
)

type AuthRepository struct {
	store *store.DataStore
}

func NewAuthRepository(ds *store.DataStore) *AuthRepository {
	return &AuthRepository{store: ds}
}

// Login returns the user owning email when password matches its hash.
func (r *AuthRepository) Login(email, password string) (models.UserResponse, bool) {
	user, ok := findUser(r.store.GetState().Users, func(u models.User) bool { return u.Email == email })
	if !ok || !utils.CheckPassword(user.Password, password) {
		return models.UserResponse{}, false
	}
	return *user.ToResponse(), true
}

func (r *AuthRepository) Register(user models.User) bool {
	return addUser(r.store, user)
}

func (r *AuthRepository) Me(id string) (models.UserResponse, bool) {
	user, ok := findUser(r.store.GetState().Users, func(u models.User) bool { return u.ID == id })
	if !ok {
		return models.UserResponse{}, false
	}
	return *user.ToResponse(), true
}
