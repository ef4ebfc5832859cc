package services

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"mocksocial/apperror"
	"mocksocial/models"
	"mocksocial/store"
	"mocksocial/utils"
)

type recorder struct {
	events []string
}

func (r *recorder) Notify(event string, _ any) {
	r.events = append(r.events, event)
}

var fixtureTime = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

const (
	aliceID = "7b1e7f5e-3c1a-4d8a-9f55-0a1d2c3b4e01"
	bobID   = "7b1e7f5e-3c1a-4d8a-9f55-0a1d2c3b4e02"
	carolID = "7b1e7f5e-3c1a-4d8a-9f55-0a1d2c3b4e03"
	ghostID = "7b1e7f5e-3c1a-4d8a-9f55-0a1d2c3b4eff"
)

func newTestTokens(accessTTL, refreshTTL time.Duration) *utils.TokenManager {
	return utils.NewTokenManager("access-secret", "refresh-secret", accessTTL, refreshTTL)
}

// newTestServices returns services over a store holding alice, bob and
// carol (password "<name>-password"). alice and bob are friends; post p1 by
// alice has comments c1 and c2, post p2 by bob has c3.
func newTestServices(t *testing.T) (*Services, *store.DataStore, *recorder) {
	t.Helper()

	user := func(id, name string) models.User {
		hashed, err := utils.HashPassword(name+"-password", bcrypt.MinCost)
		require.NoError(t, err)
		return models.User{ID: id, Username: name, Email: name + "@example.com", Password: hashed, CreatedAt: fixtureTime, UpdatedAt: fixtureTime}
	}
	comment := func(id, post, owner string) models.Comment {
		return models.Comment{ID: id, Post: post, Owner: owner, Likes: []string{}, Dislikes: []string{}, Replies: []string{}, CreatedAt: fixtureTime, UpdatedAt: fixtureTime}
	}

	ds := store.New()
	ds.SetState(func(store.State) store.State {
		return store.State{
			Users: []models.User{user(aliceID, "alice"), user(bobID, "bob"), user(carolID, "carol")},
			Posts: []models.Post{
				{ID: "p1", Owner: aliceID, Images: []string{}, Likes: []string{}, Dislikes: []string{}, CreatedAt: fixtureTime, UpdatedAt: fixtureTime},
				{ID: "p2", Owner: bobID, Images: []string{}, Likes: []string{}, Dislikes: []string{}, CreatedAt: fixtureTime, UpdatedAt: fixtureTime},
			},
			Comments: []models.Comment{comment("c1", "p1", aliceID), comment("c2", "p1", bobID), comment("c3", "p2", bobID)},
			FriendsLists: []models.FriendsList{
				{UserID: aliceID, List: []models.Friendship{{ID: bobID, FriendsSince: fixtureTime}}, CreatedAt: fixtureTime, UpdatedAt: fixtureTime},
				{UserID: bobID, List: []models.Friendship{{ID: aliceID, FriendsSince: fixtureTime}}, CreatedAt: fixtureTime, UpdatedAt: fixtureTime},
				{UserID: carolID, List: []models.Friendship{}, CreatedAt: fixtureTime, UpdatedAt: fixtureTime},
			},
		}
	})

	rec := &recorder{}
	return New(ds, newTestTokens(time.Minute, time.Hour), bcrypt.MinCost, rec), ds, rec
}

func assertAppError(t *testing.T, err error, kind apperror.Kind, message string) {
	t.Helper()

	var appErr *apperror.Error
	require.True(t, errors.As(err, &appErr), "expected *apperror.Error, got %v", err)
	assert.Equal(t, kind, appErr.Kind)
	assert.Equal(t, message, appErr.Message)
}
