package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"mocksocial/middleware"
	"mocksocial/models"
	"mocksocial/services"
	"mocksocial/store"
	"mocksocial/utils"
)

func init() {
	gin.SetMode(gin.TestMode)
}

var fixtureTime = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

const (
	aliceID = "0b8f7e52-6a53-4c1f-9a40-2f1e4a6d5c01"
	bobID   = "0b8f7e52-6a53-4c1f-9a40-2f1e4a6d5c02"
	ghostID = "0b8f7e52-6a53-4c1f-9a40-2f1e4a6d5cff"

	postID    = "5a2c9d10-8e0b-4f7a-b3c6-7d1e2f3a4b01"
	commentID = "9c4e1b20-1f2a-4b3c-8d4e-5f6a7b8c9d01"
	replyID   = "9c4e1b20-1f2a-4b3c-8d4e-5f6a7b8c9d02"
)

type testServer struct {
	router *gin.Engine
	tokens *utils.TokenManager
	ds     *store.DataStore
}

type envelope struct {
	StatusCode int             `json:"statusCode"`
	Error      string          `json:"error"`
	Message    string          `json:"message"`
	Data       json.RawMessage `json:"data"`
}

// newTestServer serves a store holding alice and bob (password
// "<name>-password"), alice's post with two comments, and extraPosts
// additional posts by bob.
func newTestServer(t *testing.T, extraPosts int) *testServer {
	t.Helper()

	user := func(id, name string) models.User {
		hashed, err := utils.HashPassword(name+"-password", bcrypt.MinCost)
		require.NoError(t, err)
		return models.User{ID: id, Username: name, Email: name + "@example.com", Password: hashed, CreatedAt: fixtureTime, UpdatedAt: fixtureTime}
	}
	post := func(id, owner string) models.Post {
		return models.Post{ID: id, Description: "post " + id, Owner: owner, Images: []string{}, Likes: []string{}, Dislikes: []string{}, CreatedAt: fixtureTime, UpdatedAt: fixtureTime}
	}
	comment := func(id, owner string) models.Comment {
		return models.Comment{ID: id, Content: "comment " + id, Post: postID, Owner: owner, Likes: []string{}, Dislikes: []string{}, Replies: []string{}, CreatedAt: fixtureTime, UpdatedAt: fixtureTime}
	}

	posts := []models.Post{post(postID, aliceID)}
	for range extraPosts {
		posts = append(posts, post(utils.GenerateUUID(), bobID))
	}

	ds := store.New()
	ds.SetState(func(store.State) store.State {
		return store.State{
			Users:    []models.User{user(aliceID, "alice"), user(bobID, "bob")},
			Posts:    posts,
			Comments: []models.Comment{comment(commentID, aliceID), comment(replyID, bobID)},
			FriendsLists: []models.FriendsList{
				{UserID: aliceID, List: []models.Friendship{{ID: bobID, FriendsSince: fixtureTime}}, CreatedAt: fixtureTime, UpdatedAt: fixtureTime},
				{UserID: bobID, List: []models.Friendship{}, CreatedAt: fixtureTime, UpdatedAt: fixtureTime},
			},
		}
	})

	tokens := utils.NewTokenManager("access-secret", "refresh-secret", time.Minute, time.Hour)
	svc := services.New(ds, tokens, bcrypt.MinCost, nil)

	r := gin.New()
	New(svc, tokens, true).RegisterRoutes(r.Group("/api/v1"), middleware.AuthMiddleware(tokens, svc.User))

	return &testServer{router: r, tokens: tokens, ds: ds}
}

func (s *testServer) accessToken(t *testing.T, userID string) string {
	t.Helper()

	token, err := s.tokens.CreateAccessToken(userID)
	require.NoError(t, err)
	return token
}

// do sends body as JSON, authenticating as userID unless it is empty.
func (s *testServer) do(t *testing.T, method, path, userID string, body any, cookies ...*http.Cookie) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if userID != "" {
		req.Header.Set("Authorization", "Bearer "+s.accessToken(t, userID))
	}
	for _, cookie := range cookies {
		req.AddCookie(cookie)
	}

	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)

	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env), w.Body.String())
	return w, env
}

func decodeData[T any](t *testing.T, env envelope) T {
	t.Helper()

	var data T
	require.NoError(t, json.Unmarshal(env.Data, &data))
	return data
}

func findCookie(w *httptest.ResponseRecorder, name string) *http.Cookie {
	for _, cookie := range w.Result().Cookies() {
		if cookie.Name == name {
			return cookie
		}
	}
	return nil
}
