package seed

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

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

func newSeeder(t *testing.T, opts Options) (*Seeder, *store.DataStore) {
	t.Helper()

	if opts.DefaultPassword == "" {
		opts.DefaultPassword = "password123"
	}
	opts.BcryptCost = bcrypt.MinCost

	ds := store.New()
	s, err := New(ds, opts, nil)
	require.NoError(t, err)

	return s, ds
}

func TestNew_EmptyPassword(t *testing.T) {
	_, err := New(store.New(), Options{}, nil)
	assert.ErrorIs(t, err, ErrNoPassword)
}

func TestSeed_Counts(t *testing.T) {
	s, ds := newSeeder(t, Options{})
	require.NoError(t, s.Seed(10, 10, 10))

	state := ds.GetState()
	assert.Len(t, state.Users, 10)
	assert.Len(t, state.Posts, 10)
	assert.Len(t, state.FriendsLists, 10)
	assert.GreaterOrEqual(t, len(state.Comments), 10)
	assert.LessOrEqual(t, len(state.Comments), 10*(maxReplies+1))
}

func TestSeed_Invariants(t *testing.T) {
	s, ds := newSeeder(t, Options{RandSeed: 42})
	require.NoError(t, s.Seed(50, 40, 60))

	state := ds.GetState()

	t.Run("unique usernames and emails", func(t *testing.T) {
		usernames := map[string]bool{}
		emails := map[string]bool{}
		for _, user := range state.Users {
			assert.False(t, usernames[user.Username], "duplicate username %s", user.Username)
			assert.False(t, emails[user.Email], "duplicate email %s", user.Email)
			usernames[user.Username] = true
			emails[user.Email] = true
		}
	})

	t.Run("replies share the parent post", func(t *testing.T) {
		byID := make(map[string]models.Comment, len(state.Comments))
		for _, comment := range state.Comments {
			byID[comment.ID] = comment
		}

		for _, comment := range state.Comments {
			seen := map[string]bool{}
			for _, replyID := range comment.Replies {
				reply, ok := byID[replyID]
				require.True(t, ok)
				assert.Equal(t, comment.Post, reply.Post)
				assert.NotEqual(t, comment.ID, replyID)
				assert.False(t, seen[replyID], "duplicate reply %s", replyID)
				seen[replyID] = true
			}
		}
	})

	t.Run("friends lists", func(t *testing.T) {
		users := map[string]models.User{}
		for _, user := range state.Users {
			users[user.ID] = user
		}

		owners := map[string]bool{}
		for _, list := range state.FriendsLists {
			owner, ok := users[list.UserID]
			require.True(t, ok)
			assert.False(t, owners[list.UserID])
			owners[list.UserID] = true

			assert.Equal(t, owner.CreatedAt, list.CreatedAt)
			assert.False(t, list.HasFriend(list.UserID))

			seen := map[string]bool{}
			for _, friend := range list.List {
				_, ok := users[friend.ID]
				assert.True(t, ok)
				assert.False(t, seen[friend.ID])
				seen[friend.ID] = true
				assert.False(t, friend.FriendsSince.After(time.Now()))
			}
		}
	})

	t.Run("references resolve", func(t *testing.T) {
		users := map[string]bool{}
		for _, user := range state.Users {
			users[user.ID] = true
		}
		posts := map[string]bool{}
		for _, post := range state.Posts {
			posts[post.ID] = true
			assert.True(t, users[post.Owner])
			assert.NotEmpty(t, post.Images)
		}
		for _, comment := range state.Comments {
			assert.True(t, posts[comment.Post])
			assert.True(t, users[comment.Owner])
		}
	})

	t.Run("timestamps are ordered", func(t *testing.T) {
		for _, user := range state.Users {
			assert.False(t, user.CreatedAt.After(user.UpdatedAt))
		}
		for _, post := range state.Posts {
			assert.False(t, post.CreatedAt.After(post.UpdatedAt))
		}
		for _, comment := range state.Comments {
			assert.False(t, comment.CreatedAt.After(comment.UpdatedAt))
		}
		for _, list := range state.FriendsLists {
			assert.False(t, list.CreatedAt.After(list.UpdatedAt))
		}
	})
}

func TestSeed_SharedPassword(t *testing.T) {
	s, ds := newSeeder(t, Options{DefaultPassword: "secret-pass"})
	require.NoError(t, s.Seed(3, 0, 0))

	for _, user := range ds.GetState().Users {
		assert.True(t, utils.CheckPassword(user.Password, "secret-pass"))
	}
}

func TestSeed_WithAdmin(t *testing.T) {
	s, ds := newSeeder(t, Options{WithAdmin: true})
	require.NoError(t, s.Seed(5, 5, 5))

	state := ds.GetState()
	require.Len(t, state.Users, 6)

	admin := state.Users[len(state.Users)-1]
	assert.Equal(t, AdminID, admin.ID)
	assert.Equal(t, AdminEmail, admin.Email)
	assert.True(t, utils.CheckPassword(admin.Password, AdminPassword))
}

func TestSeed_InvalidAmounts(t *testing.T) {
	s, _ := newSeeder(t, Options{})

	tests := []struct {
		name                   string
		users, posts, comments int
	}{
		{"negative users", -1, 0, 0},
		{"posts without users", 0, 5, 0},
		{"comments without posts", 5, 0, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, s.Seed(tt.users, tt.posts, tt.comments), ErrAmount)
		})
	}
}

func TestSeed_ReplacesState(t *testing.T) {
	rec := &recorder{}
	ds := store.New()
	s, err := New(ds, Options{DefaultPassword: "password123", BcryptCost: bcrypt.MinCost}, rec)
	require.NoError(t, err)

	require.NoError(t, s.Seed(5, 5, 5))
	first := ds.GetState()

	require.NoError(t, s.Seed(3, 2, 1))
	second := ds.GetState()

	assert.Len(t, second.Users, 3)
	assert.Len(t, second.Posts, 2)
	assert.NotEqual(t, first.Users[0].ID, second.Users[0].ID)
	assert.Equal(t, []string{"store.reseeded", "store.reseeded"}, rec.events)
}

func TestFakeCommentGroup_SingleSiblingHasNoReplies(t *testing.T) {
	s, _ := newSeeder(t, Options{})
	post := models.Post{ID: "p1", CreatedAt: time.Now().Add(-time.Hour)}

	for range 200 {
		group := s.fakeCommentGroup(post, []string{"u1"}, time.Now())
		require.GreaterOrEqual(t, len(group), 2)

		siblings := len(group) - 1
		if siblings == 1 {
			assert.Empty(t, group[0].Replies)
		} else {
			assert.NotEmpty(t, group[0].Replies)
			assert.LessOrEqual(t, len(group[0].Replies), siblings)
		}
	}
}
