// Package seed fills the data store with interlinked fake users, posts,
// comments and friends lists, and reseeds it on an interval.
package seed

import (
	"errors"
	"fmt"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	log "github.com/sirupsen/logrus"

	"mocksocial/events"
	"mocksocial/models"
	"mocksocial/store"
	"mocksocial/utils"
)

const (
	AdminID       = "5d46479a-c622-4450-8345-9c8aa5344ac5"
	AdminUsername = "admin"
	AdminEmail    = "admin@admin.com"
	AdminPassword = "test12345"

	// Percentage of a pool picked by randomSubset, on average.
	subsetChance = 24
	maxReplies   = 5
	maxImages    = 5
	history      = 365 * 24 * time.Hour
)

var (
	ErrNoPassword = errors.New("seed: default password is empty")
	ErrAmount     = errors.New("seed: invalid amount")
)

type Options struct {
	UserAmount    int
	PostAmount    int
	CommentAmount int

	// DefaultPassword is shared by every fabricated user.
	DefaultPassword string
	BcryptCost      int

	// WithAdmin adds a fixed admin account for manual testing.
	WithAdmin bool

	// RandSeed makes the generated content reproducible. Zero picks a random seed.
	RandSeed uint64
}

type Seeder struct {
	store    *store.DataStore
	opts     Options
	notifier events.Notifier
	faker    *gofakeit.Faker

	passwordHash string
	adminHash    string
}

// New hashes the shared passwords once so that every reseed stays cheap.
func New(ds *store.DataStore, opts Options, notifier events.Notifier) (*Seeder, error) {
	if opts.DefaultPassword == "" {
		return nil, ErrNoPassword
	}

	passwordHash, err := utils.HashPassword(opts.DefaultPassword, opts.BcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hash default password: %w", err)
	}

	s := &Seeder{
		store:        ds,
		opts:         opts,
		notifier:     events.OrNop(notifier),
		faker:        gofakeit.New(opts.RandSeed),
		passwordHash: passwordHash,
	}

	if opts.WithAdmin {
		s.adminHash, err = utils.HashPassword(AdminPassword, opts.BcryptCost)
		if err != nil {
			return nil, fmt.Errorf("hash admin password: %w", err)
		}
	}

	return s, nil
}

// SeedFromConfig seeds with the amounts the Seeder was built with.
func (s *Seeder) SeedFromConfig() error {
	return s.Seed(s.opts.UserAmount, s.opts.PostAmount, s.opts.CommentAmount)
}

// Seed replaces the whole store with a freshly generated snapshot.
// commentAmount counts root comments; each root brings 1 to 5 replies along,
// so the store ends up with more comments than requested.
func (s *Seeder) Seed(userAmount, postAmount, commentAmount int) error {
	if userAmount < 0 || postAmount < 0 || commentAmount < 0 {
		return fmt.Errorf("%w: users=%d posts=%d comments=%d", ErrAmount, userAmount, postAmount, commentAmount)
	}

	now := time.Now().UTC()

	users := s.fakeUsers(userAmount, now)
	if len(users) == 0 && postAmount > 0 {
		return fmt.Errorf("%w: posts need at least one user", ErrAmount)
	}
	if postAmount == 0 && commentAmount > 0 {
		return fmt.Errorf("%w: comments need at least one post", ErrAmount)
	}

	userIDs := make([]string, len(users))
	for i, user := range users {
		userIDs[i] = user.ID
	}

	friendsLists := make([]models.FriendsList, len(users))
	for i, user := range users {
		friendsLists[i] = s.fakeFriendsList(user, users, now)
	}

	posts := make([]models.Post, postAmount)
	for i := range posts {
		owner := users[s.faker.IntN(len(users))]
		posts[i] = s.fakePost(owner, userIDs, now)
	}

	comments := make([]models.Comment, 0, commentAmount*(maxReplies+1))
	for range commentAmount {
		post := posts[s.faker.IntN(len(posts))]
		comments = append(comments, s.fakeCommentGroup(post, userIDs, now)...)
	}

	s.store.SetState(func(state store.State) store.State {
		state.Users = users
		state.Posts = posts
		state.Comments = comments
		state.FriendsLists = friendsLists
		return state
	})

	log.Infof("[seed] store seeded with %d users, %d posts, %d comments", len(users), len(posts), len(comments))
	s.notifier.Notify(events.StoreReseeded, map[string]int{
		"users":    len(users),
		"posts":    len(posts),
		"comments": len(comments),
	})

	return nil
}

func (s *Seeder) fakeUsers(amount int, now time.Time) []models.User {
	users := make([]models.User, 0, amount+1)
	usernames := make(map[string]struct{}, amount+1)
	emails := make(map[string]struct{}, amount+1)

	if s.opts.WithAdmin {
		usernames[AdminUsername] = struct{}{}
		emails[AdminEmail] = struct{}{}
	}

	for range amount {
		username := unique(usernames, s.faker.Username)
		email := unique(emails, s.faker.Email)
		createdAt := s.faker.DateRange(now.Add(-history), now)
		id := utils.GenerateUUID()

		users = append(users, models.User{
			ID:             id,
			Username:       username,
			Email:          email,
			Password:       s.passwordHash,
			ProfilePicture: "https://i.pravatar.cc/300?u=" + id,
			CreatedAt:      createdAt,
			UpdatedAt:      s.faker.DateRange(createdAt, now),
		})
	}

	if s.opts.WithAdmin {
		users = append(users, models.User{
			ID:             AdminID,
			Username:       AdminUsername,
			Email:          AdminEmail,
			Password:       s.adminHash,
			ProfilePicture: utils.DefaultAvatarURL(AdminUsername),
			CreatedAt:      now,
			UpdatedAt:      now,
		})
	}

	return users
}

func (s *Seeder) fakeFriendsList(user models.User, users []models.User, now time.Time) models.FriendsList {
	list := []models.Friendship{}
	for _, other := range users {
		if other.ID == user.ID || !s.pick() {
			continue
		}

		since := user.CreatedAt
		if other.CreatedAt.After(since) {
			since = other.CreatedAt
		}

		list = append(list, models.Friendship{
			ID:           other.ID,
			FriendsSince: s.faker.DateRange(since, now),
		})
	}

	updatedAt := user.CreatedAt
	for _, friend := range list {
		if friend.FriendsSince.After(updatedAt) {
			updatedAt = friend.FriendsSince
		}
	}

	return models.FriendsList{
		UserID:    user.ID,
		List:      list,
		CreatedAt: user.CreatedAt,
		UpdatedAt: updatedAt,
	}
}

func (s *Seeder) fakePost(owner models.User, userIDs []string, now time.Time) models.Post {
	images := make([]string, s.faker.Number(1, maxImages))
	for i := range images {
		images[i] = fmt.Sprintf("https://picsum.photos/seed/%d/640/480", s.faker.Number(1, 1_000_000))
	}

	createdAt := s.faker.DateRange(owner.CreatedAt, now)

	return models.Post{
		ID:          utils.GenerateUUID(),
		Description: s.faker.Paragraph(1, s.faker.Number(2, 5), 12, " "),
		Images:      images,
		Owner:       owner.ID,
		Likes:       s.randomSubset(userIDs),
		Dislikes:    s.randomSubset(userIDs),
		CreatedAt:   createdAt,
		UpdatedAt:   s.faker.DateRange(createdAt, now),
	}
}

// fakeCommentGroup returns a root comment followed by 1 to 5 sibling
// comments on the same post. The root replies to a distinct subset of the
// siblings; a single sibling is never chosen.
func (s *Seeder) fakeCommentGroup(post models.Post, userIDs []string, now time.Time) []models.Comment {
	group := make([]models.Comment, s.faker.Number(1, maxReplies)+1)

	for i := range group {
		createdAt := s.faker.DateRange(post.CreatedAt, now)
		group[i] = models.Comment{
			ID:        utils.GenerateUUID(),
			Content:   s.faker.Sentence(s.faker.Number(4, 20)),
			Post:      post.ID,
			Owner:     userIDs[s.faker.IntN(len(userIDs))],
			Likes:     s.randomSubset(userIDs),
			Dislikes:  s.randomSubset(userIDs),
			Replies:   []string{},
			CreatedAt: createdAt,
			UpdatedAt: s.faker.DateRange(createdAt, now),
		}
	}

	siblings := group[1:]
	pool := make([]string, len(siblings))
	for i, sibling := range siblings {
		pool[i] = sibling.ID
	}

	if len(pool) > 1 {
		s.faker.ShuffleStrings(pool)
		group[0].Replies = pool[:s.faker.Number(1, len(pool))]
	}

	return group
}

func (s *Seeder) pick() bool {
	return s.faker.IntN(100) < subsetChance
}

func (s *Seeder) randomSubset(ids []string) []string {
	subset := []string{}
	for _, id := range ids {
		if s.pick() {
			subset = append(subset, id)
		}
	}
	return subset
}

// unique draws from generate until it returns a value not in seen, falling
// back to a numeric suffix after a few collisions.
func unique(seen map[string]struct{}, generate func() string) string {
	value := generate()
	for attempt := 0; ; attempt++ {
		if _, ok := seen[value]; !ok {
			seen[value] = struct{}{}
			return value
		}
		if attempt < 5 {
			value = generate()
		} else {
			value = fmt.Sprintf("%d%s", attempt, generate())
		}
	}
}
