package services

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mocksocial/apperror"
	"mocksocial/events"
	"mocksocial/models"
)

func TestFriendService_AddFriend(t *testing.T) {
	tests := []struct {
		name    string
		userID  string
		friend  string
		kind    apperror.Kind
		message string
	}{
		{"unknown user", ghostID, bobID, apperror.KindNotFound, "Cannot find friends list from the given user!"},
		{"unknown friend", aliceID, ghostID, apperror.KindNotFound, "User that is to be a new friend cannot be found!"},
		{"self", aliceID, aliceID, apperror.KindValidation, "Cannot add yourself as a friend!"},
		{"already a friend", aliceID, bobID, apperror.KindConflict, "This user is already a friend!"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _, _ := newTestServices(t)
			assertAppError(t, svc.Friend.AddFriend(tt.userID, tt.friend), tt.kind, tt.message)
		})
	}

	t.Run("twice", func(t *testing.T) {
		svc, _, rec := newTestServices(t)

		require.NoError(t, svc.Friend.AddFriend(aliceID, carolID))
		assertAppError(t, svc.Friend.AddFriend(aliceID, carolID), apperror.KindConflict, "This user is already a friend!")
		assert.Equal(t, []string{events.FriendAdded}, rec.events)
	})
}

func TestFriendService_ConcurrentDuplicates(t *testing.T) {
	const attempts = 16

	run := func(op func() error) []error {
		errs := make([]error, attempts)
		var wg sync.WaitGroup
		for i := range attempts {
			wg.Add(1)
			go func() {
				defer wg.Done()
				errs[i] = op()
			}()
		}
		wg.Wait()
		return errs
	}

	svc, _, _ := newTestServices(t)

	added := run(func() error { return svc.Friend.AddFriend(aliceID, carolID) })
	removed := run(func() error { return svc.Friend.RemoveFriend(aliceID, carolID) })

	for _, tc := range []struct {
		errs    []error
		message string
	}{
		{added, "This user is already a friend!"},
		{removed, "This user is already not your friend!"},
	} {
		succeeded := 0
		for _, err := range tc.errs {
			if err == nil {
				succeeded++
				continue
			}
			assertAppError(t, err, apperror.KindConflict, tc.message)
		}
		assert.Equal(t, 1, succeeded)
	}
}

func TestFriendService_RemoveFriend(t *testing.T) {
	svc, _, rec := newTestServices(t)

	assertAppError(t, svc.Friend.RemoveFriend(aliceID, carolID), apperror.KindConflict, "This user is already not your friend!")
	assertAppError(t, svc.Friend.RemoveFriend(aliceID, ghostID), apperror.KindNotFound, "User that is to be unfriended cannot be found!")
	assertAppError(t, svc.Friend.RemoveFriend(ghostID, bobID), apperror.KindNotFound, "Cannot find friends list from the given user!")

	require.NoError(t, svc.Friend.RemoveFriend(aliceID, bobID))
	assert.Equal(t, []string{events.FriendRemoved}, rec.events)

	page, err := svc.Friend.GetFriends(aliceID, 10, 1, false)
	require.NoError(t, err)
	list := page.FriendsList.(models.FriendsList)
	assert.Empty(t, list.List)
	assert.True(t, list.UpdatedAt.After(list.CreatedAt))
}

func TestFriendService_GetFriends(t *testing.T) {
	svc, _, _ := newTestServices(t)
	require.NoError(t, svc.Friend.AddFriend(aliceID, carolID))

	page, err := svc.Friend.GetFriends(aliceID, 1, 1, false)
	require.NoError(t, err)
	list := page.FriendsList.(models.FriendsList)
	require.Len(t, list.List, 1)
	assert.Equal(t, carolID, list.List[0].ID)
	assert.Equal(t, 2, page.Metadata.Total)

	page, err = svc.Friend.GetFriends(aliceID, 10, 1, true)
	require.NoError(t, err)
	detail := page.FriendsList.(models.FriendsListDetail)
	require.Len(t, detail.List, 2)
	assert.Equal(t, "carol", detail.List[0].User.Username)
	assert.Equal(t, "bob", detail.List[1].User.Username)

	_, err = svc.Friend.GetFriends(ghostID, 10, 1, false)
	assertAppError(t, err, apperror.KindNotFound, "Cannot find friends list from the given user!")
}
