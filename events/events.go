// Package events names the store events pushed to realtime subscribers.
package events

const (
	StoreReseeded  = "store.reseeded"
	UserDeleted    = "user.deleted"
	PostCreated    = "post.created"
	PostDeleted    = "post.deleted"
	CommentCreated = "comment.created"
	FriendAdded    = "friend.added"
	FriendRemoved  = "friend.removed"
)

// Friendship is the payload of FriendAdded and FriendRemoved.
type Friendship struct {
	UserID   string `json:"userId"`
	FriendID string `json:"friendId"`
}

// Notifier receives events from the seeder and the services.
type Notifier interface {
	Notify(event string, data any)
}

type nop struct{}

func (nop) Notify(string, any) {}

// Nop discards every event.
var Nop Notifier = nop{}

// OrNop returns n, or Nop when n is nil.
func OrNop(n Notifier) Notifier {
	if n == nil {
		return Nop
	}
	return n
}
