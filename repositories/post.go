package repositories

import (
	"slices"

	"mocksocial/models"
	"mocksocial/store"
)

// topComments is how many comment ids a PostDetail carries.
const topComments = 3

type PostRepository struct {
	store *store.DataStore
}

func NewPostRepository(ds *store.DataStore) *PostRepository {
	return &PostRepository{store: ds}
}

func (r *PostRepository) AddPost(post models.Post) {
	r.store.SetState(func(state store.State) store.State {
		state.Posts = slices.Insert(state.Posts, 0, post)
		return state
	})
}

// GetPosts returns every post, or only the commented ones when hasComments
// is set.
func (r *PostRepository) GetPosts(hasComments bool) []models.Post {
	state := r.store.GetState()
	if !hasComments {
		return state.Posts
	}

	commented := make(map[string]struct{}, len(state.Comments))
	for _, comment := range state.Comments {
		commented[comment.Post] = struct{}{}
	}

	results := make([]models.Post, 0, len(commented))
	for _, post := range state.Posts {
		if _, ok := commented[post.ID]; ok {
			results = append(results, post)
		}
	}

	return results
}

func (r *PostRepository) GetUserPosts(userID string) []models.Post {
	posts := r.store.GetState().Posts

	results := make([]models.Post, 0)
	for _, post := range posts {
		if post.Owner == userID {
			results = append(results, post)
		}
	}

	return results
}

func (r *PostRepository) GetPostByID(id string) (models.Post, bool) {
	posts := r.store.GetState().Posts

	idx := slices.IndexFunc(posts, func(p models.Post) bool { return p.ID == id })
	if idx < 0 {
		return models.Post{}, false
	}
	return posts[idx], true
}

// PopulatePostsWithTopComments attaches the ids of the first comments on
// each post, in store order.
func (r *PostRepository) PopulatePostsWithTopComments(posts []models.Post) []models.PostDetail {
	comments := r.store.GetState().Comments

	byPost := make(map[string][]string, len(posts))
	for _, comment := range comments {
		if len(byPost[comment.Post]) < topComments {
			byPost[comment.Post] = append(byPost[comment.Post], comment.ID)
		}
	}

	details := make([]models.PostDetail, len(posts))
	for i, post := range posts {
		ids := byPost[post.ID]
		if ids == nil {
			ids = []string{}
		}
		details[i] = models.PostDetail{Post: post, Comments: ids}
	}

	return details
}

func (r *PostRepository) UpdatePost(updated models.Post) bool {
	isUpdated := false

	r.store.SetState(func(state store.State) store.State {
		idx := slices.IndexFunc(state.Posts, func(p models.Post) bool { return p.ID == updated.ID })
		if idx < 0 {
			return state
		}

		isUpdated = true
		state.Posts[idx] = updated.Clone()
		return state
	})

	return isUpdated
}

// DeletePost removes the post only. Its comments stay in the store.
func (r *PostRepository) DeletePost(id string) bool {
	isDeleted := false

	r.store.SetState(func(state store.State) store.State {
		before := len(state.Posts)
		state.Posts = slices.DeleteFunc(state.Posts, func(p models.Post) bool { return p.ID == id })
		isDeleted = len(state.Posts) < before
		return state
	})

	return isDeleted
}
