package repositories

import (
	"slices"

	"mocksocial/models"
	"mocksocial/store"
)

type CommentRepository struct {
	store *store.DataStore
}

func NewCommentRepository(ds *store.DataStore) *CommentRepository {
	return &CommentRepository{store: ds}
}

func (r *CommentRepository) AddComment(comment models.Comment) {
	r.store.SetState(func(state store.State) store.State {
		state.Comments = slices.Insert(state.Comments, 0, comment)
		return state
	})
}

// GetCommentsOfPost reports false when the post does not exist.
func (r *CommentRepository) GetCommentsOfPost(postID string) ([]models.Comment, bool) {
	state := r.store.GetState()

	if !slices.ContainsFunc(state.Posts, func(p models.Post) bool { return p.ID == postID }) {
		return nil, false
	}

	results := make([]models.Comment, 0)
	for _, comment := range state.Comments {
		if comment.Post == postID {
			results = append(results, comment)
		}
	}

	return results, true
}

func (r *CommentRepository) GetCommentByID(id string) (models.Comment, bool) {
	comments := r.store.GetState().Comments

	idx := slices.IndexFunc(comments, func(c models.Comment) bool { return c.ID == id })
	if idx < 0 {
		return models.Comment{}, false
	}
	return comments[idx], true
}

func (r *CommentRepository) UpdateComment(updated models.Comment) bool {
	isUpdated := false

	r.store.SetState(func(state store.State) store.State {
		idx := slices.IndexFunc(state.Comments, func(c models.Comment) bool { return c.ID == updated.ID })
		if idx < 0 {
			return state
		}

		isUpdated = true
		state.Comments[idx] = updated.Clone()
		return state
	})

	return isUpdated
}

func (r *CommentRepository) DeleteComment(id string) bool {
	isDeleted := false

	r.store.SetState(func(state store.State) store.State {
		before := len(state.Comments)
		state.Comments = slices.DeleteFunc(state.Comments, func(c models.Comment) bool { return c.ID == id })
		isDeleted = len(state.Comments) < before
		return state
	})

	return isDeleted
}
