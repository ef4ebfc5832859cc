package services

import (
	"time"

	"mocksocial/apperror"
	"mocksocial/events"
	"mocksocial/models"
	"mocksocial/repositories"
	"mocksocial/utils"
)

type PostService struct {
	posts    *repositories.PostRepository
	users    *repositories.UserRepository
	notifier events.Notifier
}

type PostCreate struct {
	Description string
	Images      []string
}

// PostEdit replaces every editable field of a post. Nil lists become empty.
type PostEdit struct {
	Description string
	Images      []string
	Likes       []string
	Dislikes    []string
}

func (s *PostService) AddPost(ownerID string, data PostCreate) (models.Post, error) {
	if _, ok := s.users.GetUserByID(ownerID); !ok {
		return models.Post{}, apperror.NotFound("Post owner is not found!")
	}

	now := time.Now().UTC()
	post := models.Post{
		ID:          utils.GenerateUUID(),
		Description: data.Description,
		Images:      data.Images,
		Owner:       ownerID,
		Likes:       []string{},
		Dislikes:    []string{},
		CreatedAt:   now,
		UpdatedAt:   now,
	}.Clone()

	s.posts.AddPost(post)
	s.notifier.Notify(events.PostCreated, post)

	return post, nil
}

func (s *PostService) GetPosts(limit, page int, hasComments bool) Page[models.Post] {
	return Paginate(s.posts.GetPosts(hasComments), limit, page)
}

// GetPostsWithTopComments is GetPosts with the first comment ids of each
// post attached.
func (s *PostService) GetPostsWithTopComments(limit, page int, hasComments bool) Page[models.PostDetail] {
	posts := s.posts.PopulatePostsWithTopComments(s.posts.GetPosts(hasComments))
	return Paginate(posts, limit, page)
}

func (s *PostService) GetUserPosts(userID string, limit, page int) (Page[models.Post], error) {
	if _, ok := s.users.GetUserByID(userID); !ok {
		return Page[models.Post]{}, apperror.NotFound("User not found!")
	}
	return Paginate(s.posts.GetUserPosts(userID), limit, page), nil
}

func (s *PostService) GetPostByID(id string) (models.PostDetail, error) {
	post, ok := s.posts.GetPostByID(id)
	if !ok {
		return models.PostDetail{}, apperror.NotFound("This post is not found!")
	}

	details := s.posts.PopulatePostsWithTopComments([]models.Post{post})
	return details[0], nil
}

// UpdatePost validates likes before dislikes; the first unknown user id
// fails the update.
func (s *PostService) UpdatePost(id string, data PostEdit) (models.Post, error) {
	post, ok := s.posts.GetPostByID(id)
	if !ok {
		return models.Post{}, apperror.NotFound("This post is not found!")
	}

	post.Description = data.Description
	post.Images = data.Images
	post.Likes = data.Likes
	post.Dislikes = data.Dislikes
	post.UpdatedAt = time.Now().UTC()
	post = post.Clone()

	if !validateUserIDs(s.users, post.Likes) {
		return models.Post{}, apperror.NotFound("Some likes are not valid!")
	}
	if !validateUserIDs(s.users, post.Dislikes) {
		return models.Post{}, apperror.NotFound("Some dislikes are not valid!")
	}

	if !s.posts.UpdatePost(post) {
		return models.Post{}, apperror.Internal("Fail to update post!", nil)
	}

	return post, nil
}

func (s *PostService) DeletePost(id string) error {
	if !s.posts.DeletePost(id) {
		return apperror.NotFound("This post is not found!")
	}

	s.notifier.Notify(events.PostDeleted, map[string]string{"postId": id})
	return nil
}
