package services

import (
	"time"

	"mocksocial/apperror"
	"mocksocial/events"
	"mocksocial/models"
	"mocksocial/repositories"
	"mocksocial/utils"
)

type CommentService struct {
	comments *repositories.CommentRepository
	posts    *repositories.PostRepository
	users    *repositories.UserRepository
	notifier events.Notifier
}

type CommentCreate struct {
	Content string
	Owner   string
}

type CommentEdit struct {
	Content  string
	Likes    []string
	Dislikes []string
	Replies  []string
}

func (s *CommentService) AddComment(postID string, data CommentCreate) (models.Comment, error) {
	if _, ok := s.posts.GetPostByID(postID); !ok {
		return models.Comment{}, apperror.NotFound("The post for this comment is missing!")
	}
	if _, ok := s.users.GetUserByID(data.Owner); !ok {
		return models.Comment{}, apperror.NotFound("Comment owner is not found!")
	}

	now := time.Now().UTC()
	comment := models.Comment{
		ID:        utils.GenerateUUID(),
		Content:   data.Content,
		Post:      postID,
		Owner:     data.Owner,
		Likes:     []string{},
		Dislikes:  []string{},
		Replies:   []string{},
		CreatedAt: now,
		UpdatedAt: now,
	}

	s.comments.AddComment(comment)
	s.notifier.Notify(events.CommentCreated, comment)

	return comment, nil
}

func (s *CommentService) GetCommentsOfPost(postID string, limit, page int) (Page[models.Comment], error) {
	comments, ok := s.comments.GetCommentsOfPost(postID)
	if !ok {
		return Page[models.Comment]{}, apperror.NotFound("This post is not found!")
	}
	return Paginate(comments, limit, page), nil
}

func (s *CommentService) GetCommentByID(id string) (models.Comment, error) {
	comment, ok := s.comments.GetCommentByID(id)
	if !ok {
		return models.Comment{}, apperror.NotFound("This comment is not found!")
	}
	return comment, nil
}

// UpdateComment checks likes, then dislikes, then replies. A reply must be
// an existing comment on the same post, other than the comment itself, and
// listed once.
func (s *CommentService) UpdateComment(id string, data CommentEdit) (models.Comment, error) {
	comment, err := s.GetCommentByID(id)
	if err != nil {
		return models.Comment{}, err
	}

	comment.Content = data.Content
	comment.Likes = data.Likes
	comment.Dislikes = data.Dislikes
	comment.Replies = data.Replies
	comment.UpdatedAt = time.Now().UTC()
	comment = comment.Clone()

	if !validateUserIDs(s.users, comment.Likes) {
		return models.Comment{}, apperror.NotFound("Some likes are not valid!")
	}
	if !validateUserIDs(s.users, comment.Dislikes) {
		return models.Comment{}, apperror.NotFound("Some dislikes are not valid!")
	}
	if err := s.validateReplies(comment); err != nil {
		return models.Comment{}, err
	}

	if !s.comments.UpdateComment(comment) {
		return models.Comment{}, apperror.NotFound("This comment is not found!")
	}

	return comment, nil
}

func (s *CommentService) validateReplies(comment models.Comment) error {
	seen := make(map[string]struct{}, len(comment.Replies))

	for _, replyID := range comment.Replies {
		if replyID == comment.ID {
			return apperror.BadRequest("A comment cannot reply to itself!")
		}
		if _, ok := seen[replyID]; ok {
			return apperror.BadRequest("Some replies are duplicated!")
		}
		seen[replyID] = struct{}{}

		reply, ok := s.comments.GetCommentByID(replyID)
		if !ok {
			return apperror.NotFound("Some replies are not valid!")
		}
		if reply.Post != comment.Post {
			return apperror.BadRequest("Replies must belong to the same post!")
		}
	}

	return nil
}

func (s *CommentService) DeleteComment(id string) error {
	if !s.comments.DeleteComment(id) {
		return apperror.NotFound("This comment is not found!")
	}
	return nil
}
