package service

import (
	"context"
	"errors"

	"devconnect/internal/models"
	"devconnect/internal/repository"

	"gorm.io/gorm"
)

type CommentService struct {
	commentRepo repository.CommentRepository
	postRepo    repository.PostRepository
	userRepo    repository.UserRepository
}

func NewCommentService(
	commentRepo repository.CommentRepository,
	postRepo repository.PostRepository,
	userRepo repository.UserRepository,
) *CommentService {
	return &CommentService{
		commentRepo: commentRepo,
		postRepo:    postRepo,
		userRepo:    userRepo,
	}
}

func (s *CommentService) requirePost(ctx context.Context, postID uint) error {
	_, err := s.postRepo.GetByID(ctx, postID)
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return models.NewNotFoundError("Post not found")
	case err != nil:
		return models.NewInternalError(err)
	}
	return nil
}

// Add attaches a comment to a post, snapshotting the commenter's name and
// avatar, and returns the post's updated comments list, newest first.
func (s *CommentService) Add(ctx context.Context, userID, postID uint, text string) ([]models.Comment, error) {
	if err := s.requirePost(ctx, postID); err != nil {
		return nil, err
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return nil, models.NewNotFoundError("User not found")
	case err != nil:
		return nil, models.NewInternalError(err)
	}

	comment := &models.Comment{
		PostID: postID,
		UserID: user.ID,
		Text:   text,
		Name:   user.Name,
		Avatar: user.Avatar,
	}
	if err := s.commentRepo.Create(ctx, comment); err != nil {
		return nil, models.NewInternalError(err)
	}

	comments, err := s.commentRepo.ListByPost(ctx, postID)
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return comments, nil
}

// Delete removes a single comment by its id. Only the comment's author may
// delete it; which comment goes away never depends on the caller's other
// comments on the post.
func (s *CommentService) Delete(ctx context.Context, userID, postID, commentID uint) ([]models.Comment, error) {
	if err := s.requirePost(ctx, postID); err != nil {
		return nil, err
	}

	comment, err := s.commentRepo.GetByID(ctx, commentID)
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return nil, models.NewNotFoundError("Comment does not exist")
	case err != nil:
		return nil, models.NewInternalError(err)
	}
	if comment.PostID != postID {
		return nil, models.NewNotFoundError("Comment does not exist")
	}

	if comment.UserID != userID {
		return nil, models.NewUnauthorizedError("User not authorized")
	}

	if err := s.commentRepo.Delete(ctx, comment.ID); err != nil {
		return nil, models.NewInternalError(err)
	}

	comments, err := s.commentRepo.ListByPost(ctx, postID)
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return comments, nil
}
