package service

import (
	"context"
	"errors"

	"devconnect/internal/models"
	"devconnect/internal/repository"

	"gorm.io/gorm"
)

type PostService struct {
	postRepo repository.PostRepository
	userRepo repository.UserRepository
}

func NewPostService(postRepo repository.PostRepository, userRepo repository.UserRepository) *PostService {
	return &PostService{postRepo: postRepo, userRepo: userRepo}
}

// Create publishes a post, snapshotting the author's current name and
// avatar onto it. Later account edits do not propagate to existing posts.
func (s *PostService) Create(ctx context.Context, userID uint, text string) (*models.Post, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return nil, models.NewNotFoundError("User not found")
	case err != nil:
		return nil, models.NewInternalError(err)
	}

	post := &models.Post{
		UserID: user.ID,
		Text:   text,
		Name:   user.Name,
		Avatar: user.Avatar,
	}
	if err := s.postRepo.Create(ctx, post); err != nil {
		return nil, models.NewInternalError(err)
	}
	return post, nil
}

// List returns every post, newest first.
func (s *PostService) List(ctx context.Context) ([]*models.Post, error) {
	posts, err := s.postRepo.List(ctx)
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return posts, nil
}

// Get loads a single post with its likes and comments.
func (s *PostService) Get(ctx context.Context, postID uint) (*models.Post, error) {
	post, err := s.postRepo.GetByID(ctx, postID)
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return nil, models.NewNotFoundError("Post not found")
	case err != nil:
		return nil, models.NewInternalError(err)
	}
	return post, nil
}

// Delete removes a post the caller owns, along with its likes and comments.
func (s *PostService) Delete(ctx context.Context, userID, postID uint) error {
	post, err := s.Get(ctx, postID)
	if err != nil {
		return err
	}

	if post.UserID != userID {
		return models.NewUnauthorizedError("User not authorized")
	}

	if err := s.postRepo.Delete(ctx, postID); err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

// Like records the caller's like and returns the post's updated likes list.
// A post can be liked at most once per user.
func (s *PostService) Like(ctx context.Context, userID, postID uint) ([]models.Like, error) {
	if _, err := s.Get(ctx, postID); err != nil {
		return nil, err
	}

	liked, err := s.postRepo.IsLiked(ctx, userID, postID)
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	if liked {
		return nil, models.NewConflictError("Post already liked")
	}

	if err := s.postRepo.Like(ctx, userID, postID); err != nil {
		return nil, models.NewInternalError(err)
	}

	likes, err := s.postRepo.ListLikes(ctx, postID)
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return likes, nil
}

// Unlike removes the caller's like and returns the remaining likes list.
func (s *PostService) Unlike(ctx context.Context, userID, postID uint) ([]models.Like, error) {
	if _, err := s.Get(ctx, postID); err != nil {
		return nil, err
	}

	liked, err := s.postRepo.IsLiked(ctx, userID, postID)
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	if !liked {
		return nil, models.NewConflictError("Post has not yet been liked")
	}

	if err := s.postRepo.Unlike(ctx, userID, postID); err != nil {
		return nil, models.NewInternalError(err)
	}

	likes, err := s.postRepo.ListLikes(ctx, postID)
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return likes, nil
}
