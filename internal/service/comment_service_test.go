package service

import (
	"context"
	"testing"

	"devconnect/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// commentRepoStub is a stub for repository.CommentRepository.
type commentRepoStub struct {
	createFn     func(context.Context, *models.Comment) error
	getByIDFn    func(context.Context, uint) (*models.Comment, error)
	listByPostFn func(context.Context, uint) ([]models.Comment, error)
	deleteFn     func(context.Context, uint) error
}

func (s *commentRepoStub) Create(ctx context.Context, comment *models.Comment) error {
	return s.createFn(ctx, comment)
}
func (s *commentRepoStub) GetByID(ctx context.Context, id uint) (*models.Comment, error) {
	return s.getByIDFn(ctx, id)
}
func (s *commentRepoStub) ListByPost(ctx context.Context, postID uint) ([]models.Comment, error) {
	return s.listByPostFn(ctx, postID)
}
func (s *commentRepoStub) Delete(ctx context.Context, id uint) error {
	return s.deleteFn(ctx, id)
}

func noopCommentRepo() *commentRepoStub {
	return &commentRepoStub{
		createFn:     func(_ context.Context, _ *models.Comment) error { return nil },
		getByIDFn:    func(_ context.Context, _ uint) (*models.Comment, error) { return &models.Comment{}, nil },
		listByPostFn: func(_ context.Context, _ uint) ([]models.Comment, error) { return nil, nil },
		deleteFn:     func(_ context.Context, _ uint) error { return nil },
	}
}

func TestCommentService_Add(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("unknown post", func(t *testing.T) {
		t.Parallel()
		postRepo := noopPostRepo()
		postRepo.getByIDFn = func(_ context.Context, _ uint) (*models.Post, error) {
			return nil, gorm.ErrRecordNotFound
		}
		svc := NewCommentService(noopCommentRepo(), postRepo, noopUserRepo())
		_, err := svc.Add(ctx, 1, 99, "hi")
		assertNotFoundError(t, err)
		assert.Equal(t, "Post not found", err.Error())
	})

	t.Run("snapshots commenter", func(t *testing.T) {
		t.Parallel()
		userRepo := noopUserRepo()
		userRepo.getByIDFn = func(_ context.Context, id uint) (*models.User, error) {
			return &models.User{ID: id, Name: "Jane Doe", Avatar: "//gravatar/jane"}, nil
		}

		var created *models.Comment
		commentRepo := noopCommentRepo()
		commentRepo.createFn = func(_ context.Context, c *models.Comment) error {
			c.ID = 7
			created = c
			return nil
		}
		commentRepo.listByPostFn = func(_ context.Context, postID uint) ([]models.Comment, error) {
			return []models.Comment{*created}, nil
		}

		svc := NewCommentService(commentRepo, noopPostRepo(), userRepo)
		comments, err := svc.Add(ctx, 2, 1, "Nice post")
		require.NoError(t, err)
		require.Len(t, comments, 1)
		assert.Equal(t, "Jane Doe", comments[0].Name)
		assert.Equal(t, uint(2), comments[0].UserID)
		assert.Equal(t, uint(1), comments[0].PostID)
	})
}

func TestCommentService_Delete(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("unknown comment", func(t *testing.T) {
		t.Parallel()
		commentRepo := noopCommentRepo()
		commentRepo.getByIDFn = func(_ context.Context, _ uint) (*models.Comment, error) {
			return nil, gorm.ErrRecordNotFound
		}
		svc := NewCommentService(commentRepo, noopPostRepo(), noopUserRepo())
		_, err := svc.Delete(ctx, 1, 1, 99)
		assertNotFoundError(t, err)
		assert.Equal(t, "Comment does not exist", err.Error())
	})

	t.Run("comment on different post", func(t *testing.T) {
		t.Parallel()
		commentRepo := noopCommentRepo()
		commentRepo.getByIDFn = func(_ context.Context, id uint) (*models.Comment, error) {
			return &models.Comment{ID: id, PostID: 2, UserID: 1}, nil
		}
		svc := NewCommentService(commentRepo, noopPostRepo(), noopUserRepo())
		_, err := svc.Delete(ctx, 1, 1, 7)
		assertNotFoundError(t, err)
	})

	t.Run("non-author cannot delete", func(t *testing.T) {
		t.Parallel()
		commentRepo := noopCommentRepo()
		commentRepo.getByIDFn = func(_ context.Context, id uint) (*models.Comment, error) {
			return &models.Comment{ID: id, PostID: 1, UserID: 3}, nil
		}
		svc := NewCommentService(commentRepo, noopPostRepo(), noopUserRepo())
		_, err := svc.Delete(ctx, 1, 1, 7)
		assertUnauthorizedError(t, err)
		assert.Equal(t, "User not authorized", err.Error())
	})

	// The author has several comments on the post; deleting by id must
	// remove exactly the named one, not the first of theirs found.
	t.Run("removes exactly the named comment", func(t *testing.T) {
		t.Parallel()
		comments := map[uint]*models.Comment{
			7: {ID: 7, PostID: 1, UserID: 1, Text: "first"},
			8: {ID: 8, PostID: 1, UserID: 1, Text: "second"},
			9: {ID: 9, PostID: 1, UserID: 1, Text: "third"},
		}

		commentRepo := noopCommentRepo()
		commentRepo.getByIDFn = func(_ context.Context, id uint) (*models.Comment, error) {
			c, ok := comments[id]
			if !ok {
				return nil, gorm.ErrRecordNotFound
			}
			return c, nil
		}
		commentRepo.deleteFn = func(_ context.Context, id uint) error {
			delete(comments, id)
			return nil
		}
		commentRepo.listByPostFn = func(_ context.Context, _ uint) ([]models.Comment, error) {
			var out []models.Comment
			for _, c := range comments {
				out = append(out, *c)
			}
			return out, nil
		}

		svc := NewCommentService(commentRepo, noopPostRepo(), noopUserRepo())
		remaining, err := svc.Delete(ctx, 1, 1, 8)
		require.NoError(t, err)
		assert.Len(t, remaining, 2)
		assert.NotContains(t, comments, uint(8))
		assert.Contains(t, comments, uint(7))
		assert.Contains(t, comments, uint(9))
	})
}
