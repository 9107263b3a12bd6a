package service

import (
	"context"
	"strings"
	"testing"

	"friendly/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// commentRepoStub is a stub for repository.CommentRepository.
type commentRepoStub struct {
	createFn     func(context.Context, *models.Comment) error
	getByIDFn    func(context.Context, int) (*models.Comment, error)
	listFn       func(context.Context) ([]*models.Comment, error)
	listByPostFn func(context.Context, int) ([]*models.Comment, error)
	updateFn     func(context.Context, *models.Comment) error
	deleteFn     func(context.Context, int) error
}

func (s *commentRepoStub) Create(ctx context.Context, comment *models.Comment) error {
	return s.createFn(ctx, comment)
}
func (s *commentRepoStub) GetByID(ctx context.Context, id int) (*models.Comment, error) {
	return s.getByIDFn(ctx, id)
}
func (s *commentRepoStub) List(ctx context.Context) ([]*models.Comment, error) {
	return s.listFn(ctx)
}
func (s *commentRepoStub) ListByPost(ctx context.Context, postID int) ([]*models.Comment, error) {
	return s.listByPostFn(ctx, postID)
}
func (s *commentRepoStub) Update(ctx context.Context, comment *models.Comment) error {
	return s.updateFn(ctx, comment)
}
func (s *commentRepoStub) Delete(ctx context.Context, id int) error {
	return s.deleteFn(ctx, id)
}

func noopCommentRepo() *commentRepoStub {
	return &commentRepoStub{
		createFn:     func(_ context.Context, _ *models.Comment) error { return nil },
		getByIDFn:    func(_ context.Context, _ int) (*models.Comment, error) { return &models.Comment{}, nil },
		listFn:       func(_ context.Context) ([]*models.Comment, error) { return nil, nil },
		listByPostFn: func(_ context.Context, _ int) ([]*models.Comment, error) { return nil, nil },
		updateFn:     func(_ context.Context, _ *models.Comment) error { return nil },
		deleteFn:     func(_ context.Context, _ int) error { return nil },
	}
}

func TestCommentService_CreateComment_Validation(t *testing.T) {
	t.Parallel()

	svc := NewCommentService(noopCommentRepo(), noopPostRepo())
	ctx := context.Background()

	t.Run("missing actor", func(t *testing.T) {
		t.Parallel()
		_, err := svc.CreateComment(ctx, CreateCommentInput{PostID: 1, CommentText: "hi"})
		assertUnauthorizedError(t, err)
	})

	t.Run("empty text", func(t *testing.T) {
		t.Parallel()
		_, err := svc.CreateComment(ctx, CreateCommentInput{ActorID: "u-1", PostID: 1})
		assertValidationError(t, err)
	})

	t.Run("text too long", func(t *testing.T) {
		t.Parallel()
		_, err := svc.CreateComment(ctx, CreateCommentInput{
			ActorID:     "u-1",
			PostID:      1,
			CommentText: strings.Repeat("x", 201),
		})
		assertValidationError(t, err)
	})

	t.Run("missing post is not found", func(t *testing.T) {
		t.Parallel()
		postRepo := noopPostRepo()
		postRepo.getByIDFn = func(_ context.Context, _ int) (*models.Post, error) {
			return nil, gorm.ErrRecordNotFound
		}
		svc2 := NewCommentService(noopCommentRepo(), postRepo)
		_, err := svc2.CreateComment(ctx, CreateCommentInput{ActorID: "u-1", PostID: 99, CommentText: "hi"})
		var appErr *models.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, "NOT_FOUND", appErr.Code)
	})
}

func TestCommentService_CreateComment_Success(t *testing.T) {
	t.Parallel()

	commentRepo := noopCommentRepo()
	commentRepo.createFn = func(_ context.Context, c *models.Comment) error {
		c.CommentID = 42
		return nil
	}
	commentRepo.getByIDFn = func(_ context.Context, id int) (*models.Comment, error) {
		return &models.Comment{CommentID: id, CommentText: "hello", UserID: "u-1", PostID: 1}, nil
	}

	svc := NewCommentService(commentRepo, noopPostRepo())
	comment, err := svc.CreateComment(context.Background(), CreateCommentInput{
		ActorID:     "u-1",
		PostID:      1,
		CommentText: "hello",
	})
	require.NoError(t, err)
	assert.Equal(t, 42, comment.CommentID)
	assert.Equal(t, "hello", comment.CommentText)
}

func TestCommentService_UpdateComment_Ownership(t *testing.T) {
	t.Parallel()

	t.Run("non-owner cannot update when enforced", func(t *testing.T) {
		t.Parallel()
		commentRepo := noopCommentRepo()
		commentRepo.getByIDFn = func(_ context.Context, _ int) (*models.Comment, error) {
			return &models.Comment{CommentID: 1, UserID: "owner"}, nil
		}
		svc := NewCommentService(commentRepo, noopPostRepo())
		_, err := svc.UpdateComment(context.Background(), UpdateCommentInput{
			ActorID:          "intruder",
			CommentID:        1,
			CommentText:      "new",
			EnforceOwnership: true,
		})
		assertUnauthorizedError(t, err)
	})

	t.Run("owner can update text", func(t *testing.T) {
		t.Parallel()
		commentRepo := noopCommentRepo()
		commentRepo.getByIDFn = func(_ context.Context, _ int) (*models.Comment, error) {
			return &models.Comment{CommentID: 1, UserID: "u-1", CommentText: "old"}, nil
		}
		svc := NewCommentService(commentRepo, noopPostRepo())
		comment, err := svc.UpdateComment(context.Background(), UpdateCommentInput{
			ActorID:          "u-1",
			CommentID:        1,
			CommentText:      "updated",
			EnforceOwnership: true,
		})
		require.NoError(t, err)
		assert.Equal(t, "updated", comment.CommentText)
	})
}

func TestCommentService_DeleteComment_Ownership(t *testing.T) {
	t.Parallel()

	t.Run("owner can delete", func(t *testing.T) {
		t.Parallel()
		deleted := false
		commentRepo := noopCommentRepo()
		commentRepo.getByIDFn = func(_ context.Context, _ int) (*models.Comment, error) {
			return &models.Comment{CommentID: 1, UserID: "u-1", PostID: 2}, nil
		}
		commentRepo.deleteFn = func(_ context.Context, _ int) error {
			deleted = true
			return nil
		}
		svc := NewCommentService(commentRepo, noopPostRepo())
		err := svc.DeleteComment(context.Background(), DeleteCommentInput{
			ActorID:          "u-1",
			CommentID:        1,
			EnforceOwnership: true,
		})
		require.NoError(t, err)
		assert.True(t, deleted)
	})

	t.Run("non-owner cannot delete when enforced", func(t *testing.T) {
		t.Parallel()
		commentRepo := noopCommentRepo()
		commentRepo.getByIDFn = func(_ context.Context, _ int) (*models.Comment, error) {
			return &models.Comment{CommentID: 1, UserID: "owner"}, nil
		}
		svc := NewCommentService(commentRepo, noopPostRepo())
		err := svc.DeleteComment(context.Background(), DeleteCommentInput{
			ActorID:          "intruder",
			CommentID:        1,
			EnforceOwnership: true,
		})
		assertUnauthorizedError(t, err)
	})
}

func TestCommentService_UpdateComment_NotFound(t *testing.T) {
	updated := false
	repo := noopCommentRepo()
	repo.getByIDFn = func(_ context.Context, _ int) (*models.Comment, error) {
		return nil, gorm.ErrRecordNotFound
	}
	repo.updateFn = func(_ context.Context, _ *models.Comment) error {
		updated = true
		return nil
	}
	svc := NewCommentService(repo, noopPostRepo())

	_, err := svc.UpdateComment(context.Background(), UpdateCommentInput{
		ActorID:     "u-1",
		CommentID:   999,
		CommentText: "does not matter",
	})

	var appErr *models.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "NOT_FOUND", appErr.Code)
	assert.False(t, updated, "nothing may be written for a missing comment")
}
