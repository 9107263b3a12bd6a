package service

import (
	"context"
	"errors"
	"time"

	"friendly/internal/cache"
	"friendly/internal/models"
	"friendly/internal/repository"
	"friendly/internal/validation"

	"gorm.io/gorm"
)

type CommentService struct {
	commentRepo repository.CommentRepository
	postRepo    repository.PostRepository
}

type CreateCommentInput struct {
	ActorID     string
	PostID      int
	CommentText string
}

type UpdateCommentInput struct {
	ActorID          string
	CommentID        int
	CommentText      string
	EnforceOwnership bool
}

type DeleteCommentInput struct {
	ActorID          string
	CommentID        int
	EnforceOwnership bool
}

func NewCommentService(commentRepo repository.CommentRepository, postRepo repository.PostRepository) *CommentService {
	return &CommentService{
		commentRepo: commentRepo,
		postRepo:    postRepo,
	}
}

// CreateComment validates the text, checks the post exists, and returns the
// comment re-fetched with its author attached.
func (s *CommentService) CreateComment(ctx context.Context, in CreateCommentInput) (*models.Comment, error) {
	if in.ActorID == "" {
		return nil, models.NewUnauthorizedError("Authentication required")
	}
	if err := validation.ValidateCommentText(in.CommentText); err != nil {
		return nil, models.NewValidationError(err.Error())
	}

	if _, err := s.postRepo.GetByID(ctx, in.PostID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Post", in.PostID)
		}
		return nil, err
	}

	comment := &models.Comment{
		CommentText: in.CommentText,
		CommentDate: time.Now(),
		UserID:      in.ActorID,
		PostID:      in.PostID,
	}
	if err := s.commentRepo.Create(ctx, comment); err != nil {
		return nil, models.NewInternalError(err)
	}
	cache.InvalidatePost(ctx, in.PostID)

	return s.GetComment(ctx, comment.CommentID)
}

func (s *CommentService) GetComment(ctx context.Context, id int) (*models.Comment, error) {
	comment, err := s.commentRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Comment", id)
		}
		return nil, err
	}
	return comment, nil
}

func (s *CommentService) ListAllComments(ctx context.Context) ([]*models.Comment, error) {
	return s.commentRepo.List(ctx)
}

func (s *CommentService) ListComments(ctx context.Context, postID int) ([]*models.Comment, error) {
	return s.commentRepo.ListByPost(ctx, postID)
}

func (s *CommentService) UpdateComment(ctx context.Context, in UpdateCommentInput) (*models.Comment, error) {
	if err := validation.ValidateCommentText(in.CommentText); err != nil {
		return nil, models.NewValidationError(err.Error())
	}

	comment, err := s.GetComment(ctx, in.CommentID)
	if err != nil {
		return nil, err
	}

	if in.EnforceOwnership {
		if err := AuthorizeOwner(in.ActorID, comment.UserID); err != nil {
			return nil, err
		}
	}

	comment.CommentText = in.CommentText
	if err := s.commentRepo.Update(ctx, comment); err != nil {
		return nil, err
	}
	cache.InvalidatePost(ctx, comment.PostID)
	return comment, nil
}

func (s *CommentService) DeleteComment(ctx context.Context, in DeleteCommentInput) error {
	comment, err := s.GetComment(ctx, in.CommentID)
	if err != nil {
		return err
	}

	if in.EnforceOwnership {
		if err := AuthorizeOwner(in.ActorID, comment.UserID); err != nil {
			return err
		}
	}

	if err := s.commentRepo.Delete(ctx, in.CommentID); err != nil {
		return err
	}
	cache.InvalidatePost(ctx, comment.PostID)
	return nil
}
