package service

import (
	"context"
	"errors"

	"friendly/internal/cache"
	"friendly/internal/middleware"
	"friendly/internal/models"
	"friendly/internal/repository"

	"gorm.io/gorm"
)

type LikeService struct {
	likeRepo repository.LikeRepository
	postRepo repository.PostRepository
}

func NewLikeService(likeRepo repository.LikeRepository, postRepo repository.PostRepository) *LikeService {
	return &LikeService{
		likeRepo: likeRepo,
		postRepo: postRepo,
	}
}

// LikePost records a like. A duplicate like is a CONFLICT error, detected
// atomically at insert time rather than by a prior existence check.
func (s *LikeService) LikePost(ctx context.Context, postID int, userID string) error {
	if userID == "" {
		return models.NewUnauthorizedError("Authentication required")
	}

	if _, err := s.postRepo.GetByID(ctx, postID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.NewNotFoundError("Post", postID)
		}
		return err
	}

	created, err := s.likeRepo.Create(ctx, postID, userID)
	if err != nil {
		return models.NewInternalError(err)
	}
	if !created {
		middleware.LikeConflicts.Inc()
		return models.NewConflictError("You have already liked this post")
	}
	cache.InvalidatePost(ctx, postID)
	return nil
}

// UnlikePost removes a like. Unliking a post that was never liked is a
// validation error.
func (s *LikeService) UnlikePost(ctx context.Context, postID int, userID string) error {
	if userID == "" {
		return models.NewUnauthorizedError("Authentication required")
	}

	deleted, err := s.likeRepo.DeleteByPostAndUser(ctx, postID, userID)
	if err != nil {
		return models.NewInternalError(err)
	}
	if !deleted {
		return models.NewValidationError("You have not liked this post")
	}
	cache.InvalidatePost(ctx, postID)
	return nil
}

// CountLikes returns the number of likes on a post. Errors surface to the
// caller instead of being folded into a zero count.
func (s *LikeService) CountLikes(ctx context.Context, postID int) (int64, error) {
	count, err := s.likeRepo.CountByPost(ctx, postID)
	if err != nil {
		return 0, models.NewInternalError(err)
	}
	return count, nil
}

// IsLiked reports whether the user has liked the post.
func (s *LikeService) IsLiked(ctx context.Context, postID int, userID string) (bool, error) {
	if userID == "" {
		return false, nil
	}
	return s.likeRepo.Exists(ctx, postID, userID)
}
