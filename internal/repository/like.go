// Package repository provides data access layer implementations for the application.
package repository

import (
	"context"

	"friendly/internal/cache"
	"friendly/internal/models"

	"gorm.io/gorm"
)

// LikeRepository defines the interface for like data operations
type LikeRepository interface {
	// Create inserts a like if none exists for (postID, userID).
	// Returns false when the like was already present.
	Create(ctx context.Context, postID int, userID string) (bool, error)
	// DeleteByPostAndUser removes the caller's like.
	// Returns false when no like existed.
	DeleteByPostAndUser(ctx context.Context, postID int, userID string) (bool, error)
	CountByPost(ctx context.Context, postID int) (int64, error)
	Exists(ctx context.Context, postID int, userID string) (bool, error)
}

type likeRepository struct {
	db *gorm.DB
}

// NewLikeRepository creates a new like repository
func NewLikeRepository(db *gorm.DB) LikeRepository {
	return &likeRepository{db: db}
}

func (r *likeRepository) Create(ctx context.Context, postID int, userID string) (bool, error) {
	// INSERT ... ON CONFLICT DO NOTHING is atomic; a concurrent duplicate
	// never surfaces as a unique violation, it just affects zero rows.
	result := r.db.WithContext(ctx).Exec(
		`INSERT INTO likes (post_id, user_id, created_at)
		 VALUES (?, ?, NOW())
		 ON CONFLICT (post_id, user_id) DO NOTHING`,
		postID, userID,
	)
	if result.Error != nil {
		return false, result.Error
	}
	if result.RowsAffected == 0 {
		return false, nil
	}
	cache.InvalidateLikeCount(ctx, postID)
	return true, nil
}

func (r *likeRepository) DeleteByPostAndUser(ctx context.Context, postID int, userID string) (bool, error) {
	result := r.db.WithContext(ctx).
		Where("post_id = ? AND user_id = ?", postID, userID).
		Delete(&models.Like{})
	if result.Error != nil {
		return false, result.Error
	}
	if result.RowsAffected == 0 {
		return false, nil
	}
	cache.InvalidateLikeCount(ctx, postID)
	return true, nil
}

func (r *likeRepository) CountByPost(ctx context.Context, postID int) (int64, error) {
	var count int64
	err := cache.CacheAside(ctx, cache.LikeCountKey(postID), &count, cache.LikeCountTTL, func() error {
		return r.db.WithContext(ctx).
			Model(&models.Like{}).
			Where("post_id = ?", postID).
			Count(&count).Error
	})
	if err != nil {
		return 0, err
	}
	return count, nil
}

func (r *likeRepository) Exists(ctx context.Context, postID int, userID string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Like{}).
		Where("post_id = ? AND user_id = ?", postID, userID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
