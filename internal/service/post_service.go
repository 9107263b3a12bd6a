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

type PostService struct {
	postRepo repository.PostRepository
	images   *ImageService
}

type CreatePostInput struct {
	ActorID string
	Caption string
	Image   *SaveImageInput
}

type UpdatePostInput struct {
	ActorID          string
	PostID           int
	Caption          string
	EnforceOwnership bool
}

type DeletePostInput struct {
	ActorID          string
	PostID           int
	EnforceOwnership bool
}

func NewPostService(postRepo repository.PostRepository, images *ImageService) *PostService {
	return &PostService{
		postRepo: postRepo,
		images:   images,
	}
}

// CreatePost stores the uploaded image, inserts the post, and returns the
// post re-fetched with its associations so the response matches a GET.
func (s *PostService) CreatePost(ctx context.Context, in CreatePostInput) (*models.Post, error) {
	if in.ActorID == "" {
		return nil, models.NewUnauthorizedError("Authentication required")
	}
	if err := validation.ValidateCaption(in.Caption); err != nil {
		return nil, models.NewValidationError(err.Error())
	}
	if in.Image == nil {
		return nil, models.NewValidationError("An image is required")
	}

	saved, err := s.images.Save(*in.Image)
	if err != nil {
		return nil, err
	}

	post := &models.Post{
		Caption:       in.Caption,
		PostImagePath: saved.WebPath,
		PostDate:      time.Now(),
		UserID:        in.ActorID,
	}
	if err := s.postRepo.Create(ctx, post); err != nil {
		// The row never landed, so the files must not either.
		s.images.Remove(saved)
		return nil, models.NewInternalError(err)
	}

	return s.GetPost(ctx, post.PostID)
}

func (s *PostService) ListPosts(ctx context.Context) ([]*models.Post, error) {
	var posts []*models.Post
	err := cache.CacheAside(ctx, cache.PostListKey, &posts, cache.PostListTTL, func() error {
		var fetchErr error
		posts, fetchErr = s.postRepo.List(ctx)
		return fetchErr
	})
	if err != nil {
		return nil, err
	}
	return posts, nil
}

func (s *PostService) GetPost(ctx context.Context, id int) (*models.Post, error) {
	post, err := s.postRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Post", id)
		}
		return nil, err
	}
	return post, nil
}

func (s *PostService) GetUserPosts(ctx context.Context, userID string) ([]*models.Post, error) {
	return s.postRepo.ListByUser(ctx, userID)
}

// UpdatePost changes the caption only. The image is immutable after creation.
func (s *PostService) UpdatePost(ctx context.Context, in UpdatePostInput) (*models.Post, error) {
	if err := validation.ValidateCaption(in.Caption); err != nil {
		return nil, models.NewValidationError(err.Error())
	}

	post, err := s.GetPost(ctx, in.PostID)
	if err != nil {
		return nil, err
	}

	if in.EnforceOwnership {
		if err := AuthorizeOwner(in.ActorID, post.UserID); err != nil {
			return nil, err
		}
	}

	post.Caption = in.Caption
	if err := s.postRepo.Update(ctx, post); err != nil {
		return nil, err
	}
	return post, nil
}

func (s *PostService) DeletePost(ctx context.Context, in DeletePostInput) error {
	post, err := s.GetPost(ctx, in.PostID)
	if err != nil {
		return err
	}

	if in.EnforceOwnership {
		if err := AuthorizeOwner(in.ActorID, post.UserID); err != nil {
			return err
		}
	}

	if err := s.postRepo.Delete(ctx, in.PostID); err != nil {
		return err
	}
	s.images.RemoveByWebPath(post.PostImagePath)
	return nil
}
