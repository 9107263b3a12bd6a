package server

import (
	"errors"
	"io"

	"friendly/internal/middleware"
	"friendly/internal/models"
	"friendly/internal/service"

	"github.com/gofiber/fiber/v2"
)

type updatePostRequest struct {
	Caption string `json:"caption"`
}

// GetPostList returns the feed: all posts, newest first, with author,
// comments and likes attached.
func (s *Server) GetPostList(c *fiber.Ctx) error {
	ctx := c.UserContext()

	posts, err := s.postService.ListPosts(ctx)
	if err != nil {
		middleware.Logger.ErrorContext(ctx, "failed to list posts", "error", err.Error())
		return respondServiceError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(posts)
}

// GetPost returns a single post by ID.
func (s *Server) GetPost(c *fiber.Ctx) error {
	ctx := c.UserContext()

	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	post, err := s.postService.GetPost(ctx, id)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(post)
}

// CreatePost accepts a multipart form with a caption and an image file.
func (s *Server) CreatePost(c *fiber.Ctx) error {
	ctx := c.UserContext()

	actor := actorID(c, c.FormValue("userId"))
	caption := c.FormValue("caption")

	var image *service.SaveImageInput
	fileHeader, err := c.FormFile("postImage")
	if err == nil && fileHeader != nil {
		file, openErr := fileHeader.Open()
		if openErr != nil {
			return models.RespondWithError(c, fiber.StatusBadRequest,
				models.NewValidationError("Could not read uploaded file"))
		}
		content, readErr := io.ReadAll(file)
		file.Close()
		if readErr != nil {
			return models.RespondWithError(c, fiber.StatusBadRequest,
				models.NewValidationError("Could not read uploaded file"))
		}
		image = &service.SaveImageInput{
			Filename:    fileHeader.Filename,
			ContentType: fileHeader.Header.Get("Content-Type"),
			Content:     content,
		}
	}

	post, err := s.postService.CreatePost(ctx, service.CreatePostInput{
		ActorID: actor,
		Caption: caption,
		Image:   image,
	})
	if err != nil {
		var appErr *models.AppError
		if !errors.As(err, &appErr) || appErr.Code == "INTERNAL_ERROR" {
			middleware.Logger.ErrorContext(ctx, "failed to create post", "error", err.Error())
		}
		return respondServiceError(c, err)
	}

	middleware.Logger.InfoContext(ctx, "post created", "post_id", post.PostID)
	return c.Status(fiber.StatusCreated).JSON(post)
}

// UpdatePost changes a post's caption. The image cannot be replaced.
func (s *Server) UpdatePost(c *fiber.Ctx) error {
	ctx := c.UserContext()

	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	var req updatePostRequest
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	post, err := s.postService.UpdatePost(ctx, service.UpdatePostInput{
		ActorID:          middleware.CurrentUserID(c),
		PostID:           id,
		Caption:          req.Caption,
		EnforceOwnership: s.config.APIOwnershipEnforced,
	})
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(post)
}

// DeletePost removes a post along with its comments, likes and image files.
func (s *Server) DeletePost(c *fiber.Ctx) error {
	ctx := c.UserContext()

	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	err = s.postService.DeletePost(ctx, service.DeletePostInput{
		ActorID:          middleware.CurrentUserID(c),
		PostID:           id,
		EnforceOwnership: s.config.APIOwnershipEnforced,
	})
	if err != nil {
		return respondServiceError(c, err)
	}

	middleware.Logger.InfoContext(ctx, "post deleted", "post_id", id)
	return c.SendStatus(fiber.StatusNoContent)
}
