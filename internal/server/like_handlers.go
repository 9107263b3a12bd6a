package server

import (
	"friendly/internal/middleware"
	"friendly/internal/models"

	"github.com/gofiber/fiber/v2"
)

type likeRequest struct {
	PostID int    `json:"postId"`
	UserID string `json:"userId"`
}

// GetLikeCount returns the number of likes on a post as a bare JSON number.
func (s *Server) GetLikeCount(c *fiber.Ctx) error {
	ctx := c.UserContext()

	postID, err := s.parseID(c, "postId")
	if err != nil {
		return nil
	}

	count, err := s.likeService.CountLikes(ctx, postID)
	if err != nil {
		middleware.Logger.ErrorContext(ctx, "failed to count likes",
			"post_id", postID, "error", err.Error())
		return respondServiceError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(count)
}

// CreateLike records a like. Liking an already-liked post is a conflict.
func (s *Server) CreateLike(c *fiber.Ctx) error {
	ctx := c.UserContext()

	var req likeRequest
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	actor := actorID(c, req.UserID)
	if req.PostID <= 0 || actor == "" {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("postId and userId are required"))
	}

	if err := s.likeService.LikePost(ctx, req.PostID, actor); err != nil {
		return respondServiceError(c, err)
	}

	middleware.Logger.InfoContext(ctx, "post liked", "post_id", req.PostID)
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": "Post liked"})
}

// DeleteLike removes a like. Unliking a post that was never liked is a
// validation error, matching the create/delete asymmetry clients rely on.
func (s *Server) DeleteLike(c *fiber.Ctx) error {
	ctx := c.UserContext()

	var req likeRequest
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	actor := actorID(c, req.UserID)
	if req.PostID <= 0 || actor == "" {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("postId and userId are required"))
	}

	if err := s.likeService.UnlikePost(ctx, req.PostID, actor); err != nil {
		return respondServiceError(c, err)
	}

	middleware.Logger.InfoContext(ctx, "post unliked", "post_id", req.PostID)
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": "Like removed"})
}
