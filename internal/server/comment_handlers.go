package server

import (
	"friendly/internal/middleware"
	"friendly/internal/models"
	"friendly/internal/service"

	"github.com/gofiber/fiber/v2"
)

type createCommentRequest struct {
	PostID      int    `json:"postId"`
	CommentText string `json:"commentText"`
	UserID      string `json:"userId"`
}

type updateCommentRequest struct {
	CommentText string `json:"commentText"`
}

// GetCommentList returns every comment, newest first.
func (s *Server) GetCommentList(c *fiber.Ctx) error {
	ctx := c.UserContext()

	comments, err := s.commentService.ListAllComments(ctx)
	if err != nil {
		middleware.Logger.ErrorContext(ctx, "failed to list comments", "error", err.Error())
		return respondServiceError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(comments)
}

// GetComment returns a single comment by ID.
func (s *Server) GetComment(c *fiber.Ctx) error {
	ctx := c.UserContext()

	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	comment, err := s.commentService.GetComment(ctx, id)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(comment)
}

// CreateComment adds a comment to a post.
func (s *Server) CreateComment(c *fiber.Ctx) error {
	ctx := c.UserContext()

	var req createCommentRequest
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}
	if req.PostID <= 0 {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("A valid postId is required"))
	}

	comment, err := s.commentService.CreateComment(ctx, service.CreateCommentInput{
		ActorID:     actorID(c, req.UserID),
		PostID:      req.PostID,
		CommentText: req.CommentText,
	})
	if err != nil {
		return respondServiceError(c, err)
	}

	middleware.Logger.InfoContext(ctx, "comment created",
		"comment_id", comment.CommentID, "post_id", req.PostID)
	return c.Status(fiber.StatusCreated).JSON(comment)
}

// UpdateComment changes a comment's text.
func (s *Server) UpdateComment(c *fiber.Ctx) error {
	ctx := c.UserContext()

	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	var req updateCommentRequest
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	comment, err := s.commentService.UpdateComment(ctx, service.UpdateCommentInput{
		ActorID:          middleware.CurrentUserID(c),
		CommentID:        id,
		CommentText:      req.CommentText,
		EnforceOwnership: s.config.APIOwnershipEnforced,
	})
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(comment)
}

// DeleteComment removes a comment.
func (s *Server) DeleteComment(c *fiber.Ctx) error {
	ctx := c.UserContext()

	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	err = s.commentService.DeleteComment(ctx, service.DeleteCommentInput{
		ActorID:          middleware.CurrentUserID(c),
		CommentID:        id,
		EnforceOwnership: s.config.APIOwnershipEnforced,
	})
	if err != nil {
		return respondServiceError(c, err)
	}

	middleware.Logger.InfoContext(ctx, "comment deleted", "comment_id", id)
	return c.SendStatus(fiber.StatusNoContent)
}
