package server

import (
	"friendly/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

// GetUserList returns all users ordered by username. Password hashes are
// excluded by the model's JSON tags.
func (s *Server) GetUserList(c *fiber.Ctx) error {
	ctx := c.UserContext()

	users, err := s.userService.ListUsers(ctx)
	if err != nil {
		middleware.Logger.ErrorContext(ctx, "failed to list users", "error", err.Error())
		return respondServiceError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(users)
}

// GetUser returns a single user by ID.
func (s *Server) GetUser(c *fiber.Ctx) error {
	ctx := c.UserContext()

	id := c.Params("id")

	user, err := s.userService.GetUser(ctx, id)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(user)
}
