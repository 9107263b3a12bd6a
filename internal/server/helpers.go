package server

import (
	"errors"
	"strconv"

	"friendly/internal/models"

	"github.com/gofiber/fiber/v2"
)

// errResponseWritten signals the caller that an error response has already
// been written to the client and the handler should return nil.
var errResponseWritten = errors.New("response written")

// parseID parses a positive integer route parameter. On failure it writes a
// 400 response and returns errResponseWritten.
func (s *Server) parseID(c *fiber.Ctx, param string) (int, error) {
	raw := c.Params(param)
	id, err := strconv.Atoi(raw)
	if err != nil || id <= 0 {
		_ = models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid "+param+" parameter"))
		return 0, errResponseWritten
	}
	return id, nil
}

// respondServiceError maps a service-layer error to its HTTP status and
// writes the response.
func respondServiceError(c *fiber.Ctx, err error) error {
	return models.RespondWithError(c, models.StatusForError(err), err)
}

// actorID resolves the acting user for an API request: the authenticated
// session wins, otherwise the caller-supplied user ID is trusted the way the
// original JSON clients expect.
func actorID(c *fiber.Ctx, bodyUserID string) string {
	if userID, ok := c.Locals("userID").(string); ok && userID != "" {
		return userID
	}
	return bodyUserID
}
