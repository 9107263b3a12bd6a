package service

import "friendly/internal/models"

// AuthorizeOwner is the single ownership check for mutating posts and
// comments. Every surface that enforces ownership goes through it, so the
// rule cannot drift between the JSON API and the browser pages.
func AuthorizeOwner(actorID, ownerID string) error {
	if actorID == "" {
		return models.NewUnauthorizedError("Authentication required")
	}
	if actorID != ownerID {
		return models.NewUnauthorizedError("You can only modify your own content")
	}
	return nil
}
