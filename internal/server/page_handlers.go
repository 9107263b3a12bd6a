package server

import (
	"io"
	"strconv"

	"friendly/internal/middleware"
	"friendly/internal/models"
	"friendly/internal/service"

	"github.com/gofiber/fiber/v2"
)

// The page surface backs browser form submissions. Every handler requires a
// session, always takes the actor from it, and always enforces ownership on
// mutations. Successful mutations redirect back to the feed.

func redirectBack(c *fiber.Ctx) error {
	target := c.Get("Referer")
	if target == "" {
		target = "/"
	}
	return c.Redirect(target, fiber.StatusSeeOther)
}

// PageCreatePost handles the new-post form: caption plus image file.
func (s *Server) PageCreatePost(c *fiber.Ctx) error {
	ctx := c.UserContext()

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
		ActorID: middleware.CurrentUserID(c),
		Caption: c.FormValue("caption"),
		Image:   image,
	})
	if err != nil {
		return respondServiceError(c, err)
	}

	middleware.Logger.InfoContext(ctx, "post created", "post_id", post.PostID)
	return redirectBack(c)
}

func (s *Server) PageUpdatePost(c *fiber.Ctx) error {
	ctx := c.UserContext()

	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	_, err = s.postService.UpdatePost(ctx, service.UpdatePostInput{
		ActorID:          middleware.CurrentUserID(c),
		PostID:           id,
		Caption:          c.FormValue("caption"),
		EnforceOwnership: true,
	})
	if err != nil {
		return respondServiceError(c, err)
	}

	return redirectBack(c)
}

func (s *Server) PageDeletePost(c *fiber.Ctx) error {
	ctx := c.UserContext()

	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	err = s.postService.DeletePost(ctx, service.DeletePostInput{
		ActorID:          middleware.CurrentUserID(c),
		PostID:           id,
		EnforceOwnership: true,
	})
	if err != nil {
		return respondServiceError(c, err)
	}

	middleware.Logger.InfoContext(ctx, "post deleted", "post_id", id)
	return redirectBack(c)
}

func (s *Server) PageCreateComment(c *fiber.Ctx) error {
	ctx := c.UserContext()

	// The form carries the post ID as a field rather than a route param.
	postID, err := strconv.Atoi(c.FormValue("postId"))
	if err != nil || postID <= 0 {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("A valid postId is required"))
	}

	_, err = s.commentService.CreateComment(ctx, service.CreateCommentInput{
		ActorID:     middleware.CurrentUserID(c),
		PostID:      postID,
		CommentText: c.FormValue("commentText"),
	})
	if err != nil {
		return respondServiceError(c, err)
	}

	return redirectBack(c)
}

func (s *Server) PageUpdateComment(c *fiber.Ctx) error {
	ctx := c.UserContext()

	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	_, err = s.commentService.UpdateComment(ctx, service.UpdateCommentInput{
		ActorID:          middleware.CurrentUserID(c),
		CommentID:        id,
		CommentText:      c.FormValue("commentText"),
		EnforceOwnership: true,
	})
	if err != nil {
		return respondServiceError(c, err)
	}

	return redirectBack(c)
}

func (s *Server) PageDeleteComment(c *fiber.Ctx) error {
	ctx := c.UserContext()

	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	err = s.commentService.DeleteComment(ctx, service.DeleteCommentInput{
		ActorID:          middleware.CurrentUserID(c),
		CommentID:        id,
		EnforceOwnership: true,
	})
	if err != nil {
		return respondServiceError(c, err)
	}

	return redirectBack(c)
}

func (s *Server) PageLikePost(c *fiber.Ctx) error {
	ctx := c.UserContext()

	postID, err := s.parseID(c, "postId")
	if err != nil {
		return nil
	}

	if err := s.likeService.LikePost(ctx, postID, middleware.CurrentUserID(c)); err != nil {
		return respondServiceError(c, err)
	}

	return redirectBack(c)
}

func (s *Server) PageUnlikePost(c *fiber.Ctx) error {
	ctx := c.UserContext()

	postID, err := s.parseID(c, "postId")
	if err != nil {
		return nil
	}

	if err := s.likeService.UnlikePost(ctx, postID, middleware.CurrentUserID(c)); err != nil {
		return respondServiceError(c, err)
	}

	return redirectBack(c)
}
