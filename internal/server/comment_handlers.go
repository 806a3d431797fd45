package server

import (
	"devconnect/internal/middleware"
	"devconnect/internal/models"
	"devconnect/internal/validation"

	"github.com/gofiber/fiber/v2"
)

type addCommentRequest struct {
	Text string `json:"text" validate:"required" msg:"Text is required"`
}

// AddComment handles POST /api/posts/comment/:id
func (s *Server) AddComment(c *fiber.Ctx) error {
	postID, ok := parseID(c, "id")
	if !ok {
		return models.RespondWithError(c, models.NewNotFoundError("Post not found"))
	}

	var req addCommentRequest
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, models.NewValidationError("Invalid request body"))
	}
	if verr := validation.Struct(req); verr != nil {
		return models.RespondWithError(c, verr)
	}

	comments, err := s.commentService.Add(c.UserContext(), middleware.CallerID(c), postID, req.Text)
	if err != nil {
		return models.RespondWithError(c, err)
	}
	return c.JSON(comments)
}

// DeleteComment handles DELETE /api/posts/comment/:id/:comment_id
func (s *Server) DeleteComment(c *fiber.Ctx) error {
	postID, ok := parseID(c, "id")
	if !ok {
		return models.RespondWithError(c, models.NewNotFoundError("Post not found"))
	}
	commentID, ok := parseID(c, "comment_id")
	if !ok {
		return models.RespondWithError(c, models.NewNotFoundError("Comment does not exist"))
	}

	comments, err := s.commentService.Delete(c.UserContext(), middleware.CallerID(c), postID, commentID)
	if err != nil {
		return models.RespondWithError(c, err)
	}
	return c.JSON(comments)
}
