package server

import (
	"devconnect/internal/middleware"
	"devconnect/internal/models"
	"devconnect/internal/validation"

	"github.com/gofiber/fiber/v2"
)

type createPostRequest struct {
	Text string `json:"text" validate:"required" msg:"Text is required"`
}

// CreatePost handles POST /api/posts
func (s *Server) CreatePost(c *fiber.Ctx) error {
	var req createPostRequest
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, models.NewValidationError("Invalid request body"))
	}
	if verr := validation.Struct(req); verr != nil {
		return models.RespondWithError(c, verr)
	}

	post, err := s.postService.Create(c.UserContext(), middleware.CallerID(c), req.Text)
	if err != nil {
		return models.RespondWithError(c, err)
	}
	return c.JSON(post)
}

// GetPosts handles GET /api/posts
func (s *Server) GetPosts(c *fiber.Ctx) error {
	posts, err := s.postService.List(c.UserContext())
	if err != nil {
		return models.RespondWithError(c, err)
	}
	return c.JSON(posts)
}

// GetPost handles GET /api/posts/:id
func (s *Server) GetPost(c *fiber.Ctx) error {
	postID, ok := parseID(c, "id")
	if !ok {
		return models.RespondWithError(c, models.NewNotFoundError("Post not found"))
	}

	post, err := s.postService.Get(c.UserContext(), postID)
	if err != nil {
		return models.RespondWithError(c, err)
	}
	return c.JSON(post)
}

// DeletePost handles DELETE /api/posts/:id
func (s *Server) DeletePost(c *fiber.Ctx) error {
	postID, ok := parseID(c, "id")
	if !ok {
		return models.RespondWithError(c, models.NewNotFoundError("Post not found"))
	}

	if err := s.postService.Delete(c.UserContext(), middleware.CallerID(c), postID); err != nil {
		return models.RespondWithError(c, err)
	}
	return c.JSON(fiber.Map{"msg": "Post removed"})
}

// LikePost handles PUT /api/posts/like/:id
func (s *Server) LikePost(c *fiber.Ctx) error {
	postID, ok := parseID(c, "id")
	if !ok {
		return models.RespondWithError(c, models.NewNotFoundError("Post not found"))
	}

	likes, err := s.postService.Like(c.UserContext(), middleware.CallerID(c), postID)
	if err != nil {
		return models.RespondWithError(c, err)
	}
	return c.JSON(likes)
}

// UnlikePost handles PUT /api/posts/unlike/:id
func (s *Server) UnlikePost(c *fiber.Ctx) error {
	postID, ok := parseID(c, "id")
	if !ok {
		return models.RespondWithError(c, models.NewNotFoundError("Post not found"))
	}

	likes, err := s.postService.Unlike(c.UserContext(), middleware.CallerID(c), postID)
	if err != nil {
		return models.RespondWithError(c, err)
	}
	return c.JSON(likes)
}
