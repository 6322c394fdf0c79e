package server

import (
	"minikatalog/internal/models"
	"minikatalog/internal/service"

	"github.com/gofiber/fiber/v2"
)

// CreateMicropost handles POST /api/microposts
func (s *Server) CreateMicropost(c *fiber.Ctx) error {
	userID, ok := currentUserID(c)
	if !ok {
		return models.RespondWithError(c, fiber.StatusUnauthorized,
			models.NewUnauthorizedError("Authentication required"))
	}

	var req struct {
		Content string `json:"content"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	post, err := s.postService.CreateMicropost(c.UserContext(), service.CreateMicropostInput{
		UserID:  userID,
		Content: req.Content,
	})
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"micropost": post})
}

// DeleteMicropost handles DELETE /api/microposts/:id
func (s *Server) DeleteMicropost(c *fiber.Ctx) error {
	userID, ok := currentUserID(c)
	if !ok {
		return models.RespondWithError(c, fiber.StatusUnauthorized,
			models.NewUnauthorizedError("Authentication required"))
	}

	postID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	if err := s.postService.DeleteMicropost(c.UserContext(), userID, postID); err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{"deleted": postID})
}

// Feed handles GET /api/feed: the authenticated user's microposts newest first.
func (s *Server) Feed(c *fiber.Ctx) error {
	userID, ok := currentUserID(c)
	if !ok {
		return models.RespondWithError(c, fiber.StatusUnauthorized,
			models.NewUnauthorizedError("Authentication required"))
	}

	p := parsePagination(c, 30)

	posts, err := s.postService.Feed(c.UserContext(), userID, p.Limit, p.Offset)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{
		"feed":   posts,
		"limit":  p.Limit,
		"offset": p.Offset,
	})
}
