package server

import (
	"minikatalog/internal/models"

	"github.com/gofiber/fiber/v2"
)

// Follow handles POST /api/users/:id/follow
func (s *Server) Follow(c *fiber.Ctx) error {
	userID, ok := currentUserID(c)
	if !ok {
		return models.RespondWithError(c, fiber.StatusUnauthorized,
			models.NewUnauthorizedError("Authentication required"))
	}

	targetID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	rel, err := s.relService.Follow(c.UserContext(), userID, targetID)
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"relationship": rel})
}

// Unfollow handles DELETE /api/users/:id/follow. Unfollowing a user who is
// not followed is a 404, not a silent no-op.
func (s *Server) Unfollow(c *fiber.Ctx) error {
	userID, ok := currentUserID(c)
	if !ok {
		return models.RespondWithError(c, fiber.StatusUnauthorized,
			models.NewUnauthorizedError("Authentication required"))
	}

	targetID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	if err := s.relService.Unfollow(c.UserContext(), userID, targetID); err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{"unfollowed": targetID})
}

// FollowingStatus handles GET /api/users/:id/follow
func (s *Server) FollowingStatus(c *fiber.Ctx) error {
	userID, ok := currentUserID(c)
	if !ok {
		return models.RespondWithError(c, fiber.StatusUnauthorized,
			models.NewUnauthorizedError("Authentication required"))
	}

	targetID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	following, err := s.relService.IsFollowing(c.UserContext(), userID, targetID)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{"following": following})
}

// ListFollowing handles GET /api/users/:id/following
func (s *Server) ListFollowing(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	users, err := s.relService.FollowedUsers(c.UserContext(), id)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{"users": users})
}

// ListFollowers handles GET /api/users/:id/followers
func (s *Server) ListFollowers(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	users, err := s.relService.Followers(c.UserContext(), id)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{"users": users})
}
