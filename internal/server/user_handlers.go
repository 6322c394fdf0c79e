package server

import (
	"minikatalog/internal/models"
	"minikatalog/internal/service"

	"github.com/gofiber/fiber/v2"
)

// ListUsers handles GET /api/users
func (s *Server) ListUsers(c *fiber.Ctx) error {
	p := parsePagination(c, 30)

	users, err := s.userService.ListUsers(c.UserContext(), p.Limit, p.Offset)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{
		"users":  users,
		"limit":  p.Limit,
		"offset": p.Offset,
	})
}

// GetUser handles GET /api/users/:id. The response includes follow counts and
// the user's newest microposts.
func (s *Server) GetUser(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	user, err := s.userService.GetUserWithRecentMicroposts(c.UserContext(), id, 10)
	if err != nil {
		return respondError(c, err)
	}

	following, followers, err := s.relService.FollowCounts(c.UserContext(), id)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{
		"user":            user,
		"following_count": following,
		"followers_count": followers,
	})
}

// UpdateProfile handles PUT /api/users/me. Only whitelisted fields are
// accepted; the save rotates the remember token, which is returned.
func (s *Server) UpdateProfile(c *fiber.Ctx) error {
	userID, ok := currentUserID(c)
	if !ok {
		return models.RespondWithError(c, fiber.StatusUnauthorized,
			models.NewUnauthorizedError("Authentication required"))
	}

	var req struct {
		Name string `json:"name"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	user, err := s.userService.UpdateProfile(c.UserContext(), service.UpdateProfileInput{
		UserID: userID,
		Name:   req.Name,
	})
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{
		"user":           user,
		"remember_token": user.RememberToken,
	})
}

// DeleteUser handles DELETE /api/users/:id. A user may delete themselves;
// admins may delete anyone. Deletion cascades to microposts and follow edges.
func (s *Server) DeleteUser(c *fiber.Ctx) error {
	userID, ok := currentUserID(c)
	if !ok {
		return models.RespondWithError(c, fiber.StatusUnauthorized,
			models.NewUnauthorizedError("Authentication required"))
	}

	targetID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	if targetID != userID {
		admin, err := s.isAdminByUserID(c.UserContext(), userID)
		if err != nil {
			return models.RespondWithError(c, fiber.StatusInternalServerError,
				models.NewInternalError(err))
		}
		if !admin {
			return models.RespondWithError(c, fiber.StatusForbidden,
				models.NewUnauthorizedError("You can only delete your own account"))
		}
	}

	if err := s.userService.DeleteUser(c.UserContext(), targetID); err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{"deleted": targetID})
}

// ListUserMicroposts handles GET /api/users/:id/microposts
func (s *Server) ListUserMicroposts(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}
	p := parsePagination(c, 30)

	posts, err := s.postService.ListByUser(c.UserContext(), id, p.Limit, p.Offset)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{
		"microposts": posts,
		"limit":      p.Limit,
		"offset":     p.Offset,
	})
}
