package handlers

import (
	"errors"

	"menugate/internal/adapters/http/middleware"
	"menugate/internal/core/domain"
	"menugate/internal/core/services"
	"menugate/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// UserHandler handles user profile endpoints
type UserHandler struct {
	authService *services.AuthService
}

// NewUserHandler creates a new user handler
func NewUserHandler(authService *services.AuthService) *UserHandler {
	return &UserHandler{authService: authService}
}

// CurrentUser returns the authenticated user's profile
// @Summary Get current user
// @Tags User
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response
// @Failure 401 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /user/current-user [get]
func (h *UserHandler) CurrentUser(c *fiber.Ctx) error {
	email, ok := c.Locals(middleware.LocalUserEmail).(string)
	if !ok {
		return response.Unauthorized(c)
	}

	user, err := h.authService.CurrentUser(c.Context(), email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return response.NotFound(c)
		}
		return response.InternalServerError(c, err)
	}

	return response.OK(c, user)
}
