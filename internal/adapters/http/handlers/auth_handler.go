package handlers

import (
	"errors"
	"strings"
	"time"

	"menugate/internal/adapters/http/middleware"
	"menugate/internal/config"
	"menugate/internal/core/domain"
	"menugate/internal/core/services"
	"menugate/internal/pkg/password"
	"menugate/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// refreshCookieName is the cookie carrying the refresh token. The refresh
// token travels only on this channel, never in a response body.
const refreshCookieName = "refreshToken"

// AuthHandler handles registration and the session lifecycle
type AuthHandler struct {
	authService *services.AuthService
	cfg         *config.Config
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authService *services.AuthService, cfg *config.Config) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		cfg:         cfg,
	}
}

// RegisterRequest represents registration request body
type RegisterRequest struct {
	Name            string `json:"name"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
	RoleID          uint   `json:"roleId"`
}

// LoginRequest represents login request body
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Register handles user registration
// @Summary Register new user
// @Tags Auth
// @Accept json
// @Produce json
// @Param body body RegisterRequest true "Registration data"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /register [post]
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	fieldErrors := fiber.Map{}
	if strings.TrimSpace(req.Name) == "" {
		fieldErrors["name"] = []string{"Name is required"}
	}
	if strings.TrimSpace(req.Email) == "" {
		fieldErrors["email"] = []string{"Email is required"}
	}
	if !password.Valid(req.Password) {
		fieldErrors["password"] = []string{"Password must be at least 8 characters"}
	}
	if req.ConfirmPassword != req.Password {
		fieldErrors["confirmPassword"] = []string{"Confirm password does not match"}
	}
	if req.RoleID == 0 {
		fieldErrors["roleId"] = []string{"Role is required"}
	}
	if len(fieldErrors) > 0 {
		return response.BadRequest(c, fieldErrors)
	}

	user, err := h.authService.Register(c.Context(), &services.RegisterInput{
		Name:     strings.TrimSpace(req.Name),
		Email:    strings.TrimSpace(req.Email),
		Password: req.Password,
		RoleID:   req.RoleID,
	})
	if err != nil {
		if errors.Is(err, domain.ErrEmailTaken) {
			return response.BadRequest(c, "Email already exist")
		}
		return response.InternalServerError(c, err)
	}

	return response.Created(c, user)
}

// Login handles user login
// @Summary Login user
// @Description Authenticate, open a session and resolve the menu tree
// @Tags Auth
// @Accept json
// @Produce json
// @Param body body LoginRequest true "Login credentials"
// @Success 200 {object} response.Response
// @Failure 401 {object} response.Response
// @Router /login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	if req.Email == "" || req.Password == "" {
		return response.BadRequest(c, "Email and password are required")
	}

	result, err := h.authService.Login(c.Context(), strings.TrimSpace(req.Email), req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			return response.Unauthorized(c)
		}
		return response.InternalServerError(c, err)
	}

	h.setRefreshCookie(c, result.RefreshToken)

	return response.OK(c, fiber.Map{
		"name":       result.Profile.Name,
		"email":      result.Profile.Email,
		"roleId":     result.Profile.RoleID,
		"verified":   result.Profile.Verified,
		"active":     result.Profile.Active,
		"token":      result.AccessToken,
		"menuAccess": result.MenuAccess,
	})
}

// RefreshToken mints a new access token from the refresh cookie
// @Summary Refresh access token
// @Tags Auth
// @Produce json
// @Success 200 {object} response.Response
// @Failure 401 {object} response.Response
// @Router /user/refresh-token [get]
func (h *AuthHandler) RefreshToken(c *fiber.Ctx) error {
	refreshToken := c.Cookies(refreshCookieName)
	if refreshToken == "" {
		return response.Unauthorized(c)
	}

	result, err := h.authService.Refresh(c.Context(), refreshToken)
	if err != nil {
		if errors.Is(err, domain.ErrUnauthorized) {
			return response.Unauthorized(c)
		}
		return response.InternalServerError(c, err)
	}

	return response.OK(c, fiber.Map{
		"name":     result.Profile.Name,
		"email":    result.Profile.Email,
		"roleId":   result.Profile.RoleID,
		"verified": result.Profile.Verified,
		"active":   result.Profile.Active,
		"token":    result.AccessToken,
	})
}

// Logout ends the session
// @Summary Logout user
// @Description Clear the refresh cookie and the persisted session. Always succeeds.
// @Tags Auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response
// @Router /logout [get]
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	refreshToken := c.Cookies(refreshCookieName)
	email, _ := c.Locals(middleware.LocalUserEmail).(string)

	if err := h.authService.Logout(c.Context(), refreshToken, email); err != nil {
		return response.InternalServerError(c, err)
	}

	h.clearRefreshCookie(c)
	return response.OKMessage(c, "User logged out", nil)
}

// setRefreshCookie binds the refresh token to an http-only cookie whose
// max-age matches the refresh token lifetime (24 hours).
func (h *AuthHandler) setRefreshCookie(c *fiber.Ctx, refreshToken string) {
	c.Cookie(&fiber.Cookie{
		Name:     refreshCookieName,
		Value:    refreshToken,
		Path:     "/",
		MaxAge:   h.cfg.JWT.RefreshTokenHours * 60 * 60,
		Secure:   h.cfg.Cookie.Secure,
		HTTPOnly: true,
		SameSite: h.cfg.Cookie.SameSite,
		Domain:   h.cfg.Cookie.Domain,
	})
}

func (h *AuthHandler) clearRefreshCookie(c *fiber.Ctx) {
	c.Cookie(&fiber.Cookie{
		Name:     refreshCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		Expires:  time.Now().Add(-1 * time.Hour),
		Secure:   h.cfg.Cookie.Secure,
		HTTPOnly: true,
		SameSite: h.cfg.Cookie.SameSite,
		Domain:   h.cfg.Cookie.Domain,
	})
}
