package handlers

import (
	"strconv"
	"strings"

	"menugate/internal/adapters/persistence/models"
	"menugate/internal/adapters/persistence/repositories"
	"menugate/internal/pkg/pagination"
	"menugate/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// RoleHandler handles role endpoints
type RoleHandler struct {
	roleRepo   repositories.RoleRepository
	accessRepo repositories.RoleMenuAccessRepository
}

// NewRoleHandler creates a new role handler
func NewRoleHandler(roleRepo repositories.RoleRepository, accessRepo repositories.RoleMenuAccessRepository) *RoleHandler {
	return &RoleHandler{
		roleRepo:   roleRepo,
		accessRepo: accessRepo,
	}
}

// RoleRequest represents create/update role request body
type RoleRequest struct {
	RoleName string `json:"roleName"`
}

// List lists active roles
// @Summary List roles
// @Tags Role
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page"
// @Param limit query int false "Page size"
// @Success 200 {object} response.Response
// @Router /role [get]
func (h *RoleHandler) List(c *fiber.Ctx) error {
	params := pagination.GetParams(c)

	roles, total, err := h.roleRepo.ListActive(c.Context(), params.Offset, params.Limit)
	if err != nil {
		return response.InternalServerError(c, err)
	}

	return response.OK(c, fiber.Map{
		"roles": roles,
		"meta":  pagination.GetMeta(params, total),
	})
}

// Get gets a role by ID
// @Summary Get role
// @Tags Role
// @Produce json
// @Security BearerAuth
// @Param id path int true "Role ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /role/{id} [get]
func (h *RoleHandler) Get(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return response.BadRequest(c, "Invalid ID")
	}

	role, err := h.roleRepo.GetActiveByID(c.Context(), uint(id))
	if err != nil {
		return response.NotFound(c)
	}

	return response.OK(c, role)
}

// Create creates a role
// @Summary Create role
// @Tags Role
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body RoleRequest true "Role data"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /role [post]
func (h *RoleHandler) Create(c *fiber.Ctx) error {
	var req RoleRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	if strings.TrimSpace(req.RoleName) == "" {
		return response.BadRequest(c, fiber.Map{"roleName": []string{"Role name is required"}})
	}

	role := &models.Role{
		Name:   strings.TrimSpace(req.RoleName),
		Active: true,
	}
	if err := h.roleRepo.Create(c.Context(), role); err != nil {
		return response.InternalServerError(c, err)
	}

	return response.Created(c, role)
}

// Update updates a role
// @Summary Update role
// @Tags Role
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Role ID"
// @Param body body RoleRequest true "Role data"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /role/{id} [patch]
func (h *RoleHandler) Update(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return response.BadRequest(c, "Invalid ID")
	}

	var req RoleRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	if strings.TrimSpace(req.RoleName) == "" {
		return response.BadRequest(c, fiber.Map{"roleName": []string{"Role name is required"}})
	}

	role, err := h.roleRepo.GetActiveByID(c.Context(), uint(id))
	if err != nil {
		return response.NotFound(c)
	}

	role.Name = strings.TrimSpace(req.RoleName)
	if err := h.roleRepo.Update(c.Context(), role); err != nil {
		return response.InternalServerError(c, err)
	}

	return response.OKMessage(c, "Updated", role)
}

// SoftDelete marks a role inactive
// @Summary Soft-delete role
// @Tags Role
// @Produce json
// @Security BearerAuth
// @Param id path int true "Role ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /role/{id} [delete]
func (h *RoleHandler) SoftDelete(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return response.BadRequest(c, "Invalid ID")
	}

	if _, err := h.roleRepo.GetActiveByID(c.Context(), uint(id)); err != nil {
		return response.NotFound(c)
	}

	if err := h.roleRepo.SoftDelete(c.Context(), uint(id)); err != nil {
		return response.InternalServerError(c, err)
	}

	return response.OKMessage(c, "Removed", nil)
}

// PermanentDelete removes a role entirely. Refused while active grants
// still reference the role.
// @Summary Permanently delete role
// @Tags Role
// @Produce json
// @Security BearerAuth
// @Param id path int true "Role ID"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /role/permanent/{id} [delete]
func (h *RoleHandler) PermanentDelete(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return response.BadRequest(c, "Invalid ID")
	}

	grants, err := h.accessRepo.CountActiveByRoleID(c.Context(), uint(id))
	if err != nil {
		return response.InternalServerError(c, err)
	}
	if grants > 0 {
		return response.BadRequest(c, fiber.Map{"roleId": []string{"Role still has active menu access grants"}})
	}

	if err := h.roleRepo.PermanentDelete(c.Context(), uint(id)); err != nil {
		return response.InternalServerError(c, err)
	}

	return response.OKMessage(c, "Deleted", nil)
}
