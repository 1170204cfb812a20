package handlers

import (
	"strconv"

	"menugate/internal/adapters/persistence/models"
	"menugate/internal/adapters/persistence/repositories"
	"menugate/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// AccessHandler handles role menu access grant endpoints
type AccessHandler struct {
	accessRepo repositories.RoleMenuAccessRepository
	roleRepo   repositories.RoleRepository
	subRepo    repositories.SubMenuRepository
}

// NewAccessHandler creates a new grant handler
func NewAccessHandler(
	accessRepo repositories.RoleMenuAccessRepository,
	roleRepo repositories.RoleRepository,
	subRepo repositories.SubMenuRepository,
) *AccessHandler {
	return &AccessHandler{
		accessRepo: accessRepo,
		roleRepo:   roleRepo,
		subRepo:    subRepo,
	}
}

// AccessRequest represents create/update grant request body
type AccessRequest struct {
	RoleID    uint `json:"roleId"`
	SubmenuID uint `json:"submenuId"`
}

// validateReferences checks that the grant points at an active role and an
// active submenu, and that no active grant already links the two.
func (h *AccessHandler) validateReferences(c *fiber.Ctx, req *AccessRequest) error {
	fieldErrors := fiber.Map{}
	if req.RoleID == 0 {
		fieldErrors["roleId"] = []string{"Role is required"}
	}
	if req.SubmenuID == 0 {
		fieldErrors["submenuId"] = []string{"Submenu is required"}
	}
	if len(fieldErrors) > 0 {
		return response.BadRequest(c, fieldErrors)
	}

	if _, err := h.roleRepo.GetActiveByID(c.Context(), req.RoleID); err != nil {
		return response.BadRequest(c, fiber.Map{"roleId": []string{"Role Not Found"}})
	}
	if _, err := h.subRepo.GetActiveByID(c.Context(), req.SubmenuID); err != nil {
		return response.BadRequest(c, fiber.Map{"submenuId": []string{"Submenu Not Found"}})
	}

	exists, err := h.accessRepo.ExistsActive(c.Context(), req.RoleID, req.SubmenuID)
	if err != nil {
		return response.InternalServerError(c, err)
	}
	if exists {
		return response.BadRequest(c, fiber.Map{"submenuId": []string{"Role already has access to this submenu"}})
	}

	return nil
}

// List lists active grants
// @Summary List menu access grants
// @Tags RoleMenuAccess
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response
// @Router /role-menu-access [get]
func (h *AccessHandler) List(c *fiber.Ctx) error {
	accesses, err := h.accessRepo.ListActive(c.Context())
	if err != nil {
		return response.InternalServerError(c, err)
	}
	return response.OK(c, accesses)
}

// ListAll lists all grants including inactive
// @Summary List all menu access grants
// @Tags RoleMenuAccess
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response
// @Router /role-menu-access/all [get]
func (h *AccessHandler) ListAll(c *fiber.Ctx) error {
	accesses, err := h.accessRepo.ListAll(c.Context())
	if err != nil {
		return response.InternalServerError(c, err)
	}
	return response.OK(c, accesses)
}

// Get gets a grant by ID
// @Summary Get menu access grant
// @Tags RoleMenuAccess
// @Produce json
// @Security BearerAuth
// @Param id path int true "Grant ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /role-menu-access/{id} [get]
func (h *AccessHandler) Get(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return response.BadRequest(c, "Invalid ID")
	}

	access, err := h.accessRepo.GetActiveByID(c.Context(), uint(id))
	if err != nil {
		return response.NotFound(c)
	}

	return response.OK(c, access)
}

// Create creates a grant
// @Summary Create menu access grant
// @Tags RoleMenuAccess
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body AccessRequest true "Grant data"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /role-menu-access [post]
func (h *AccessHandler) Create(c *fiber.Ctx) error {
	var req AccessRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	if err := h.validateReferences(c, &req); err != nil {
		return err
	}

	access := &models.RoleMenuAccess{
		RoleID:    req.RoleID,
		SubmenuID: req.SubmenuID,
		Active:    true,
	}
	if err := h.accessRepo.Create(c.Context(), access); err != nil {
		return response.InternalServerError(c, err)
	}

	return response.Created(c, access)
}

// Update re-points a grant
// @Summary Update menu access grant
// @Tags RoleMenuAccess
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Grant ID"
// @Param body body AccessRequest true "Grant data"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /role-menu-access/{id} [patch]
func (h *AccessHandler) Update(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return response.BadRequest(c, "Invalid ID")
	}

	var req AccessRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	access, err := h.accessRepo.GetActiveByID(c.Context(), uint(id))
	if err != nil {
		return response.NotFound(c)
	}

	if access.RoleID != req.RoleID || access.SubmenuID != req.SubmenuID {
		if err := h.validateReferences(c, &req); err != nil {
			return err
		}
	}

	access.RoleID = req.RoleID
	access.SubmenuID = req.SubmenuID
	if err := h.accessRepo.Update(c.Context(), access); err != nil {
		return response.InternalServerError(c, err)
	}

	return response.OKMessage(c, "Updated", access)
}

// SoftDelete marks a grant inactive
// @Summary Soft-delete menu access grant
// @Tags RoleMenuAccess
// @Produce json
// @Security BearerAuth
// @Param id path int true "Grant ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /role-menu-access/{id} [delete]
func (h *AccessHandler) SoftDelete(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return response.BadRequest(c, "Invalid ID")
	}

	if _, err := h.accessRepo.GetActiveByID(c.Context(), uint(id)); err != nil {
		return response.NotFound(c)
	}

	if err := h.accessRepo.SoftDelete(c.Context(), uint(id)); err != nil {
		return response.InternalServerError(c, err)
	}

	return response.OKMessage(c, "Removed", nil)
}

// PermanentDelete removes a grant entirely
// @Summary Permanently delete menu access grant
// @Tags RoleMenuAccess
// @Produce json
// @Security BearerAuth
// @Param id path int true "Grant ID"
// @Success 200 {object} response.Response
// @Router /role-menu-access/permanent/{id} [delete]
func (h *AccessHandler) PermanentDelete(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return response.BadRequest(c, "Invalid ID")
	}

	if err := h.accessRepo.PermanentDelete(c.Context(), uint(id)); err != nil {
		return response.InternalServerError(c, err)
	}

	return response.OKMessage(c, "Deleted", nil)
}
