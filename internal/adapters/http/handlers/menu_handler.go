package handlers

import (
	"strconv"
	"strings"

	"menugate/internal/adapters/persistence/models"
	"menugate/internal/adapters/persistence/repositories"
	"menugate/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// MenuHandler handles master menu endpoints
type MenuHandler struct {
	menuRepo repositories.MasterMenuRepository
	subRepo  repositories.SubMenuRepository
}

// NewMenuHandler creates a new master menu handler
func NewMenuHandler(menuRepo repositories.MasterMenuRepository, subRepo repositories.SubMenuRepository) *MenuHandler {
	return &MenuHandler{
		menuRepo: menuRepo,
		subRepo:  subRepo,
	}
}

// MenuRequest represents create/update master menu request body
type MenuRequest struct {
	Name     string `json:"name"`
	Icon     string `json:"icon"`
	Ordering *int   `json:"ordering"`
}

func (req *MenuRequest) validate() fiber.Map {
	fieldErrors := fiber.Map{}
	if strings.TrimSpace(req.Name) == "" {
		fieldErrors["name"] = []string{"Name is required"}
	}
	if strings.TrimSpace(req.Icon) == "" {
		fieldErrors["icon"] = []string{"Icon is required"}
	}
	if req.Ordering == nil {
		fieldErrors["ordering"] = []string{"Ordering is required"}
	}
	return fieldErrors
}

// List lists active master menus
// @Summary List master menus
// @Tags Menu
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response
// @Router /menu [get]
func (h *MenuHandler) List(c *fiber.Ctx) error {
	menus, err := h.menuRepo.ListActive(c.Context())
	if err != nil {
		return response.InternalServerError(c, err)
	}
	return response.OK(c, menus)
}

// ListAll lists all master menus including inactive
// @Summary List all master menus
// @Tags Menu
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response
// @Router /menu/all [get]
func (h *MenuHandler) ListAll(c *fiber.Ctx) error {
	menus, err := h.menuRepo.ListAll(c.Context())
	if err != nil {
		return response.InternalServerError(c, err)
	}
	return response.OK(c, menus)
}

// Get gets a master menu by ID
// @Summary Get master menu
// @Tags Menu
// @Produce json
// @Security BearerAuth
// @Param id path int true "Menu ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /menu/{id} [get]
func (h *MenuHandler) Get(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return response.BadRequest(c, "Invalid ID")
	}

	menu, err := h.menuRepo.GetActiveByID(c.Context(), uint(id))
	if err != nil {
		return response.NotFound(c)
	}

	return response.OK(c, menu)
}

// Create creates a master menu
// @Summary Create master menu
// @Tags Menu
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body MenuRequest true "Menu data"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /menu [post]
func (h *MenuHandler) Create(c *fiber.Ctx) error {
	var req MenuRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	if fieldErrors := req.validate(); len(fieldErrors) > 0 {
		return response.BadRequest(c, fieldErrors)
	}

	menu := &models.MasterMenu{
		Name:     strings.TrimSpace(req.Name),
		Icon:     req.Icon,
		Ordering: *req.Ordering,
		Active:   true,
	}
	if err := h.menuRepo.Create(c.Context(), menu); err != nil {
		return response.InternalServerError(c, err)
	}

	return response.Created(c, menu)
}

// Update updates a master menu
// @Summary Update master menu
// @Tags Menu
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Menu ID"
// @Param body body MenuRequest true "Menu data"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /menu/{id} [patch]
func (h *MenuHandler) Update(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return response.BadRequest(c, "Invalid ID")
	}

	var req MenuRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	if fieldErrors := req.validate(); len(fieldErrors) > 0 {
		return response.BadRequest(c, fieldErrors)
	}

	menu, err := h.menuRepo.GetActiveByID(c.Context(), uint(id))
	if err != nil {
		return response.NotFound(c)
	}

	menu.Name = strings.TrimSpace(req.Name)
	menu.Icon = req.Icon
	menu.Ordering = *req.Ordering
	if err := h.menuRepo.Update(c.Context(), menu); err != nil {
		return response.InternalServerError(c, err)
	}

	return response.OKMessage(c, "Updated", menu)
}

// SoftDelete marks a master menu inactive
// @Summary Soft-delete master menu
// @Tags Menu
// @Produce json
// @Security BearerAuth
// @Param id path int true "Menu ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /menu/{id} [delete]
func (h *MenuHandler) SoftDelete(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return response.BadRequest(c, "Invalid ID")
	}

	if _, err := h.menuRepo.GetActiveByID(c.Context(), uint(id)); err != nil {
		return response.NotFound(c)
	}

	if err := h.menuRepo.SoftDelete(c.Context(), uint(id)); err != nil {
		return response.InternalServerError(c, err)
	}

	return response.OKMessage(c, "Removed", nil)
}

// PermanentDelete removes a master menu entirely. Refused while active
// submenus still belong to it.
// @Summary Permanently delete master menu
// @Tags Menu
// @Produce json
// @Security BearerAuth
// @Param id path int true "Menu ID"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /menu/permanent/{id} [delete]
func (h *MenuHandler) PermanentDelete(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return response.BadRequest(c, "Invalid ID")
	}

	children, err := h.subRepo.CountActiveByMasterMenuID(c.Context(), uint(id))
	if err != nil {
		return response.InternalServerError(c, err)
	}
	if children > 0 {
		return response.BadRequest(c, fiber.Map{"masterMenuId": []string{"Master menu still has active submenus"}})
	}

	if err := h.menuRepo.PermanentDelete(c.Context(), uint(id)); err != nil {
		return response.InternalServerError(c, err)
	}

	return response.OKMessage(c, "Deleted", nil)
}
