package handlers

import (
	"strconv"
	"strings"

	"menugate/internal/adapters/persistence/models"
	"menugate/internal/adapters/persistence/repositories"
	"menugate/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// SubMenuHandler handles submenu endpoints
type SubMenuHandler struct {
	subRepo    repositories.SubMenuRepository
	menuRepo   repositories.MasterMenuRepository
	accessRepo repositories.RoleMenuAccessRepository
}

// NewSubMenuHandler creates a new submenu handler
func NewSubMenuHandler(
	subRepo repositories.SubMenuRepository,
	menuRepo repositories.MasterMenuRepository,
	accessRepo repositories.RoleMenuAccessRepository,
) *SubMenuHandler {
	return &SubMenuHandler{
		subRepo:    subRepo,
		menuRepo:   menuRepo,
		accessRepo: accessRepo,
	}
}

// SubMenuRequest represents create/update submenu request body
type SubMenuRequest struct {
	Name         string `json:"name"`
	MasterMenuID uint   `json:"masterMenuId"`
	URL          string `json:"url"`
	Title        string `json:"title"`
	Icon         string `json:"icon"`
	Ordering     *int   `json:"ordering"`
	IsTargetSelf *bool  `json:"isTargetSelf"`
}

func (req *SubMenuRequest) validate() fiber.Map {
	fieldErrors := fiber.Map{}
	if strings.TrimSpace(req.Name) == "" {
		fieldErrors["name"] = []string{"Name is required"}
	}
	if req.MasterMenuID == 0 {
		fieldErrors["masterMenuId"] = []string{"Master menu is required"}
	}
	if strings.TrimSpace(req.URL) == "" {
		fieldErrors["url"] = []string{"Url is required"}
	}
	if strings.TrimSpace(req.Title) == "" {
		fieldErrors["title"] = []string{"Title is required"}
	}
	if strings.TrimSpace(req.Icon) == "" {
		fieldErrors["icon"] = []string{"Icon is required"}
	}
	if req.Ordering == nil {
		fieldErrors["ordering"] = []string{"Ordering is required"}
	}
	if req.IsTargetSelf == nil {
		fieldErrors["isTargetSelf"] = []string{"IsTargetSelf is required"}
	}
	return fieldErrors
}

// List lists active submenus
// @Summary List submenus
// @Tags SubMenu
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response
// @Router /sub-menu [get]
func (h *SubMenuHandler) List(c *fiber.Ctx) error {
	submenus, err := h.subRepo.ListActive(c.Context())
	if err != nil {
		return response.InternalServerError(c, err)
	}
	return response.OK(c, submenus)
}

// ListAll lists all submenus including inactive
// @Summary List all submenus
// @Tags SubMenu
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response
// @Router /sub-menu/all [get]
func (h *SubMenuHandler) ListAll(c *fiber.Ctx) error {
	submenus, err := h.subRepo.ListAll(c.Context())
	if err != nil {
		return response.InternalServerError(c, err)
	}
	return response.OK(c, submenus)
}

// Get gets a submenu by ID
// @Summary Get submenu
// @Tags SubMenu
// @Produce json
// @Security BearerAuth
// @Param id path int true "Submenu ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /sub-menu/{id} [get]
func (h *SubMenuHandler) Get(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return response.BadRequest(c, "Invalid ID")
	}

	submenu, err := h.subRepo.GetActiveByID(c.Context(), uint(id))
	if err != nil {
		return response.NotFound(c)
	}

	return response.OK(c, submenu)
}

// Create creates a submenu. The owning master menu must exist and be
// active.
// @Summary Create submenu
// @Tags SubMenu
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body SubMenuRequest true "Submenu data"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /sub-menu [post]
func (h *SubMenuHandler) Create(c *fiber.Ctx) error {
	var req SubMenuRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	if fieldErrors := req.validate(); len(fieldErrors) > 0 {
		return response.BadRequest(c, fieldErrors)
	}

	if _, err := h.menuRepo.GetActiveByID(c.Context(), req.MasterMenuID); err != nil {
		return response.BadRequest(c, fiber.Map{"masterMenuId": []string{"Master Menu Not Found"}})
	}

	submenu := &models.SubMenu{
		Name:         strings.TrimSpace(req.Name),
		MasterMenuID: req.MasterMenuID,
		URL:          req.URL,
		Title:        req.Title,
		Icon:         req.Icon,
		Ordering:     *req.Ordering,
		IsTargetSelf: *req.IsTargetSelf,
		Active:       true,
	}
	if err := h.subRepo.Create(c.Context(), submenu); err != nil {
		return response.InternalServerError(c, err)
	}

	return response.Created(c, submenu)
}

// Update updates a submenu
// @Summary Update submenu
// @Tags SubMenu
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Submenu ID"
// @Param body body SubMenuRequest true "Submenu data"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /sub-menu/{id} [patch]
func (h *SubMenuHandler) Update(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return response.BadRequest(c, "Invalid ID")
	}

	var req SubMenuRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	if fieldErrors := req.validate(); len(fieldErrors) > 0 {
		return response.BadRequest(c, fieldErrors)
	}

	if _, err := h.menuRepo.GetActiveByID(c.Context(), req.MasterMenuID); err != nil {
		return response.BadRequest(c, fiber.Map{"masterMenuId": []string{"Master Menu Not Found"}})
	}

	submenu, err := h.subRepo.GetActiveByID(c.Context(), uint(id))
	if err != nil {
		return response.NotFound(c)
	}

	submenu.Name = strings.TrimSpace(req.Name)
	submenu.MasterMenuID = req.MasterMenuID
	submenu.URL = req.URL
	submenu.Title = req.Title
	submenu.Icon = req.Icon
	submenu.Ordering = *req.Ordering
	submenu.IsTargetSelf = *req.IsTargetSelf
	if err := h.subRepo.Update(c.Context(), submenu); err != nil {
		return response.InternalServerError(c, err)
	}

	return response.OKMessage(c, "Updated", submenu)
}

// SoftDelete marks a submenu inactive
// @Summary Soft-delete submenu
// @Tags SubMenu
// @Produce json
// @Security BearerAuth
// @Param id path int true "Submenu ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /sub-menu/{id} [delete]
func (h *SubMenuHandler) SoftDelete(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return response.BadRequest(c, "Invalid ID")
	}

	if _, err := h.subRepo.GetActiveByID(c.Context(), uint(id)); err != nil {
		return response.NotFound(c)
	}

	if err := h.subRepo.SoftDelete(c.Context(), uint(id)); err != nil {
		return response.InternalServerError(c, err)
	}

	return response.OKMessage(c, "Removed", nil)
}

// PermanentDelete removes a submenu entirely. Refused while active grants
// still reference it.
// @Summary Permanently delete submenu
// @Tags SubMenu
// @Produce json
// @Security BearerAuth
// @Param id path int true "Submenu ID"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /sub-menu/permanent/{id} [delete]
func (h *SubMenuHandler) PermanentDelete(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return response.BadRequest(c, "Invalid ID")
	}

	grants, err := h.accessRepo.CountActiveBySubmenuID(c.Context(), uint(id))
	if err != nil {
		return response.InternalServerError(c, err)
	}
	if grants > 0 {
		return response.BadRequest(c, fiber.Map{"submenuId": []string{"Submenu still has active menu access grants"}})
	}

	if err := h.subRepo.PermanentDelete(c.Context(), uint(id)); err != nil {
		return response.InternalServerError(c, err)
	}

	return response.OKMessage(c, "Deleted", nil)
}
