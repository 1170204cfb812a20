package routes

import (
	"menugate/internal/adapters/http/handlers"
	"menugate/internal/adapters/http/middleware"
	"menugate/internal/adapters/persistence/repositories"
	"menugate/internal/config"
	"menugate/internal/core/services"
	"menugate/internal/pkg/token"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"gorm.io/gorm"
)

// Setup configures all routes for the application
func Setup(app *fiber.App, db *gorm.DB, cfg *config.Config, tokens *token.Service) {
	// Initialize repositories
	userRepo := repositories.NewUserRepository(db)
	roleRepo := repositories.NewRoleRepository(db)
	menuRepo := repositories.NewMasterMenuRepository(db)
	subRepo := repositories.NewSubMenuRepository(db)
	accessRepo := repositories.NewRoleMenuAccessRepository(db)

	// Initialize services
	menuService := services.NewMenuService(roleRepo, accessRepo, menuRepo, subRepo)
	authService := services.NewAuthService(userRepo, menuService, tokens)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler()
	authHandler := handlers.NewAuthHandler(authService, cfg)
	userHandler := handlers.NewUserHandler(authService)
	roleHandler := handlers.NewRoleHandler(roleRepo, accessRepo)
	menuHandler := handlers.NewMenuHandler(menuRepo, subRepo)
	subMenuHandler := handlers.NewSubMenuHandler(subRepo, menuRepo, accessRepo)
	accessHandler := handlers.NewAccessHandler(accessRepo, roleRepo, subRepo)

	// Health check & root routes
	app.Get("/", healthHandler.Root)
	app.Get("/health", healthHandler.HealthCheck)

	// Swagger documentation
	app.Get("/swagger/*", swagger.HandlerDefault)

	setupAuthRoutes(app, authHandler, userHandler, tokens)
	setupRoleRoutes(app, roleHandler, tokens)
	setupMenuRoutes(app, menuHandler, tokens)
	setupSubMenuRoutes(app, subMenuHandler, tokens)
	setupAccessRoutes(app, accessHandler, tokens)
}

// setupAuthRoutes configures session lifecycle routes
func setupAuthRoutes(
	router fiber.Router,
	authHandler *handlers.AuthHandler,
	userHandler *handlers.UserHandler,
	tokens *token.Service,
) {
	// Public routes, stricter rate limit on credential endpoints
	router.Post("/register", middleware.AuthRateLimiter(), authHandler.Register)
	router.Post("/login", middleware.AuthRateLimiter(), authHandler.Login)

	// Refresh authenticates via the httpOnly cookie, not the header
	router.Get("/user/refresh-token", authHandler.RefreshToken)

	authenticated := middleware.Authenticated(tokens)
	router.Get("/user/current-user", authenticated, userHandler.CurrentUser)
	router.Get("/logout", authenticated, authHandler.Logout)
}

// setupRoleRoutes configures role administration routes
func setupRoleRoutes(router fiber.Router, h *handlers.RoleHandler, tokens *token.Service) {
	roles := router.Group("/role")
	roles.Use(middleware.Authenticated(tokens))

	// Any authenticated user may read roles
	roles.Get("/", h.List)
	roles.Get("/:id", h.Get)

	// Writes require the admin role, permanent delete the super user
	roles.Post("/", middleware.AdminRole(), h.Create)
	roles.Patch("/:id", middleware.AdminRole(), h.Update)
	roles.Delete("/:id", middleware.AdminRole(), h.SoftDelete)
	roles.Delete("/permanent/:id", middleware.SuperUser(), h.PermanentDelete)
}

// setupMenuRoutes configures master menu administration routes. The gates
// match exactly, so the super-user routes are gated per route rather than
// on the group.
func setupMenuRoutes(router fiber.Router, h *handlers.MenuHandler, tokens *token.Service) {
	menus := router.Group("/menu")
	menus.Use(middleware.Authenticated(tokens))

	menus.Get("/", middleware.AdminRole(), h.List)
	menus.Get("/all", middleware.SuperUser(), h.ListAll)
	menus.Get("/:id", middleware.AdminRole(), h.Get)
	menus.Post("/", middleware.AdminRole(), h.Create)
	menus.Patch("/:id", middleware.AdminRole(), h.Update)
	menus.Delete("/:id", middleware.AdminRole(), h.SoftDelete)
	menus.Delete("/permanent/:id", middleware.SuperUser(), h.PermanentDelete)
}

// setupSubMenuRoutes configures submenu administration routes
func setupSubMenuRoutes(router fiber.Router, h *handlers.SubMenuHandler, tokens *token.Service) {
	submenus := router.Group("/sub-menu")
	submenus.Use(middleware.Authenticated(tokens))

	submenus.Get("/", middleware.AdminRole(), h.List)
	submenus.Get("/all", middleware.SuperUser(), h.ListAll)
	submenus.Get("/:id", middleware.AdminRole(), h.Get)
	submenus.Post("/", middleware.AdminRole(), h.Create)
	submenus.Patch("/:id", middleware.AdminRole(), h.Update)
	submenus.Delete("/:id", middleware.AdminRole(), h.SoftDelete)
	submenus.Delete("/permanent/:id", middleware.SuperUser(), h.PermanentDelete)
}

// setupAccessRoutes configures role-menu-access grant routes. The whole
// group is super user only.
func setupAccessRoutes(router fiber.Router, h *handlers.AccessHandler, tokens *token.Service) {
	access := router.Group("/role-menu-access")
	access.Use(middleware.Authenticated(tokens), middleware.SuperUser())

	access.Get("/", h.List)
	access.Get("/all", h.ListAll)
	access.Get("/:id", h.Get)
	access.Post("/", h.Create)
	access.Patch("/:id", h.Update)
	access.Delete("/:id", h.SoftDelete)
	access.Delete("/permanent/:id", h.PermanentDelete)
}
