package repositories

import (
	"context"

	"menugate/internal/adapters/persistence/models"
)

// UserRepository defines user data access. Users are never hard-deleted.
type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetActiveByEmail(ctx context.Context, email string) (*models.User, error)
	GetByEmailWithRole(ctx context.Context, email string) (*models.User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	SetRefreshToken(ctx context.Context, id uint, refreshToken *string) error
	ListWithRefreshToken(ctx context.Context) ([]*models.User, error)
}

// RoleRepository defines role data access
type RoleRepository interface {
	Create(ctx context.Context, role *models.Role) error
	GetActiveByID(ctx context.Context, id uint) (*models.Role, error)
	ListActive(ctx context.Context, offset, limit int) ([]*models.Role, int64, error)
	Update(ctx context.Context, role *models.Role) error
	SoftDelete(ctx context.Context, id uint) error
	PermanentDelete(ctx context.Context, id uint) error
}

// MasterMenuRepository defines master menu data access
type MasterMenuRepository interface {
	Create(ctx context.Context, menu *models.MasterMenu) error
	GetActiveByID(ctx context.Context, id uint) (*models.MasterMenu, error)
	ListActive(ctx context.Context) ([]*models.MasterMenu, error)
	ListAll(ctx context.Context) ([]*models.MasterMenu, error)
	Update(ctx context.Context, menu *models.MasterMenu) error
	SoftDelete(ctx context.Context, id uint) error
	PermanentDelete(ctx context.Context, id uint) error
}

// SubMenuRepository defines submenu data access
type SubMenuRepository interface {
	Create(ctx context.Context, submenu *models.SubMenu) error
	GetActiveByID(ctx context.Context, id uint) (*models.SubMenu, error)
	ListActive(ctx context.Context) ([]*models.SubMenu, error)
	ListAll(ctx context.Context) ([]*models.SubMenu, error)
	ListActiveByIDs(ctx context.Context, ids []uint) ([]*models.SubMenu, error)
	CountActiveByMasterMenuID(ctx context.Context, masterMenuID uint) (int64, error)
	Update(ctx context.Context, submenu *models.SubMenu) error
	SoftDelete(ctx context.Context, id uint) error
	PermanentDelete(ctx context.Context, id uint) error
}

// RoleMenuAccessRepository defines grant data access
type RoleMenuAccessRepository interface {
	Create(ctx context.Context, access *models.RoleMenuAccess) error
	GetActiveByID(ctx context.Context, id uint) (*models.RoleMenuAccess, error)
	ListActive(ctx context.Context) ([]*models.RoleMenuAccess, error)
	ListAll(ctx context.Context) ([]*models.RoleMenuAccess, error)
	ListActiveByRoleID(ctx context.Context, roleID uint) ([]*models.RoleMenuAccess, error)
	ExistsActive(ctx context.Context, roleID, submenuID uint) (bool, error)
	CountActiveByRoleID(ctx context.Context, roleID uint) (int64, error)
	CountActiveBySubmenuID(ctx context.Context, submenuID uint) (int64, error)
	Update(ctx context.Context, access *models.RoleMenuAccess) error
	SoftDelete(ctx context.Context, id uint) error
	PermanentDelete(ctx context.Context, id uint) error
}
