package repositories

import (
	"context"

	"menugate/internal/adapters/persistence/models"

	"gorm.io/gorm"
)

// roleMenuAccessRepository implements RoleMenuAccessRepository interface
type roleMenuAccessRepository struct {
	db *gorm.DB
}

// NewRoleMenuAccessRepository creates a new grant repository
func NewRoleMenuAccessRepository(db *gorm.DB) RoleMenuAccessRepository {
	return &roleMenuAccessRepository{db: db}
}

// Create creates a new grant
func (r *roleMenuAccessRepository) Create(ctx context.Context, access *models.RoleMenuAccess) error {
	return r.db.WithContext(ctx).Create(access).Error
}

// GetActiveByID gets an active grant by ID
func (r *roleMenuAccessRepository) GetActiveByID(ctx context.Context, id uint) (*models.RoleMenuAccess, error) {
	var access models.RoleMenuAccess
	err := r.db.WithContext(ctx).Where("id = ? AND active = ?", id, true).First(&access).Error
	if err != nil {
		return nil, err
	}
	return &access, nil
}

// ListActive lists active grants with role and submenu preloaded
func (r *roleMenuAccessRepository) ListActive(ctx context.Context) ([]*models.RoleMenuAccess, error) {
	var accesses []*models.RoleMenuAccess
	err := r.db.WithContext(ctx).
		Preload("Role").
		Preload("Submenu").
		Where("active = ?", true).
		Find(&accesses).Error
	return accesses, err
}

// ListAll lists all grants including inactive
func (r *roleMenuAccessRepository) ListAll(ctx context.Context) ([]*models.RoleMenuAccess, error) {
	var accesses []*models.RoleMenuAccess
	err := r.db.WithContext(ctx).
		Preload("Role").
		Preload("Submenu").
		Find(&accesses).Error
	return accesses, err
}

// ListActiveByRoleID lists the active grants for one role
func (r *roleMenuAccessRepository) ListActiveByRoleID(ctx context.Context, roleID uint) ([]*models.RoleMenuAccess, error) {
	var accesses []*models.RoleMenuAccess
	err := r.db.WithContext(ctx).
		Where("role_id = ? AND active = ?", roleID, true).
		Find(&accesses).Error
	return accesses, err
}

// ExistsActive checks whether an active grant already links the role and submenu
func (r *roleMenuAccessRepository) ExistsActive(ctx context.Context, roleID, submenuID uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.RoleMenuAccess{}).
		Where("role_id = ? AND submenu_id = ? AND active = ?", roleID, submenuID, true).
		Count(&count).Error
	return count > 0, err
}

// CountActiveByRoleID counts active grants referencing a role
func (r *roleMenuAccessRepository) CountActiveByRoleID(ctx context.Context, roleID uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.RoleMenuAccess{}).
		Where("role_id = ? AND active = ?", roleID, true).
		Count(&count).Error
	return count, err
}

// CountActiveBySubmenuID counts active grants referencing a submenu
func (r *roleMenuAccessRepository) CountActiveBySubmenuID(ctx context.Context, submenuID uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.RoleMenuAccess{}).
		Where("submenu_id = ? AND active = ?", submenuID, true).
		Count(&count).Error
	return count, err
}

// Update updates a grant
func (r *roleMenuAccessRepository) Update(ctx context.Context, access *models.RoleMenuAccess) error {
	return r.db.WithContext(ctx).Save(access).Error
}

// SoftDelete marks a grant inactive
func (r *roleMenuAccessRepository) SoftDelete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).
		Model(&models.RoleMenuAccess{}).
		Where("id = ?", id).
		Update("active", false).Error
}

// PermanentDelete removes a grant row entirely
func (r *roleMenuAccessRepository) PermanentDelete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&models.RoleMenuAccess{}, id).Error
}
