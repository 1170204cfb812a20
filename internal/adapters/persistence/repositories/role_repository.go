package repositories

import (
	"context"

	"menugate/internal/adapters/persistence/models"

	"gorm.io/gorm"
)

// roleRepository implements RoleRepository interface
type roleRepository struct {
	db *gorm.DB
}

// NewRoleRepository creates a new role repository
func NewRoleRepository(db *gorm.DB) RoleRepository {
	return &roleRepository{db: db}
}

// Create creates a new role
func (r *roleRepository) Create(ctx context.Context, role *models.Role) error {
	return r.db.WithContext(ctx).Create(role).Error
}

// GetActiveByID gets an active role by ID
func (r *roleRepository) GetActiveByID(ctx context.Context, id uint) (*models.Role, error) {
	var role models.Role
	err := r.db.WithContext(ctx).Where("id = ? AND active = ?", id, true).First(&role).Error
	if err != nil {
		return nil, err
	}
	return &role, nil
}

// ListActive lists active roles with pagination
func (r *roleRepository) ListActive(ctx context.Context, offset, limit int) ([]*models.Role, int64, error) {
	var roles []*models.Role
	var total int64

	query := r.db.WithContext(ctx).Model(&models.Role{}).Where("active = ?", true)

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	if err := query.Order("id ASC").Offset(offset).Limit(limit).Find(&roles).Error; err != nil {
		return nil, 0, err
	}

	return roles, total, nil
}

// Update updates a role
func (r *roleRepository) Update(ctx context.Context, role *models.Role) error {
	return r.db.WithContext(ctx).Save(role).Error
}

// SoftDelete marks a role inactive
func (r *roleRepository) SoftDelete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).
		Model(&models.Role{}).
		Where("id = ?", id).
		Update("active", false).Error
}

// PermanentDelete removes a role row entirely
func (r *roleRepository) PermanentDelete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&models.Role{}, id).Error
}
