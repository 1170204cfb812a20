package repositories

import (
	"context"

	"menugate/internal/adapters/persistence/models"

	"gorm.io/gorm"
)

// masterMenuRepository implements MasterMenuRepository interface
type masterMenuRepository struct {
	db *gorm.DB
}

// NewMasterMenuRepository creates a new master menu repository
func NewMasterMenuRepository(db *gorm.DB) MasterMenuRepository {
	return &masterMenuRepository{db: db}
}

// Create creates a new master menu
func (r *masterMenuRepository) Create(ctx context.Context, menu *models.MasterMenu) error {
	return r.db.WithContext(ctx).Create(menu).Error
}

// GetActiveByID gets an active master menu by ID
func (r *masterMenuRepository) GetActiveByID(ctx context.Context, id uint) (*models.MasterMenu, error) {
	var menu models.MasterMenu
	err := r.db.WithContext(ctx).Where("id = ? AND active = ?", id, true).First(&menu).Error
	if err != nil {
		return nil, err
	}
	return &menu, nil
}

// ListActive lists active master menus in display order
func (r *masterMenuRepository) ListActive(ctx context.Context) ([]*models.MasterMenu, error) {
	var menus []*models.MasterMenu
	err := r.db.WithContext(ctx).
		Where("active = ?", true).
		Order("ordering ASC, id ASC").
		Find(&menus).Error
	return menus, err
}

// ListAll lists all master menus including inactive
func (r *masterMenuRepository) ListAll(ctx context.Context) ([]*models.MasterMenu, error) {
	var menus []*models.MasterMenu
	err := r.db.WithContext(ctx).Order("ordering ASC, id ASC").Find(&menus).Error
	return menus, err
}

// Update updates a master menu
func (r *masterMenuRepository) Update(ctx context.Context, menu *models.MasterMenu) error {
	return r.db.WithContext(ctx).Save(menu).Error
}

// SoftDelete marks a master menu inactive
func (r *masterMenuRepository) SoftDelete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).
		Model(&models.MasterMenu{}).
		Where("id = ?", id).
		Update("active", false).Error
}

// PermanentDelete removes a master menu row entirely
func (r *masterMenuRepository) PermanentDelete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&models.MasterMenu{}, id).Error
}

// subMenuRepository implements SubMenuRepository interface
type subMenuRepository struct {
	db *gorm.DB
}

// NewSubMenuRepository creates a new submenu repository
func NewSubMenuRepository(db *gorm.DB) SubMenuRepository {
	return &subMenuRepository{db: db}
}

// Create creates a new submenu
func (r *subMenuRepository) Create(ctx context.Context, submenu *models.SubMenu) error {
	return r.db.WithContext(ctx).Create(submenu).Error
}

// GetActiveByID gets an active submenu by ID
func (r *subMenuRepository) GetActiveByID(ctx context.Context, id uint) (*models.SubMenu, error) {
	var submenu models.SubMenu
	err := r.db.WithContext(ctx).Where("id = ? AND active = ?", id, true).First(&submenu).Error
	if err != nil {
		return nil, err
	}
	return &submenu, nil
}

// ListActive lists active submenus in display order
func (r *subMenuRepository) ListActive(ctx context.Context) ([]*models.SubMenu, error) {
	var submenus []*models.SubMenu
	err := r.db.WithContext(ctx).
		Where("active = ?", true).
		Order("ordering ASC, id ASC").
		Find(&submenus).Error
	return submenus, err
}

// ListAll lists all submenus including inactive
func (r *subMenuRepository) ListAll(ctx context.Context) ([]*models.SubMenu, error) {
	var submenus []*models.SubMenu
	err := r.db.WithContext(ctx).Order("ordering ASC, id ASC").Find(&submenus).Error
	return submenus, err
}

// ListActiveByIDs lists the active submenus whose ID is in the given set
func (r *subMenuRepository) ListActiveByIDs(ctx context.Context, ids []uint) ([]*models.SubMenu, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	var submenus []*models.SubMenu
	err := r.db.WithContext(ctx).
		Where("active = ? AND id IN ?", true, ids).
		Order("ordering ASC, id ASC").
		Find(&submenus).Error
	return submenus, err
}

// CountActiveByMasterMenuID counts active submenus under a master menu
func (r *subMenuRepository) CountActiveByMasterMenuID(ctx context.Context, masterMenuID uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.SubMenu{}).
		Where("master_menu_id = ? AND active = ?", masterMenuID, true).
		Count(&count).Error
	return count, err
}

// Update updates a submenu
func (r *subMenuRepository) Update(ctx context.Context, submenu *models.SubMenu) error {
	return r.db.WithContext(ctx).Save(submenu).Error
}

// SoftDelete marks a submenu inactive
func (r *subMenuRepository) SoftDelete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).
		Model(&models.SubMenu{}).
		Where("id = ?", id).
		Update("active", false).Error
}

// PermanentDelete removes a submenu row entirely
func (r *subMenuRepository) PermanentDelete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&models.SubMenu{}, id).Error
}
