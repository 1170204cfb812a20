package models

import (
	"time"

	"gorm.io/gorm"
)

// User represents the users table. The access_token column name is kept
// from the legacy schema; despite its name it stores the current refresh
// token.
type User struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Name         string    `gorm:"size:50;not null" json:"name"`
	Email        string    `gorm:"uniqueIndex;size:100;not null" json:"email"`
	Password     string    `gorm:"size:255;not null" json:"-"`
	RoleID       uint      `gorm:"index;not null" json:"roleId"`
	Verified     bool      `gorm:"default:false" json:"verified"`
	Active       bool      `gorm:"default:true" json:"active"`
	RefreshToken *string   `gorm:"column:access_token;type:text" json:"-"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime" json:"updatedAt"`

	Role *Role `gorm:"foreignKey:RoleID" json:"role,omitempty"`
}

func (User) TableName() string {
	return "users"
}

// UserProfile is the non-secret view of a user returned by auth endpoints.
type UserProfile struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	RoleID   uint   `json:"roleId"`
	Verified bool   `json:"verified"`
	Active   bool   `json:"active"`
}

func (u *User) ToProfile() *UserProfile {
	return &UserProfile{
		Name:     u.Name,
		Email:    u.Email,
		RoleID:   u.RoleID,
		Verified: u.Verified,
		Active:   u.Active,
	}
}

// Role represents the roles table. Soft-deleted by flipping active.
type Role struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"column:role_name;size:50;not null" json:"roleName"`
	Active    bool      `gorm:"default:true" json:"active"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (Role) TableName() string {
	return "roles"
}

// MasterMenu represents the master_menus table. A master menu owns zero or
// more submenus and is displayed in ascending ordering.
type MasterMenu struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"size:50;not null" json:"name"`
	Icon      string    `gorm:"type:text" json:"icon"`
	Ordering  int       `gorm:"not null" json:"ordering"`
	Active    bool      `gorm:"default:true" json:"active"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`

	Submenus []SubMenu `gorm:"foreignKey:MasterMenuID" json:"submenus,omitempty"`
}

func (MasterMenu) TableName() string {
	return "master_menus"
}

// SubMenu represents the sub_menus table.
type SubMenu struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Name         string    `gorm:"size:50;not null" json:"name"`
	MasterMenuID uint      `gorm:"index;not null" json:"masterMenuId"`
	URL          string    `gorm:"type:text" json:"url"`
	Title        string    `gorm:"size:50" json:"title"`
	Icon         string    `gorm:"type:text" json:"icon"`
	Ordering     int       `gorm:"not null" json:"ordering"`
	IsTargetSelf bool      `gorm:"default:true" json:"isTargetSelf"`
	Active       bool      `gorm:"default:true" json:"active"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (SubMenu) TableName() string {
	return "sub_menus"
}

// RoleMenuAccess grants one role visibility of one submenu.
type RoleMenuAccess struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	RoleID    uint      `gorm:"index;not null" json:"roleId"`
	SubmenuID uint      `gorm:"index;not null" json:"submenuId"`
	Active    bool      `gorm:"default:true" json:"active"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`

	Role    *Role    `gorm:"foreignKey:RoleID" json:"role,omitempty"`
	Submenu *SubMenu `gorm:"foreignKey:SubmenuID" json:"submenu,omitempty"`
}

func (RoleMenuAccess) TableName() string {
	return "role_menu_accesses"
}

// AutoMigrate creates or updates all tables.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&Role{},
		&User{},
		&MasterMenu{},
		&SubMenu{},
		&RoleMenuAccess{},
	)
}
