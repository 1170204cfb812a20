package config

import (
	"errors"
	"log"

	"menugate/internal/adapters/persistence/models"
	"menugate/internal/core/domain"
	"menugate/internal/pkg/password"

	"gorm.io/gorm"
)

// Seed inserts the fixed roles, a starter menu catalog and the bootstrap
// super user. Safe to run on every startup.
func Seed(db *gorm.DB) error {
	if err := seedRoles(db); err != nil {
		return err
	}
	if err := seedMenus(db); err != nil {
		return err
	}
	if err := seedSuperUser(db); err != nil {
		return err
	}

	log.Println("seed data ensured")
	return nil
}

// seedRoles inserts the three fixed roles the authorization gates compare
// against. Their IDs must not change.
func seedRoles(db *gorm.DB) error {
	roles := []models.Role{
		{ID: domain.RoleSuperUser, Name: "Super User", Active: true},
		{ID: domain.RoleAdmin, Name: "Admin", Active: true},
		{ID: domain.RoleBasicUser, Name: "Basic User", Active: true},
	}

	for _, role := range roles {
		var existing models.Role
		err := db.Where("id = ?", role.ID).First(&existing).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			if err := db.Create(&role).Error; err != nil {
				return err
			}
			log.Printf("   created role: %s", role.Name)
		} else if err != nil {
			return err
		}
	}
	return nil
}

func seedMenus(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.MasterMenu{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	master := models.MasterMenu{
		Name:     "Settings",
		Icon:     "settings",
		Ordering: 1,
		Active:   true,
	}
	if err := db.Create(&master).Error; err != nil {
		return err
	}

	submenus := []models.SubMenu{
		{
			Name:         "User Management",
			MasterMenuID: master.ID,
			URL:          "/settings/users",
			Title:        "User Management",
			Icon:         "users",
			Ordering:     1,
			IsTargetSelf: true,
			Active:       true,
		},
		{
			Name:         "Menu Management",
			MasterMenuID: master.ID,
			URL:          "/settings/menus",
			Title:        "Menu Management",
			Icon:         "menu",
			Ordering:     2,
			IsTargetSelf: true,
			Active:       true,
		},
	}
	for _, submenu := range submenus {
		if err := db.Create(&submenu).Error; err != nil {
			return err
		}
	}

	log.Println("   created starter menu catalog")
	return nil
}

// seedSuperUser creates the bootstrap account so the admin endpoints are
// reachable on a fresh database.
func seedSuperUser(db *gorm.DB) error {
	email := getEnv("SEED_SUPERUSER_EMAIL", "superuser@menugate.local")

	var existing models.User
	err := db.Where("email = ?", email).First(&existing).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	hashed, err := password.Hash(getEnv("SEED_SUPERUSER_PASSWORD", "ChangeMe123!"))
	if err != nil {
		return err
	}

	user := models.User{
		Name:     "Super User",
		Email:    email,
		Password: hashed,
		RoleID:   domain.RoleSuperUser,
		Verified: true,
		Active:   true,
	}
	if err := db.Create(&user).Error; err != nil {
		return err
	}

	log.Printf("   created super user: %s", email)
	return nil
}
