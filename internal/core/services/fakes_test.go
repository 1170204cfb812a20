package services

import (
	"context"

	"menugate/internal/adapters/persistence/models"

	"gorm.io/gorm"
)

// In-memory repository fakes backing the service tests.

type fakeUserRepo struct {
	users  []*models.User
	nextID uint
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{nextID: 1}
}

func (r *fakeUserRepo) Create(_ context.Context, user *models.User) error {
	user.ID = r.nextID
	r.nextID++
	r.users = append(r.users, user)
	return nil
}

func (r *fakeUserRepo) GetByEmail(_ context.Context, email string) (*models.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeUserRepo) GetActiveByEmail(_ context.Context, email string) (*models.User, error) {
	for _, u := range r.users {
		if u.Email == email && u.Active {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeUserRepo) GetByEmailWithRole(ctx context.Context, email string) (*models.User, error) {
	return r.GetByEmail(ctx, email)
}

func (r *fakeUserRepo) ExistsByEmail(_ context.Context, email string) (bool, error) {
	for _, u := range r.users {
		if u.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeUserRepo) SetRefreshToken(_ context.Context, id uint, refreshToken *string) error {
	for _, u := range r.users {
		if u.ID == id {
			u.RefreshToken = refreshToken
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (r *fakeUserRepo) ListWithRefreshToken(_ context.Context) ([]*models.User, error) {
	var out []*models.User
	for _, u := range r.users {
		if u.RefreshToken != nil && *u.RefreshToken != "" {
			out = append(out, u)
		}
	}
	return out, nil
}

type fakeRoleRepo struct {
	roles  []*models.Role
	nextID uint
}

func newFakeRoleRepo() *fakeRoleRepo {
	return &fakeRoleRepo{nextID: 1}
}

func (r *fakeRoleRepo) Create(_ context.Context, role *models.Role) error {
	if role.ID == 0 {
		role.ID = r.nextID
	}
	if role.ID >= r.nextID {
		r.nextID = role.ID + 1
	}
	r.roles = append(r.roles, role)
	return nil
}

func (r *fakeRoleRepo) GetActiveByID(_ context.Context, id uint) (*models.Role, error) {
	for _, role := range r.roles {
		if role.ID == id && role.Active {
			return role, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeRoleRepo) ListActive(_ context.Context, offset, limit int) ([]*models.Role, int64, error) {
	var active []*models.Role
	for _, role := range r.roles {
		if role.Active {
			active = append(active, role)
		}
	}
	total := int64(len(active))
	if offset >= len(active) {
		return nil, total, nil
	}
	end := offset + limit
	if end > len(active) {
		end = len(active)
	}
	return active[offset:end], total, nil
}

func (r *fakeRoleRepo) Update(_ context.Context, _ *models.Role) error { return nil }

func (r *fakeRoleRepo) SoftDelete(_ context.Context, id uint) error {
	for _, role := range r.roles {
		if role.ID == id {
			role.Active = false
		}
	}
	return nil
}

func (r *fakeRoleRepo) PermanentDelete(_ context.Context, id uint) error {
	for i, role := range r.roles {
		if role.ID == id {
			r.roles = append(r.roles[:i], r.roles[i+1:]...)
			return nil
		}
	}
	return nil
}

type fakeMasterMenuRepo struct {
	menus []*models.MasterMenu
}

func (r *fakeMasterMenuRepo) Create(_ context.Context, menu *models.MasterMenu) error {
	r.menus = append(r.menus, menu)
	return nil
}

func (r *fakeMasterMenuRepo) GetActiveByID(_ context.Context, id uint) (*models.MasterMenu, error) {
	for _, m := range r.menus {
		if m.ID == id && m.Active {
			return m, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeMasterMenuRepo) ListActive(_ context.Context) ([]*models.MasterMenu, error) {
	var out []*models.MasterMenu
	for _, m := range r.menus {
		if m.Active {
			out = append(out, m)
		}
	}
	return out, nil
}

func (r *fakeMasterMenuRepo) ListAll(_ context.Context) ([]*models.MasterMenu, error) {
	return r.menus, nil
}

func (r *fakeMasterMenuRepo) Update(_ context.Context, _ *models.MasterMenu) error { return nil }

func (r *fakeMasterMenuRepo) SoftDelete(_ context.Context, id uint) error {
	for _, m := range r.menus {
		if m.ID == id {
			m.Active = false
		}
	}
	return nil
}

func (r *fakeMasterMenuRepo) PermanentDelete(_ context.Context, _ uint) error { return nil }

type fakeSubMenuRepo struct {
	submenus []*models.SubMenu
}

func (r *fakeSubMenuRepo) Create(_ context.Context, submenu *models.SubMenu) error {
	r.submenus = append(r.submenus, submenu)
	return nil
}

func (r *fakeSubMenuRepo) GetActiveByID(_ context.Context, id uint) (*models.SubMenu, error) {
	for _, sm := range r.submenus {
		if sm.ID == id && sm.Active {
			return sm, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeSubMenuRepo) ListActive(_ context.Context) ([]*models.SubMenu, error) {
	var out []*models.SubMenu
	for _, sm := range r.submenus {
		if sm.Active {
			out = append(out, sm)
		}
	}
	return out, nil
}

func (r *fakeSubMenuRepo) ListAll(_ context.Context) ([]*models.SubMenu, error) {
	return r.submenus, nil
}

func (r *fakeSubMenuRepo) ListActiveByIDs(_ context.Context, ids []uint) ([]*models.SubMenu, error) {
	wanted := make(map[uint]bool, len(ids))
	for _, id := range ids {
		wanted[id] = true
	}
	var out []*models.SubMenu
	for _, sm := range r.submenus {
		if sm.Active && wanted[sm.ID] {
			out = append(out, sm)
		}
	}
	return out, nil
}

func (r *fakeSubMenuRepo) CountActiveByMasterMenuID(_ context.Context, masterMenuID uint) (int64, error) {
	var count int64
	for _, sm := range r.submenus {
		if sm.Active && sm.MasterMenuID == masterMenuID {
			count++
		}
	}
	return count, nil
}

func (r *fakeSubMenuRepo) Update(_ context.Context, _ *models.SubMenu) error { return nil }

func (r *fakeSubMenuRepo) SoftDelete(_ context.Context, id uint) error {
	for _, sm := range r.submenus {
		if sm.ID == id {
			sm.Active = false
		}
	}
	return nil
}

func (r *fakeSubMenuRepo) PermanentDelete(_ context.Context, _ uint) error { return nil }

type fakeAccessRepo struct {
	grants []*models.RoleMenuAccess
	nextID uint
}

func newFakeAccessRepo() *fakeAccessRepo {
	return &fakeAccessRepo{nextID: 1}
}

func (r *fakeAccessRepo) Create(_ context.Context, access *models.RoleMenuAccess) error {
	access.ID = r.nextID
	r.nextID++
	r.grants = append(r.grants, access)
	return nil
}

func (r *fakeAccessRepo) GetActiveByID(_ context.Context, id uint) (*models.RoleMenuAccess, error) {
	for _, g := range r.grants {
		if g.ID == id && g.Active {
			return g, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeAccessRepo) ListActive(_ context.Context) ([]*models.RoleMenuAccess, error) {
	var out []*models.RoleMenuAccess
	for _, g := range r.grants {
		if g.Active {
			out = append(out, g)
		}
	}
	return out, nil
}

func (r *fakeAccessRepo) ListAll(_ context.Context) ([]*models.RoleMenuAccess, error) {
	return r.grants, nil
}

func (r *fakeAccessRepo) ListActiveByRoleID(_ context.Context, roleID uint) ([]*models.RoleMenuAccess, error) {
	var out []*models.RoleMenuAccess
	for _, g := range r.grants {
		if g.Active && g.RoleID == roleID {
			out = append(out, g)
		}
	}
	return out, nil
}

func (r *fakeAccessRepo) ExistsActive(_ context.Context, roleID, submenuID uint) (bool, error) {
	for _, g := range r.grants {
		if g.Active && g.RoleID == roleID && g.SubmenuID == submenuID {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeAccessRepo) CountActiveByRoleID(_ context.Context, roleID uint) (int64, error) {
	var count int64
	for _, g := range r.grants {
		if g.Active && g.RoleID == roleID {
			count++
		}
	}
	return count, nil
}

func (r *fakeAccessRepo) CountActiveBySubmenuID(_ context.Context, submenuID uint) (int64, error) {
	var count int64
	for _, g := range r.grants {
		if g.Active && g.SubmenuID == submenuID {
			count++
		}
	}
	return count, nil
}

func (r *fakeAccessRepo) Update(_ context.Context, _ *models.RoleMenuAccess) error { return nil }

func (r *fakeAccessRepo) SoftDelete(_ context.Context, id uint) error {
	for _, g := range r.grants {
		if g.ID == id {
			g.Active = false
		}
	}
	return nil
}

func (r *fakeAccessRepo) PermanentDelete(_ context.Context, _ uint) error { return nil }
