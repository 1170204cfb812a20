package services

import (
	"context"
	"errors"
	"sort"

	"menugate/internal/adapters/persistence/models"
	"menugate/internal/adapters/persistence/repositories"

	"gorm.io/gorm"
)

// MenuService resolves the menu tree a role is permitted to see.
type MenuService struct {
	roleRepo   repositories.RoleRepository
	accessRepo repositories.RoleMenuAccessRepository
	menuRepo   repositories.MasterMenuRepository
	subRepo    repositories.SubMenuRepository
}

// NewMenuService creates a new menu service
func NewMenuService(
	roleRepo repositories.RoleRepository,
	accessRepo repositories.RoleMenuAccessRepository,
	menuRepo repositories.MasterMenuRepository,
	subRepo repositories.SubMenuRepository,
) *MenuService {
	return &MenuService{
		roleRepo:   roleRepo,
		accessRepo: accessRepo,
		menuRepo:   menuRepo,
		subRepo:    subRepo,
	}
}

// ResolveMenuTree computes the ordered two-level menu tree for a role by
// intersecting the role's active grants with the active menu catalog.
// Master menus and submenus are ordered by their ordering column, ties
// broken by ID. Master menus with no granted submenu are dropped, so a
// role without grants (or an inactive role) gets an empty tree.
func (s *MenuService) ResolveMenuTree(ctx context.Context, roleID uint) ([]*models.MasterMenu, error) {
	tree := []*models.MasterMenu{}

	// A soft-deleted role keeps its grant rows but must not see anything.
	if _, err := s.roleRepo.GetActiveByID(ctx, roleID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return tree, nil
		}
		return nil, err
	}

	grants, err := s.accessRepo.ListActiveByRoleID(ctx, roleID)
	if err != nil {
		return nil, err
	}
	if len(grants) == 0 {
		return tree, nil
	}

	grantedIDs := make([]uint, 0, len(grants))
	for _, grant := range grants {
		grantedIDs = append(grantedIDs, grant.SubmenuID)
	}

	masters, err := s.menuRepo.ListActive(ctx)
	if err != nil {
		return nil, err
	}

	submenus, err := s.subRepo.ListActiveByIDs(ctx, grantedIDs)
	if err != nil {
		return nil, err
	}

	children := make(map[uint][]models.SubMenu)
	for _, submenu := range submenus {
		children[submenu.MasterMenuID] = append(children[submenu.MasterMenuID], *submenu)
	}

	for _, master := range masters {
		granted := children[master.ID]
		if len(granted) == 0 {
			continue
		}
		sort.SliceStable(granted, func(i, j int) bool {
			if granted[i].Ordering != granted[j].Ordering {
				return granted[i].Ordering < granted[j].Ordering
			}
			return granted[i].ID < granted[j].ID
		})

		entry := *master
		entry.Submenus = granted
		tree = append(tree, &entry)
	}

	sort.SliceStable(tree, func(i, j int) bool {
		if tree[i].Ordering != tree[j].Ordering {
			return tree[i].Ordering < tree[j].Ordering
		}
		return tree[i].ID < tree[j].ID
	})

	return tree, nil
}
