package domain

import "errors"

// Fixed role IDs. The authorization gates compare against these exactly.
const (
	RoleSuperUser uint = 1
	RoleAdmin     uint = 2
	RoleBasicUser uint = 3
)

// Common domain errors
var (
	ErrNotFound           = errors.New("resource not found")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrForbidden          = errors.New("forbidden")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmailTaken         = errors.New("email already exist")
	ErrDuplicateGrant     = errors.New("role already has access to this submenu")
	ErrHasActiveChildren  = errors.New("entity still has active dependents")
)
