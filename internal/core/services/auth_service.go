package services

import (
	"context"
	"errors"
	"log"

	"menugate/internal/adapters/persistence/models"
	"menugate/internal/adapters/persistence/repositories"
	"menugate/internal/core/domain"
	"menugate/internal/pkg/password"
	"menugate/internal/pkg/token"

	"gorm.io/gorm"
)

// AuthService handles the authentication and session lifecycle. A user has
// at most one active session: login persists the refresh token on the user
// row, overwriting whatever was there before.
type AuthService struct {
	userRepo repositories.UserRepository
	menuSvc  *MenuService
	tokens   *token.Service
}

// NewAuthService creates a new auth service
func NewAuthService(
	userRepo repositories.UserRepository,
	menuSvc *MenuService,
	tokens *token.Service,
) *AuthService {
	return &AuthService{
		userRepo: userRepo,
		menuSvc:  menuSvc,
		tokens:   tokens,
	}
}

// RegisterInput represents registration input after validation
type RegisterInput struct {
	Name     string
	Email    string
	Password string
	RoleID   uint
}

// LoginResult represents a successful login
type LoginResult struct {
	Profile      *models.UserProfile
	AccessToken  string
	RefreshToken string
	MenuAccess   []*models.MasterMenu
}

// RefreshResult represents a successful token refresh
type RefreshResult struct {
	Profile     *models.UserProfile
	AccessToken string
}

// Register creates a new user with a hashed password
func (s *AuthService) Register(ctx context.Context, input *RegisterInput) (*models.User, error) {
	taken, err := s.userRepo.ExistsByEmail(ctx, input.Email)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, domain.ErrEmailTaken
	}

	hashed, err := password.Hash(input.Password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Name:     input.Name,
		Email:    input.Email,
		Password: hashed,
		RoleID:   input.RoleID,
		Verified: true,
		Active:   true,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	log.Printf("user registered: %s", user.Email)
	return user, nil
}

// Login authenticates a user and opens a session. The error is the same
// for an unknown email and a wrong password.
func (s *AuthService) Login(ctx context.Context, email, plaintext string) (*LoginResult, error) {
	user, err := s.userRepo.GetActiveByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	if !password.Verify(plaintext, user.Password) {
		return nil, domain.ErrInvalidCredentials
	}

	data := token.UserData{
		Name:     user.Name,
		Email:    user.Email,
		RoleID:   user.RoleID,
		Verified: user.Verified,
		Active:   user.Active,
	}

	accessToken, err := s.tokens.IssueAccessToken(data)
	if err != nil {
		return nil, err
	}
	refreshToken, err := s.tokens.IssueRefreshToken(data)
	if err != nil {
		return nil, err
	}

	// Overwrites any previous session for this user.
	if err := s.userRepo.SetRefreshToken(ctx, user.ID, &refreshToken); err != nil {
		return nil, err
	}

	menuAccess, err := s.menuSvc.ResolveMenuTree(ctx, user.RoleID)
	if err != nil {
		return nil, err
	}

	log.Printf("user logged in: %s", user.Email)

	return &LoginResult{
		Profile:      user.ToProfile(),
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		MenuAccess:   menuAccess,
	}, nil
}

// Refresh mints a new access token from a refresh token. The presented
// token must decode and match the one persisted on the user row, so a
// token invalidated by logout or a newer login is rejected even before
// it expires.
func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (*RefreshResult, error) {
	claims, err := s.tokens.DecodeRefreshToken(refreshToken)
	if err != nil {
		return nil, domain.ErrUnauthorized
	}

	user, err := s.userRepo.GetActiveByEmail(ctx, claims.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUnauthorized
		}
		return nil, err
	}

	if user.RefreshToken == nil || *user.RefreshToken != refreshToken {
		return nil, domain.ErrUnauthorized
	}

	accessToken, err := s.tokens.IssueAccessToken(token.UserData{
		Name:     user.Name,
		Email:    user.Email,
		RoleID:   user.RoleID,
		Verified: user.Verified,
		Active:   user.Active,
	})
	if err != nil {
		return nil, err
	}

	return &RefreshResult{
		Profile:     user.ToProfile(),
		AccessToken: accessToken,
	}, nil
}

// Logout clears the user's persisted refresh token. It is idempotent: a
// missing cookie or unknown user still counts as logged out.
func (s *AuthService) Logout(ctx context.Context, refreshToken, email string) error {
	if refreshToken == "" {
		return nil
	}

	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return err
	}

	if err := s.userRepo.SetRefreshToken(ctx, user.ID, nil); err != nil {
		return err
	}

	log.Printf("user logged out: %s", email)
	return nil
}

// CurrentUser returns the user for an authenticated email with the role
// preloaded. Secret fields never serialize.
func (s *AuthService) CurrentUser(ctx context.Context, email string) (*models.User, error) {
	user, err := s.userRepo.GetByEmailWithRole(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return user, nil
}
