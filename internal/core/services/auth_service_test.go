package services

import (
	"context"
	"testing"
	"time"

	"menugate/internal/adapters/persistence/models"
	"menugate/internal/core/domain"
	"menugate/internal/pkg/password"
	"menugate/internal/pkg/token"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type authFixture struct {
	users  *fakeUserRepo
	menus  *menuFixture
	tokens *token.Service
	svc    *AuthService
}

func newAuthFixture(t *testing.T) *authFixture {
	t.Helper()

	f := &authFixture{
		users:  newFakeUserRepo(),
		menus:  newMenuFixture(),
		tokens: token.NewService("access-secret", "refresh-secret", 15*time.Minute, 24*time.Hour),
	}
	f.svc = NewAuthService(f.users, f.menus.svc, f.tokens)
	return f
}

func (f *authFixture) addUser(t *testing.T, name, email, plaintext string, roleID uint) *models.User {
	t.Helper()

	hashed, err := password.Hash(plaintext)
	require.NoError(t, err)

	user := &models.User{
		Name:     name,
		Email:    email,
		Password: hashed,
		RoleID:   roleID,
		Verified: true,
		Active:   true,
	}
	require.NoError(t, f.users.Create(context.Background(), user))
	return user
}

func TestLoginIssuesTokensMatchingProfile(t *testing.T) {
	f := newAuthFixture(t)
	f.menus.addRole(domain.RoleBasicUser, "basic user")
	user := f.addUser(t, "Jane Doe", "jane@example.com", "secret-password", domain.RoleBasicUser)

	result, err := f.svc.Login(context.Background(), "jane@example.com", "secret-password")
	require.NoError(t, err)

	claims, err := f.tokens.DecodeAccessToken(result.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, user.Name, claims.Name)
	assert.Equal(t, user.Email, claims.Email)
	assert.Equal(t, user.RoleID, claims.RoleID)
	assert.Equal(t, user.Verified, claims.Verified)
	assert.Equal(t, user.Active, claims.Active)

	assert.Equal(t, user.ToProfile(), result.Profile)
	assert.NotNil(t, result.MenuAccess)

	// The refresh token is persisted on the user row.
	require.NotNil(t, user.RefreshToken)
	assert.Equal(t, result.RefreshToken, *user.RefreshToken)
}

func TestLoginDoesNotRevealWhichCredentialFailed(t *testing.T) {
	f := newAuthFixture(t)
	f.menus.addRole(domain.RoleBasicUser, "basic user")
	f.addUser(t, "Jane Doe", "jane@example.com", "secret-password", domain.RoleBasicUser)

	_, badEmail := f.svc.Login(context.Background(), "nobody@example.com", "secret-password")
	_, badPassword := f.svc.Login(context.Background(), "jane@example.com", "wrong-password")

	assert.ErrorIs(t, badEmail, domain.ErrInvalidCredentials)
	assert.ErrorIs(t, badPassword, domain.ErrInvalidCredentials)
	assert.Equal(t, badEmail, badPassword)
}

func TestLoginRejectsInactiveUser(t *testing.T) {
	f := newAuthFixture(t)
	f.menus.addRole(domain.RoleBasicUser, "basic user")
	user := f.addUser(t, "Jane Doe", "jane@example.com", "secret-password", domain.RoleBasicUser)
	user.Active = false

	_, err := f.svc.Login(context.Background(), "jane@example.com", "secret-password")
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestLoginOverwritesPreviousSession(t *testing.T) {
	f := newAuthFixture(t)
	f.menus.addRole(domain.RoleBasicUser, "basic user")
	user := f.addUser(t, "Jane Doe", "jane@example.com", "secret-password", domain.RoleBasicUser)

	first, err := f.svc.Login(context.Background(), "jane@example.com", "secret-password")
	require.NoError(t, err)
	second, err := f.svc.Login(context.Background(), "jane@example.com", "secret-password")
	require.NoError(t, err)

	require.NotEqual(t, first.RefreshToken, second.RefreshToken)
	require.NotNil(t, user.RefreshToken)
	assert.Equal(t, second.RefreshToken, *user.RefreshToken)

	// The first session's refresh token is no longer accepted.
	_, err = f.svc.Refresh(context.Background(), first.RefreshToken)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	_, err = f.svc.Refresh(context.Background(), second.RefreshToken)
	assert.NoError(t, err)
}

func TestRefreshMintsNewAccessToken(t *testing.T) {
	f := newAuthFixture(t)
	f.menus.addRole(domain.RoleBasicUser, "basic user")
	user := f.addUser(t, "Jane Doe", "jane@example.com", "secret-password", domain.RoleBasicUser)

	login, err := f.svc.Login(context.Background(), "jane@example.com", "secret-password")
	require.NoError(t, err)

	result, err := f.svc.Refresh(context.Background(), login.RefreshToken)
	require.NoError(t, err)
	assert.Equal(t, user.ToProfile(), result.Profile)

	claims, err := f.tokens.DecodeAccessToken(result.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, user.Email, claims.Email)
}

func TestRefreshRejectsGarbageToken(t *testing.T) {
	f := newAuthFixture(t)

	_, err := f.svc.Refresh(context.Background(), "not-a-token")
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestRefreshRejectsTokenAfterLogout(t *testing.T) {
	f := newAuthFixture(t)
	f.menus.addRole(domain.RoleBasicUser, "basic user")
	f.addUser(t, "Jane Doe", "jane@example.com", "secret-password", domain.RoleBasicUser)

	login, err := f.svc.Login(context.Background(), "jane@example.com", "secret-password")
	require.NoError(t, err)

	require.NoError(t, f.svc.Logout(context.Background(), login.RefreshToken, "jane@example.com"))

	// The token still decodes, but no longer matches the persisted value.
	_, err = f.svc.Refresh(context.Background(), login.RefreshToken)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestLogoutIsIdempotent(t *testing.T) {
	f := newAuthFixture(t)
	f.menus.addRole(domain.RoleBasicUser, "basic user")
	user := f.addUser(t, "Jane Doe", "jane@example.com", "secret-password", domain.RoleBasicUser)

	login, err := f.svc.Login(context.Background(), "jane@example.com", "secret-password")
	require.NoError(t, err)

	require.NoError(t, f.svc.Logout(context.Background(), login.RefreshToken, "jane@example.com"))
	assert.Nil(t, user.RefreshToken)

	require.NoError(t, f.svc.Logout(context.Background(), login.RefreshToken, "jane@example.com"))
	assert.Nil(t, user.RefreshToken)

	// No cookie and unknown user both still succeed.
	assert.NoError(t, f.svc.Logout(context.Background(), "", "jane@example.com"))
	assert.NoError(t, f.svc.Logout(context.Background(), login.RefreshToken, "nobody@example.com"))
}

func TestRegisterHashesPasswordAndRejectsDuplicateEmail(t *testing.T) {
	f := newAuthFixture(t)

	user, err := f.svc.Register(context.Background(), &RegisterInput{
		Name:     "Jane Doe",
		Email:    "jane@example.com",
		Password: "secret-password",
		RoleID:   domain.RoleBasicUser,
	})
	require.NoError(t, err)
	assert.NotEqual(t, "secret-password", user.Password)
	assert.True(t, password.Verify("secret-password", user.Password))
	assert.True(t, user.Verified)
	assert.True(t, user.Active)

	_, err = f.svc.Register(context.Background(), &RegisterInput{
		Name:     "Other",
		Email:    "jane@example.com",
		Password: "another-password",
		RoleID:   domain.RoleBasicUser,
	})
	assert.ErrorIs(t, err, domain.ErrEmailTaken)
}

func TestRegisterThenLoginMenuAccessScenario(t *testing.T) {
	f := newAuthFixture(t)
	f.menus.addRole(domain.RoleBasicUser, "basic user")
	f.menus.addMaster(1, 1)
	f.menus.addSubmenu(11, 1, 1)

	_, err := f.svc.Register(context.Background(), &RegisterInput{
		Name:     "Jane Doe",
		Email:    "jane@example.com",
		Password: "secret-password",
		RoleID:   domain.RoleBasicUser,
	})
	require.NoError(t, err)

	// No grants yet: empty menuAccess.
	login, err := f.svc.Login(context.Background(), "jane@example.com", "secret-password")
	require.NoError(t, err)
	assert.Empty(t, login.MenuAccess)

	// Grant role 3 the submenu and login again.
	f.menus.grant(domain.RoleBasicUser, 11)

	login, err = f.svc.Login(context.Background(), "jane@example.com", "secret-password")
	require.NoError(t, err)
	require.Len(t, login.MenuAccess, 1)
	assert.Equal(t, uint(1), login.MenuAccess[0].ID)
	require.Len(t, login.MenuAccess[0].Submenus, 1)
	assert.Equal(t, uint(11), login.MenuAccess[0].Submenus[0].ID)
}

func TestCurrentUserNotFound(t *testing.T) {
	f := newAuthFixture(t)

	_, err := f.svc.CurrentUser(context.Background(), "nobody@example.com")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestSweepExpiredSessions(t *testing.T) {
	f := newAuthFixture(t)
	f.menus.addRole(domain.RoleBasicUser, "basic user")
	fresh := f.addUser(t, "Fresh", "fresh@example.com", "secret-password", domain.RoleBasicUser)
	stale := f.addUser(t, "Stale", "stale@example.com", "secret-password", domain.RoleBasicUser)

	login, err := f.svc.Login(context.Background(), "fresh@example.com", "secret-password")
	require.NoError(t, err)

	expiring := token.NewService("access-secret", "refresh-secret", time.Minute, -time.Minute)
	expired, err := expiring.IssueRefreshToken(token.UserData{Email: stale.Email, RoleID: stale.RoleID})
	require.NoError(t, err)
	require.NoError(t, f.users.SetRefreshToken(context.Background(), stale.ID, &expired))

	sweeper := NewCronService(f.users, f.tokens)
	cleared, err := sweeper.SweepExpiredSessions(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, cleared)

	assert.Nil(t, stale.RefreshToken)
	require.NotNil(t, fresh.RefreshToken)
	assert.Equal(t, login.RefreshToken, *fresh.RefreshToken)
}
