package token

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService() *Service {
	return NewService("access-secret", "refresh-secret", 15*time.Minute, 24*time.Hour)
}

func TestAccessTokenRoundTrip(t *testing.T) {
	svc := newTestService()

	data := UserData{
		Name:     "Jane Doe",
		Email:    "jane@example.com",
		RoleID:   2,
		Verified: true,
		Active:   true,
	}

	signed, err := svc.IssueAccessToken(data)
	require.NoError(t, err)
	require.NotEmpty(t, signed)

	claims, err := svc.DecodeAccessToken(signed)
	require.NoError(t, err)
	assert.Equal(t, data, claims.UserData)
}

func TestRefreshTokenRoundTrip(t *testing.T) {
	svc := newTestService()

	data := UserData{Name: "Jane Doe", Email: "jane@example.com", RoleID: 3, Active: true}

	signed, err := svc.IssueRefreshToken(data)
	require.NoError(t, err)

	claims, err := svc.DecodeRefreshToken(signed)
	require.NoError(t, err)
	assert.Equal(t, data, claims.UserData)
	assert.NotEmpty(t, claims.ID)
}

func TestRefreshTokensAreUnique(t *testing.T) {
	svc := newTestService()
	data := UserData{Email: "jane@example.com", RoleID: 3}

	first, err := svc.IssueRefreshToken(data)
	require.NoError(t, err)
	second, err := svc.IssueRefreshToken(data)
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestDecodeRejectsWrongSecret(t *testing.T) {
	svc := newTestService()
	other := NewService("other-access", "other-refresh", 15*time.Minute, 24*time.Hour)

	signed, err := svc.IssueAccessToken(UserData{Email: "jane@example.com"})
	require.NoError(t, err)

	_, err = other.DecodeAccessToken(signed)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestDecodeRejectsCrossTokenKind(t *testing.T) {
	svc := newTestService()

	refresh, err := svc.IssueRefreshToken(UserData{Email: "jane@example.com"})
	require.NoError(t, err)

	// A refresh token must never pass as an access token.
	_, err = svc.DecodeAccessToken(refresh)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestDecodeRejectsExpired(t *testing.T) {
	svc := NewService("access-secret", "refresh-secret", -time.Minute, -time.Minute)

	signed, err := svc.IssueAccessToken(UserData{Email: "jane@example.com"})
	require.NoError(t, err)

	_, err = svc.DecodeAccessToken(signed)
	assert.ErrorIs(t, err, ErrTokenExpired)
}

func TestDecodeRejectsGarbage(t *testing.T) {
	svc := newTestService()

	_, err := svc.DecodeAccessToken("not-a-token")
	assert.ErrorIs(t, err, ErrTokenInvalid)

	_, err = svc.DecodeRefreshToken("")
	assert.ErrorIs(t, err, ErrTokenInvalid)
}
