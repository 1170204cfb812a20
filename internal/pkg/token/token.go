package token

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var (
	ErrTokenExpired = errors.New("token has expired")
	ErrTokenInvalid = errors.New("token is invalid")
)

// UserData is the claim payload carried by both token kinds.
type UserData struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	RoleID   uint   `json:"roleId"`
	Verified bool   `json:"verified"`
	Active   bool   `json:"active"`
}

// Claims represents the signed JWT claims.
type Claims struct {
	UserData
	jwt.RegisteredClaims
}

// Service issues and decodes access and refresh tokens. It is constructed
// once from configuration and holds its secrets; no global signing state.
type Service struct {
	accessSecret  []byte
	refreshSecret []byte
	accessTTL     time.Duration
	refreshTTL    time.Duration
	issuer        string
}

// NewService creates a token service.
func NewService(accessSecret, refreshSecret string, accessTTL, refreshTTL time.Duration) *Service {
	return &Service{
		accessSecret:  []byte(accessSecret),
		refreshSecret: []byte(refreshSecret),
		accessTTL:     accessTTL,
		refreshTTL:    refreshTTL,
		issuer:        "menugate",
	}
}

// AccessTTL returns the access token lifetime.
func (s *Service) AccessTTL() time.Duration {
	return s.accessTTL
}

// RefreshTTL returns the refresh token lifetime. The refresh cookie max-age
// must match this value.
func (s *Service) RefreshTTL() time.Duration {
	return s.refreshTTL
}

// IssueAccessToken signs a short-lived access token for the given user data.
func (s *Service) IssueAccessToken(data UserData) (string, error) {
	return s.sign(data, s.accessSecret, s.accessTTL, "")
}

// IssueRefreshToken signs a longer-lived refresh token. Each refresh token
// carries a unique ID so two logins in the same second still produce
// distinct tokens.
func (s *Service) IssueRefreshToken(data UserData) (string, error) {
	return s.sign(data, s.refreshSecret, s.refreshTTL, uuid.New().String())
}

// DecodeAccessToken validates an access token and returns its claims.
func (s *Service) DecodeAccessToken(tokenString string) (*Claims, error) {
	return decode(tokenString, s.accessSecret)
}

// DecodeRefreshToken validates a refresh token and returns its claims.
func (s *Service) DecodeRefreshToken(tokenString string) (*Claims, error) {
	return decode(tokenString, s.refreshSecret)
}

func (s *Service) sign(data UserData, secret []byte, ttl time.Duration, id string) (string, error) {
	now := time.Now()
	claims := Claims{
		UserData: data,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        id,
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    s.issuer,
			Subject:   data.Email,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secret)
}

func decode(tokenString string, secret []byte) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrTokenInvalid
		}
		return secret, nil
	})

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, ErrTokenInvalid
	}

	if claims, ok := token.Claims.(*Claims); ok && token.Valid {
		return claims, nil
	}

	return nil, ErrTokenInvalid
}
