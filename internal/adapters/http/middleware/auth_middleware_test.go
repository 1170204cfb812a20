package middleware

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"menugate/internal/core/domain"
	"menugate/internal/pkg/response"
	"menugate/internal/pkg/token"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newGateApp(t *testing.T) (*fiber.App, *token.Service) {
	t.Helper()

	tokens := token.NewService("access-secret", "refresh-secret", 15*time.Minute, 24*time.Hour)

	app := fiber.New()
	app.Get("/open", Authenticated(tokens), func(c *fiber.Ctx) error {
		return response.OK(c, fiber.Map{
			"email":  c.Locals(LocalUserEmail),
			"roleId": c.Locals(LocalRoleID),
		})
	})
	app.Get("/admin", Authenticated(tokens), AdminRole(), func(c *fiber.Ctx) error {
		return response.OK(c, nil)
	})
	app.Get("/super", Authenticated(tokens), SuperUser(), func(c *fiber.Ctx) error {
		return response.OK(c, nil)
	})

	return app, tokens
}

func get(t *testing.T, app *fiber.App, path, authHeader string) *http.Response {
	t.Helper()

	req := httptest.NewRequest("GET", path, nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp
}

func issue(t *testing.T, tokens *token.Service, roleID uint) string {
	t.Helper()

	signed, err := tokens.IssueAccessToken(token.UserData{
		Name:   "Jane Doe",
		Email:  "jane@example.com",
		RoleID: roleID,
		Active: true,
	})
	require.NoError(t, err)
	return signed
}

func TestAuthenticatedRejectsMissingHeader(t *testing.T) {
	app, _ := newGateApp(t)

	resp := get(t, app, "/open", "")
	defer resp.Body.Close()
	assert.Equal(t, 401, resp.StatusCode)
}

func TestAuthenticatedRejectsMalformedHeader(t *testing.T) {
	app, _ := newGateApp(t)

	for _, header := range []string{"Bearer", "nonsense", "Bearer "} {
		resp := get(t, app, "/open", header)
		resp.Body.Close()
		assert.Equal(t, 401, resp.StatusCode, "header %q", header)
	}
}

func TestAuthenticatedRejectsBadToken(t *testing.T) {
	app, _ := newGateApp(t)

	resp := get(t, app, "/open", "Bearer not-a-token")
	defer resp.Body.Close()
	assert.Equal(t, 401, resp.StatusCode)
}

func TestAuthenticatedAttachesIdentity(t *testing.T) {
	app, tokens := newGateApp(t)

	resp := get(t, app, "/open", "Bearer "+issue(t, tokens, domain.RoleBasicUser))
	defer resp.Body.Close()
	require.Equal(t, 200, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var envelope response.Response
	require.NoError(t, json.Unmarshal(body, &envelope))

	data, ok := envelope.Data.(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "jane@example.com", data["email"])
	assert.Equal(t, float64(domain.RoleBasicUser), data["roleId"])
}

func TestRoleGateForbidsWrongRole(t *testing.T) {
	app, tokens := newGateApp(t)
	basic := "Bearer " + issue(t, tokens, domain.RoleBasicUser)

	// roleId=3 on an AdminRole route gets 403, on Authenticated-only 200.
	resp := get(t, app, "/admin", basic)
	resp.Body.Close()
	assert.Equal(t, 403, resp.StatusCode)

	resp = get(t, app, "/open", basic)
	resp.Body.Close()
	assert.Equal(t, 200, resp.StatusCode)
}

func TestRoleGateRequiresExactMatch(t *testing.T) {
	app, tokens := newGateApp(t)

	// SuperUser does not pass an AdminRole gate; gates are exact.
	resp := get(t, app, "/admin", "Bearer "+issue(t, tokens, domain.RoleSuperUser))
	resp.Body.Close()
	assert.Equal(t, 403, resp.StatusCode)

	resp = get(t, app, "/super", "Bearer "+issue(t, tokens, domain.RoleSuperUser))
	resp.Body.Close()
	assert.Equal(t, 200, resp.StatusCode)
}
