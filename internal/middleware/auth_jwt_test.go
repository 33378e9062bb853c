package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maulharun/ukm-terbaru123/internal/models"
)

const testSecret = "test-secret"

func signToken(t *testing.T, claims PortalClaims) string {
	t.Helper()
	claims.ExpiresAt = jwt.NewNumericDate(time.Now().Add(time.Hour))
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)
	return token
}

func testApp() *fiber.App {
	app := fiber.New()
	app.Use(JWTAuth(testSecret))
	app.Get("/me", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"uid": UID(c), "role": c.Locals("role")})
	})
	app.Get("/admin", RequireRole(models.RoleAdmin), func(c *fiber.Ctx) error {
		return c.SendString("ok")
	})
	return app
}

func TestJWTAuthBearerHeader(t *testing.T) {
	app := testApp()
	token := signToken(t, PortalClaims{UID: "u1", Role: models.RoleMahasiswa})

	req := httptest.NewRequest("GET", "/me", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestJWTAuthCookie(t *testing.T) {
	app := testApp()
	token := signToken(t, PortalClaims{UID: "u1", Role: models.RoleMahasiswa})

	req := httptest.NewRequest("GET", "/me", nil)
	req.AddCookie(&http.Cookie{Name: "token", Value: token})
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestJWTAuthMissingToken(t *testing.T) {
	app := testApp()

	resp, err := app.Test(httptest.NewRequest("GET", "/me", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestJWTAuthBadToken(t *testing.T) {
	app := testApp()

	req := httptest.NewRequest("GET", "/me", nil)
	req.Header.Set("Authorization", "Bearer not.a.token")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestRequireRole(t *testing.T) {
	app := testApp()

	adminToken := signToken(t, PortalClaims{UID: "a1", Role: models.RoleAdmin})
	req := httptest.NewRequest("GET", "/admin", nil)
	req.Header.Set("Authorization", "Bearer "+adminToken)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	studentToken := signToken(t, PortalClaims{UID: "u1", Role: models.RoleMahasiswa})
	req = httptest.NewRequest("GET", "/admin", nil)
	req.Header.Set("Authorization", "Bearer "+studentToken)
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
}
