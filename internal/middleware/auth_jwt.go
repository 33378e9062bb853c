package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

type PortalClaims struct {
	UID  string   `json:"uid,omitempty"`
	Role string   `json:"role,omitempty"`
	UKM  []string `json:"ukm,omitempty"`
	jwt.RegisteredClaims
}

// JWTAuth parses the bearer token (or the token cookie the login handler
// sets) and stores uid/role/ukm in locals. Requests without a token are
// rejected; route groups that must stay public are mounted before this.
func JWTAuth(secret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenStr := ""
		if auth := c.Get("Authorization"); auth != "" && strings.HasPrefix(strings.ToLower(auth), "bearer ") {
			tokenStr = strings.TrimSpace(auth[7:])
		}
		if tokenStr == "" {
			tokenStr = c.Cookies("token")
		}
		if tokenStr == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"success": false,
				"message": "Token tidak ditemukan",
			})
		}

		var claims PortalClaims
		token, err := jwt.ParseWithClaims(
			tokenStr,
			&claims,
			func(t *jwt.Token) (any, error) {
				if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
					return nil, fiber.NewError(fiber.StatusUnauthorized, "unsupported alg")
				}
				return []byte(secret), nil
			},
			jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		)
		if err != nil || !token.Valid {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"success": false,
				"message": "Token tidak valid",
			})
		}

		uid := claims.UID
		if uid == "" {
			uid = claims.Subject
		}
		if uid == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"success": false,
				"message": "Token tidak valid",
			})
		}

		c.Locals("user_id", uid)
		c.Locals("role", claims.Role)
		c.Locals("ukm", claims.UKM)
		return c.Next()
	}
}

// RequireRole gates a route group to the given roles.
func RequireRole(roles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role, _ := c.Locals("role").(string)
		for _, allowed := range roles {
			if role == allowed {
				return c.Next()
			}
		}
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"success": false,
			"message": "Akses ditolak",
		})
	}
}

// UID returns the authenticated user id from locals.
func UID(c *fiber.Ctx) string {
	uid, _ := c.Locals("user_id").(string)
	return uid
}
