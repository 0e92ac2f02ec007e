package user

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
)

// Session tokens replace the browser's local-storage user blob: the
// signed claims are the only session state the gateway trusts.

const tokenTTL = 72 * time.Hour

// NewToken mints a signed HS256 session token for the user.
func NewToken(u User, secret []byte) (string, error) {
	claims := jwt.MapClaims{
		"user_id": u.ID,
		"email":   u.Email,
		"role":    u.Role,
		"exp":     time.Now().Add(tokenTTL).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secret)
}

func claimsFromCtx(c *fiber.Ctx) (jwt.MapClaims, bool) {
	u := c.Locals("user")
	if u == nil {
		return nil, false
	}
	tok, ok := u.(*jwt.Token)
	if !ok {
		return nil, false
	}
	claims, ok := tok.Claims.(jwt.MapClaims)
	return claims, ok
}

// GetUserIDFromCtx extracts the user_id claim from the JWT stored in
// `c.Locals("user")` by the JWT middleware. Several packages need
// this, so it is exported here.
func GetUserIDFromCtx(c *fiber.Ctx) (int64, error) {
	claims, ok := claimsFromCtx(c)
	if !ok {
		return 0, fiber.ErrUnauthorized
	}
	raw, ok := claims["user_id"]
	if !ok {
		return 0, fiber.ErrUnauthorized
	}
	switch v := raw.(type) {
	case float64:
		return int64(v), nil
	case int64:
		return v, nil
	case int:
		return int64(v), nil
	}
	return 0, fiber.ErrUnauthorized
}

// IsAdminFromCtx reports whether the session carries the admin role.
func IsAdminFromCtx(c *fiber.Ctx) bool {
	claims, ok := claimsFromCtx(c)
	if !ok {
		return false
	}
	role, _ := claims["role"].(string)
	return role == RoleAdmin
}

// RequireAdmin is a middleware guarding the /admin route group. It
// runs after the JWT middleware, so a missing token never reaches it.
func RequireAdmin(c *fiber.Ctx) error {
	if !IsAdminFromCtx(c) {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"message": "admin access required"})
	}
	return c.Next()
}
