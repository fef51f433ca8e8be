package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"Backend-FormReview/src/utils"
)

// AuthJWT authenticates the reviewer from a Bearer token and exposes the
// claims as userId, email and role locals.
func AuthJWT(c *fiber.Ctx) error {
	authHeader := c.Get("Authorization")
	if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
		return utils.HandleError(c, fiber.StatusUnauthorized, "Missing or invalid Authorization header")
	}

	tokenStr := strings.TrimPrefix(authHeader, "Bearer ")
	claims, err := utils.ParseJWT(tokenStr)
	if err != nil {
		return utils.HandleError(c, fiber.StatusUnauthorized, "Invalid or expired token: "+err.Error())
	}
	if claims.Email == "" && claims.UserID == "" {
		return utils.HandleError(c, fiber.StatusUnauthorized, "Token carries no user identity")
	}

	c.Locals("userId", claims.UserID)
	c.Locals("email", claims.Email)
	c.Locals("role", claims.Role)

	return c.Next()
}

// Reviewer returns the identity recorded on review activities: the token's
// email, or its user id when the email is empty.
func Reviewer(c *fiber.Ctx) string {
	if email, ok := c.Locals("email").(string); ok && email != "" {
		return email
	}
	id, _ := c.Locals("userId").(string)
	return id
}
