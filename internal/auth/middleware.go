package auth

import (
	"crypto/subtle"

	"github.com/gofiber/fiber/v2"
)

// HeaderKey is the request header carrying the shared classifier secret.
const HeaderKey = "x-classifier-key"

// SharedKeyMiddleware enforces the shared-secret header on protected routes.
// With no secret configured every request passes.
type SharedKeyMiddleware struct {
	secret string
}

// NewSharedKeyMiddleware constructs middleware.
func NewSharedKeyMiddleware(secret string) *SharedKeyMiddleware {
	return &SharedKeyMiddleware{secret: secret}
}

// Handle rejects requests whose header does not match the configured secret.
// The 401 body shape is part of the wire contract and is written here
// directly, bypassing the error envelope.
func (m *SharedKeyMiddleware) Handle(c *fiber.Ctx) error {
	if m.secret == "" {
		return c.Next()
	}

	provided := c.Get(HeaderKey)
	if subtle.ConstantTimeCompare([]byte(provided), []byte(m.secret)) != 1 {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Unauthorized"})
	}

	return c.Next()
}
