package serverutils

import (
	"github.com/gofiber/fiber/v2"
)

// GatewayMiddleware applies the permissive cross-origin header set and
// short-circuits preflight requests. The API is meant to be callable from any
// browser origin; this is a published surface, not a security boundary.
//
// Preflight answers 200 with an empty body. Fiber's cors middleware answers
// 204 and rejects wildcard origins combined with credentials, so the gateway
// sets the headers itself.
func GatewayMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.Set("Access-Control-Allow-Credentials", "true")
		c.Set("Access-Control-Allow-Origin", "*")
		c.Set("Access-Control-Allow-Methods", "GET,OPTIONS,PATCH,DELETE,POST,PUT")
		c.Set("Access-Control-Allow-Headers", "X-CSRF-Token, X-Requested-With, Accept, Accept-Version, Content-Length, Content-MD5, Content-Type, Date, X-Api-Version")

		// Not SendStatus: that would fill the empty body with the status
		// text, and preflight answers must stay body-less.
		if c.Method() == fiber.MethodOptions {
			return c.Status(fiber.StatusOK).SendString("")
		}

		return c.Next()
	}
}
