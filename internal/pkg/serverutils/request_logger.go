package serverutils

import (
	"time"

	"streaminghub-be/internal/pkg/logger"

	"github.com/gofiber/fiber/v2"
)

// RequestLoggerMiddleware emits one structured log line per API request.
func RequestLoggerMiddleware(log logger.ILogger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		log.Info("http", "request completed", map[string]interface{}{
			"method":      c.Method(),
			"path":        c.Path(),
			"status":      c.Response().StatusCode(),
			"duration_ms": time.Since(start).Milliseconds(),
		})

		return err
	}
}
