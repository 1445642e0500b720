package serverutils

import (
	"errors"

	"streaminghub-be/internal/constant"
	"streaminghub-be/internal/pkg/logger"
	"streaminghub-be/pkg/llm"

	"github.com/gofiber/fiber/v2"
)

// ErrorResponse is the only failure envelope the API emits. Every error path
// ends in a JSON body with an `error` key, never a bare connection drop.
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// ErrorHandlerMiddleware translates downstream failures into HTTP responses.
// fiber.Error values keep their status code; a provider response without a
// usable completion maps to 500 with the dedicated message; everything else
// is an unhandled fault reported as 500 with a best-effort diagnostic.
func ErrorHandlerMiddleware(log logger.ILogger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		err := c.Next()
		if err == nil {
			return nil
		}

		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			msg := fiberErr.Message
			if fiberErr.Code == fiber.StatusMethodNotAllowed {
				msg = constant.MsgMethodNotAllowed
			}
			return c.Status(fiberErr.Code).JSON(ErrorResponse{Error: msg})
		}

		if errors.Is(err, llm.ErrNoCompletion) {
			log.Error("gateway", "provider returned no completion", map[string]interface{}{
				"path": c.Path(),
			})
			return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{
				Error: constant.MsgNoCompletion,
			})
		}

		log.Error("gateway", "unhandled request failure", map[string]interface{}{
			"path":  c.Path(),
			"error": err.Error(),
		})
		return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{
			Error:   constant.MsgServerError,
			Details: err.Error(),
		})
	}
}
