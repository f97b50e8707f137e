package serverutils

import (
	"errors"

	"konusturk-be/internal/entity"

	"github.com/gofiber/fiber/v2"
)

// ErrorHandlerMiddleware translates domain errors into the API envelope.
// Error messages reach the client verbatim; the UI shows them as-is.
func ErrorHandlerMiddleware() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		err := ctx.Next()
		if err == nil {
			return nil
		}

		code := fiber.StatusInternalServerError
		switch {
		case errors.Is(err, entity.ErrDuplicateEmail):
			code = fiber.StatusConflict
		case errors.Is(err, entity.ErrInvalidCredentials),
			errors.Is(err, entity.ErrNoActiveSession):
			code = fiber.StatusUnauthorized
		case errors.Is(err, entity.ErrUserNotFound),
			errors.Is(err, entity.ErrSessionNotFound):
			code = fiber.StatusNotFound
		default:
			var fiberErr *fiber.Error
			if errors.As(err, &fiberErr) {
				code = fiberErr.Code
			}
		}

		return ctx.Status(code).JSON(ErrorResponse(code, err.Error()))
	}
}
