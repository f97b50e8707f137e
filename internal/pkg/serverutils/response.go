package serverutils

import "github.com/gofiber/fiber/v2"

// SuccessResponse wraps data in the standard API envelope.
func SuccessResponse[T any](message string, data T) fiber.Map {
	return fiber.Map{
		"success": true,
		"code":    fiber.StatusOK,
		"message": message,
		"data":    data,
	}
}

// ErrorResponse builds the standard error envelope.
func ErrorResponse(code int, message string) fiber.Map {
	return fiber.Map{
		"success": false,
		"code":    code,
		"message": message,
	}
}
