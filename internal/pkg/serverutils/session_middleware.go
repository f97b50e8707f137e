package serverutils

import (
	"context"

	"konusturk-be/internal/entity"

	"github.com/gofiber/fiber/v2"
)

// CurrentUserResolver reads the current-user pointer; nil means no one is
// logged in.
type CurrentUserResolver func(ctx context.Context) (*entity.User, error)

// SessionMiddleware guards routes that need a logged-in user. On success the
// user's id lands in Locals("user_id"); without a session the client gets a
// 401 plus a redirect hint to the entry page.
func SessionMiddleware(resolve CurrentUserResolver) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		user, err := resolve(ctx.Context())
		if err != nil {
			return err
		}
		if user == nil {
			return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"success":  false,
				"code":     fiber.StatusUnauthorized,
				"message":  entity.ErrNoActiveSession.Error(),
				"redirect": "/",
			})
		}

		ctx.Locals("user_id", user.Id)
		return ctx.Next()
	}
}
