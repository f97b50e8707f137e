package controller

import (
	"konusturk-be/internal/dto"
	"konusturk-be/internal/mapper"
	"konusturk-be/internal/pkg/serverutils"
	"konusturk-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IUserController interface {
	RegisterRoutes(r fiber.Router)
	Profile(ctx *fiber.Ctx) error
	UpdateProfile(ctx *fiber.Ctx) error
}

type userController struct {
	authService service.IAuthService
}

func NewUserController(authService service.IAuthService) IUserController {
	return &userController{authService: authService}
}

func (c *userController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/user/v1")
	h.Use(serverutils.SessionMiddleware(c.authService.GetCurrentUser))
	h.Get("profile", c.Profile)
	h.Put("profile", c.UpdateProfile)
}

func (c *userController) Profile(ctx *fiber.Ctx) error {
	user, err := c.authService.GetCurrentUser(ctx.Context())
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("User profile", mapper.UserToResponse(user)))
}

func (c *userController) UpdateProfile(ctx *fiber.Ctx) error {
	var req dto.UpdateProfileRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	user, err := c.authService.UpdateProfile(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Profil güncellendi", mapper.UserToResponse(user)))
}
