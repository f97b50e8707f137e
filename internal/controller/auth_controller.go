package controller

import (
	"konusturk-be/internal/dto"
	"konusturk-be/internal/mapper"
	"konusturk-be/internal/pkg/serverutils"
	"konusturk-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IAuthController interface {
	RegisterRoutes(r fiber.Router)
	Register(ctx *fiber.Ctx) error
	Login(ctx *fiber.Ctx) error
	Me(ctx *fiber.Ctx) error
	Logout(ctx *fiber.Ctx) error
}

type authController struct {
	authService service.IAuthService
}

func NewAuthController(authService service.IAuthService) IAuthController {
	return &authController{authService: authService}
}

func (c *authController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/auth/v1")
	h.Post("register", c.Register)
	h.Post("login", c.Login)
	h.Get("me", c.Me)
	h.Post("logout", c.Logout)
}

func (c *authController) Register(ctx *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	user, err := c.authService.Register(ctx.Context(), &req)
	if err != nil {
		return err
	}

	// Registration does not log the user in; the client goes to the login
	// form next.
	return ctx.JSON(serverutils.SuccessResponse("Kayıt başarılı", mapper.UserToResponse(user)))
}

func (c *authController) Login(ctx *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	user, err := c.authService.Login(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Giriş başarılı", mapper.UserToResponse(user)))
}

// Me returns the logged-in user, or null data when nobody is.
func (c *authController) Me(ctx *fiber.Ctx) error {
	user, err := c.authService.GetCurrentUser(ctx.Context())
	if err != nil {
		return err
	}
	if user == nil {
		return ctx.JSON(serverutils.SuccessResponse[*dto.UserResponse]("No active session", nil))
	}

	return ctx.JSON(serverutils.SuccessResponse("Current user", mapper.UserToResponse(user)))
}

func (c *authController) Logout(ctx *fiber.Ctx) error {
	if err := c.authService.Logout(ctx.Context()); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse[any]("Çıkış yapıldı", nil))
}
