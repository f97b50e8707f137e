package controller

import (
	"konusturk-be/internal/dto"
	"konusturk-be/internal/entity"
	"konusturk-be/internal/mapper"
	"konusturk-be/internal/pkg/logger"
	"konusturk-be/internal/pkg/serverutils"
	"konusturk-be/internal/service"
	internalWS "konusturk-be/internal/websocket"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
)

type IChatController interface {
	RegisterRoutes(r fiber.Router)
	List(ctx *fiber.Ctx) error
	Start(ctx *fiber.Ctx) error
	Show(ctx *fiber.Ctx) error
	Update(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
	Send(ctx *fiber.Ctx) error
	Voice(ctx *fiber.Ctx) error
	ServeWs(ctx *fiber.Ctx) error
}

type chatController struct {
	chatService service.IChatService
	authService service.IAuthService
	hub         *internalWS.Hub
	logger      logger.ILogger
}

func NewChatController(chatService service.IChatService, authService service.IAuthService, hub *internalWS.Hub, log logger.ILogger) IChatController {
	return &chatController{
		chatService: chatService,
		authService: authService,
		hub:         hub,
		logger:      log,
	}
}

func (c *chatController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/chat/v1")
	h.Use(serverutils.SessionMiddleware(c.authService.GetCurrentUser))
	h.Get("ws", c.ServeWs)
	h.Post("send", c.Send)
	h.Post("voice", c.Voice)
	h.Get("", c.List)
	h.Post("", c.Start)
	h.Get(":id", c.Show)
	h.Put(":id", c.Update)
	h.Delete(":id", c.Delete)
}

func (c *chatController) List(ctx *fiber.Ctx) error {
	sessions, err := c.chatService.ListSessions(ctx.Context(), "")
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Chat sessions", mapper.SessionsToSummaries(sessions)))
}

func (c *chatController) Start(ctx *fiber.Ctx) error {
	var req dto.StartConversationRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	session, err := c.chatService.StartConversation(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Konuşma başlatıldı", mapper.SessionToResponse(session)))
}

func (c *chatController) Show(ctx *fiber.Ctx) error {
	session, err := c.chatService.GetSession(ctx.Context(), ctx.Params("id"))
	if err != nil {
		return err
	}
	if session == nil {
		return entity.ErrSessionNotFound
	}

	return ctx.JSON(serverutils.SuccessResponse("Chat session", mapper.SessionToResponse(session)))
}

func (c *chatController) Update(ctx *fiber.Ctx) error {
	var req dto.UpdateSessionRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	session, err := c.chatService.UpdateSession(ctx.Context(), ctx.Params("id"), entity.ChatSessionPatch{
		Title:          req.Title,
		TargetLanguage: req.TargetLanguage,
		Teacher:        req.Teacher,
		LearningGoal:   req.LearningGoal,
		Level:          req.Level,
	})
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Konuşma güncellendi", mapper.SessionToResponse(session)))
}

func (c *chatController) Delete(ctx *fiber.Ctx) error {
	if err := c.chatService.DeleteSession(ctx.Context(), ctx.Params("id")); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse[any]("Konuşma silindi", nil))
}

func (c *chatController) Send(ctx *fiber.Ctx) error {
	var req dto.SendChatRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.chatService.SendChat(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Mesaj gönderildi", res))
}

func (c *chatController) Voice(ctx *fiber.Ctx) error {
	var req dto.SendVoiceRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.chatService.SendVoice(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Sesli mesaj gönderildi", res))
}

// ServeWs upgrades the connection and attaches it to the hub. The session
// middleware already resolved the user, so the id comes from locals.
func (c *chatController) ServeWs(ctx *fiber.Ctx) error {
	userId, ok := ctx.Locals("user_id").(string)
	if !ok {
		return entity.ErrNoActiveSession
	}

	if websocket.IsWebSocketUpgrade(ctx) {
		return websocket.New(func(conn *websocket.Conn) {
			c.logger.Info("Chat", "Starting WebSocket session", map[string]interface{}{"user_id": userId})
			internalWS.ServeWs(c.hub, conn, userId)
			c.logger.Info("Chat", "WebSocket session ended", map[string]interface{}{"user_id": userId})
		})(ctx)
	}
	return fiber.ErrUpgradeRequired
}
