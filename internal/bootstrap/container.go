package bootstrap

import (
	"konusturk-be/internal/config"
	"konusturk-be/internal/controller"
	"konusturk-be/internal/pkg/logger"
	"konusturk-be/internal/repository/implementation"
	"konusturk-be/internal/repository/memory"
	"konusturk-be/internal/service"
	"konusturk-be/internal/websocket"
	"konusturk-be/pkg/kvstore"
	"konusturk-be/pkg/speech"
	"konusturk-be/pkg/tutor"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

type Container struct {
	// Controllers
	AuthController controller.IAuthController
	UserController controller.IUserController
	ChatController controller.IChatController

	// Services
	AuthService service.IAuthService
	ChatService service.IChatService

	// Background Services (Exposed for main.go to run)
	SpeakerService service.ISpeakerService

	// WebSockets
	WebSocketHub *websocket.Hub
}

func NewContainer(store kvstore.Store, cfg *config.Config) *Container {
	// 1. Core Facades
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	// 2. Event Bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// 3. Repositories
	userRepo := implementation.NewUserRepository(store)
	chatSessionRepo := implementation.NewChatSessionRepository(store)
	tutorStateRepo := memory.NewSessionRepository()

	// 4. WebSocket Hub
	wsLogger := logger.NewIsolatedLogger("logs/chat_events.log")
	wsHub := websocket.NewHub(wsLogger)
	go wsHub.Run()

	// 5. Speech & Tutor
	synthesizer := speech.NewConsoleSynthesizer(sysLogger)
	recognizer := speech.NewScriptedRecognizer()
	tutorProvider := tutor.NewScriptedTutor(tutorStateRepo)

	// 6. Services
	publisherService := service.NewPublisherService(pubSub, sysLogger)
	speakerService := service.NewSpeakerService(pubSub, synthesizer, sysLogger)

	authService := service.NewAuthService(userRepo, sysLogger)
	chatService := service.NewChatService(
		chatSessionRepo,
		authService,
		tutorProvider,
		publisherService,
		wsHub,
		recognizer,
		cfg.Speech,
		sysLogger,
	)

	// 7. Controllers
	authController := controller.NewAuthController(authService)
	userController := controller.NewUserController(authService)
	chatController := controller.NewChatController(chatService, authService, wsHub, sysLogger)

	return &Container{
		AuthController: authController,
		UserController: userController,
		ChatController: chatController,
		AuthService:    authService,
		ChatService:    chatService,
		SpeakerService: speakerService,
		WebSocketHub:   wsHub,
	}
}
