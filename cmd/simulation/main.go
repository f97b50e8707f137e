package main

import (
	"context"
	"fmt"
	"log"

	"konusturk-be/internal/bootstrap"
	"konusturk-be/internal/config"
	"konusturk-be/internal/dto"
	"konusturk-be/internal/entity"
	"konusturk-be/pkg/kvstore"

	"github.com/fatih/color"
)

// Walks the whole product flow in-process against an in-memory store:
// register, login, onboarding, the four-step wizard, a text and a voice
// exchange, then the session list and a delete.
func main() {
	ctx := context.Background()

	cfg := config.Load()
	cfg.Storage.Driver = "memory"

	container := bootstrap.NewContainer(kvstore.NewMemoryStore(), cfg)
	if err := container.SpeakerService.Listen(ctx); err != nil {
		log.Fatalf("Failed to start speaker: %v", err)
	}

	title := color.New(color.FgCyan, color.Bold)
	userLine := color.New(color.FgGreen)
	aiLine := color.New(color.FgYellow)

	title.Println("=== Konuştürk Simulation ===")

	// Registration, then login as a separate step.
	_, err := container.AuthService.Register(ctx, &dto.RegisterRequest{
		Email:    "ayse@example.com",
		Password: "parola123",
	})
	if err != nil {
		log.Fatalf("Register failed: %v", err)
	}
	fmt.Println("Registered ayse@example.com")

	user, err := container.AuthService.Login(ctx, &dto.LoginRequest{
		Email:    "ayse@example.com",
		Password: "parola123",
	})
	if err != nil {
		log.Fatalf("Login failed: %v", err)
	}
	fmt.Printf("Logged in as %s\n", user.Email)

	// Onboarding fills the profile.
	firstName, lastName, level := "Ayşe", "Yılmaz", string(entity.TurkishLevelBeginner)
	user, err = container.AuthService.UpdateProfile(ctx, &dto.UpdateProfileRequest{
		FirstName:    &firstName,
		LastName:     &lastName,
		TurkishLevel: &level,
	})
	if err != nil {
		log.Fatalf("Profile update failed: %v", err)
	}
	fmt.Printf("Profile: %s %s (%s)\n", user.FirstName, user.LastName, user.TurkishLevel)

	// Wizard output becomes a conversation.
	session, err := container.ChatService.StartConversation(ctx, &dto.StartConversationRequest{
		TargetLanguage: "turkish",
		Teacher:        "ayse",
		LearningGoal:   "daily",
		Level:          "beginner",
	})
	if err != nil {
		log.Fatalf("Start conversation failed: %v", err)
	}
	aiLine.Printf("AI: %s\n", session.Messages[0].Text)

	// One text exchange.
	userLine.Println("USER: Merhaba, bugün hava çok güzel")
	res, err := container.ChatService.SendChat(ctx, &dto.SendChatRequest{
		ChatSessionId: session.Id,
		Text:          "Merhaba, bugün hava çok güzel",
	})
	if err != nil {
		log.Fatalf("Send chat failed: %v", err)
	}
	aiLine.Printf("AI: %s\n", res.Reply.Text)
	fmt.Printf("Session title is now: %s\n", res.ChatSessionTitle)

	// One voice exchange, transcript supplied by the client.
	userLine.Println("USER (voice): Teşekkür ederim")
	res, err = container.ChatService.SendVoice(ctx, &dto.SendVoiceRequest{
		ChatSessionId: session.Id,
		Transcript:    "Teşekkür ederim",
	})
	if err != nil {
		log.Fatalf("Send voice failed: %v", err)
	}
	aiLine.Printf("AI: %s\n", res.Reply.Text)

	// Session list, newest first.
	sessions, err := container.ChatService.ListSessions(ctx, "")
	if err != nil {
		log.Fatalf("List sessions failed: %v", err)
	}
	title.Println("\n=== Sessions ===")
	for _, s := range sessions {
		fmt.Printf("- %s (%d messages)\n", s.Title, len(s.Messages))
	}

	// Cleanup.
	if err := container.ChatService.DeleteSession(ctx, session.Id); err != nil {
		log.Fatalf("Delete session failed: %v", err)
	}
	if err := container.AuthService.Logout(ctx); err != nil {
		log.Fatalf("Logout failed: %v", err)
	}
	title.Println("\nSimulation complete.")
}
