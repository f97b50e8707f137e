package main

import (
	"context"
	"log"

	"konusturk-be/internal/bootstrap"
	"konusturk-be/internal/config"
	"konusturk-be/internal/server"
	"konusturk-be/internal/tracer"
	"konusturk-be/pkg/kvstore"
)

func main() {
	// 0. Initialize Tracer (no-op unless OTEL_ENABLED=true)
	shutdownTracer := tracer.InitTracer()
	defer shutdownTracer(context.Background())

	// 1. Load Configuration
	cfg := config.Load()

	// 2. Initialize Storage
	store, err := newStore(cfg)
	if err != nil {
		log.Panicf("Unable to initialize storage: %v", err)
	}

	// 3. Bootstrap Dependencies (Container)
	container := bootstrap.NewContainer(store, cfg)

	// 4. Start Background Services
	if err := container.SpeakerService.Listen(context.Background()); err != nil {
		log.Printf("Background Speaker Error: %v", err)
	}

	// 5. Initialize Server
	srv := server.New(cfg, container)

	// 6. Run Server
	log.Fatal(srv.Run())
}

func newStore(cfg *config.Config) (kvstore.Store, error) {
	switch cfg.Storage.Driver {
	case "redis":
		return kvstore.NewRedisStoreFromURL(context.Background(), cfg.App.RedisURL)
	case "memory":
		return kvstore.NewMemoryStore(), nil
	default:
		return kvstore.NewFileStore(cfg.Storage.DataDir)
	}
}
