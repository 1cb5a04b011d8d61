package main // Entry point package

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"

	"github.com/bookworm-labs/bookvault/internal/config"
	"github.com/bookworm-labs/bookvault/internal/database"
	"github.com/bookworm-labs/bookvault/internal/googlebooks"
	"github.com/bookworm-labs/bookvault/internal/handler"
	"github.com/bookworm-labs/bookvault/internal/repository"
	"github.com/bookworm-labs/bookvault/internal/router"
	queue_publisher "github.com/bookworm-labs/bookvault/internal/service"
)

func main() {
	// Load .env if present; real deployments set env vars directly.
	_ = godotenv.Load()

	cfg := config.Load() // fatal here if JWT_SECRET or DB settings are missing

	db, err := database.Open(cfg)
	if err != nil {
		log.Fatalf("database connect failed: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		log.Fatalf("database migrate failed: %v", err)
	}

	// Redis is optional; nil disables caching and rate limiting.
	rdb := config.NewRedisClient()
	if rdb == nil {
		log.Println("redis unavailable; response cache and rate limiting disabled")
	}

	users := repository.NewUserRepo(db)
	books := repository.NewBookRepo(db)
	events := queue_publisher.NewPublisher(cfg.RabbitURL)

	e := echo.New()
	router.Register(e, router.Deps{
		Cfg:    cfg,
		Auth:   handler.NewAuthHandler(cfg, users, books, events),
		Users:  handler.NewUserHandler(users, books),
		Books:  handler.NewBookHandler(users, books, events),
		Search: handler.NewSearchHandler(googlebooks.NewClient(cfg.GoogleBooksKey)),
		Redis:  rdb,
	})

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env)

	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
