package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/joho/godotenv"
	slackapi "github.com/slack-go/slack"
	"go.uber.org/zap"

	"github.com/attendbot/slack-attendance-bot/internal/config"
	"github.com/attendbot/slack-attendance-bot/internal/database"
	"github.com/attendbot/slack-attendance-bot/internal/domain/service"
	"github.com/attendbot/slack-attendance-bot/internal/handlers"
	"github.com/attendbot/slack-attendance-bot/internal/logger"
	"github.com/attendbot/slack-attendance-bot/internal/slack"
	"github.com/attendbot/slack-attendance-bot/internal/webhook"
	"github.com/attendbot/slack-attendance-bot/migrator/sqlite"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}

	cfg, loc, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	zlog, err := logger.New(cfg.LogLevel)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer zlog.Sync()

	db, err := database.New(cfg.DatabasePath)
	if err != nil {
		zlog.Fatal("failed to initialize database", zap.Error(err))
	}
	defer db.Close()

	zlog.Info("running migrations")
	if err := sqlite.Migrate(db.DB()); err != nil {
		zlog.Fatal("failed to run migrations", zap.Error(err))
	}

	dm := database.NewInstance(db)

	api := slackapi.New(cfg.SlackBotToken)
	chat := slack.NewClient(api, zlog)

	hook := webhook.New(cfg.WebhookURL, cfg.WebhookTimeout, cfg.WebhookMaxRetries, zlog)

	services := service.NewInstance(dm, chat, hook, cfg, loc, zlog)

	services.Scheduler.Start()
	defer services.Scheduler.Stop()

	handler := handlers.New(services, dm, cfg.SlackSigningSecret, cfg.VerificationChannel, loc, zlog)

	http.HandleFunc("/slack/commands", handler.HandleSlashCommand)
	http.HandleFunc("/slack/events", handler.HandleEvents)
	http.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		fmt.Fprintf(w, "OK")
	})

	zlog.Info("server starting",
		zap.String("port", cfg.Port),
		zap.String("channel", cfg.VerificationChannel),
		zap.String("timezone", cfg.Timezone))
	if err := http.ListenAndServe(":"+cfg.Port, nil); err != nil {
		zlog.Fatal("server stopped", zap.Error(err))
	}
}
