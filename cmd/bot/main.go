package main

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/PostHog/birthday-bot/internal/config"
	"github.com/PostHog/birthday-bot/internal/database"
	"github.com/PostHog/birthday-bot/internal/domain/service"
	"github.com/PostHog/birthday-bot/internal/handlers"
	"github.com/PostHog/birthday-bot/internal/slackclient"
	"github.com/PostHog/birthday-bot/migrator/sqlite"
	"github.com/joho/godotenv"
	"github.com/slack-go/slack"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}

	cfg := config.Load()

	db, err := database.New(cfg.DatabasePath)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	log.Println("Running migrations...")
	if err := sqlite.Migrate(db.DB()); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Migrations completed successfully")

	loc, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		log.Fatalf("Invalid timezone %q: %v", cfg.Timezone, err)
	}

	dm := database.NewInstance(db)
	slackClient := slackclient.New(slack.New(cfg.SlackBotToken))
	poem := service.NewPoemGenerator(cfg.AnthropicAPIKey)

	services := service.NewInstance(dm, slackClient, poem, service.Config{
		BirthdayChannelID: cfg.BirthdayChannelID,
		AdminChannelID:    cfg.AdminChannelID,
		ScheduleTime:      cfg.ScheduleTime,
		Location:          loc,
	})

	services.Scheduler.Start()
	defer services.Scheduler.Stop()

	handler := handlers.New(services.Birthday, cfg.SlackSigningSecret)

	http.HandleFunc("/slack/commands", handler.HandleSlashCommand)
	http.HandleFunc("/slack/interactions", handler.HandleInteraction)
	http.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		fmt.Fprintf(w, "OK")
	})

	log.Printf("Server starting on port %s", cfg.Port)
	if err := http.ListenAndServe(":"+cfg.Port, nil); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
