// Package main contains the entrypoint for the dawn.fm Telegram bot.
package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	tgbot "github.com/go-telegram/bot"
	"github.com/joho/godotenv"

	"github.com/akiratakt/dawnfm/internal/bot"
	"github.com/akiratakt/dawnfm/internal/bot/handlers"
	"github.com/akiratakt/dawnfm/internal/bot/tasks"
	"github.com/akiratakt/dawnfm/internal/catalog"
	"github.com/akiratakt/dawnfm/internal/config"
	"github.com/akiratakt/dawnfm/internal/database"
	"github.com/akiratakt/dawnfm/internal/genius"
	"github.com/akiratakt/dawnfm/internal/logger"
	"github.com/akiratakt/dawnfm/internal/server"
	"github.com/akiratakt/dawnfm/internal/telegram"

	_ "modernc.org/sqlite"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	exitCode := run(ctx)
	stop()
	os.Exit(exitCode)
}

// run initializes and starts all application components (config, logger,
// database, catalog, lyrics client, bot, HTTP server, scheduler), handles
// graceful shutdown, and returns an exit code.
func run(ctx context.Context) int {
	configPath := flag.String("config", "./config.yaml", "Path to configuration file")
	flag.Parse()

	// A local .env is a development convenience; absence is not an error.
	_ = godotenv.Load()

	cfg, err := config.Load(*configPath)
	if err != nil {
		slog.Error("Failed to load configuration", "path", *configPath, "error", err)
		return 1
	}

	log := logger.New(cfg.Log.Level, cfg.Log.JSON)
	slog.SetDefault(log)
	log.Info("Logger initialized", "level", cfg.Log.Level, "json", cfg.Log.JSON)

	db, err := database.NewDB(cfg.Database.Path)
	if err != nil {
		log.Error("Failed to connect to database", "path", cfg.Database.Path, "error", err)
		return 1
	}
	defer database.CloseDB(db)
	store := database.NewStore(db, log)

	cat, err := catalog.Load(cfg.Catalog.SongsPath, cfg.Catalog.CoversPath, cfg.Catalog.CategoriesPath)
	if err != nil {
		log.Error("Failed to load song catalog", "path", cfg.Catalog.SongsPath, "error", err)
		return 1
	}
	log.Info("Catalog loaded", "songs", len(cat.Songs))

	lyrics := genius.NewClient(cfg.Genius.Token, log)

	hDeps := handlers.HandlerDeps{
		Logger:  log,
		Config:  cfg,
		Store:   store,
		Catalog: cat,
		Lyrics:  lyrics,
	}
	tDeps := tasks.TaskDeps{
		Logger: log,
		Store:  store,
		Config: cfg,
	}

	botOpts := []tgbot.Option{
		tgbot.WithMiddlewares(logger.Middleware(log)),
	}
	tg, err := telegram.NewTelegramBot(cfg.Telegram.Token, log, botOpts...)
	if err != nil {
		log.Error("Failed to create Telegram bot", "error", err)
		return 1
	}

	// Retrieve bot info and store it in the config for runtime use.
	cfg.Telegram.BotInfo, err = tg.GetMe(ctx)
	if err != nil {
		log.Error("Failed to get bot info", "error", err)
		return 1
	}
	log.Info("Retrieved bot info", "bot_id", cfg.Telegram.BotInfo.ID, "bot_username", cfg.Telegram.BotInfo.Username)

	if cfg.Telegram.WebhookURL != "" {
		if _, err := tg.SetWebhook(ctx, &tgbot.SetWebhookParams{URL: cfg.Telegram.WebhookURL}); err != nil {
			log.Error("Failed to set webhook", "url", cfg.Telegram.WebhookURL, "error", err)
			return 1
		}
		log.Info("Webhook registered", "url", cfg.Telegram.WebhookURL)
	}

	cmdHandlers := handlers.RegisterAllCommands(hDeps)
	if err := telegram.RegisterHandlers(tg, log, cmdHandlers); err != nil {
		log.Error("Failed to register Telegram handlers", "error", err)
		return 1
	}

	srv := server.New(log, cfg, tg.WebhookHandler(), store)

	sched, err := bot.NewScheduler(log, &cfg.Scheduler, tasks.RegisterAllTasks(tDeps))
	if err != nil {
		log.Error("Failed to create scheduler", "error", err)
		return 1
	}

	app := bot.NewBot(log, cfg, db, store, tg, srv, sched)

	log.Info("Starting bot...")
	runErr := app.Run(ctx)
	log.Info("Bot run loop finished. Initiating shutdown...")

	if runErr != nil && !errors.Is(runErr, context.Canceled) {
		log.Error("Bot stopped due to error", "error", runErr)
		time.Sleep(time.Second)
		return 1
	}

	log.Info("Bot stopped gracefully.")
	time.Sleep(time.Second)
	return 0
}
