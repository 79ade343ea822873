// Package main contains the entrypoint for the helpdesk relay bot.
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
	"github.com/go-telegram/bot/models"

	"helpdeskbot/internal/bot"
	"helpdeskbot/internal/bot/tasks"
	"helpdeskbot/internal/config"
	"helpdeskbot/internal/i18n"
	"helpdeskbot/internal/logger"
	"helpdeskbot/internal/router"
	"helpdeskbot/internal/store"
	"helpdeskbot/internal/telegram"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	exitCode := run(ctx)
	stop()
	os.Exit(exitCode)
}

// run initializes all components (config, logger, store, resolver, router,
// telegram bot, scheduler), handles graceful shutdown, and returns an exit
// code.
func run(ctx context.Context) int {
	configPath := flag.String("config", "", "Path to configuration file (defaults to ./config.yaml)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		slog.Error("Failed to load configuration", "path", *configPath, "error", err)
		return 1
	}

	log := logger.NewLogger(cfg.Log.Level, cfg.Log.Format == "json")
	log.Info("Logger initialized", "level", cfg.Log.Level, "format", cfg.Log.Format)

	kv, err := store.NewRedisStore(cfg.Store, log)
	if err != nil {
		log.Error("Failed to connect to key-value store", "addr", cfg.Store.Addr, "error", err)
		return 1
	}
	defer func() {
		if closeErr := kv.Close(); closeErr != nil {
			log.Error("Error closing key-value store connection", "error", closeErr)
		}
	}()

	resolver, err := i18n.NewResolver(cfg.I18n.DefaultLanguage)
	if err != nil {
		log.Error("Failed to load message catalogs", "error", err)
		return 1
	}

	// The default handler is bound after the router exists; the bot needs
	// its options up front, so route through a late-bound indirection.
	var updateHandler tgbot.HandlerFunc
	botOpts := []tgbot.Option{
		tgbot.WithMiddlewares(logger.Middleware(log)),
		tgbot.WithDefaultHandler(func(ctx context.Context, b *tgbot.Bot, update *models.Update) {
			updateHandler(ctx, b, update)
		}),
	}
	tg, err := telegram.NewTelegramBot(cfg.Telegram.Token, log, botOpts...)
	if err != nil {
		log.Error("Failed to create Telegram bot", "error", err)
		return 1
	}

	cfg.Telegram.BotInfo, err = tg.GetMe(ctx)
	if err != nil {
		log.Error("Failed to get bot info", "error", err)
		return 1
	}
	log.Info("Retrieved bot info", "bot_id", cfg.Telegram.BotInfo.ID, "bot_username", cfg.Telegram.BotInfo.Username)

	r := router.New(router.Deps{
		Logger:    log,
		Transport: telegram.NewTransport(tg),
		Store:     kv,
		Resolver:  resolver,
		Config:    cfg,
	})
	updateHandler = telegram.NewUpdateHandler(log, r)

	tDeps := tasks.TaskDeps{
		Logger: log,
		Store:  kv,
		Config: cfg,
	}
	sched, err := bot.NewScheduler(log, &cfg.Scheduler, tasks.RegisterAllTasks(tDeps))
	if err != nil {
		log.Error("Failed to create scheduler", "error", err)
		return 1
	}

	app := bot.NewBot(log, tg, sched)

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
