package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"learnwords/internal/config"
	"learnwords/internal/delivery/telegram"
	"learnwords/internal/infra/postgres"
	"learnwords/internal/logger"
	filerepo "learnwords/internal/repository/file"
	pgrepo "learnwords/internal/repository/postgres"
	"learnwords/internal/service"
	"learnwords/internal/storage"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}
	if cfg.TelegramAPIToken == "" {
		log.Fatal(config.ErrMissingTelegramToken)
	}

	zl, err := logger.New(cfg)
	if err != nil {
		log.Fatal(err)
	}
	defer func() { _ = zl.Sync() }()

	bot, err := tgbotapi.NewBotAPI(cfg.TelegramAPIToken)
	if err != nil {
		zl.Fatal("failed to create bot", zap.Error(err))
	}
	zl.Info("authorized", zap.String("account", bot.Self.UserName))

	// Set commands.
	commands := []tgbotapi.BotCommand{
		{
			Command:     "start",
			Description: "Главное меню",
		},
		{
			Command:     "cancel",
			Description: "Прервать занятие",
		},
		{
			Command:     "help",
			Description: "Помощь",
		},
	}
	if _, err := bot.Request(tgbotapi.NewSetMyCommands(commands...)); err != nil {
		zl.Warn("failed to set bot commands", zap.Error(err))
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var (
		wordRepo     service.WordRepository
		settingsRepo service.SettingsRepository
	)

	switch cfg.Storage {
	case config.StoragePostgres:
		if err := postgres.Migrate(cfg.DB.URL); err != nil {
			zl.Fatal("migrations failed", zap.Error(err))
		}

		pool, err := postgres.NewPool(ctx, cfg.DB.URL, postgres.PoolConfig{
			MaxConns:        cfg.DB.MaxConnections,
			MaxConnLifetime: cfg.DB.MaxConnLifetime,
		})
		if err != nil {
			zl.Fatal("failed to connect to postgres", zap.Error(err))
		}
		defer pool.Close()

		wordRepo = pgrepo.NewWordRepository(pool, postgres.NewTransactor(pool))
		settingsRepo = pgrepo.NewSettingsRepository(pool)

	default:
		wr, err := filerepo.NewWordRepository(cfg.DataDir)
		if err != nil {
			zl.Fatal("failed to init word storage", zap.Error(err))
		}
		sr, err := filerepo.NewSettingsRepository(cfg.DataDir)
		if err != nil {
			zl.Fatal("failed to init settings storage", zap.Error(err))
		}
		wordRepo, settingsRepo = wr, sr
	}

	trainers := service.NewTrainerRegistry(wordRepo, settingsRepo)
	dictionary := service.NewDictionaryService(wordRepo, service.NewValidator())
	settingsService := service.NewSettingsService(settingsRepo)

	handler := telegram.NewHandler(
		bot,
		zl,
		trainers,
		dictionary,
		settingsService,
		storage.NewSessionStorage(),
		storage.NewDraftStorage(),
	)

	if err := handler.Run(ctx); err != nil && ctx.Err() == nil {
		zl.Fatal("handler stopped", zap.Error(err))
	}

	zl.Info("shutdown complete")
}
