package main

import (
	"context"
	"log"
	"math/rand"
	"os/signal"
	"syscall"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/linmeili/french-master-bot/internal/audio"
	"github.com/linmeili/french-master-bot/internal/config"
	"github.com/linmeili/french-master-bot/internal/delivery/telegram"
	"github.com/linmeili/french-master-bot/internal/logger"
	"github.com/linmeili/french-master-bot/internal/repository"
	"github.com/linmeili/french-master-bot/internal/service"
	"github.com/linmeili/french-master-bot/internal/storage"
)

func main() {
	// Load .env if present; real deployments set variables directly.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	zl, err := logger.New(cfg)
	if err != nil {
		log.Fatal(err)
	}
	defer func() { _ = zl.Sync() }()

	bot, err := tgbotapi.NewBotAPI(cfg.TelegramAPIToken)
	if err != nil {
		zl.Fatal("failed to create bot api", zap.Error(err))
	}

	commands := []tgbotapi.BotCommand{
		{Command: "start", Description: "返回主页"},
		{Command: "quiz", Description: "开始测试"},
		{Command: "words", Description: "单词学习"},
		{Command: "help", Description: "帮助"},
	}
	if _, err = bot.Request(tgbotapi.NewSetMyCommands(commands...)); err != nil {
		zl.Warn("failed to set bot commands", zap.Error(err))
	}

	zl.Info("authorized on telegram", zap.String("username", bot.Self.UserName))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	content, err := repository.NewContentRepository(cfg.Corpus.WordsPath, cfg.Corpus.SentencesPath)
	if err != nil {
		zl.Fatal("failed to load corpus", zap.Error(err))
	}
	zl.Info("corpus loaded",
		zap.Int("words", len(content.Words())),
		zap.Int("sentences", len(content.Sentences())),
	)

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))

	distractors := service.NewDistractorGenerator(content.Words(), rng)
	factory := service.NewQuestionFactory(distractors, rng)
	engine := service.NewEngine(content, factory, rng)

	store := storage.NewQuizStore()
	speaker := &audio.LogSpeaker{Logger: zl}

	handler := telegram.NewHandler(
		bot,
		zl,
		engine,
		content,
		store,
		speaker,
		cfg.Quiz.Length,
	)
	if err := handler.Run(ctx); err != nil && ctx.Err() == nil {
		zl.Fatal("handler stopped", zap.Error(err))
	}

	zl.Info("shutdown signal received")
}
