// Package telegram implements the bot's delivery layer: command routing,
// inline-keyboard quiz flow and vocabulary browsing.
package telegram

import (
	"context"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"github.com/linmeili/french-master-bot/internal/audio"
	"github.com/linmeili/french-master-bot/internal/domain/entities"
	"github.com/linmeili/french-master-bot/internal/storage"
)

// QuizEngine generates the question sequence for a new session.
type QuizEngine interface {
	GenerateQuiz(mode entities.QuizType, count int) []entities.Question
}

// WordSource exposes the corpus for the /words browser.
type WordSource interface {
	Words() []*entities.Word
	WordsByCategory(category string) []*entities.Word
	Sentences() []*entities.Sentence
}

type Handler struct {
	bot        *tgbotapi.BotAPI
	logger     *zap.Logger
	engine     QuizEngine
	words      WordSource
	store      *storage.QuizStore
	speaker    audio.Speaker
	quizLength int
}

func NewHandler(
	bot *tgbotapi.BotAPI,
	logger *zap.Logger,
	engine QuizEngine,
	words WordSource,
	store *storage.QuizStore,
	speaker audio.Speaker,
	quizLength int,
) *Handler {
	return &Handler{
		bot:        bot,
		logger:     logger,
		engine:     engine,
		words:      words,
		store:      store,
		speaker:    speaker,
		quizLength: quizLength,
	}
}

func (h *Handler) Run(ctx context.Context) error {
	h.logger.Info("telegram handler started")
	defer h.logger.Info("telegram handler stopped")

	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60

	updates := h.bot.GetUpdatesChan(u)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case update := <-updates:
			h.handleUpdate(update)
		}
	}
}

func (h *Handler) handleUpdate(update tgbotapi.Update) {
	if update.CallbackQuery != nil {
		h.logger.Debug("callback received",
			zap.Int64("user_id", update.CallbackQuery.From.ID),
			zap.String("data", update.CallbackQuery.Data),
		)
		h.handleCallback(update.CallbackQuery)
		return
	}

	if update.Message == nil {
		h.logger.Debug("update without message and callback")
		return
	}

	h.logger.Debug("update received",
		zap.Int64("chat_id", update.Message.Chat.ID),
		zap.String("text", update.Message.Text),
	)

	chatID := update.Message.Chat.ID
	msg := newHTMLMessage(chatID, "")

	if update.Message.IsCommand() {
		switch update.Message.Command() {
		case "start":
			msg.Text = msgWelcome
			h.send(msg)

		case "quiz":
			msg.Text = msgChooseMode
			msg.ReplyMarkup = buildModeKeyboard()
			h.send(msg)

		case "words":
			words := h.words.Words()
			text, page := buildWordsPage(words, 0)
			msg.Text = text
			msg.ReplyMarkup = buildWordsKeyboard(page, len(words), "", wordCategories(words))
			h.send(msg)

		case "help":
			msg.Text = msgHelp
			h.send(msg)

		default:
			msg.Text = msgUnknownCommand
			h.send(msg)
		}

		return
	}

	msg.Text = msgTextHint
	h.send(msg)
}

func (h *Handler) send(c tgbotapi.Chattable) {
	if _, err := h.bot.Send(c); err != nil {
		h.logger.Error("failed to send telegram message",
			zap.Error(err),
		)
	}
}
