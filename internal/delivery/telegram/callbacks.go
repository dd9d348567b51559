package telegram

import (
	"strconv"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"github.com/linmeili/french-master-bot/internal/domain/entities"
	"github.com/linmeili/french-master-bot/internal/service"
	"github.com/linmeili/french-master-bot/internal/storage"
)

func (h *Handler) handleCallback(cb *tgbotapi.CallbackQuery) {
	data := decodeCallback(cb.Data)

	switch data.Action {
	case actionQuiz:
		h.handleQuizCallback(cb, data)
	case actionWords:
		h.handleWordsCallback(cb, data)
	case actionHome:
		edit := newHTMLEdit(cb.Message.Chat.ID, cb.Message.MessageID, msgWelcome)
		h.send(edit)
		h.answerCallback(cb.ID, "")
	default:
		h.logger.Debug("unknown callback action", zap.String("data", cb.Data))
		h.answerCallback(cb.ID, "")
	}
}

func (h *Handler) handleQuizCallback(cb *tgbotapi.CallbackQuery, data callbackData) {
	if len(data.Params) == 0 {
		h.answerCallback(cb.ID, "")
		return
	}

	chatID := cb.Message.Chat.ID

	if data.Params[0] == quizStart {
		h.startQuiz(cb, data.Params[1:])
		return
	}

	active, ok := h.store.Get(chatID)
	if !ok {
		edit := newHTMLEdit(chatID, cb.Message.MessageID, msgNoActiveQuiz)
		h.send(edit)
		h.answerCallback(cb.ID, "")
		return
	}

	switch data.Params[0] {
	case quizAnswer:
		h.handleAnswer(cb, active, data.Params[1:])
	case quizTile:
		h.handleTile(cb, active, data.Params[1:])
	case quizSubmit:
		h.handleSubmit(cb, active)
	case quizNext:
		h.handleNext(cb, active)
	case quizAudio:
		h.handleAudio(cb, active)
	case quizExit:
		h.store.Delete(chatID)
		edit := newHTMLEdit(chatID, cb.Message.MessageID, msgQuizAborted)
		h.send(edit)
		h.answerCallback(cb.ID, "")
	default:
		h.logger.Debug("unknown quiz callback", zap.String("data", cb.Data))
		h.answerCallback(cb.ID, "")
	}
}

// startQuiz creates a fresh session for the chat, replacing any running one.
func (h *Handler) startQuiz(cb *tgbotapi.CallbackQuery, params []string) {
	chatID := cb.Message.Chat.ID

	mode := entities.QuizTypeRandom
	if len(params) > 0 {
		mode = entities.QuizType(params[0])
	}
	if !mode.Valid() {
		h.logger.Warn("invalid quiz mode in callback", zap.String("data", cb.Data))
		h.answerCallback(cb.ID, "")
		return
	}

	questions := h.engine.GenerateQuiz(mode, h.quizLength)

	session := service.NewSession()
	session.Begin(questions)

	active := &storage.ActiveQuiz{
		Mode:    mode,
		Session: session,
	}
	h.prepareBoard(active)
	h.store.Store(chatID, active)

	h.logger.Info("quiz started",
		zap.Int64("chat_id", chatID),
		zap.String("mode", string(mode)),
		zap.Int("questions", session.Total()),
	)

	if session.IsFinished() {
		h.showResult(chatID, cb.Message.MessageID, active)
		h.answerCallback(cb.ID, "")
		return
	}

	h.showQuestion(chatID, cb.Message.MessageID, active)
	h.answerCallback(cb.ID, "")
}

func (h *Handler) handleAnswer(cb *tgbotapi.CallbackQuery, active *storage.ActiveQuiz, params []string) {
	q := active.Session.Current()
	if q == nil {
		h.answerCallback(cb.ID, "")
		return
	}
	if active.Session.Answered() {
		h.answerCallback(cb.ID, msgAlreadyDone)
		return
	}

	if len(params) == 0 {
		h.answerCallback(cb.ID, "")
		return
	}
	index, err := strconv.Atoi(params[0])
	if err != nil || index < 0 || index >= len(q.Options) {
		h.logger.Warn("invalid option index in callback", zap.String("data", cb.Data))
		h.answerCallback(cb.ID, "")
		return
	}

	correct := active.Session.SubmitAnswer(q.Options[index])
	h.showFeedback(cb.Message.Chat.ID, cb.Message.MessageID, active, correct)
	h.answerCallback(cb.ID, "")
}

func (h *Handler) handleTile(cb *tgbotapi.CallbackQuery, active *storage.ActiveQuiz, params []string) {
	if active.Board == nil || active.Session.Answered() {
		h.answerCallback(cb.ID, "")
		return
	}
	if len(params) != 2 {
		h.answerCallback(cb.ID, "")
		return
	}

	fromAvailable := params[0] == tileFromAvailable
	index, err := strconv.Atoi(params[1])
	if err != nil || index < 0 {
		h.logger.Warn("invalid tile index in callback", zap.String("data", cb.Data))
		h.answerCallback(cb.ID, "")
		return
	}

	if !active.Board.Move(index, fromAvailable) {
		h.answerCallback(cb.ID, "")
		return
	}

	h.showQuestion(cb.Message.Chat.ID, cb.Message.MessageID, active)
	h.answerCallback(cb.ID, "")
}

func (h *Handler) handleSubmit(cb *tgbotapi.CallbackQuery, active *storage.ActiveQuiz) {
	if active.Board == nil {
		h.answerCallback(cb.ID, "")
		return
	}
	if active.Session.Answered() {
		h.answerCallback(cb.ID, msgAlreadyDone)
		return
	}
	if len(active.Board.Placed()) == 0 {
		h.answerCallback(cb.ID, msgEmptyAssembly)
		return
	}

	correct := active.Session.SubmitOrder(active.Board.Placed())
	h.showFeedback(cb.Message.Chat.ID, cb.Message.MessageID, active, correct)
	h.answerCallback(cb.ID, "")
}

func (h *Handler) handleNext(cb *tgbotapi.CallbackQuery, active *storage.ActiveQuiz) {
	active.Session.Next()
	chatID := cb.Message.Chat.ID

	if active.Session.IsFinished() {
		h.showResult(chatID, cb.Message.MessageID, active)
		h.answerCallback(cb.ID, "")
		return
	}

	h.prepareBoard(active)
	h.showQuestion(chatID, cb.Message.MessageID, active)
	h.answerCallback(cb.ID, "")
}

func (h *Handler) handleAudio(cb *tgbotapi.CallbackQuery, active *storage.ActiveQuiz) {
	q := active.Session.Current()
	if q == nil || q.Type == entities.QuizTypeOrdering || !hasLatin(q.Prompt) {
		h.answerCallback(cb.ID, "")
		return
	}

	h.speaker.Speak(q.Prompt)
	h.answerCallback(cb.ID, msgAudioQueued)
}

func (h *Handler) handleWordsCallback(cb *tgbotapi.CallbackQuery, data callbackData) {
	if len(data.Params) < 2 {
		h.answerCallback(cb.ID, "")
		return
	}
	page, err := strconv.Atoi(data.Params[1])
	if err != nil || page < 0 {
		h.logger.Warn("invalid words page in callback", zap.String("data", cb.Data))
		h.answerCallback(cb.ID, "")
		return
	}

	var text string
	var kb tgbotapi.InlineKeyboardMarkup

	switch data.Params[0] {
	case wordsTabSentences:
		sentences := h.words.Sentences()
		text, page = buildSentencesPage(sentences, page)
		kb = buildSentencesKeyboard(page, len(sentences))

	case wordsTabWords:
		category := ""
		if len(data.Params) > 2 {
			category = data.Params[2]
		}

		words := h.words.Words()
		if category != "" {
			filtered := h.words.WordsByCategory(category)
			if len(filtered) == 0 {
				// Stale category in an old keyboard, fall back to the full list.
				category = ""
			} else {
				words = filtered
			}
		}

		text, page = buildWordsPage(words, page)
		kb = buildWordsKeyboard(page, len(words), category, wordCategories(h.words.Words()))

	default:
		h.logger.Debug("unknown words callback", zap.String("data", cb.Data))
		h.answerCallback(cb.ID, "")
		return
	}

	edit := newHTMLEdit(cb.Message.Chat.ID, cb.Message.MessageID, text)
	edit.ReplyMarkup = &kb
	h.send(edit)
	h.answerCallback(cb.ID, "")
}

// prepareBoard resets the ordering board to match the current question.
func (h *Handler) prepareBoard(active *storage.ActiveQuiz) {
	q := active.Session.Current()
	if q == nil || q.Type != entities.QuizTypeOrdering {
		active.Board = nil
		return
	}
	active.Board = service.NewOrderingBoard(q)
}

func (h *Handler) showQuestion(chatID int64, messageID int, active *storage.ActiveQuiz) {
	q := active.Session.Current()
	if q == nil {
		return
	}

	var text string
	var kb tgbotapi.InlineKeyboardMarkup
	if q.Type == entities.QuizTypeOrdering {
		text = renderOrderingQuestion(q, active.Board, active.Session.Index(), active.Session.Total())
		kb = buildOrderingKeyboard(active.Board)
	} else {
		text = renderQuestion(q, active.Session.Index(), active.Session.Total())
		kb = buildOptionsKeyboard(q)
	}

	edit := newHTMLEdit(chatID, messageID, text)
	edit.ReplyMarkup = &kb
	h.send(edit)
}

func (h *Handler) showFeedback(chatID int64, messageID int, active *storage.ActiveQuiz, correct bool) {
	q := active.Session.Current()
	if q == nil {
		return
	}

	last := active.Session.Index() == active.Session.Total()-1
	edit := newHTMLEdit(chatID, messageID, renderFeedback(q, correct))
	kb := buildFeedbackKeyboard(last)
	edit.ReplyMarkup = &kb
	h.send(edit)
}

func (h *Handler) showResult(chatID int64, messageID int, active *storage.ActiveQuiz) {
	result := active.Session.Result()
	h.store.Delete(chatID)

	h.logger.Info("quiz finished",
		zap.Int64("chat_id", chatID),
		zap.Int("score", result.Score),
		zap.Int("total", result.Total),
	)

	edit := newHTMLEdit(chatID, messageID, renderResult(result))
	kb := buildResultKeyboard(active)
	edit.ReplyMarkup = &kb
	h.send(edit)
}

// answerCallback removes the user's "clock", optionally showing a toast.
func (h *Handler) answerCallback(id, text string) {
	answer := tgbotapi.NewCallback(id, text)
	if _, err := h.bot.Request(answer); err != nil {
		h.logger.Error("failed to answer callback", zap.Error(err))
	}
}
