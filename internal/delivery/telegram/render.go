package telegram

import (
	"fmt"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/linmeili/french-master-bot/internal/domain/entities"
	"github.com/linmeili/french-master-bot/internal/service"
	"github.com/linmeili/french-master-bot/internal/storage"
)

const tilesPerRow = 3

// questionTypeLabel maps a question kind to its display label.
func questionTypeLabel(t entities.QuizType) string {
	switch t {
	case entities.QuizTypeTranslation:
		return "词义互译"
	case entities.QuizTypePhonetic:
		return "音标辨析"
	case entities.QuizTypeOrdering:
		return "连词成句"
	default:
		return string(t)
	}
}

// renderQuestion renders the shared question header and prompt.
func renderQuestion(q *entities.Question, index, total int) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("🎯 第 %d/%d 题 · %s\n\n", index+1, total, questionTypeLabel(q.Type)))
	sb.WriteString("<b>" + esc(q.Prompt) + "</b>")
	if q.PromptSub != "" {
		sb.WriteString("\n" + esc(q.PromptSub))
	}
	return sb.String()
}

// renderOrderingQuestion renders an ordering question with the learner's
// current assembly.
func renderOrderingQuestion(q *entities.Question, board *service.OrderingBoard, index, total int) string {
	text := renderQuestion(q, index, total)
	attempt := board.Attempt()
	if attempt == "" {
		return text + "\n\n🧩 组句区：<i>点击下方单词按顺序排列</i>"
	}
	return text + "\n\n🧩 组句区：<b>" + esc(attempt) + "</b>"
}

// renderFeedback renders the post-answer verdict with the canonical answer.
func renderFeedback(q *entities.Question, correct bool) string {
	verdict := "❌ 回答错误"
	if correct {
		verdict = "✅ 回答正确!"
	}

	if q.Type == entities.QuizTypeOrdering {
		return fmt.Sprintf("%s\n\n正确语序：<b>%s</b>\n%s", verdict, esc(stripPunctuation(q.CorrectAnswer)), esc(q.Prompt))
	}
	return fmt.Sprintf("%s\n\n%s", verdict, esc(q.Explanation))
}

// renderResult renders the finished-quiz summary.
func renderResult(result entities.QuizResult) string {
	return fmt.Sprintf(
		"%s <b>测试完成!</b>\n\n总分：<b>%d / %d</b>（%d%%）",
		result.Badge, result.Score, result.Total, result.Percentage,
	)
}

// buildModeKeyboard builds the quiz mode selection keyboard.
func buildModeKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("Aa 词义互译", buildQuizStartCallback(entities.QuizTypeTranslation)),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🔊 音标辨析", buildQuizStartCallback(entities.QuizTypePhonetic)),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🧩 连词成句", buildQuizStartCallback(entities.QuizTypeOrdering)),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🎲 随机综合测试", buildQuizStartCallback(entities.QuizTypeRandom)),
		),
	)
}

// buildOptionsKeyboard builds the answer keyboard of a multiple-choice
// question: one option per row plus a control row.
func buildOptionsKeyboard(q *entities.Question) tgbotapi.InlineKeyboardMarkup {
	rows := make([][]tgbotapi.InlineKeyboardButton, 0, len(q.Options)+1)
	for i, option := range q.Options {
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(option, buildQuizAnswerCallback(i)),
		))
	}
	var controls []tgbotapi.InlineKeyboardButton
	if hasLatin(q.Prompt) {
		controls = append(controls, tgbotapi.NewInlineKeyboardButtonData("🔊 发音", buildQuizAudioCallback()))
	}
	controls = append(controls, tgbotapi.NewInlineKeyboardButtonData("🚪 退出", buildQuizExitCallback()))
	rows = append(rows, tgbotapi.NewInlineKeyboardRow(controls...))
	return tgbotapi.InlineKeyboardMarkup{InlineKeyboard: rows}
}

// buildOrderingKeyboard builds the tile keyboard of an ordering question:
// placed tiles first (tap to take back), then the available pool (tap to
// place), then the control row.
func buildOrderingKeyboard(board *service.OrderingBoard) tgbotapi.InlineKeyboardMarkup {
	placed, available := board.Snapshot()

	var rows [][]tgbotapi.InlineKeyboardButton
	rows = append(rows, tileRows(placed, false)...)
	rows = append(rows, tileRows(available, true)...)
	rows = append(rows, tgbotapi.NewInlineKeyboardRow(
		tgbotapi.NewInlineKeyboardButtonData("✅ 确认答案", buildQuizSubmitCallback()),
		tgbotapi.NewInlineKeyboardButtonData("🚪 退出", buildQuizExitCallback()),
	))
	return tgbotapi.InlineKeyboardMarkup{InlineKeyboard: rows}
}

// tileRows lays tiles out in fixed-width button rows.
func tileRows(parts []entities.SentencePart, fromAvailable bool) [][]tgbotapi.InlineKeyboardButton {
	var rows [][]tgbotapi.InlineKeyboardButton
	var row []tgbotapi.InlineKeyboardButton

	for i, part := range parts {
		label := part.Text
		if !fromAvailable {
			label = fmt.Sprintf("%d·%s ↩", i+1, part.Text)
		}
		row = append(row, tgbotapi.NewInlineKeyboardButtonData(label, buildQuizTileCallback(fromAvailable, i)))
		if len(row) == tilesPerRow {
			rows = append(rows, row)
			row = nil
		}
	}
	if len(row) > 0 {
		rows = append(rows, row)
	}
	return rows
}

// buildFeedbackKeyboard builds the keyboard shown after answering.
func buildFeedbackKeyboard(last bool) tgbotapi.InlineKeyboardMarkup {
	label := "下一题 ▶️"
	if last {
		label = "🏁 查看结果"
	}
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(label, buildQuizNextCallback()),
		),
	)
}

// buildResultKeyboard builds the keyboard of the finished-quiz screen.
func buildResultKeyboard(active *storage.ActiveQuiz) tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🔄 再来一次", buildQuizStartCallback(active.Mode)),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🏠 返回主页", buildHomeCallback()),
		),
	)
}

// stripPunctuation removes the comparison punctuation set for display, so
// the canonical sentence matches what the learner could assemble.
func stripPunctuation(s string) string {
	return strings.Map(func(r rune) rune {
		if strings.ContainsRune(".,?!;:", r) {
			return -1
		}
		return r
	}, s)
}
