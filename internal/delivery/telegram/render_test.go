package telegram

import (
	"fmt"
	"strings"
	"testing"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/linmeili/french-master-bot/internal/domain/entities"
	"github.com/linmeili/french-master-bot/internal/service"
)

func TestRenderQuestion(t *testing.T) {
	q := &entities.Question{
		Type:      entities.QuizTypeTranslation,
		Prompt:    "Je",
		PromptSub: "(热)",
	}

	text := renderQuestion(q, 0, 10)
	if !strings.Contains(text, "第 1/10 题") {
		t.Fatalf("missing progress header: %q", text)
	}
	if !strings.Contains(text, "词义互译") {
		t.Fatalf("missing type label: %q", text)
	}
	if !strings.Contains(text, "<b>Je</b>") || !strings.Contains(text, "(热)") {
		t.Fatalf("missing prompt: %q", text)
	}
}

func TestRenderOrderingQuestion(t *testing.T) {
	q := &entities.Question{
		Type:          entities.QuizTypeOrdering,
		Prompt:        "你要去哪里？",
		CorrectAnswer: "Tu vas où?",
		SentenceParts: []entities.SentencePart{{Text: "vas"}, {Text: "Tu"}, {Text: "où"}},
	}
	board := service.NewOrderingBoard(q)

	text := renderOrderingQuestion(q, board, 2, 10)
	if !strings.Contains(text, "点击下方单词") {
		t.Fatalf("empty board should show placeholder: %q", text)
	}

	board.Move(1, true) // place "Tu"
	board.Move(0, true) // place "vas"
	text = renderOrderingQuestion(q, board, 2, 10)
	if !strings.Contains(text, "Tu vas") {
		t.Fatalf("assembly not shown: %q", text)
	}
}

func TestRenderFeedback(t *testing.T) {
	choice := &entities.Question{
		Type:        entities.QuizTypeTranslation,
		Explanation: "Je [ʒə] (热) = 我",
	}

	text := renderFeedback(choice, true)
	if !strings.Contains(text, "✅") || !strings.Contains(text, choice.Explanation) {
		t.Fatalf("unexpected feedback: %q", text)
	}

	ordering := &entities.Question{
		Type:          entities.QuizTypeOrdering,
		Prompt:        "你要去哪里？",
		CorrectAnswer: "Tu vas où?",
	}

	text = renderFeedback(ordering, false)
	if !strings.Contains(text, "❌") {
		t.Fatalf("unexpected feedback: %q", text)
	}
	if !strings.Contains(text, "Tu vas où") || strings.Contains(text, "où?") {
		t.Fatalf("canonical order should be shown without punctuation: %q", text)
	}
}

func TestRenderResult(t *testing.T) {
	text := renderResult(entities.NewQuizResult(8, 10))
	for _, want := range []string{"🎉", "8 / 10", "80%"} {
		if !strings.Contains(text, want) {
			t.Fatalf("result %q missing %q", text, want)
		}
	}
}

func TestBuildOptionsKeyboardAudioOnlyForFrenchPrompts(t *testing.T) {
	french := &entities.Question{
		Type:    entities.QuizTypeTranslation,
		Prompt:  "Je",
		Options: []string{"我", "你", "他", "她"},
	}
	chinese := &entities.Question{
		Type:    entities.QuizTypeTranslation,
		Prompt:  "我",
		Options: []string{"Je", "Tu", "Il", "Elle"},
	}

	hasAudio := func(kb tgbotapi.InlineKeyboardMarkup) bool {
		for _, row := range kb.InlineKeyboard {
			for _, btn := range row {
				if *btn.CallbackData == buildQuizAudioCallback() {
					return true
				}
			}
		}
		return false
	}

	if !hasAudio(buildOptionsKeyboard(french)) {
		t.Fatal("French prompt lost its audio button")
	}
	if hasAudio(buildOptionsKeyboard(chinese)) {
		t.Fatal("Chinese prompt offered an audio button")
	}
}

func TestBuildOrderingKeyboardLayout(t *testing.T) {
	q := &entities.Question{
		Type:          entities.QuizTypeOrdering,
		CorrectAnswer: "Tu vas où?",
		SentenceParts: []entities.SentencePart{{Text: "vas"}, {Text: "Tu"}, {Text: "où"}},
	}
	board := service.NewOrderingBoard(q)
	board.Move(0, true)

	kb := buildOrderingKeyboard(board)

	buttons := 0
	for _, row := range kb.InlineKeyboard {
		buttons += len(row)
	}
	// one placed tile, two available tiles, submit and exit
	if buttons != 5 {
		t.Fatalf("expected 5 buttons, got %d", buttons)
	}
}

func TestBuildWordsPage(t *testing.T) {
	words := make([]*entities.Word, 0, 10)
	for i := 0; i < 10; i++ {
		words = append(words, &entities.Word{
			ID:       fmt.Sprintf("w%d", i+1),
			French:   fmt.Sprintf("mot%d", i+1),
			Chinese:  "词",
			IPA:      "mo",
			Category: "测试",
		})
	}

	text, page := buildWordsPage(words, 0)
	if page != 0 || !strings.Contains(text, "第 1/2 页") {
		t.Fatalf("unexpected first page: %q", text)
	}
	if !strings.Contains(text, "mot1") || strings.Contains(text, "mot7") {
		t.Fatalf("first page has wrong entries: %q", text)
	}

	text, page = buildWordsPage(words, 1)
	if page != 1 || !strings.Contains(text, "mot7") {
		t.Fatalf("second page has wrong entries: %q", text)
	}

	// out of range pages clamp
	if _, page = buildWordsPage(words, 99); page != 1 {
		t.Fatalf("page not clamped: %d", page)
	}
	if _, page = buildWordsPage(words, -1); page != 0 {
		t.Fatalf("negative page not clamped: %d", page)
	}
}
