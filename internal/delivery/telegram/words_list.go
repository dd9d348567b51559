package telegram

import (
	"fmt"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/linmeili/french-master-bot/internal/domain/entities"
)

const (
	wordsPerPage     = 6
	sentencesPerPage = 4
	categoriesPerRow = 3
)

func pageCount(total, perPage int) int {
	pages := (total + perPage - 1) / perPage
	if pages == 0 {
		return 1
	}
	return pages
}

func clampPage(page, totalPages int) int {
	if page < 0 {
		return 0
	}
	if page >= totalPages {
		return totalPages - 1
	}
	return page
}

// wordCategories lists the distinct category labels in corpus order.
func wordCategories(words []*entities.Word) []string {
	var categories []string
	seen := map[string]bool{}
	for _, w := range words {
		if w.Category == "" || seen[w.Category] {
			continue
		}
		seen[w.Category] = true
		categories = append(categories, w.Category)
	}
	return categories
}

// buildWordsPage renders one page of the vocabulary list.
func buildWordsPage(words []*entities.Word, page int) (string, int) {
	totalPages := pageCount(len(words), wordsPerPage)
	page = clampPage(page, totalPages)

	start := page * wordsPerPage
	end := start + wordsPerPage
	if end > len(words) {
		end = len(words)
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("📖 <b>单词学习</b>（第 %d/%d 页）\n\n", page+1, totalPages))
	if len(words) == 0 {
		sb.WriteString("🤔 暂无相关内容")
		return sb.String(), page
	}
	for _, w := range words[start:end] {
		sb.WriteString(fmt.Sprintf("<b>%s</b> [%s]\n", esc(w.French), esc(w.IPA)))
		sb.WriteString(fmt.Sprintf("%s · %s\n", esc(w.Homophone), esc(w.Chinese)))
		sb.WriteString(fmt.Sprintf("类别: %s\n\n", esc(w.Category)))
	}

	return sb.String(), page
}

// buildWordsKeyboard builds pagination, category filter pills and the tab
// row of the vocabulary browser. An empty category means the unfiltered
// list.
func buildWordsKeyboard(page, total int, category string, categories []string) tgbotapi.InlineKeyboardMarkup {
	totalPages := pageCount(total, wordsPerPage)

	var rows [][]tgbotapi.InlineKeyboardButton

	var nav []tgbotapi.InlineKeyboardButton
	if page > 0 {
		nav = append(nav, tgbotapi.NewInlineKeyboardButtonData("⬅️ 上一页", buildWordsPageCallback(page-1, category)))
	}
	if page < totalPages-1 {
		nav = append(nav, tgbotapi.NewInlineKeyboardButtonData("下一页 ➡️", buildWordsPageCallback(page+1, category)))
	}
	if len(nav) > 0 {
		rows = append(rows, nav)
	}

	tabs := append([]string{""}, categories...)
	var row []tgbotapi.InlineKeyboardButton
	for _, c := range tabs {
		label := c
		if c == "" {
			label = "全部"
		}
		if c == category {
			label = "· " + label
		}
		row = append(row, tgbotapi.NewInlineKeyboardButtonData(label, buildWordsPageCallback(0, c)))
		if len(row) == categoriesPerRow {
			rows = append(rows, row)
			row = nil
		}
	}
	if len(row) > 0 {
		rows = append(rows, row)
	}

	rows = append(rows, tgbotapi.NewInlineKeyboardRow(
		tgbotapi.NewInlineKeyboardButtonData("📝 句型", buildSentencesPageCallback(0)),
		tgbotapi.NewInlineKeyboardButtonData("🏠 返回主页", buildHomeCallback()),
	))
	return tgbotapi.InlineKeyboardMarkup{InlineKeyboard: rows}
}

// buildSentencesPage renders one page of the sentence list. Each entry
// shows the French sentence, the joined tile homophones and the meaning.
func buildSentencesPage(sentences []*entities.Sentence, page int) (string, int) {
	totalPages := pageCount(len(sentences), sentencesPerPage)
	page = clampPage(page, totalPages)

	start := page * sentencesPerPage
	end := start + sentencesPerPage
	if end > len(sentences) {
		end = len(sentences)
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("📝 <b>句型学习</b>（第 %d/%d 页）\n\n", page+1, totalPages))
	for _, s := range sentences[start:end] {
		sb.WriteString(fmt.Sprintf("<b>%s</b>\n", esc(s.French)))
		if hint := partHomophones(s.Parts); hint != "" {
			sb.WriteString(esc(hint) + "\n")
		}
		sb.WriteString(esc(s.Chinese) + "\n\n")
	}

	return sb.String(), page
}

// partHomophones joins the non-empty tile hints with spaces.
func partHomophones(parts []entities.SentencePart) string {
	hints := make([]string, 0, len(parts))
	for _, p := range parts {
		if p.Homophone != "" {
			hints = append(hints, p.Homophone)
		}
	}
	return strings.Join(hints, " ")
}

// buildSentencesKeyboard builds pagination and the tab row of the sentence
// browser.
func buildSentencesKeyboard(page, total int) tgbotapi.InlineKeyboardMarkup {
	totalPages := pageCount(total, sentencesPerPage)

	var rows [][]tgbotapi.InlineKeyboardButton

	var nav []tgbotapi.InlineKeyboardButton
	if page > 0 {
		nav = append(nav, tgbotapi.NewInlineKeyboardButtonData("⬅️ 上一页", buildSentencesPageCallback(page-1)))
	}
	if page < totalPages-1 {
		nav = append(nav, tgbotapi.NewInlineKeyboardButtonData("下一页 ➡️", buildSentencesPageCallback(page+1)))
	}
	if len(nav) > 0 {
		rows = append(rows, nav)
	}

	rows = append(rows, tgbotapi.NewInlineKeyboardRow(
		tgbotapi.NewInlineKeyboardButtonData("📖 单词", buildWordsPageCallback(0, "")),
		tgbotapi.NewInlineKeyboardButtonData("🏠 返回主页", buildHomeCallback()),
	))
	return tgbotapi.InlineKeyboardMarkup{InlineKeyboard: rows}
}
