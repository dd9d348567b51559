package telegram

import (
	"strconv"
	"strings"

	"github.com/linmeili/french-master-bot/internal/domain/entities"
)

// Callback action constants.
const (
	actionQuiz  = "quiz"
	actionWords = "words"
	actionHome  = "home"
)

// Quiz sub-actions.
const (
	quizStart  = "start"
	quizAnswer = "ans"
	quizTile   = "tile"
	quizSubmit = "submit"
	quizNext   = "next"
	quizAudio  = "audio"
	quizExit   = "exit"
)

// Tile source partitions.
const (
	tileFromAvailable = "a"
	tileFromPlaced    = "p"
)

// Words browser tabs.
const (
	wordsTabWords     = "w"
	wordsTabSentences = "s"
)

// callbackData represents structured callback data.
type callbackData struct {
	Action string
	Params []string
	Raw    string
}

// encode creates callback string.
func (cd callbackData) encode() string {
	if len(cd.Params) == 0 {
		return cd.Action
	}
	return cd.Action + ":" + strings.Join(cd.Params, ":")
}

// decodeCallback parses callback data string.
func decodeCallback(data string) callbackData {
	parts := strings.Split(data, ":")
	if len(parts) == 0 {
		return callbackData{Raw: data}
	}

	return callbackData{
		Action: parts[0],
		Params: parts[1:],
		Raw:    data,
	}
}

// buildQuizStartCallback builds callback data for starting a quiz of the given mode.
func buildQuizStartCallback(mode entities.QuizType) string {
	return callbackData{
		Action: actionQuiz,
		Params: []string{quizStart, string(mode)},
	}.encode()
}

// buildQuizAnswerCallback builds callback data for picking a multiple-choice option.
func buildQuizAnswerCallback(optionIndex int) string {
	return callbackData{
		Action: actionQuiz,
		Params: []string{quizAnswer, strconv.Itoa(optionIndex)},
	}.encode()
}

// buildQuizTileCallback builds callback data for moving an ordering tile.
func buildQuizTileCallback(fromAvailable bool, index int) string {
	partition := tileFromPlaced
	if fromAvailable {
		partition = tileFromAvailable
	}
	return callbackData{
		Action: actionQuiz,
		Params: []string{quizTile, partition, strconv.Itoa(index)},
	}.encode()
}

func buildQuizSubmitCallback() string {
	return callbackData{Action: actionQuiz, Params: []string{quizSubmit}}.encode()
}

func buildQuizNextCallback() string {
	return callbackData{Action: actionQuiz, Params: []string{quizNext}}.encode()
}

func buildQuizAudioCallback() string {
	return callbackData{Action: actionQuiz, Params: []string{quizAudio}}.encode()
}

func buildQuizExitCallback() string {
	return callbackData{Action: actionQuiz, Params: []string{quizExit}}.encode()
}

// buildWordsPageCallback builds callback data for opening a vocabulary
// page. An empty category means the unfiltered list.
func buildWordsPageCallback(page int, category string) string {
	return callbackData{
		Action: actionWords,
		Params: []string{wordsTabWords, strconv.Itoa(page), category},
	}.encode()
}

// buildSentencesPageCallback builds callback data for opening a sentence
// page.
func buildSentencesPageCallback(page int) string {
	return callbackData{
		Action: actionWords,
		Params: []string{wordsTabSentences, strconv.Itoa(page)},
	}.encode()
}

func buildHomeCallback() string {
	return actionHome
}
