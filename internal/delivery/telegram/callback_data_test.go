package telegram

import (
	"testing"

	"github.com/linmeili/french-master-bot/internal/domain/entities"
)

func TestCallbackRoundTrip(t *testing.T) {
	tests := []struct {
		data   string
		action string
		params []string
	}{
		{buildQuizStartCallback(entities.QuizTypeOrdering), actionQuiz, []string{quizStart, "ORDERING"}},
		{buildQuizAnswerCallback(2), actionQuiz, []string{quizAnswer, "2"}},
		{buildQuizTileCallback(true, 0), actionQuiz, []string{quizTile, tileFromAvailable, "0"}},
		{buildQuizTileCallback(false, 3), actionQuiz, []string{quizTile, tileFromPlaced, "3"}},
		{buildQuizSubmitCallback(), actionQuiz, []string{quizSubmit}},
		{buildQuizNextCallback(), actionQuiz, []string{quizNext}},
		{buildQuizAudioCallback(), actionQuiz, []string{quizAudio}},
		{buildQuizExitCallback(), actionQuiz, []string{quizExit}},
		{buildWordsPageCallback(4, ""), actionWords, []string{wordsTabWords, "4", ""}},
		{buildWordsPageCallback(0, "星期"), actionWords, []string{wordsTabWords, "0", "星期"}},
		{buildSentencesPageCallback(2), actionWords, []string{wordsTabSentences, "2"}},
		{buildHomeCallback(), actionHome, nil},
	}

	for _, tt := range tests {
		cd := decodeCallback(tt.data)
		if cd.Action != tt.action {
			t.Errorf("decode(%q).Action = %q, want %q", tt.data, cd.Action, tt.action)
		}
		if len(cd.Params) != len(tt.params) {
			t.Errorf("decode(%q).Params = %v, want %v", tt.data, cd.Params, tt.params)
			continue
		}
		for i := range tt.params {
			if cd.Params[i] != tt.params[i] {
				t.Errorf("decode(%q).Params[%d] = %q, want %q", tt.data, i, cd.Params[i], tt.params[i])
			}
		}
	}
}
