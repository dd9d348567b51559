package service

import (
	"strings"

	"github.com/linmeili/french-master-bot/internal/domain/entities"
)

// Status enumerates the quiz session lifecycle states.
type Status string

const (
	StatusLoading    Status = "loading"     // question sequence not yet materialized
	StatusInProgress Status = "in_progress" // answering questions
	StatusFinished   Status = "finished"    // terminal
)

// Session sequences generated questions one at a time and accumulates the
// score. Each instance owns its state exclusively and is driven by a single
// caller; it is not safe for concurrent use.
type Session struct {
	questions   []entities.Question
	index       int
	score       int
	status      Status
	answered    bool
	lastCorrect bool
}

// NewSession returns a session in the loading state, before its question
// sequence has been materialized.
func NewSession() *Session {
	return &Session{status: StatusLoading}
}

// Begin installs the generated question sequence and moves the session to
// its first question. It does nothing once the session has left the
// loading state. An empty sequence finishes the session immediately.
func (s *Session) Begin(questions []entities.Question) {
	if s.status != StatusLoading {
		return
	}
	s.questions = questions
	if len(questions) == 0 {
		s.status = StatusFinished
		return
	}
	s.status = StatusInProgress
}

// Status returns the current lifecycle state.
func (s *Session) Status() Status { return s.status }

// Current returns the question awaiting an answer, or nil outside the
// in-progress state.
func (s *Session) Current() *entities.Question {
	if s.status != StatusInProgress {
		return nil
	}
	return &s.questions[s.index]
}

// Index returns the zero-based position of the current question.
func (s *Session) Index() int { return s.index }

// Total returns the fixed number of questions in the session.
func (s *Session) Total() int { return len(s.questions) }

// Score returns the number of correctly answered questions so far.
func (s *Session) Score() int { return s.score }

// IsFinished reports whether the session reached its terminal state.
func (s *Session) IsFinished() bool { return s.status == StatusFinished }

// Answered reports whether the current question has already been evaluated.
func (s *Session) Answered() bool { return s.answered }

// LastCorrect reports the outcome of the current question's evaluation.
// Only meaningful while Answered is true.
func (s *Session) LastCorrect() bool { return s.lastCorrect }

// SubmitAnswer evaluates a multiple-choice answer against the current
// question by exact string equality. Only the first submission per question
// is scored; repeats re-report the recorded outcome without rescoring.
func (s *Session) SubmitAnswer(choice string) bool {
	if s.status != StatusInProgress {
		return false
	}
	if s.answered {
		return s.lastCorrect
	}
	s.record(choice == s.questions[s.index].CorrectAnswer)
	return s.lastCorrect
}

// SubmitOrder evaluates an assembled part sequence against the current
// ordering question under answer normalization. Like SubmitAnswer, it
// evaluates at most once per question.
func (s *Session) SubmitOrder(parts []entities.SentencePart) bool {
	if s.status != StatusInProgress {
		return false
	}
	if s.answered {
		return s.lastCorrect
	}

	q := &s.questions[s.index]
	if q.Type != entities.QuizTypeOrdering {
		s.record(false)
		return false
	}

	texts := make([]string, len(parts))
	for i, p := range parts {
		texts[i] = p.Text
	}
	attempt := strings.Join(texts, " ")
	s.record(NormalizeAnswer(attempt) == NormalizeAnswer(q.CorrectAnswer))
	return s.lastCorrect
}

func (s *Session) record(correct bool) {
	s.answered = true
	s.lastCorrect = correct
	if correct {
		s.score++
	}
}

// Next advances to the following question, or finishes the session after
// the last one. Calling it before the current question has been answered
// does nothing.
func (s *Session) Next() {
	if s.status != StatusInProgress || !s.answered {
		return
	}
	s.answered = false
	s.lastCorrect = false
	if s.index+1 < len(s.questions) {
		s.index++
		return
	}
	s.status = StatusFinished
}

// Result derives the percentage and badge for the session's score.
// Meaningful once the session has finished.
func (s *Session) Result() entities.QuizResult {
	return entities.NewQuizResult(s.score, len(s.questions))
}
