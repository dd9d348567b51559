// Package storage provides in-memory state shared by the delivery layer.
package storage

import (
	"sync"

	"github.com/linmeili/french-master-bot/internal/domain/entities"
	"github.com/linmeili/french-master-bot/internal/service"
)

// ActiveQuiz bundles the session a chat is currently playing with the mode
// it was started in and the ordering board of its current question, if any.
type ActiveQuiz struct {
	Mode    entities.QuizType
	Session *service.Session
	Board   *service.OrderingBoard
}

// QuizStore keeps at most one active quiz per chat. Abandoning a quiz is
// just deleting its entry; there is no teardown beyond that.
type QuizStore struct {
	mu     sync.RWMutex
	active map[int64]*ActiveQuiz
}

// NewQuizStore creates an empty store.
func NewQuizStore() *QuizStore {
	return &QuizStore{
		active: make(map[int64]*ActiveQuiz),
	}
}

// Store saves the active quiz for a chat, replacing any previous one.
func (s *QuizStore) Store(chatID int64, quiz *ActiveQuiz) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.active[chatID] = quiz
}

// Get retrieves the active quiz for a chat.
func (s *QuizStore) Get(chatID int64) (*ActiveQuiz, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	quiz, ok := s.active[chatID]
	return quiz, ok
}

// Delete discards the active quiz for a chat.
func (s *QuizStore) Delete(chatID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.active, chatID)
}
