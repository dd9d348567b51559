package service

import (
	"math/rand"

	"github.com/linmeili/french-master-bot/internal/domain/entities"
)

// quizKinds are the concrete kinds a RANDOM quiz draws from.
var quizKinds = []entities.QuizType{
	entities.QuizTypeTranslation,
	entities.QuizTypePhonetic,
	entities.QuizTypeOrdering,
}

// Engine produces question sequences for quiz sessions.
type Engine struct {
	content ContentSource
	factory *QuestionFactory
	rng     *rand.Rand
}

// NewEngine creates a quiz generation engine.
func NewEngine(content ContentSource, factory *QuestionFactory, rng *rand.Rand) *Engine {
	return &Engine{content: content, factory: factory, rng: rng}
}

// GenerateQuiz returns exactly count questions of the requested mode. In
// RANDOM mode each question's kind is drawn independently and uniformly.
// Corpus items are drawn uniformly with replacement, so repeats within a
// quiz are possible.
func (e *Engine) GenerateQuiz(mode entities.QuizType, count int) []entities.Question {
	questions := make([]entities.Question, 0, max(count, 0))

	for i := 0; i < count; i++ {
		kind := mode
		if mode == entities.QuizTypeRandom {
			kind = quizKinds[e.rng.Intn(len(quizKinds))]
		}

		switch kind {
		case entities.QuizTypeOrdering:
			sentences := e.content.Sentences()
			questions = append(questions, e.factory.Ordering(sentences[e.rng.Intn(len(sentences))]))
		case entities.QuizTypePhonetic:
			words := e.content.Words()
			questions = append(questions, e.factory.Phonetic(words[e.rng.Intn(len(words))]))
		default:
			// Unknown modes fall back to translation questions.
			words := e.content.Words()
			questions = append(questions, e.factory.Translation(words[e.rng.Intn(len(words))]))
		}
	}

	return questions
}
