package service

import (
	"fmt"
	"math/rand"

	"github.com/linmeili/french-master-bot/internal/domain/entities"
)

const (
	optionCount = 4

	// maxReshuffles bounds the retries used to avoid handing out an
	// ordering puzzle that is already solved.
	maxReshuffles = 10
)

// QuestionFactory builds single questions of each kind from corpus items.
type QuestionFactory struct {
	distractors *DistractorGenerator
	rng         *rand.Rand
	seq         int
}

// NewQuestionFactory creates a factory sharing the given random source.
func NewQuestionFactory(distractors *DistractorGenerator, rng *rand.Rand) *QuestionFactory {
	return &QuestionFactory{distractors: distractors, rng: rng}
}

// nextID derives a question ID unique within the factory's lifetime.
func (f *QuestionFactory) nextID(kind, itemID string) string {
	f.seq++
	return fmt.Sprintf("q-%s-%s-%d", kind, itemID, f.seq)
}

// Translation builds a FR->CN or CN->FR multiple-choice question. The
// direction is a fair coin flip; the homophone hint is shown only when the
// prompt is the French side.
func (f *QuestionFactory) Translation(word *entities.Word) entities.Question {
	reverse := f.rng.Intn(2) == 0

	pick := func(w *entities.Word) string {
		if reverse {
			return w.French
		}
		return w.Chinese
	}

	q := entities.Question{
		ID:            f.nextID("trans", word.ID),
		Type:          entities.QuizTypeTranslation,
		Prompt:        word.French,
		PromptSub:     "(" + word.Homophone + ")",
		CorrectAnswer: word.Chinese,
		Explanation:   fmt.Sprintf("%s [%s] (%s) = %s", word.French, word.IPA, word.Homophone, word.Chinese),
	}
	if reverse {
		q.Prompt = word.Chinese
		q.PromptSub = ""
		q.CorrectAnswer = word.French
	}

	distractors := f.distractors.SampleOptions(word, wrongOptionCount, pick)
	q.Options = f.shuffledOptions(q.CorrectAnswer, distractors)
	return q
}

// Phonetic builds a FR->IPA question whose wrong options mix a mutation of
// the correct transcription with an unrelated one and its mutation.
func (f *QuestionFactory) Phonetic(word *entities.Word) entities.Question {
	options := f.distractors.IPAOptions(word.IPA, optionCount)
	f.rng.Shuffle(len(options), func(i, j int) { options[i], options[j] = options[j], options[i] })

	return entities.Question{
		ID:            f.nextID("ipa", word.ID),
		Type:          entities.QuizTypePhonetic,
		Prompt:        word.French,
		PromptSub:     "(" + word.Homophone + ")",
		CorrectAnswer: word.IPA,
		Options:       options,
		Explanation:   "正确音标是: " + word.IPA,
	}
}

// Ordering builds a sentence-assembly question carrying a shuffled copy of
// the sentence's parts. For multi-part sentences the shuffle is redrawn
// when it lands on the canonical order, so the puzzle never starts solved.
func (f *QuestionFactory) Ordering(sentence *entities.Sentence) entities.Question {
	parts := append([]entities.SentencePart(nil), sentence.Parts...)
	if len(parts) > 1 {
		for i := 0; i < maxReshuffles; i++ {
			f.rng.Shuffle(len(parts), func(i, j int) { parts[i], parts[j] = parts[j], parts[i] })
			if !samePartOrder(parts, sentence.Parts) {
				break
			}
		}
	}

	return entities.Question{
		ID:            f.nextID("order", sentence.ID),
		Type:          entities.QuizTypeOrdering,
		Prompt:        sentence.Chinese,
		CorrectAnswer: sentence.French,
		SentenceParts: parts,
		Explanation:   fmt.Sprintf("%s (%s)", sentence.French, sentence.Chinese),
	}
}

// shuffledOptions merges the correct answer into the distractors and
// shuffles the result in place.
func (f *QuestionFactory) shuffledOptions(correct string, distractors []string) []string {
	options := make([]string, 0, 1+len(distractors))
	options = append(options, correct)
	options = append(options, distractors...)
	f.rng.Shuffle(len(options), func(i, j int) { options[i], options[j] = options[j], options[i] })
	return options
}

func samePartOrder(a, b []entities.SentencePart) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i].Text != b[i].Text {
			return false
		}
	}
	return true
}
