package service

import (
	"math/rand"
	"testing"

	"github.com/linmeili/french-master-bot/internal/domain/entities"
)

func newTestFactory(seed int64) *QuestionFactory {
	rng := rand.New(rand.NewSource(seed))
	return NewQuestionFactory(NewDistractorGenerator(testWords(), rng), rng)
}

func testSentence() *entities.Sentence {
	return &entities.Sentence{
		ID:      "s1",
		French:  "Tu vas où?",
		Chinese: "你要去哪里？",
		Parts: []entities.SentencePart{
			{Text: "Tu", Homophone: "tü"},
			{Text: "vas", Homophone: "瓦"},
			{Text: "où", Homophone: "乌"},
		},
		Category: "核心句型",
	}
}

func assertUniqueOptions(t *testing.T, q entities.Question) {
	t.Helper()

	if len(q.Options) != 4 {
		t.Fatalf("expected 4 options, got %d (%v)", len(q.Options), q.Options)
	}

	correctCount := 0
	seen := map[string]bool{}
	for _, o := range q.Options {
		if seen[o] {
			t.Fatalf("duplicate option %q in %v", o, q.Options)
		}
		seen[o] = true
		if o == q.CorrectAnswer {
			correctCount++
		}
	}
	if correctCount != 1 {
		t.Fatalf("correct answer appears %d times in %v", correctCount, q.Options)
	}
}

func TestTranslationQuestionShape(t *testing.T) {
	f := newTestFactory(1)
	word := testWords()[0]

	forward, reverse := false, false
	for i := 0; i < 100; i++ {
		q := f.Translation(word)

		if q.Type != entities.QuizTypeTranslation {
			t.Fatalf("unexpected type %q", q.Type)
		}
		assertUniqueOptions(t, q)

		switch q.Prompt {
		case word.French:
			forward = true
			if q.CorrectAnswer != word.Chinese {
				t.Fatalf("forward question with answer %q", q.CorrectAnswer)
			}
			if q.PromptSub != "("+word.Homophone+")" {
				t.Fatalf("forward question missing homophone hint, got %q", q.PromptSub)
			}
		case word.Chinese:
			reverse = true
			if q.CorrectAnswer != word.French {
				t.Fatalf("reverse question with answer %q", q.CorrectAnswer)
			}
			if q.PromptSub != "" {
				t.Fatalf("reverse question carries hint %q", q.PromptSub)
			}
		default:
			t.Fatalf("unexpected prompt %q", q.Prompt)
		}
	}

	if !forward || !reverse {
		t.Fatalf("expected both directions over 100 draws, forward=%v reverse=%v", forward, reverse)
	}
}

func TestPhoneticQuestionShape(t *testing.T) {
	f := newTestFactory(2)
	word := testWords()[4]

	for i := 0; i < 50; i++ {
		q := f.Phonetic(word)

		if q.Type != entities.QuizTypePhonetic {
			t.Fatalf("unexpected type %q", q.Type)
		}
		if q.Prompt != word.French || q.CorrectAnswer != word.IPA {
			t.Fatalf("unexpected prompt/answer %q/%q", q.Prompt, q.CorrectAnswer)
		}
		if q.Explanation != "正确音标是: "+word.IPA {
			t.Fatalf("unexpected explanation %q", q.Explanation)
		}
		assertUniqueOptions(t, q)
	}
}

func TestOrderingQuestionShuffles(t *testing.T) {
	f := newTestFactory(3)
	sentence := testSentence()

	for i := 0; i < 50; i++ {
		q := f.Ordering(sentence)

		if q.Type != entities.QuizTypeOrdering {
			t.Fatalf("unexpected type %q", q.Type)
		}
		if q.Prompt != sentence.Chinese || q.CorrectAnswer != sentence.French {
			t.Fatalf("unexpected prompt/answer %q/%q", q.Prompt, q.CorrectAnswer)
		}
		if samePartOrder(q.SentenceParts, sentence.Parts) {
			t.Fatalf("ordering question handed out already solved: %v", q.SentenceParts)
		}

		counts := map[string]int{}
		for _, p := range sentence.Parts {
			counts[p.Text]++
		}
		for _, p := range q.SentenceParts {
			counts[p.Text]--
		}
		for text, n := range counts {
			if n != 0 {
				t.Fatalf("tile multiset changed for %q (delta %d)", text, n)
			}
		}
	}
}

func TestOrderingSinglePartKeptAsIs(t *testing.T) {
	f := newTestFactory(4)
	sentence := &entities.Sentence{
		ID:      "s2",
		French:  "Bonjour.",
		Chinese: "你好。",
		Parts:   []entities.SentencePart{{Text: "Bonjour"}},
	}

	q := f.Ordering(sentence)
	if len(q.SentenceParts) != 1 || q.SentenceParts[0].Text != "Bonjour" {
		t.Fatalf("unexpected parts %v", q.SentenceParts)
	}
}

func TestOrderingDoesNotMutateSentence(t *testing.T) {
	f := newTestFactory(5)
	sentence := testSentence()

	f.Ordering(sentence)

	want := []string{"Tu", "vas", "où"}
	for i, p := range sentence.Parts {
		if p.Text != want[i] {
			t.Fatalf("source sentence mutated: %v", sentence.Parts)
		}
	}
}

func TestQuestionIDsUnique(t *testing.T) {
	f := newTestFactory(6)
	word := testWords()[0]

	seen := map[string]bool{}
	for i := 0; i < 20; i++ {
		q := f.Translation(word)
		if seen[q.ID] {
			t.Fatalf("duplicate question id %q", q.ID)
		}
		seen[q.ID] = true
	}
}
