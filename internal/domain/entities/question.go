package entities

// QuizType discriminates the kinds of quiz questions.
type QuizType string

const (
	QuizTypeTranslation QuizType = "TRANSLATION" // FR <-> CN multiple choice
	QuizTypePhonetic    QuizType = "PHONETIC"    // FR -> IPA multiple choice
	QuizTypeOrdering    QuizType = "ORDERING"    // scrambled sentence assembly
	QuizTypeRandom      QuizType = "RANDOM"      // kind drawn per question
)

// Valid reports whether t names a known quiz mode.
func (t QuizType) Valid() bool {
	switch t {
	case QuizTypeTranslation, QuizTypePhonetic, QuizTypeOrdering, QuizTypeRandom:
		return true
	}
	return false
}

// Question is a single generated quiz question.
type Question struct {
	ID            string
	Type          QuizType
	Prompt        string
	PromptSub     string         // extra prompt context (homophone hint), may be empty
	CorrectAnswer string         // option text or, for ordering, the full sentence
	Options       []string       // multiple choice (Translation/Phonetic only)
	SentenceParts []SentencePart // pre-shuffled tiles (Ordering only)
	Explanation   string         // shown after answering
}
