package entities

// SentencePart is a single tile of a sentence-assembly puzzle.
type SentencePart struct {
	Text      string `yaml:"text"`
	Homophone string `yaml:"homophone,omitempty"` // optional pronunciation hint
}

// Sentence represents a full French sentence with its Chinese meaning.
// The order of Parts is the canonical assembly order.
type Sentence struct {
	ID       string         `yaml:"id"`
	French   string         `yaml:"french"`
	Chinese  string         `yaml:"chinese"`
	Parts    []SentencePart `yaml:"parts"`
	Category string         `yaml:"category"`
}
