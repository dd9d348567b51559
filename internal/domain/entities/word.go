// Package entities contains domain entities used across the application.
package entities

// Word represents a single vocabulary item of the French corpus.
// It includes the French form, its Chinese meaning, the IPA transcription
// and a Chinese harmonic-sound hint for pronunciation recall.
type Word struct {
	ID        string `yaml:"id"`        // stable identifier, e.g. "w12"
	French    string `yaml:"french"`    // French form
	Chinese   string `yaml:"chinese"`   // Chinese meaning
	IPA       string `yaml:"ipa"`       // phonetic transcription
	Homophone string `yaml:"homophone"` // Chinese harmonic sound, mnemonic only
	Category  string `yaml:"category"`  // free-form grouping label
}
