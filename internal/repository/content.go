// Package repository provides read-only access to the French corpus.
package repository

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/linmeili/french-master-bot/internal/domain/entities"
	"github.com/linmeili/french-master-bot/internal/service"
)

var (
	ErrWordNotFound     = errors.New("word not found")
	ErrSentenceNotFound = errors.New("sentence not found")
)

// ContentRepository holds the immutable vocabulary and sentence
// collections, loaded once at startup from YAML corpus files.
type ContentRepository struct {
	words     []*entities.Word
	sentences []*entities.Sentence

	wordsByID     map[string]*entities.Word
	sentencesByID map[string]*entities.Sentence
}

// NewContentRepository loads and validates both corpus files.
func NewContentRepository(wordsPath, sentencesPath string) (*ContentRepository, error) {
	words, err := loadWords(wordsPath)
	if err != nil {
		return nil, fmt.Errorf("load words: %w", err)
	}

	sentences, err := loadSentences(sentencesPath)
	if err != nil {
		return nil, fmt.Errorf("load sentences: %w", err)
	}

	repo := &ContentRepository{
		words:         words,
		sentences:     sentences,
		wordsByID:     make(map[string]*entities.Word, len(words)),
		sentencesByID: make(map[string]*entities.Sentence, len(sentences)),
	}

	for _, w := range words {
		if _, dup := repo.wordsByID[w.ID]; dup {
			return nil, fmt.Errorf("duplicate word id %q in %s", w.ID, wordsPath)
		}
		repo.wordsByID[w.ID] = w
	}
	for _, s := range sentences {
		if _, dup := repo.sentencesByID[s.ID]; dup {
			return nil, fmt.Errorf("duplicate sentence id %q in %s", s.ID, sentencesPath)
		}
		repo.sentencesByID[s.ID] = s
	}

	return repo, nil
}

// Words returns the full vocabulary collection.
func (r *ContentRepository) Words() []*entities.Word {
	return r.words
}

// Sentences returns the full sentence collection.
func (r *ContentRepository) Sentences() []*entities.Sentence {
	return r.sentences
}

// WordByID retrieves a single word.
func (r *ContentRepository) WordByID(id string) (*entities.Word, error) {
	if w, ok := r.wordsByID[id]; ok {
		return w, nil
	}
	return nil, ErrWordNotFound
}

// SentenceByID retrieves a single sentence.
func (r *ContentRepository) SentenceByID(id string) (*entities.Sentence, error) {
	if s, ok := r.sentencesByID[id]; ok {
		return s, nil
	}
	return nil, ErrSentenceNotFound
}

// WordsByCategory returns the words sharing a category label, preserving
// corpus order.
func (r *ContentRepository) WordsByCategory(category string) []*entities.Word {
	out := make([]*entities.Word, 0)
	for _, w := range r.words {
		if w.Category == category {
			out = append(out, w)
		}
	}
	return out
}

func loadWords(path string) ([]*entities.Word, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var wrapper struct {
		Words []*entities.Word `yaml:"words"`
	}
	if err := yaml.Unmarshal(data, &wrapper); err != nil {
		return nil, fmt.Errorf("unmarshal words YAML: %w", err)
	}
	if len(wrapper.Words) == 0 {
		return nil, fmt.Errorf("no words in %s", path)
	}

	for _, w := range wrapper.Words {
		if w.ID == "" || w.French == "" || w.Chinese == "" {
			return nil, fmt.Errorf("incomplete word entry %+v in %s", w, path)
		}
	}

	return wrapper.Words, nil
}

func loadSentences(path string) ([]*entities.Sentence, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var wrapper struct {
		Sentences []*entities.Sentence `yaml:"sentences"`
	}
	if err := yaml.Unmarshal(data, &wrapper); err != nil {
		return nil, fmt.Errorf("unmarshal sentences YAML: %w", err)
	}
	if len(wrapper.Sentences) == 0 {
		return nil, fmt.Errorf("no sentences in %s", path)
	}

	for _, s := range wrapper.Sentences {
		if s.ID == "" || s.French == "" || len(s.Parts) == 0 {
			return nil, fmt.Errorf("incomplete sentence entry %q in %s", s.ID, path)
		}

		// The parts in corpus order must reassemble into the sentence, or an
		// ordering puzzle built from this entry could never be solved.
		texts := make([]string, len(s.Parts))
		for i, p := range s.Parts {
			texts[i] = p.Text
		}
		joined := strings.Join(texts, " ")
		if service.NormalizeAnswer(joined) != service.NormalizeAnswer(s.French) {
			return nil, fmt.Errorf("sentence %q: parts %q do not assemble into %q in %s", s.ID, joined, s.French, path)
		}
	}

	return wrapper.Sentences, nil
}
