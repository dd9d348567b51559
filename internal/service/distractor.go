// Package service contains the quiz generation engine, the quiz session
// state machine and the ordering board. Everything here is synchronous and
// framework independent; randomness comes from an injected *rand.Rand.
package service

import (
	"math/rand"
	"strings"

	"github.com/linmeili/french-master-bot/internal/domain/entities"
)

// substitution is a single phoneme replacement rule.
type substitution struct {
	from string
	to   string
}

// ipaRules is the ordered mutation table: vowel confusions first, then
// consonant voicing pairs. Only the first rule whose source phoneme occurs
// in the input is applied, to every occurrence of that phoneme.
var ipaRules = []substitution{
	{"i", "e"},
	{"e", "i"},
	{"a", "o"},
	{"o", "u"},
	{"y", "i"},
	{"ɛ", "e"},
	{"œ", "ø"},
	{"p", "b"},
	{"t", "d"},
	{"k", "g"},
	{"s", "z"},
	{"ʃ", "s"},
}

// lengtheningMark is appended when no rule matches, so a mutation always
// differs from its input.
const lengtheningMark = "ː"

const wrongOptionCount = 3

// DistractorGenerator produces plausible-but-wrong answer candidates for
// multiple-choice questions.
type DistractorGenerator struct {
	words []*entities.Word
	rng   *rand.Rand
}

// NewDistractorGenerator creates a generator over the full vocabulary.
func NewDistractorGenerator(words []*entities.Word, rng *rand.Rand) *DistractorGenerator {
	return &DistractorGenerator{words: words, rng: rng}
}

// MutateIPA returns a transcription likely to be confused with ipa.
// The result is guaranteed to differ from the input.
func (g *DistractorGenerator) MutateIPA(ipa string) string {
	for _, rule := range ipaRules {
		if strings.Contains(ipa, rule.from) {
			return strings.ReplaceAll(ipa, rule.from, rule.to)
		}
	}
	return ipa + lengtheningMark
}

// SampleOptions draws up to count distinct option texts for target, with
// texts taken via pick. Words sharing the target's category are preferred;
// when the category pool runs dry the whole corpus is sampled with a
// bounded number of retries, so a scarce corpus yields fewer options
// instead of blocking.
func (g *DistractorGenerator) SampleOptions(target *entities.Word, count int, pick func(*entities.Word) string) []string {
	seen := map[string]struct{}{pick(target): {}}
	options := make([]string, 0, count)

	pool := make([]*entities.Word, 0, len(g.words))
	for _, w := range g.words {
		if w.ID != target.ID && w.Category == target.Category {
			pool = append(pool, w)
		}
	}
	g.rng.Shuffle(len(pool), func(i, j int) { pool[i], pool[j] = pool[j], pool[i] })

	for _, w := range pool {
		if len(options) >= count {
			return options
		}
		text := pick(w)
		if _, dup := seen[text]; dup {
			continue
		}
		seen[text] = struct{}{}
		options = append(options, text)
	}

	for attempts := 0; len(options) < count && attempts < g.maxAttempts(); attempts++ {
		w := g.words[g.rng.Intn(len(g.words))]
		if w.ID == target.ID {
			continue
		}
		text := pick(w)
		if _, dup := seen[text]; dup {
			continue
		}
		seen[text] = struct{}{}
		options = append(options, text)
	}

	return options
}

// IPAOptions assembles up to want unique transcriptions containing correct:
// a mutation of correct, an unrelated word's transcription and a mutation
// of that one. Duplicates are replaced by fresh random transcriptions under
// the same retry bound as SampleOptions.
func (g *DistractorGenerator) IPAOptions(correct string, want int) []string {
	other := g.RandomIPA()
	candidates := []string{correct, g.MutateIPA(correct), other, g.MutateIPA(other)}

	seen := make(map[string]struct{}, want)
	options := make([]string, 0, want)
	for _, c := range candidates {
		if len(options) >= want {
			break
		}
		if _, dup := seen[c]; dup {
			continue
		}
		seen[c] = struct{}{}
		options = append(options, c)
	}

	for attempts := 0; len(options) < want && attempts < g.maxAttempts(); attempts++ {
		c := g.RandomIPA()
		if _, dup := seen[c]; dup {
			continue
		}
		seen[c] = struct{}{}
		options = append(options, c)
	}

	return options
}

// RandomIPA returns the transcription of a uniformly drawn corpus word.
func (g *DistractorGenerator) RandomIPA() string {
	return g.words[g.rng.Intn(len(g.words))].IPA
}

// maxAttempts bounds fallback sampling proportionally to corpus size.
func (g *DistractorGenerator) maxAttempts() int {
	if len(g.words) < 4 {
		return 16
	}
	return len(g.words) * 4
}
