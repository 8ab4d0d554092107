// Package g2p converts English graphemes to ARPABET phoneme sequences. It
// looks words up in a frequency lexicon first and falls back to greedy
// letter-to-sound rules, so every alphabetic word gets a pronunciation.
package g2p

import (
	"errors"
	"strings"
	"unicode"
)

// ErrNoPhones is returned when a word yields no phones at all.
var ErrNoPhones = errors.New("word produced no phonemes")

// Store is an optional pronunciation cache. Keys are lowercase words, values
// are space-joined phone strings.
type Store interface {
	Get(key string) ([]byte, bool)
	Put(key string, value []byte) error
}

// Engine converts text to phones. The zero value is not usable; use New.
type Engine struct {
	store Store
}

// New creates an engine. store may be nil to disable caching.
func New(store Store) *Engine {
	return &Engine{store: store}
}

// Convert returns the flat phone sequence for text, all words concatenated.
func (e *Engine) Convert(text string) ([]string, error) {
	phones, _, err := e.convert(text)
	return phones, err
}

// ConvertWords returns per-word phone sequences, one slice per word, for
// callers that need word boundaries preserved.
func (e *Engine) ConvertWords(text string) ([][]string, error) {
	_, words, err := e.convert(text)
	return words, err
}

func (e *Engine) convert(text string) ([]string, [][]string, error) {
	for _, pair := range abbreviations {
		text = strings.ReplaceAll(text, pair[0], pair[1])
	}

	var flat []string
	var perWord [][]string
	for _, word := range splitWords(text) {
		phones := e.wordPhones(strings.ToLower(word))
		if len(phones) == 0 {
			continue
		}
		flat = append(flat, phones...)
		perWord = append(perWord, phones)
	}
	if len(flat) == 0 {
		return nil, nil, ErrNoPhones
	}
	return flat, perWord, nil
}

// wordPhones resolves one lowercase word: cache, then lexicon, then rules.
func (e *Engine) wordPhones(word string) []string {
	if e.store != nil {
		if raw, ok := e.store.Get(word); ok {
			return strings.Fields(string(raw))
		}
	}

	phones, ok := lexicon[word]
	if !ok {
		phones = rulePhones(word)
	}

	if e.store != nil && len(phones) > 0 {
		// Best effort; a full cache is not a conversion failure.
		_ = e.store.Put(word, []byte(strings.Join(phones, " ")))
	}
	return phones
}

// splitWords extracts alphabetic word runs, keeping internal apostrophes.
func splitWords(text string) []string {
	var words []string
	var current strings.Builder
	for _, r := range text {
		if unicode.IsLetter(r) || r == '\'' {
			current.WriteRune(r)
			continue
		}
		if current.Len() > 0 {
			words = append(words, current.String())
			current.Reset()
		}
	}
	if current.Len() > 0 {
		words = append(words, current.String())
	}
	return words
}
