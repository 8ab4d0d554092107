// Package norm rewrites written-form text into speakable words so the
// grapheme-to-phoneme stage only ever sees letters. English digits become
// number words; Chinese digits become hanzi numerals.
package norm

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/yousifnimah/NumToWordsGo/NumToWords"
)

// English expands digits, decimals, and dollar amounts into English words.
type English struct{}

// NewEnglish creates an English text normalizer.
func NewEnglish() *English { return &English{} }

// numberPattern matches an optional dollar sign, an integer written either
// with thousands separators or as a plain digit run, and an optional decimal
// part. The separator branch comes first but requires at least one comma
// group, so plain multi-digit numbers fall through whole to the second
// branch instead of being split.
var numberPattern = regexp.MustCompile(`\$?(?:\d{1,3}(?:,\d{3})+|\d+)(?:\.\d+)?`)

// Normalize rewrites every numeric token in text as words. Non-numeric text
// passes through unchanged.
func (n *English) Normalize(text string) (string, error) {
	var outerErr error
	out := numberPattern.ReplaceAllStringFunc(text, func(tok string) string {
		spoken, err := spellNumber(tok)
		if err != nil {
			outerErr = err
			return tok
		}
		return spoken
	})
	if outerErr != nil {
		return "", outerErr
	}
	return out, nil
}

// spellNumber converts one matched numeric token to words.
func spellNumber(tok string) (string, error) {
	currency := strings.HasPrefix(tok, "$")
	tok = strings.TrimPrefix(tok, "$")
	tok = strings.ReplaceAll(tok, ",", "")

	intPart, fracPart, hasFrac := strings.Cut(tok, ".")

	intVal, err := strconv.Atoi(intPart)
	if err != nil {
		return "", fmt.Errorf("unable to parse number %q: %w", tok, err)
	}
	words, err := NumToWords.Convert(intVal, "en")
	if err != nil {
		return "", fmt.Errorf("unable to spell number %d: %w", intVal, err)
	}

	switch {
	case currency && hasFrac && len(fracPart) == 2:
		// $12.50 reads as an amount, not a decimal.
		cents, err := strconv.Atoi(fracPart)
		if err != nil {
			return "", fmt.Errorf("unable to parse cents %q: %w", fracPart, err)
		}
		centWords, err := NumToWords.Convert(cents, "en")
		if err != nil {
			return "", fmt.Errorf("unable to spell cents %d: %w", cents, err)
		}
		return words + " dollars " + centWords + " cents", nil
	case currency:
		if hasFrac {
			return words + spellFraction(fracPart) + " dollars", nil
		}
		return words + " dollars", nil
	case hasFrac:
		return words + spellFraction(fracPart), nil
	default:
		return words, nil
	}
}

// spellFraction reads decimal digits one by one after "point".
func spellFraction(digits string) string {
	names := []string{"zero", "one", "two", "three", "four", "five", "six", "seven", "eight", "nine"}
	var b strings.Builder
	b.WriteString(" point")
	for _, r := range digits {
		if r < '0' || r > '9' {
			continue
		}
		b.WriteByte(' ')
		b.WriteString(names[r-'0'])
	}
	return b.String()
}
