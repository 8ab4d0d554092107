package syllable

import (
	"fmt"
	"strings"
)

// SentenceSyllables slices a continuous phone stream into per-word chunks
// using the known per-word phone counts, syllabifying each word with t.
// Words of one or two phones are kept whole; anything longer goes through
// the tokenizer. It returns the space-joined syllable tokens in word order
// together with the phone count of each syllable.
//
// phoneNums must sum to len(phones); a mismatch is a caller contract
// violation and is reported as ErrPhoneCountMismatch.
func SentenceSyllables(t Tokenizer, phones []string, phoneNums []int) ([]string, []int, error) {
	total := 0
	for _, n := range phoneNums {
		if n < 0 {
			return nil, nil, fmt.Errorf("%w: negative phone count %d", ErrPhoneCountMismatch, n)
		}
		total += n
	}
	if total != len(phones) {
		return nil, nil, fmt.Errorf("%w: counts sum to %d, stream has %d phones",
			ErrPhoneCountMismatch, total, len(phones))
	}

	var (
		syllables []string
		counts    []int
		start     int
	)
	for _, n := range phoneNums {
		word := phones[start : start+n]
		start += n
		if n == 0 {
			continue
		}
		if n <= 2 {
			// Short words are never split.
			syllables = append(syllables, strings.Join(word, " "))
			counts = append(counts, n)
			continue
		}
		syls, err := t.Tokenize(word)
		if err != nil {
			return nil, nil, err
		}
		for _, syl := range syls {
			syllables = append(syllables, strings.Join(syl, " "))
			counts = append(counts, len(syl))
		}
	}
	return syllables, counts, nil
}
