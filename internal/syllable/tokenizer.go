package syllable

import "fmt"

// Tokenizer segments one phoneme sequence into syllables. Implementations
// must cover every input phoneme exactly once, in order.
type Tokenizer interface {
	Tokenize(phones []string) ([][]string, error)
}

// TokenizeAll applies a Tokenizer to each sequence in order. It is the batch
// counterpart of Tokenizer.Tokenize; types implement the single-sequence
// operation and get batching through this helper.
func TokenizeAll(t Tokenizer, seqs [][]string) ([][][]string, error) {
	out := make([][][]string, 0, len(seqs))
	for _, seq := range seqs {
		syls, err := t.Tokenize(seq)
		if err != nil {
			return nil, err
		}
		out = append(out, syls)
	}
	return out, nil
}

// SSPTokenizer syllabifies phoneme sequences with the Sonority Sequencing
// Principle over a SonorityMap.
type SSPTokenizer struct {
	sonority *SonorityMap
}

// NewSSPTokenizer creates a tokenizer over the given sonority map.
func NewSSPTokenizer(m *SonorityMap) *SSPTokenizer {
	return &SSPTokenizer{sonority: m}
}

// NewDefaultTokenizer creates a tokenizer over the shared ARPABET hierarchy.
func NewDefaultTokenizer() *SSPTokenizer {
	return &SSPTokenizer{sonority: DefaultEnglish()}
}

// rankedPhone pairs a phoneme symbol with its sonority rank.
type rankedPhone struct {
	sym  string
	rank int
}

// Tokenize segments phones into syllables. A sequence with at most one vowel
// is returned whole as a single syllable. Otherwise boundaries are placed by
// a sliding trigram scan over the ranked phonemes, then two repair passes
// enforce the one-vowel-per-syllable invariant.
func (t *SSPTokenizer) Tokenize(phones []string) ([][]string, error) {
	if len(phones) == 0 {
		return nil, nil
	}
	if t.countVowels(phones) <= 1 {
		whole := make([]string, len(phones))
		copy(whole, phones)
		return [][]string{whole}, nil
	}

	// Unknown symbols carry no rank and are excluded from the scan.
	ranked := make([]rankedPhone, 0, len(phones))
	for _, sym := range phones {
		if rank, ok := t.sonority.Rank(sym); ok {
			ranked = append(ranked, rankedPhone{sym: sym, rank: rank})
		}
	}

	var syllables [][]string
	syllable := []string{ranked[0].sym}
	for i := 1; i+1 < len(ranked); i++ {
		prev, focal, next := ranked[i-1].rank, ranked[i].rank, ranked[i+1].rank
		sym := ranked[i].sym
		switch {
		case prev >= focal && focal == next:
			// Plateau-then-drop: the focal phoneme closes the open syllable.
			syllable = append(syllable, sym)
			syllables = append(syllables, syllable)
			syllable = nil
		case prev > focal && focal < next:
			// Sonority valley: the focal phoneme starts a new syllable.
			syllables = append(syllables, syllable)
			syllable = []string{sym}
		default:
			syllable = append(syllable, sym)
		}
	}
	syllable = append(syllable, ranked[len(ranked)-1].sym)
	syllables = append(syllables, syllable)

	return t.splitMultiVowel(t.mergeVowelless(syllables))
}

// countVowels counts input symbols that belong to the vowel level. Ranks are
// not consulted here; only vowel-level membership matters.
func (t *SSPTokenizer) countVowels(phones []string) int {
	n := 0
	for _, sym := range phones {
		if t.sonority.IsVowel(sym) {
			n++
		}
	}
	return n
}

func (t *SSPTokenizer) hasVowel(syllable []string) bool {
	for _, sym := range syllable {
		if t.sonority.IsVowel(sym) {
			return true
		}
	}
	return false
}

// mergeVowelless folds syllables lacking a vowel into a neighbor: a leading
// run is collected and prepended to the first vowelled syllable, anything
// later is appended to the previous syllable.
func (t *SSPTokenizer) mergeVowelless(syllables [][]string) [][]string {
	var valid [][]string
	var front []string
	for _, syl := range syllables {
		if !t.hasVowel(syl) {
			if len(valid) == 0 {
				front = append(front, syl...)
			} else {
				valid[len(valid)-1] = append(valid[len(valid)-1], syl...)
			}
			continue
		}
		if len(valid) == 0 && len(front) > 0 {
			syl = append(front, syl...)
			front = nil
		}
		valid = append(valid, syl)
	}
	return valid
}

// splitMultiVowel splits any syllable holding more than one vowel right
// after its first vowel. Every syllable entering this pass must already
// carry at least one vowel; a violation is surfaced as an error rather than
// silently producing an invalid split.
func (t *SSPTokenizer) splitMultiVowel(syllables [][]string) ([][]string, error) {
	out := make([][]string, 0, len(syllables))
	for _, syl := range syllables {
		firstVowel := -1
		multi := false
		for i, sym := range syl {
			if t.sonority.IsVowel(sym) {
				if firstVowel == -1 {
					firstVowel = i
				} else {
					multi = true
				}
			}
		}
		if firstVowel == -1 {
			return nil, fmt.Errorf("%w: %v", ErrSyllableWithoutVowel, syl)
		}
		if multi {
			out = append(out, syl[:firstVowel+1], syl[firstVowel+1:])
		} else {
			out = append(out, syl)
		}
	}
	return out, nil
}
