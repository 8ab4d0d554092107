package syllable

import (
	"strings"
	"sync"
)

// Hierarchy is an ordered partition of phoneme symbols into sonority levels,
// most sonorous first. Level 0 must hold the vowel inventory. If stressed
// phoneme symbols are used, the vowel level must list every (base, stress)
// combination explicitly.
type Hierarchy [][]string

// SonorityMap maps phoneme symbols to integer sonority ranks derived from a
// Hierarchy. Higher rank means more sonorous. The map is immutable after
// construction and safe for concurrent use without locking.
type SonorityMap struct {
	ranks  map[string]int
	vowels map[string]struct{}
	levels int
}

// NewSonorityMap builds a SonorityMap from the given hierarchy. Each symbol
// is registered both as given and upper-cased, so rank lookups never fail
// purely due to case. It returns an error if the hierarchy is empty or its
// vowel level is empty.
func NewSonorityMap(hierarchy Hierarchy) (*SonorityMap, error) {
	if len(hierarchy) == 0 {
		return nil, ErrEmptyHierarchy
	}
	if len(hierarchy[0]) == 0 {
		return nil, ErrEmptyVowelLevel
	}

	m := &SonorityMap{
		ranks:  make(map[string]int),
		vowels: make(map[string]struct{}, 2*len(hierarchy[0])),
		levels: len(hierarchy),
	}
	for i, level := range hierarchy {
		rank := len(hierarchy) - i
		for _, sym := range level {
			m.ranks[sym] = rank
			m.ranks[strings.ToUpper(sym)] = rank
		}
	}
	for _, sym := range hierarchy[0] {
		m.vowels[sym] = struct{}{}
		m.vowels[strings.ToUpper(sym)] = struct{}{}
	}
	return m, nil
}

// Rank returns the sonority rank for a phoneme symbol, folding case when the
// exact symbol is not registered. Unknown symbols report ok=false and are
// excluded from sonority comparisons downstream.
func (m *SonorityMap) Rank(sym string) (rank int, ok bool) {
	if rank, ok = m.ranks[sym]; ok {
		return rank, true
	}
	rank, ok = m.ranks[strings.ToUpper(sym)]
	return rank, ok
}

// IsVowel reports whether the symbol belongs to the vowel level, folding
// case like Rank.
func (m *SonorityMap) IsVowel(sym string) bool {
	if _, ok := m.vowels[sym]; ok {
		return true
	}
	_, ok := m.vowels[strings.ToUpper(sym)]
	return ok
}

// Levels returns the number of levels in the source hierarchy.
func (m *SonorityMap) Levels() int { return m.levels }

// arpabetStresses are the stress suffixes carried by ARPABET vowels.
var arpabetStresses = []string{"0", "1", "2"}

// EnglishHierarchy returns the default ARPABET sonority hierarchy, with the
// vowel level expanded across all stress markers.
func EnglishHierarchy() Hierarchy {
	bases := []string{
		"AO", "AA", "IY", "UW", "EH", "IH", "UH", "AH", "AE", "EY", "AY",
		"OW", "AW", "OY", "ER",
	}
	vowels := make([]string, 0, len(bases)*len(arpabetStresses))
	for _, base := range bases {
		for _, stress := range arpabetStresses {
			vowels = append(vowels, base+stress)
		}
	}
	return Hierarchy{
		vowels,
		{"Y", "W"},
		{"L", "EL", "R", "DX", "NX"},
		{"M", "EM", "N", "EN", "NG", "ENG"},
		{"P", "B", "T", "D", "K", "G", "CH", "JH", "F", "V", "TH", "DH", "S", "Z", "SH", "ZH", "HH"},
	}
}

// defaultEnglish is built once and shared by reference across all tokenizers.
var defaultEnglish = sync.OnceValue(func() *SonorityMap {
	m, err := NewSonorityMap(EnglishHierarchy())
	if err != nil {
		// The built-in hierarchy is static; failing to build it is a bug.
		panic(err)
	}
	return m
})

// DefaultEnglish returns the shared SonorityMap for the ARPABET hierarchy.
func DefaultEnglish() *SonorityMap { return defaultEnglish() }
