// Package syllable segments phoneme sequences into syllables using the
// Sonority Sequencing Principle: syllable boundaries fall on local sonority
// minima and plateaus, and every syllable is repaired to carry exactly one
// vowel unless the whole word has at most one.
package syllable
