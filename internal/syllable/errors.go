package syllable

import "errors"

// Common errors for syllabification.
var (
	// ErrEmptyHierarchy is returned when a sonority hierarchy has no levels.
	ErrEmptyHierarchy = errors.New("sonority hierarchy is empty")

	// ErrEmptyVowelLevel is returned when the vowel level (level 0) is empty.
	ErrEmptyVowelLevel = errors.New("sonority hierarchy has an empty vowel level")

	// ErrSyllableWithoutVowel is returned when a syllable reaches the
	// single-vowel repair pass without any vowel. The merge pass is supposed
	// to rule this out; hitting it means the hierarchy or the input violated
	// the tokenizer's preconditions.
	ErrSyllableWithoutVowel = errors.New("syllable contains no vowel after repair")

	// ErrPhoneCountMismatch is returned when per-word phone counts do not
	// cover the phone stream exactly.
	ErrPhoneCountMismatch = errors.New("phone counts do not match phone stream length")
)
