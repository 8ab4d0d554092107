package annotate

import (
	"strings"
	"unicode"

	"github.com/charmbracelet/log"

	"github.com/prosodylab/annotate/internal/script"
	"github.com/prosodylab/annotate/internal/syllable"
)

// SyllableInfo is the orchestrator's view of one utterance transcript.
type SyllableInfo struct {
	// SyllableNum is the number of syllable tokens.
	SyllableNum int `json:"syllable_num"`

	// NormalizedText is the transcript after locale normalization.
	NormalizedText string `json:"normalized_text"`

	// Syllables is the space-joined syllable token stream. Non-CJK tokens
	// are hyphen-joined phoneme sequences; CJK tokens are single characters.
	Syllables string `json:"syllables"`
}

// Orchestrator converts raw mixed-script text into a syllable stream. CJK
// runs are syllabified per character; everything else goes through
// grapheme-to-phoneme conversion and the sonority tokenizer.
type Orchestrator struct {
	tokenizer syllable.Tokenizer
	g2p       GraphemeToPhoneme
	cjkNorm   TextNormalizer
	otherNorm TextNormalizer
	logger    *log.Logger
}

// NewOrchestrator wires the text pipeline from its collaborators. A nil
// logger falls back to the package default.
func NewOrchestrator(tok syllable.Tokenizer, g2p GraphemeToPhoneme, cjkNorm, otherNorm TextNormalizer, logger *log.Logger) *Orchestrator {
	if logger == nil {
		logger = log.Default()
	}
	return &Orchestrator{
		tokenizer: tok,
		g2p:       g2p,
		cjkNorm:   cjkNorm,
		otherNorm: otherNorm,
		logger:    logger,
	}
}

// TextToSyllables runs the end-to-end text pipeline: normalization dispatch,
// cleanup, script segmentation, and per-segment syllabification. Failures in
// a single segment are logged and the segment is dropped; the rest of the
// text still produces output.
func (o *Orchestrator) TextToSyllables(text string) SyllableInfo {
	normalized := o.normalize(text)
	clean := stripNonSpoken(normalized)

	var tokens []string
	for _, seg := range script.Split(clean) {
		if seg.Han {
			// Character-level syllabification: CJK characters are treated
			// as monosyllabic.
			for _, r := range seg.Text {
				tokens = append(tokens, string(r))
			}
			continue
		}

		phones, err := o.g2p.Convert(seg.Text)
		if err != nil {
			o.logger.Warn("Dropping segment: grapheme-to-phoneme failed",
				"segment", seg.Text, "err", err)
			continue
		}
		syls, err := o.tokenizer.Tokenize(phones)
		if err != nil {
			o.logger.Error("Dropping segment: syllabification failed",
				"segment", seg.Text, "err", err)
			continue
		}
		for _, syl := range syls {
			tokens = append(tokens, strings.Join(syl, "-"))
		}
	}

	return SyllableInfo{
		SyllableNum:    len(tokens),
		NormalizedText: normalized,
		Syllables:      strings.Join(tokens, " "),
	}
}

// normalize expands digits through the locale normalizer. Text without
// digits is passed through untouched. Any CJK character routes the whole
// text through the CJK normalizer; this is a heuristic, not language
// detection.
func (o *Orchestrator) normalize(text string) string {
	if !strings.ContainsFunc(text, unicode.IsDigit) {
		return text
	}

	norm := o.otherNorm
	if script.ContainsHan(text) {
		norm = o.cjkNorm
	}
	normalized, err := norm.Normalize(text)
	if err != nil {
		o.logger.Warn("Text normalization failed, using raw text", "err", err)
		return text
	}
	return normalized
}

// stripNonSpoken removes characters that are neither word characters,
// whitespace, nor CJK ideographs.
func stripNonSpoken(text string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case unicode.IsLetter(r), unicode.IsDigit(r), r == '_':
			return r
		case unicode.IsSpace(r):
			return r
		case script.IsHan(r):
			return r
		default:
			return -1
		}
	}, text)
}
