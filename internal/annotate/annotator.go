package annotate

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/log"
)

// Annotation is the flat per-utterance record consumed by downstream
// training pipelines. The field set is a stable schema.
type Annotation struct {
	Pitch          float64 `json:"pitch"`
	PitchStd       float64 `json:"pitch_std"`
	Speed          float64 `json:"speed"`
	Duration       float64 `json:"duration"`
	SpeechDuration float64 `json:"speech_duration"`
	SyllableNum    int     `json:"syllable_num"`
	Text           string  `json:"text"`
	NormalizedText string  `json:"normalized_text"`
	Syllables      string  `json:"syllables"`
}

// Annotator combines acoustic statistics with the orchestrator's syllable
// stream into one annotation record per utterance.
type Annotator struct {
	loader       AudioLoader
	trimmer      SilenceTrimmer
	pitch        PitchEstimator
	orchestrator *Orchestrator

	sampleRate      int
	normalizeVolume bool
	logger          *log.Logger
}

// NewAnnotator builds an annotator from its collaborators. A nil logger
// falls back to the package default.
func NewAnnotator(cfg Config, loader AudioLoader, trimmer SilenceTrimmer, pitch PitchEstimator, orch *Orchestrator, logger *log.Logger) *Annotator {
	if logger == nil {
		logger = log.Default()
	}
	return &Annotator{
		loader:          loader,
		trimmer:         trimmer,
		pitch:           pitch,
		orchestrator:    orch,
		sampleRate:      cfg.SampleRate,
		normalizeVolume: cfg.NormalizeVolume,
		logger:          logger,
	}
}

// Annotate processes one utterance: the audio file at audioPath plus its
// transcript. It fails with ErrNoSpeech when silence trimming consumes the
// whole signal, since the speaking rate would be undefined.
func (a *Annotator) Annotate(audioPath, text string) (*Annotation, error) {
	if strings.TrimSpace(text) == "" {
		return nil, fmt.Errorf("%w: %s", ErrEmptyText, audioPath)
	}

	samples, err := a.loader.Load(audioPath, a.sampleRate, a.normalizeVolume)
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", audioPath, err)
	}
	duration := float64(len(samples)) / float64(a.sampleRate)

	speech := a.trimmer.Trim(samples, a.sampleRate)
	speechDuration := float64(len(speech)) / float64(a.sampleRate)
	if speechDuration == 0 {
		return nil, fmt.Errorf("%w: %s", ErrNoSpeech, audioPath)
	}

	pitchMean, pitchStd := a.pitch.Estimate(speech, a.sampleRate)

	info := a.orchestrator.TextToSyllables(text)

	return &Annotation{
		Pitch:          pitchMean,
		PitchStd:       pitchStd,
		Speed:          float64(info.SyllableNum) / speechDuration,
		Duration:       duration,
		SpeechDuration: speechDuration,
		SyllableNum:    info.SyllableNum,
		Text:           text,
		NormalizedText: info.NormalizedText,
		Syllables:      info.Syllables,
	}, nil
}
