package annotate

import "errors"

// Common errors for the annotation pipeline.
var (
	// ErrNoSpeech is returned when silence trimming leaves no audio, which
	// would make the speaking-rate division undefined. The caller should
	// skip or flag the utterance rather than abort a batch.
	ErrNoSpeech = errors.New("no speech left after silence trimming")

	// ErrEmptyText is returned when an utterance has no transcript.
	ErrEmptyText = errors.New("empty transcript text")

	// ErrInvalidConfig is returned when configuration validation fails.
	ErrInvalidConfig = errors.New("invalid annotation configuration")
)
