package annotate

// AudioLoader reads an audio file and returns mono samples in [-1, 1] at the
// requested sample rate.
type AudioLoader interface {
	// Load decodes the file at path, resampling to sampleRate if needed and
	// peak-normalizing the volume when normalizeVolume is set.
	Load(path string, sampleRate int, normalizeVolume bool) ([]float64, error)
}

// SilenceTrimmer removes leading and trailing silence from a sample buffer.
type SilenceTrimmer interface {
	Trim(samples []float64, sampleRate int) []float64
}

// PitchEstimator computes pitch statistics over a sample buffer.
type PitchEstimator interface {
	// Estimate returns the mean F0 over voiced frames and the standard
	// deviation of the min-max normalized voiced pitch track. It returns
	// (0, 0) when no voiced frames are found; that is a sentinel, not an
	// error.
	Estimate(samples []float64, sampleRate int) (mean, std float64)
}

// TextNormalizer expands digits and similar non-spoken forms into words for
// one locale.
type TextNormalizer interface {
	Normalize(text string) (string, error)
}

// GraphemeToPhoneme converts written text into a flat sequence of phoneme
// symbols.
type GraphemeToPhoneme interface {
	Convert(text string) ([]string, error)
}
