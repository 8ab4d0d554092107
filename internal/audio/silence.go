package audio

import "math"

// Trimmer removes leading and trailing silence by scanning frame energies.
// A frame counts as silence when its RMS sits more than thresholdDB below
// the loudest frame, so the cutoff adapts to the recording level.
type Trimmer struct {
	thresholdDB float64
}

// NewTrimmer creates a trimmer. thresholdDB must be positive; 40 is a
// reasonable default for clean corpus recordings.
func NewTrimmer(thresholdDB float64) *Trimmer {
	return &Trimmer{thresholdDB: thresholdDB}
}

// Trim returns the sub-slice of samples between the first and last
// non-silent frame. It returns an empty slice when the whole buffer is
// silent.
func (t *Trimmer) Trim(samples []float64, sampleRate int) []float64 {
	if len(samples) == 0 {
		return samples
	}

	// 10 ms frames.
	frame := sampleRate / 100
	if frame < 1 {
		frame = 1
	}

	nFrames := (len(samples) + frame - 1) / frame
	energies := make([]float64, nFrames)
	peak := 0.0
	for i := 0; i < nFrames; i++ {
		start := i * frame
		end := start + frame
		if end > len(samples) {
			end = len(samples)
		}
		energies[i] = rms(samples[start:end])
		if energies[i] > peak {
			peak = energies[i]
		}
	}
	if peak == 0 {
		return samples[:0]
	}

	threshold := peak * math.Pow(10, -t.thresholdDB/20)
	first, last := -1, -1
	for i, e := range energies {
		if e >= threshold {
			if first == -1 {
				first = i
			}
			last = i
		}
	}
	if first == -1 {
		return samples[:0]
	}

	end := (last + 1) * frame
	if end > len(samples) {
		end = len(samples)
	}
	return samples[first*frame : end]
}

func rms(samples []float64) float64 {
	if len(samples) == 0 {
		return 0
	}
	sum := 0.0
	for _, s := range samples {
		sum += s * s
	}
	return math.Sqrt(sum / float64(len(samples)))
}
