package audio

import (
	"errors"
	"fmt"
	"math"
	"os"

	"github.com/go-audio/wav"
)

// Loader errors.
var (
	ErrNotWAV      = errors.New("file is not a decodable WAV")
	ErrEmptyAudio  = errors.New("audio file holds no samples")
	ErrBadWAVShape = errors.New("WAV buffer has no format or channels")
)

// Loader reads WAV files into mono float64 sample buffers in [-1, 1].
type Loader struct{}

// NewLoader creates a WAV file loader.
func NewLoader() *Loader { return &Loader{} }

// Load decodes the WAV file at path, mixes it down to mono, resamples to
// sampleRate when the file rate differs, and peak-normalizes the volume when
// normalizeVolume is set.
func (l *Loader) Load(path string, sampleRate int, normalizeVolume bool) ([]float64, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("unable to open audio file: %w", err)
	}
	defer f.Close() //nolint:errcheck

	d := wav.NewDecoder(f)
	buf, err := d.FullPCMBuffer()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNotWAV, err)
	}
	if buf == nil || buf.Format == nil || buf.Format.NumChannels <= 0 {
		return nil, ErrBadWAVShape
	}
	if len(buf.Data) == 0 {
		return nil, ErrEmptyAudio
	}

	samples := mixdown(buf.Data, buf.Format.NumChannels, buf.SourceBitDepth)
	if buf.Format.SampleRate != sampleRate {
		samples = resample(samples, buf.Format.SampleRate, sampleRate)
	}
	if normalizeVolume {
		peakNormalize(samples)
	}
	return samples, nil
}

// mixdown averages interleaved integer channels into mono floats scaled by
// the source bit depth.
func mixdown(data []int, channels, bitDepth int) []float64 {
	if bitDepth <= 0 {
		bitDepth = 16
	}
	scale := float64(int64(1) << (bitDepth - 1))

	frames := len(data) / channels
	out := make([]float64, frames)
	for i := 0; i < frames; i++ {
		sum := 0.0
		for c := 0; c < channels; c++ {
			sum += float64(data[i*channels+c])
		}
		out[i] = sum / float64(channels) / scale
	}
	return out
}

// resample converts samples from one rate to another by linear
// interpolation. Good enough for duration, energy, and F0 statistics; this
// is not a band-limited converter.
func resample(samples []float64, from, to int) []float64 {
	if from == to || len(samples) == 0 {
		return samples
	}
	ratio := float64(from) / float64(to)
	n := int(math.Round(float64(len(samples)) / ratio))
	if n <= 0 {
		return nil
	}
	out := make([]float64, n)
	for i := range out {
		pos := float64(i) * ratio
		j := int(pos)
		if j >= len(samples)-1 {
			out[i] = samples[len(samples)-1]
			continue
		}
		frac := pos - float64(j)
		out[i] = samples[j]*(1-frac) + samples[j+1]*frac
	}
	return out
}

// peakNormalize scales samples in place so the peak magnitude is 1.0.
// Silent buffers are left untouched.
func peakNormalize(samples []float64) {
	peak := 0.0
	for _, s := range samples {
		if a := math.Abs(s); a > peak {
			peak = a
		}
	}
	if peak == 0 {
		return
	}
	for i := range samples {
		samples[i] /= peak
	}
}
