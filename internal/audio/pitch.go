package audio

import (
	"math"

	"gonum.org/v1/gonum/stat"
)

// Estimator computes fundamental-frequency statistics with a frame-based
// normalized autocorrelation search: 5 ms hop, 30 ms window, F0 candidates
// between MinHz and MaxHz. Frames outside that band or with weak
// periodicity are treated as unvoiced.
type Estimator struct {
	MinHz float64
	MaxHz float64

	// Voicing is the minimum normalized autocorrelation for a frame to
	// count as voiced.
	Voicing float64
}

// NewEstimator creates an estimator with the standard speech F0 band.
func NewEstimator() *Estimator {
	return &Estimator{MinHz: 50, MaxHz: 2400, Voicing: 0.5}
}

// Estimate returns the mean F0 over voiced frames and the population
// standard deviation of the min-max normalized voiced pitch track. When no
// voiced frames exist it returns the (0, 0) sentinel.
func (e *Estimator) Estimate(samples []float64, sampleRate int) (mean, std float64) {
	hop := sampleRate * 5 / 1000
	if hop < 1 {
		hop = 1
	}
	win := hop * 6

	var voiced []float64
	for start := 0; start+win <= len(samples); start += hop {
		if f0 := e.frameF0(samples[start:start+win], sampleRate); f0 > 0 {
			voiced = append(voiced, f0)
		}
	}
	if len(voiced) == 0 {
		return 0, 0
	}

	mean = stat.Mean(voiced, nil)
	std = stat.PopStdDev(normalizePitch(voiced), nil)
	return mean, std
}

// frameF0 estimates one frame's F0, or 0 when the frame is unvoiced.
func (e *Estimator) frameF0(frame []float64, sampleRate int) float64 {
	n := len(frame)

	// Remove DC offset.
	mu := stat.Mean(frame, nil)
	x := make([]float64, n)
	for i, s := range frame {
		x[i] = s - mu
	}
	if rms(x) < 1e-4 {
		return 0
	}

	minLag := int(math.Ceil(float64(sampleRate) / e.MaxHz))
	if minLag < 2 {
		minLag = 2
	}
	maxLag := int(float64(sampleRate) / e.MinHz)
	if maxLag >= n {
		maxLag = n - 1
	}
	if minLag > maxLag {
		return 0
	}

	// Normalized cross-correlation per candidate lag.
	scores := make([]float64, maxLag+2)
	best, bestLag := 0.0, 0
	for lag := minLag; lag <= maxLag; lag++ {
		var dot, e1, e2 float64
		for i := 0; i < n-lag; i++ {
			dot += x[i] * x[i+lag]
			e1 += x[i] * x[i]
			e2 += x[i+lag] * x[i+lag]
		}
		if e1 == 0 || e2 == 0 {
			continue
		}
		scores[lag] = dot / math.Sqrt(e1*e2)
		if scores[lag] > best {
			best, bestLag = scores[lag], lag
		}
	}
	if best < e.Voicing {
		return 0
	}

	// Prefer the shortest correlation peak close to the global maximum so
	// subharmonics do not pull the estimate an octave down.
	lag := bestLag
	for l := minLag + 1; l < bestLag; l++ {
		if scores[l] >= 0.9*best && scores[l] > scores[l-1] && scores[l] >= scores[l+1] {
			lag = l
			break
		}
	}

	f0 := float64(sampleRate) / float64(lag)
	if f0 < e.MinHz || f0 > e.MaxHz {
		return 0
	}
	return f0
}

// normalizePitch min-max scales the voiced pitch track. Degenerate tracks
// (constant, or zero maximum) are returned unchanged.
func normalizePitch(pitch []float64) []float64 {
	minP, maxP := pitch[0], pitch[0]
	for _, p := range pitch {
		if p < minP {
			minP = p
		}
		if p > maxP {
			maxP = p
		}
	}
	if maxP == minP || maxP == 0 {
		return pitch
	}
	out := make([]float64, len(pitch))
	for i, p := range pitch {
		out[i] = (p - minP) / (maxP - minP)
	}
	return out
}
