package audio

import "testing"

func TestTrim(t *testing.T) {
	const rate = 16000
	trimmer := NewTrimmer(40)

	// 0.2s silence, 1s tone, 0.2s silence; block edges align to 10ms frames.
	lead := make([]float64, rate/5)
	tail := make([]float64, rate/5)
	speech := make([]float64, rate)
	for i := range speech {
		speech[i] = 0.5
	}
	samples := append(append(append([]float64{}, lead...), speech...), tail...)

	got := trimmer.Trim(samples, rate)
	if len(got) != len(speech) {
		t.Errorf("trimmed length = %d, want %d", len(got), len(speech))
	}
	if len(got) > 0 && (got[0] != 0.5 || got[len(got)-1] != 0.5) {
		t.Error("trimmed buffer should start and end inside the speech block")
	}
}

func TestTrimAllSilence(t *testing.T) {
	trimmer := NewTrimmer(40)
	got := trimmer.Trim(make([]float64, 16000), 16000)
	if len(got) != 0 {
		t.Errorf("trimming silence left %d samples, want 0", len(got))
	}
}

func TestTrimEmpty(t *testing.T) {
	trimmer := NewTrimmer(40)
	if got := trimmer.Trim(nil, 16000); len(got) != 0 {
		t.Errorf("Trim(nil) returned %d samples", len(got))
	}
}

func TestTrimKeepsLoudEverything(t *testing.T) {
	const rate = 16000
	trimmer := NewTrimmer(40)

	samples := sine(220, rate, 0.5, 0.8)
	got := trimmer.Trim(samples, rate)
	// A uniformly loud signal should survive (nearly) whole; allow edge
	// frames where the sine crosses zero.
	if len(got) < len(samples)-2*rate/100 {
		t.Errorf("trimmed length = %d, want close to %d", len(got), len(samples))
	}
}
