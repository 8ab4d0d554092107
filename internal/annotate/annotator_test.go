package annotate

import (
	"errors"
	"math"
	"testing"
)

type fakeLoader struct {
	samples []float64
	err     error
}

func (f *fakeLoader) Load(string, int, bool) ([]float64, error) {
	return f.samples, f.err
}

// fakeTrimmer keeps the first keep samples.
type fakeTrimmer struct {
	keep int
}

func (f *fakeTrimmer) Trim(samples []float64, _ int) []float64 {
	if f.keep > len(samples) {
		return samples
	}
	return samples[:f.keep]
}

type fakePitch struct {
	mean, std float64
}

func (f *fakePitch) Estimate([]float64, int) (float64, float64) {
	return f.mean, f.std
}

func TestAnnotate(t *testing.T) {
	const rate = 16000
	cfg := DefaultConfig()
	cfg.SampleRate = rate

	orch := newTestOrchestrator(testG2P(), &fakeNormalizer{}, &fakeNormalizer{})
	ann := NewAnnotator(cfg,
		&fakeLoader{samples: make([]float64, 4*rate)},
		&fakeTrimmer{keep: 2 * rate},
		&fakePitch{mean: 210.5, std: 0.08},
		orch, nil)

	// Ten CJK characters -> ten syllables over 2.0s of speech -> speed 5.0.
	got, err := ann.Annotate("utt.wav", "你好世界你好世界你好")
	if err != nil {
		t.Fatalf("Annotate returned error: %v", err)
	}

	if got.Duration != 4.0 {
		t.Errorf("Duration = %v, want 4.0", got.Duration)
	}
	if got.SpeechDuration != 2.0 {
		t.Errorf("SpeechDuration = %v, want 2.0", got.SpeechDuration)
	}
	if got.SyllableNum != 10 {
		t.Errorf("SyllableNum = %d, want 10", got.SyllableNum)
	}
	if math.Abs(got.Speed-5.0) > 1e-9 {
		t.Errorf("Speed = %v, want 5.0", got.Speed)
	}
	if got.Pitch != 210.5 || got.PitchStd != 0.08 {
		t.Errorf("pitch stats = (%v, %v), want (210.5, 0.08)", got.Pitch, got.PitchStd)
	}
	if got.Text != "你好世界你好世界你好" {
		t.Errorf("Text = %q, want the original transcript", got.Text)
	}
}

func TestAnnotateNoSpeech(t *testing.T) {
	cfg := DefaultConfig()
	orch := newTestOrchestrator(testG2P(), &fakeNormalizer{}, &fakeNormalizer{})
	ann := NewAnnotator(cfg,
		&fakeLoader{samples: make([]float64, cfg.SampleRate)},
		&fakeTrimmer{keep: 0},
		&fakePitch{}, orch, nil)

	_, err := ann.Annotate("silent.wav", "hello")
	if !errors.Is(err, ErrNoSpeech) {
		t.Errorf("expected ErrNoSpeech, got %v", err)
	}
}

func TestAnnotateEmptyText(t *testing.T) {
	cfg := DefaultConfig()
	orch := newTestOrchestrator(testG2P(), &fakeNormalizer{}, &fakeNormalizer{})
	ann := NewAnnotator(cfg,
		&fakeLoader{samples: make([]float64, cfg.SampleRate)},
		&fakeTrimmer{keep: cfg.SampleRate},
		&fakePitch{}, orch, nil)

	_, err := ann.Annotate("utt.wav", "   ")
	if !errors.Is(err, ErrEmptyText) {
		t.Errorf("expected ErrEmptyText, got %v", err)
	}
}

func TestAnnotateLoaderError(t *testing.T) {
	cfg := DefaultConfig()
	orch := newTestOrchestrator(testG2P(), &fakeNormalizer{}, &fakeNormalizer{})
	loadErr := errors.New("file vanished")
	ann := NewAnnotator(cfg, &fakeLoader{err: loadErr},
		&fakeTrimmer{}, &fakePitch{}, orch, nil)

	_, err := ann.Annotate("gone.wav", "hello")
	if !errors.Is(err, loadErr) {
		t.Errorf("expected wrapped loader error, got %v", err)
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults are valid", func(*Config) {}, false},
		{"sample rate too low", func(c *Config) { c.SampleRate = 4000 }, true},
		{"zero workers", func(c *Config) { c.Workers = 0 }, true},
		{"negative trim threshold", func(c *Config) { c.TrimThresholdDB = -3 }, true},
		{"zero cache size", func(c *Config) { c.CacheMaxSizeMB = 0 }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr && err == nil {
				t.Error("expected a validation error")
			}
			if !tt.wantErr && err != nil {
				t.Errorf("unexpected validation error: %v", err)
			}
			if tt.wantErr && !errors.Is(err, ErrInvalidConfig) {
				if err != nil {
					t.Errorf("error should wrap ErrInvalidConfig, got %v", err)
				}
			}
		})
	}
}
