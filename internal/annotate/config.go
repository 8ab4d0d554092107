package annotate

import "fmt"

// Config contains all annotation pipeline options.
type Config struct {
	// Audio settings
	SampleRate      int  `yaml:"sample_rate" env:"ANNOTATE_SAMPLE_RATE" envDefault:"16000"`
	NormalizeVolume bool `yaml:"normalize_volume" env:"ANNOTATE_NORMALIZE_VOLUME" envDefault:"true"`

	// Silence trimming: frames this many dB below the peak frame are silence.
	TrimThresholdDB float64 `yaml:"trim_threshold_db" env:"ANNOTATE_TRIM_THRESHOLD_DB" envDefault:"40"`

	// Batch settings
	Workers int `yaml:"workers" env:"ANNOTATE_WORKERS" envDefault:"4"`

	// Phoneme cache settings
	CacheDir       string `yaml:"cache_dir" env:"ANNOTATE_CACHE_DIR"`
	CacheMaxSizeMB int    `yaml:"cache_max_size" env:"ANNOTATE_CACHE_MAX_SIZE" envDefault:"100"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		SampleRate:      16000,
		NormalizeVolume: true,
		TrimThresholdDB: 40,
		Workers:         4,
		CacheMaxSizeMB:  100,
	}
}

// Validate checks the configuration for invalid values.
func (c Config) Validate() error {
	if c.SampleRate < 8000 || c.SampleRate > 192000 {
		return fmt.Errorf("%w: sample_rate must be between 8000 and 192000, got %d",
			ErrInvalidConfig, c.SampleRate)
	}
	if c.TrimThresholdDB <= 0 {
		return fmt.Errorf("%w: trim_threshold_db must be positive, got %.1f",
			ErrInvalidConfig, c.TrimThresholdDB)
	}
	if c.Workers < 1 {
		return fmt.Errorf("%w: workers must be at least 1, got %d",
			ErrInvalidConfig, c.Workers)
	}
	if c.CacheMaxSizeMB < 1 {
		return fmt.Errorf("%w: cache_max_size must be at least 1 MB, got %d",
			ErrInvalidConfig, c.CacheMaxSizeMB)
	}
	return nil
}
