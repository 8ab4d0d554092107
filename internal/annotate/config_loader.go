package annotate

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/spf13/viper"
)

// LoadConfigFromEnv builds a Config from ANNOTATE_* environment variables,
// with the envDefault tags supplying defaults for unset variables.
func LoadConfigFromEnv() (Config, error) {
	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return cfg, fmt.Errorf("error parsing environment config: %w", err)
	}
	return cfg, nil
}

// LoadConfigFromViper loads annotation configuration: environment variables
// first, then Viper keys on top for values set in the config file or flags.
func LoadConfigFromViper() (Config, error) {
	cfg, err := LoadConfigFromEnv()
	if err != nil {
		return cfg, err
	}

	if viper.IsSet("annotate.sample_rate") {
		cfg.SampleRate = viper.GetInt("annotate.sample_rate")
	}
	if viper.IsSet("annotate.normalize_volume") {
		cfg.NormalizeVolume = viper.GetBool("annotate.normalize_volume")
	}
	if viper.IsSet("annotate.trim_threshold_db") {
		cfg.TrimThresholdDB = viper.GetFloat64("annotate.trim_threshold_db")
	}
	if viper.IsSet("annotate.workers") {
		cfg.Workers = viper.GetInt("annotate.workers")
	}
	if viper.IsSet("annotate.cache_dir") {
		cfg.CacheDir = viper.GetString("annotate.cache_dir")
	}
	if viper.IsSet("annotate.cache_max_size") {
		cfg.CacheMaxSizeMB = viper.GetInt("annotate.cache_max_size")
	}

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid annotation configuration: %w", err)
	}
	return cfg, nil
}
