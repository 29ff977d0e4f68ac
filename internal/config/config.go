// Package config handles tool configuration loading and defaults.
package config

// Config holds all meshsample settings.
type Config struct {
	Sampling SamplingConfig `yaml:"sampling"`
	Filter   FilterConfig   `yaml:"filter"`
	Output   OutputConfig   `yaml:"output"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// SamplingConfig holds sampler settings.
type SamplingConfig struct {
	Count int   `yaml:"count"` // Target number of points
	Seed  int64 `yaml:"seed"`  // 0 means time-seeded
	// AttemptFactor bounds the accept/reject loop at
	// AttemptFactor x Count draws when a filter is active.
	AttemptFactor int    `yaml:"attempt_factor"`
	WeightAxis    string `yaml:"weight_axis"` // "", "x", "y", "z", "-x", ...
}

// FilterConfig holds directional filter settings.
type FilterConfig struct {
	Enabled bool    `yaml:"enabled"`
	Axis    string  `yaml:"axis"`    // "x", "y", "z", "-x", ...
	MinDot  float64 `yaml:"min_dot"` // 0 keeps the full hemisphere
}

// OutputConfig holds output settings.
type OutputConfig struct {
	Format string `yaml:"format"` // ply, xyz or csv
	Path   string `yaml:"path"`   // empty derives from the input name
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Sampling: SamplingConfig{
			Count:         10000,
			Seed:          0,
			AttemptFactor: 20,
		},
		Filter: FilterConfig{
			Enabled: false,
			Axis:    "z",
			MinDot:  0,
		},
		Output: OutputConfig{
			Format: "ply",
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}
