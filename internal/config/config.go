package config

import "time"

// Config is the root application configuration.
type Config struct {
	Database   DatabaseConfig   `yaml:"database"`
	Translator TranslatorConfig `yaml:"translator"`
	Log        LogConfig        `yaml:"log"`
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"                env-required:"true"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"25"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"5"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
}

// TranslatorConfig holds resolution-pipeline settings.
type TranslatorConfig struct {
	// FuzzyThreshold is the minimum similarity for a fuzzy match, in (0,1].
	FuzzyThreshold float64 `yaml:"fuzzy_threshold" env:"TRANSLATOR_FUZZY_THRESHOLD" env-default:"0.8"`

	// FeedbackPath is the JSON file the adaptive feedback cache persists to.
	FeedbackPath string `yaml:"feedback_path" env:"TRANSLATOR_FEEDBACK_PATH" env-default:"./feedback_data.json"`

	// ReferencePhrasesPath optionally points to a YAML file with reference
	// phrases for the fuzzy matcher. Empty means the embedded defaults.
	ReferencePhrasesPath string `yaml:"reference_phrases_path" env:"TRANSLATOR_REFERENCE_PHRASES_PATH"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}
