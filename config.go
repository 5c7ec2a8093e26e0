package perudoc

import (
	"fmt"
	"log/slog"

	"github.com/dmitrymomot/perudoc/pkg/config"
	"github.com/dmitrymomot/perudoc/pkg/logger"
)

// Config holds the regulatory tables a deployment may override through the
// environment (or a .env file).
type Config struct {
	RUCPrefixes []string `env:"PERUDOC_RUC_PREFIXES" envSeparator:"," envDefault:"10,15,16,17,20"`
	CEMinLength int      `env:"PERUDOC_CE_MIN_LENGTH" envDefault:"9"`
	CEMaxLength int      `env:"PERUDOC_CE_MAX_LENGTH" envDefault:"12"`
	LogLevel    string   `env:"PERUDOC_LOG_LEVEL" envDefault:"info"`
	Env         string   `env:"PERUDOC_ENV" envDefault:"development"`
}

// LoadConfig reads Config from the environment. The result is cached per process.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := config.Load(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Options converts the config into Validator options. A nil logger leaves
// rejection logging off.
func (c Config) Options(l *slog.Logger) []Option {
	return []Option{
		WithRUCPrefixes(c.RUCPrefixes...),
		WithCELength(c.CEMinLength, c.CEMaxLength),
		WithLogger(l),
	}
}

// NewLogger builds the logger described by LogLevel and Env.
// Extra options, such as logger.WithOutput, are applied last.
func (c Config) NewLogger(opts ...logger.Option) (*slog.Logger, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return nil, fmt.Errorf("%w: log level %q", ErrInvalidConfig, c.LogLevel)
	}
	base := []logger.Option{
		logger.WithEnvironment(c.Env, "perudoc"),
		logger.WithLevel(level),
	}
	return logger.New(append(base, opts...)...), nil
}

// NewFromConfig builds a Validator from cfg with its configured logger.
// Extra options are applied last.
func NewFromConfig(cfg Config, opts ...Option) (*Validator, error) {
	l, err := cfg.NewLogger()
	if err != nil {
		return nil, err
	}
	return New(append(cfg.Options(l), opts...)...)
}
