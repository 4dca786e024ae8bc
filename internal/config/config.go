package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/joeshaw/envdecode"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

// Config is read from the environment, optionally seeded from .env files.
type Config struct {
	HTTPPort string `env:"HTTP_PORT,default=1337"`
	LogLevel string `env:"LOG_LEVEL,default=info"`

	SimRounds int   `env:"SKAT_SIM_ROUNDS,default=36"`
	SimTables int   `env:"SKAT_SIM_TABLES,default=4"`
	Seed      int64 `env:"SKAT_SEED,default=0"`
}

// Load reads files into the environment (missing files are skipped, set
// variables win) and decodes the result.
func Load(files ...string) (Config, error) {
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("loading %s: %w", f, err)
		}
	}
	var cfg Config
	if err := envdecode.Decode(&cfg); err != nil && !errors.Is(err, envdecode.ErrNoTargetFieldsAreSet) {
		return Config{}, fmt.Errorf("decoding environment: %w", err)
	}
	if cfg.SimRounds < 0 || cfg.SimTables < 1 {
		return Config{}, fmt.Errorf("invalid simulation size: %d rounds on %d tables", cfg.SimRounds, cfg.SimTables)
	}
	return cfg, nil
}

// Level parses LogLevel.
func (c Config) Level() (logrus.Level, error) {
	return logrus.ParseLevel(c.LogLevel)
}
