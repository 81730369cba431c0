package main

import (
	"errors"
	"log/slog"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	symbolgen "github.com/yeetcard/symbolgen"
)

// ErrParsingConfig is returned when environment variables cannot be parsed.
var ErrParsingConfig = errors.New("failed to parse environment variables into config")

// Config holds the defaults used when a flag is not given.
type Config struct {
	Width     int        `env:"BARCODEGEN_WIDTH" envDefault:"300"`
	Height    int        `env:"BARCODEGEN_HEIGHT" envDefault:"300"`
	BarHeight int        `env:"BARCODEGEN_BAR_HEIGHT" envDefault:"80"`
	LogLevel  slog.Level `env:"BARCODEGEN_LOG_LEVEL" envDefault:"info"`
}

// loadConfig reads an optional .env file, then the environment.
func loadConfig() (Config, error) {
	// The .env file is optional.
	_ = godotenv.Load()

	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return Config{}, errors.Join(ErrParsingConfig, err)
	}
	if cfg.Width <= 0 {
		cfg.Width = symbolgen.DefaultSize
	}
	if cfg.Height <= 0 {
		cfg.Height = symbolgen.DefaultSize
	}
	if cfg.BarHeight <= 0 {
		cfg.BarHeight = symbolgen.DefaultBarHeight
	}
	return cfg, nil
}
