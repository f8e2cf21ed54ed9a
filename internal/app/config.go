package app

import (
	"errors"
	"log/slog"

	"github.com/vk/gridlabelgo/internal/export"
	"github.com/vk/gridlabelgo/internal/qr"
)

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	PartsPath    string // csv/tsv file, or a directory of them
	TemplatePath string // empty selects the built-in template
	ProfilePath  string // empty selects the compiled defaults
	OutputDir    string

	Format export.Format
	QRMode qr.Mode

	LogFormat string
	LogLevel  slog.Level
}

// NewConfig validates a Config and returns it ready for NewApp.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.PartsPath == "" {
		return nil, errors.New("PartsPath is a required configuration field and cannot be empty")
	}
	if cfg.OutputDir == "" {
		return nil, errors.New("OutputDir is a required configuration field and cannot be empty")
	}
	return &cfg, nil
}
