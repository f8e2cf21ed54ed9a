package app

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/vk/gridlabelgo/internal/config"
	"github.com/vk/gridlabelgo/internal/export"
	"github.com/vk/gridlabelgo/internal/icons"
	"github.com/vk/gridlabelgo/internal/qr"
	"github.com/vk/gridlabelgo/internal/render"
	"github.com/vk/gridlabelgo/internal/shorten"
)

// App encapsulates the label pipeline: the icon registry, code generator,
// template and exporter, all configured from one resolved profile.
type App struct {
	outW      io.Writer
	logger    *slog.Logger
	profile   config.Profile
	registry  *icons.Registry
	split     icons.SplitPolicy
	template  *render.Template
	generator *qr.Generator
	exporter  *export.Exporter
	shortener *shorten.Client
}

// NewApp is the constructor for the main application. It returns a fully
// initialized App instance with its own isolated logger. An unreadable
// profile or template is a fatal startup error and panics; the entrypoint
// recovers it into a clean exit message.
func NewApp(outW io.Writer, cfg *Config) *App {
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, outW)
	logger.Debug("Logger configured successfully.")

	profile := config.Default()
	if cfg.ProfilePath != "" {
		var err error
		profile, err = config.Load(cfg.ProfilePath)
		if err != nil {
			panic(fmt.Errorf("failed to load label profile: %w", err))
		}
	}
	logger.Debug("Label profile resolved.",
		"width_mm", profile.WidthMM, "height_mm", profile.HeightMM, "density", profile.Density)

	template := render.NewDefault()
	if cfg.TemplatePath != "" {
		var err error
		template, err = render.LoadFile(cfg.TemplatePath)
		if err != nil {
			panic(fmt.Errorf("failed to load label template: %w", err))
		}
	}

	// The shortener is only consulted for URL payloads over compact
	// capacity; constructing it is free of network activity.
	shortener := shorten.New(profile.ShortenerEndpoint, profile.ShortenerTimeout)

	registry := icons.NewRegistry()
	logger.Debug("Icon registries populated.",
		"top_tokens", len(registry.Tokens(icons.SlotTop)),
		"side_tokens", len(registry.Tokens(icons.SlotSide)))

	return &App{
		outW:      outW,
		logger:    logger,
		profile:   profile,
		registry:  registry,
		split:     icons.SplitPolicy{Scale: profile.SplitScale, SideOffset: profile.SplitSideOffset},
		template:  template,
		generator: qr.New(profile.HeightMM, shortener),
		exporter:  export.New(profile.WidthMM, profile.HeightMM, profile.Density),
		shortener: shortener,
	}
}

// Close releases the shortener's HTTP client resources.
func (a *App) Close() error {
	return a.shortener.Close()
}

// Registry returns the application's icon registry. This is primarily for
// testing.
func (a *App) Registry() *icons.Registry {
	return a.registry
}
