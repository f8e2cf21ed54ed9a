package app

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/vk/gridlabelgo/internal/ctxlog"
	"github.com/vk/gridlabelgo/internal/export"
	"github.com/vk/gridlabelgo/internal/fsutil"
	"github.com/vk/gridlabelgo/internal/icons"
	"github.com/vk/gridlabelgo/internal/record"
	"github.com/vk/gridlabelgo/internal/render"
)

// Run drives every record reachable from the configured parts path through
// the pipeline, sequentially. Per-record failures are logged and skipped so
// one bad row never aborts the batch; only startup problems (unreadable
// input, missing columns, unwritable output directory) return an error.
func (a *App) Run(ctx context.Context, cfg *Config) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	files, err := partsFiles(cfg.PartsPath)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		a.logger.Warn("No parts files found, nothing to do.", "path", cfg.PartsPath)
		return nil
	}

	var records []record.Record
	for _, file := range files {
		recs, err := record.ParseFile(file)
		if err != nil {
			return err
		}
		a.logger.Debug("Parts file loaded.", "path", file, "records", len(recs))
		records = append(records, recs...)
	}
	a.logger.Info("Parts loaded.", "files", len(files), "records", len(records))

	if err := os.MkdirAll(cfg.OutputDir, 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	generated, failed := 0, 0
	for _, rec := range records {
		if err := a.processRecord(ctx, rec, cfg); err != nil {
			a.logger.Error("Record failed, continuing batch.", "name", rec.Name, "error", err)
			failed++
			continue
		}
		generated++
	}

	a.logger.Info("Batch finished.", "generated", generated, "failed", failed)
	return nil
}

// processRecord flows one record through resolve, compose, generate,
// render and export. Any error is fatal for this record only.
func (a *App) processRecord(ctx context.Context, rec record.Record, cfg *Config) error {
	if rec.Name == "" {
		return fmt.Errorf("record has no name")
	}

	top, err := a.registry.Resolve(icons.SlotTop, rec.TopSymbol)
	if err != nil {
		return err
	}
	side, err := a.registry.Resolve(icons.SlotSide, rec.SideSymbol)
	if err != nil {
		return err
	}
	icon := icons.Compose(top, side, a.split)

	code, err := a.generator.Generate(ctx, rec.ReorderURL, cfg.QRMode)
	if err != nil {
		return err
	}

	doc, err := a.template.Render(render.Values{
		WidthMM:     a.profile.WidthMM,
		HeightMM:    a.profile.HeightMM,
		Name:        rec.Name,
		Description: rec.Description,
		IconSVG:     icon,
		CodeSVG:     code.Fragment,
		CodeSizeMM:  code.SizeMM,
	})
	if err != nil {
		return err
	}

	path := filepath.Join(cfg.OutputDir, export.Filename(rec.Name, rec.Description, cfg.Format))
	if err := a.exporter.Export(doc, cfg.Format, path); err != nil {
		return err
	}

	a.logger.Debug("Label written.", "name", rec.Name, "path", path)
	return nil
}

// partsFiles resolves the parts path to the ordered list of spreadsheet
// files to process: the path itself when it is a file, or every .csv/.tsv
// under it when it is a directory.
func partsFiles(path string) ([]string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read parts path: %w", err)
	}
	if info.IsDir() {
		return fsutil.FindFilesByExtensions(path, ".csv", ".tsv")
	}
	return []string{path}, nil
}
