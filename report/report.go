// Package report runs the corrmap pipeline end to end: generate the
// engagement dataset, correlate it, lay out the heatmap and write the PNG.
package report

import (
	"fmt"
	"image"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/katalvlaran/corrmap/builder"
	"github.com/katalvlaran/corrmap/config"
	"github.com/katalvlaran/corrmap/correlation"
	"github.com/katalvlaran/corrmap/dataset"
	"github.com/katalvlaran/corrmap/heatmap"
	"github.com/katalvlaran/corrmap/imagefile"
)

// Stage names as they appear in logs.
const (
	StageGenerate  = "generate"
	StageCorrelate = "correlate"
	StageRender    = "render"
	StageWrite     = "write"
)

// Result describes a finished run.
type Result struct {
	RunID   string
	Dataset *dataset.Dataset
	Table   *correlation.Table
	Output  string
	CSV     string
	Elapsed map[string]time.Duration
}

// Run executes one batch. cfg must already be valid; logger may be nil.
// Degenerate statistics are logged, never returned as errors.
func Run(cfg config.Config, logger *slog.Logger) (*Result, error) {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	res := &Result{
		RunID:   uuid.New().String(),
		Output:  cfg.Output,
		CSV:     cfg.CSV,
		Elapsed: make(map[string]time.Duration, 4),
	}
	log := logger.With("run_id", res.RunID)
	log.Info("run started", "customers", cfg.Customers, "seed", cfg.Seed, "output", cfg.Output)

	stage := func(name string, fn func() error) error {
		start := time.Now()
		err := fn()
		d := time.Since(start)
		res.Elapsed[name] = d
		if err != nil {
			log.Error("stage failed", "stage", name, "duration_ms", d.Milliseconds(), "error", err)
			return fmt.Errorf("%s: %w", name, err)
		}
		log.Info("stage done", "stage", name, "duration_ms", d.Milliseconds())

		return nil
	}

	// Stage 1: synthetic dataset, checked against the model bounds
	// (+ optional CSV dump).
	err := stage(StageGenerate, func() error {
		ds, err := builder.Engagement(cfg.Customers,
			builder.WithSeed(cfg.Seed), builder.WithParams(cfg.Model))
		if err != nil {
			return err
		}
		if err = ds.CheckWithin(cfg.Model.Domains()); err != nil {
			return err
		}
		res.Dataset = ds
		if cfg.CSV != "" {
			return writeCSV(cfg.CSV, ds)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	// Stage 2: correlation table.
	if err = stage(StageCorrelate, func() error {
		t, err := correlation.Compute(res.Dataset)
		res.Table = t
		return err
	}); err != nil {
		return nil, err
	}
	warnDegenerate(log, res.Table)

	// Stage 3: lay out and rasterize the figure.
	var img *image.RGBA
	px := cfg.CanvasPixels()
	if err = stage(StageRender, func() error {
		fig, err := heatmap.New(res.Table,
			heatmap.WithTitle(cfg.Title),
			heatmap.WithCanvas(px, px),
			heatmap.WithDPI(cfg.DPI))
		if err != nil {
			return err
		}
		img, err = imagefile.Render(fig,
			imagefile.WithSize(cfg.SizeInches, cfg.SizeInches),
			imagefile.WithDPI(cfg.DPI))
		return err
	}); err != nil {
		return nil, err
	}

	// Stage 4: persist.
	if err = stage(StageWrite, func() error {
		return imagefile.WriteFile(cfg.Output, img)
	}); err != nil {
		return nil, err
	}

	log.Info("run finished", "output", cfg.Output, "pixels", px)

	return res, nil
}

func warnDegenerate(log *slog.Logger, t *correlation.Table) {
	if t.Insufficient {
		log.Warn("not enough observations for correlation; chart shows nan",
			"observations", t.Observations)
		return
	}
	if deg := t.Degenerate(); len(deg) > 0 {
		names := make([]string, len(deg))
		for i, f := range deg {
			names[i] = f.String()
		}
		log.Warn("zero-variance fields; their correlations are nan",
			"fields", strings.Join(names, ","))
	}
}

func writeCSV(path string, ds *dataset.Dataset) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("csv: %w", err)
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("csv: %w", cerr)
		}
		if err != nil {
			_ = os.Remove(path)
		}
	}()

	if err = ds.WriteCSV(f); err != nil {
		return fmt.Errorf("csv: %w", err)
	}

	return nil
}
