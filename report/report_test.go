package report_test

import (
	"bytes"
	"encoding/csv"
	"image/png"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/corrmap/config"
	"github.com/katalvlaran/corrmap/dataset"
	"github.com/katalvlaran/corrmap/report"
)

func TestRun_EndToEnd(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	cfg := config.Default()
	cfg.Output = filepath.Join(dir, "chart.png")
	cfg.CSV = filepath.Join(dir, "customers.csv")

	var logs bytes.Buffer
	res, err := report.Run(cfg, slog.New(slog.NewTextHandler(&logs, nil)))
	require.NoError(t, err)

	require.Equal(t, 250, res.Dataset.Len())
	require.False(t, res.Table.Insufficient)
	assert.Greater(t, res.Table.Pair(dataset.EmailOpenRate, dataset.ClickThroughRate), 0.0)
	assert.NotEmpty(t, res.RunID)
	for _, s := range []string{report.StageGenerate, report.StageCorrelate, report.StageRender, report.StageWrite} {
		assert.Contains(t, res.Elapsed, s)
	}

	f, err := os.Open(cfg.Output)
	require.NoError(t, err)
	defer f.Close()
	pc, err := png.DecodeConfig(f)
	require.NoError(t, err)
	assert.Equal(t, 512, pc.Width)
	assert.Equal(t, 512, pc.Height)

	raw, err := os.ReadFile(cfg.CSV)
	require.NoError(t, err)
	rows, err := csv.NewReader(bytes.NewReader(raw)).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 251)
	assert.Equal(t, dataset.Labels(), rows[0])

	assert.Contains(t, logs.String(), "run_id="+res.RunID)
	assert.Contains(t, logs.String(), "stage=write")
	assert.NotContains(t, logs.String(), "level=WARN")
}

func TestRun_EmptyDatasetWarns(t *testing.T) {
	t.Parallel()

	cfg := config.Default()
	cfg.Customers = 0
	cfg.Output = filepath.Join(t.TempDir(), "empty.png")

	var logs bytes.Buffer
	res, err := report.Run(cfg, slog.New(slog.NewTextHandler(&logs, nil)))
	require.NoError(t, err)
	assert.Equal(t, 0, res.Dataset.Len())
	assert.True(t, res.Table.Insufficient)
	assert.Contains(t, logs.String(), "level=WARN")
	assert.FileExists(t, cfg.Output)
}

func TestRun_DegenerateFieldWarns(t *testing.T) {
	t.Parallel()

	cfg := config.Default()
	cfg.Output = filepath.Join(t.TempDir(), "flat.png")
	cfg.Model.Session.Sigma = 0

	var logs bytes.Buffer
	res, err := report.Run(cfg, slog.New(slog.NewTextHandler(&logs, nil)))
	require.NoError(t, err)
	assert.Equal(t, []dataset.Field{dataset.AvgSessionDuration}, res.Table.Degenerate())
	assert.Contains(t, logs.String(), "Avg_Session_Duration_min")
}

func TestRun_WidenedModelBounds(t *testing.T) {
	t.Parallel()

	cfg := config.Default()
	cfg.Output = filepath.Join(t.TempDir(), "wide.png")
	cfg.Model.Session.Mean = 50
	cfg.Model.Session.Bounds = dataset.Bounds{Min: 0, Max: 120}

	res, err := report.Run(cfg, nil)
	require.NoError(t, err)
	require.NoError(t, res.Dataset.CheckWithin(cfg.Model.Domains()))
	// the documented 1..30 range no longer holds, and that is not an error
	require.ErrorIs(t, res.Dataset.CheckBounds(), dataset.ErrOutOfBounds)
}

func TestRun_Failures(t *testing.T) {
	t.Parallel()

	bad := config.Default()
	bad.DPI = -1
	_, err := report.Run(bad, nil)
	require.ErrorIs(t, err, config.ErrInvalidConfig)

	tiny := config.Default()
	tiny.SizeInches = 0.001
	tiny.Output = filepath.Join(t.TempDir(), "tiny.png")
	require.NotPanics(t, func() {
		_, err = report.Run(tiny, nil)
	})
	require.ErrorIs(t, err, config.ErrInvalidConfig)
	assert.NoFileExists(t, tiny.Output)

	dir := t.TempDir()
	missing := config.Default()
	missing.Output = filepath.Join(dir, "no", "such", "chart.png")
	_, err = report.Run(missing, nil)
	require.Error(t, err)
	assert.NoFileExists(t, missing.Output)
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}
