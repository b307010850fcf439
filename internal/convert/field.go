package convert

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/DjordjeVuckovic/irprep/internal/reader"
	"github.com/DjordjeVuckovic/irprep/internal/storage"
)

type FieldExtractConfig struct {
	InputPath  string
	OutputPath string
	FieldName  string
	PipelineConfig
}

// FieldExtractor writes the trimmed text value of one field of every JSONL
// record, one value per line. Records without a usable value are skipped.
type FieldExtractor struct {
	cfg FieldExtractConfig
}

func NewFieldExtractor(cfg FieldExtractConfig) *FieldExtractor {
	cfg.PipelineConfig = cfg.PipelineConfig.withDefaults("extract-field")
	return &FieldExtractor{cfg: cfg}
}

func (e *FieldExtractor) Run(ctx context.Context) (Stats, error) {
	start := time.Now()
	var stats Stats

	jr, err := reader.OpenJSONL[reader.Record](e.cfg.InputPath)
	if err != nil {
		return stats, err
	}
	defer jr.Close()

	out, err := storage.NewLineStorer(e.cfg.OutputPath)
	if err != nil {
		return stats, err
	}
	defer out.Close()

	progress := NewProgress(e.cfg.PipelineConfig)
	for rec, err := range jr.Records() {
		if err != nil {
			return stats, fmt.Errorf("extract field: %w", err)
		}
		if err := ctx.Err(); err != nil {
			return stats, err
		}
		progress.Tick()
		stats.Lines++

		text, ok := rec.Text(e.cfg.FieldName)
		if !ok {
			slog.Debug("Field absent or empty, skipping", "field", e.cfg.FieldName, "line", jr.Line())
			stats.Skipped++
			continue
		}
		if err := out.Save(ctx, text); err != nil {
			return stats, err
		}
		stats.Written++
	}
	progress.Done()

	if err := out.Close(); err != nil {
		return stats, err
	}

	slog.Info("Field extraction completed",
		"pipeline", e.cfg.Name,
		"field", e.cfg.FieldName,
		"written", stats.Written,
		"skipped", stats.Skipped,
		"duration", time.Since(start),
	)
	return stats, nil
}
