package convert

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"github.com/DjordjeVuckovic/irprep/internal/apperr"
	"github.com/DjordjeVuckovic/irprep/internal/qrels"
	"github.com/DjordjeVuckovic/irprep/internal/reader"
	"github.com/DjordjeVuckovic/irprep/internal/storage"
)

const orcasFieldQty = 4

type OrcasConfig struct {
	InputPath      string
	OutDir         string
	MinQueryTokQty int
	PipelineConfig
}

func (c OrcasConfig) Validate() error {
	if c.MinQueryTokQty < 0 {
		return apperr.NewValidation("min_query_token_qty must not be negative")
	}
	return nil
}

// OrcasConverter converts a "qid \t query \t docid \t ignored" click log
// into a query file and judgments. The log is expected to be grouped by
// query id; a query record is written once, on the first occurrence of its id.
type OrcasConverter struct {
	cfg     OrcasConfig
	builder *QueryBuilder
}

func NewOrcasConverter(cfg OrcasConfig, builder *QueryBuilder) *OrcasConverter {
	cfg.PipelineConfig = cfg.PipelineConfig.withDefaults("convert-orcas")
	return &OrcasConverter{cfg: cfg, builder: builder}
}

func (c *OrcasConverter) Run(ctx context.Context) (Stats, error) {
	start := time.Now()
	var stats Stats

	if err := c.cfg.Validate(); err != nil {
		return stats, err
	}

	slog.Info("Starting ORCAS conversion",
		"pipeline", c.cfg.Name,
		"input", c.cfg.InputPath,
		"outDir", c.cfg.OutDir,
		"minQueryTokQty", c.cfg.MinQueryTokQty,
	)

	tr, err := reader.OpenTSV(c.cfg.InputPath)
	if err != nil {
		return stats, err
	}
	defer tr.Close()

	if err := ensureDir(c.cfg.OutDir); err != nil {
		return stats, err
	}
	queries, err := storage.NewJsonlStorer[NormalizedQuery](filepath.Join(c.cfg.OutDir, QuestionFileJSON))
	if err != nil {
		return stats, err
	}
	defer queries.Close()

	judgments := qrels.NewWriter()
	seen := make(map[string]struct{})
	prevQid := ""
	progress := NewProgress(c.cfg.PipelineConfig)

	for row := range tr.Rows() {
		if err := ctx.Err(); err != nil {
			return stats, err
		}
		progress.Tick()
		stats.Lines++

		if len(row.Fields) != orcasFieldQty {
			slog.Warn("Misformatted line, ignoring",
				"error", apperr.NewMalformedRecord(row.Line,
					fmt.Sprintf("expected %d fields, got %d", orcasFieldQty, len(row.Fields))),
				"content", strings.ReplaceAll(row.Raw, "\t", "<field delimiter>"),
			)
			stats.Skipped++
			continue
		}

		qid, query, did := row.Fields[0], row.Fields[1], row.Fields[2]
		judgments.Add(qrels.Entry{QueryID: qid, DocID: did, Grade: 1})

		if qid != prevQid {
			if _, dup := seen[qid]; dup {
				if stats.Unsorted == 0 {
					slog.Warn("Input is not sorted by query id, repeated query record skipped",
						"qid", qid, "line", row.Line)
				}
				stats.Unsorted++
			} else {
				seen[qid] = struct{}{}
				if err := c.writeQuery(ctx, queries, qid, query, &stats); err != nil {
					return stats, err
				}
			}
		}
		prevQid = qid
	}
	if err := tr.Err(); err != nil {
		return stats, fmt.Errorf("convert orcas: read input: %w", err)
	}
	progress.Done()

	if err := queries.Close(); err != nil {
		return stats, err
	}
	if err := judgments.WriteAll(filepath.Join(c.cfg.OutDir, QrelFile)); err != nil {
		return stats, err
	}
	stats.Judgments = judgments.Len()

	slog.Info("ORCAS conversion completed",
		"pipeline", c.cfg.Name,
		"queries", stats.Written,
		"excluded", stats.Excluded,
		"malformed", stats.Skipped,
		"judgments", stats.Judgments,
		"unsortedRepeats", stats.Unsorted,
		"duration", time.Since(start),
	)
	return stats, nil
}

func (c *OrcasConverter) writeQuery(ctx context.Context, out storage.Storer[NormalizedQuery], qid, query string, stats *Stats) error {
	q, err := c.builder.Build(qid, query)
	if err != nil {
		return err
	}
	if q.TokenCount() < c.cfg.MinQueryTokQty {
		slog.Debug("Query below token threshold, excluded from query file", "qid", qid, "tokens", q.TokenCount())
		stats.Excluded++
		return nil
	}
	if err := out.Save(ctx, q); err != nil {
		return err
	}
	stats.Written++
	return nil
}
