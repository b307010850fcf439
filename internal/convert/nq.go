package convert

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"
	"unicode/utf8"

	"github.com/DjordjeVuckovic/irprep/internal/apperr"
	"github.com/DjordjeVuckovic/irprep/internal/qrels"
	"github.com/DjordjeVuckovic/irprep/internal/reader"
	"github.com/DjordjeVuckovic/irprep/internal/storage"
	"github.com/DjordjeVuckovic/irprep/internal/textproc"
)

// ExampleID accepts both numeric and string identifiers.
type ExampleID string

func (id *ExampleID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*id = ExampleID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("example id must be a string or a number: %w", err)
	}
	*id = ExampleID(n.String())
	return nil
}

type ShortAnswer struct {
	StartByte int `json:"start_byte"`
	EndByte   int `json:"end_byte"`
}

type Annotation struct {
	ShortAnswers []ShortAnswer `json:"short_answers"`
}

// NQExample is the subset of a Natural Questions record the converter reads.
type NQExample struct {
	ExampleID    ExampleID    `json:"example_id"`
	QuestionText string       `json:"question_text"`
	DocumentHTML string       `json:"document_html"`
	Annotations  []Annotation `json:"annotations"`
}

// Answers slices every short answer of every annotation out of the document
// bytes, in annotation order.
func (ex NQExample) Answers() ([]string, error) {
	doc := ex.DocumentHTML
	var answers []string
	for _, annot := range ex.Annotations {
		for _, sa := range annot.ShortAnswers {
			if sa.StartByte < 0 || sa.EndByte < sa.StartByte || sa.EndByte > len(doc) {
				return nil, fmt.Errorf("short answer span [%d,%d) outside document of %d bytes",
					sa.StartByte, sa.EndByte, len(doc))
			}
			ans := doc[sa.StartByte:sa.EndByte]
			if !utf8.ValidString(ans) {
				return nil, fmt.Errorf("short answer span [%d,%d) is not valid UTF-8", sa.StartByte, sa.EndByte)
			}
			answers = append(answers, ans)
		}
	}
	return answers, nil
}

type NQConfig struct {
	InputPath    string
	OutDir       string
	CleanAnswers bool
	PipelineConfig
}

// NQConverter converts Natural Questions records into question and answer
// records linked by judgments. Example ids must be unique within a run.
type NQConverter struct {
	cfg     NQConfig
	builder *QueryBuilder
}

func NewNQConverter(cfg NQConfig, builder *QueryBuilder) *NQConverter {
	cfg.PipelineConfig = cfg.PipelineConfig.withDefaults("convert-nq")
	return &NQConverter{cfg: cfg, builder: builder}
}

func (c *NQConverter) Run(ctx context.Context) (Stats, error) {
	start := time.Now()
	var stats Stats

	slog.Info("Starting NQ conversion", "pipeline", c.cfg.Name, "input", c.cfg.InputPath, "outDir", c.cfg.OutDir)

	jr, err := reader.OpenJSONL[NQExample](c.cfg.InputPath)
	if err != nil {
		return stats, err
	}
	defer jr.Close()

	if err := ensureDir(c.cfg.OutDir); err != nil {
		return stats, err
	}
	questions, err := storage.NewJsonlStorer[NormalizedQuery](filepath.Join(c.cfg.OutDir, QuestionFileJSON))
	if err != nil {
		return stats, err
	}
	defer questions.Close()
	answers, err := storage.NewJsonlStorer[NormalizedQuery](filepath.Join(c.cfg.OutDir, AnswerFileJSON))
	if err != nil {
		return stats, err
	}
	defer answers.Close()

	judgments := qrels.NewWriter()
	seenIDs := make(map[ExampleID]struct{})
	progress := NewProgress(c.cfg.PipelineConfig)

	for ex, err := range jr.Records() {
		if err != nil {
			return stats, fmt.Errorf("convert nq: %w", err)
		}
		if err := ctx.Err(); err != nil {
			return stats, err
		}
		progress.Tick()
		stats.Lines++
		line := jr.Line()

		qid := string(ex.ExampleID)
		if qid == "" {
			return stats, apperr.NewDataConsistency("missing example id", "", line)
		}
		if _, seen := seenIDs[ex.ExampleID]; seen {
			return stats, apperr.NewDataConsistency("repeating example/question ID", qid, line)
		}
		seenIDs[ex.ExampleID] = struct{}{}

		answerList, err := ex.Answers()
		if err != nil {
			return stats, apperr.NewDataConsistency(err.Error(), qid, line)
		}
		if len(answerList) == 0 {
			stats.Skipped++
			continue
		}

		q, err := c.builder.Build(qid, ex.QuestionText)
		if err != nil {
			return stats, err
		}
		if err := questions.Save(ctx, q); err != nil {
			return stats, err
		}
		stats.Written++

		for i, text := range answerList {
			if c.cfg.CleanAnswers {
				text = textproc.CleanUp(text)
			}
			aid := fmt.Sprintf("%s-%d", qid, i)
			a, err := c.builder.Build(aid, text)
			if err != nil {
				return stats, err
			}
			if err := answers.Save(ctx, a); err != nil {
				return stats, err
			}
			judgments.Add(qrels.Entry{QueryID: qid, DocID: aid, Grade: 1})
		}
	}
	progress.Done()

	if err := questions.Close(); err != nil {
		return stats, err
	}
	if err := answers.Close(); err != nil {
		return stats, err
	}
	if err := judgments.WriteAll(filepath.Join(c.cfg.OutDir, QrelFile)); err != nil {
		return stats, err
	}
	stats.Judgments = judgments.Len()

	slog.Info("NQ conversion completed",
		"pipeline", c.cfg.Name,
		"questions", stats.Written,
		"answers", answers.Count(),
		"withoutAnswers", stats.Skipped,
		"duration", time.Since(start),
	)
	return stats, nil
}
