package convert

import (
	"context"
	"fmt"
	"os"
)

const DefaultReportEvery = 10_000

// Pipeline is one read-transform-write conversion run.
type Pipeline interface {
	Run(ctx context.Context) (Stats, error)
}

// PipelineConfig defines the settings shared by all converters.
type PipelineConfig struct {
	Name string
	// ReportEvery is the number of input lines between progress log lines.
	ReportEvery  int
	ShowProgress bool
}

func (c PipelineConfig) withDefaults(name string) PipelineConfig {
	if c.Name == "" {
		c.Name = name
	}
	if c.ReportEvery <= 0 {
		c.ReportEvery = DefaultReportEvery
	}
	return c
}

// Stats summarizes a run.
type Stats struct {
	Lines     int `json:"lines"`
	Written   int `json:"written"`
	Skipped   int `json:"skipped"`
	Excluded  int `json:"excluded"`
	Judgments int `json:"judgments"`
	Unsorted  int `json:"unsorted"`
}

func ensureDir(dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}
	return nil
}
