package main

import (
	"github.com/DjordjeVuckovic/irprep/internal/cli"
	"github.com/DjordjeVuckovic/irprep/internal/convert"
	"github.com/DjordjeVuckovic/irprep/pkg/config/env"
)

type orcasConfig struct {
	Input          string
	OutDir         string
	MinQueryTokQty int
	Progress       bool
	Text           cli.TextOptions
}

func newOrcasConfig() *orcasConfig {
	return &orcasConfig{
		Text: cli.TextOptions{
			StopWordFile:      env.String(cli.EnvStopWordFile, ""),
			BertTokenizerFile: env.String(cli.EnvBertTokenizerFile, ""),
		},
	}
}

func (c *orcasConfig) toPipeline() convert.OrcasConfig {
	return convert.OrcasConfig{
		InputPath:      c.Input,
		OutDir:         c.OutDir,
		MinQueryTokQty: c.MinQueryTokQty,
		PipelineConfig: convert.PipelineConfig{
			ReportEvery:  env.Int(cli.EnvReportQty, convert.DefaultReportEvery),
			ShowProgress: c.Progress,
		},
	}
}
