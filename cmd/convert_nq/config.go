package main

import (
	"github.com/DjordjeVuckovic/irprep/internal/cli"
	"github.com/DjordjeVuckovic/irprep/internal/convert"
	"github.com/DjordjeVuckovic/irprep/pkg/config/env"
)

type nqConfig struct {
	Input        string
	OutDir       string
	CleanAnswers bool
	Progress     bool
	Text         cli.TextOptions
}

func newNQConfig() *nqConfig {
	return &nqConfig{
		Text: cli.TextOptions{
			StopWordFile:      env.String(cli.EnvStopWordFile, ""),
			BertTokenizerFile: env.String(cli.EnvBertTokenizerFile, ""),
		},
	}
}

func (c *nqConfig) toPipeline() convert.NQConfig {
	return convert.NQConfig{
		InputPath:    c.Input,
		OutDir:       c.OutDir,
		CleanAnswers: c.CleanAnswers,
		PipelineConfig: convert.PipelineConfig{
			ReportEvery:  env.Int(cli.EnvReportQty, convert.DefaultReportEvery),
			ShowProgress: c.Progress,
		},
	}
}
