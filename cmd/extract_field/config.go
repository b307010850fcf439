package main

import (
	"github.com/DjordjeVuckovic/irprep/internal/cli"
	"github.com/DjordjeVuckovic/irprep/internal/convert"
	"github.com/DjordjeVuckovic/irprep/pkg/config/env"
)

type extractConfig struct {
	Input     string
	Output    string
	FieldName string
}

func (c extractConfig) toPipeline() convert.FieldExtractConfig {
	return convert.FieldExtractConfig{
		InputPath:  c.Input,
		OutputPath: c.Output,
		FieldName:  c.FieldName,
		PipelineConfig: convert.PipelineConfig{
			ReportEvery: env.Int(cli.EnvReportQty, convert.DefaultReportEvery),
		},
	}
}
