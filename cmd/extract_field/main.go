package main

import (
	"github.com/spf13/cobra"

	"github.com/DjordjeVuckovic/irprep/internal/cli"
	"github.com/DjordjeVuckovic/irprep/internal/convert"
)

const toolName = "extract_field"

func main() {
	cli.LoadEnv(toolName)

	var cfg extractConfig
	cmd := &cobra.Command{
		Use:           toolName,
		Short:         "Extract one text field of every JSONL record, one value per line",
		Args:          cobra.NoArgs,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			_, err := convert.NewFieldExtractor(cfg.toPipeline()).Run(cmd.Context())
			return err
		},
	}
	cmd.Flags().StringVar(&cfg.Input, "input", "", "input JSONL file (.gz, .zst and .bz2 are decompressed)")
	cmd.Flags().StringVar(&cfg.Output, "output", "", "output text file")
	cmd.Flags().StringVar(&cfg.FieldName, "field_name", "", "name of the field to extract")
	for _, name := range []string{"input", "output", "field_name"} {
		_ = cmd.MarkFlagRequired(name)
	}

	cli.Execute(cmd)
}
