package main

import (
	"github.com/spf13/cobra"

	"github.com/DjordjeVuckovic/irprep/internal/cli"
	"github.com/DjordjeVuckovic/irprep/internal/convert"
)

const toolName = "convert_nq"

func main() {
	cli.LoadEnv(toolName)

	cfg := newNQConfig()
	cmd := &cobra.Command{
		Use:           toolName,
		Short:         "Convert Natural Questions records into questions, answers and qrels",
		Args:          cobra.NoArgs,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			builder, err := cli.NewQueryBuilder(cfg.Text)
			if err != nil {
				return err
			}
			_, err = convert.NewNQConverter(cfg.toPipeline(), builder).Run(cmd.Context())
			return err
		},
	}

	f := cmd.Flags()
	f.StringVar(&cfg.Input, "input", "", "input NQ JSONL file (.gz, .zst and .bz2 are decompressed)")
	f.StringVar(&cfg.OutDir, "out_dir", "", "output directory")
	f.BoolVar(&cfg.Text.BertTokenize, "bert_tokenize", false, "add BERT sub-word tokens to every record")
	f.BoolVar(&cfg.CleanAnswers, "clean_answers", false, "strip markup and non-ASCII characters from answers")
	f.StringVar(&cfg.Text.StopWordFile, "stop_word_file", cfg.Text.StopWordFile, "stop word file, one word per line")
	f.StringVar(&cfg.Text.BertTokenizerFile, "bert_tokenizer_file", cfg.Text.BertTokenizerFile,
		"pretrained tokenizer.json (bert-base-uncased is downloaded when empty)")
	f.BoolVar(&cfg.Progress, "progress", false, "draw a progress bar instead of periodic log lines")
	_ = cmd.MarkFlagRequired("input")
	_ = cmd.MarkFlagRequired("out_dir")

	cli.Execute(cmd)
}
