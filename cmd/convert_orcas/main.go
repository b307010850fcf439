package main

import (
	"github.com/spf13/cobra"

	"github.com/DjordjeVuckovic/irprep/internal/cli"
	"github.com/DjordjeVuckovic/irprep/internal/convert"
)

const toolName = "convert_orcas"

func main() {
	cli.LoadEnv(toolName)

	cfg := newOrcasConfig()
	cmd := &cobra.Command{
		Use:           toolName,
		Short:         "Convert an ORCAS click log into a query file and qrels",
		Args:          cobra.NoArgs,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			pipeline := cfg.toPipeline()
			if err := pipeline.Validate(); err != nil {
				return err
			}
			builder, err := cli.NewQueryBuilder(cfg.Text)
			if err != nil {
				return err
			}
			_, err = convert.NewOrcasConverter(pipeline, builder).Run(cmd.Context())
			return err
		},
	}

	f := cmd.Flags()
	f.StringVar(&cfg.Input, "input", "", "input TSV file: qid, query, docid, ignored")
	f.StringVar(&cfg.OutDir, "out_dir", "", "output directory")
	f.IntVar(&cfg.MinQueryTokQty, "min_query_token_qty", 0, "minimum number of query tokens after stop word removal")
	f.BoolVar(&cfg.Text.BertTokenize, "bert_tokenize", false, "add BERT sub-word tokens to every record")
	f.StringVar(&cfg.Text.StopWordFile, "stop_word_file", cfg.Text.StopWordFile, "stop word file, one word per line")
	f.StringVar(&cfg.Text.BertTokenizerFile, "bert_tokenizer_file", cfg.Text.BertTokenizerFile,
		"pretrained tokenizer.json (bert-base-uncased is downloaded when empty)")
	f.BoolVar(&cfg.Progress, "progress", false, "draw a progress bar instead of periodic log lines")
	_ = cmd.MarkFlagRequired("input")
	_ = cmd.MarkFlagRequired("out_dir")

	cli.Execute(cmd)
}
