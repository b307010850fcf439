package cli

import (
	"log/slog"

	"github.com/DjordjeVuckovic/irprep/internal/convert"
	"github.com/DjordjeVuckovic/irprep/internal/textproc"
)

type TextOptions struct {
	StopWordFile      string
	BertTokenize      bool
	BertTokenizerFile string
}

// NewQueryBuilder wires the text parser and, when requested, the BERT
// sub-word tokenizer.
func NewQueryBuilder(opts TextOptions) (*convert.QueryBuilder, error) {
	var parserOpts []textproc.ParserOption
	if opts.StopWordFile != "" {
		sw, err := textproc.LoadStopWords(opts.StopWordFile, true)
		if err != nil {
			return nil, err
		}
		slog.Info("Stop words loaded", "path", opts.StopWordFile, "words", sw.Len())
		parserOpts = append(parserOpts, textproc.WithStopWords(sw))
	}
	parser := textproc.NewTextParser(parserOpts...)

	var sub textproc.SubTokenizer
	if opts.BertTokenize {
		bert, err := textproc.LoadBertTokenizer(opts.BertTokenizerFile)
		if err != nil {
			return nil, err
		}
		sub = bert
	}
	return convert.NewQueryBuilder(parser, sub), nil
}
