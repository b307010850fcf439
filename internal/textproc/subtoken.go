package textproc

import (
	"fmt"
	"log/slog"

	"github.com/sugarme/tokenizer"
	"github.com/sugarme/tokenizer/pretrained"
)

const DefaultBertModel = "bert-base-uncased"

// BertTokenizer produces WordPiece sub-tokens from a pretrained tokenizer.json.
type BertTokenizer struct {
	tk *tokenizer.Tokenizer
}

// LoadBertTokenizer loads the tokenizer definition from path. An empty path
// resolves the default model through the local model cache, downloading it
// on first use.
func LoadBertTokenizer(path string) (*BertTokenizer, error) {
	if path == "" {
		cached, err := tokenizer.CachedPath(DefaultBertModel, "tokenizer.json")
		if err != nil {
			return nil, fmt.Errorf("resolve %s tokenizer: %w", DefaultBertModel, err)
		}
		path = cached
	}

	tk, err := pretrained.FromFile(path)
	if err != nil {
		return nil, fmt.Errorf("load BERT tokenizer %s: %w", path, err)
	}
	slog.Info("BERT tokenizer loaded", "path", path)
	return &BertTokenizer{tk: tk}, nil
}

func (b *BertTokenizer) SubTokenize(text string) ([]string, error) {
	en, err := b.tk.EncodeSingle(text, false)
	if err != nil {
		return nil, fmt.Errorf("BERT-tokenize text: %w", err)
	}
	return en.Tokens, nil
}
