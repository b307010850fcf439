package convert

import (
	"fmt"
	"strings"

	"github.com/DjordjeVuckovic/irprep/internal/textproc"
)

const (
	QuestionFileJSON = "QuestionFields.jsonl"
	AnswerFileJSON   = "AnswerFields.jsonl"
	QrelFile         = "qrels.txt"
)

// NormalizedQuery is the output record shared by all query converters.
type NormalizedQuery struct {
	ID               string `json:"DOCNO"`
	LemmatizedText   string `json:"text"`
	UnlemmatizedText string `json:"text_unlemm"`
	RawText          string `json:"text_raw"`
	SubTokenText     string `json:"text_bert_tok,omitempty"`
}

func (q NormalizedQuery) TokenCount() int {
	return len(strings.Fields(q.LemmatizedText))
}

// QueryBuilder turns raw text into a NormalizedQuery. The sub-tokenizer is optional.
type QueryBuilder struct {
	proc textproc.Processor
	sub  textproc.SubTokenizer
}

func NewQueryBuilder(proc textproc.Processor, sub textproc.SubTokenizer) *QueryBuilder {
	return &QueryBuilder{proc: proc, sub: sub}
}

func (b *QueryBuilder) Build(id, text string) (NormalizedQuery, error) {
	lemmas, unlemm, err := b.proc.ProcText(text)
	if err != nil {
		return NormalizedQuery{}, fmt.Errorf("process text of %s: %w", id, err)
	}

	q := NormalizedQuery{
		ID:               id,
		LemmatizedText:   lemmas,
		UnlemmatizedText: unlemm,
		RawText:          strings.ToLower(text),
	}

	if b.sub != nil {
		toks, err := b.sub.SubTokenize(q.RawText)
		if err != nil {
			return NormalizedQuery{}, fmt.Errorf("sub-tokenize text of %s: %w", id, err)
		}
		q.SubTokenText = strings.Join(toks, " ")
	}
	return q, nil
}
