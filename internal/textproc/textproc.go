// Package textproc wraps the text-processing collaborators used by the
// converters: stop-word lists, a tokenizer/stemmer and a sub-word tokenizer.
package textproc

// Processor turns raw text into space-separated lemmatized and unlemmatized tokens.
type Processor interface {
	ProcText(text string) (lemmas string, unlemm string, err error)
}

// SubTokenizer splits text into vocabulary sub-word units.
type SubTokenizer interface {
	SubTokenize(text string) ([]string, error)
}
