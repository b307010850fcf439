package reader

import (
	"io"
	"iter"
	"strings"
)

// Row is one non-blank line of a tab-separated file.
type Row struct {
	Line   int
	Fields []string
	Raw    string
}

// TSVReader splits trimmed lines on tabs. Quoting is not interpreted:
// query logs carry raw user text.
type TSVReader struct {
	lines *LineReader
}

func OpenTSV(path string) (*TSVReader, error) {
	lr, err := OpenLines(path)
	if err != nil {
		return nil, err
	}
	return &TSVReader{lines: lr}, nil
}

func NewTSVReader(r io.Reader) *TSVReader {
	return &TSVReader{lines: NewLineReader(r)}
}

func (tr *TSVReader) Rows() iter.Seq[Row] {
	return func(yield func(Row) bool) {
		for ln, line := range tr.lines.Lines() {
			trimmed := strings.TrimSpace(line)
			if trimmed == "" {
				continue
			}
			if !yield(Row{Line: ln, Fields: strings.Split(trimmed, "\t"), Raw: trimmed}) {
				return
			}
		}
	}
}

// Line is the number of the last line read, blank lines included.
func (tr *TSVReader) Line() int {
	return tr.lines.Line()
}

func (tr *TSVReader) Err() error {
	return tr.lines.Err()
}

func (tr *TSVReader) Close() error {
	return tr.lines.Close()
}
