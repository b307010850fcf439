package reader

import (
	"bufio"
	"errors"
	"io"
	"iter"
	"strings"

	"github.com/DjordjeVuckovic/irprep/pkg/fileio"
)

// LineReader yields the lines of an input once. It is not restartable:
// open a new reader over the same path to read it again.
type LineReader struct {
	closer io.Closer
	br     *bufio.Reader
	line   int
	done   bool
	err    error
}

// OpenLines opens path, decompressing it when the extension asks for it.
func OpenLines(path string) (*LineReader, error) {
	rc, err := fileio.Open(path)
	if err != nil {
		return nil, err
	}
	lr := NewLineReader(rc)
	lr.closer = rc
	return lr, nil
}

func NewLineReader(r io.Reader) *LineReader {
	return &LineReader{
		br: bufio.NewReaderSize(r, 1<<20),
	}
}

// Lines yields (lineNumber, line) pairs with line terminators removed.
// Lines are not length limited.
func (lr *LineReader) Lines() iter.Seq2[int, string] {
	return func(yield func(int, string) bool) {
		for !lr.done {
			s, err := lr.br.ReadString('\n')
			if err != nil {
				lr.done = true
				if !errors.Is(err, io.EOF) {
					lr.err = err
					return
				}
				if s == "" {
					return
				}
			}
			lr.line++
			s = strings.TrimSuffix(s, "\n")
			s = strings.TrimSuffix(s, "\r")
			if !yield(lr.line, s) {
				return
			}
		}
	}
}

// Line is the number of the last line yielded.
func (lr *LineReader) Line() int {
	return lr.line
}

// Err returns the read error that stopped iteration, if any.
func (lr *LineReader) Err() error {
	return lr.err
}

func (lr *LineReader) Close() error {
	if lr.closer == nil {
		return nil
	}
	return lr.closer.Close()
}
