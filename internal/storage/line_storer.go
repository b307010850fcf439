package storage

import (
	"bufio"
	"context"
	"fmt"
	"io"

	"github.com/DjordjeVuckovic/irprep/pkg/fileio"
)

// LineStorer writes plain text, one value per line.
type LineStorer struct {
	filePath string
	out      io.WriteCloser
	buf      *bufio.Writer
	count    int
	closed   bool
}

func NewLineStorer(filePath string) (*LineStorer, error) {
	out, err := fileio.Create(filePath)
	if err != nil {
		return nil, err
	}
	return &LineStorer{filePath: filePath, out: out, buf: bufio.NewWriter(out)}, nil
}

func (s *LineStorer) Save(_ context.Context, line string) error {
	if s.closed {
		return ErrStorerClosed
	}
	if _, err := s.buf.WriteString(line); err != nil {
		return fmt.Errorf("write %s: %w", s.filePath, err)
	}
	if err := s.buf.WriteByte('\n'); err != nil {
		return fmt.Errorf("write %s: %w", s.filePath, err)
	}
	s.count++
	return nil
}

func (s *LineStorer) Count() int {
	return s.count
}

func (s *LineStorer) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true
	flushErr := s.buf.Flush()
	closeErr := s.out.Close()
	if flushErr != nil {
		return fmt.Errorf("flush %s: %w", s.filePath, flushErr)
	}
	if closeErr != nil {
		return fmt.Errorf("close %s: %w", s.filePath, closeErr)
	}
	return nil
}
