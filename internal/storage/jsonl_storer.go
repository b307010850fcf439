package storage

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"

	"github.com/DjordjeVuckovic/irprep/pkg/fileio"
)

// JsonlStorer writes one JSON object per line.
type JsonlStorer[T any] struct {
	filePath string
	out      io.WriteCloser
	buf      *bufio.Writer
	enc      *json.Encoder
	count    int
}

func NewJsonlStorer[T any](filePath string) (*JsonlStorer[T], error) {
	out, err := fileio.Create(filePath)
	if err != nil {
		return nil, err
	}
	s := &JsonlStorer[T]{filePath: filePath, out: out}
	s.buf = bufio.NewWriter(out)
	s.enc = json.NewEncoder(s.buf)
	s.enc.SetEscapeHTML(false)
	return s, nil
}

func (s *JsonlStorer[T]) Save(_ context.Context, record T) error {
	if s.enc == nil {
		return ErrStorerClosed
	}
	if err := s.enc.Encode(record); err != nil {
		return fmt.Errorf("write %s: %w", s.filePath, err)
	}
	s.count++
	return nil
}

// Count is the number of records saved so far.
func (s *JsonlStorer[T]) Count() int {
	return s.count
}

func (s *JsonlStorer[T]) Close() error {
	if s.enc == nil {
		return nil
	}
	s.enc = nil
	flushErr := s.buf.Flush()
	closeErr := s.out.Close()
	if flushErr != nil {
		return fmt.Errorf("flush %s: %w", s.filePath, flushErr)
	}
	if closeErr != nil {
		return fmt.Errorf("close %s: %w", s.filePath, closeErr)
	}
	slog.Debug("Output file closed", "path", s.filePath, "records", s.count)
	return nil
}
