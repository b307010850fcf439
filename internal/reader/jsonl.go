package reader

import (
	"encoding/json"
	"fmt"
	"io"
	"iter"
	"strings"
)

// JSONLReader decodes one JSON object per line into T.
type JSONLReader[T any] struct {
	lines *LineReader
}

func OpenJSONL[T any](path string) (*JSONLReader[T], error) {
	lr, err := OpenLines(path)
	if err != nil {
		return nil, err
	}
	return &JSONLReader[T]{lines: lr}, nil
}

func NewJSONLReader[T any](r io.Reader) *JSONLReader[T] {
	return &JSONLReader[T]{lines: NewLineReader(r)}
}

// Records yields decoded records in input order, skipping blank lines.
// Decode and read failures are yielded as errors; the consumer decides
// whether to stop.
func (jr *JSONLReader[T]) Records() iter.Seq2[T, error] {
	return func(yield func(T, error) bool) {
		var zero T
		for ln, line := range jr.lines.Lines() {
			if strings.TrimSpace(line) == "" {
				continue
			}
			var rec T
			if err := json.Unmarshal([]byte(line), &rec); err != nil {
				if !yield(zero, fmt.Errorf("decode JSON at line %d: %w", ln, err)) {
					return
				}
				continue
			}
			if !yield(rec, nil) {
				return
			}
		}
		if err := jr.lines.Err(); err != nil {
			yield(zero, fmt.Errorf("read input: %w", err))
		}
	}
}

// Line is the input line number of the last yielded record.
func (jr *JSONLReader[T]) Line() int {
	return jr.lines.Line()
}

func (jr *JSONLReader[T]) Close() error {
	return jr.lines.Close()
}
