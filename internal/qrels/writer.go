package qrels

import (
	"bufio"
	"fmt"
	"log/slog"

	"github.com/DjordjeVuckovic/irprep/pkg/fileio"
)

// Writer keeps judgments in accumulation order. No deduplication or sorting
// is applied.
type Writer struct {
	entries []Entry
}

func NewWriter() *Writer {
	return &Writer{}
}

func (w *Writer) Add(e Entry) {
	w.entries = append(w.entries, e)
}

func (w *Writer) Len() int {
	return len(w.entries)
}

func (w *Writer) Entries() []Entry {
	return w.entries
}

// WriteAll writes every accumulated entry to path, one per line.
func (w *Writer) WriteAll(path string) error {
	out, err := fileio.Create(path)
	if err != nil {
		return fmt.Errorf("write qrels: %w", err)
	}
	buf := bufio.NewWriter(out)
	for _, e := range w.entries {
		if _, err := fmt.Fprintln(buf, e.String()); err != nil {
			out.Close()
			return fmt.Errorf("write qrels: %w", err)
		}
	}
	if err := buf.Flush(); err != nil {
		out.Close()
		return fmt.Errorf("write qrels: %w", err)
	}
	if err := out.Close(); err != nil {
		return fmt.Errorf("close qrels: %w", err)
	}
	slog.Info("Qrels written", "path", path, "entries", len(w.entries))
	return nil
}
