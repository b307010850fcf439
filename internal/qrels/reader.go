package qrels

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/DjordjeVuckovic/irprep/internal/reader"
)

// Read parses a qrels file. Both the four-column TREC layout and the
// three-column "<qid> <docid> <grade>" variant are accepted.
func Read(path string) ([]Entry, error) {
	lr, err := reader.OpenLines(path)
	if err != nil {
		return nil, fmt.Errorf("read qrels: %w", err)
	}
	defer lr.Close()

	var entries []Entry
	for ln, line := range lr.Lines() {
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		var qid, did, grade string
		switch len(fields) {
		case 4:
			qid, did, grade = fields[0], fields[2], fields[3]
		case 3:
			qid, did, grade = fields[0], fields[1], fields[2]
		default:
			return nil, fmt.Errorf("parse qrels line %d: expected 3 or 4 fields, got %d", ln, len(fields))
		}
		g, err := strconv.Atoi(grade)
		if err != nil {
			return nil, fmt.Errorf("parse qrels line %d: invalid grade %q: %w", ln, grade, err)
		}
		entries = append(entries, Entry{QueryID: qid, DocID: did, Grade: g})
	}
	if err := lr.Err(); err != nil {
		return nil, fmt.Errorf("read qrels: %w", err)
	}
	return entries, nil
}
