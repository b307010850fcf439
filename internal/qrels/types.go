// Package qrels accumulates relevance judgments and stores them in the TREC
// qrels format: "<query id> 0 <doc id> <grade>".
package qrels

import (
	"fmt"
)

// Entry grades one document for one query.
type Entry struct {
	QueryID string
	DocID   string
	Grade   int
}

func (e Entry) String() string {
	return fmt.Sprintf("%s 0 %s %d", e.QueryID, e.DocID, e.Grade)
}
