package textproc

import (
	"fmt"
	"strings"

	"github.com/DjordjeVuckovic/irprep/internal/reader"
)

// StopWords is a set of words ignored during text processing.
type StopWords map[string]struct{}

func NewStopWords(words ...string) StopWords {
	sw := make(StopWords, len(words))
	for _, w := range words {
		sw[w] = struct{}{}
	}
	return sw
}

func (sw StopWords) Contains(word string) bool {
	_, ok := sw[word]
	return ok
}

func (sw StopWords) Len() int {
	return len(sw)
}

// LoadStopWords reads one word per line. Blank lines and lines starting
// with '#' are skipped.
func LoadStopWords(path string, lowerCase bool) (StopWords, error) {
	lr, err := reader.OpenLines(path)
	if err != nil {
		return nil, fmt.Errorf("load stop words: %w", err)
	}
	defer lr.Close()

	sw := make(StopWords)
	for _, line := range lr.Lines() {
		word := strings.TrimSpace(line)
		if word == "" || strings.HasPrefix(word, "#") {
			continue
		}
		if lowerCase {
			word = strings.ToLower(word)
		}
		sw[word] = struct{}{}
	}
	if err := lr.Err(); err != nil {
		return nil, fmt.Errorf("load stop words: %w", err)
	}
	return sw, nil
}
