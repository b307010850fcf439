package convert

import (
	"bufio"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// splitProcessor lower-cases and splits on whitespace; the lemma of a word
// is the word itself.
type splitProcessor struct{}

func (splitProcessor) ProcText(text string) (string, string, error) {
	toks := strings.Fields(strings.ToLower(text))
	return strings.Join(toks, " "), strings.Join(toks, " "), nil
}

type charSubTokenizer struct{}

func (charSubTokenizer) SubTokenize(text string) ([]string, error) {
	var out []string
	for _, w := range strings.Fields(text) {
		out = append(out, w[:1], "##"+w[1:])
	}
	return out, nil
}

func newTestBuilder() *QueryBuilder {
	return NewQueryBuilder(splitProcessor{}, nil)
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func readQueries(t *testing.T, path string) []NormalizedQuery {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	var out []NormalizedQuery
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		var q NormalizedQuery
		require.NoError(t, json.Unmarshal(sc.Bytes(), &q))
		out = append(out, q)
	}
	require.NoError(t, sc.Err())
	return out
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}

func queryIDs(queries []NormalizedQuery) []string {
	ids := make([]string, 0, len(queries))
	for _, q := range queries {
		ids = append(ids, q.ID)
	}
	return ids
}
