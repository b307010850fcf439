package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type doc struct {
	ID   string `json:"DOCNO"`
	Text string `json:"text"`
}

func TestJsonlStorer(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.jsonl")

	s, err := NewJsonlStorer[doc](path)
	require.NoError(t, err)

	ctx := t.Context()
	require.NoError(t, s.Save(ctx, doc{ID: "q1", Text: "a <b> & c"}))
	require.NoError(t, s.Save(ctx, doc{ID: "q2", Text: "café"}))
	assert.Equal(t, 2, s.Count())
	require.NoError(t, s.Close())
	require.NoError(t, s.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "{\"DOCNO\":\"q1\",\"text\":\"a <b> & c\"}\n{\"DOCNO\":\"q2\",\"text\":\"café\"}\n", string(data))

	assert.ErrorIs(t, s.Save(ctx, doc{ID: "q3"}), ErrStorerClosed)
}

func TestLineStorer(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.txt")

	s, err := NewLineStorer(path)
	require.NoError(t, err)
	require.NoError(t, s.Save(t.Context(), "Hello"))
	require.NoError(t, s.Save(t.Context(), "World"))
	require.NoError(t, s.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "Hello\nWorld\n", string(data))
	assert.Equal(t, 2, s.Count())
}

func TestNewJsonlStorer_BadPath(t *testing.T) {
	_, err := NewJsonlStorer[doc](filepath.Join(t.TempDir(), "missing-dir", "out.jsonl"))
	assert.Error(t, err)
}

func TestMemoryStorer(t *testing.T) {
	var s Storer[doc] = NewMemoryStorer[doc]()
	ctx := t.Context()

	require.NoError(t, s.Save(ctx, doc{ID: "q1"}))
	require.NoError(t, s.Save(ctx, doc{ID: "q2"}))
	require.NoError(t, s.Close())
	assert.ErrorIs(t, s.Save(ctx, doc{ID: "q3"}), ErrStorerClosed)

	records := s.(*MemoryStorer[doc]).Records()
	assert.Equal(t, []doc{{ID: "q1"}, {ID: "q2"}}, records)
}
