package convert

import (
	"context"
	"errors"
	"io/fs"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const fieldInput = `{"id": "q1", "text": "  Hello  "}
{"id": "q2"}
{"id": "q3", "text": "   "}
{"id": "q4", "text": null}
{"id": "q5", "text": 17}

{"id": "q6", "text": "World\t"}
`

func TestFieldExtractor_Run(t *testing.T) {
	input := writeFile(t, "in.jsonl", fieldInput)
	output := filepath.Join(t.TempDir(), "out.txt")

	stats, err := NewFieldExtractor(FieldExtractConfig{
		InputPath:  input,
		OutputPath: output,
		FieldName:  "text",
	}).Run(t.Context())
	require.NoError(t, err)

	assert.Equal(t, "Hello\nWorld\n", readFile(t, output))
	assert.Equal(t, 6, stats.Lines)
	assert.Equal(t, 2, stats.Written)
	assert.Equal(t, 4, stats.Skipped)
}

func TestFieldExtractor_SingleRecord(t *testing.T) {
	input := writeFile(t, "in.jsonl", `{"id": "q1", "text": "  Hello  "}`+"\n")
	output := filepath.Join(t.TempDir(), "out.txt")

	_, err := NewFieldExtractor(FieldExtractConfig{InputPath: input, OutputPath: output, FieldName: "text"}).Run(t.Context())
	require.NoError(t, err)
	assert.Equal(t, "Hello\n", readFile(t, output))
}

func TestFieldExtractor_Idempotent(t *testing.T) {
	input := writeFile(t, "in.jsonl", fieldInput)
	dir := t.TempDir()

	var outputs []string
	for _, name := range []string{"a.txt", "b.txt"} {
		out := filepath.Join(dir, name)
		_, err := NewFieldExtractor(FieldExtractConfig{InputPath: input, OutputPath: out, FieldName: "text"}).Run(t.Context())
		require.NoError(t, err)
		outputs = append(outputs, readFile(t, out))
	}
	assert.Equal(t, outputs[0], outputs[1])
}

func TestFieldExtractor_MissingInput(t *testing.T) {
	_, err := NewFieldExtractor(FieldExtractConfig{
		InputPath:  filepath.Join(t.TempDir(), "missing.jsonl"),
		OutputPath: filepath.Join(t.TempDir(), "out.txt"),
		FieldName:  "text",
	}).Run(t.Context())
	require.Error(t, err)
	assert.True(t, errors.Is(err, fs.ErrNotExist))
}

func TestFieldExtractor_InvalidJSON(t *testing.T) {
	input := writeFile(t, "in.jsonl", "{\"text\": \"ok\"}\n{broken\n")
	_, err := NewFieldExtractor(FieldExtractConfig{
		InputPath:  input,
		OutputPath: filepath.Join(t.TempDir(), "out.txt"),
		FieldName:  "text",
	}).Run(t.Context())
	assert.ErrorContains(t, err, "line 2")
}

func TestFieldExtractor_Cancelled(t *testing.T) {
	input := writeFile(t, "in.jsonl", fieldInput)
	ctx, cancel := context.WithCancel(t.Context())
	cancel()

	_, err := NewFieldExtractor(FieldExtractConfig{
		InputPath:  input,
		OutputPath: filepath.Join(t.TempDir(), "out.txt"),
		FieldName:  "text",
	}).Run(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}
