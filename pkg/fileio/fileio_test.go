package fileio

import (
	"errors"
	"io"
	"io/fs"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetect(t *testing.T) {
	assert.Equal(t, Gzip, Detect("queries.jsonl.gz"))
	assert.Equal(t, Zstd, Detect("queries.jsonl.zst"))
	assert.Equal(t, Bzip2, Detect("a/b/c.BZ2"))
	assert.Equal(t, None, Detect("qrels.txt"))
}

func TestCreateOpenRoundTrip(t *testing.T) {
	for _, name := range []string{"plain.txt", "data.gz", "data.zst"} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), name)

			w, err := Create(path)
			require.NoError(t, err)
			_, err = io.WriteString(w, "line one\nline two\n")
			require.NoError(t, err)
			require.NoError(t, w.Close())

			r, err := Open(path)
			require.NoError(t, err)
			defer r.Close()

			data, err := io.ReadAll(r)
			require.NoError(t, err)
			assert.Equal(t, "line one\nline two\n", string(data))
		})
	}
}

func TestOpenMissing(t *testing.T) {
	_, err := Open(filepath.Join(t.TempDir(), "missing.jsonl"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, fs.ErrNotExist))
}

func TestCreateBzip2Unsupported(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.bz2")
	_, err := Create(path)
	assert.Error(t, err)
	assert.NoFileExists(t, path)
}
