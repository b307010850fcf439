package textproc

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadStopWords(t *testing.T) {
	path := filepath.Join(t.TempDir(), "stopwords.txt")
	content := "# English stop words\nThe\n\n  a  \nof\n#not-a-word\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	t.Run("lower-cased", func(t *testing.T) {
		sw, err := LoadStopWords(path, true)
		require.NoError(t, err)
		assert.Equal(t, 3, sw.Len())
		assert.True(t, sw.Contains("the"))
		assert.True(t, sw.Contains("a"))
		assert.False(t, sw.Contains("The"))
		assert.False(t, sw.Contains("#not-a-word"))
	})

	t.Run("case preserved", func(t *testing.T) {
		sw, err := LoadStopWords(path, false)
		require.NoError(t, err)
		assert.True(t, sw.Contains("The"))
		assert.False(t, sw.Contains("the"))
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadStopWords(filepath.Join(t.TempDir(), "none.txt"), true)
		assert.Error(t, err)
	})
}

func TestTextParser_ProcText(t *testing.T) {
	upper := func(s string) string { return strings.ToUpper(s) }

	t.Run("filters stop words and punctuation", func(t *testing.T) {
		p := NewTextParser(WithStopWords(NewStopWords("the", "of")), WithStemmer(upper))

		lemmas, unlemm, err := p.ProcText("The History of Machine Learning, explained!")
		require.NoError(t, err)
		assert.Equal(t, "history machine learning explained", unlemm)
		assert.Equal(t, "HISTORY MACHINE LEARNING EXPLAINED", lemmas)
	})

	t.Run("keeps case when asked", func(t *testing.T) {
		p := NewTextParser(
			WithStopWords(NewStopWords()),
			WithLowerCase(false),
			WithStemmer(func(s string) string { return s }),
		)

		_, unlemm, err := p.ProcText("Go Language")
		require.NoError(t, err)
		assert.Equal(t, "Go Language", unlemm)
	})

	t.Run("default stemmer", func(t *testing.T) {
		p := NewTextParser(WithStopWords(NewStopWords()))

		lemmas, unlemm, err := p.ProcText("running dogs")
		require.NoError(t, err)
		assert.Equal(t, "running dogs", unlemm)
		assert.Equal(t, "run dog", lemmas)
	})

	t.Run("built-in stop words", func(t *testing.T) {
		p := NewTextParser(WithStemmer(func(s string) string { return s }))

		_, unlemm, err := p.ProcText("the machine and the learning")
		require.NoError(t, err)
		toks := strings.Fields(unlemm)
		assert.Contains(t, toks, "machine")
		assert.Contains(t, toks, "learning")
		assert.NotContains(t, toks, "the")
	})

	t.Run("built-in stop words keep numbers", func(t *testing.T) {
		p := NewTextParser(WithStemmer(func(s string) string { return s }))

		tests := map[string]string{
			"windows 10 update": "windows 10 update",
			"iPhone 12 price":   "iphone 12 price",
			"what is 3m":        "3m",
		}
		for in, want := range tests {
			lemmas, unlemm, err := p.ProcText(in)
			require.NoError(t, err, in)
			assert.Equal(t, want, unlemm, in)
			assert.Equal(t, want, lemmas, in)
		}
	})

	t.Run("empty text", func(t *testing.T) {
		p := NewTextParser(WithStopWords(NewStopWords()))

		lemmas, unlemm, err := p.ProcText("")
		require.NoError(t, err)
		assert.Empty(t, lemmas)
		assert.Empty(t, unlemm)
	})
}

func TestRemoveDiacritics(t *testing.T) {
	assert.Equal(t, "Cafe naive resume", RemoveDiacritics("Café naïve résumé"))
}

func TestCleanUp(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"trims and drops carriage returns", "  line\r\n  ", "line"},
		{"normalizes quotes and diacritics", "Café’s menu", "Cafe's menu"},
		{"replaces non ascii", "price €5", "price  5"},
		{"collapses punctuation", "What?? Wow!!! Wait... Note::", "What? Wow! Wait. Note:"},
		{"html breaks and tags", "one<br/>two<BR>three <b>bold</b>", "one\ntwo\nthree  bold</b>"},
		{"collapses newlines", "a<br><br>b", "a\nb"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CleanUp(tt.in))
		})
	}
}
