package textproc

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/bbalet/stopwords"
	"github.com/jdkato/prose/v2"
	"github.com/kljensen/snowball/english"
)

// TextParser tokenizes text with prose and stems tokens with the Snowball
// English stemmer. Without an explicit stop-word list the built-in English
// list is applied to each token.
type TextParser struct {
	stopWords StopWords
	lowerCase bool
	stem      func(string) string
}

const builtinStopWordLang = "en"

type ParserOption func(*TextParser)

func WithStopWords(sw StopWords) ParserOption {
	return func(p *TextParser) {
		p.stopWords = sw
	}
}

func WithLowerCase(lower bool) ParserOption {
	return func(p *TextParser) {
		p.lowerCase = lower
	}
}

func WithStemmer(stem func(string) string) ParserOption {
	return func(p *TextParser) {
		p.stem = stem
	}
}

func NewTextParser(opts ...ParserOption) *TextParser {
	p := &TextParser{
		lowerCase: true,
		stem: func(word string) string {
			return english.Stem(word, false)
		},
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// ProcText returns the stemmed tokens and the surface tokens of text, both
// space-joined, after stop-word and punctuation filtering.
func (p *TextParser) ProcText(text string) (string, string, error) {
	doc, err := prose.NewDocument(text,
		prose.WithTagging(false),
		prose.WithExtraction(false),
		prose.WithSegmentation(false),
	)
	if err != nil {
		return "", "", fmt.Errorf("tokenize text: %w", err)
	}

	var lemmas, unlemm []string
	for _, tok := range doc.Tokens() {
		word := tok.Text
		if p.lowerCase {
			word = strings.ToLower(word)
		}
		if !isAlphaNum(word) || p.isStopWord(strings.ToLower(word)) {
			continue
		}
		lemma := p.stem(word)
		if lemma == "" {
			continue
		}
		lemmas = append(lemmas, lemma)
		unlemm = append(unlemm, word)
	}

	return strings.Join(lemmas, " "), strings.Join(unlemm, " "), nil
}

func (p *TextParser) isStopWord(word string) bool {
	if p.stopWords != nil {
		return p.stopWords.Contains(word)
	}
	return isBuiltinStopWord(word)
}

// isBuiltinStopWord consults the bbalet English list. CleanString strips
// digits, so only purely alphabetic tokens are looked up.
func isBuiltinStopWord(word string) bool {
	for _, r := range word {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return strings.TrimSpace(stopwords.CleanString(word, builtinStopWordLang, false)) == ""
}

func isAlphaNum(word string) bool {
	for _, r := range word {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			return false
		}
	}
	return word != ""
}
