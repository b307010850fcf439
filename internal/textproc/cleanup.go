package textproc

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var (
	reCarriage   = regexp.MustCompile(`\r+`)
	reNonASCII   = regexp.MustCompile(`[^\x00-\x7F]`)
	reQuestions  = regexp.MustCompile(`\?+`)
	reExclaims   = regexp.MustCompile(`!+`)
	reDots       = regexp.MustCompile(`\.+`)
	reColons     = regexp.MustCompile(`:+`)
	reBreakTag   = regexp.MustCompile(`(?i)<br\s*/?>`)
	reOpenTag    = regexp.MustCompile(`(?i)<[a-z]+[^/>]*/?>`)
	reNewlineRun = regexp.MustCompile(`\n+`)
)

// RemoveDiacritics strips combining marks after canonical decomposition.
func RemoveDiacritics(text string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, text)
	if err != nil {
		return text
	}
	return out
}

// CleanUp normalizes answer text scraped from HTML into plain ASCII.
// Runs of ?, !, . and : are collapsed since they confuse downstream tokenizers.
func CleanUp(s string) string {
	s = strings.TrimSpace(s)
	s = reCarriage.ReplaceAllString(s, "")
	s = strings.ReplaceAll(s, "’", "'")

	s = RemoveDiacritics(s)
	s = reNonASCII.ReplaceAllString(s, " ")

	s = reQuestions.ReplaceAllString(s, "?")
	s = reExclaims.ReplaceAllString(s, "!")
	s = reDots.ReplaceAllString(s, ".")
	s = reColons.ReplaceAllString(s, ":")

	s = reBreakTag.ReplaceAllString(s, "\n")
	s = reOpenTag.ReplaceAllString(s, " ")
	return reNewlineRun.ReplaceAllString(s, "\n")
}
