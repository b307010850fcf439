package reader

import "strings"

// Record is one decoded JSON object.
type Record map[string]any

func (r Record) ContainField(field string) bool {
	_, ok := r[field]
	return ok
}

// Text returns the trimmed string value of field. Missing, null, non-string
// and blank values are reported as absent.
func (r Record) Text(field string) (string, bool) {
	if !r.ContainField(field) {
		return "", false
	}
	s, ok := r[field].(string)
	if !ok {
		return "", false
	}
	s = strings.TrimSpace(s)
	if s == "" {
		return "", false
	}
	return s, true
}
