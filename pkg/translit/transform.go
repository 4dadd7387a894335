package translit

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Transform returns the sanitized form of name. An empty result means
// nothing survived sanitizing and the entry must be left as it is.
func (t *Table) Transform(name string) string {
	fragments := t.Split(t.Transliterate(strings.ToLower(norm.NFC.String(name))))
	if len(fragments) == 0 {
		return ""
	}
	return strings.Join(fragments, "_")
}

// Transliterate replaces every mapped character of s by its value.
// Unmapped characters are kept.
func (t *Table) Transliterate(s string) string {
	var sb strings.Builder
	sb.Grow(len(s))
	for _, r := range s {
		if v, ok := t.mapping[r]; ok {
			sb.WriteString(v)
			continue
		}
		sb.WriteRune(r)
	}
	return sb.String()
}

// Split cuts s on runs of unsafe characters and drops empty fragments
func (t *Table) Split(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool {
		return !t.IsSafe(r)
	})
}
