package translit

import (
	"sort"
	"unicode/utf8"

	"github.com/arthur-debert/translit/pkg/errors"
	"golang.org/x/text/unicode/norm"
)

// Table is an immutable mapping from single characters to replacements
type Table struct {
	mapping map[rune]string
	// safe holds every rune appearing in any replacement value
	safe map[rune]struct{}
}

// Entry is one key/value pair of a table
type Entry struct {
	Key   string
	Value string
}

// NewTable builds a table from an explicit mapping. Every key must be
// exactly one character. Keys that collapse to the same character once
// normalized are duplicates. A nil mapping yields an empty table.
func NewTable(mapping map[string]string) (*Table, error) {
	b := newBuilder()
	for key, value := range mapping {
		r, err := singleRune(key)
		if err != nil {
			return nil, err
		}
		if err := b.add(r, value, 0); err != nil {
			return nil, err
		}
	}
	return b.build(), nil
}

// Empty returns a table with no mappings
func Empty() *Table {
	return newBuilder().build()
}

// Lookup returns the replacement for r
func (t *Table) Lookup(r rune) (string, bool) {
	v, ok := t.mapping[r]
	return v, ok
}

// Len returns the number of mappings
func (t *Table) Len() int {
	return len(t.mapping)
}

// Entries returns all mappings sorted by key
func (t *Table) Entries() []Entry {
	entries := make([]Entry, 0, len(t.mapping))
	for k, v := range t.mapping {
		entries = append(entries, Entry{Key: string(k), Value: v})
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Key < entries[j].Key })
	return entries
}

// IsSafe reports whether r survives sanitizing: ASCII letters and digits,
// '_', '.', and any rune produced by the table's replacements.
func (t *Table) IsSafe(r rune) bool {
	switch {
	case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		return true
	case r == '_' || r == '.':
		return true
	}
	_, ok := t.safe[r]
	return ok
}

// builder collects mappings and rejects duplicates
type builder struct {
	mapping map[rune]string
}

func newBuilder() *builder {
	return &builder{mapping: make(map[rune]string)}
}

func (b *builder) add(key rune, value string, line int) error {
	if previous, ok := b.mapping[key]; ok {
		return errors.Newf(errors.ErrDuplicateKey,
			"symbol '%c' is already in the table: value '%s' cannot overwrite '%s'", key, value, previous).
			WithDetails(map[string]interface{}{
				"key":      string(key),
				"value":    value,
				"previous": previous,
				"line":     line,
			})
	}
	b.mapping[key] = value
	return nil
}

func (b *builder) build() *Table {
	t := &Table{
		mapping: b.mapping,
		safe:    make(map[rune]struct{}),
	}
	for _, v := range t.mapping {
		for _, r := range v {
			t.safe[r] = struct{}{}
		}
	}
	return t
}

// singleRune decodes a key in NFC form, so a decomposed "é" is one character
func singleRune(key string) (rune, *errors.Error) {
	key = norm.NFC.String(key)
	if utf8.RuneCountInString(key) != 1 {
		return 0, errors.Newf(errors.ErrTableInvalid,
			"table key %q must be exactly one character", key).
			WithDetail("key", key)
	}
	r, _ := utf8.DecodeRuneInString(key)
	return r, nil
}
