// pkg/translit/transform_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: None
// PURPOSE: Test the lowercase, transliterate, split and join pipeline

package translit_test

import (
	"testing"

	"github.com/arthur-debert/translit/pkg/translit"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var cyrillic = map[string]string{
	"п": "p", "р": "r", "и": "i", "в": "v", "е": "e", "т": "t",
	"м": "m", "щ": "shch", "у": "u", "к": "k", "а": "a", "ь": "",
}

func TestTransform(t *testing.T) {
	tests := []struct {
		name    string
		mapping map[string]string
		input   string
		want    string
	}{
		{"accents", map[string]string{"á": "a", "é": "e"}, "café.TXT", "cafe.txt"},
		{"empty_table_spaces_and_bangs", nil, "My File!!.txt", "my_file_.txt"},
		{"empty_table_only_unsafe", nil, "Привет", ""},
		{"empty_table_drops_unmapped_letters", nil, "naïve", "na_ve"},
		{"hyphen_is_unsafe", nil, "my-file-v2", "my_file_v2"},
		{"trims_unsafe_edges", nil, "  report  ", "report"},
		{"dots_are_safe", nil, "...", "..."},
		{"underscores_kept", nil, "__init__.py", "__init__.py"},
		{"already_clean", nil, "notes_2024.md", "notes_2024.md"},
		{"cyrillic_words", cyrillic, "Привет Мир.txt", "privet_mir.txt"},
		{"multi_character_value", cyrillic, "Щука", "shchuka"},
		{"empty_value_removes_character", cyrillic, "тьма", "tma"},
		{"value_characters_are_safe", map[string]string{"ö": "ø"}, "Köln", "køln"},
		{"value_space_is_safe", map[string]string{"&": " and "}, "salt&pepper", "salt and pepper"},
		{"decomposed_input_matches_precomposed_key", map[string]string{"\u00e9": "e"}, "cafe\u0301", "cafe"},
		{"decomposed_unmapped_letter_is_dropped_whole", nil, "e\u0301x", "x"},
		{"precomposed_unmapped_letter_is_dropped_whole", nil, "\u00e9x", "x"},
		{"empty_name", nil, "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			table, err := translit.NewTable(tt.mapping)
			require.NoError(t, err)
			assert.Equal(t, tt.want, table.Transform(tt.input))
		})
	}
}

func TestTransliterate(t *testing.T) {
	table, err := translit.NewTable(cyrillic)
	require.NoError(t, err)

	assert.Equal(t, "privet, mir!", table.Transliterate("привет, мир!"))
	assert.Equal(t, "shchi", table.Transliterate("щи"))
	assert.Equal(t, "abc", table.Transliterate("abc"))
}

func TestSplit(t *testing.T) {
	table := translit.Empty()

	assert.Equal(t, []string{"my", "file", ".txt"}, table.Split("my file!!.txt"))
	assert.Empty(t, table.Split("!!! ???"))
	assert.Empty(t, table.Split(""))
}

func TestIsSafe(t *testing.T) {
	table, err := translit.NewTable(map[string]string{"ß": "ss", "ø": "ø"})
	require.NoError(t, err)

	for _, r := range "azAZ09_.sø" {
		assert.True(t, table.IsSafe(r), "%q should be safe", r)
	}
	for _, r := range " -!/\\ßé" {
		assert.False(t, table.IsSafe(r), "%q should be unsafe", r)
	}
}
