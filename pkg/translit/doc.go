// Package translit builds transliteration tables and applies the name
// transform used by the rename engine.
//
// A Table maps single characters to replacement strings. It is built once,
// either from an explicit mapping (NewTable) or from a definition source
// (Parse, Load), and never changes afterwards. Duplicate keys are rejected
// at build time.
//
// Definition files hold one mapping per line:
//
//	ж,zh
//	é,e
//	ъ,#exclude
//
// Lines containing the exclusion marker and blank lines are ignored. Files
// ending in .yaml or .yml are read as a flat key/value mapping instead.
//
// Transform turns a raw entry name into its sanitized form:
// lowercase, transliterate, split on unsafe characters, join with "_".
package translit
