// Package types defines the core types and interfaces shared across translit.
// This includes the FS interface the rename engine and table loader run on,
// and the records describing what a rename run did.
package types
