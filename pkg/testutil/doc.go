// Package testutil provides helpers shared by translit tests.
//
// Key components:
//   - Environment: an isolated temp tree with XDG directories redirected
//   - BuildTree/ListTree: declarative trees on any types.FS
//
// Trees are described as slash paths; a trailing "/" marks a directory.
package testutil
