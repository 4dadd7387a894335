// Package renamer walks a directory tree and renames entries through a
// transliteration table.
//
// The walk is post-order: a directory is yielded after all of its
// subdirectories, so renaming it never invalidates a path that is still
// pending. Each yielded directory has a layer, 1 for the root, and a
// bounded engine only touches directories whose layer is within the bound.
// Exclusion flags drop files or directories from processing.
//
// Renames happen one at a time, with no batching and no rollback. The first
// failure ends the run; the returned result still lists what was renamed
// before it.
package renamer
