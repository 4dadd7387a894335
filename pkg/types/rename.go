package types

// EntryKind tells files and directories apart in a rename record
type EntryKind string

const (
	EntryFile EntryKind = "file"
	EntryDir  EntryKind = "dir"
)

// Rename records one entry renamed (or planned, in dry-run mode)
type Rename struct {
	// Dir is the parent directory, shared by the old and new name
	Dir     string
	OldName string
	NewName string
	Kind    EntryKind
	// Layer is the layer of Dir; 0 when the run was unbounded
	Layer int
}

// RenameResult is the outcome of a rename run. On a mid-run failure it
// holds everything done before the failure.
type RenameResult struct {
	Root    string
	DryRun  bool
	Renames []Rename
	// Unchanged counts entries whose transformed name equals the current one
	Unchanged int
	// Skipped counts entries left alone because nothing survived sanitizing
	Skipped int
	// Stopped is set when both exclusion flags ended the run immediately
	Stopped bool
}
