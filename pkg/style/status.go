package style

import (
	"fmt"
	"path/filepath"

	"github.com/arthur-debert/translit/pkg/types"
	"github.com/pterm/pterm"
)

// Status summarizes how a run ended
type Status string

const (
	StatusDone    Status = "done"    // Renames applied
	StatusPlanned Status = "planned" // Dry run
	StatusClean   Status = "clean"   // Nothing needed a new name
	StatusStopped Status = "stopped" // Both kinds excluded
	StatusFailed  Status = "failed"  // Run aborted, renames before the failure stay
)

// Verbs per status for a rename line
var renameVerbs = map[Status]string{
	StatusDone:    "renamed to",
	StatusPlanned: "would be renamed to",
	StatusFailed:  "renamed to",
}

// StatusStyle returns the appropriate pterm style for a status
func StatusStyle(status Status) *pterm.Style {
	switch status {
	case StatusDone:
		return pterm.NewStyle(pterm.BgGreen, pterm.FgWhite)
	case StatusPlanned:
		return pterm.NewStyle(pterm.BgYellow, pterm.FgBlack)
	case StatusFailed:
		return pterm.NewStyle(pterm.BgRed, pterm.FgWhite, pterm.Bold)
	case StatusStopped:
		return pterm.NewStyle(pterm.FgCyan)
	default:
		return pterm.NewStyle(pterm.FgGray)
	}
}

// RunStatus derives the status of a run from its result and error
func RunStatus(result *types.RenameResult, err error) Status {
	switch {
	case err != nil:
		return StatusFailed
	case result == nil:
		return StatusClean
	case result.Stopped:
		return StatusStopped
	case len(result.Renames) == 0:
		return StatusClean
	case result.DryRun:
		return StatusPlanned
	default:
		return StatusDone
	}
}

// Summary returns the counts line of a result
func Summary(result *types.RenameResult) string {
	verb := "renamed"
	if result.DryRun {
		verb = "to rename"
	}
	return fmt.Sprintf("%d %s, %d unchanged, %d skipped",
		len(result.Renames), verb, result.Unchanged, result.Skipped)
}

// renameLine renders one rename with markup tags
func renameLine(r types.Rename, status Status) string {
	verb, ok := renameVerbs[status]
	if !ok {
		verb = "renamed to"
	}
	return fmt.Sprintf("[%s]%-4s[/%s] [path]%s[/path] %s [name]%s[/name]",
		r.Kind, r.Kind, r.Kind, filepath.Join(r.Dir, r.OldName), verb, r.NewName)
}
