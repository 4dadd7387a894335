package style

import (
	"fmt"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
	"github.com/pterm/pterm"

	"github.com/arthur-debert/translit/pkg/errors"
	"github.com/arthur-debert/translit/pkg/translit"
	"github.com/arthur-debert/translit/pkg/types"
)

const (
	emptyTableRich  = "Void dictionary"
	emptyTablePlain = "empty table"
	stoppedMessage  = "Files and directories are both excluded, nothing to do"
	cleanMessage    = "Nothing to rename"
)

// Renderer defines the interface for rendering command output
type Renderer interface {
	RenderTable(entries []translit.Entry) string
	RenderResult(result *types.RenameResult, err error) string
	RenderError(err error) string
}

// NewRenderer picks a terminal renderer when out is a color-capable
// terminal, a plain one otherwise
func NewRenderer(out *os.File) Renderer {
	if !IsTerminal(out) {
		return NewPlainRenderer()
	}
	return NewTerminalRenderer()
}

// IsTerminal reports whether f is a terminal that accepts styling.
// NO_COLOR and a dumb TERM count as plain.
func IsTerminal(f *os.File) bool {
	if !isatty.IsTerminal(f.Fd()) && !isatty.IsCygwinTerminal(f.Fd()) {
		return false
	}
	return termenv.EnvColorProfile() != termenv.Ascii
}

// TerminalRenderer implements Renderer with rich terminal output
type TerminalRenderer struct{}

// NewTerminalRenderer creates a new terminal renderer
func NewTerminalRenderer() *TerminalRenderer {
	return &TerminalRenderer{}
}

// RenderTable renders the table entries sorted by key
func (r *TerminalRenderer) RenderTable(entries []translit.Entry) string {
	if len(entries) == 0 {
		return MutedStyle.Render(emptyTableRich)
	}

	data := pterm.TableData{{"symbol", "replacement"}}
	for _, e := range entries {
		data = append(data, []string{e.Key, e.Value})
	}
	table, err := pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
	if err != nil {
		return NewPlainRenderer().RenderTable(entries)
	}

	return TitleStyle.Render("Transliteration table") + "\n\n" + strings.TrimRight(table, "\n")
}

// RenderResult renders the renames of a run followed by its summary
func (r *TerminalRenderer) RenderResult(result *types.RenameResult, err error) string {
	status := RunStatus(result, err)
	if result == nil {
		return ""
	}

	switch status {
	case StatusStopped:
		return MutedStyle.Render(stoppedMessage)
	case StatusClean:
		return SkipIndicator + " " + MutedStyle.Render(cleanMessage) + "\n" + Indent(MutedStyle.Render(Summary(result)), 1)
	}

	var out strings.Builder
	if result.DryRun {
		out.WriteString(Render("[warning]Dry run[/warning], nothing was renamed") + "\n\n")
	}

	indicator := SuccessIndicator
	if result.DryRun {
		indicator = PendingIndicator
	}
	for _, rename := range result.Renames {
		out.WriteString(indicator + " " + Render(renameLine(rename, status)) + "\n")
	}

	label := StatusStyle(status).Sprint(" " + string(status) + " ")
	out.WriteString("\n" + label + " " + Summary(result))
	return out.String()
}

// RenderError renders an error message
func (r *TerminalRenderer) RenderError(err error) string {
	if err == nil {
		return ""
	}

	if code := errors.GetErrorCode(err); code != errors.ErrUnknown {
		return fmt.Sprintf("%s Error [%s]: %s",
			pterm.Error.Prefix.Text,
			pterm.Error.MessageStyle.Sprint(code),
			err.Error())
	}

	return fmt.Sprintf("%s %s", pterm.Error.Prefix.Text, pterm.Error.MessageStyle.Sprint(err.Error()))
}

// PlainRenderer implements Renderer with plain text output (no styling)
type PlainRenderer struct{}

// NewPlainRenderer creates a new plain text renderer
func NewPlainRenderer() *PlainRenderer {
	return &PlainRenderer{}
}

// RenderTable renders entries in the definition file format
func (r *PlainRenderer) RenderTable(entries []translit.Entry) string {
	if len(entries) == 0 {
		return emptyTablePlain
	}

	var result strings.Builder
	for _, e := range entries {
		result.WriteString(e.Key + "," + e.Value + "\n")
	}
	return strings.TrimRight(result.String(), "\n")
}

// RenderResult renders one line per rename and the summary
func (r *PlainRenderer) RenderResult(result *types.RenameResult, err error) string {
	status := RunStatus(result, err)
	if result == nil {
		return ""
	}
	if status == StatusStopped {
		return stoppedMessage
	}

	var out strings.Builder
	for _, rename := range result.Renames {
		out.WriteString(Strip(renameLine(rename, status)) + "\n")
	}
	out.WriteString(Summary(result))
	return out.String()
}

// RenderError renders a plain error message
func (r *PlainRenderer) RenderError(err error) string {
	if err == nil {
		return ""
	}
	return fmt.Sprintf("Error: %s", err.Error())
}
