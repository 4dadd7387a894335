package style

import (
	"regexp"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

type markupTag struct {
	pattern *regexp.Regexp
	style   lipgloss.Style
}

// MarkupParser renders [tag]text[/tag] markup with lipgloss styles
type MarkupParser struct {
	tags map[string]markupTag
}

// NewMarkupParser creates a new markup parser with default styles
func NewMarkupParser() *MarkupParser {
	p := &MarkupParser{tags: make(map[string]markupTag)}
	for tag, style := range map[string]lipgloss.Style{
		"title":   TitleStyle,
		"success": SuccessStyle,
		"error":   ErrorStyle,
		"warning": WarningStyle,
		"path":    PathStyle,
		"name":    NameStyle,
		"muted":   MutedStyle,
		"file":    FileStyle,
		"dir":     DirStyle,
		"bold":    lipgloss.NewStyle().Bold(true),
	} {
		p.AddStyle(tag, style)
	}
	return p
}

// AddStyle registers or replaces a tag
func (p *MarkupParser) AddStyle(tag string, style lipgloss.Style) {
	p.tags[tag] = markupTag{
		pattern: regexp.MustCompile(`\[` + regexp.QuoteMeta(tag) + `\](.*?)\[/` + regexp.QuoteMeta(tag) + `\]`),
		style:   style,
	}
}

// Render processes markup text and returns styled output. Nested tags are
// resolved by repeating until nothing changes.
func (p *MarkupParser) Render(text string) string {
	result := text
	for {
		before := result
		for _, tag := range p.tags {
			result = tag.pattern.ReplaceAllStringFunc(result, func(match string) string {
				submatch := tag.pattern.FindStringSubmatch(match)
				if len(submatch) != 2 {
					return match
				}
				return tag.style.Render(submatch[1])
			})
		}
		if result == before {
			return result
		}
	}
}

// RenderTemplate substitutes {{key}} placeholders, then renders markup
func (p *MarkupParser) RenderTemplate(template string, vars map[string]string) string {
	result := template
	for key, value := range vars {
		result = strings.ReplaceAll(result, "{{"+key+"}}", value)
	}
	return p.Render(result)
}

// Strip removes markup tags, leaving their content
func (p *MarkupParser) Strip(text string) string {
	result := text
	for {
		before := result
		for _, tag := range p.tags {
			result = tag.pattern.ReplaceAllString(result, "$1")
		}
		if result == before {
			return result
		}
	}
}

var defaultParser = NewMarkupParser()

// Render is a convenience function using the default parser
func Render(text string) string {
	return defaultParser.Render(text)
}

// RenderTemplate is a convenience function using the default parser
func RenderTemplate(template string, vars map[string]string) string {
	return defaultParser.RenderTemplate(template, vars)
}

// Strip is a convenience function using the default parser
func Strip(text string) string {
	return defaultParser.Strip(text)
}
