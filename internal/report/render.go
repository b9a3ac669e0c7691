package report

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

// Format selects how a markdown report is emitted
type Format string

// Output formats
const (
	FormatMarkdown Format = "markdown"
	FormatTerminal Format = "terminal"
	FormatHTML     Format = "html"
	FormatJSON     Format = "json"
)

// ParseFormat accepts a format name, case-insensitive
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatMarkdown, FormatTerminal, FormatHTML, FormatJSON:
		return f, nil
	case "md":
		return FormatMarkdown, nil
	case "":
		return FormatMarkdown, nil
	default:
		return "", fmt.Errorf("unknown format %q (want markdown, terminal, html or json)", s)
	}
}

// DefaultWordWrap is the terminal width used by ToTerminal
const DefaultWordWrap = 100

// ToTerminal renders markdown with ANSI styling for a TTY
func ToTerminal(md string, style string) (string, error) {
	opts := []glamour.TermRendererOption{
		glamour.WithWordWrap(DefaultWordWrap),
		glamour.WithEmoji(),
	}
	if style == "" {
		opts = append(opts, glamour.WithAutoStyle())
	} else {
		opts = append(opts, glamour.WithStandardStyle(style))
	}

	r, err := glamour.NewTermRenderer(opts...)
	if err != nil {
		return "", fmt.Errorf("create terminal renderer: %w", err)
	}

	out, err := r.Render(md)
	if err != nil {
		return "", fmt.Errorf("render terminal markdown: %w", err)
	}
	return out, nil
}

var htmlRenderer = goldmark.New(goldmark.WithExtensions(extension.Table))

// ToHTML converts markdown to an HTML fragment, tables included
func ToHTML(md string) (string, error) {
	var buf bytes.Buffer
	if err := htmlRenderer.Convert([]byte(md), &buf); err != nil {
		return "", fmt.Errorf("render html: %w", err)
	}
	return buf.String(), nil
}

// Render converts markdown to the requested text format.
// FormatJSON is handled by callers since it needs the underlying data.
func Render(md string, format Format) (string, error) {
	switch format {
	case FormatMarkdown, "":
		return md, nil
	case FormatTerminal:
		return ToTerminal(md, "")
	case FormatHTML:
		return ToHTML(md)
	default:
		return "", fmt.Errorf("format %q cannot be rendered from markdown", format)
	}
}
