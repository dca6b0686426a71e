package report

import (
	"strings"

	"github.com/charmbracelet/glamour"
)

// MarkdownRenderer renders skill documents to styled ANSI output.
type MarkdownRenderer struct {
	renderer *glamour.TermRenderer
}

// NewMarkdownRenderer creates a renderer for the given terminal width.
func NewMarkdownRenderer(width int) *MarkdownRenderer {
	if width < 40 {
		width = 80
	}
	r, _ := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width-4), // small margin for safety
	)
	return &MarkdownRenderer{renderer: r}
}

// Render converts markdown to styled ANSI output, falling back to the raw
// markdown if rendering fails.
func (r *MarkdownRenderer) Render(md string) string {
	if r.renderer == nil {
		return md
	}
	out, err := r.renderer.Render(md)
	if err != nil {
		return md
	}
	// glamour often adds trailing newlines; trim for tighter display.
	return strings.TrimRight(out, "\n")
}
