// Package report renders match results as a grouped, human-readable
// report: matched skills under the four priority headings, styled on a
// terminal and plain when piped. No matches means no output at all — the
// report must never add noise to the host assistant's transcript.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/skillmatch/skillmatch/internal/trigger"
)

// Renderer writes grouped match reports.
type Renderer struct {
	styled bool
}

// NewRenderer creates a renderer. styled selects ANSI styling; callers
// pass false when stdout is not a terminal.
func NewRenderer(styled bool) *Renderer {
	return &Renderer{styled: styled}
}

// Write renders the grouped matches to w. Nothing is written when no
// bucket holds a match.
func (r *Renderer) Write(w io.Writer, g trigger.Grouped) error {
	if g.Empty() {
		return nil
	}

	var b strings.Builder
	for _, p := range trigger.Priorities {
		bucket := g.Bucket(p)
		if len(bucket) == 0 {
			continue
		}
		b.WriteString(r.heading(p) + "\n")
		for _, m := range bucket {
			b.WriteString(r.line(m) + "\n")
		}
	}

	_, err := io.WriteString(w, b.String())
	return err
}

// heading renders one priority heading, e.g. "CRITICAL".
func (r *Renderer) heading(p trigger.Priority) string {
	text := strings.ToUpper(p.String())
	if !r.styled {
		return text
	}
	switch p {
	case trigger.PriorityCritical:
		return criticalHeadingStyle.Render(text)
	case trigger.PriorityHigh:
		return highHeadingStyle.Render(text)
	case trigger.PriorityMedium:
		return mediumHeadingStyle.Render(text)
	default:
		return lowHeadingStyle.Render(text)
	}
}

// line renders one matched skill with its enforcement marker and the
// trigger that fired.
func (r *Renderer) line(m trigger.Match) string {
	marker := enforcementMarker(m.Enforcement)
	detail := fmt.Sprintf("(%s: %s)", m.Trigger, m.Matched)

	if !r.styled {
		return fmt.Sprintf("  %s %s %s", marker, m.Skill, detail)
	}

	name := skillNameStyle.Render(m.Skill)
	switch m.Enforcement {
	case trigger.EnforceBlock:
		marker = blockMarkerStyle.Render(marker)
	case trigger.EnforceWarn:
		marker = warnMarkerStyle.Render(marker)
	}
	return fmt.Sprintf("  %s %s %s", marker, name, triggerDetailStyle.Render(detail))
}

// enforcementMarker returns the textual marker for an enforcement level.
func enforcementMarker(e trigger.Enforcement) string {
	switch e {
	case trigger.EnforceBlock:
		return "[block]"
	case trigger.EnforceWarn:
		return "[warn]"
	default:
		return "[suggest]"
	}
}
