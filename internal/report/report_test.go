package report

import (
	"strings"
	"testing"

	"github.com/skillmatch/skillmatch/internal/trigger"
)

func TestWrite_NoMatchesNoOutput(t *testing.T) {
	var b strings.Builder
	if err := NewRenderer(false).Write(&b, trigger.Grouped{}); err != nil {
		t.Fatal(err)
	}
	if b.Len() != 0 {
		t.Errorf("expected no output, got %q", b.String())
	}
}

func TestWrite_GroupedHeadings(t *testing.T) {
	g := trigger.GroupByPriority([]trigger.Match{
		{Skill: "a", Priority: trigger.PriorityHigh, Enforcement: trigger.EnforceSuggest, Trigger: trigger.TriggerKeyword, Matched: "endpoint"},
		{Skill: "x", Priority: trigger.PriorityCritical, Enforcement: trigger.EnforceBlock, Trigger: trigger.TriggerKeyword, Matched: "secret"},
		{Skill: "b", Priority: trigger.PriorityHigh, Enforcement: trigger.EnforceWarn, Trigger: trigger.TriggerPath, Matched: "api/users.py"},
	})

	var b strings.Builder
	if err := NewRenderer(false).Write(&b, g); err != nil {
		t.Fatal(err)
	}
	out := b.String()

	// Fixed heading order, empty groups omitted.
	critIdx := strings.Index(out, "CRITICAL")
	highIdx := strings.Index(out, "HIGH")
	if critIdx < 0 || highIdx < 0 || critIdx > highIdx {
		t.Errorf("headings missing or out of order:\n%s", out)
	}
	if strings.Contains(out, "MEDIUM") || strings.Contains(out, "LOW") {
		t.Errorf("empty groups should be omitted:\n%s", out)
	}

	// Bucket order preserved; enforcement markers present.
	aIdx := strings.Index(out, "a (")
	bIdx := strings.Index(out, "b (")
	if aIdx < 0 || bIdx < 0 || aIdx > bIdx {
		t.Errorf("high bucket order not preserved:\n%s", out)
	}
	for _, want := range []string{"[block] x", "[suggest] a", "[warn] b"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %q in output:\n%s", want, out)
		}
	}
}

func TestWrite_PlainHasNoANSI(t *testing.T) {
	g := trigger.Grouped{Low: []trigger.Match{
		{Skill: "s", Priority: trigger.PriorityLow, Trigger: trigger.TriggerKeyword, Matched: "k"},
	}}

	var b strings.Builder
	if err := NewRenderer(false).Write(&b, g); err != nil {
		t.Fatal(err)
	}
	if strings.Contains(b.String(), "\x1b[") {
		t.Errorf("plain output contains ANSI escapes: %q", b.String())
	}
}

func TestMarkdownRenderer_FallsBackOnNil(t *testing.T) {
	r := &MarkdownRenderer{}
	if got := r.Render("# Title"); got != "# Title" {
		t.Errorf("expected raw markdown fallback, got %q", got)
	}
}
