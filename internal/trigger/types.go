// Package trigger implements skill trigger matching: deciding which
// configured skills are activated by a user prompt or a set of edited
// file paths.
//
// The rule document lives at .claude/skills/skill-rules.json in the
// consuming project. It is loaded once into an immutable RuleSet and
// passed explicitly to the match functions; matching performs no writes,
// so a RuleSet is safe to share across concurrent queries.
package trigger

import (
	"encoding/json"
	"fmt"
)

// Priority orders matched skills in the report. It is a closed set:
// decoding an unknown value fails at load time.
type Priority int

const (
	PriorityCritical Priority = iota
	PriorityHigh
	PriorityMedium
	PriorityLow
)

// Priorities lists all priorities in report order.
var Priorities = []Priority{PriorityCritical, PriorityHigh, PriorityMedium, PriorityLow}

func (p Priority) String() string {
	switch p {
	case PriorityCritical:
		return "critical"
	case PriorityHigh:
		return "high"
	case PriorityMedium:
		return "medium"
	case PriorityLow:
		return "low"
	}
	return fmt.Sprintf("Priority(%d)", int(p))
}

// UnmarshalJSON rejects unknown priority values so a broken rule document
// fails at load time, not silently at match time.
func (p *Priority) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	switch s {
	case "critical":
		*p = PriorityCritical
	case "high":
		*p = PriorityHigh
	case "medium":
		*p = PriorityMedium
	case "low":
		*p = PriorityLow
	default:
		return fmt.Errorf("unknown priority %q", s)
	}
	return nil
}

func (p Priority) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.String())
}

// Enforcement is the advisory strength of a matched skill. It frames the
// report output and never affects matching.
type Enforcement int

const (
	EnforceSuggest Enforcement = iota
	EnforceWarn
	EnforceBlock
)

func (e Enforcement) String() string {
	switch e {
	case EnforceSuggest:
		return "suggest"
	case EnforceWarn:
		return "warn"
	case EnforceBlock:
		return "block"
	}
	return fmt.Sprintf("Enforcement(%d)", int(e))
}

func (e *Enforcement) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	switch s {
	case "suggest":
		*e = EnforceSuggest
	case "warn":
		*e = EnforceWarn
	case "block":
		*e = EnforceBlock
	default:
		return fmt.Errorf("unknown enforcement %q", s)
	}
	return nil
}

func (e Enforcement) MarshalJSON() ([]byte, error) {
	return json.Marshal(e.String())
}

// PromptTriggers activate a rule from the text of a user prompt.
// Keywords are matched first as case-insensitive substrings; intent
// patterns are case-insensitive regexes tried only when no keyword hit.
// Keywords starting with "_" are placeholders and are ignored.
type PromptTriggers struct {
	Keywords       []string `json:"keywords,omitempty"`
	IntentPatterns []string `json:"intentPatterns,omitempty"`
}

// FileTriggers activate a rule from edited file paths. A path matches when
// it satisfies at least one inclusion pattern and no exclusion pattern
// (doublestar glob semantics). Content patterns, when present, are regexes
// tested against the file contents of paths that passed the glob test.
type FileTriggers struct {
	PathPatterns    []string `json:"pathPatterns,omitempty"`
	PathExclusions  []string `json:"pathExclusions,omitempty"`
	ContentPatterns []string `json:"contentPatterns,omitempty"`
}

// SkillRule is one entry in the rule document.
type SkillRule struct {
	Name           string          `json:"-"` // map key in the document
	Enforcement    Enforcement     `json:"enforcement"`
	Priority       Priority        `json:"priority"`
	PromptTriggers *PromptTriggers `json:"promptTriggers,omitempty"`
	FileTriggers   *FileTriggers   `json:"fileTriggers,omitempty"`

	// Compiled pattern caches, populated lazily on first use.
	intentPatterns  *patternList
	contentPatterns *patternList
}

// RuleSet is the loaded rule document. Rules preserves the declaration
// order of the skills object so match output is stable across runs.
type RuleSet struct {
	Version     string
	Description string
	Rules       []*SkillRule
}

// Empty reports whether the rule set has no rules (e.g. the document was
// missing, which is not an error).
func (rs *RuleSet) Empty() bool {
	return rs == nil || len(rs.Rules) == 0
}

// Rule returns the rule with the given name, or nil.
func (rs *RuleSet) Rule(name string) *SkillRule {
	if rs == nil {
		return nil
	}
	for _, r := range rs.Rules {
		if r.Name == name {
			return r
		}
	}
	return nil
}

// TriggerKind identifies which trigger type activated a rule.
type TriggerKind string

const (
	TriggerKeyword TriggerKind = "keyword"
	TriggerIntent  TriggerKind = "intent"
	TriggerPath    TriggerKind = "path"
	TriggerContent TriggerKind = "content"
)

// Match is one activated skill. Trigger and Matched record which trigger
// fired and the keyword/pattern/path that satisfied it, for report framing.
type Match struct {
	Skill       string      `json:"skill"`
	Priority    Priority    `json:"priority"`
	Enforcement Enforcement `json:"enforcement"`
	Trigger     TriggerKind `json:"trigger"`
	Matched     string      `json:"matched"`
}

// Grouped partitions matches into the four fixed priority buckets.
// Each bucket preserves the relative order of its input.
type Grouped struct {
	Critical []Match `json:"critical,omitempty"`
	High     []Match `json:"high,omitempty"`
	Medium   []Match `json:"medium,omitempty"`
	Low      []Match `json:"low,omitempty"`
}

// Bucket returns the bucket for a priority.
func (g *Grouped) Bucket(p Priority) []Match {
	switch p {
	case PriorityCritical:
		return g.Critical
	case PriorityHigh:
		return g.High
	case PriorityMedium:
		return g.Medium
	default:
		return g.Low
	}
}

// Empty reports whether no bucket holds a match.
func (g *Grouped) Empty() bool {
	return len(g.Critical) == 0 && len(g.High) == 0 && len(g.Medium) == 0 && len(g.Low) == 0
}
