package trigger

import (
	"os"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// MatchPrompt tests a free-text prompt against every rule and returns the
// activated skills in declaration order. Skills whose name starts with "_"
// are treated as placeholders and skipped.
//
// For each rule, keywords are tested first as case-insensitive substrings;
// a keyword hit short-circuits intent-pattern evaluation for that rule.
// Intent patterns are case-insensitive unanchored searches. A rule with no
// prompt triggers never matches.
func MatchPrompt(prompt string, rs *RuleSet) []Match {
	if rs.Empty() {
		return nil
	}
	lower := strings.ToLower(prompt)

	var matches []Match
	for _, rule := range rs.Rules {
		if strings.HasPrefix(rule.Name, "_") {
			continue
		}
		pt := rule.PromptTriggers
		if pt == nil {
			continue
		}

		if kw := matchKeyword(lower, pt.Keywords); kw != "" {
			matches = append(matches, matchFor(rule, TriggerKeyword, kw))
			continue
		}
		if rule.intentPatterns == nil {
			rule.intentPatterns = newPatternList(pt.IntentPatterns)
		}
		if pat := rule.intentPatterns.findMatch(prompt); pat != "" {
			matches = append(matches, matchFor(rule, TriggerIntent, pat))
		}
	}
	return matches
}

// matchKeyword returns the first keyword contained in the lowercased
// prompt. Keywords starting with "_" are placeholders and are ignored.
func matchKeyword(lowerPrompt string, keywords []string) string {
	for _, kw := range keywords {
		if kw == "" || strings.HasPrefix(kw, "_") {
			continue
		}
		if strings.Contains(lowerPrompt, strings.ToLower(kw)) {
			return kw
		}
	}
	return ""
}

// FileMatchOptions controls MatchFiles behavior.
type FileMatchOptions struct {
	// ReadContent enables content-pattern evaluation. When false, rules
	// that declare contentPatterns match on the glob test alone.
	ReadContent bool
}

// MatchFiles tests edited file paths against every rule's file triggers.
// A rule matches when at least one path matches an inclusion pattern and
// no exclusion pattern. When the rule declares content patterns and
// opts.ReadContent is set, the surviving paths' contents must additionally
// match one of them; unreadable files are treated as non-matching, not as
// errors. Output order follows rule declaration order.
func MatchFiles(paths []string, rs *RuleSet, opts FileMatchOptions) []Match {
	if rs.Empty() || len(paths) == 0 {
		return nil
	}

	var matches []Match
	for _, rule := range rs.Rules {
		if strings.HasPrefix(rule.Name, "_") {
			continue
		}
		ft := rule.FileTriggers
		if ft == nil || len(ft.PathPatterns) == 0 {
			continue
		}

		for _, path := range paths {
			hit := matchPath(path, ft)
			if hit == "" {
				continue
			}
			if opts.ReadContent && len(ft.ContentPatterns) > 0 {
				if rule.contentPatterns == nil {
					rule.contentPatterns = newPatternList(ft.ContentPatterns)
				}
				pat := matchContent(path, rule.contentPatterns)
				if pat == "" {
					continue
				}
				matches = append(matches, matchFor(rule, TriggerContent, pat))
			} else {
				matches = append(matches, matchFor(rule, TriggerPath, path))
			}
			break // one matching path activates the rule
		}
	}
	return matches
}

// matchPath runs the inclusion-then-exclusion glob test for one path.
// It returns the inclusion pattern that matched, or "".
func matchPath(path string, ft *FileTriggers) string {
	// Globs in the rule document use forward slashes.
	norm := strings.ReplaceAll(path, "\\", "/")

	included := ""
	for _, pat := range ft.PathPatterns {
		ok, err := doublestar.Match(pat, norm)
		if err != nil {
			continue // malformed glob: skipped like a malformed regex
		}
		if ok {
			included = pat
			break
		}
	}
	if included == "" {
		return ""
	}
	for _, pat := range ft.PathExclusions {
		ok, err := doublestar.Match(pat, norm)
		if err != nil {
			continue
		}
		if ok {
			return ""
		}
	}
	return included
}

// matchContent reads the file and searches the content patterns.
// Returns the matching pattern, or "" (including for unreadable files).
func matchContent(path string, patterns *patternList) string {
	data, err := os.ReadFile(path)
	if err != nil {
		return ""
	}
	return patterns.findMatch(string(data))
}

func matchFor(rule *SkillRule, kind TriggerKind, matched string) Match {
	return Match{
		Skill:       rule.Name,
		Priority:    rule.Priority,
		Enforcement: rule.Enforcement,
		Trigger:     kind,
		Matched:     matched,
	}
}

// GroupByPriority partitions matches into the four fixed priority buckets.
// Buckets preserve the relative order of the input. An out-of-range
// priority cannot occur here: the closed enum rejects unknown values when
// the rule document is loaded.
func GroupByPriority(matches []Match) Grouped {
	var g Grouped
	for _, m := range matches {
		switch m.Priority {
		case PriorityCritical:
			g.Critical = append(g.Critical, m)
		case PriorityHigh:
			g.High = append(g.High, m)
		case PriorityMedium:
			g.Medium = append(g.Medium, m)
		case PriorityLow:
			g.Low = append(g.Low, m)
		}
	}
	return g
}
