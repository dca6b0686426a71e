package trigger

import "strings"

// Issue is a non-fatal diagnostic about a loaded rule set. These are
// conditions matching tolerates silently (skipped patterns, inert rules)
// but an operator running validate wants to see.
type Issue struct {
	Skill  string
	Detail string
}

// Lint reports diagnostics for every rule: regex patterns that fail to
// compile, rules that can never match a prompt, and rules with no triggers
// at all.
func (rs *RuleSet) Lint() []Issue {
	if rs.Empty() {
		return nil
	}
	var issues []Issue
	for _, rule := range rs.Rules {
		if strings.HasPrefix(rule.Name, "_") {
			continue
		}
		if rule.PromptTriggers == nil && rule.FileTriggers == nil {
			issues = append(issues, Issue{rule.Name, "no triggers declared; rule can never match"})
			continue
		}
		if rule.intentPatterns != nil {
			for _, p := range rule.intentPatterns.invalidPatterns() {
				issues = append(issues, Issue{rule.Name, "intent pattern does not compile: " + p})
			}
		}
		if rule.contentPatterns != nil {
			for _, p := range rule.contentPatterns.invalidPatterns() {
				issues = append(issues, Issue{rule.Name, "content pattern does not compile: " + p})
			}
		}
		if pt := rule.PromptTriggers; pt != nil && !hasLiveKeyword(pt.Keywords) && len(pt.IntentPatterns) == 0 {
			issues = append(issues, Issue{rule.Name, "prompt triggers contain only placeholder keywords"})
		}
	}
	return issues
}

func hasLiveKeyword(keywords []string) bool {
	for _, kw := range keywords {
		if kw != "" && !strings.HasPrefix(kw, "_") {
			return true
		}
	}
	return false
}
