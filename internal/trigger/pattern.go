package trigger

import (
	"regexp"
	"sync"
)

// patternList holds regex patterns compiled lazily on first use and cached
// for the lifetime of the rule set load. A pattern that fails to compile is
// marked invalid once and skipped on every subsequent query; it never aborts
// the rule or the match pass. Compilation is guarded by a sync.Once so a
// loaded RuleSet stays safe to share across concurrent queries.
type patternList struct {
	raw []string

	once     sync.Once
	compiled []*regexp.Regexp // nil entry = invalid pattern
}

// newPatternList wraps raw pattern strings. "(?i)" is prepended at compile
// time so every pattern searches case-insensitively.
func newPatternList(raw []string) *patternList {
	return &patternList{raw: raw}
}

func (pl *patternList) compile() {
	pl.once.Do(func() {
		pl.compiled = make([]*regexp.Regexp, len(pl.raw))
		for i, p := range pl.raw {
			re, err := regexp.Compile("(?i)" + p)
			if err != nil {
				continue // invalid pattern: permanently skipped
			}
			pl.compiled[i] = re
		}
	})
}

// findMatch tests each valid pattern as an unanchored search against text.
// It returns the raw pattern string that matched, or "".
func (pl *patternList) findMatch(text string) string {
	pl.compile()
	for i, re := range pl.compiled {
		if re == nil {
			continue
		}
		if re.MatchString(text) {
			return pl.raw[i]
		}
	}
	return ""
}

// invalidPatterns returns the raw strings that failed to compile.
// Used by validate diagnostics.
func (pl *patternList) invalidPatterns() []string {
	pl.compile()
	var bad []string
	for i, re := range pl.compiled {
		if re == nil {
			bad = append(bad, pl.raw[i])
		}
	}
	return bad
}
