package trigger

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// RulesFile is the well-known rule document location relative to the
// consuming project's working directory.
const RulesFile = ".claude/skills/skill-rules.json"

// ErrInvalidRuleSet marks a broken rule document: duplicate skill names,
// unknown priority or enforcement values, or a schema violation. These are
// operator errors that must surface at load time — they are never silently
// downgraded to "no match". A missing or unparseable document is NOT this
// error; that case yields an empty rule set and nil error.
var ErrInvalidRuleSet = errors.New("invalid skill rule set")

// rawDocument mirrors the rule document's top level.
type rawDocument struct {
	Version     string                     `json:"version"`
	Description string                     `json:"description"`
	Skills      map[string]json.RawMessage `json:"skills"`
}

// Load reads the rule document from cwd. A missing or syntactically
// unparseable document is benign and returns an empty rule set; the host
// assistant must never be blocked by absent configuration. A structurally
// invalid document returns ErrInvalidRuleSet.
func Load(cwd string) (*RuleSet, error) {
	data, err := os.ReadFile(filepath.Join(cwd, filepath.FromSlash(RulesFile)))
	if err != nil {
		return &RuleSet{}, nil
	}
	return Parse(data)
}

// Parse decodes and validates a rule document. Syntactically invalid JSON
// is treated like a missing document (empty set, nil error); structural
// problems are fatal with ErrInvalidRuleSet.
func Parse(data []byte) (*RuleSet, error) {
	var raw rawDocument
	if err := json.Unmarshal(data, &raw); err != nil {
		// Not JSON at all, or the top level has the wrong shape.
		// Distinguish: a type error on a known field means the operator
		// wrote a broken document and should hear about it.
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			return nil, fmt.Errorf("%w: %v", ErrInvalidRuleSet, err)
		}
		return &RuleSet{}, nil
	}

	// encoding/json silently keeps the last duplicate key, so duplicates
	// are detected with a token walk over the raw document.
	if dup := findDuplicateSkill(data); dup != "" {
		return nil, fmt.Errorf("%w: duplicate skill name %q", ErrInvalidRuleSet, dup)
	}

	if err := validateSchema(data); err != nil {
		return nil, err
	}

	rs := &RuleSet{
		Version:     raw.Version,
		Description: raw.Description,
	}

	// Preserve declaration order: decode rule bodies keyed by the order
	// the names appear in the document, not Go's randomized map order.
	for _, name := range skillNameOrder(data) {
		body, ok := raw.Skills[name]
		if !ok {
			continue
		}
		rule := &SkillRule{Name: name}
		if err := json.Unmarshal(body, rule); err != nil {
			return nil, fmt.Errorf("%w: skill %q: %v", ErrInvalidRuleSet, name, err)
		}
		if rule.PromptTriggers != nil {
			rule.intentPatterns = newPatternList(rule.PromptTriggers.IntentPatterns)
		}
		if rule.FileTriggers != nil {
			rule.contentPatterns = newPatternList(rule.FileTriggers.ContentPatterns)
		}
		rs.Rules = append(rs.Rules, rule)
	}
	return rs, nil
}

// findDuplicateSkill walks the raw JSON tokens and returns the first skill
// name that appears twice inside the "skills" object, or "".
func findDuplicateSkill(data []byte) string {
	names := skillNameOrder(data)
	seen := make(map[string]bool, len(names))
	for _, name := range names {
		if seen[name] {
			return name
		}
		seen[name] = true
	}
	return ""
}

// skillNameOrder returns the skill names in document order, duplicates
// included. Returns nil if the document does not parse.
func skillNameOrder(data []byte) []string {
	dec := json.NewDecoder(bytes.NewReader(data))

	// Scan the top-level object for the "skills" key.
	tok, err := dec.Token()
	if err != nil {
		return nil
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return nil
	}
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil
		}
		key, _ := keyTok.(string)
		if key != "skills" {
			if err := skipValue(dec); err != nil {
				return nil
			}
			continue
		}

		// Inside the skills object: collect keys, skip bodies.
		open, err := dec.Token()
		if err != nil {
			return nil
		}
		if d, ok := open.(json.Delim); !ok || d != '{' {
			return nil
		}
		var names []string
		for dec.More() {
			nameTok, err := dec.Token()
			if err != nil {
				return nil
			}
			name, ok := nameTok.(string)
			if !ok {
				return nil
			}
			names = append(names, name)
			if err := skipValue(dec); err != nil {
				return nil
			}
		}
		return names
	}
	return nil
}

// skipValue consumes one JSON value from the decoder.
func skipValue(dec *json.Decoder) error {
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	d, ok := tok.(json.Delim)
	if !ok {
		return nil // scalar
	}
	if d == '{' || d == '[' {
		for dec.More() {
			if err := skipValue(dec); err != nil {
				return err
			}
		}
		_, err := dec.Token() // closing delimiter
		return err
	}
	return nil
}
