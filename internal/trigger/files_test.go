package trigger

import (
	"os"
	"testing"
)

func fileRules(t *testing.T) *RuleSet {
	t.Helper()
	return mustParse(t, `{
		"version": "1.0",
		"skills": {
			"backend-py": {
				"enforcement": "warn",
				"priority": "high",
				"fileTriggers": {
					"pathPatterns": ["backend/**/*.py"],
					"pathExclusions": ["**/*test*.py"]
				}
			}
		}
	}`)
}

func TestMatchFiles_InclusionAndExclusion(t *testing.T) {
	rs := fileRules(t)

	matches := MatchFiles([]string{"backend/api/users.py"}, rs, FileMatchOptions{})
	if len(matches) != 1 {
		t.Fatalf("expected 1 match, got %d", len(matches))
	}
	if matches[0].Trigger != TriggerPath {
		t.Errorf("expected path trigger, got %q", matches[0].Trigger)
	}
	if matches[0].Matched != "backend/api/users.py" {
		t.Errorf("expected matched path, got %q", matches[0].Matched)
	}

	// The exclusion pattern removes test files even though the inclusion
	// pattern covers them.
	matches = MatchFiles([]string{"backend/api/users_test.py"}, rs, FileMatchOptions{})
	if len(matches) != 0 {
		t.Errorf("excluded path matched: %v", matches)
	}
}

func TestMatchFiles_NoFileTriggersIsInert(t *testing.T) {
	rs := mustParse(t, `{
		"version": "1.0",
		"skills": {
			"prompt-only": {
				"enforcement": "suggest",
				"priority": "low",
				"promptTriggers": {"keywords": ["x"]}
			}
		}
	}`)

	if matches := MatchFiles([]string{"anything.py"}, rs, FileMatchOptions{}); len(matches) != 0 {
		t.Errorf("prompt-only rule matched a file: %v", matches)
	}
}

func TestMatchFiles_OneMatchPerRule(t *testing.T) {
	rs := fileRules(t)

	// Several matching paths still activate the rule once.
	paths := []string{"backend/api/users.py", "backend/api/orders.py"}
	matches := MatchFiles(paths, rs, FileMatchOptions{})
	if len(matches) != 1 {
		t.Errorf("expected 1 match for multiple paths, got %d", len(matches))
	}
}

func TestMatchFiles_ContentPatterns(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	routed := "app.py"
	plain := "util.py"
	if err := os.WriteFile(routed, []byte("@app.route(\"/users\")\ndef users(): pass\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(plain, []byte("def helper(): pass\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	rs := mustParse(t, `{
		"version": "1.0",
		"skills": {
			"flask-routes": {
				"enforcement": "suggest",
				"priority": "medium",
				"fileTriggers": {
					"pathPatterns": ["**/*.py"],
					"contentPatterns": ["@app\\.route"]
				}
			}
		}
	}`)

	matches := MatchFiles([]string{routed}, rs, FileMatchOptions{ReadContent: true})
	if len(matches) != 1 {
		t.Fatalf("expected content match, got %d", len(matches))
	}
	if matches[0].Trigger != TriggerContent {
		t.Errorf("expected content trigger, got %q", matches[0].Trigger)
	}

	if matches := MatchFiles([]string{plain}, rs, FileMatchOptions{ReadContent: true}); len(matches) != 0 {
		t.Errorf("file without the pattern matched: %v", matches)
	}

	// Unreadable files are non-matches, not errors.
	if matches := MatchFiles([]string{"gone.py"}, rs, FileMatchOptions{ReadContent: true}); len(matches) != 0 {
		t.Errorf("missing file matched: %v", matches)
	}

	// Without opting in to content reads, the glob test alone decides.
	matches = MatchFiles([]string{plain}, rs, FileMatchOptions{})
	if len(matches) != 1 || matches[0].Trigger != TriggerPath {
		t.Errorf("expected path-only match without content reads, got %v", matches)
	}
}
