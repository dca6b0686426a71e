package cli

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// writeRules installs a rule document under the given project directory.
func writeRules(t *testing.T, cwd, doc string) {
	t.Helper()
	path := filepath.Join(cwd, ".claude", "skills", "skill-rules.json")
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatal(err)
	}
}

func hookInput(t *testing.T, payload map[string]any) string {
	t.Helper()
	data, err := json.Marshal(payload)
	if err != nil {
		t.Fatal(err)
	}
	return string(data)
}

const testRules = `{
	"version": "1.0",
	"skills": {
		"api-design": {
			"enforcement": "suggest",
			"priority": "high",
			"promptTriggers": {"keywords": ["endpoint"]},
			"fileTriggers": {"pathPatterns": ["backend/**/*.py"]}
		}
	}
}`

func TestRunHook_PromptMatch(t *testing.T) {
	cwd := t.TempDir()
	writeRules(t, cwd, testRules)

	in := hookInput(t, map[string]any{
		"hook_event_name": "UserPromptSubmit",
		"cwd":             cwd,
		"prompt":          "add a new endpoint please",
	})

	var stdout, stderr strings.Builder
	runHook(strings.NewReader(in), &stdout, &stderr)

	if !strings.Contains(stdout.String(), "api-design") {
		t.Errorf("expected matched skill in output, got %q", stdout.String())
	}
	if !strings.Contains(stdout.String(), "HIGH") {
		t.Errorf("expected priority heading, got %q", stdout.String())
	}
	if stderr.Len() != 0 {
		t.Errorf("unexpected stderr: %q", stderr.String())
	}
}

func TestRunHook_NoMatchIsSilent(t *testing.T) {
	cwd := t.TempDir()
	writeRules(t, cwd, testRules)

	in := hookInput(t, map[string]any{
		"hook_event_name": "UserPromptSubmit",
		"cwd":             cwd,
		"prompt":          "unrelated question",
	})

	var stdout, stderr strings.Builder
	runHook(strings.NewReader(in), &stdout, &stderr)

	if stdout.Len() != 0 {
		t.Errorf("expected no output on no match, got %q", stdout.String())
	}
}

func TestRunHook_MissingConfigIsSilent(t *testing.T) {
	in := hookInput(t, map[string]any{
		"hook_event_name": "UserPromptSubmit",
		"cwd":             t.TempDir(),
		"prompt":          "add a new endpoint please",
	})

	var stdout, stderr strings.Builder
	runHook(strings.NewReader(in), &stdout, &stderr)

	if stdout.Len() != 0 || stderr.Len() != 0 {
		t.Errorf("missing configuration must be silent, got stdout=%q stderr=%q",
			stdout.String(), stderr.String())
	}
}

func TestRunHook_InvalidConfigDiagnosticOnStderr(t *testing.T) {
	cwd := t.TempDir()
	writeRules(t, cwd, `{
		"version": "1.0",
		"skills": {
			"bad": {"enforcement": "suggest", "priority": "urgent"}
		}
	}`)

	in := hookInput(t, map[string]any{
		"hook_event_name": "UserPromptSubmit",
		"cwd":             cwd,
		"prompt":          "anything",
	})

	var stdout, stderr strings.Builder
	runHook(strings.NewReader(in), &stdout, &stderr)

	if stdout.Len() != 0 {
		t.Errorf("broken config must not produce a report, got %q", stdout.String())
	}
	if stderr.Len() == 0 {
		t.Error("expected a diagnostic for invalid configuration")
	}
}

func TestRunHook_PostToolUseFileMatch(t *testing.T) {
	cwd := t.TempDir()
	writeRules(t, cwd, testRules)

	in := hookInput(t, map[string]any{
		"hook_event_name": "PostToolUse",
		"cwd":             cwd,
		"tool_name":       "FileEdit",
		"tool_input":      map[string]any{"file_path": filepath.Join(cwd, "backend", "api", "users.py")},
	})

	var stdout, stderr strings.Builder
	runHook(strings.NewReader(in), &stdout, &stderr)

	if !strings.Contains(stdout.String(), "api-design") {
		t.Errorf("expected file match, got stdout=%q stderr=%q", stdout.String(), stderr.String())
	}
}

func TestRunHook_UnknownEventIgnored(t *testing.T) {
	cwd := t.TempDir()
	writeRules(t, cwd, testRules)

	in := hookInput(t, map[string]any{
		"hook_event_name": "SessionStart",
		"cwd":             cwd,
	})

	var stdout, stderr strings.Builder
	runHook(strings.NewReader(in), &stdout, &stderr)

	if stdout.Len() != 0 || stderr.Len() != 0 {
		t.Errorf("unknown event must be ignored, got stdout=%q stderr=%q",
			stdout.String(), stderr.String())
	}
}

func TestRunHook_GarbagePayload(t *testing.T) {
	var stdout, stderr strings.Builder
	runHook(strings.NewReader("not json"), &stdout, &stderr)

	if stdout.Len() != 0 {
		t.Errorf("garbage payload must not produce a report, got %q", stdout.String())
	}
	if stderr.Len() == 0 {
		t.Error("expected a diagnostic for an unparseable payload")
	}
}
