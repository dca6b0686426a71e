package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/skillmatch/skillmatch/internal/report"
	"github.com/skillmatch/skillmatch/internal/trigger"
)

// hookPayload is the event JSON the host assistant writes to the hook's
// stdin. Only the fields this tool reads are declared.
type hookPayload struct {
	HookEventName string          `json:"hook_event_name"`
	CWD           string          `json:"cwd"`
	Prompt        string          `json:"prompt"`
	ToolName      string          `json:"tool_name"`
	ToolInput     json.RawMessage `json:"tool_input"`
}

// toolInput carries the file path of an edit-style tool call.
type toolInput struct {
	FilePath string `json:"file_path"`
}

var hookCmd = &cobra.Command{
	Use:   "hook",
	Short: "Hook entry point: read an event payload from stdin and report matched skills",
	Long: `Reads a hook event payload (UserPromptSubmit or PostToolUse) from stdin,
matches it against the project's trigger rules, and prints the grouped
skill report. Always exits 0: this tool must never be the reason a host
operation is blocked. Faults go to stderr only.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		runHook(cmd.InOrStdin(), cmd.OutOrStdout(), cmd.ErrOrStderr())
	},
}

func init() {
	rootCmd.AddCommand(hookCmd)
}

// runHook is the whole hook pass. Every failure path is a stderr
// diagnostic followed by a normal return; the command never errors.
func runHook(stdin io.Reader, stdout, stderr io.Writer) {
	data, err := io.ReadAll(stdin)
	if err != nil {
		fmt.Fprintf(stderr, "skillmatch: reading hook input: %v\n", err)
		return
	}

	var payload hookPayload
	if err := json.Unmarshal(data, &payload); err != nil {
		fmt.Fprintf(stderr, "skillmatch: unexpected hook payload: %v\n", err)
		return
	}

	cwd := payload.CWD
	if cwd == "" {
		cwd = workDir()
	}

	rules, err := trigger.Load(cwd)
	if err != nil {
		// Broken configuration: tell the operator, don't block the host.
		fmt.Fprintf(stderr, "skillmatch: %v\n", err)
		return
	}
	if rules.Empty() {
		return
	}

	var matches []trigger.Match
	switch payload.HookEventName {
	case "UserPromptSubmit":
		matches = trigger.MatchPrompt(payload.Prompt, rules)
	case "PostToolUse":
		path := editedPath(payload, cwd)
		if path == "" {
			return
		}
		matches = trigger.MatchFiles([]string{path}, rules, trigger.FileMatchOptions{ReadContent: true})
	default:
		// Events this tool doesn't handle are ignored, not errors.
		return
	}

	if len(matches) == 0 {
		return
	}
	r := report.NewRenderer(false) // hook output lands in a transcript, never a TTY
	if err := r.Write(stdout, trigger.GroupByPriority(matches)); err != nil {
		fmt.Fprintf(stderr, "skillmatch: writing report: %v\n", err)
	}
}

// editedPath extracts the edited file path from a PostToolUse payload,
// made relative to the project so it lines up with the rule globs.
func editedPath(payload hookPayload, cwd string) string {
	if len(payload.ToolInput) == 0 {
		return ""
	}
	var in toolInput
	if err := json.Unmarshal(payload.ToolInput, &in); err != nil || in.FilePath == "" {
		return ""
	}
	path := in.FilePath
	if filepath.IsAbs(path) {
		if rel, err := filepath.Rel(cwd, path); err == nil {
			path = rel
		}
	}
	return filepath.ToSlash(path)
}
