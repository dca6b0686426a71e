package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/skillmatch/skillmatch/internal/trigger"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate the rule document and report diagnostics",
	Long: `Loads the project's rule document in strict mode. Schema violations,
duplicate skill names, and unknown priority or enforcement values fail
with exit 1. Non-fatal findings (regex patterns that do not compile,
rules that can never match) are listed as warnings.

This is the one command that exits non-zero: here, diagnosing a broken
configuration is the point.`,
	Args: cobra.NoArgs,
	RunE: runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	path := filepath.Join(workDir(), filepath.FromSlash(trigger.RulesFile))
	data, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(out, "No rule document at %s — nothing to validate.\n", trigger.RulesFile)
		return nil
	}

	// Parse tolerates malformed JSON for match paths; validate should not.
	if !json.Valid(data) {
		return fmt.Errorf("%s is not valid JSON", trigger.RulesFile)
	}

	rules, err := trigger.Parse(data)
	if err != nil {
		return err
	}

	issues := rules.Lint()
	for _, issue := range issues {
		fmt.Fprintf(out, "warning: %s: %s\n", issue.Skill, issue.Detail)
	}

	fmt.Fprintf(out, "%d rules OK", len(rules.Rules))
	if len(issues) > 0 {
		fmt.Fprintf(out, " (%d warnings)", len(issues))
	}
	fmt.Fprintln(out)
	return nil
}
