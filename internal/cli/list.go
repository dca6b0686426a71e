package cli

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/skillmatch/skillmatch/internal/skills"
	"github.com/skillmatch/skillmatch/internal/trigger"
)

var listJSON bool

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the loaded trigger rules",
	RunE:  runList,
}

func init() {
	listCmd.Flags().BoolVar(&listJSON, "json", false, "Output in JSON format")
	rootCmd.AddCommand(listCmd)
}

// listEntry is one rule for display.
type listEntry struct {
	Name        string `json:"name"`
	Priority    string `json:"priority"`
	Enforcement string `json:"enforcement"`
	Keywords    int    `json:"keywords"`
	Patterns    int    `json:"patterns"`
	PathGlobs   int    `json:"pathGlobs"`
	HasDoc      bool   `json:"hasDoc"`
}

func runList(cmd *cobra.Command, args []string) error {
	rules, err := trigger.Load(workDir())
	if err != nil {
		return err
	}
	if rules.Empty() {
		fmt.Fprintln(cmd.OutOrStdout(), "No trigger rules configured.")
		return nil
	}

	lib := skills.LoadLibrary(workDir())

	var entries []listEntry
	for _, rule := range rules.Rules {
		e := listEntry{
			Name:        rule.Name,
			Priority:    rule.Priority.String(),
			Enforcement: rule.Enforcement.String(),
		}
		if pt := rule.PromptTriggers; pt != nil {
			e.Keywords = len(pt.Keywords)
			e.Patterns = len(pt.IntentPatterns)
		}
		if ft := rule.FileTriggers; ft != nil {
			e.PathGlobs = len(ft.PathPatterns)
		}
		_, e.HasDoc = lib.Lookup(rule.Name)
		entries = append(entries, e)
	}

	if listJSON {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(entries)
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tPRIORITY\tENFORCEMENT\tKEYWORDS\tPATTERNS\tGLOBS\tDOC")
	for _, e := range entries {
		doc := "-"
		if e.HasDoc {
			doc = "yes"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%d\t%d\t%s\n",
			e.Name, e.Priority, e.Enforcement, e.Keywords, e.Patterns, e.PathGlobs, doc)
	}
	return w.Flush()
}
