package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/skillmatch/skillmatch/internal/report"
	"github.com/skillmatch/skillmatch/internal/skills"
	"github.com/skillmatch/skillmatch/internal/trigger"
)

var promptPreview bool

var promptCmd = &cobra.Command{
	Use:   "prompt [text...]",
	Short: "Match a prompt against the trigger rules",
	Long: `Matches the given prompt text (or stdin, when piped) against the
project's trigger rules and prints the grouped skill report. No matches
means no output. Exits 0 either way.`,
	RunE: runPrompt,
}

func init() {
	promptCmd.Flags().BoolVar(&promptPreview, "preview", false, "Render the matched skills' documentation")
	rootCmd.AddCommand(promptCmd)
}

func runPrompt(cmd *cobra.Command, args []string) error {
	text := strings.Join(args, " ")
	if text == "" && !term.IsTerminal(int(os.Stdin.Fd())) {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return fmt.Errorf("reading prompt from stdin: %w", err)
		}
		text = strings.TrimSpace(string(data))
	}
	if text == "" {
		return fmt.Errorf("no prompt given")
	}

	rules, err := trigger.Load(workDir())
	if err != nil {
		return err
	}

	matches := trigger.MatchPrompt(text, rules)
	return writeMatches(cmd.OutOrStdout(), matches, promptPreview)
}

// writeMatches prints the grouped report and, when requested, the matched
// skills' rendered documentation.
func writeMatches(w io.Writer, matches []trigger.Match, preview bool) error {
	if len(matches) == 0 {
		return nil
	}

	r := report.NewRenderer(styledStdout())
	if err := r.Write(w, trigger.GroupByPriority(matches)); err != nil {
		return err
	}

	if !preview {
		return nil
	}
	lib := skills.LoadLibrary(workDir())
	md := report.NewMarkdownRenderer(terminalWidth())
	for _, m := range matches {
		doc, ok := lib.Lookup(m.Skill)
		if !ok {
			continue
		}
		fmt.Fprintf(w, "\n%s\n", md.Render(doc.Content))
	}
	return nil
}
