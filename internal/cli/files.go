package cli

import (
	"github.com/spf13/cobra"

	"github.com/skillmatch/skillmatch/internal/trigger"
)

var (
	filesContent bool
	filesPreview bool
)

var filesCmd = &cobra.Command{
	Use:   "files <path>...",
	Short: "Match edited file paths against the trigger rules",
	Long: `Matches the given file paths against the project's trigger rules'
file triggers (inclusion globs, then exclusions) and prints the grouped
skill report. With --content, rules that declare content patterns also
require the file contents to match.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runFiles,
}

func init() {
	filesCmd.Flags().BoolVar(&filesContent, "content", false, "Evaluate content patterns against readable files")
	filesCmd.Flags().BoolVar(&filesPreview, "preview", false, "Render the matched skills' documentation")
	rootCmd.AddCommand(filesCmd)
}

func runFiles(cmd *cobra.Command, args []string) error {
	rules, err := trigger.Load(workDir())
	if err != nil {
		return err
	}

	matches := trigger.MatchFiles(args, rules, trigger.FileMatchOptions{ReadContent: filesContent})
	return writeMatches(cmd.OutOrStdout(), matches, filesPreview)
}
