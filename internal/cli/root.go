// Package cli wires the skillmatch commands. One command per file, all
// registered on the root in their init functions.
package cli

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var (
	buildVersion string

	flagCwd   string
	flagPlain bool
)

var rootCmd = &cobra.Command{
	Use:   "skillmatch",
	Short: "Match prompts and edited files against skill trigger rules",
	Long: `skillmatch decides which configured skills an AI coding assistant
should be reminded of, given a user prompt or a set of edited file paths.
Rules are read from ` + "`.claude/skills/skill-rules.json`" + ` in the project.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command with the build version injected via ldflags.
func Execute(version string) error {
	buildVersion = version
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagCwd, "cwd", "", "Project directory to read rules from (default: working directory)")
	rootCmd.PersistentFlags().BoolVar(&flagPlain, "plain", false, "Disable styled output")
}

// workDir resolves the project directory used to locate configuration.
func workDir() string {
	if flagCwd != "" {
		return flagCwd
	}
	cwd, err := os.Getwd()
	if err != nil {
		return "."
	}
	return cwd
}

// styledStdout reports whether report output should carry ANSI styling.
func styledStdout() bool {
	return !flagPlain && term.IsTerminal(int(os.Stdout.Fd()))
}

// terminalWidth returns the stdout terminal width, or a safe default.
func terminalWidth() int {
	w, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || w <= 0 {
		return 80
	}
	return w
}
