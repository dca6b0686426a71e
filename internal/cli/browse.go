package cli

import (
	"github.com/spf13/cobra"

	"github.com/skillmatch/skillmatch/internal/browse"
	"github.com/skillmatch/skillmatch/internal/skills"
	"github.com/skillmatch/skillmatch/internal/trigger"
)

var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Browse trigger rules and their skill documents interactively",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		rules, err := trigger.Load(workDir())
		if err != nil {
			return err
		}
		return browse.Run(rules, skills.LoadLibrary(workDir()))
	},
}

func init() {
	rootCmd.AddCommand(browseCmd)
}
