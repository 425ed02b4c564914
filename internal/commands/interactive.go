// internal/commands/interactive.go
package linegrep

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/mwiater/linegrep/internal/appconfig"
	"github.com/mwiater/linegrep/internal/logging"
	"github.com/mwiater/linegrep/internal/runner"
	"github.com/mwiater/linegrep/internal/tui"
)

// interactiveCmd implements 'interactive', which opens a file in a live
// search view where the result list refreshes as the query is typed.
var interactiveCmd = &cobra.Command{
	Use:   "interactive <file>",
	Short: "Search a file interactively as you type",
	Long: `The 'interactive' subcommand loads a file and opens a terminal view with a
query input; matching lines update on every keystroke. Case folding follows
the same IGNORE_CASE / --ignore-case rules as a normal run and can be
toggled inside the view with ctrl+t.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := *GetConfig()
		cfg.FilePath = args[0]
		cfg.IgnoreCase = cfg.IgnoreCase || appconfig.IgnoreCaseFromEnv(os.LookupEnv)

		content, err := runner.LoadContent(cfg.FilePath)
		if err != nil {
			return err
		}

		logging.LogEvent("interactive search over %s", cfg.FilePath)
		return tui.Run(cfg, content)
	},
}

func init() {
	rootCmd.AddCommand(interactiveCmd)
}
