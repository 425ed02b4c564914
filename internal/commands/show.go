// internal/commands/show.go
package linegrep

import "github.com/spf13/cobra"

// showCmd groups the read-only inspection subcommands.
var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Show application details",
}

func init() {
	rootCmd.AddCommand(showCmd)
}
