package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// buildInfo is the one-line build description printed by version and logged
// by server on start.
func buildInfo() string {
	return fmt.Sprintf("reservarapida %s (commit=%s, built=%s)", Version, CommitSHA, BuildDate)
}

func newVersionCmd() *cobra.Command {
	var short bool

	c := &cobra.Command{
		Use:   "version",
		Short: "Print version info",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			if short {
				fmt.Fprintln(cmd.OutOrStdout(), Version)
				return
			}
			fmt.Fprintln(cmd.OutOrStdout(), buildInfo())
		},
	}
	c.Flags().BoolVar(&short, "short", false, "print only the version")
	return c
}
