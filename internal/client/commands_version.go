package client

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (a *App) versionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print client and server build information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			fmt.Fprintf(a.out, "Client: %s (built %s, commit %s)\n",
				a.buildInfo.BuildVersion(), a.buildInfo.BuildDate(), a.buildInfo.BuildCommit())

			info, err := a.server.Version(cmd.Context())
			if err != nil {
				fmt.Fprintf(a.out, "Server: %s\n", HumanizeError(err))
				return nil
			}
			fmt.Fprintf(a.out, "Server: %s (built %s, commit %s)\n",
				info.BuildVersion(), info.BuildDate(), info.BuildCommit())
			return nil
		},
	}
}
