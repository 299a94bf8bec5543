package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/carebridge/carebridge-go/internal/guard"
)

func newStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show session phase and the route the shell would render",
		RunE: func(cmd *cobra.Command, args []string) error {
			snap := sessions.Initialize(cmd.Context())

			fmt.Printf("Phase: %s\n", snap.Phase)
			fmt.Printf("Route: %s\n", guard.Route(snap))
			if snap.Authenticated() {
				fmt.Printf("User:  %s (%s)\n", snap.User.Email, snap.User.Role)
			}
			return nil
		},
	}
}
