package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/carebridge/carebridge-go/internal/guard"
)

func newLogoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Sign out and clear stored credentials",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			sessions.Initialize(ctx)

			snap := sessions.Logout(ctx)
			fmt.Println("Signed out.")
			fmt.Printf("Route: %s\n", guard.Route(snap))
			return nil
		},
	}
}
