package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newRefreshCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "refresh",
		Short: "Re-fetch the profile from the server",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if snap := sessions.Initialize(ctx); !snap.Authenticated() {
				return fmt.Errorf("not signed in")
			}

			snap, err := sessions.RefreshProfile(ctx)
			if err != nil {
				// The stale profile is kept; report why the refresh failed.
				return fmt.Errorf("refresh failed: %s", snap.Error)
			}

			fmt.Printf("Profile refreshed for %s (%s)\n", snap.User.Name, snap.User.Role)
			return nil
		},
	}
}
