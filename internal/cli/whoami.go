package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newWhoamiCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the signed-in user from stored credentials",
		RunE: func(cmd *cobra.Command, args []string) error {
			snap := sessions.Initialize(cmd.Context())
			if !snap.Authenticated() {
				return fmt.Errorf("not signed in")
			}

			u := snap.User
			fmt.Printf("%s <%s>\n", u.Name, u.Email)
			fmt.Printf("  id:   %s\n", u.ID)
			fmt.Printf("  role: %s\n", u.Role)
			if u.DateOfBirth != "" {
				fmt.Printf("  dob:  %s\n", u.DateOfBirth)
			}
			return nil
		},
	}
}
