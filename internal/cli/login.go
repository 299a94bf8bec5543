package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/carebridge/carebridge-go/internal/guard"
)

func newLoginCmd() *cobra.Command {
	var email, password string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Sign in and store credentials",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			sessions.Initialize(ctx)

			if email == "" {
				var err error
				email, err = prompt("Email: ")
				if err != nil {
					return err
				}
			}
			if password == "" {
				var err error
				password, err = prompt("Password: ")
				if err != nil {
					return err
				}
			}

			snap, err := sessions.Login(ctx, email, password)
			if err != nil {
				if snap.Error != "" {
					return fmt.Errorf("login failed: %s", snap.Error)
				}
				return err
			}

			fmt.Printf("Signed in as %s (%s)\n", snap.User.Name, snap.User.Role)
			fmt.Printf("Route: %s\n", guard.Route(snap))
			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "Account email (prompted if omitted)")
	cmd.Flags().StringVar(&password, "password", "", "Account password (prompted if omitted)")
	return cmd
}

func prompt(label string) (string, error) {
	fmt.Print(label)
	reader := bufio.NewReader(os.Stdin)
	line, err := reader.ReadString('\n')
	if err != nil {
		return "", fmt.Errorf("read input: %w", err)
	}
	return strings.TrimSpace(line), nil
}
