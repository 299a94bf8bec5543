// Package cli implements the carebridge client command line. It plays the
// role of the application shell: it owns the single session store, runs the
// startup rehydration, and renders the route guard's decision.
package cli

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/carebridge/carebridge-go/internal/authclient"
	"github.com/carebridge/carebridge-go/internal/credstore"
	"github.com/carebridge/carebridge-go/internal/session"
)

var (
	flagServer      string
	flagCredentials string

	logger   *slog.Logger
	sessions *session.Store
)

// defaultServer returns the backend URL, checking CAREBRIDGE_SERVER first.
func defaultServer() string {
	if s := os.Getenv("CAREBRIDGE_SERVER"); s != "" {
		return s
	}
	return "http://localhost:8080"
}

// NewRootCmd creates the root cobra command for the carebridge CLI.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "carebridge",
		Short: "CareBridge — caregiving account client",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logger = slog.New(slog.NewTextHandler(os.Stderr, nil))

			credPath := flagCredentials
			if credPath == "" {
				var err error
				credPath, err = credstore.DefaultPath()
				if err != nil {
					return err
				}
			}

			store := credstore.New(credPath, logger)
			api := authclient.New(flagServer)
			sessions = session.New(api, store, logger)
			return nil
		},
		SilenceUsage: true,
	}

	root.PersistentFlags().StringVar(&flagServer, "server", defaultServer(), "CareBridge server URL (or CAREBRIDGE_SERVER env)")
	root.PersistentFlags().StringVar(&flagCredentials, "credentials", "", "Credentials file path (default ~/.carebridge/credentials.json)")

	root.AddCommand(
		newLoginCmd(),
		newLogoutCmd(),
		newRegisterCmd(),
		newWhoamiCmd(),
		newRefreshCmd(),
		newStatusCmd(),
	)

	return root
}
