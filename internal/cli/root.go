// Package cli implements zbctl, the operator command line for the
// ZeroBuild API.
package cli

import (
	"io"
	"os"

	"github.com/spf13/cobra"
)

type options struct {
	server string
	token  string
}

// NewRootCmd builds the zbctl command tree. out receives command output.
func NewRootCmd(out io.Writer) *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:   "zbctl",
		Short: "ZeroBuild control - talk to a ZeroBuild backend",
		Long: `zbctl reconciles plot dimensions locally, logs in to a ZeroBuild backend
and lists the project and room records visible to the logged-in user.`,
		Version:       "0.1.0",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.SetOut(out)

	root.PersistentFlags().StringVar(&opts.server, "server", envOr("ZB_SERVER", "http://localhost:8080"), "backend base URL")
	root.PersistentFlags().StringVar(&opts.token, "token", os.Getenv("ZB_TOKEN"), "session token (see zbctl login)")

	root.AddCommand(newReconcileCmd())
	root.AddCommand(newLoginCmd(opts))
	root.AddCommand(newRecordsCmd(opts))
	return root
}

// Execute runs zbctl against os.Args.
func Execute() error {
	return NewRootCmd(os.Stdout).Execute()
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
