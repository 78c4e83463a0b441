package cli

import (
	"fmt"
	"net/url"
	"text/tabwriter"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/zerobuild-ai/zerobuild-backend/internal/access"
)

func newRecordsCmd(opts *options) *cobra.Command {
	var clientID string

	cmd := &cobra.Command{
		Use:   "records",
		Short: "List project and room records",
		Long: `List the records visible to the logged-in user, most recent first.
Admins must pass --client-id; clients always see their own records.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "/api/v1/records"
			if clientID != "" {
				path += "?client_id=" + url.QueryEscape(clientID)
			}

			var res access.LookupResult
			if err := newAPIClient(opts).do(cmd.Context(), "GET", path, nil, &res); err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			if len(res.Projects) == 0 && len(res.Rooms) == 0 {
				fmt.Fprintf(w, "No records for client %s\n", res.ClientID)
				return nil
			}

			tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
			color.New(color.Bold).Fprintf(tw, "PROJECTS (%d)\n", len(res.Projects))
			for _, p := range res.Projects {
				fmt.Fprintf(tw, "%s\t%s\t%s\t%.2f sq\t%s\n", p.ID, p.Title, p.Location, p.Dimensions.Area, p.CreatedAt.Format("2006-01-02 15:04"))
			}
			color.New(color.Bold).Fprintf(tw, "ROOMS (%d)\n", len(res.Rooms))
			for _, r := range res.Rooms {
				fmt.Fprintf(tw, "%s\t%s\t%s\t%.2f sq\t%s\n", r.ID, r.Type, r.ColorRange, r.Dimensions.Area, r.CreatedAt.Format("2006-01-02 15:04"))
			}
			return tw.Flush()
		},
	}

	cmd.Flags().StringVar(&clientID, "client-id", "", "client whose records to list (admins only)")
	return cmd
}
