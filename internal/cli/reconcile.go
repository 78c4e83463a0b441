package cli

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/zerobuild-ai/zerobuild-backend/internal/geometry"
)

func newReconcileCmd() *cobra.Command {
	var cur geometry.Dimensions

	cmd := &cobra.Command{
		Use:   "reconcile <field> <value>",
		Short: "Apply one dimension edit and print the reconciled dimensions",
		Long: `Apply an edit to length, breadth or area (l, b, a) and print the
dimensions that result. Runs locally; no server is contacted.`,
		Example: "  zbctl reconcile area 250 --length 10",
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			field, err := geometry.ParseField(args[0])
			if err != nil {
				return err
			}
			var value float64
			if _, err := fmt.Sscanf(args[1], "%g", &value); err != nil {
				return fmt.Errorf("invalid value %q: %w", args[1], err)
			}

			out := geometry.Reconcile(cur, field, value)
			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "length:  %.2f\n", out.Length)
			fmt.Fprintf(w, "breadth: %.2f\n", out.Breadth)
			fmt.Fprintf(w, "area:    %.2f\n", out.Area)
			if !out.Consistent() {
				color.New(color.FgYellow).Fprintln(w, "area is independent of length x breadth")
			}
			return nil
		},
	}

	cmd.Flags().Float64Var(&cur.Length, "length", 0, "current length")
	cmd.Flags().Float64Var(&cur.Breadth, "breadth", 0, "current breadth")
	cmd.Flags().Float64Var(&cur.Area, "area", 0, "current area")
	return cmd
}
