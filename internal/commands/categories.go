package commands

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/cleared-dev/buy/internal/model"
)

func newCategoriesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "categories",
		Short: "List expense categories and their accounts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "CATEGORY\tLABEL\tDESTINATION\tSOURCE")
			for _, c := range model.Categories() {
				accts := c.Accounts()
				fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", c, c.Label(), accts.Destination, accts.Source)
			}
			return tw.Flush()
		},
	}
}
