package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/civix-labs/civix/internal/license"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(licensesCmd)
}

var licensesCmd = &cobra.Command{
	Use:   "licenses",
	Short: "List the licenses available to new extensions",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		catalog, err := license.Default()
		if err != nil {
			return fmt.Errorf("loading license catalog: %w", err)
		}

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 3, ' ', 0)
		fmt.Fprintln(w, "ID\tNAME\tDEFAULT")
		for _, e := range catalog.Entries() {
			def := ""
			if e.ID == license.DefaultID {
				def = "yes"
			}
			fmt.Fprintf(w, "%s\t%s\t%s\n", e.ID, e.Name, def)
		}
		return w.Flush()
	},
}
