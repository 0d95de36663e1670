package cli

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func newListsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "lists <global-multi-id>",
		Short: "Print the mailing lists of a stored AWeber account",
		Long: `Print the mailing lists of a stored AWeber account.

Lists are fetched page by page. Bad credentials or API failures print an
empty catalog and log a warning.

Examples:
  form-integrations lists 6f1c2a1e-4a4b-4f0e-9a59-1c1f9d0d2b61
  form-integrations lists 6f1c2a1e-4a4b-4f0e-9a59-1c1f9d0d2b61 --json
`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			defer a.Close()

			catalog := a.services.Integration.GetAweberLists(cmd.Context(), args[0])

			if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(catalog)
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tNAME")
			for _, list := range catalog.Lists() {
				fmt.Fprintf(w, "%s\t%s\n", list.ID, list.Name)
			}
			return w.Flush()
		},
	}
	cmd.Flags().Bool("json", false, "Output as JSON")
	return cmd
}
