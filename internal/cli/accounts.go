package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func newAccountsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "accounts",
		Short: "Manage stored AWeber accounts",
	}
	cmd.AddCommand(newAccountsAddCommand())
	cmd.AddCommand(newAccountsListCommand())
	cmd.AddCommand(newAccountsDeleteCommand())
	return cmd
}

func newAccountsAddCommand() *cobra.Command {
	var name, token, accountID string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Store an AWeber access token under a new global multi id",
		Long: `Store an AWeber access token under a new global multi id.

Without --account-id the first account visible to the token is used.

Examples:
  form-integrations accounts add --name "Main" --token "$AWEBER_TOKEN"
  form-integrations accounts add --token "$AWEBER_TOKEN" --account-id 1234
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			defer a.Close()

			account, err := a.services.Integration.RegisterAweberAccount(cmd.Context(), name, token, accountID)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Registered AWeber account %s as %s\n", account.AccountID, account.GlobalMultiID)
			return nil
		},
	}
	cmd.Flags().StringVar(&name, "name", "", "Display name for the account")
	cmd.Flags().StringVar(&token, "token", "", "AWeber access token")
	cmd.Flags().StringVar(&accountID, "account-id", "", "AWeber account id")
	cmd.MarkFlagRequired("token")
	return cmd
}

func newAccountsListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List stored AWeber accounts",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			defer a.Close()

			accounts, err := a.services.Integration.GetAweberAccounts(cmd.Context())
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "GLOBAL MULTI ID\tACCOUNT\tNAME")
			for _, account := range accounts {
				fmt.Fprintf(w, "%s\t%s\t%s\n", account.GlobalMultiID, account.AccountID, account.Name)
			}
			return w.Flush()
		},
	}
}

func newAccountsDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <global-multi-id>",
		Short: "Delete a stored AWeber account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			defer a.Close()

			if err := a.services.Integration.DeleteAweberAccount(cmd.Context(), args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted AWeber account %s\n", args[0])
			return nil
		},
	}
}
