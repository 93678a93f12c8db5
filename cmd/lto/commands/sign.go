package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

// sign <message>: print the detached signature of <message>.
func signCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sign <message>",
		Short: "Sign a message with the account's secret sign key",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requirePassphrase(); err != nil {
				return err
			}
			acct, err := appCtx.Load(passphrase)
			if err != nil {
				return err
			}
			sig, err := acct.Sign([]byte(args[0]), appCtx.Config.Encoding)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), sig)
			return nil
		},
	}
}
