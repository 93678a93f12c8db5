package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func initCmd() *cobra.Command {
	var force bool
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Generate account keys and store them securely",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requirePassphrase(); err != nil {
				return err
			}
			acct, err := appCtx.Init(passphrase, force)
			if err != nil {
				return err
			}
			addr, _ := acct.Address(appCtx.Config.Encoding)
			fmt.Fprintf(cmd.OutOrStdout(), "Account created.\nAddress: %s\n", addr)
			return nil
		},
	}
	cmd.Flags().BoolVar(&force, "force", false, "overwrite an existing keystore")
	return cmd
}
