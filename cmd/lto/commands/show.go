package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func showCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the address and public keys",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requirePassphrase(); err != nil {
				return err
			}
			acct, err := appCtx.Load(passphrase)
			if err != nil {
				return err
			}
			enc := appCtx.Config.Encoding
			out := cmd.OutOrStdout()
			if addr, ok := acct.Address(enc); ok {
				fmt.Fprintf(out, "Address:        %s\n", addr)
			}
			if key, ok := acct.PublicSigningKey(enc); ok {
				fmt.Fprintf(out, "Sign key:       %s\n", key)
			}
			if key, ok := acct.PublicEncryptionKey(enc); ok {
				fmt.Fprintf(out, "Encryption key: %s\n", key)
			}
			return nil
		},
	}
}
