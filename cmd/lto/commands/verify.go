package commands

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"ltoaccount/internal/account"
)

var errBadSignature = errors.New("signature does not verify")

// verify <signature> <message>: check a signature against the local account
// or against --sign-key.
func verifyCmd() *cobra.Command {
	var signKey string
	cmd := &cobra.Command{
		Use:   "verify <signature> <message>",
		Short: "Verify a detached signature",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				acct *account.Account
				err  error
			)
			if signKey != "" {
				acct, err = appCtx.Peer("", signKey, "")
			} else {
				if err := requirePassphrase(); err != nil {
					return err
				}
				acct, err = appCtx.Load(passphrase)
			}
			if err != nil {
				return err
			}
			ok, err := acct.Verify(args[0], []byte(args[1]), appCtx.Config.Encoding)
			if err != nil {
				return err
			}
			if !ok {
				return errBadSignature
			}
			fmt.Fprintln(cmd.OutOrStdout(), "valid")
			return nil
		},
	}
	cmd.Flags().StringVar(&signKey, "sign-key", "", "signer's public sign key (default: local account)")
	return cmd
}
