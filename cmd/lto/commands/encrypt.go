package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

// encrypt --to-key <pub> <message>: seal <message> for a peer.
func encryptCmd() *cobra.Command {
	var toKey string
	cmd := &cobra.Command{
		Use:   "encrypt <message>",
		Short: "Encrypt a message for a peer's public encryption key",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requirePassphrase(); err != nil {
				return err
			}
			acct, err := appCtx.Load(passphrase)
			if err != nil {
				return err
			}
			peer, err := appCtx.Peer("", "", toKey)
			if err != nil {
				return err
			}
			ct, err := acct.EncryptForEncoded(peer, []byte(args[0]), appCtx.Config.Encoding)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), ct)
			return nil
		},
	}
	cmd.Flags().StringVar(&toKey, "to-key", "", "recipient's public encryption key")
	_ = cmd.MarkFlagRequired("to-key")
	return cmd
}
