package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

// decrypt --from-key <pub> <ciphertext>: open a message from a peer.
func decryptCmd() *cobra.Command {
	var fromKey, fromAddress string
	cmd := &cobra.Command{
		Use:   "decrypt <ciphertext>",
		Short: "Decrypt a message sent by a peer",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requirePassphrase(); err != nil {
				return err
			}
			acct, err := appCtx.Load(passphrase)
			if err != nil {
				return err
			}
			peer, err := appCtx.Peer(fromAddress, "", fromKey)
			if err != nil {
				return err
			}
			msg, err := acct.DecryptFromEncoded(peer, args[0], appCtx.Config.Encoding)
			if err != nil {
				appCtx.Log.Warn("decrypt failed", "from_key", fromKey, "err", err)
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(msg))
			return nil
		},
	}
	cmd.Flags().StringVar(&fromKey, "from-key", "", "sender's public encryption key")
	cmd.Flags().StringVar(&fromAddress, "from-address", "", "sender's address, used in error reports")
	_ = cmd.MarkFlagRequired("from-key")
	return cmd
}
