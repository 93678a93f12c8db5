package commands

import (
	"encoding/json"
	"time"

	"github.com/spf13/cobra"

	"ltoaccount/internal/event"
)

// sign-event --body <text> [--previous <hash>]: build, sign and print an event.
func signEventCmd() *cobra.Command {
	var body, previous string
	cmd := &cobra.Command{
		Use:   "sign-event",
		Short: "Sign a chained event and print it as JSON",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requirePassphrase(); err != nil {
				return err
			}
			acct, err := appCtx.Load(passphrase)
			if err != nil {
				return err
			}
			ev := event.New([]byte(body), previous, time.Now())
			if _, err := acct.SignEvent(ev); err != nil {
				return err
			}
			appCtx.Log.Debug("event signed", "hash", ev.Hash)
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(ev)
		},
	}
	cmd.Flags().StringVar(&body, "body", "", "event payload")
	cmd.Flags().StringVar(&previous, "previous", "", "hash of the previous event in the chain")
	_ = cmd.MarkFlagRequired("body")
	return cmd
}
