package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"ltoaccount/internal/app"
	"ltoaccount/internal/codec"
)

var (
	home       string
	configPath string
	passphrase string
	encoding   string
	logLevel   string
	network    string

	appCtx *app.App
)

// Execute runs the root command.
func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	home, configPath, passphrase = "", "", ""
	encoding, logLevel, network = "", "", ""
	appCtx = nil

	root := &cobra.Command{
		Use:          "lto",
		Short:        "Ledger account keys, signatures and encrypted messages",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if home == "" {
				dir, err := os.UserHomeDir()
				if err != nil {
					return err
				}
				home = filepath.Join(dir, ".lto")
			}
			if err := os.MkdirAll(home, 0o700); err != nil {
				return err
			}

			cfg, err := app.LoadConfig(home, configPath)
			if err != nil {
				return err
			}
			if encoding != "" {
				enc, err := codec.ParseEncoding(encoding)
				if err != nil {
					return err
				}
				cfg.Encoding = enc
			}
			if logLevel != "" {
				cfg.LogLevel = logLevel
			}
			if network != "" {
				chain, err := app.ParseNetwork(network)
				if err != nil {
					return err
				}
				cfg.ChainID = chain
			}

			appCtx = app.New(app.NewWire(cfg, cmd.ErrOrStderr()))
			return nil
		},
	}

	root.PersistentFlags().StringVar(&home, "home", "", "config dir (default ~/.lto)")
	root.PersistentFlags().StringVar(&configPath, "config", "", "config file (default <home>/config.yaml)")
	root.PersistentFlags().StringVarP(&passphrase, "passphrase", "p", "", "passphrase protecting the keystore")
	root.PersistentFlags().StringVar(&encoding, "encoding", "", "raw, base58 or base64 (default from config, base58)")
	root.PersistentFlags().StringVar(&logLevel, "log-level", "", "debug, info, warn or error")
	root.PersistentFlags().StringVar(&network, "network", "", "mainnet, testnet or a chain id character")

	root.AddCommand(
		initCmd(),
		showCmd(),
		fingerprintCmd(),
		signCmd(),
		verifyCmd(),
		encryptCmd(),
		decryptCmd(),
		signEventCmd(),
	)
	return root
}

func requirePassphrase() error {
	if passphrase == "" {
		return fmt.Errorf("passphrase required (-p)")
	}
	return nil
}
