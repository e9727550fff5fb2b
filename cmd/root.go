package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/FluidXR/lockboxctl/internal/config"
	"github.com/FluidXR/lockboxctl/internal/logging"
)

// Version of lockboxctl.
const Version = "0.2.0"

var verbose bool

var rootCmd = &cobra.Command{
	Use:     "lockboxctl",
	Short:   "Connect a Lockbox hardware wallet and review exchange trades",
	Version: Version,
	Long: `lockboxctl walks you through connecting a Lockbox hardware wallet from the
terminal and shows the details of buy and sell orders placed with the exchange
partner.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		if err := logging.Init(cfg.LogLevel, verbose); err != nil {
			return fmt.Errorf("init logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		logging.Sync()
	},
}

// requireBridge returns a PreRunE that checks for the device bridge and
// prompts to nickname any new devices.
func requireBridge() func(cmd *cobra.Command, args []string) error {
	return func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		if err := checkBridge(cfg); err != nil {
			return err
		}
		checkNewDevices(cmd.Context(), cfg)
		return nil
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
