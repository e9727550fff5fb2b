package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/FluidXR/lockboxctl/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage lockboxctl configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		fmt.Printf("Config file: %s\n\n", config.Path())
		fmt.Printf("Coin: %s\n", cfg.Coin)
		fmt.Printf("Bridge: %s\n", cfg.BridgePath)
		fmt.Printf("Poll interval: %s\n", cfg.PollInterval)
		if cfg.Timezone != "" {
			fmt.Printf("Timezone: %s\n", cfg.Timezone)
		}
		fmt.Printf("Log level: %s\n", cfg.LogLevel)
		fmt.Printf("\nHints:\n")
		if len(cfg.Marquees) == 0 {
			fmt.Println("  (none configured)")
		}
		for i, m := range cfg.Marquees {
			fmt.Printf("  %d. %s\n", i+1, m)
		}
		fmt.Printf("\nDevices:\n")
		if len(cfg.Devices) == 0 {
			fmt.Println("  (none configured)")
		}
		for serial, dc := range cfg.Devices {
			fmt.Printf("  - %s", serial)
			if dc.Nickname != "" {
				fmt.Printf(" (%s)", dc.Nickname)
			}
			fmt.Println()
		}
		return nil
	},
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Create default config file",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.DefaultConfig()
		if err := config.Save(cfg); err != nil {
			return err
		}
		fmt.Printf("Config created at %s\n", config.Path())
		return nil
	},
}

var configNicknameCmd = &cobra.Command{
	Use:   "nickname <serial> <name>",
	Short: "Set a nickname for a device",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		serial := args[0]
		name := args[1]

		cfg, err := config.Load()
		if err != nil {
			return err
		}
		dc := cfg.Devices[serial]
		dc.Nickname = name
		cfg.Devices[serial] = dc
		if err := config.Save(cfg); err != nil {
			return err
		}
		fmt.Printf("Set nickname for %s: %s\n", serial, name)
		return nil
	},
}

var configSetCoinCmd = &cobra.Command{
	Use:   "set-coin <symbol>",
	Short: "Set the coin app the connect flow waits for",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		cfg.Coin = args[0]
		if err := config.Save(cfg); err != nil {
			return err
		}
		fmt.Printf("Coin set to %s\n", cfg.Coin)
		return nil
	},
}

var configSetMarqueesCmd = &cobra.Command{
	Use:   "set-marquees <hint>...",
	Short: "Replace the hints shown while the device is ready",
	Long:  `Example: lockboxctl config set-marquees "Enter your PIN" "Open the Bitcoin app"`,
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		cfg.Marquees = args
		if err := config.Save(cfg); err != nil {
			return err
		}
		fmt.Printf("Saved %d hints\n", len(args))
		return nil
	},
}

func init() {
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configNicknameCmd)
	configCmd.AddCommand(configSetCoinCmd)
	configCmd.AddCommand(configSetMarqueesCmd)
	rootCmd.AddCommand(configCmd)
}
