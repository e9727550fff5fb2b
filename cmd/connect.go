package cmd

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/FluidXR/lockboxctl/internal/config"
	"github.com/FluidXR/lockboxctl/internal/device"
	"github.com/FluidXR/lockboxctl/internal/lockbox"
	"github.com/FluidXR/lockboxctl/internal/logging"
	"github.com/FluidXR/lockboxctl/internal/ui"
)

var (
	connectSerial string
	connectCoin   string
)

var connectCmd = &cobra.Command{
	Use:   "connect",
	Short: "Walk through connecting your Lockbox and opening the coin app",
	Long: `Watches the device bridge and shows which step of the connection flow you
are on: connect and unlock, open the coin app, then confirmation. Exits with an
error if the device reports a failure.`,
	PreRunE: requireBridge(),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		coin := cfg.Coin
		if connectCoin != "" {
			coin = connectCoin
		}

		ctx, cancel := context.WithCancel(cmd.Context())
		defer cancel()

		mon := &device.Monitor{
			Lister:   device.NewClient(cfg.BridgePath),
			Serial:   connectSerial,
			Coin:     coin,
			Interval: cfg.PollInterval,
			Log:      logging.Log,
		}
		model := ui.NewConnectModel(mon.Run(ctx), coin, cfg.Marquees, cfg.Nickname)

		final, err := tea.NewProgram(model).Run()
		if err != nil {
			return fmt.Errorf("run connect prompt: %w", err)
		}
		cancel()

		snap, ok := final.(ui.ConnectModel).Result()
		if !ok {
			return nil
		}
		step := lockbox.SelectStep(snap.Status).Name
		logging.Log.Info("connection flow ended", zap.Stringer("step", step))
		if step == lockbox.StepError {
			if snap.Err != nil {
				return fmt.Errorf("device connection failed: %w", snap.Err)
			}
			return fmt.Errorf("device connection failed")
		}
		return nil
	},
}

func init() {
	connectCmd.Flags().StringVar(&connectSerial, "serial", "", "only watch the device with this serial")
	connectCmd.Flags().StringVar(&connectCoin, "coin", "", "coin app to wait for (defaults to config coin)")
	rootCmd.AddCommand(connectCmd)
}
