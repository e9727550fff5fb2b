package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/FluidXR/lockboxctl/internal/config"
	"github.com/FluidXR/lockboxctl/internal/device"
	"github.com/FluidXR/lockboxctl/internal/lockbox"
)

var devicesCmd = &cobra.Command{
	Use:     "devices",
	Short:   "List connected devices and where each one is in the connection flow",
	PreRunE: requireBridge(),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}

		devices, err := device.NewClient(cfg.BridgePath).Devices(cmd.Context())
		if err != nil {
			return err
		}
		if len(devices) == 0 {
			fmt.Println("No devices connected.")
			return nil
		}

		for _, d := range devices {
			nickname := ""
			if dc, ok := cfg.Devices[d.Serial]; ok && dc.Nickname != "" {
				nickname = fmt.Sprintf(" (%s)", dc.Nickname)
			}
			status, _ := device.StatusFromDevices([]device.Device{d}, "", cfg.Coin)
			step := lockbox.SelectStep(status)

			fmt.Printf("%-20s %s  [%s] [%s]%s\n",
				d.Serial, d.Model, d.ConnType, d.State, nickname)
			fmt.Printf("  %s\n", stepLabel(step))
			if d.App != "" {
				fmt.Printf("  App open: %s\n", d.App)
			}
		}
		return nil
	},
}

// stepLabel renders a step as a 1-based "Step n/total" line. Steps past the
// end of the progress indicator stay on the last segment.
func stepLabel(step lockbox.Step) string {
	n := step.Index + 1
	if n > lockbox.TotalSteps {
		n = lockbox.TotalSteps
	}
	return fmt.Sprintf("Step %d/%d: %s", n, lockbox.TotalSteps, step.Title())
}

func init() {
	rootCmd.AddCommand(devicesCmd)
}
