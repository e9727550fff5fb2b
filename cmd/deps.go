package cmd

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"runtime"
	"strings"

	"go.uber.org/zap"

	"github.com/FluidXR/lockboxctl/internal/config"
	"github.com/FluidXR/lockboxctl/internal/device"
	"github.com/FluidXR/lockboxctl/internal/logging"
)

var bridgeInstall = map[string]string{
	"darwin":  "brew install lockbox-bridge",
	"linux":   "sudo apt install lockbox-bridge",
	"windows": "winget install Lockbox.Bridge",
}

// checkBridge verifies the device bridge is installed and explains how to get
// it when it is not.
func checkBridge(cfg *config.Config) error {
	client := device.NewClient(cfg.BridgePath)
	err := client.CheckBridge()
	if err == nil {
		return nil
	}
	logging.Log.Debug("bridge lookup failed", zap.String("bridge", client.Bridge()), zap.Error(err))

	fmt.Fprintf(os.Stderr, "lockboxctl needs %s to talk to your device.\n", client.Bridge())
	if hint, ok := bridgeInstall[runtime.GOOS]; ok {
		fmt.Fprintf(os.Stderr, "Install it with: %s\n", hint)
	}
	fmt.Fprintf(os.Stderr, "Or point bridge_path in %s at an existing binary.\n", config.Path())
	return err
}

// checkNewDevices prompts the user to nickname any newly discovered devices.
func checkNewDevices(ctx context.Context, cfg *config.Config) {
	if ctx == nil {
		ctx = context.Background()
	}
	client := device.NewClient(cfg.BridgePath)
	devices, err := client.Devices(ctx)
	if err != nil {
		logging.Log.Debug("skip nickname prompt", zap.Error(err))
		return
	}

	reader := bufio.NewReader(os.Stdin)
	changed := false

	for _, d := range devices {
		if !d.IsOnline() {
			continue
		}
		if _, known := cfg.Devices[d.Serial]; known {
			continue
		}

		model := d.Model
		if model == "" {
			model = "unknown model"
		}
		fmt.Printf("\nNew device detected: %s (%s)\n", d.Serial, model)
		fmt.Print("Give it a nickname (or press Enter to skip): ")
		name, _ := reader.ReadString('\n')
		name = strings.TrimSpace(name)

		dc := cfg.Devices[d.Serial]
		if name != "" {
			dc.Nickname = name
		}
		cfg.Devices[d.Serial] = dc
		changed = true
	}

	if changed {
		if err := config.Save(cfg); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: could not save config: %v\n", err)
		}
	}
}
