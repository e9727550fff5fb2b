package device

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
)

// DefaultBridge is the helper binary that talks USB/BLE to the device.
const DefaultBridge = "lockbox-bridge"

// ErrBridgeMissing is returned when the bridge binary is not on PATH.
var ErrBridgeMissing = errors.New("lockbox bridge not found")

// Runner executes the bridge and returns its combined output.
type Runner func(ctx context.Context, name string, args ...string) ([]byte, error)

func execRunner(ctx context.Context, name string, args ...string) ([]byte, error) {
	return exec.CommandContext(ctx, name, args...).CombinedOutput()
}

// Client wraps bridge command-line calls.
type Client struct {
	bridge string
	run    Runner
}

// NewClient creates a client for the bridge at path. An empty path uses DefaultBridge.
func NewClient(path string) *Client {
	if path == "" {
		path = DefaultBridge
	}
	return &Client{bridge: path, run: execRunner}
}

// WithRunner swaps the process runner, mostly for tests.
func (c *Client) WithRunner(r Runner) *Client {
	c.run = r
	return c
}

// Bridge returns the bridge binary the client invokes.
func (c *Client) Bridge() string {
	return c.bridge
}

// CheckBridge verifies the bridge binary can be found.
func (c *Client) CheckBridge() error {
	if _, err := exec.LookPath(c.bridge); err != nil {
		return fmt.Errorf("%w: %s", ErrBridgeMissing, c.bridge)
	}
	return nil
}

// Devices returns all hardware wallets the bridge can see.
func (c *Client) Devices(ctx context.Context) ([]Device, error) {
	out, err := c.run(ctx, c.bridge, "devices", "-l")
	if err != nil {
		if errors.Is(err, exec.ErrNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrBridgeMissing, c.bridge)
		}
		return nil, fmt.Errorf("%s devices: %w\n%s", c.bridge, err, out)
	}
	return parseDeviceList(string(out)), nil
}

// parseDeviceList parses `devices -l` output, one device per line:
//
//	<serial> <state> model:<m> firmware:<v> app:<coin> transport:<usb|bluetooth>
func parseDeviceList(output string) []Device {
	var devices []Device
	scanner := bufio.NewScanner(strings.NewReader(output))
	for scanner.Scan() {
		line := scanner.Text()
		if strings.HasPrefix(line, "List of") || strings.TrimSpace(line) == "" {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) < 2 {
			continue
		}
		d := Device{
			Serial:   fields[0],
			State:    fields[1],
			ConnType: USB,
		}
		for _, f := range fields[2:] {
			parts := strings.SplitN(f, ":", 2)
			if len(parts) != 2 {
				continue
			}
			switch parts[0] {
			case "model":
				d.Model = parts[1]
			case "firmware":
				d.Firmware = parts[1]
			case "app":
				d.App = parts[1]
			case "transport":
				if parts[1] == string(Bluetooth) {
					d.ConnType = Bluetooth
				}
			}
		}
		devices = append(devices, d)
	}
	return devices
}
