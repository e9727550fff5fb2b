package device

import "strings"

// ConnectionType indicates how a device is attached.
type ConnectionType string

const (
	USB       ConnectionType = "usb"
	Bluetooth ConnectionType = "bluetooth"
)

// Device states reported by the bridge.
const (
	StateDevice       = "device"
	StateUnauthorized = "unauthorized"
	StateOffline      = "offline"
	StateLocked       = "locked"
)

// Device is a hardware wallet seen by the bridge.
type Device struct {
	Serial   string
	State    string // "device", "locked", "unauthorized", "offline"
	ConnType ConnectionType
	Model    string
	Firmware string
	App      string // coin app currently open, empty on the dashboard
}

// IsOnline returns true if the device is unlocked and talking to the bridge.
func (d Device) IsOnline() bool {
	return d.State == StateDevice
}

// IsFaulted returns true if the bridge sees the device but cannot use it.
func (d Device) IsFaulted() bool {
	return d.State == StateUnauthorized || d.State == StateOffline
}

// HasApp reports whether the open app matches coin, case-insensitively.
func (d Device) HasApp(coin string) bool {
	return d.App != "" && coin != "" && strings.EqualFold(d.App, coin)
}
