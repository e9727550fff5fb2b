package device

import (
	"context"
	"errors"
	"os/exec"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleList = `List of devices attached
0001A7F3	device model:nanos firmware:1.6.0 app:btc transport:usb
0001B912	locked model:nanox firmware:2.1.0 transport:bluetooth

garbage
`

func TestParseDeviceList(t *testing.T) {
	devices := parseDeviceList(sampleList)
	require.Len(t, devices, 2)

	assert.Equal(t, Device{
		Serial:   "0001A7F3",
		State:    StateDevice,
		ConnType: USB,
		Model:    "nanos",
		Firmware: "1.6.0",
		App:      "btc",
	}, devices[0])

	assert.Equal(t, StateLocked, devices[1].State)
	assert.Equal(t, Bluetooth, devices[1].ConnType)
	assert.Empty(t, devices[1].App)
}

func TestClient_Devices(t *testing.T) {
	var gotName string
	var gotArgs []string
	c := NewClient("").WithRunner(func(_ context.Context, name string, args ...string) ([]byte, error) {
		gotName, gotArgs = name, args
		return []byte(sampleList), nil
	})

	devices, err := c.Devices(context.Background())
	require.NoError(t, err)
	assert.Len(t, devices, 2)
	assert.Equal(t, DefaultBridge, gotName)
	assert.Equal(t, []string{"devices", "-l"}, gotArgs)
}

func TestClient_DevicesErrors(t *testing.T) {
	missing := NewClient("nope").WithRunner(func(context.Context, string, ...string) ([]byte, error) {
		return nil, &exec.Error{Name: "nope", Err: exec.ErrNotFound}
	})
	_, err := missing.Devices(context.Background())
	assert.ErrorIs(t, err, ErrBridgeMissing)

	failing := NewClient("bridge").WithRunner(func(context.Context, string, ...string) ([]byte, error) {
		return []byte("usb busy"), errors.New("exit status 2")
	})
	_, err = failing.Devices(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "usb busy")
	assert.NotErrorIs(t, err, ErrBridgeMissing)
}

func TestDevice_HasApp(t *testing.T) {
	d := Device{App: "BTC"}
	assert.True(t, d.HasApp("btc"))
	assert.False(t, d.HasApp("eth"))
	assert.False(t, d.HasApp(""))
	assert.False(t, Device{}.HasApp("btc"))
}
