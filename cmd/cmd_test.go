package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/FluidXR/lockboxctl/internal/config"
	"github.com/FluidXR/lockboxctl/internal/lockbox"
	"github.com/FluidXR/lockboxctl/internal/store"
)

func run(t *testing.T, args ...string) error {
	t.Helper()
	rootCmd.SetArgs(args)
	return rootCmd.Execute()
}

func TestConfigCommands(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	require.NoError(t, run(t, "config", "init"))
	_, err := os.Stat(config.Path())
	require.NoError(t, err)

	require.NoError(t, run(t, "config", "set-coin", "eth"))
	require.NoError(t, run(t, "config", "set-marquees", "Unlock", "Open app"))
	require.NoError(t, run(t, "config", "nickname", "0001A7F3", "desk"))
	require.NoError(t, run(t, "config"))

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, "eth", cfg.Coin)
	assert.Equal(t, []string{"Unlock", "Open app"}, cfg.Marquees)
	assert.Equal(t, "desk", cfg.Nickname("0001A7F3"))
}

const exportDoc = `
trades:
  - id: 101
    state: completed
    is_buy: true
    created_at: 2018-03-07T16:05:00Z
    btc_amount: "0.01"
    fiat_amount: "95.00"
    fiat_currency: EUR
    fee: "2.50"
`

func TestTradeCommands(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	path := filepath.Join(t.TempDir(), "export.yaml")
	require.NoError(t, os.WriteFile(path, []byte(exportDoc), 0o644))

	require.NoError(t, run(t, "trade", "import", path))

	db, err := store.Open(config.Dir())
	require.NoError(t, err)
	trades, err := db.ListTrades()
	require.NoError(t, err)
	require.NoError(t, db.Close())
	require.Len(t, trades, 1)

	require.NoError(t, run(t, "trade", "list"))
	require.NoError(t, run(t, "trade", "show", "101"))
	require.NoError(t, run(t, "trade", "show", "101", "--status", "PROCESSING"))
	tradeStatus = ""

	err = run(t, "trade", "show", "999")
	assert.ErrorIs(t, err, store.ErrTradeNotFound)

	err = run(t, "trade", "show", "abc")
	assert.ErrorContains(t, err, "invalid trade id")

	err = run(t, "trade", "import", filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorContains(t, err, "open export")
}

func TestStepLabel(t *testing.T) {
	tests := []struct {
		status lockbox.Status
		want   string
	}{
		{lockbox.Status{}, "Step 1/3: Connect Your Lockbox"},
		{lockbox.Status{Ready: true}, "Step 2/3: Open the App"},
		{lockbox.Status{Success: true}, "Step 3/3: Connection Confirmed"},
		{lockbox.Status{Error: true}, "Step 3/3: Connection Failed"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, stepLabel(lockbox.SelectStep(tt.status)))
	}
}
