package device

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/FluidXR/lockboxctl/internal/lockbox"
)

// Lister is anything that can enumerate devices.
type Lister interface {
	Devices(ctx context.Context) ([]Device, error)
}

// Snapshot is one observation of the connection attempt.
type Snapshot struct {
	Status lockbox.Status
	Device *Device
	Err    error
	At     time.Time
}

// rank orders candidate devices: an online device with the coin app open
// beats a plain online one, which beats a faulted one, which beats a locked
// or unknown one.
func rank(d Device, coin string) int {
	switch {
	case d.IsOnline() && d.HasApp(coin):
		return 3
	case d.IsOnline():
		return 2
	case d.IsFaulted():
		return 1
	}
	return 0
}

// StatusFromDevices reduces the visible devices to a connection status for
// coin. When serial is set, only that device is considered. Among several
// devices the highest ranked wins; ties go to the first listed.
func StatusFromDevices(devices []Device, serial, coin string) (lockbox.Status, *Device) {
	var picked *Device
	best := -1
	for i := range devices {
		d := devices[i]
		if serial != "" && d.Serial != serial {
			continue
		}
		if r := rank(d, coin); r > best {
			picked, best = &d, r
		}
	}
	if picked == nil {
		return lockbox.Status{}, nil
	}
	switch best {
	case 3:
		return lockbox.Status{Success: true}, picked
	case 2:
		return lockbox.Status{Ready: true}, picked
	case 1:
		return lockbox.Status{Error: true}, picked
	}
	return lockbox.Status{}, picked
}

// Monitor polls a Lister and publishes snapshots.
type Monitor struct {
	Lister   Lister
	Serial   string
	Coin     string
	Interval time.Duration
	Log      *zap.Logger
}

// Probe takes a single snapshot.
func (m *Monitor) Probe(ctx context.Context) Snapshot {
	devices, err := m.Lister.Devices(ctx)
	if err != nil {
		return Snapshot{Status: lockbox.Status{Error: true}, Err: err, At: time.Now()}
	}
	status, d := StatusFromDevices(devices, m.Serial, m.Coin)
	return Snapshot{Status: status, Device: d, At: time.Now()}
}

// Run probes immediately and then on every tick, sending each snapshot on the
// returned channel. The channel is closed when ctx is done.
func (m *Monitor) Run(ctx context.Context) <-chan Snapshot {
	interval := m.Interval
	if interval <= 0 {
		interval = time.Second
	}
	log := m.Log
	if log == nil {
		log = zap.NewNop()
	}

	out := make(chan Snapshot, 1)
	go func() {
		defer close(out)
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		var last lockbox.Status
		first := true
		for {
			snap := m.Probe(ctx)
			if ctx.Err() != nil {
				return
			}
			if snap.Err != nil {
				log.Warn("device probe failed", zap.Error(snap.Err))
			} else if first || snap.Status != last {
				log.Debug("connection status changed",
					zap.Stringer("step", lockbox.SelectStep(snap.Status).Name))
			}
			last, first = snap.Status, false

			select {
			case out <- snap:
			case <-ctx.Done():
				return
			}
			select {
			case <-ticker.C:
			case <-ctx.Done():
				return
			}
		}
	}()
	return out
}
