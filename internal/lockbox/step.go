package lockbox

import (
	"fmt"
	"strings"
)

// StepName identifies a phase of the device connection flow.
type StepName int

const (
	StepConnect StepName = iota
	StepReady
	StepSuccess
	StepError
)

// TotalSteps is the length of the progress indicator shown above each step.
const TotalSteps = 3

func (n StepName) String() string {
	switch n {
	case StepConnect:
		return "connect"
	case StepReady:
		return "ready"
	case StepSuccess:
		return "success"
	case StepError:
		return "error"
	}
	return "unknown"
}

// Status is a snapshot of the connection attempt reported by the device monitor.
// At most one flag is expected to be set; when several are, Error wins, then
// Success, then Ready.
type Status struct {
	Error   bool
	Ready   bool
	Success bool
}

// Step carries the display metadata for one phase.
type Step struct {
	Name     StepName
	Index    int
	Title    func() string
	Content  func(coin string) string
	Image    func() string
	ImageSet func() string
}

func imageSet(name string) func() string {
	return func() string {
		return fmt.Sprintf("img/%s.png 1x, img/%s@2x.png 2x", name, name)
	}
}

func constant(s string) func() string {
	return func() string { return s }
}

func displayCoin(coin string) string {
	coin = strings.TrimSpace(coin)
	if coin == "" {
		return "your"
	}
	return strings.ToUpper(coin)
}

var confirmSteps = [...]Step{
	StepConnect: {
		Name:  StepConnect,
		Index: 0,
		Title: constant("Connect Your Lockbox"),
		Content: func(coin string) string {
			return fmt.Sprintf("Plug in your Lockbox and enter your PIN to send %s funds.", displayCoin(coin))
		},
		Image:    constant("lockbox-connect"),
		ImageSet: imageSet("lockbox-connect"),
	},
	StepReady: {
		Name:  StepReady,
		Index: 1,
		Title: constant("Open the App"),
		Content: func(coin string) string {
			return fmt.Sprintf("Open the %s app on your Lockbox and confirm the details on the device.", displayCoin(coin))
		},
		Image:    constant("lockbox-ready"),
		ImageSet: imageSet("lockbox-ready"),
	},
	StepSuccess: {
		Name:  StepSuccess,
		Index: 2,
		Title: constant("Connection Confirmed"),
		Content: func(coin string) string {
			return fmt.Sprintf("Your Lockbox is connected and the %s app is open.", displayCoin(coin))
		},
		Image:    constant("lockbox-success"),
		ImageSet: imageSet("lockbox-success"),
	},
	StepError: {
		Name:  StepError,
		Index: 3,
		Title: constant("Connection Failed"),
		Content: func(coin string) string {
			return fmt.Sprintf("We could not reach the %s app. Unlock your Lockbox and try again.", displayCoin(coin))
		},
		Image:    constant("lockbox-error"),
		ImageSet: imageSet("lockbox-error"),
	},
}

// SelectStep picks the step to display for a status snapshot.
func SelectStep(status Status) Step {
	switch {
	case status.Error:
		return confirmSteps[StepError]
	case status.Success:
		return confirmSteps[StepSuccess]
	case status.Ready:
		return confirmSteps[StepReady]
	default:
		return confirmSteps[StepConnect]
	}
}

// StepFor returns the metadata for a named step.
func StepFor(name StepName) (Step, bool) {
	if name < StepConnect || name > StepError {
		return Step{}, false
	}
	return confirmSteps[name], true
}

// IsTerminal reports whether the flow has nothing left to wait on.
func (n StepName) IsTerminal() bool {
	return n == StepSuccess || n == StepError
}
