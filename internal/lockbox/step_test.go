package lockbox

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelectStep_Priority(t *testing.T) {
	tests := []struct {
		name   string
		status Status
		want   StepName
	}{
		{name: "all false", status: Status{}, want: StepConnect},
		{name: "ready only", status: Status{Ready: true}, want: StepReady},
		{name: "success only", status: Status{Success: true}, want: StepSuccess},
		{name: "error only", status: Status{Error: true}, want: StepError},
		{name: "success beats ready", status: Status{Ready: true, Success: true}, want: StepSuccess},
		{name: "error beats ready", status: Status{Error: true, Ready: true}, want: StepError},
		{name: "error beats success", status: Status{Error: true, Success: true}, want: StepError},
		{name: "all true", status: Status{Error: true, Ready: true, Success: true}, want: StepError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SelectStep(tt.status).Name)
		})
	}
}

func TestSelectStep_Indexes(t *testing.T) {
	want := map[StepName]int{
		StepConnect: 0,
		StepReady:   1,
		StepSuccess: 2,
		StepError:   3,
	}
	for name, idx := range want {
		step, ok := StepFor(name)
		require.True(t, ok, name.String())
		assert.Equal(t, idx, step.Index, name.String())
		assert.Equal(t, name, step.Name)
	}

	assert.Equal(t, 0, SelectStep(Status{}).Index)
}

func TestSelectStep_Stable(t *testing.T) {
	s := Status{Ready: true}
	first := SelectStep(s)
	for i := 0; i < 10; i++ {
		got := SelectStep(s)
		assert.Equal(t, first.Name, got.Name)
		assert.Equal(t, first.Index, got.Index)
		assert.Equal(t, first.Title(), got.Title())
	}
}

func TestStepFor_Unknown(t *testing.T) {
	_, ok := StepFor(StepName(42))
	assert.False(t, ok)
	_, ok = StepFor(StepName(-1))
	assert.False(t, ok)
}

func TestStep_Metadata(t *testing.T) {
	for _, name := range []StepName{StepConnect, StepReady, StepSuccess, StepError} {
		step, ok := StepFor(name)
		require.True(t, ok)
		assert.NotEmpty(t, step.Title(), name.String())
		assert.Contains(t, step.Content("btc"), "BTC", name.String())
		assert.Equal(t, "lockbox-"+name.String(), step.Image())
		assert.Contains(t, step.ImageSet(), "lockbox-"+name.String()+"@2x.png 2x")
	}
}

func TestStepName_IsTerminal(t *testing.T) {
	assert.False(t, StepConnect.IsTerminal())
	assert.False(t, StepReady.IsTerminal())
	assert.True(t, StepSuccess.IsTerminal())
	assert.True(t, StepError.IsTerminal())
	assert.Equal(t, "unknown", StepName(9).String())
}
