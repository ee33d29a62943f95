package status

import (
	"testing"

	"github.com/charmbracelet/x/ansi"

	"github.com/garrettladley/arctimer/internal/countdown"
)

func TestIndicator(t *testing.T) {
	t.Parallel()

	tests := []struct {
		phase     countdown.Phase
		wantText  string
		wantLabel string
	}{
		{phase: countdown.PhaseIdle, wantText: "● idle", wantLabel: "IDLE"},
		{phase: countdown.PhaseRunning, wantText: "● running", wantLabel: "RUNNING"},
		{phase: countdown.PhasePaused, wantText: "● paused", wantLabel: "PAUSED"},
		{phase: countdown.PhaseExpired, wantText: "● expired", wantLabel: "EXPIRED"},
	}

	for _, tt := range tests {
		i := Indicator{Phase: tt.phase}
		if got := ansi.Strip(i.Render()); got != tt.wantText {
			t.Errorf("Render() = %q, want %q", got, tt.wantText)
		}
		if got := i.Label(); got != tt.wantLabel {
			t.Errorf("Label() = %q, want %q", got, tt.wantLabel)
		}
	}
}
