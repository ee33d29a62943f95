package countdown

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

type Phase uint

const (
	PhaseIdle Phase = iota
	PhaseRunning
	PhasePaused
	PhaseExpired
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseRunning:
		return "running"
	case PhasePaused:
		return "paused"
	case PhaseExpired:
		return "expired"
	default:
		return "unknown"
	}
}

const (
	// IdleDisplay is shown before a countdown starts and after a reset.
	IdleDisplay = "00:00"

	// MaxTotal bounds the configurable duration in seconds.
	MaxTotal = math.MaxInt32
)

// State is the timer's mutable state. It is owned by a single goroutine;
// everything else sees Snapshots.
type State struct {
	Total     int // seconds
	Remaining int // seconds, never above Total
	Running   bool
	Paused    bool // implies Running
	expired   bool
}

func (s State) Phase() Phase {
	switch {
	case s.Running && s.Paused:
		return PhasePaused
	case s.Running:
		return PhaseRunning
	case s.expired:
		return PhaseExpired
	default:
		return PhaseIdle
	}
}

// Snapshot is an immutable copy of State annotated for display.
type Snapshot struct {
	Session   string  `json:"session,omitempty"`
	Phase     Phase   `json:"-"`
	PhaseName string  `json:"phase"`
	Total     int     `json:"total"`
	Remaining int     `json:"remaining"`
	Running   bool    `json:"running"`
	Paused    bool    `json:"paused"`
	Display   string  `json:"display"`
	Fraction  float64 `json:"fraction"`
	// Expired is set only on the snapshot produced by the transition
	// into PhaseExpired.
	Expired bool `json:"expired,omitempty"`
}

func (s State) snapshot(session string) Snapshot {
	phase := s.Phase()
	snap := Snapshot{
		Session:   session,
		Phase:     phase,
		PhaseName: phase.String(),
		Total:     s.Total,
		Remaining: s.Remaining,
		Running:   s.Running,
		Paused:    s.Paused,
		Display:   Format(s.Remaining),
		Fraction:  Fraction(s.Total, s.Remaining),
	}
	if phase == PhaseIdle {
		snap.Display = IdleDisplay
	}
	return snap
}

// Format renders seconds as HH:MM:SS. Hours are not wrapped.
func Format(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	var (
		hrs  = seconds / 3600
		mins = (seconds % 3600) / 60
		secs = seconds % 60
	)
	return fmt.Sprintf("%02d:%02d:%02d", hrs, mins, secs)
}

// Fraction returns the elapsed share of total in [0,1], or 0 when total is 0.
func Fraction(total, remaining int) float64 {
	if total <= 0 {
		return 0
	}
	remaining = min(max(remaining, 0), total)
	return float64(total-remaining) / float64(total)
}

// Parse converts the hours, minutes and seconds fields into a total in
// seconds. Fields must be non-negative base-10 integers; surrounding
// whitespace is ignored.
func Parse(hours, minutes, seconds string) (int, error) {
	fields := []struct {
		name  string
		value string
		unit  int64
	}{
		{FieldHours, hours, 3600},
		{FieldMinutes, minutes, 60},
		{FieldSeconds, seconds, 1},
	}

	var total int64
	for _, f := range fields {
		n, err := strconv.ParseInt(strings.TrimSpace(f.value), 10, 64)
		if err != nil || n < 0 {
			return 0, &InputError{Field: f.name, Value: f.value}
		}
		if n > MaxTotal/f.unit {
			return 0, &InputError{Field: f.name, Value: f.value}
		}
		total += n * f.unit
		if total > MaxTotal {
			return 0, &InputError{Field: f.name, Value: f.value}
		}
	}
	return int(total), nil
}
