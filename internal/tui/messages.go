package tui

import (
	"github.com/garrettladley/arctimer/internal/countdown"
	"github.com/garrettladley/arctimer/internal/tui/page/timer"
)

const (
	dialogTitle   = "Time's up"
	dialogMessage = "⏰ The countdown has finished!"
	dialogHint    = "Press Enter to close"
)

// SnapshotMsg carries a state change published by the countdown engine.
type SnapshotMsg struct {
	Snapshot countdown.Snapshot
}

// ActionMsg reports the engine's answer to a button press.
type ActionMsg struct {
	Action   timer.Control
	Snapshot countdown.Snapshot
	Err      error
}

type AlarmDoneMsg struct {
	Err error
}

// EngineStoppedMsg is sent when the update channel is closed or the
// program context is done.
type EngineStoppedMsg struct{}
