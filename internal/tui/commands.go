package tui

import (
	"context"

	tea "charm.land/bubbletea/v2"

	"github.com/garrettladley/arctimer/internal/alarm"
	"github.com/garrettladley/arctimer/internal/countdown"
	"github.com/garrettladley/arctimer/internal/tui/page/timer"
)

// listenSnapshotsCmd bridges the engine's update channel into the program's
// message loop. It must be re-issued after every SnapshotMsg.
func listenSnapshotsCmd(ctx context.Context, updates <-chan countdown.Snapshot) tea.Cmd {
	return func() tea.Msg {
		select {
		case snap, ok := <-updates:
			if !ok {
				return EngineStoppedMsg{}
			}
			return SnapshotMsg{Snapshot: snap}
		case <-ctx.Done():
			return EngineStoppedMsg{}
		}
	}
}

// actionCmd submits a button press to the engine off the UI goroutine.
func actionCmd(ctx context.Context, t Timer, action timer.Control, fields [3]string) tea.Cmd {
	return func() tea.Msg {
		var (
			snap countdown.Snapshot
			err  error
		)
		switch action {
		case timer.ControlStart:
			snap, err = t.Start(ctx, fields[0], fields[1], fields[2])
		case timer.ControlPause:
			snap, err = t.Pause(ctx)
		case timer.ControlResume:
			snap, err = t.Resume(ctx)
		case timer.ControlReset:
			snap, err = t.Reset(ctx)
		default:
			return nil
		}
		return ActionMsg{Action: action, Snapshot: snap, Err: err}
	}
}

func playAlarmCmd(ctx context.Context, p alarm.Player) tea.Cmd {
	if p == nil {
		return nil
	}
	return func() tea.Msg {
		return AlarmDoneMsg{Err: p.Play(ctx)}
	}
}
