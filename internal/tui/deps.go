package tui

import (
	"context"
	"log/slog"

	"github.com/garrettladley/arctimer/internal/alarm"
	"github.com/garrettladley/arctimer/internal/arc"
	"github.com/garrettladley/arctimer/internal/countdown"
)

// Timer is the part of countdown.Engine the UI drives.
type Timer interface {
	Start(ctx context.Context, hours, minutes, seconds string) (countdown.Snapshot, error)
	Pause(ctx context.Context) (countdown.Snapshot, error)
	Resume(ctx context.Context) (countdown.Snapshot, error)
	Reset(ctx context.Context) (countdown.Snapshot, error)
	Updates() <-chan countdown.Snapshot
}

var _ Timer = (*countdown.Engine)(nil)

type Deps struct {
	Ctx      context.Context
	Cancel   context.CancelFunc
	Logger   *slog.Logger
	Timer    Timer
	Renderer arc.Renderer
	Alarm    alarm.Player
}
