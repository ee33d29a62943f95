package main

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/google/go-cmp/cmp"

	"github.com/garrettladley/arctimer/internal/countdown"
)

type countingPlayer struct {
	plays atomic.Int32
}

func (c *countingPlayer) Play(context.Context) error {
	c.plays.Add(1)
	return nil
}

func newFastEngine() *countdown.Engine {
	return countdown.NewEngine(
		countdown.WithInterval(time.Millisecond),
		countdown.WithLogger(slog.New(slog.DiscardHandler)),
	)
}

func TestRunHeadless(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		h, m, s   string
		wantLines []string
		wantErr   error
		wantPlays int32
	}{
		{
			name: "counts down to expiry",
			h:    "0", m: "0", s: "2",
			wantLines: []string{
				"running  00:00:02",
				"running  00:00:01",
				"expired  00:00:00",
			},
			wantPlays: 1,
		},
		{
			name: "zero total expires immediately",
			h:    "0", m: "0", s: "0",
			wantLines: []string{"expired  00:00:00"},
			wantPlays: 1,
		},
		{
			name: "invalid input",
			h:    "one", m: "0", s: "0",
			wantErr: countdown.ErrInvalidInput,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var (
				out bytes.Buffer
				p   countingPlayer
			)
			err := runHeadless(t.Context(), newFastEngine(), &p, textPrinter(&out), tt.h, tt.m, tt.s)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("runHeadless() error = %v, want %v", err, tt.wantErr)
			}

			var got []string
			if out.Len() > 0 {
				got = strings.Split(strings.TrimSuffix(out.String(), "\n"), "\n")
			}
			if diff := cmp.Diff(tt.wantLines, got); diff != "" {
				t.Errorf("output mismatch (-want +got):\n%s", diff)
			}
			if n := p.plays.Load(); n != tt.wantPlays {
				t.Errorf("alarm played %d times, want %d", n, tt.wantPlays)
			}
		})
	}
}

func TestRunHeadless_JSON(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	if err := runHeadless(t.Context(), newFastEngine(), &countingPlayer{}, jsonPrinter(&out), "0", "0", "1"); err != nil {
		t.Fatalf("runHeadless() error = %v", err)
	}

	dec := json.NewDecoder(&out)
	var snaps []countdown.Snapshot
	for dec.More() {
		var snap countdown.Snapshot
		if err := dec.Decode(&snap); err != nil {
			t.Fatalf("Decode() error = %v", err)
		}
		snaps = append(snaps, snap)
	}

	if len(snaps) != 2 {
		t.Fatalf("got %d snapshots, want 2", len(snaps))
	}
	last := snaps[len(snaps)-1]
	if !last.Expired || last.PhaseName != "expired" || last.Fraction != 1 {
		t.Errorf("last snapshot = %+v, want expired at fraction 1", last)
	}
	if snaps[0].Session == "" || snaps[0].Session != last.Session {
		t.Errorf("sessions = %q, %q, want one non-empty id", snaps[0].Session, last.Session)
	}
}

func TestRunHeadless_Cancel(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(t.Context())
	done := make(chan error, 1)
	go func() {
		done <- runHeadless(ctx, countdown.NewEngine(countdown.WithLogger(slog.New(slog.DiscardHandler))),
			&countingPlayer{}, textPrinter(io.Discard), "1", "0", "0")
	}()

	time.Sleep(20 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		if err != nil && !errors.Is(err, context.Canceled) && !errors.Is(err, countdown.ErrStopped) {
			t.Errorf("runHeadless() error = %v", err)
		}
	case <-time.After(time.Second):
		t.Fatal("runHeadless did not return after cancel")
	}
}
