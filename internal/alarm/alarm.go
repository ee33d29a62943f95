// Package alarm plays the completion cue.
package alarm

import (
	"bytes"
	"context"
	_ "embed"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/effects"
	"github.com/faiface/beep/speaker"
	"github.com/faiface/beep/wav"
)

//go:embed assets/alarm.wav
var alarmWAV []byte

type Player interface {
	Play(ctx context.Context) error
}

// Noop is used when sound is disabled.
type Noop struct{}

func (Noop) Play(context.Context) error { return nil }

// Speaker plays the bundled cue on the default audio device. The device is
// opened lazily on the first Play.
type Speaker struct {
	buffer *beep.Buffer
	volume float64

	initOnce sync.Once
	initErr  error
}

// NewSpeaker decodes the bundled cue. volume is in beep's base-2 scale:
// 0 leaves the asset untouched, -1 halves it.
func NewSpeaker(volume float64) (*Speaker, error) {
	buf, err := Decode(bytes.NewReader(alarmWAV))
	if err != nil {
		return nil, err
	}
	return &Speaker{buffer: buf, volume: volume}, nil
}

// Decode reads a WAV stream fully into memory.
func Decode(r io.Reader) (*beep.Buffer, error) {
	streamer, format, err := wav.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("failed to decode alarm: %w", err)
	}
	defer func() { _ = streamer.Close() }()

	buf := beep.NewBuffer(format)
	buf.Append(streamer)
	if err := streamer.Err(); err != nil {
		return nil, fmt.Errorf("failed to read alarm: %w", err)
	}
	return buf, nil
}

func (s *Speaker) init() error {
	s.initOnce.Do(func() {
		rate := s.buffer.Format().SampleRate
		if err := speaker.Init(rate, rate.N(time.Second/10)); err != nil {
			s.initErr = fmt.Errorf("failed to open audio device: %w", err)
		}
	})
	return s.initErr
}

// Play blocks until the cue finished or ctx is done.
func (s *Speaker) Play(ctx context.Context) error {
	if err := s.init(); err != nil {
		return err
	}

	done := make(chan struct{})
	stream := &effects.Volume{
		Streamer: s.buffer.Streamer(0, s.buffer.Len()),
		Base:     2,
		Volume:   s.volume,
	}
	speaker.Play(beep.Seq(stream, beep.Callback(func() {
		close(done)
	})))

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		speaker.Clear()
		return ctx.Err()
	}
}
