package config

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestRead_Defaults(t *testing.T) {
	cfg, err := Read()
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}

	want := Config{
		Sound:    true,
		Size:     200,
		Stroke:   14,
		Margin:   10,
		Segments: 200,
	}
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Errorf("Read() mismatch (-want +got):\n%s", diff)
	}
}

func TestRead_Overrides(t *testing.T) {
	t.Setenv("ARCTIMER_SOUND", "false")
	t.Setenv("ARCTIMER_SEGMENTS", "64")
	t.Setenv("ARCTIMER_LOG_FILE", "/tmp/arctimer.log")

	cfg, err := Read()
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}
	if cfg.Sound || cfg.Segments != 64 || cfg.LogFile != "/tmp/arctimer.log" {
		t.Errorf("Read() = %+v", cfg)
	}
}

func TestRead_InvalidArc(t *testing.T) {
	t.Setenv("ARCTIMER_STROKE", "500")

	if _, err := Read(); err == nil {
		t.Error("Read() should reject a stroke wider than the canvas")
	}
}

func TestRead_Malformed(t *testing.T) {
	t.Setenv("ARCTIMER_SIZE", "big")

	if _, err := Read(); err == nil {
		t.Error("Read() should reject a non-numeric size")
	}
}
