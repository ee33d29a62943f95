package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"

	"github.com/garrettladley/arctimer/internal/arc"
)

type Config struct {
	Sound    bool    `env:"SOUND" envDefault:"true"`
	Volume   float64 `env:"VOLUME" envDefault:"0"`
	Size     int     `env:"SIZE" envDefault:"200"`
	Stroke   int     `env:"STROKE" envDefault:"14"`
	Margin   int     `env:"MARGIN" envDefault:"10"`
	Segments int     `env:"SEGMENTS" envDefault:"200"`
	LogFile  string  `env:"LOG_FILE"`
}

const envPrefix = "ARCTIMER_"

func Read() (Config, error) {
	cfg, err := env.ParseAsWithOptions[Config](env.Options{Prefix: envPrefix})
	if err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if _, err := arc.New(c.ArcOptions()...); err != nil {
		return fmt.Errorf("invalid arc settings: %w", err)
	}
	return nil
}

func (c Config) ArcOptions() []arc.Option {
	return []arc.Option{
		arc.WithSize(c.Size),
		arc.WithStroke(c.Stroke),
		arc.WithMargin(c.Margin),
		arc.WithSegments(c.Segments),
	}
}
