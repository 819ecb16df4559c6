package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// ErrInvalidSettings is returned when a settings file holds out-of-range values.
var ErrInvalidSettings = errors.New("invalid settings")

// Settings holds the tunable game parameters. Keys absent from a settings
// file keep their defaults.
type Settings struct {
	BallSpeed        float64 `toml:"ball_speed"`
	BallRadius       float64 `toml:"ball_radius"`
	PlayerSpeed      float64 `toml:"player_speed"`
	PaddleWidth      float64 `toml:"paddle_width"`
	PaddleHeight     float64 `toml:"paddle_height"`
	OpponentSpeed    float64 `toml:"opponent_speed"`
	CountdownSeconds float64 `toml:"countdown_seconds"`
	CreditsSeconds   float64 `toml:"credits_seconds"`
	TargetFPS        int     `toml:"target_fps"`
	Debug            bool    `toml:"debug"`
	Audio            Audio   `toml:"audio"`
}

// Audio configures sound playback.
type Audio struct {
	Enabled bool    `toml:"enabled"`
	Volume  float64 `toml:"volume"` // Master volume multiplier, 0..1
}

// Default returns the built-in settings.
func Default() Settings {
	return Settings{
		BallSpeed:        BallSpeed,
		BallRadius:       BallRadius,
		PlayerSpeed:      PlayerSpeed,
		PaddleWidth:      PaddleWidth,
		PaddleHeight:     PaddleHeight,
		OpponentSpeed:    OpponentSpeed,
		CountdownSeconds: CountdownSeconds,
		CreditsSeconds:   CreditsSeconds,
		TargetFPS:        TargetFPS,
		Audio: Audio{
			Enabled: true,
			Volume:  1.0,
		},
	}
}

// Load reads settings from a TOML file layered over Default.
// An empty path or a missing file yields the defaults.
func Load(path string) (Settings, error) {
	s := Default()
	if path == "" {
		return s, nil
	}

	md, err := toml.DecodeFile(path, &s)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}
		return Settings{}, fmt.Errorf("decode settings %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return Settings{}, fmt.Errorf("%w: unknown key %q in %s", ErrInvalidSettings, undecoded[0].String(), path)
	}

	if err := s.Validate(); err != nil {
		return Settings{}, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// Validate checks that every physical quantity is positive.
func (s Settings) Validate() error {
	checks := []struct {
		name  string
		value float64
	}{
		{"ball_speed", s.BallSpeed},
		{"ball_radius", s.BallRadius},
		{"player_speed", s.PlayerSpeed},
		{"paddle_width", s.PaddleWidth},
		{"paddle_height", s.PaddleHeight},
		{"opponent_speed", s.OpponentSpeed},
		{"countdown_seconds", s.CountdownSeconds},
		{"target_fps", float64(s.TargetFPS)},
	}
	for _, c := range checks {
		if c.value <= 0 {
			return fmt.Errorf("%w: %s must be positive, got %v", ErrInvalidSettings, c.name, c.value)
		}
	}
	if s.CreditsSeconds < 0 {
		return fmt.Errorf("%w: credits_seconds must not be negative", ErrInvalidSettings)
	}
	if s.Audio.Volume < 0 || s.Audio.Volume > 1 {
		return fmt.Errorf("%w: audio.volume must be within [0, 1], got %v", ErrInvalidSettings, s.Audio.Volume)
	}
	return nil
}
