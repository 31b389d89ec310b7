package grove

import (
	"errors"
	"fmt"
	"math"

	"github.com/BurntSushi/toml"
	"github.com/tanema/gween/ease"
)

// Settings are the tunables consumed by files and the simulation.
type Settings struct {
	// IdleTime is how long, in seconds, a file stays fully visible after its
	// last touch before it starts to fade.
	IdleTime float64 `toml:"idle_time"`

	// ShowExtensions labels unselected files with their extension only.
	ShowExtensions bool `toml:"show_extensions"`

	FileDiameter float64 `toml:"file_diameter"`
	NameTime     float64 `toml:"name_time"` // seconds a label stays up after a touch
	FileSpeed    float64 `toml:"file_speed"`

	Debug bool `toml:"debug"`

	// FadeEase shapes the touch color decay and the idle fade. nil is linear.
	FadeEase ease.TweenFunc `toml:"-"`
}

// DefaultSettings returns the settings used when none are configured.
func DefaultSettings() Settings {
	return Settings{
		IdleTime:     5,
		FileDiameter: 8,
		NameTime:     4,
		FileSpeed:    5,
		FadeEase:     ease.Linear,
	}
}

// LoadSettings reads a TOML settings file. Keys missing from the file keep
// their default values.
func LoadSettings(path string) (Settings, error) {
	s := DefaultSettings()
	if _, err := toml.DecodeFile(path, &s); err != nil {
		return Settings{}, fmt.Errorf("grove: load settings %s: %w", path, err)
	}
	if err := s.Validate(); err != nil {
		return Settings{}, fmt.Errorf("grove: load settings %s: %w", path, err)
	}
	return s, nil
}

// Validate reports settings that cannot drive a simulation.
func (s Settings) Validate() error {
	var errs []error
	for _, v := range []struct {
		name string
		val  float64
	}{
		{"idle_time", s.IdleTime},
		{"file_diameter", s.FileDiameter},
		{"name_time", s.NameTime},
		{"file_speed", s.FileSpeed},
	} {
		if math.IsNaN(v.val) || math.IsInf(v.val, 0) {
			errs = append(errs, fmt.Errorf("%s must be finite, got %v", v.name, v.val))
		}
	}
	if s.IdleTime < 0 {
		errs = append(errs, fmt.Errorf("idle_time must be >= 0, got %v", s.IdleTime))
	}
	if s.FileDiameter <= 0 {
		errs = append(errs, fmt.Errorf("file_diameter must be > 0, got %v", s.FileDiameter))
	}
	if s.NameTime < 0 {
		errs = append(errs, fmt.Errorf("name_time must be >= 0, got %v", s.NameTime))
	}
	if s.FileSpeed < 0 {
		errs = append(errs, fmt.Errorf("file_speed must be >= 0, got %v", s.FileSpeed))
	}
	return errors.Join(errs...)
}
