package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	apperrors "focal/internal/platform/errors"
)

// Settings are user-tunable defaults read from config.yaml. A missing file
// means defaults; a present file only overrides the keys it sets.
type Settings struct {
	PomodoroMinutes     int  `yaml:"pomodoro_minutes"`
	QuotesEnabled       bool `yaml:"quotes_enabled"`
	RemindersEnabled    bool `yaml:"reminders_enabled"`
	ReminderBreakMin    int  `yaml:"reminder_break_min"`
	ReminderIntervalMin int  `yaml:"reminder_interval_min"`
}

func DefaultSettings() Settings {
	return Settings{
		PomodoroMinutes:     25,
		QuotesEnabled:       true,
		RemindersEnabled:    false,
		ReminderBreakMin:    5,
		ReminderIntervalMin: 30,
	}
}

func LoadSettings(path string) (Settings, error) {
	settings := DefaultSettings()
	payload, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return settings, nil
		}
		return Settings{}, fmt.Errorf("read settings: %w", err)
	}
	if err := yaml.Unmarshal(payload, &settings); err != nil {
		return Settings{}, fmt.Errorf("decode settings: %w", err)
	}
	if err := settings.Validate(); err != nil {
		return Settings{}, err
	}
	return settings, nil
}

func SaveSettings(path string, settings Settings) error {
	if err := settings.Validate(); err != nil {
		return err
	}
	payload, err := yaml.Marshal(settings)
	if err != nil {
		return fmt.Errorf("encode settings: %w", err)
	}
	if err := os.WriteFile(path, payload, 0o644); err != nil {
		return fmt.Errorf("write settings: %w", err)
	}
	return nil
}

func (s Settings) Validate() error {
	if s.PomodoroMinutes < 1 || s.PomodoroMinutes > 240 {
		return fmt.Errorf("pomodoro_minutes must be between 1 and 240: %w", apperrors.ErrInvalidInput)
	}
	if s.ReminderBreakMin < 1 || s.ReminderBreakMin > 120 {
		return fmt.Errorf("reminder_break_min must be between 1 and 120: %w", apperrors.ErrInvalidInput)
	}
	if s.ReminderIntervalMin < 5 || s.ReminderIntervalMin > 240 {
		return fmt.Errorf("reminder_interval_min must be between 5 and 240: %w", apperrors.ErrInvalidInput)
	}
	return nil
}
