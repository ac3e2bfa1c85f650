package config_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"focal/internal/platform/config"
	apperrors "focal/internal/platform/errors"
)

func TestMissingSettingsFileYieldsDefaults(t *testing.T) {
	t.Parallel()
	settings, err := config.LoadSettings(filepath.Join(t.TempDir(), "config.yaml"))
	if err != nil {
		t.Fatalf("load settings: %v", err)
	}
	if settings != config.DefaultSettings() {
		t.Fatalf("expected defaults, got %+v", settings)
	}
}

func TestPartialSettingsFileOverridesOnlyPresentKeys(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("pomodoro_minutes: 50\nreminders_enabled: true\n"), 0o644); err != nil {
		t.Fatalf("write settings: %v", err)
	}
	settings, err := config.LoadSettings(path)
	if err != nil {
		t.Fatalf("load settings: %v", err)
	}
	if settings.PomodoroMinutes != 50 || !settings.RemindersEnabled {
		t.Fatalf("overrides not applied: %+v", settings)
	}
	if settings.ReminderBreakMin != 5 || settings.ReminderIntervalMin != 30 || !settings.QuotesEnabled {
		t.Fatalf("defaults lost: %+v", settings)
	}
}

func TestOutOfRangeReminderParametersAreInvalidInput(t *testing.T) {
	t.Parallel()
	cases := map[string]config.Settings{
		"break too low":     {PomodoroMinutes: 25, ReminderBreakMin: 0, ReminderIntervalMin: 30},
		"break too high":    {PomodoroMinutes: 25, ReminderBreakMin: 121, ReminderIntervalMin: 30},
		"interval too low":  {PomodoroMinutes: 25, ReminderBreakMin: 5, ReminderIntervalMin: 4},
		"interval too high": {PomodoroMinutes: 25, ReminderBreakMin: 5, ReminderIntervalMin: 241},
		"duration zero":     {PomodoroMinutes: 0, ReminderBreakMin: 5, ReminderIntervalMin: 30},
	}
	for name, settings := range cases {
		if err := settings.Validate(); !errors.Is(err, apperrors.ErrInvalidInput) {
			t.Fatalf("%s: expected ErrInvalidInput, got %v", name, err)
		}
	}
}

func TestSaveSettingsRoundTrip(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "config.yaml")
	want := config.Settings{PomodoroMinutes: 40, QuotesEnabled: false, RemindersEnabled: true, ReminderBreakMin: 10, ReminderIntervalMin: 45}
	if err := config.SaveSettings(path, want); err != nil {
		t.Fatalf("save settings: %v", err)
	}
	got, err := config.LoadSettings(path)
	if err != nil {
		t.Fatalf("load settings: %v", err)
	}
	if got != want {
		t.Fatalf("round trip mismatch: %+v vs %+v", got, want)
	}
}
