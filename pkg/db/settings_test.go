package db_test

import (
	"testing"

	"github.com/ponzhin/habit-tracker/pkg/db"
	"github.com/ponzhin/habit-tracker/pkg/internal/testutil"
)

func TestEnsureReminderSettingsCreatesDefaults(t *testing.T) {
	testutil.SetupTestDB(t)

	settings, err := db.EnsureReminderSettings(1)
	if err != nil {
		t.Fatalf("EnsureReminderSettings returned error: %v", err)
	}
	if !settings.Enabled {
		t.Error("expected reminders enabled by default")
	}
	if !settings.EmailNotifications {
		t.Error("expected email notifications enabled by default")
	}
	if settings.ReminderTime != db.DefaultReminderTime {
		t.Errorf("expected default reminder time %q, got %q", db.DefaultReminderTime, settings.ReminderTime)
	}
}

func TestEnsureReminderSettingsIsOnePerUser(t *testing.T) {
	testutil.SetupTestDB(t)

	first, err := db.EnsureReminderSettings(1)
	if err != nil {
		t.Fatalf("EnsureReminderSettings returned error: %v", err)
	}
	if err := db.DB.Model(first).Update("reminder_time", "21:30").Error; err != nil {
		t.Fatalf("failed to update settings: %v", err)
	}

	second, err := db.EnsureReminderSettings(1)
	if err != nil {
		t.Fatalf("EnsureReminderSettings returned error: %v", err)
	}
	if second.ID != first.ID {
		t.Errorf("expected the existing row, got id %d and %d", first.ID, second.ID)
	}
	if second.ReminderTime != "21:30" {
		t.Errorf("expected user's chosen time preserved, got %q", second.ReminderTime)
	}

	var count int64
	if err := db.DB.Model(&db.ReminderSettings{}).Where("user_id = ?", 1).Count(&count).Error; err != nil {
		t.Fatalf("failed to count settings rows: %v", err)
	}
	if count != 1 {
		t.Errorf("expected one settings row per user, found %d", count)
	}
}
