package stats

import (
	"testing"
	"time"

	"github.com/ponzhin/habit-tracker/pkg/db"
	"github.com/ponzhin/habit-tracker/pkg/internal/testutil"
)

func seedHabit(t *testing.T, userID int64) db.Habit {
	t.Helper()
	habit := db.Habit{UserID: userID, Name: "Morning run", Frequency: db.FrequencyDaily, TargetDays: 30, Active: true}
	if err := db.DB.Create(&habit).Error; err != nil {
		t.Fatalf("failed to create habit: %v", err)
	}
	return habit
}

func seedRecord(t *testing.T, habitID uint, date time.Time, completed bool) {
	t.Helper()
	record := db.CompletionRecord{HabitID: habitID, Date: db.DateOnly(date), Completed: completed}
	if err := db.DB.Create(&record).Error; err != nil {
		t.Fatalf("failed to create record: %v", err)
	}
}

func TestCurrentStreakNoMissCountsFullHistory(t *testing.T) {
	testutil.SetupTestDB(t)
	habit := seedHabit(t, 1)

	base := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 45; i++ {
		seedRecord(t, habit.ID, base.AddDate(0, 0, i), true)
	}

	streak, err := CurrentStreak(habit.ID)
	if err != nil {
		t.Fatalf("CurrentStreak returned error: %v", err)
	}
	if streak != 45 {
		t.Errorf("expected streak 45 over full history, got %d", streak)
	}
}

func TestCurrentStreakCountsAfterLastMiss(t *testing.T) {
	testutil.SetupTestDB(t)
	habit := seedHabit(t, 1)

	base := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 5; i++ {
		seedRecord(t, habit.ID, base.AddDate(0, 0, i), true)
	}
	seedRecord(t, habit.ID, base.AddDate(0, 0, 5), false)
	for i := 6; i < 9; i++ {
		seedRecord(t, habit.ID, base.AddDate(0, 0, i), true)
	}

	streak, err := CurrentStreak(habit.ID)
	if err != nil {
		t.Fatalf("CurrentStreak returned error: %v", err)
	}
	if streak != 3 {
		t.Errorf("expected streak 3 after last miss, got %d", streak)
	}
}

func TestCurrentStreakIdempotentAndMonotonic(t *testing.T) {
	testutil.SetupTestDB(t)
	habit := seedHabit(t, 1)

	base := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	seedRecord(t, habit.ID, base, true)

	first, err := CurrentStreak(habit.ID)
	if err != nil {
		t.Fatalf("CurrentStreak returned error: %v", err)
	}
	second, err := CurrentStreak(habit.ID)
	if err != nil {
		t.Fatalf("CurrentStreak returned error: %v", err)
	}
	if first != second {
		t.Errorf("expected idempotent result, got %d then %d", first, second)
	}

	seedRecord(t, habit.ID, base.AddDate(0, 0, 1), true)
	grown, err := CurrentStreak(habit.ID)
	if err != nil {
		t.Fatalf("CurrentStreak returned error: %v", err)
	}
	if grown != first+1 {
		t.Errorf("expected streak to grow by exactly 1, got %d after %d", grown, first)
	}
}

func TestCurrentStreakEmptyHistory(t *testing.T) {
	testutil.SetupTestDB(t)
	habit := seedHabit(t, 1)

	streak, err := CurrentStreak(habit.ID)
	if err != nil {
		t.Fatalf("CurrentStreak returned error: %v", err)
	}
	if streak != 0 {
		t.Errorf("expected streak 0 without records, got %d", streak)
	}
}

func TestCompletionPercentageBounds(t *testing.T) {
	testutil.SetupTestDB(t)
	habit := seedHabit(t, 1)
	reference := time.Date(2025, 2, 1, 12, 0, 0, 0, time.UTC)

	if got := CompletionPercentage(habit.ID, reference, 30); got != 0 {
		t.Errorf("expected 0%% with no records, got %d", got)
	}

	for i := 0; i < 15; i++ {
		seedRecord(t, habit.ID, reference.AddDate(0, 0, -i), true)
	}
	got := CompletionPercentage(habit.ID, reference, 30)
	if got != 50 {
		t.Errorf("expected 50%% for 15/30, got %d", got)
	}

	for i := 15; i <= 30; i++ {
		seedRecord(t, habit.ID, reference.AddDate(0, 0, -i), true)
	}
	got = CompletionPercentage(habit.ID, reference, 30)
	if got < 0 || got > 100 {
		t.Errorf("percentage out of range: %d", got)
	}
}

func TestCompletionPercentageSwallowsFailure(t *testing.T) {
	// No database at all: the dashboard policy is 0, not an error.
	if db.DB != nil {
		t.Fatal("expected no database for this test")
	}
	if got := CompletionPercentage(1, time.Now(), 30); got != 0 {
		t.Errorf("expected 0 without a database, got %d", got)
	}
}
