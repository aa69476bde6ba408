package reminders

import (
	"context"
	"encoding/json"
	"time"

	"github.com/ponzhin/habit-tracker/pkg/config"
	"github.com/ponzhin/habit-tracker/pkg/db"
	"github.com/ponzhin/habit-tracker/pkg/habits"
	"github.com/ponzhin/habit-tracker/pkg/logger"
	"github.com/ponzhin/habit-tracker/pkg/notify"
	"github.com/ponzhin/habit-tracker/pkg/stats"
	"gorm.io/datatypes"
)

const (
	DefaultTickInterval    = time.Hour
	DefaultWindowMinutes   = 5
	DefaultDispatchTimeout = 30 * time.Second
)

// StartReminderLoop runs the reminder scheduler until the context is
// cancelled. Cancellation lets the in-flight tick finish; the next select
// then returns.
func StartReminderLoop(ctx context.Context, notifier notify.Notifier) {
	ticker := time.NewTicker(tickInterval())
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			processTick(ctx, notifier, now.UTC())
		}
	}
}

func processTick(ctx context.Context, notifier notify.Notifier, now time.Time) {
	var users []db.ReminderSettings
	if err := db.DB.
		Where("enabled = ? AND email_notifications = ?", true, true).
		Find(&users).Error; err != nil {
		logger.Error("failed to fetch reminder settings", "error", err)
		return
	}

	for _, user := range users {
		handleUserReminder(ctx, notifier, user, now)
	}
}

func handleUserReminder(ctx context.Context, notifier notify.Notifier, settings db.ReminderSettings, now time.Time) {
	if !withinWindow(now, settings.ReminderTime, windowMinutes()) {
		return
	}
	if remindedToday(settings, now) {
		return
	}

	active, err := habits.ListActiveHabits(settings.UserID)
	if err != nil {
		logger.Error("failed to list habits for reminder", "user_id", settings.UserID, "error", err)
		return
	}
	if len(active) == 0 {
		return
	}

	pending, err := pendingHabits(active, now)
	if err != nil {
		logger.Error("failed to check today's records", "user_id", settings.UserID, "error", err)
		return
	}
	if len(pending) == 0 {
		return
	}

	subject, body := composeReminder(pending, habitStreaks(active))

	dispatchCtx, cancel := context.WithTimeout(ctx, dispatchTimeout())
	err = notifier.Send(dispatchCtx, settings.UserID, settings.Email, subject, body)
	cancel()
	if err != nil {
		logger.Error("failed to send reminder", "user_id", settings.UserID, "error", err)
		return
	}

	sentAt := now
	settings.LastRemindedAt = &sentAt
	if err := db.DB.Save(&settings).Error; err != nil {
		logger.Error("failed to update reminder state", "user_id", settings.UserID, "error", err)
	}
	recordDispatch(settings.UserID, pending, now)
	logger.Info("reminder sent", "user_id", settings.UserID, "habits", len(pending))
}

// withinWindow matches the tick against the user's reminder time with an
// absolute minute-of-day difference. Windows straddling midnight do not
// match across the boundary (a 00:02 reminder misses a 23:58 tick); that
// follows from the plain difference and is accepted behavior.
func withinWindow(now time.Time, reminderTime string, window int) bool {
	target, err := parseClock(reminderTime)
	if err != nil {
		logger.Error("invalid reminder time", "value", reminderTime, "error", err)
		return false
	}
	diff := now.Hour()*60 + now.Minute() - target
	if diff < 0 {
		diff = -diff
	}
	return diff <= window
}

func parseClock(value string) (int, error) {
	t, err := time.Parse("15:04", value)
	if err != nil {
		return 0, err
	}
	return t.Hour()*60 + t.Minute(), nil
}

func remindedToday(settings db.ReminderSettings, now time.Time) bool {
	if settings.LastRemindedAt == nil {
		return false
	}
	return db.DateOnly(*settings.LastRemindedAt).Equal(db.DateOnly(now))
}

// pendingHabits drops habits that already have a record for today, whatever
// its completed value: a deliberate miss is not re-nagged.
func pendingHabits(active []db.Habit, now time.Time) ([]db.Habit, error) {
	today := db.DateOnly(now)
	pending := make([]db.Habit, 0, len(active))
	for _, habit := range active {
		var count int64
		if err := db.DB.Model(&db.CompletionRecord{}).
			Where("habit_id = ? AND date = ?", habit.ID, today).
			Count(&count).Error; err != nil {
			return nil, err
		}
		if count == 0 {
			pending = append(pending, habit)
		}
	}
	return pending, nil
}

func habitStreaks(active []db.Habit) []habitStreak {
	streaks := make([]habitStreak, 0, len(active))
	for _, habit := range active {
		days, err := stats.CurrentStreak(habit.ID)
		if err != nil {
			logger.Error("failed to compute streak for reminder", "habit_id", habit.ID, "error", err)
			days = 0
		}
		streaks = append(streaks, habitStreak{Name: habit.Name, Days: days})
	}
	return streaks
}

func recordDispatch(userID int64, pending []db.Habit, now time.Time) {
	ids := make([]uint, 0, len(pending))
	for _, habit := range pending {
		ids = append(ids, habit.ID)
	}
	payload, err := json.Marshal(ids)
	if err != nil {
		logger.Error("failed to encode dispatch log", "user_id", userID, "error", err)
		return
	}
	entry := db.ReminderLog{UserID: userID, SentAt: now, HabitIDs: datatypes.JSON(payload)}
	if err := db.DB.Create(&entry).Error; err != nil {
		logger.Error("failed to write dispatch log", "user_id", userID, "error", err)
	}
}

func tickInterval() time.Duration {
	if m := config.AppConfig.Scheduler.TickMinutes; m > 0 {
		return time.Duration(m) * time.Minute
	}
	return DefaultTickInterval
}

func windowMinutes() int {
	if w := config.AppConfig.Scheduler.WindowMinutes; w > 0 {
		return w
	}
	return DefaultWindowMinutes
}

func dispatchTimeout() time.Duration {
	if s := config.AppConfig.Scheduler.DispatchTimeoutSeconds; s > 0 {
		return time.Duration(s) * time.Second
	}
	return DefaultDispatchTimeout
}
