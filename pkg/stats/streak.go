package stats

import (
	"errors"
	"math"
	"time"

	"github.com/ponzhin/habit-tracker/pkg/db"
	"github.com/ponzhin/habit-tracker/pkg/logger"
	"gorm.io/gorm"
)

const DefaultCompletionWindow = 30

// CurrentStreak counts the completed days since the most recent miss, over
// the habit's entire history. When no miss was ever recorded the count covers
// every completed day. This is deliberately not bounded to a trailing window;
// the bounded day-by-day streak in BuildDailySeries serves display ranges
// only.
func CurrentStreak(habitID uint) (int, error) {
	var lastMiss db.CompletionRecord
	err := db.DB.
		Where("habit_id = ? AND completed = ?", habitID, false).
		Order("date DESC").
		First(&lastMiss).Error
	hasMiss := err == nil
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, err
	}

	query := db.DB.Model(&db.CompletionRecord{}).
		Where("habit_id = ? AND completed = ?", habitID, true)
	if hasMiss {
		query = query.Where("date > ?", lastMiss.Date)
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return int(count), nil
}

// CompletionPercentage reports how much of the trailing window was completed,
// rounded to a whole percent and clamped to [0, 100]. Any failure yields 0 so
// a broken read never takes the dashboard down with it.
func CompletionPercentage(habitID uint, reference time.Time, windowDays int) int {
	if windowDays <= 0 {
		windowDays = DefaultCompletionWindow
	}
	if db.DB == nil {
		return 0
	}

	end := db.DateOnly(reference)
	start := end.AddDate(0, 0, -windowDays)

	var count int64
	err := db.DB.Model(&db.CompletionRecord{}).
		Where("habit_id = ? AND completed = ? AND date BETWEEN ? AND ?", habitID, true, start, end).
		Count(&count).Error
	if err != nil {
		logger.Error("failed to count completions", "habit_id", habitID, "error", err)
		return 0
	}

	percentage := int(math.Round(float64(count) / float64(windowDays) * 100))
	if percentage > 100 {
		percentage = 100
	}
	return percentage
}
