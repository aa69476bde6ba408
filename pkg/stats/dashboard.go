package stats

import (
	"math"
	"time"

	"github.com/ponzhin/habit-tracker/pkg/db"
)

type HabitStats struct {
	HabitID        uint
	Name           string
	CurrentStreak  int
	CompletionRate int
	TotalLogs      int64
	TotalCompleted int64
	BestStreak     int
	Daily          []DayStat
}

type DailyTotal struct {
	Date            time.Time
	CompletedHabits int64
	TotalHabits     int64
}

type DashboardStats struct {
	Habits             []HabitStats
	TotalHabits        int
	AverageCompletion  int
	TotalCompletedLogs int64
	DailyTotals        []DailyTotal
}

// HabitStatistics builds the per-habit statistics view: current streak over
// full history, best streak and daily series over the trailing 30 days, and
// the last 7 days of that series for charting.
func HabitStatistics(habitID uint, today time.Time) (*HabitStats, error) {
	var habit db.Habit
	if err := db.DB.First(&habit, habitID).Error; err != nil {
		return nil, err
	}

	end := db.DateOnly(today)
	start := end.AddDate(0, 0, -DefaultCompletionWindow)

	var records []db.CompletionRecord
	if err := db.DB.
		Where("habit_id = ? AND date BETWEEN ? AND ?", habitID, start, end).
		Order("date ASC").
		Find(&records).Error; err != nil {
		return nil, err
	}
	series := BuildDailySeries(records, start, end)

	streak, err := CurrentStreak(habitID)
	if err != nil {
		return nil, err
	}

	var totalLogs, totalCompleted int64
	if err := db.DB.Model(&db.CompletionRecord{}).
		Where("habit_id = ?", habitID).
		Count(&totalLogs).Error; err != nil {
		return nil, err
	}
	if err := db.DB.Model(&db.CompletionRecord{}).
		Where("habit_id = ? AND completed = ?", habitID, true).
		Count(&totalCompleted).Error; err != nil {
		return nil, err
	}

	daily := series
	if len(daily) > 7 {
		daily = daily[len(daily)-7:]
	}

	return &HabitStats{
		HabitID:        habit.ID,
		Name:           habit.Name,
		CurrentStreak:  streak,
		CompletionRate: CompletionPercentage(habitID, today, 0),
		TotalLogs:      totalLogs,
		TotalCompleted: totalCompleted,
		BestStreak:     BestStreak(series),
		Daily:          daily,
	}, nil
}

// Dashboard aggregates statistics across all of a user's active habits plus a
// seven-day completed-habits-per-day summary.
func Dashboard(userID int64, today time.Time) (*DashboardStats, error) {
	var habits []db.Habit
	if err := db.DB.
		Where("user_id = ? AND active = ?", userID, true).
		Order("created_at ASC").
		Find(&habits).Error; err != nil {
		return nil, err
	}

	dashboard := &DashboardStats{
		Habits:      make([]HabitStats, 0, len(habits)),
		TotalHabits: len(habits),
	}

	totalCompletion := 0
	for _, habit := range habits {
		hs, err := HabitStatistics(habit.ID, today)
		if err != nil {
			return nil, err
		}
		dashboard.Habits = append(dashboard.Habits, *hs)
		dashboard.TotalCompletedLogs += hs.TotalCompleted
		totalCompletion += hs.CompletionRate
	}
	if len(habits) > 0 {
		dashboard.AverageCompletion = int(math.Round(float64(totalCompletion) / float64(len(habits))))
	}

	end := db.DateOnly(today)
	for i := 6; i >= 0; i-- {
		date := end.AddDate(0, 0, -i)
		var completed int64
		if err := db.DB.Model(&db.CompletionRecord{}).
			Joins("JOIN habits ON habits.id = completion_records.habit_id").
			Where("habits.user_id = ? AND completion_records.date = ? AND completion_records.completed = ?",
				userID, date, true).
			Count(&completed).Error; err != nil {
			return nil, err
		}
		dashboard.DailyTotals = append(dashboard.DailyTotals, DailyTotal{
			Date:            date,
			CompletedHabits: completed,
			TotalHabits:     int64(len(habits)),
		})
	}

	return dashboard, nil
}
