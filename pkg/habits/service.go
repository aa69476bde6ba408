package habits

import (
	"errors"
	"strings"
	"time"

	"github.com/ponzhin/habit-tracker/pkg/achievements"
	"github.com/ponzhin/habit-tracker/pkg/db"
	"github.com/ponzhin/habit-tracker/pkg/logger"
	"gorm.io/gorm"
)

var (
	ErrEmptyName        = errors.New("habit name must not be empty")
	ErrInvalidFrequency = errors.New("frequency must be daily or weekly")
)

func CreateHabit(userID int64, name, description, frequency string, targetDays int) (*db.Habit, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyName
	}
	if frequency == "" {
		frequency = db.FrequencyDaily
	}
	if frequency != db.FrequencyDaily && frequency != db.FrequencyWeekly {
		return nil, ErrInvalidFrequency
	}
	if targetDays <= 0 {
		targetDays = db.DefaultTargetDays
	}

	habit := db.Habit{
		UserID:      userID,
		Name:        name,
		Description: description,
		Frequency:   frequency,
		TargetDays:  targetDays,
		Active:      true,
	}
	if err := db.DB.Create(&habit).Error; err != nil {
		return nil, err
	}
	return &habit, nil
}

func ListActiveHabits(userID int64) ([]db.Habit, error) {
	var habits []db.Habit
	err := db.DB.
		Where("user_id = ? AND active = ?", userID, true).
		Order("created_at ASC").
		Find(&habits).Error
	if err != nil {
		return nil, err
	}
	return habits, nil
}

// LogCompletion records one day's completion status for a habit. The
// (habit, date) pair is unique: logging the same day twice updates the
// existing record instead of creating a second one. A record that ends up
// completed runs the milestone check synchronously before returning.
func LogCompletion(habitID uint, date time.Time, completed bool, notes string) (*db.CompletionRecord, error) {
	var habit db.Habit
	if err := db.DB.First(&habit, habitID).Error; err != nil {
		return nil, err
	}

	day := db.DateOnly(date)
	record := db.CompletionRecord{HabitID: habitID, Date: day}
	if err := db.DB.Where("habit_id = ? AND date = ?", habitID, day).FirstOrCreate(&record).Error; err != nil {
		return nil, err
	}
	record.Completed = completed
	record.Notes = notes
	if err := db.DB.Save(&record).Error; err != nil {
		return nil, err
	}

	runAchievementHook(&habit, &record)
	return &record, nil
}

// ToggleToday flips today's completion status, creating the record as
// completed when none exists yet.
func ToggleToday(habitID uint, today time.Time) (*db.CompletionRecord, error) {
	var habit db.Habit
	if err := db.DB.First(&habit, habitID).Error; err != nil {
		return nil, err
	}

	day := db.DateOnly(today)
	var record db.CompletionRecord
	err := db.DB.Where("habit_id = ? AND date = ?", habitID, day).First(&record).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		record = db.CompletionRecord{HabitID: habitID, Date: day, Completed: true}
		if err := db.DB.Create(&record).Error; err != nil {
			return nil, err
		}
	case err != nil:
		return nil, err
	default:
		record.Completed = !record.Completed
		if err := db.DB.Save(&record).Error; err != nil {
			return nil, err
		}
	}

	runAchievementHook(&habit, &record)
	return &record, nil
}

// DeleteHabit removes a habit together with its completion records and
// achievements.
func DeleteHabit(habitID uint) error {
	return db.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("habit_id = ?", habitID).Delete(&db.CompletionRecord{}).Error; err != nil {
			return err
		}
		if err := tx.Where("habit_id = ?", habitID).Delete(&db.Achievement{}).Error; err != nil {
			return err
		}
		return tx.Delete(&db.Habit{}, habitID).Error
	})
}

func runAchievementHook(habit *db.Habit, record *db.CompletionRecord) {
	awarded, err := achievements.OnCompletionWritten(habit, record)
	if err != nil {
		logger.Error("failed to check milestones", "habit_id", habit.ID, "error", err)
		return
	}
	if awarded != nil {
		logger.Info("achievement awarded",
			"habit_id", habit.ID, "user_id", habit.UserID, "milestone", awarded.Milestone)
	}
}
