// pkg/db/models.go
package db

import (
	"time"

	"gorm.io/datatypes"
)

const (
	FrequencyDaily  = "daily"
	FrequencyWeekly = "weekly"
)

const DefaultTargetDays = 30

type Habit struct {
	ID          uint   `gorm:"primaryKey"`
	UserID      int64  `gorm:"index"` // To keep habits separate for each user
	Name        string `gorm:"not null"`
	Description string
	Frequency   string `gorm:"not null;default:daily"`
	TargetDays  int    `gorm:"not null;default:30"`
	Active      bool   `gorm:"not null;default:true"`
	CreatedAt   time.Time
}

// One row per habit per calendar day, enforced by idx_habit_date.
type CompletionRecord struct {
	ID        uint      `gorm:"primaryKey"`
	HabitID   uint      `gorm:"index;uniqueIndex:idx_habit_date"`
	Date      time.Time `gorm:"type:date;not null;uniqueIndex:idx_habit_date"`
	Completed bool      `gorm:"not null;default:false"`
	Notes     string
	CreatedAt time.Time
	UpdatedAt time.Time
}

type ReminderSettings struct {
	ID                 uint   `gorm:"primaryKey"`
	UserID             int64  `gorm:"uniqueIndex"`
	Enabled            bool   `gorm:"not null;default:true"`
	ReminderTime       string `gorm:"not null;default:'09:00'"` // HH:MM, user-local wall clock
	EmailNotifications bool   `gorm:"not null;default:true"`
	Email              string
	LastRemindedAt     *time.Time
}

// Awarded once per (user, habit, milestone); idx_user_habit_milestone is the
// backstop against duplicate awards under concurrent completion writes.
type Achievement struct {
	ID          uint  `gorm:"primaryKey"`
	UserID      int64 `gorm:"index;uniqueIndex:idx_user_habit_milestone"`
	HabitID     uint  `gorm:"index;uniqueIndex:idx_user_habit_milestone"`
	Milestone   int   `gorm:"not null;uniqueIndex:idx_user_habit_milestone"`
	Title       string
	Description string
	Public      bool `gorm:"not null;default:false"`
	CreatedAt   time.Time
}

type ReminderLog struct {
	ID       uint      `gorm:"primaryKey"`
	UserID   int64     `gorm:"index"`
	SentAt   time.Time `gorm:"not null"`
	HabitIDs datatypes.JSON
}

// DateOnly normalizes a timestamp to midnight UTC so completion records
// compare by calendar day regardless of the driver's date representation.
func DateOnly(t time.Time) time.Time {
	year, month, day := t.UTC().Date()
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}
