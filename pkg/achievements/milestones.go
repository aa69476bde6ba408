package achievements

import (
	"fmt"

	"github.com/ponzhin/habit-tracker/pkg/db"
	"github.com/ponzhin/habit-tracker/pkg/stats"
	"gorm.io/gorm/clause"
)

// Milestones lists the streak lengths that earn an achievement, ascending.
var Milestones = []int{7, 14, 21, 30, 60, 90}

var milestoneTitles = map[int]string{
	7:  "One Week Strong! 🎉",
	14: "Two Week Champion! 🔥",
	21: "Three Week Warrior! 💪",
	30: "Monthly Master! 🏆",
	60: "Sixty Day Legend! ⭐",
	90: "Quarterly Conqueror! 👑",
}

func MilestoneTitle(days int) (string, bool) {
	title, ok := milestoneTitles[days]
	return title, ok
}

// CheckMilestones awards an achievement when the habit's current streak lands
// exactly on a milestone. A streak that overshoots a milestone never awards
// it retroactively: a habit picked up mid-streak simply skips the ones it
// passed. The conditional insert is guarded by the unique index on
// (user, habit, milestone), so concurrent completion writes racing to the
// same milestone produce exactly one row.
func CheckMilestones(habit *db.Habit) (*db.Achievement, error) {
	streak, err := stats.CurrentStreak(habit.ID)
	if err != nil {
		return nil, err
	}

	title, ok := milestoneTitles[streak]
	if !ok {
		return nil, nil
	}

	achievement := db.Achievement{
		UserID:      habit.UserID,
		HabitID:     habit.ID,
		Milestone:   streak,
		Title:       title,
		Description: fmt.Sprintf("Completed %q for %d days in a row.", habit.Name, streak),
	}
	result := db.DB.Clauses(clause.OnConflict{
		Columns: []clause.Column{
			{Name: "user_id"},
			{Name: "habit_id"},
			{Name: "milestone"},
		},
		DoNothing: true,
	}).Create(&achievement)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		// Already awarded, possibly by a concurrent writer.
		return nil, nil
	}
	return &achievement, nil
}

// OnCompletionWritten is the hook the completion write path invokes after a
// record ends up completed. Records that end up not completed never trigger
// a milestone check.
func OnCompletionWritten(habit *db.Habit, record *db.CompletionRecord) (*db.Achievement, error) {
	if habit == nil || record == nil || !record.Completed {
		return nil, nil
	}
	return CheckMilestones(habit)
}

// SetVisibility flips the only mutable field on an awarded achievement.
func SetVisibility(achievementID uint, public bool) error {
	return db.DB.Model(&db.Achievement{}).
		Where("id = ?", achievementID).
		Update("public", public).Error
}
