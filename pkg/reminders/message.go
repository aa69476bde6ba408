package reminders

import (
	"fmt"
	"strings"

	"github.com/ponzhin/habit-tracker/pkg/db"
)

const reminderSubject = "⏰ Habit reminder"

type habitStreak struct {
	Name string
	Days int
}

// composeReminder builds the single daily notification: the habits still
// waiting for a log today, followed by the current streak of every active
// habit.
func composeReminder(pending []db.Habit, streaks []habitStreak) (string, string) {
	var b strings.Builder
	b.WriteString("Don't forget to complete your habits today:\n\n")
	for _, habit := range pending {
		fmt.Fprintf(&b, "• %s\n", habit.Name)
	}

	if len(streaks) > 0 {
		b.WriteString("\nCurrent streaks:\n")
		parts := make([]string, 0, len(streaks))
		for _, s := range streaks {
			parts = append(parts, fmt.Sprintf("%s: %d days", s.Name, s.Days))
		}
		b.WriteString(strings.Join(parts, ", "))
		b.WriteString("\n")
	}

	b.WriteString("\nMake today count! 💪")
	return reminderSubject, b.String()
}
