package reminders

import (
	"strings"
	"testing"

	"github.com/ponzhin/habit-tracker/pkg/db"
)

func TestComposeReminder(t *testing.T) {
	pending := []db.Habit{
		{ID: 1, Name: "Run"},
		{ID: 2, Name: "Read"},
	}
	streaks := []habitStreak{
		{Name: "Run", Days: 4},
		{Name: "Read", Days: 0},
		{Name: "Meditate", Days: 12},
	}

	subject, body := composeReminder(pending, streaks)

	if subject != reminderSubject {
		t.Errorf("unexpected subject: %q", subject)
	}
	for _, want := range []string{"• Run", "• Read", "Run: 4 days", "Read: 0 days", "Meditate: 12 days"} {
		if !strings.Contains(body, want) {
			t.Errorf("expected body to contain %q, body:\n%s", want, body)
		}
	}
	if strings.Contains(body, "• Meditate") {
		t.Errorf("habit not pending must not be listed as due, body:\n%s", body)
	}
}

func TestComposeReminderWithoutStreaks(t *testing.T) {
	_, body := composeReminder([]db.Habit{{ID: 1, Name: "Run"}}, nil)
	if strings.Contains(body, "Current streaks") {
		t.Errorf("expected no streak section, body:\n%s", body)
	}
}
