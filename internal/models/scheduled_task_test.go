package models

import (
	"testing"
	"time"
)

func TestNextDue(t *testing.T) {
	past := time.Now().AddDate(0, -1, 0)
	rule := "FREQ=DAILY"
	badRule := "NOT A RULE"

	t.Run("onetime keeps its due date", func(t *testing.T) {
		task := ScheduledTask{TaskType: ScheduledTaskTypeOneTime, Due: past}
		if got := task.NextDue(); !got.Equal(past) {
			t.Errorf("NextDue() = %v; want %v", got, past)
		}
	})

	t.Run("recurring advances past now", func(t *testing.T) {
		task := ScheduledTask{
			TaskType:          ScheduledTaskTypeRecurring,
			Due:               past,
			RecurringInterval: &rule,
		}
		if got := task.NextDue(); !got.After(time.Now().Add(-time.Minute)) {
			t.Errorf("NextDue() = %v; want a time at or after now", got)
		}
	})

	t.Run("unparseable rule falls back to due", func(t *testing.T) {
		task := ScheduledTask{
			TaskType:          ScheduledTaskTypeRecurring,
			Due:               past,
			RecurringInterval: &badRule,
		}
		if got := task.NextDue(); !got.Equal(past) {
			t.Errorf("NextDue() = %v; want %v", got, past)
		}
	})

	t.Run("recurring without rule falls back to due", func(t *testing.T) {
		task := ScheduledTask{TaskType: ScheduledTaskTypeRecurring, Due: past}
		if got := task.NextDue(); !got.Equal(past) {
			t.Errorf("NextDue() = %v; want %v", got, past)
		}
	})
}
