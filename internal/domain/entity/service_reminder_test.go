package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestServiceReminderLifecycle(t *testing.T) {
	now := time.Date(2024, 6, 1, 9, 30, 0, 0, time.UTC)

	t.Run("new reminder is open", func(t *testing.T) {
		r := &ServiceReminder{Status: ReminderStatusUpcoming}
		assert.True(t, r.IsOpen())
		assert.False(t, r.IsCompleted())
		assert.False(t, r.IsCancelled())
	})

	t.Run("due soon and overdue are still open", func(t *testing.T) {
		assert.True(t, (&ServiceReminder{Status: ReminderStatusDueSoon}).IsOpen())
		assert.True(t, (&ServiceReminder{Status: ReminderStatusOverdue}).IsOpen())
	})

	t.Run("complete closes the reminder and stamps the time", func(t *testing.T) {
		r := &ServiceReminder{Status: ReminderStatusOverdue}
		r.Complete(now)

		assert.Equal(t, ReminderStatusCompleted, r.Status)
		assert.False(t, r.IsOpen())
		assert.True(t, r.IsCompleted())
		if assert.NotNil(t, r.CompletedAt) {
			assert.Equal(t, now, *r.CompletedAt)
		}
		assert.Nil(t, r.CancelledAt)
	})

	t.Run("cancel closes the reminder and stamps the time", func(t *testing.T) {
		r := &ServiceReminder{Status: ReminderStatusUpcoming}
		r.Cancel(now)

		assert.Equal(t, ReminderStatusCancelled, r.Status)
		assert.False(t, r.IsOpen())
		assert.True(t, r.IsCancelled())
		if assert.NotNil(t, r.CancelledAt) {
			assert.Equal(t, now, *r.CancelledAt)
		}
		assert.Nil(t, r.CompletedAt)
	})
}
