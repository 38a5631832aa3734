package reminder

import (
	"testing"
	"time"

	"fleet-maintenance/internal/domain/entity"

	"github.com/stretchr/testify/assert"
)

func intPtr(v int) *int { return &v }
func floatPtr(v float64) *float64 { return &v }
func unitPtr(u entity.TimeUnit) *entity.TimeUnit { return &u }
func timePtr(t time.Time) *time.Time { return &t }

func TestTimeStatus(t *testing.T) {
	now := time.Date(2024, 4, 5, 12, 0, 0, 0, time.UTC)

	buffered := &entity.ServiceSchedule{
		TimeBufferValue: intPtr(7),
		TimeBufferUnit:  unitPtr(entity.TimeUnitDay),
	}
	unbuffered := &entity.ServiceSchedule{}

	tests := []struct {
		name     string
		due      time.Time
		schedule *entity.ServiceSchedule
		want     Status
	}{
		{"past due is overdue", now.Add(-time.Second), buffered, StatusOverdue},
		{"well before the buffer is upcoming", now.AddDate(0, 0, 10), buffered, StatusUpcoming},
		{"exactly at the buffer threshold is due soon", now.AddDate(0, 0, 7), buffered, StatusDueSoon},
		{"inside the buffer is due soon", now.AddDate(0, 0, 3), buffered, StatusDueSoon},
		{"due at this instant is not overdue", now, buffered, StatusDueSoon},
		{"no buffer means future is upcoming", now.AddDate(0, 0, 1), unbuffered, StatusUpcoming},
		{"no buffer still goes overdue", now.AddDate(0, 0, -1), unbuffered, StatusOverdue},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, TimeStatus(tt.due, now, tt.schedule))
		})
	}
}

func TestTimeStatusHourBufferRoundsUp(t *testing.T) {
	now := time.Date(2024, 4, 5, 0, 0, 0, 0, time.UTC)
	schedule := &entity.ServiceSchedule{
		TimeBufferValue: intPtr(12),
		TimeBufferUnit:  unitPtr(entity.TimeUnitHour),
	}

	// A 12-hour buffer widens to a full day, so one day out is due soon.
	assert.Equal(t, StatusDueSoon, TimeStatus(now.AddDate(0, 0, 1), now, schedule))
	assert.Equal(t, StatusUpcoming, TimeStatus(now.AddDate(0, 0, 2), now, schedule))
}

func TestMileageStatus(t *testing.T) {
	buffered := &entity.ServiceSchedule{MileageBuffer: floatPtr(500)}
	unbuffered := &entity.ServiceSchedule{}

	tests := []struct {
		name     string
		due      float64
		current  float64
		schedule *entity.ServiceSchedule
		want     Status
	}{
		{"past the due reading is overdue", 24800, 24801, buffered, StatusOverdue},
		{"equal readings are not overdue", 24800, 24800, buffered, StatusDueSoon},
		{"inside the buffer is due soon", 25200, 24800, buffered, StatusDueSoon},
		{"exactly at the buffer edge is due soon", 25300, 24800, buffered, StatusDueSoon},
		{"beyond the buffer is upcoming", 25301, 24800, buffered, StatusUpcoming},
		{"no buffer means ahead is upcoming", 24801, 24800, unbuffered, StatusUpcoming},
		{"no buffer still goes overdue", 24799, 24800, unbuffered, StatusOverdue},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MileageStatus(tt.due, tt.current, tt.schedule))
		})
	}
}

func TestStatusMonotonicWithDistance(t *testing.T) {
	now := time.Date(2024, 4, 5, 0, 0, 0, 0, time.UTC)
	schedule := &entity.ServiceSchedule{
		TimeBufferValue: intPtr(7),
		TimeBufferUnit:  unitPtr(entity.TimeUnitDay),
	}

	// Increasing distance from due never worsens the status rank.
	prev := statusRank(TimeStatus(now.AddDate(0, 0, -30), now, schedule))
	for d := -29; d <= 30; d++ {
		rank := statusRank(TimeStatus(now.AddDate(0, 0, d), now, schedule))
		assert.GreaterOrEqual(t, rank, prev, "rank regressed at %d days", d)
		prev = rank
	}
}

func TestPriorityFor(t *testing.T) {
	assert.Equal(t, PriorityHigh, PriorityFor(StatusOverdue))
	assert.Equal(t, PriorityMedium, PriorityFor(StatusDueSoon))
	assert.Equal(t, PriorityLow, PriorityFor(StatusUpcoming))
}
