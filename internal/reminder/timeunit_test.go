package reminder

import (
	"testing"
	"time"

	"fleet-maintenance/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddInterval(t *testing.T) {
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name  string
		value int
		unit  entity.TimeUnit
		want  time.Time
	}{
		{"hours", 36, entity.TimeUnitHour, base.Add(36 * time.Hour)},
		{"days", 90, entity.TimeUnitDay, time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC)},
		{"weeks", 2, entity.TimeUnitWeek, time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.True(t, tt.want.Equal(AddInterval(base, tt.value, tt.unit)))
		})
	}
}

func TestAddIntervalUnsupportedUnitPanics(t *testing.T) {
	require.Panics(t, func() {
		AddInterval(time.Now(), 1, entity.TimeUnit("month"))
	})
}

func TestIntervalDays(t *testing.T) {
	tests := []struct {
		name  string
		value int
		unit  entity.TimeUnit
		want  int
	}{
		{"one hour rounds up to a day", 1, entity.TimeUnitHour, 1},
		{"23 hours rounds up to a day", 23, entity.TimeUnitHour, 1},
		{"exactly one day of hours", 24, entity.TimeUnitHour, 1},
		{"25 hours rounds up to two days", 25, entity.TimeUnitHour, 2},
		{"days pass through", 14, entity.TimeUnitDay, 14},
		{"weeks multiply by seven", 3, entity.TimeUnitWeek, 21},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IntervalDays(tt.value, tt.unit))
		})
	}
}

func TestIntervalDaysUnsupportedUnitPanics(t *testing.T) {
	require.Panics(t, func() {
		IntervalDays(1, entity.TimeUnit("fortnight"))
	})
}
