package usecase

import (
	"testing"

	"fleet-maintenance/internal/domain/entity"

	"github.com/stretchr/testify/assert"
)

func TestApplyScheduleAxes(t *testing.T) {
	t.Run("sets units and parses the first service date", func(t *testing.T) {
		schedule := &entity.ServiceSchedule{}
		err := applyScheduleAxes(schedule, "week", "day", "2024-03-15")

		assert.NoError(t, err)
		if assert.NotNil(t, schedule.TimeIntervalUnit) {
			assert.Equal(t, entity.TimeUnitWeek, *schedule.TimeIntervalUnit)
		}
		if assert.NotNil(t, schedule.TimeBufferUnit) {
			assert.Equal(t, entity.TimeUnitDay, *schedule.TimeBufferUnit)
		}
		if assert.NotNil(t, schedule.FirstServiceDate) {
			assert.Equal(t, "2024-03-15", schedule.FirstServiceDate.Format("2006-01-02"))
		}
	})

	t.Run("empty fields leave the schedule untouched", func(t *testing.T) {
		schedule := &entity.ServiceSchedule{}
		err := applyScheduleAxes(schedule, "", "", "")

		assert.NoError(t, err)
		assert.Nil(t, schedule.TimeIntervalUnit)
		assert.Nil(t, schedule.TimeBufferUnit)
		assert.Nil(t, schedule.FirstServiceDate)
	})

	t.Run("rejects a malformed date", func(t *testing.T) {
		schedule := &entity.ServiceSchedule{}
		err := applyScheduleAxes(schedule, "", "", "15/03/2024")

		assert.ErrorIs(t, err, ErrInvalidDateFormat)
	})
}

func TestValidateScheduleAxes(t *testing.T) {
	interval := 6
	unit := entity.TimeUnitDay
	mileage := 10000.0

	tests := []struct {
		name     string
		schedule entity.ServiceSchedule
		wantErr  error
	}{
		{
			name:     "no axis at all",
			schedule: entity.ServiceSchedule{},
			wantErr:  ErrScheduleHasNoAxis,
		},
		{
			name:     "time value without a unit",
			schedule: entity.ServiceSchedule{TimeIntervalValue: &interval},
			wantErr:  ErrIncompleteTimeAxis,
		},
		{
			name:     "time unit without a value",
			schedule: entity.ServiceSchedule{TimeIntervalUnit: &unit},
			wantErr:  ErrIncompleteTimeAxis,
		},
		{
			name: "complete time axis",
			schedule: entity.ServiceSchedule{
				TimeIntervalValue: &interval,
				TimeIntervalUnit:  &unit,
			},
		},
		{
			name:     "mileage axis alone",
			schedule: entity.ServiceSchedule{MileageInterval: &mileage},
		},
		{
			name: "dangling time unit is rejected even with a mileage axis",
			schedule: entity.ServiceSchedule{
				TimeIntervalUnit: &unit,
				MileageInterval:  &mileage,
			},
			wantErr: ErrIncompleteTimeAxis,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateScheduleAxes(&tt.schedule)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
