package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTimeUnitIsValid(t *testing.T) {
	assert.True(t, TimeUnitHour.IsValid())
	assert.True(t, TimeUnitDay.IsValid())
	assert.True(t, TimeUnitWeek.IsValid())
	assert.False(t, TimeUnit("month").IsValid())
	assert.False(t, TimeUnit("").IsValid())
}

func TestScheduleAxisPredicates(t *testing.T) {
	interval := 3
	zero := 0
	unit := TimeUnitWeek
	badUnit := TimeUnit("fortnight")
	mileage := 5000.0
	noMileage := 0.0

	tests := []struct {
		name        string
		schedule    ServiceSchedule
		timeAxis    bool
		mileageAxis bool
	}{
		{
			name:     "empty schedule has no axes",
			schedule: ServiceSchedule{},
		},
		{
			name: "value and unit together form a time axis",
			schedule: ServiceSchedule{
				TimeIntervalValue: &interval,
				TimeIntervalUnit:  &unit,
			},
			timeAxis: true,
		},
		{
			name:     "value without unit is not a time axis",
			schedule: ServiceSchedule{TimeIntervalValue: &interval},
		},
		{
			name: "zero value is not a time axis",
			schedule: ServiceSchedule{
				TimeIntervalValue: &zero,
				TimeIntervalUnit:  &unit,
			},
		},
		{
			name: "unknown unit is not a time axis",
			schedule: ServiceSchedule{
				TimeIntervalValue: &interval,
				TimeIntervalUnit:  &badUnit,
			},
		},
		{
			name:        "positive mileage interval forms a mileage axis",
			schedule:    ServiceSchedule{MileageInterval: &mileage},
			mileageAxis: true,
		},
		{
			name:     "zero mileage interval is not a mileage axis",
			schedule: ServiceSchedule{MileageInterval: &noMileage},
		},
		{
			name: "both axes can coexist",
			schedule: ServiceSchedule{
				TimeIntervalValue: &interval,
				TimeIntervalUnit:  &unit,
				MileageInterval:   &mileage,
			},
			timeAxis:    true,
			mileageAxis: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.timeAxis, tt.schedule.HasTimeAxis())
			assert.Equal(t, tt.mileageAxis, tt.schedule.HasMileageAxis())
		})
	}
}

func TestScheduleBufferPredicates(t *testing.T) {
	buffer := 2
	unit := TimeUnitDay
	mileageBuffer := 250.0

	s := ServiceSchedule{}
	assert.False(t, s.HasTimeBuffer())
	assert.False(t, s.HasMileageBuffer())

	s.TimeBufferValue = &buffer
	assert.False(t, s.HasTimeBuffer(), "buffer value alone is not enough")

	s.TimeBufferUnit = &unit
	assert.True(t, s.HasTimeBuffer())

	s.MileageBuffer = &mileageBuffer
	assert.True(t, s.HasMileageBuffer())
}
