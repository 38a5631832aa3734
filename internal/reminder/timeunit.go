package reminder

import (
	"fmt"
	"time"

	"fleet-maintenance/internal/domain/entity"
)

// AddInterval advances t by value units of unit. Passing an unsupported
// unit is a contract violation and panics.
func AddInterval(t time.Time, value int, unit entity.TimeUnit) time.Time {
	switch unit {
	case entity.TimeUnitHour:
		return t.Add(time.Duration(value) * time.Hour)
	case entity.TimeUnitDay:
		return t.AddDate(0, 0, value)
	case entity.TimeUnitWeek:
		return t.AddDate(0, 0, value*7)
	default:
		panic(fmt.Sprintf("reminder: unsupported time unit %q", unit))
	}
}

// IntervalDays converts an interval to a whole number of days. Hour
// values round up so a partial-day buffer still widens the window by a
// full day. Passing an unsupported unit panics.
func IntervalDays(value int, unit entity.TimeUnit) int {
	switch unit {
	case entity.TimeUnitHour:
		return (value + 23) / 24
	case entity.TimeUnitDay:
		return value
	case entity.TimeUnitWeek:
		return value * 7
	default:
		panic(fmt.Sprintf("reminder: unsupported time unit %q", unit))
	}
}
