package reminder

import (
	"time"

	"fleet-maintenance/internal/domain/entity"
)

// TimeStatus classifies a time-axis occurrence against now. An occurrence
// is overdue once now has passed the due date; within the schedule's time
// buffer it is due soon; otherwise upcoming.
func TimeStatus(dueDate, now time.Time, schedule *entity.ServiceSchedule) Status {
	if now.After(dueDate) {
		return StatusOverdue
	}
	if schedule.HasTimeBuffer() {
		threshold := dueDate.AddDate(0, 0, -IntervalDays(*schedule.TimeBufferValue, *schedule.TimeBufferUnit))
		if !now.Before(threshold) {
			return StatusDueSoon
		}
	}
	return StatusUpcoming
}

// MileageStatus classifies a mileage-axis occurrence against the
// vehicle's current mileage. Strictly past the due reading is overdue;
// within the mileage buffer is due soon; otherwise upcoming.
func MileageStatus(dueMileage, currentMileage float64, schedule *entity.ServiceSchedule) Status {
	if currentMileage > dueMileage {
		return StatusOverdue
	}
	if schedule.HasMileageBuffer() && currentMileage >= dueMileage-*schedule.MileageBuffer {
		return StatusDueSoon
	}
	return StatusUpcoming
}

// PriorityFor maps a status to its priority level
func PriorityFor(s Status) Priority {
	switch s {
	case StatusOverdue:
		return PriorityHigh
	case StatusDueSoon:
		return PriorityMedium
	default:
		return PriorityLow
	}
}
