package reminder

import (
	"time"

	"fleet-maintenance/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Status classifies a projected occurrence relative to "now"
type Status string

const (
	StatusOverdue  Status = "overdue"
	StatusDueSoon  Status = "due_soon"
	StatusUpcoming Status = "upcoming"
)

// Priority is derived one-to-one from Status
type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// TaskInfo is the task metadata carried by a projection
type TaskInfo struct {
	ID                   uuid.UUID           `json:"id"`
	Name                 string              `json:"name"`
	Category             entity.TaskCategory `json:"category"`
	EstimatedLabourHours float64             `json:"estimated_labour_hours"`
	EstimatedCost        decimal.Decimal     `json:"estimated_cost"`
}

// Projection is one virtual reminder occurrence computed from a schedule's
// recurrence. Projections are built fresh on every query and never
// persisted; the persisted entity.ServiceReminder is a different concept
// with its own lifecycle.
type Projection struct {
	VehicleID           uuid.UUID `json:"vehicle_id"`
	VehicleName         string    `json:"vehicle_name"`
	ServiceProgramID    uuid.UUID `json:"service_program_id"`
	ServiceProgramName  string    `json:"service_program_name"`
	ServiceScheduleID   uuid.UUID `json:"service_schedule_id"`
	ServiceScheduleName string    `json:"service_schedule_name"`

	Tasks            []TaskInfo      `json:"tasks"`
	TaskCount        int             `json:"task_count"`
	TotalLabourHours float64         `json:"total_labour_hours"`
	TotalCost        decimal.Decimal `json:"total_cost"`

	DueDate    *time.Time `json:"due_date,omitempty"`
	DueMileage *float64   `json:"due_mileage,omitempty"`

	Status   Status   `json:"status"`
	Priority Priority `json:"priority"`

	// OccurrenceNumber is the 1-based index within this occurrence's
	// axis series for the schedule/vehicle pair. Time and mileage
	// series are numbered independently.
	OccurrenceNumber int  `json:"occurrence_number"`
	TimeBased        bool `json:"is_time_based"`
	MileageBased     bool `json:"is_mileage_based"`

	CurrentMileage  float64  `json:"current_mileage"`
	MileageVariance *float64 `json:"mileage_variance,omitempty"`
	DaysUntilDue    *int     `json:"days_until_due,omitempty"`
}

// statusRank orders statuses by urgency for the default sort
func statusRank(s Status) int {
	switch s {
	case StatusOverdue:
		return 0
	case StatusDueSoon:
		return 1
	default:
		return 2
	}
}
