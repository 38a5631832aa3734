package entity

import (
	"time"

	"github.com/google/uuid"
)

// ReminderStatus represents the lifecycle status of a persisted service
// reminder
type ReminderStatus string

const (
	ReminderStatusUpcoming  ReminderStatus = "upcoming"
	ReminderStatusDueSoon   ReminderStatus = "due_soon"
	ReminderStatusOverdue   ReminderStatus = "overdue"
	ReminderStatusCompleted ReminderStatus = "completed"
	ReminderStatusCancelled ReminderStatus = "cancelled"
)

// ServiceReminder is a persisted, trackable reminder record. It is a
// separate concept from the virtual reminder projections computed by the
// projection engine: a projection becomes a ServiceReminder only when a
// caller explicitly materializes one, and from then on it has its own
// lifecycle (complete/cancel) independent of the recurrence that produced
// it.
type ServiceReminder struct {
	ID                uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	VehicleID         uuid.UUID      `gorm:"type:uuid;not null;index" json:"vehicle_id"`
	ServiceScheduleID uuid.UUID      `gorm:"type:uuid;not null;index" json:"service_schedule_id"`
	DueDate           *time.Time     `json:"due_date,omitempty"`
	DueMileage        *float64       `json:"due_mileage,omitempty"`
	Status            ReminderStatus `gorm:"type:varchar(20);not null;default:'upcoming';index" json:"status"`
	Notes             string         `gorm:"type:text" json:"notes,omitempty"`
	CompletedAt       *time.Time     `json:"completed_at,omitempty"`
	CancelledAt       *time.Time     `json:"cancelled_at,omitempty"`
	CreatedAt         time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt         time.Time      `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Vehicle  Vehicle         `gorm:"foreignKey:VehicleID" json:"vehicle,omitempty"`
	Schedule ServiceSchedule `gorm:"foreignKey:ServiceScheduleID" json:"schedule,omitempty"`
}

func (ServiceReminder) TableName() string {
	return "service_reminders"
}

// IsOpen checks if the reminder is still actionable
func (r *ServiceReminder) IsOpen() bool {
	return r.Status != ReminderStatusCompleted && r.Status != ReminderStatusCancelled
}

// IsCompleted checks if the reminder has been completed
func (r *ServiceReminder) IsCompleted() bool {
	return r.Status == ReminderStatusCompleted
}

// IsCancelled checks if the reminder has been cancelled
func (r *ServiceReminder) IsCancelled() bool {
	return r.Status == ReminderStatusCancelled
}

// Complete marks the reminder as completed at the given instant
func (r *ServiceReminder) Complete(at time.Time) {
	r.Status = ReminderStatusCompleted
	r.CompletedAt = &at
}

// Cancel marks the reminder as cancelled at the given instant
func (r *ServiceReminder) Cancel(at time.Time) {
	r.Status = ReminderStatusCancelled
	r.CancelledAt = &at
}
